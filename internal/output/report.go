// internal/output/report.go
package output

import (
	"fmt"
	"os"
	"time"

	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
	"github.com/bl4cksku11/rto-toolkit/internal/runner"
)

// GenerateHTMLReport writes a self-contained HTML summary of one run.
func GenerateHTMLReport(batch runner.Batch, provider string, startedAt time.Time, outputPath string) error {
	log := logger.GetLogger()
	log.Infof("Generating HTML run report at %s...", outputPath)

	summaryJSON, err := FormatSummary(batch, "json")
	if err != nil {
		return fmt.Errorf("failed to prepare report data: %w", err)
	}

	htmlContent := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>rto-toolkit Enumeration Report</title>
    <style>
        body { font-family: sans-serif; margin: 20px; }
        h1 { color: #333; }
        pre { background-color: #eee; padding: 10px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Asset Enumeration Report</h1>
    <p>Provider: %s</p>
    <p>Run started: %s</p>
    <p>Assets attempted: %d &mdash; with data: %d</p>
    <h2>Per-Asset Outcomes</h2>
    <pre>%s</pre>
</body>
</html>`, provider, startedAt.Format("2006-01-02 15:04:05 MST"), len(batch), batch.Successes(), summaryJSON)

	err = os.WriteFile(outputPath, []byte(htmlContent), 0644)
	if err != nil {
		log.Errorf("Failed to write HTML report to %s: %v", outputPath, err)
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	log.Info("HTML report generated successfully.")
	return nil
}
