// internal/output/writer.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/table"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
	"github.com/bl4cksku11/rto-toolkit/internal/intel"
	"github.com/bl4cksku11/rto-toolkit/internal/runner"
)

// Separator is the fixed line between consecutive entries in the artifact.
// Tooling parses prior outputs, so this is a compatibility surface.
const Separator = "----------------------------"

// ArtifactName builds the timestamped artifact file name. The timestamp is
// taken once at batch start so every entry of a run lands in one file.
func ArtifactName(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, t.Format("20060102-150405"), ext)
}

// FormatArtifact renders the bracket-framed artifact body. Only successful
// entries are written, separated by Separator; no separator precedes the
// first entry or follows the last.
func FormatArtifact(batch runner.Batch) string {
	var reports []string
	for _, e := range batch {
		if e.Result.Status == intel.StatusSuccess {
			reports = append(reports, e.Result.Report)
		}
	}
	if len(reports) == 0 {
		return "[\n]\n"
	}
	return "[\n" + strings.Join(reports, "\n"+Separator+"\n") + "\n]\n"
}

// WriteArtifact writes the formatted artifact to filepath.
func WriteArtifact(filepath string, batch runner.Batch) error {
	log := logger.GetLogger()
	err := os.WriteFile(filepath, []byte(FormatArtifact(batch)), 0644) // 0644 is standard file permissions
	if err != nil {
		log.Errorf("Failed to write artifact to %s: %v", filepath, err)
		return fmt.Errorf("%s: %v: %w", filepath, err, core.ErrFileWrite)
	}
	return nil
}

// FormatSummary renders the per-asset outcome summary in the given format.
func FormatSummary(batch runner.Batch, outputFormat string) (string, error) {
	log := logger.GetLogger()
	switch outputFormat {
	case "console":
		t := table.NewWriter()
		t.SetStyle(table.StyleColoredBright)
		t.AppendHeader(table.Row{"#", "Asset", "Outcome"})
		for i, e := range batch {
			t.AppendRow(table.Row{i + 1, e.Asset, e.Result.Status.String()})
		}
		return t.Render(), nil
	case "json":
		type entry struct {
			Asset   string `json:"asset"`
			Outcome string `json:"outcome"`
		}
		entries := make([]entry, 0, len(batch))
		for _, e := range batch {
			entries = append(entries, entry{Asset: e.Asset, Outcome: e.Result.Status.String()})
		}
		data := map[string]interface{}{
			"attempted": len(batch),
			"saved":     batch.Successes(),
			"entries":   entries,
		}
		jsonData, err := json.MarshalIndent(data, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonData), nil
	case "csv":
		var b strings.Builder
		writer := csv.NewWriter(&b)
		if err := writer.Write([]string{"asset", "outcome"}); err != nil { // CSV header
			return "", fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, e := range batch {
			if err := writer.Write([]string{e.Asset, e.Result.Status.String()}); err != nil {
				return "", fmt.Errorf("failed to write entry to CSV: %w", err)
			}
		}
		writer.Flush()
		return b.String(), nil
	default:
		log.Errorf("Unsupported output format: %s", outputFormat)
		return "", core.ErrOutputFormat
	}
}
