package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
	"github.com/bl4cksku11/rto-toolkit/internal/intel"
	"github.com/bl4cksku11/rto-toolkit/internal/runner"
)

func success(asset, report string) runner.Entry {
	return runner.Entry{Asset: asset, Result: intel.Result{Status: intel.StatusSuccess, Report: report}}
}

func TestArtifactName(t *testing.T) {
	ts := time.Date(2026, 8, 25, 15, 4, 5, 0, time.UTC)
	got := ArtifactName("shodan-enum", "txt", ts)
	if got != "shodan-enum-20260825-150405.txt" {
		t.Errorf("Unexpected artifact name: %s", got)
	}
}

func TestFormatArtifact_SeparatorCount(t *testing.T) {
	tests := []struct {
		name      string
		batch     runner.Batch
		wantSeps  int
		wantEntry []string
	}{
		{"empty batch", runner.Batch{}, 0, nil},
		{"single entry", runner.Batch{success("a", "report-a")}, 0, []string{"report-a"}},
		{
			"two entries",
			runner.Batch{success("a", "report-a"), success("b", "report-b")},
			1,
			[]string{"report-a", "report-b"},
		},
		{
			"empty outcome omitted",
			runner.Batch{
				success("a", "report-a"),
				{Asset: "b", Result: intel.Result{Status: intel.StatusEmpty}},
				success("c", "report-c"),
			},
			1,
			[]string{"report-a", "report-c"},
		},
		{
			"failure omitted",
			runner.Batch{
				{Asset: "a", Result: intel.Result{Status: intel.StatusFailure}},
			},
			0,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := FormatArtifact(tt.batch)
			if !strings.HasPrefix(body, "[\n") || !strings.HasSuffix(body, "\n]\n") {
				t.Errorf("Artifact missing bracket framing:\n%s", body)
			}
			if got := strings.Count(body, Separator); got != tt.wantSeps {
				t.Errorf("Expected %d separators, got %d:\n%s", tt.wantSeps, got, body)
			}
			for _, entry := range tt.wantEntry {
				if !strings.Contains(body, entry) {
					t.Errorf("Artifact missing entry %q:\n%s", entry, body)
				}
			}
		})
	}
}

func TestFormatArtifact_TwoAssetScenario(t *testing.T) {
	batch := runner.Batch{success("1.2.3.4", "entry one"), success("example.com", "entry two")}
	body := FormatArtifact(batch)
	want := "[\nentry one\n" + Separator + "\nentry two\n]\n"
	if body != want {
		t.Errorf("Expected artifact:\n%q\ngot:\n%q", want, body)
	}
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ArtifactName("shodan-enum", "txt", time.Now()))

	batch := runner.Batch{success("a", "report-a")}
	if err := WriteArtifact(path, batch); err != nil {
		t.Fatalf("WriteArtifact returned an error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read artifact back: %v", err)
	}
	if string(data) != FormatArtifact(batch) {
		t.Error("Artifact on disk differs from formatted body")
	}
}

func TestWriteArtifact_BadPath(t *testing.T) {
	err := WriteArtifact(filepath.Join("no", "such", "dir", "out.txt"), runner.Batch{})
	if !errors.Is(err, core.ErrFileWrite) {
		t.Errorf("Expected ErrFileWrite, got %v", err)
	}
}

func TestFormatSummary(t *testing.T) {
	batch := runner.Batch{
		success("a", "r"),
		{Asset: "b", Result: intel.Result{Status: intel.StatusEmpty}},
	}

	console, err := FormatSummary(batch, "console")
	if err != nil {
		t.Fatalf("console format errored: %v", err)
	}
	if !strings.Contains(console, "a") || !strings.Contains(console, "no-data") {
		t.Errorf("Console summary missing expected cells:\n%s", console)
	}

	jsonOut, err := FormatSummary(batch, "json")
	if err != nil {
		t.Fatalf("json format errored: %v", err)
	}
	for _, want := range []string{`"attempted": 2`, `"saved": 1`, `"asset": "b"`} {
		if !strings.Contains(jsonOut, want) {
			t.Errorf("JSON summary missing %q:\n%s", want, jsonOut)
		}
	}

	csvOut, err := FormatSummary(batch, "csv")
	if err != nil {
		t.Fatalf("csv format errored: %v", err)
	}
	if !strings.Contains(csvOut, "asset,outcome") || !strings.Contains(csvOut, "b,no-data") {
		t.Errorf("CSV summary missing rows:\n%s", csvOut)
	}

	if _, err := FormatSummary(batch, "xml"); !errors.Is(err, core.ErrOutputFormat) {
		t.Errorf("Expected ErrOutputFormat for unsupported format, got %v", err)
	}
}

func TestGenerateHTMLReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	batch := runner.Batch{success("a", "r")}

	if err := GenerateHTMLReport(batch, "shodan", time.Now(), path); err != nil {
		t.Fatalf("GenerateHTMLReport returned an error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "Provider: shodan") {
		t.Error("Report missing provider line")
	}
}
