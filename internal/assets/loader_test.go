package assets

import (
	"errors"
	"os"
	"testing"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
)

func TestLoad_CommaSeparated(t *testing.T) {
	list, err := Load("1.2.3.4, example.com ,10.0.0.1")
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	want := []string{"1.2.3.4", "example.com", "10.0.0.1"}
	if len(list) != len(want) {
		t.Fatalf("Expected %d assets, got %d (%v)", len(want), len(list), list)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("Asset %d: expected %q, got %q", i, want[i], list[i])
		}
	}
}

func TestLoad_CommaSeparatedDropsEmptyTokens(t *testing.T) {
	list, err := Load("1.2.3.4,,example.com,")
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 assets, got %d (%v)", len(list), list)
	}
}

func TestLoad_NewlineSeparated(t *testing.T) {
	list, err := Load("host-1.example.com\n1.2.3.4\n\napi.example.com\n")
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	want := []string{"host-1.example.com", "1.2.3.4", "api.example.com"}
	if len(list) != len(want) {
		t.Fatalf("Expected %d assets, got %d (%v)", len(want), len(list), list)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("Asset %d: expected %q, got %q", i, want[i], list[i])
		}
	}
}

func TestLoad_KeepsDuplicates(t *testing.T) {
	list, err := Load("1.2.3.4\n1.2.3.4\nexample.com")
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("Expected duplicates preserved (3 assets), got %d", len(list))
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"whitespace only", "   \n  \n"},
		{"bad token", "good.example.com\nnot a hostname\nother.example.com"},
		{"leading dash", "-bad.example.com"},
		{"url scheme", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.source)
			if !errors.Is(err, core.ErrInputFormat) {
				t.Errorf("Expected ErrInputFormat, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "assets_*.txt")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.WriteString("a.example.com\nb.example.com\n"); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()

	list, err := LoadFile(tempFile.Name())
	if err != nil {
		t.Fatalf("LoadFile returned an error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 assets, got %d", len(list))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("definitely-not-a-file.txt"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
