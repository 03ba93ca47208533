package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanSpreadsheetsFindsKnownExtensions(t *testing.T) {
	root := t.TempDir()

	write := func(rel string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	write("catalog.xlsx")
	write("legacy.csv")
	write("archive.ods")
	write("notes.txt")
	write(filepath.Join(".git", "HEAD"))
	write(filepath.Join("nested", "prices.xlsm"))

	files, err := ScanSpreadsheets(root)
	if err != nil {
		t.Fatalf("ScanSpreadsheets: %v", err)
	}

	want := map[string]bool{
		filepath.Join(root, "catalog.xlsx"):         true,
		filepath.Join(root, "legacy.csv"):            true,
		filepath.Join(root, "archive.ods"):           true,
		filepath.Join(root, "nested", "prices.xlsm"): true,
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for _, f := range files {
		if !want[f] {
			t.Errorf("unexpected file in results: %s", f)
		}
	}
}

func TestScanSpreadsheetsSkipsUnreadableRoot(t *testing.T) {
	if _, err := ScanSpreadsheets(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}
