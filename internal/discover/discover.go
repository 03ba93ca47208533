// Package discover walks a directory tree looking for spreadsheet
// files a run of sdlrecon can validate, so the CLI can be pointed at
// a folder instead of listing every workbook by hand.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// spreadsheetExtensions are the extensions sheet.Open knows how to
// read; ScanSpreadsheets only returns paths carrying one of these.
var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".ods":  true,
	".csv":  true,
}

// ScanSpreadsheets walks root and returns every file with a
// recognised spreadsheet extension, in lexical order. Directories
// named ".git" or ".svn" are always skipped.
func ScanSpreadsheets(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == ".svn" {
				return filepath.SkipDir
			}
			return nil
		}

		if spreadsheetExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, nil
}
