// Command sdldebug bundles the ad-hoc report-inspection probes used
// while developing the extraction engine into one buildable CLI with
// subcommands, rather than the three standalone `package main` files
// they started as.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "dump":
		err = runDump(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: sdldebug <dump|verify> <report.xlsx> [row...]")
}

// runDump prints the named rows of the Rows sheet, non-blank cells
// only — useful for spot-checking a handful of rows flagged by a
// bigger run without opening the spreadsheet.
func runDump(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("dump: missing report path")
	}
	path := args[0]

	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows("Rows")
	if err != nil {
		return err
	}

	wanted := parseRowNumbers(args[1:])
	fmt.Printf("=== DUMP: %s ===\n", path)

	for _, n := range wanted {
		if n-1 < 0 || n-1 >= len(rows) {
			fmt.Printf("\nRow %d: out of range (sheet has %d rows)\n", n, len(rows))
			continue
		}
		row := rows[n-1]
		fmt.Printf("\nRow %d:\n", n)
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				fmt.Printf("  Col %d: %q\n", i, cell)
			}
		}
	}

	return nil
}

// runVerify checks the Rows sheet for the zero-tolerance invariant a
// properly extracted report should hold: every data row must have a
// non-empty value in each header column that at least one data row
// fills in. Columns that are blank in every row are skipped.
func runVerify(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("verify: missing report path")
	}
	path := args[0]

	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows("Rows")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("PASSED: Rows sheet is empty, nothing to check")
		return nil
	}

	header := rows[0]
	populatedCols := make([]bool, len(header))
	for _, row := range rows[1:] {
		for i := range header {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				populatedCols[i] = true
			}
		}
	}

	fmt.Printf("=== VERIFY: %s ===\n", path)
	fmt.Printf("Total rows: %d\n\n", len(rows)-1)

	blanks := 0
	for r, row := range rows[1:] {
		for c := range header {
			if !populatedCols[c] {
				continue // column is blank everywhere; not a per-row defect
			}
			cell := ""
			if c < len(row) {
				cell = strings.TrimSpace(row[c])
			}
			if cell == "" {
				fmt.Printf("EMPTY CELL at row %d, column %q\n", r+2, header[c])
				blanks++
			}
		}
	}

	if blanks > 0 {
		return fmt.Errorf("FAILED: found %d empty cell(s) in otherwise-populated columns", blanks)
	}
	fmt.Println("PASSED: no empty cells in populated columns")
	return nil
}

func parseRowNumbers(args []string) []int {
	var nums []int
	for _, a := range args {
		var n int
		if _, err := fmt.Sscanf(a, "%d", &n); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}
