// Command sdlrecon is the SDL validator/extractor driver: it takes a
// metadata document and one or more spreadsheet files, validates each
// spreadsheet against the declared metadata, and writes the extracted
// rows out through the configured reporters.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sdlrecon/internal/config"
	"sdlrecon/internal/discover"
	"sdlrecon/internal/extract"
	"sdlrecon/internal/logger"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/model"
	"sdlrecon/internal/report"
	"sdlrecon/internal/sdl"
	"sdlrecon/internal/sheet"
	"sdlrecon/internal/ui"
)

const (
	appName    = "SDL Recon"
	appVersion = "1.0.0"
	appDesc    = "A pure Go validator/extractor for the Spreadsheet Description Language"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	outputDir   string
	formats     string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated output formats (excel,html,word,json); overrides config")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\nPANIC: %v\n", r)
		}
		waitForEnter()
	}()

	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	args := flag.Args()
	if len(args) < 2 {
		fmt.Printf("usage: %s [flags] <metadata.sdl> <spreadsheet-or-dir> [spreadsheet-or-dir...]\n", os.Args[0])
		return 1
	}
	sdlPath, sheetPaths := args[0], args[1:]

	printBanner()

	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
		cfg.EnsureOutputDir()
	}
	if formats != "" {
		cfg.Output.Formats = strings.Split(formats, ",")
	}

	logPath := filepath.Join(cfg.Output.Dir, "sdlrecon.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runPipeline(cfg, sdlPath, sheetPaths); err != nil {
		logger.Error("Run failed: %v", err)
		return 1
	}

	logger.Info("Done. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runPipeline(cfg *config.Config, sdlPath string, sheetPaths []string) error {
	logger.Info("Phase 1: Parsing %s", sdlPath)
	spinner := ui.NewSpinner(fmt.Sprintf("Parsing %s", sdlPath))
	spinner.Tick()
	frozen, err := parseSDL(sdlPath)
	spinner.Stop()
	if err != nil {
		logger.LogSourceError(sdlPath, err, "parse")
		return err
	}

	sheetPaths, err = expandDirectories(sheetPaths)
	if err != nil {
		return err
	}

	var runErrors []error

	// Each spreadsheet runs its own Validating/Extracting/Reporting
	// pipeline, since ui.Pipeline tracks phases for a single run.
	for _, sheetPath := range sheetPaths {
		if err := processSheet(cfg, frozen, sheetPath); err != nil {
			logger.LogSourceError(sheetPath, err, "process")
			runErrors = append(runErrors, fmt.Errorf("%s: %w", sheetPath, err))
		}
	}

	if len(runErrors) > 0 {
		return fmt.Errorf("%d of %d spreadsheets failed", len(runErrors), len(sheetPaths))
	}
	return nil
}

func parseSDL(path string) (*metadata.Frozen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	state, err := sdl.New(f).Parse()
	if err != nil {
		return nil, err
	}
	return state.Validate()
}

func processSheet(cfg *config.Config, frozen *metadata.Frozen, sheetPath string) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseValidating,
		ui.PhaseExtracting,
		ui.PhaseReporting,
	})

	logger.Info("Phase 2: Validating %s", sheetPath)
	validateBar := pipeline.NextPhase(1)

	wb, err := sheet.Open(sheetPath)
	if err != nil {
		return err
	}

	var warnings []extract.Warning
	inst := extract.Validate(frozen, wb, func(w extract.Warning) {
		warnings = append(warnings, w)
		logger.Warn("%s", w)
	})
	validateBar.Finish()

	logger.Info("Phase 3: Extracting %s", sheetPath)
	extractBar := pipeline.NextPhase(1)
	summary := model.NewSummary(firstSheetName(wb))
	rows, err := inst.Extract(func(row model.Row) {
		summary.AddRow(row)
	})
	if err != nil {
		return err
	}
	extractBar.Finish()

	for _, w := range warnings {
		switch w.Kind {
		case "UnusedKey":
			summary.AddUnusedKey(w.Name)
		case "DuplicateHeader":
			summary.AddDuplicateHeader(w.Name)
		}
	}
	if cfg.Extraction.WarnAsError && len(warnings) > 0 {
		return fmt.Errorf("%d warning(s) promoted to errors", len(warnings))
	}

	logger.Info("Phase 4: Reporting %s (%d rows)", sheetPath, len(rows))
	runCfg := *cfg
	if len(rows) > 0 {
		runCfg.Output.FileName = cfg.Output.FileName + "-" + strings.TrimSuffix(filepath.Base(sheetPath), filepath.Ext(sheetPath))
	}

	reporters := report.GetReporters(runCfg.Output.Formats)
	reportBar := pipeline.NextPhase(len(reporters))

	var reportErrors []error
	for _, rep := range reporters {
		if err := rep.Report(rows, summary, frozen, &runCfg); err != nil {
			logger.Error("Report failed: %v", err)
			reportErrors = append(reportErrors, err)
		}
		reportBar.Increment()
	}
	reportBar.Finish()
	pipeline.Finish()

	if len(reportErrors) > 0 {
		return fmt.Errorf("%d report(s) failed", len(reportErrors))
	}
	return nil
}

// expandDirectories replaces any directory argument with the
// spreadsheet files found under it, so a run can be pointed at a
// folder of workbooks instead of listing each one on the command
// line.
func expandDirectories(paths []string) ([]string, error) {
	var expanded []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			expanded = append(expanded, p)
			continue
		}
		found, err := discover.ScanSpreadsheets(p)
		if err != nil {
			return nil, err
		}
		logger.Info("Discovered %d spreadsheet(s) under %s", len(found), p)
		expanded = append(expanded, found...)
	}
	return expanded, nil
}

func firstSheetName(wb sheet.Workbook) string {
	names := wb.SheetNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      SDL RECON v1.0.0                      ║
║     Spreadsheet Description Language validator/extractor   ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
