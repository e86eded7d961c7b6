package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"formulyst/report/ingredients"
	"formulyst/report/report"
)

type cliOptions struct {
	configPath      string
	inputPath       string
	ingredientsPath string
	ingredientText  string
	hazardsPath     string
	aliasesPath     string
	emitReportPath  string
	outputPath      string
	outputDir       string
	onlyHazardous   bool
	query           string
	stdout          bool
	jsonOut         bool
	quiet           bool
	set             map[string]bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("formulyst-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("formulyst-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json or config.yaml (default: ./config.json)")
	flag.StringVar(&opts.inputPath, "input", "", "Analyzer JSON report to score (use - for STDIN)")
	flag.StringVar(&opts.ingredientsPath, "ingredients", "", "Text file with an ingredient label to check against the hazard database")
	flag.StringVar(&opts.ingredientText, "ingredient-text", "", "Ingredient label given inline, comma separated")
	flag.StringVar(&opts.hazardsPath, "hazards", "", "hazards.json for the matcher (default from config)")
	flag.StringVar(&opts.aliasesPath, "aliases", "", "alias_index.json for the matcher (default from config)")
	flag.StringVar(&opts.emitReportPath, "emit-report", "", "Write the matcher's analyzer report to this JSON file")
	flag.StringVar(&opts.outputPath, "output", "", "CSV file to write results (default uses --output-dir/result_*.csv)")
	flag.StringVar(&opts.outputDir, "output-dir", "", "Directory where result CSVs are written when --output is omitted")
	flag.BoolVar(&opts.onlyHazardous, "only-hazardous", true, "Only list High/Medium ingredients")
	flag.StringVar(&opts.query, "query", "", "Search name / alias / category")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print summary results to STDOUT")
	flag.BoolVar(&opts.jsonOut, "json", false, "Print the full evaluation as JSON to STDOUT")
	flag.BoolVar(&opts.quiet, "quiet", false, "Suppress log output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--input FILE | --ingredients FILE | --ingredient-text TEXT] [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.inputPath = strings.TrimSpace(opts.inputPath)
	opts.ingredientsPath = strings.TrimSpace(opts.ingredientsPath)
	opts.hazardsPath = strings.TrimSpace(opts.hazardsPath)
	opts.aliasesPath = strings.TrimSpace(opts.aliasesPath)
	opts.outputPath = strings.TrimSpace(opts.outputPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)

	if opts.inputPath != "" && (opts.ingredientsPath != "" || opts.ingredientText != "") {
		flag.Usage()
		return opts, errors.New("--input cannot be combined with --ingredients or --ingredient-text")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := report.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(&cfg, opts)

	var out io.Writer = os.Stdout
	if opts.quiet || opts.jsonOut {
		out = io.Discard
	}
	logger := log.New(out, "", log.LstdFlags)

	rep, err := loadReport(opts, cfg, logger)
	if err != nil {
		return err
	}
	if opts.emitReportPath != "" {
		if err := writeReportFile(opts.emitReportPath, rep); err != nil {
			return err
		}
	}

	service := report.NewService(cfg, logger)
	eval := service.EvaluateDefault(rep)

	outputPath, err := resolveOutputPath(opts.outputPath, cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := writeResultCSV(outputPath, eval.Items); err != nil {
		return err
	}
	logger.Printf("Saved %d of %d ingredients to %s", len(eval.Items), eval.Total, outputPath)

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eval)
	}
	if opts.stdout {
		printSummary(eval)
	}
	return nil
}

// applyFlagOverrides lets explicitly passed flags win over the config file.
func applyFlagOverrides(cfg *report.Config, opts cliOptions) {
	if opts.set["only-hazardous"] {
		cfg.OnlyHazardous = opts.onlyHazardous
	}
	if opts.set["query"] {
		cfg.Query = report.NormalizeText(opts.query)
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
}

func loadReport(opts cliOptions, cfg report.Config, logger *log.Logger) (report.Report, error) {
	switch {
	case opts.inputPath == "-":
		rep, err := report.DecodeReport(os.Stdin)
		if err != nil {
			return report.Report{}, fmt.Errorf("read report from stdin: %w", err)
		}
		return rep, nil
	case opts.inputPath != "":
		return report.ParseReportFile(opts.inputPath)
	case opts.ingredientsPath != "" || opts.ingredientText != "":
		text := opts.ingredientText
		if opts.ingredientsPath != "" {
			data, err := os.ReadFile(opts.ingredientsPath)
			if err != nil {
				return report.Report{}, fmt.Errorf("read ingredient label: %w", err)
			}
			text = string(data)
		}
		hazards := firstNonEmpty(opts.hazardsPath, cfg.Matcher.HazardsPath)
		aliases := firstNonEmpty(opts.aliasesPath, cfg.Matcher.AliasIndexPath)
		if hazards == "" || aliases == "" {
			return report.Report{}, errors.New("matching needs --hazards and --aliases (or matcher paths in config)")
		}
		db, err := ingredients.LoadDatabase(hazards, aliases)
		if err != nil {
			return report.Report{}, fmt.Errorf("load hazard database: %w", err)
		}
		logger.Printf("Loaded %d hazard entries", db.Size())
		matcher := ingredients.NewMatcher(db, cfg.Matcher.Threshold, logger)
		return matcher.CheckText(text), nil
	default:
		logger.Printf("No input given, using the built-in sample report")
		return report.SampleReport(), nil
	}
}

func writeReportFile(path string, rep report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	return report.WriteReportJSON(f, rep)
}

func resolveOutputPath(path, dir string) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir == "" {
		dir = "csv"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("result_%s.csv", time.Now().Format("20060102150405"))
	return filepath.Join(absDir, filename), nil
}

func writeResultCSV(path string, items []report.NormalizedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()
	return report.WriteCSV(f, items)
}

func printSummary(eval report.Evaluation) {
	fmt.Println()
	fmt.Println("==== Formulyst report ====")
	fmt.Printf("Health risk:      %3d/100 (%s)\n", eval.Scores.HealthScore, eval.HealthBand)
	fmt.Printf("Environment risk: %3d/100 (%s)\n", eval.Scores.EnvironmentScore, eval.EnvironmentBand)
	h := eval.Summary.Health
	fmt.Printf("Hazard levels: %d high, %d medium, %d low, %d unknown (total %d)\n", h.High, h.Medium, h.Low, h.Unknown, h.Total)
	fmt.Println()
	if len(eval.Items) == 0 {
		fmt.Println("No ingredients match the current filters")
		return
	}
	for i, it := range eval.Items {
		fmt.Printf("%d. %s [%s]\n", i+1, displayName(it.Record), it.Record.HazardLevel)
		printLevel("Aquatic toxicity", it.AquaticToxicity)
		printLevel("Bioaccumulation", it.Bioaccumulation)
		printLevel("Persistence", it.Persistence)
		if len(it.Sources) > 0 {
			fmt.Printf("    Sources: %s\n", strings.Join(it.Sources, " | "))
		}
	}
}

func printLevel(title string, lvl report.ParsedLevel) {
	if lvl.Note == "" {
		fmt.Printf("    %s: %s\n", title, lvl.Label)
		return
	}
	fmt.Printf("    %s: %s (%s)\n", title, lvl.Label, lvl.Note)
}

func displayName(rec report.IngredientRecord) string {
	if strings.TrimSpace(rec.Name) != "" {
		return strings.TrimSpace(rec.Name)
	}
	if rec.Query != "" {
		return rec.Query + " (unmatched)"
	}
	return "(unnamed ingredient)"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
