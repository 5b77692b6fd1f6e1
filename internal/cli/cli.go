package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/teesheet-extract/internal/export"
	"github.com/pfrederiksen/teesheet-extract/internal/filter"
	"github.com/pfrederiksen/teesheet-extract/internal/geocode"
	"github.com/pfrederiksen/teesheet-extract/internal/logger"
	"github.com/pfrederiksen/teesheet-extract/internal/normalize"
	"github.com/pfrederiksen/teesheet-extract/internal/parser"
	"github.com/pfrederiksen/teesheet-extract/internal/patch"
	"github.com/pfrederiksen/teesheet-extract/internal/record"
	"github.com/pfrederiksen/teesheet-extract/internal/scrape"
	"github.com/pfrederiksen/teesheet-extract/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagVerbose bool

	flagFormat string
	flagOutput string
	flagSort   string

	flagDefaultYear  string
	flagDefaultState string
	flagGeocode      bool
	flagSaveRun      string

	flagCategories   []string
	flagStates       []string
	flagCities       []string
	flagCourses      []string
	flagDateRange    string
	flagWeekendsOnly bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teesheet-extract",
		Short: "Extract tournament records from loosely formatted tee sheets",
		Long: `A CLI tool that turns loosely formatted golf tee-sheet text into
structured tournament records: dates, courses, categories, and locations.
Records can be geocoded against the course directory, saved as named runs,
patched with manual corrections, and exported as text, JSON, CSV, XLSX, or
an ICS calendar.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.local/share/teesheet-extract", "Data directory for saved runs")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newPatchCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDefaultYear, "default-year", "", "Year assumed for dates that don't carry one (e.g. 2025)")
	cmd.Flags().StringVar(&flagDefaultState, "default-state", "", "State code assumed for records with no state (e.g. PA)")
	cmd.Flags().BoolVar(&flagGeocode, "geocode", false, "Look up city/state/zip for courses in the course directory")
	cmd.Flags().StringVar(&flagSaveRun, "save-run", "", "Save the extracted records under this run name")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, csv, xlsx, or ics")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, state, or name")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Keep only these categories (e.g. Seniors)")
	cmd.Flags().StringSliceVar(&flagStates, "state", nil, "Keep only these state codes")
	cmd.Flags().StringSliceVar(&flagCities, "city", nil, "Keep only records whose city contains one of these")
	cmd.Flags().StringSliceVar(&flagCourses, "course", nil, "Keep only records whose course contains one of these")
	cmd.Flags().StringVar(&flagDateRange, "date-range", "", "Keep only records in this range (e.g. 'Mar 1-15', 'March - April', 'March')")
	cmd.Flags().BoolVar(&flagWeekendsOnly, "weekends-only", false, "Keep only Saturday and Sunday records")
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse tee-sheet text from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}
	addPipelineFlags(cmd)
	addOutputFlags(cmd)
	addFilterFlags(cmd)
	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Fetch a tee-sheet page and parse its text",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrape,
	}
	addPipelineFlags(cmd)
	addOutputFlags(cmd)
	addFilterFlags(cmd)
	return cmd
}

func newPatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch <run> <patch-file>",
		Short: "Apply manual field corrections to a saved run",
		Args:  cobra.ExactArgs(2),
		RunE:  runPatch,
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <run>",
		Short: "Export a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	addOutputFlags(cmd)
	addFilterFlags(cmd)
	return cmd
}

// runParse extracts records from a tee-sheet file (or stdin) and outputs them.
func runParse(cmd *cobra.Command, args []string) error {
	var (
		text   string
		source string
	)

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading tee sheet: %w", err)
		}
		text = string(data)
		source = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
		source = "stdin"
	}

	records := runPipeline(cmd.Context(), text)

	if err := saveRunIfRequested(source, records); err != nil {
		return err
	}

	return outputRecords(records, flagDefaultYear)
}

// runScrape fetches a page, extracts its visible text, and parses it like a
// tee-sheet file.
func runScrape(cmd *cobra.Command, args []string) error {
	url := args[0]

	fetcher := scrape.New()
	text, err := fetcher.FetchText(cmd.Context(), url)
	if err != nil {
		return fmt.Errorf("fetching tee sheet: %w", err)
	}

	records := runPipeline(cmd.Context(), text)

	if err := saveRunIfRequested(url, records); err != nil {
		return err
	}

	return outputRecords(records, flagDefaultYear)
}

// runPatch loads a saved run, applies the override document, and saves the
// run back in place.
func runPatch(cmd *cobra.Command, args []string) error {
	runName, patchPath := args[0], args[1]

	s, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	run, err := s.LoadRun(runName)
	if err != nil {
		return err
	}

	f, err := os.Open(patchPath)
	if err != nil {
		return fmt.Errorf("opening patch file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	doc, err := patch.Load(f)
	if err != nil {
		return err
	}

	result := patch.Apply(run.Records, doc)
	for _, id := range result.UnknownIDs {
		logger.Warn("patch targets unknown record", logger.Fields{"id": id}, nil)
	}

	if err := s.SaveRun(runName, run); err != nil {
		return err
	}

	fmt.Printf("Applied %d overrides to run %q", result.Applied, runName)
	if len(result.UnknownIDs) > 0 {
		fmt.Printf(" (%d unknown IDs skipped)", len(result.UnknownIDs))
	}
	fmt.Println()
	return nil
}

// runExport loads a saved run and outputs it with the usual filter, sort,
// and format options.
func runExport(cmd *cobra.Command, args []string) error {
	s, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	run, err := s.LoadRun(args[0])
	if err != nil {
		return err
	}

	return outputRecords(run.Records, run.DefaultYear)
}

// runPipeline is the extraction pipeline shared by parse and scrape:
// classify and fold the text into records, default course names off titles,
// optionally geocode, then backfill locations across same-course records.
func runPipeline(ctx context.Context, text string) []*record.Record {
	records := parser.Parse(text, flagDefaultYear)
	logger.SetGauge("records", float64(len(records)))

	parser.DefaultCourses(records)

	if flagGeocode {
		client := geocode.NewDirectoryClient()
		resolver := geocode.NewResolver(client.Structured(), client.NameOnly(), geocode.NamePattern{})
		geocode.Enrich(ctx, records, resolver.Lookup, flagDefaultState)
	} else if flagDefaultState != "" {
		state, _ := normalize.State(flagDefaultState)
		for _, r := range records {
			if r.State == "" {
				r.State = state
			}
		}
	}

	parser.Backfill(records)
	return records
}

func saveRunIfRequested(source string, records []*record.Record) error {
	if flagSaveRun == "" {
		return nil
	}

	s, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	run := &store.Run{
		Source:      source,
		DefaultYear: flagDefaultYear,
		Records:     records,
	}
	if err := s.SaveRun(flagSaveRun, run); err != nil {
		return err
	}

	logger.Info("run saved", logger.Fields{
		"run":     flagSaveRun,
		"records": len(records),
	})
	return nil
}

// buildFilter assembles a filter from the flag values. The year anchors
// month-only date ranges; zero falls back to calendar inference.
func buildFilter(year int) (*filter.Filter, error) {
	f := filter.New()
	f.Categories = flagCategories
	f.States = flagStates
	f.Cities = flagCities
	f.Courses = flagCourses
	f.WeekendsOnly = flagWeekendsOnly

	if flagDateRange != "" {
		from, to, err := filter.ParseDateRange(flagDateRange, year)
		if err != nil {
			return nil, fmt.Errorf("parsing --date-range: %w", err)
		}
		f.DateFrom = from
		f.DateTo = to
	}

	return f, nil
}

// outputRecords runs the shared output path: filter, sort, then write in
// the requested format to stdout or --output.
func outputRecords(records []*record.Record, defaultYear string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if !validFormat(format) {
		return fmt.Errorf("invalid format: %s (must be text, json, csv, xlsx, or ics)", flagFormat)
	}

	year, _ := strconv.Atoi(defaultYear)
	f, err := buildFilter(year)
	if err != nil {
		return err
	}
	records = f.Apply(records)

	sortRecords(records, SortOrder(flagSort))

	w := io.Writer(os.Stdout)
	if flagOutput != "" {
		file, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close() // nolint:errcheck
		w = file
	}

	start := time.Now()
	defer func() { logger.RecordTiming("output."+string(format), time.Since(start)) }()

	if format == FormatText {
		return writeText(w, records, flagVerbose)
	}
	return export.Write(w, records, export.Format(format))
}

func validFormat(format OutputFormat) bool {
	switch format {
	case FormatText, FormatJSON, FormatCSV, FormatXLSX, FormatICS:
		return true
	}
	return false
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
