package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serpclean"
	"github.com/fwojciec/serpclean/clean"
	"github.com/fwojciec/serpclean/fs"
	"github.com/fwojciec/serpclean/goquery"
	"github.com/fwojciec/serpclean/readability"
	logslog "github.com/fwojciec/serpclean/slog"
	"github.com/fwojciec/serpclean/sqlite"
	"github.com/fwojciec/serpclean/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serpclean"),
		kong.Description("Clean search result batches into bounded, metadata-annotated text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := stdslog.LevelInfo
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	// Wire the extraction chain.
	var selector serpclean.ExtractorSelector = clean.NewSelector(
		readability.NewExtractor(),
		trafilatura.NewExtractor(),
		goquery.NewExtractor(),
	)
	if cli.Verbose {
		selector = logslog.NewLoggingSelector(selector, logger)
	}

	cleaner := clean.NewCleaner(selector)
	cleaner.Truncate = serpclean.TruncateOptions{
		MaxChars:  cli.MaxChars,
		MaxTokens: cli.MaxTokens,
	}
	cleaner.Concurrency = cli.Concurrency

	output := cli.Output
	if output == "" {
		output = fs.DefaultOutputPath(cli.Input)
	}

	set, err := fs.ReadResultSet(cli.Input)
	if err != nil {
		return err
	}

	cleaned, err := cleaner.CleanResults(ctx, set)
	if err != nil {
		return err
	}

	if err := fs.WriteResultSet(output, cleaned); err != nil {
		return err
	}

	if cli.DB != "" {
		if err := archiveRun(ctx, cli.DB, cleaned); err != nil {
			return fmt.Errorf("archiving run: %w", err)
		}
		logger.Info("run archived", "db", cli.DB, "run_id", cleaned.ProcessingMetadata.RunID)
	}

	stats := clean.Summarize(cleaned)
	fmt.Fprintf(stdout, "Processed %d results (%d pass-through, %d truncated, %d duplicates)\n",
		stats.Items, stats.Fallbacks, stats.Truncated, stats.Duplicates)
	if stats.OriginalBytes > 0 {
		fmt.Fprintf(stdout, "Content reduction: %.1f%% (from %d to %d characters)\n",
			stats.ReductionPercent(), stats.OriginalBytes, stats.CleanedBytes)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", output)

	return nil
}

// archiveRun stores the cleaned result set in a SQLite database.
func archiveRun(ctx context.Context, path string, set *serpclean.CleanedResultSet) error {
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	return sqlite.NewRunService(db).SaveRun(ctx, set)
}
