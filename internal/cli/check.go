package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/commentspell/internal/model"
	"github.com/ppiankov/commentspell/internal/pipeline"
	"github.com/ppiankov/commentspell/internal/spell"
	"github.com/ppiankov/commentspell/internal/worker"
)

var (
	// ErrFilesFailed is returned when at least one file could not be checked
	ErrFilesFailed = errors.New("some files could not be checked")

	// ErrUnknownWords is returned under --fail-on-unknown when words were reported
	ErrUnknownWords = errors.New("unknown words reported")
)

var (
	noCache   bool
	filesFrom string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Spell check comments in source files",
	Long: `Check extracts comments from every source file under the given paths
and reports words the dictionary does not know.

Directories are walked recursively, skipping directories whose name starts
with a dot. Files given explicitly are checked whatever their extension.

Example:
  commentspell check ./source
  commentspell check intern/ blenkernel/BKE_mesh.h --jobs 8
  commentspell check . --wordlist ~/project-words.txt --fail-on-unknown`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	flags := checkCmd.Flags()
	flags.Int("jobs", 1, "number of files extracted concurrently")
	flags.Bool("report-once", true, "report each misspelled word only once per run")
	flags.Bool("single-line", false, "also check block comments that fit on one line")
	flags.StringSlice("wordlist", nil, "word list file, one word per line (repeatable)")
	flags.String("locale", "", "dictionary locale")
	flags.BoolVar(&noCache, "no-cache", false, "disable the suggestion cache")
	flags.String("cache-dir", "", "persist suggestions in this directory")
	flags.Bool("fail-on-unknown", false, "exit non-zero when any word is reported")
	flags.Bool("summary", false, "print a summary even when stderr is not a terminal")
	flags.StringVar(&filesFrom, "files-from", "", "read paths to check from a file, one per line")

	// Bind flags to viper
	_ = viper.BindPFlag("concurrency.workers", flags.Lookup("jobs"))
	_ = viper.BindPFlag("output.report_once", flags.Lookup("report-once"))
	_ = viper.BindPFlag("block.single_line", flags.Lookup("single-line"))
	_ = viper.BindPFlag("dictionary.word_lists", flags.Lookup("wordlist"))
	_ = viper.BindPFlag("dictionary.locale", flags.Lookup("locale"))
	_ = viper.BindPFlag("cache.dir", flags.Lookup("cache-dir"))
	_ = viper.BindPFlag("output.fail_on_unknown", flags.Lookup("fail-on-unknown"))
	_ = viper.BindPFlag("output.summary", flags.Lookup("summary"))
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if filesFrom != "" {
		listed, err := worker.ReadPathsFromFile(filesFrom)
		if err != nil {
			return fmt.Errorf("read %s: %w", filesFrom, err)
		}
		args = append(args, listed...)
	}
	if len(args) == 0 {
		return fmt.Errorf("no paths given: pass files or directories, or --files-from")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dict, err := spell.Open(cfg)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Checking: %v\n", args)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(os.Stderr, "Locale: %s\n", cfg.Dictionary.Locale)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	paths, walkFailures := collectSources(args, cfg.Sources.Extensions)

	reporter := spell.NewReporter(dict, spell.NewSeen(), cmd.OutOrStdout(), reporterOptions(cfg))
	summary := checkFiles(ctx, cfg, reporter, paths)
	summary.Files += walkFailures
	summary.Failed += walkFailures

	if cfg.Output.Summary || isatty.IsTerminal(os.Stderr.Fd()) {
		printSummary(cmd.ErrOrStderr(), summary)
	}

	return runError(cfg, summary)
}

// collectSources expands path arguments into source files. Paths that cannot
// be walked are logged and counted.
func collectSources(args []string, exts []string) ([]string, int) {
	var paths []string
	failures := 0

	for path, err := range pipeline.Sources(args, exts) {
		if err != nil {
			slog.Error("failed to read path", slog.String("path", path), slog.String("error", err.Error()))
			failures++
			continue
		}
		paths = append(paths, path)
	}

	return paths, failures
}

// checkFiles extracts paths on the worker pool and reports them in order
func checkFiles(ctx context.Context, cfg *model.Config, reporter *spell.Reporter, paths []string) model.Summary {
	processor := worker.NewBatchProcessor(pipeline.NewPipeline(cfg), cfg.Concurrency.Workers)

	for _, fc := range processor.ProcessFiles(ctx, paths) {
		if fc.Err != nil {
			slog.Error("failed to check file", slog.String("error", fc.Err.Error()))
		}
		reporter.Report(fc)
	}

	return reporter.Summary()
}

func reporterOptions(cfg *model.Config) spell.ReporterOptions {
	return spell.ReporterOptions{
		Custom:     cfg.Words.Custom,
		Ignore:     cfg.Words.Ignore,
		ReportOnce: cfg.Output.ReportOnce,
	}
}

func runError(cfg *model.Config, summary model.Summary) error {
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, summary.Failed, summary.Files)
	}
	if cfg.Output.FailOnUnknown && summary.Unknown > 0 {
		return fmt.Errorf("%w: %d", ErrUnknownWords, summary.Unknown)
	}
	return nil
}

func printSummary(w io.Writer, s model.Summary) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Check Complete\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Files:     %d\n", s.Files)
	fmt.Fprintf(w, "  Failed:    %d\n", s.Failed)
	fmt.Fprintf(w, "  Comments:  %d\n", s.Comments)
	fmt.Fprintf(w, "  Words:     %d\n", s.Words)
	fmt.Fprintf(w, "  Unknown:   %d\n", s.Unknown)
	fmt.Fprintf(w, "\n")
}
