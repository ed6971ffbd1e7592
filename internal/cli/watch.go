package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/commentspell/internal/spell"
	"github.com/ppiankov/commentspell/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-check source files as they change",
	Long: `Watch monitors a directory tree and spell checks source files whenever
they are created or modified. Changes are batched until the tree has been
quiet for the debounce window; each batch is reported as its own run.

Example:
  commentspell watch ./source
  commentspell watch . --debounce 500ms`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("debounce", 200*time.Millisecond, "quiet period before a batch is checked")
	_ = viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dict, err := spell.Open(cfg)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w, err := watch.New(root, cfg.Sources.Extensions, cfg.Watch.Debounce, func(ctx context.Context, paths []string) {
		// Every batch starts with a fresh report-once set
		reporter := spell.NewReporter(dict, spell.NewSeen(), out, reporterOptions(cfg))
		summary := checkFiles(ctx, cfg, reporter, paths)
		if cfg.Output.Verbose {
			printSummary(cmd.ErrOrStderr(), summary)
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	defer func() { _ = w.Close() }()

	fmt.Fprintf(os.Stderr, "Watching %s (debounce %v), press Ctrl+C to stop\n", root, cfg.Watch.Debounce)

	return w.Run(ctx)
}
