package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackroad/chlog/internal/changelog"
)

var (
	watchOutputFlag   string
	watchDebounceFlag time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <project>",
	Short: "Re-render the Markdown changelog when the store changes",
	Long: `Watch the store file and re-render a project's Markdown changelog to
--output whenever the store changes. Useful for keeping a CHANGELOG.md
current while recording changes from another terminal.

Stops on Ctrl+C.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runWatch,
}

func init() {
	watchCmd.GroupID = GroupRender
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutputFlag, "output", "o", "", "Output file (required)")
	watchCmd.Flags().DurationVar(&watchDebounceFlag, "debounce", 250*time.Millisecond, "Delay before re-rendering after a change")
	_ = watchCmd.MarkFlagRequired("output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	project := args[0]

	path, err := storePath()
	if err != nil {
		return err
	}

	// Render once up front so --output exists before the first change.
	if err := renderProjectToFile(project, watchOutputFlag); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s; rendering %s to %s (Ctrl+C to stop)\n",
		path, project, watchOutputFlag)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: atomic saves replace the file by
	// rename, which would break a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchLoop(ctx, cmd, watcher, path, project)
	})
	return g.Wait()
}

// watchLoop re-renders after store changes, debounced so bursts of events
// from an atomic save trigger a single render.
func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, storeFile, project string) error {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(storeFile) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(watchDebounceFlag)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)

		case <-timer.C:
			if err := renderProjectToFile(project, watchOutputFlag); err != nil {
				// A save may still be in flight; keep watching.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: re-render failed: %v\n", err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Re-rendered %s\n", watchOutputFlag)
		}
	}
}

// renderProjectToFile renders the project's Markdown changelog from a fresh
// store read.
func renderProjectToFile(project, output string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	p, err := store.Project(project)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	opts := changelog.RenderOptions{MaxVersions: cfg.MaxVersions}
	return changelog.RenderMarkdown(p, f, opts)
}
