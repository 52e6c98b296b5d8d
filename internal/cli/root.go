// Package cli implements the chlog command tree. It is the single layer
// that converts typed changelog failures into user-facing messages and
// process exit codes; everything below it returns errors.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/build"
	"github.com/blackroad/chlog/internal/changelog"
	"github.com/blackroad/chlog/internal/config"
	clierrors "github.com/blackroad/chlog/internal/errors"
	"github.com/blackroad/chlog/internal/history"
)

// Command group IDs for help output.
const (
	GroupRecord = "record"
	GroupRender = "render"
	GroupQuery  = "query"
)

var (
	storeFlag string
	plainFlag bool

	// cfg is loaded once per invocation in PersistentPreRunE.
	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Track, render, and release project changelogs",
	Long: `chlog tracks per-project, per-version change entries, finalizes
releases, renders Markdown/JSON changelogs, suggests semantic version
bumps from pending changes, and searches change summaries.

All state lives in a single local store file (default ~/.chlog/store.yaml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
				"Check the syntax of your config file",
				"Remove the config file to fall back to defaults")
		}
		cfg = loaded
		if plainFlag || cfg.Plain {
			os.Setenv("NO_COLOR", "1")
		}
		return nil
	},
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", build.Version, build.Commit, build.BuildDate)
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Path to the changelog store file")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain output (no colors)")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRecord, Title: "Recording Commands:"},
		&cobra.Group{ID: GroupRender, Title: "Rendering Commands:"},
		&cobra.Group{ID: GroupQuery, Title: "Query Commands:"},
	)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		cliErr := mapError(err)
		clierrors.PrintError(cliErr)
		return exitCodeFor(cliErr.Category)
	}
	return ExitSuccess
}

// storePath resolves the store location: --store flag > config > default.
func storePath() (string, error) {
	if storeFlag != "" {
		return storeFlag, nil
	}
	if cfg != nil && cfg.StorePath != "" {
		return cfg.StorePath, nil
	}
	return changelog.DefaultStorePath()
}

// openStore opens the configured store.
func openStore() (*changelog.Store, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	return changelog.Open(path)
}

// histWriter returns the command history writer. History problems are never
// fatal, so a missing state dir degrades to a writer that warns on use.
func histWriter() *history.Writer {
	stateDir, err := config.StateDir()
	if err != nil {
		stateDir = ".chlog"
	}
	return history.NewWriter(stateDir, maxHistoryEntries)
}

// maxHistoryEntries caps the command history file.
const maxHistoryEntries = 500
