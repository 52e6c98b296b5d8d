package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/config"
	"github.com/blackroad/chlog/internal/history"
)

var (
	historyLimitFlag int
	historyClearFlag bool
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "View recorded changelog mutations",
	Long:         `View a log of chlog mutations (add, finalize, import) with timestamp, project, and version.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runHistory,
}

func init() {
	historyCmd.GroupID = GroupQuery
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 0, "Limit to last N entries (most recent)")
	historyCmd.Flags().BoolVarP(&historyClearFlag, "clear", "c", false, "Clear all history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	stateDir, err := config.StateDir()
	if err != nil {
		return fmt.Errorf("resolving state directory: %w", err)
	}

	if historyClearFlag {
		if err := history.Clear(stateDir); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	f, err := history.Load(stateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	entries := f.Entries
	if historyLimitFlag > 0 && len(entries) > historyLimitFlag {
		entries = entries[len(entries)-historyLimitFlag:]
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history available.")
		return nil
	}

	dim := color.New(color.Faint).SprintFunc()
	for _, e := range entries {
		target := e.Project
		if e.Version != "" {
			target = fmt.Sprintf("%s@%s", e.Project, e.Version)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s %s  %s\n",
			dim(e.Timestamp.Format("2006-01-02 15:04")), e.Command, target, e.Detail)
	}
	return nil
}
