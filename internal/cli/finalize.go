package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var finalizeHighlightsFlag string

var finalizeCmd = &cobra.Command{
	Use:   "finalize <project> <version>",
	Short: "Finalize a version, freezing its change set",
	Long: `Finalize a version: mark it released, record a finalization
timestamp, and reject any further changes.

Finalizing a version that has no recorded changes fails; record at least
one change first. When --highlights is omitted, highlights are derived
from the version's feat and breaking changes.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runFinalize,
}

func init() {
	finalizeCmd.GroupID = GroupRecord
	rootCmd.AddCommand(finalizeCmd)

	finalizeCmd.Flags().StringVar(&finalizeHighlightsFlag, "highlights", "", "Release highlights text")
}

func runFinalize(cmd *cobra.Command, args []string) error {
	project, version := args[0], args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	v, err := store.FinalizeVersion(project, version, finalizeHighlightsFlag)
	if err != nil {
		return err
	}

	if err := store.Save(); err != nil {
		return err
	}

	histWriter().LogCommand("finalize", project, version,
		fmt.Sprintf("%d change(s)", len(v.Changes)))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Finalized %s@%s with %d change(s).\n",
		project, version, len(v.Changes))
	if v.Highlights != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "  Highlights:")
		for _, line := range strings.Split(v.Highlights, "\n") {
			fmt.Fprintf(cmd.OutOrStdout(), "    • %s\n", line)
		}
	}
	return nil
}
