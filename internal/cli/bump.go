package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/changelog"
)

var bumpCmd = &cobra.Command{
	Use:   "bump <project> <currentVersion>",
	Short: "Suggest the next semantic version from pending changes",
	Long: `Suggest the next semantic version for a project based on the change
types in its draft versions.

Precedence: any breaking change bumps major; else any feat bumps minor;
else any other change bumps patch. The current version must be
MAJOR.MINOR.PATCH.

Example:
  chlog bump myapp 1.1.3`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runBump,
}

func init() {
	bumpCmd.GroupID = GroupQuery
	rootCmd.AddCommand(bumpCmd)
}

func runBump(cmd *cobra.Command, args []string) error {
	project, current := args[0], args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	result, err := changelog.SuggestBump(current, store.PendingTypes(project))
	if err != nil {
		return err
	}

	triggers := make([]string, 0, len(result.Triggers))
	for _, t := range result.Triggers {
		triggers = append(triggers, string(t))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s → %s (%s)\n",
		project, result.Current, result.Next, result.Category)
	fmt.Fprintf(cmd.OutOrStdout(), "Triggered by: %s\n", strings.Join(triggers, ", "))
	return nil
}
