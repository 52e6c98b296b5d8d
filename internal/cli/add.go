package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addAuthorFlag string
	addPRFlag     string
)

var addCmd = &cobra.Command{
	Use:   "add <project> <version> <type> <summary>",
	Short: "Record a change entry against a draft version",
	Long: `Record a change entry against a project version.

The project and version are created on first use; new versions start as
drafts. Finalized versions reject new changes.

Valid change types: feat, fix, breaking, perf, refactor, docs, chore.

Examples:
  chlog add myapp 1.2.0 feat "Add dark mode toggle" --author alice --pr 123
  chlog add myapp 1.2.0 fix "Fix token refresh race"`,
	Args:         cobra.ExactArgs(4),
	SilenceUsage: true,
	RunE:         runAdd,
}

func init() {
	addCmd.GroupID = GroupRecord
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addAuthorFlag, "author", "", "Author name or username")
	addCmd.Flags().StringVar(&addPRFlag, "pr", "", "PR reference (number or ID)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	project, version, rawType, summary := args[0], args[1], args[2], args[3]

	store, err := openStore()
	if err != nil {
		return err
	}

	author := addAuthorFlag
	if author == "" {
		author = cfg.DefaultAuthor
	}

	change, err := store.AddChange(project, version, rawType, summary, author, addPRFlag)
	if err != nil {
		return err
	}

	if err := store.Save(); err != nil {
		return err
	}

	histWriter().LogCommand("add", project, version,
		fmt.Sprintf("[%s] %s", change.Type, change.Summary))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added [%s] %s to %s@%s\n",
		change.Type, truncateSummary(change.Summary), project, version)
	return nil
}

// truncateSummary keeps confirmation lines readable for long summaries.
func truncateSummary(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
