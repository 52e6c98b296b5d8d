package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/changelog"
)

var searchProjectFlag string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search change summaries",
	Long: `Search change summaries for a case-insensitive substring,
optionally scoped to one project.

An empty result is not an error; search always exits 0.

Examples:
  chlog search "dark mode"
  chlog search auth --project myapp`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSearch,
}

func init() {
	searchCmd.GroupID = GroupQuery
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchProjectFlag, "project", "", "Limit search to one project")
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	matches := store.Search(args[0], searchProjectFlag)
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching changes found.")
		return nil
	}

	opts := changelog.FormatOptions{Plain: plainFlag || cfg.Plain}
	return changelog.FormatMatches(matches, cmd.OutOrStdout(), opts)
}
