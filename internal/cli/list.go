package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/changelog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked projects and their versions",
	Long: `List every tracked project with its versions in insertion order.
Finalized versions are marked ✓, drafts …`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runList,
}

func init() {
	listCmd.GroupID = GroupQuery
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(store.ListProjects()) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects tracked.")
		return nil
	}

	opts := changelog.FormatOptions{Plain: plainFlag || cfg.Plain}
	return changelog.FormatProjectList(store, cmd.OutOrStdout(), opts)
}
