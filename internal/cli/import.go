package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/gitimport"
	"github.com/blackroad/chlog/internal/progress"
)

var (
	importRepoFlag  string
	importSinceFlag string
	importLimitFlag int
)

var importCmd = &cobra.Command{
	Use:   "import <project> <version>",
	Short: "Import changes from conventional git commits",
	Long: `Scan a git repository's history and record a change entry for every
conventional commit subject (feat:, fix:, perf:, refactor:, docs:,
chore:; "!" or a BREAKING CHANGE footer maps to breaking). Commits that
don't follow the format are skipped.

Examples:
  chlog import myapp 1.2.0 --since v1.1.0
  chlog import myapp 1.2.0 --repo ../myapp --limit 50`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runImport,
}

func init() {
	importCmd.GroupID = GroupRecord
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importRepoFlag, "repo", "", "Repository path (default: current directory)")
	importCmd.Flags().StringVar(&importSinceFlag, "since", "", "Scan commits after this revision (tag, branch, or hash)")
	importCmd.Flags().IntVar(&importLimitFlag, "limit", 0, "Maximum commits to examine (0 = all)")
}

func runImport(cmd *cobra.Command, args []string) error {
	project, version := args[0], args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	spin := progress.NewSpinner("scanning commits...")
	result, err := gitimport.Scan(gitimport.Options{
		RepoPath: importRepoFlag,
		Since:    importSinceFlag,
		Limit:    importLimitFlag,
	})
	progress.StopSpinner(spin)
	if err != nil {
		return fmt.Errorf("scanning repository: %w", err)
	}

	if len(result.Entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No conventional commits found (%d commit(s) examined).\n",
			result.Skipped)
		return nil
	}

	for _, e := range result.Entries {
		if _, err := store.AddChange(project, version, string(e.Type), e.Summary, e.Author, ""); err != nil {
			return err
		}
	}

	if err := store.Save(); err != nil {
		return err
	}

	histWriter().LogCommand("import", project, version,
		fmt.Sprintf("%d change(s) from git", len(result.Entries)))

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d change(s) into %s@%s (%d commit(s) skipped).\n",
		len(result.Entries), project, version, result.Skipped)
	return nil
}
