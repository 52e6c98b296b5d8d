package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackroad/chlog/internal/changelog"
)

var (
	generateOutputFlag      string
	generateMaxVersionsFlag int
	generateAscendingFlag   bool
	generateJSONOutputFlag  string
)

var generateMDCmd = &cobra.Command{
	Use:   "generate-md <project>",
	Short: "Render a project's changelog as Markdown",
	Long: `Render a project's changelog as Markdown.

Versions render newest-first; change entries group by type in severity
order (breaking, feat, fix, perf, refactor, docs, chore). Output goes to
stdout unless --output is given.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runGenerateMD,
}

var generateJSONCmd = &cobra.Command{
	Use:   "generate-json <project>",
	Short: "Render a project's changelog as JSON",
	Long: `Render a project's changelog as a JSON document: a version list,
each with status, optional highlights, and changes grouped by type.
Absent optional fields are omitted. Output goes to stdout unless
--output is given.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runGenerateJSON,
}

func init() {
	generateMDCmd.GroupID = GroupRender
	generateJSONCmd.GroupID = GroupRender
	rootCmd.AddCommand(generateMDCmd)
	rootCmd.AddCommand(generateJSONCmd)

	generateMDCmd.Flags().StringVarP(&generateOutputFlag, "output", "o", "", "Write output to file instead of stdout")
	generateMDCmd.Flags().IntVar(&generateMaxVersionsFlag, "max-versions", 0, "Maximum versions to render (0 = all)")
	generateMDCmd.Flags().BoolVar(&generateAscendingFlag, "ascending", false, "Render versions oldest-first")

	generateJSONCmd.Flags().StringVarP(&generateJSONOutputFlag, "output", "o", "", "Write output to file instead of stdout")
}

func runGenerateMD(cmd *cobra.Command, args []string) error {
	project, opts, err := renderTarget(cmd, args[0])
	if err != nil {
		return err
	}
	return writeRendered(cmd, generateOutputFlag, func(w io.Writer) error {
		return changelog.RenderMarkdown(project, w, opts)
	})
}

func runGenerateJSON(cmd *cobra.Command, args []string) error {
	project, opts, err := renderTarget(cmd, args[0])
	if err != nil {
		return err
	}
	return writeRendered(cmd, generateJSONOutputFlag, func(w io.Writer) error {
		return changelog.RenderJSON(project, w, opts)
	})
}

// renderTarget loads the store and resolves the project and render options.
// The max-versions default comes from config when the flag is not set.
func renderTarget(cmd *cobra.Command, name string) (*changelog.Project, changelog.RenderOptions, error) {
	var opts changelog.RenderOptions

	store, err := openStore()
	if err != nil {
		return nil, opts, err
	}

	project, err := store.Project(name)
	if err != nil {
		return nil, opts, err
	}

	maxVersions := generateMaxVersionsFlag
	if !cmd.Flags().Changed("max-versions") {
		maxVersions = cfg.MaxVersions
	}

	opts = changelog.RenderOptions{
		MaxVersions: maxVersions,
		Ascending:   generateAscendingFlag,
	}
	return project, opts, nil
}

// writeRendered writes render output to stdout or the --output file.
func writeRendered(cmd *cobra.Command, output string, render func(io.Writer) error) error {
	if output == "" {
		return render(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written to %s\n", output)
	return nil
}
