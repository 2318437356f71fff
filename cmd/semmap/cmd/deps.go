package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/semmap/internal/cmd/output"
	"github.com/agentstation/semmap/internal/deps"
	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/semmap"
)

var depsFlags struct {
	file   string
	root   string
	format string
	check  bool
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Analyze dependencies between tracked files",
	Long: `Deps scrapes import statements from every file the document tracks
and builds a file-level dependency graph, rendered as a mermaid
diagram by default. With --check it reports edges that cross layers
upward, since lower layers must not depend on higher ones.`,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().StringVarP(&depsFlags.file, "file", "f", constants.DefaultFileName, "Path to the semantic map file")
	depsCmd.Flags().StringVarP(&depsFlags.root, "root", "r", ".", "Root directory of the codebase")
	depsCmd.Flags().StringVar(&depsFlags.format, "format", "mermaid", "Graph format: mermaid, json, yaml, table")
	depsCmd.Flags().BoolVar(&depsFlags.check, "check", false, "Check for layer violations")
}

func runDeps(cmd *cobra.Command, _ []string) error {
	doc, err := semmap.Load(depsFlags.file)
	if err != nil {
		return err
	}

	m := deps.Analyze(depsFlags.root, doc)

	if depsFlags.check {
		violations := m.CheckLayerViolations(doc)
		if len(violations) > 0 {
			for _, v := range violations {
				fmt.Println(v)
			}
			cmd.SilenceUsage = true
			return fmt.Errorf("%d layer violations", len(violations))
		}
		if !globalFlags.Quiet {
			fmt.Println("No layer violations")
		}
	}

	switch depsFlags.format {
	case "mermaid", "":
		return output.FormatMermaid(m)
	default:
		format, err := output.ParseFormat(depsFlags.format)
		if err != nil {
			return err
		}
		return output.FormatDeps(m, format)
	}
}
