package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/semmap/internal/classify"
	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/errors"
)

var generateFlags struct {
	root    string
	out     string
	name    string
	purpose string
	format  string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new semantic map from a codebase",
	Long: `Generate scans the codebase, classifies every source file into an
architectural layer, and writes a fresh semantic map document.
Descriptions are inferred from doc comments and file names; edit them
afterwards to capture intent the classifier cannot see.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.root, "root", "r", ".", "Root directory of the codebase")
	generateCmd.Flags().StringVar(&generateFlags.out, "out", constants.DefaultFileName, "Output file path")
	generateCmd.Flags().StringVar(&generateFlags.name, "name", "", "Project name (defaults to directory name)")
	generateCmd.Flags().StringVar(&generateFlags.purpose, "purpose", "", "Project purpose statement")
	generateCmd.Flags().StringVar(&generateFlags.format, "format", "md", "File format: md, json, yaml, toml")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := classify.DefaultConfig()
	cfg.ProjectName = generateFlags.name
	if generateFlags.purpose != "" {
		cfg.Purpose = generateFlags.purpose
	}

	doc, err := classify.Generate(generateFlags.root, cfg)
	if err != nil {
		return err
	}

	var content []byte
	switch generateFlags.format {
	case "json":
		content, err = doc.JSON()
	case "yaml":
		content, err = doc.YAML()
	case "toml":
		content, err = doc.TOML()
	case "md", "":
		content = []byte(doc.Markdown())
	default:
		return errors.New("invalid format: must be one of: md, json, yaml, toml")
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(generateFlags.out, content, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", generateFlags.out, err)
	}

	if !globalFlags.Quiet {
		fmt.Printf("Generated %s (%d layers, %d files)\n",
			generateFlags.out, len(doc.Layers), doc.EntryCount())
	}
	return nil
}
