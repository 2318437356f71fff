package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/semmap/internal/classify"
	"github.com/agentstation/semmap/internal/cmd/output"
	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/errors"
	"github.com/agentstation/semmap/pkg/paths"
	"github.com/agentstation/semmap/pkg/reconcile"
	"github.com/agentstation/semmap/pkg/semmap"
)

var updateFlags struct {
	file string
	root string
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing semantic map with new and removed files",
	Long: `Update rescans the codebase and reconciles the document against it:
entries for deleted files are dropped, new files are added with
inferred descriptions, and everything else is left exactly as written.
The document is rewritten in canonical form.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVarP(&updateFlags.file, "file", "f", constants.DefaultFileName, "Path to the semantic map file")
	updateCmd.Flags().StringVarP(&updateFlags.root, "root", "r", ".", "Root directory of the codebase")
}

func runUpdate(_ *cobra.Command, _ []string) error {
	doc, err := semmap.Load(updateFlags.file)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return fmt.Errorf("%s does not exist, run 'semmap generate' first", updateFlags.file)
		}
		return err
	}

	cfg := classify.DefaultConfig()
	cfg.ProjectName = doc.ProjectName
	cfg.Purpose = doc.Purpose
	fresh, err := classify.Generate(updateFlags.root, cfg)
	if err != nil {
		return err
	}

	prefix := paths.BuildRootPrefixRelative(filepath.Dir(updateFlags.file), updateFlags.root)
	result := reconcile.Reconcile(doc, fresh, prefix)

	if err := result.Document.Save(updateFlags.file); err != nil {
		return err
	}

	if globalFlags.Quiet {
		return nil
	}
	format := output.Format(globalFlags.Output)
	if format != output.FormatTable && format != "" {
		return output.FormatChangeset(result.Changeset, format)
	}

	added, removed, _ := result.Changeset.Summary()
	fmt.Printf("Updated %s: +%d -%d\n", updateFlags.file, added, removed)
	for _, p := range result.Changeset.Added {
		fmt.Printf("  + %s\n", p)
	}
	for _, p := range result.Changeset.Removed {
		fmt.Printf("  - %s\n", p)
	}
	return nil
}
