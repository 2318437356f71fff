package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/semmap/internal/cmd/output"
	"github.com/agentstation/semmap/internal/validate"
	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/semmap"
)

var validateFlags struct {
	file   string
	root   string
	strict bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a semantic map file",
	Long: `Validate checks the document's structure (header, layer numbering,
entry descriptions, duplicate paths) and verifies every tracked file
exists under the root. With --strict it also flags source files on
disk that the document does not track, and warnings become fatal.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", constants.DefaultFileName, "Path to the semantic map file")
	validateCmd.Flags().StringVarP(&validateFlags.root, "root", "r", ".", "Root directory to check file existence")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "Compare against actual codebase")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	doc, err := semmap.Load(validateFlags.file)
	if err != nil {
		return err
	}

	var result *validate.Result
	if validateFlags.strict {
		result = validate.AgainstCodebase(doc, validateFlags.root)
	} else {
		result = validate.Validate(doc, validateFlags.root)
	}

	if len(result.Issues) > 0 {
		if err := output.FormatIssues(result, output.Format(globalFlags.Output)); err != nil {
			return err
		}
	}

	failed := !result.IsValid() || (validateFlags.strict && result.WarningCount() > 0)
	if failed {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s", output.Summary(result))
	}
	if !globalFlags.Quiet {
		fmt.Println("Document is valid")
	}
	return nil
}
