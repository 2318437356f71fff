package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/semmap/internal/cmd/globals"
	"github.com/agentstation/semmap/internal/cmd/output"
)

// versionInfo holds the build metadata reported by the version command.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags, err := globals.Parse(cmd)
		if err != nil {
			return err
		}

		info := versionInfo{
			Version:   Version,
			Commit:    Commit,
			Date:      Date,
			BuiltBy:   BuiltBy,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		}
		return output.FormatAny(info, output.Format(flags.Output))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
