package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/cmd/docverify/cmd/check"
	"github.com/agentstation/docverify/cmd/docverify/cmd/docs"
	"github.com/agentstation/docverify/cmd/docverify/cmd/fields"
	"github.com/agentstation/docverify/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(check.NewCommand(a))
	rootCmd.AddCommand(docs.NewCommand(a))
	rootCmd.AddCommand(fields.NewCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// VersionInfo is the structured form of the version command output.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output.Format(a.config.Format)
			if format.IsTable() {
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "docverify %s\n", a.version)
				if a.config.Verbose || format == output.FormatWide {
					fmt.Fprintf(w, "  commit:   %s\n", a.commit)
					fmt.Fprintf(w, "  built:    %s\n", a.date)
					fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
				}
				return nil
			}

			info := VersionInfo{
				Version: a.version,
				Commit:  a.commit,
				Date:    a.date,
				BuiltBy: a.builtBy,
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
		},
	}
}
