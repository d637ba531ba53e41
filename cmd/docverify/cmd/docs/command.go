// Package docs implements the docs command, which lists the documents of a
// case and renders their markdown previews.
package docs

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/cmdutil"
	"github.com/agentstation/docverify/internal/cmd/output"
)

// NewCommand creates the docs command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs [case-file]",
		GroupID: "core",
		Short:   "List the documents of a case",
		Example: `  docverify docs --sample
  docverify docs case.yaml -o wide
  docverify docs show doc_inv --sample`,
		Args: cobra.MaximumNArgs(1),
	}

	caseFlags := cmdutil.AddCaseFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.LoadCase(app, caseFlags, args)
		if err != nil {
			return err
		}

		format := output.Format(app.OutputFormat())
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), c.Documents)
	}

	cmd.AddCommand(NewShowCommand(app))

	return cmd
}
