// Package fields implements the fields command, which lists the field
// catalog reconciliation runs over.
package fields

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/output"
)

// NewCommand creates the fields command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "fields",
		GroupID: "core",
		Short:   "List the fields compared across documents",
		Long: `Fields lists the catalog of semantic fields in the order they are
reconciled. Fields marked important identify the vehicle itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output.Format(app.OutputFormat())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), app.Catalog().Fields())
		},
	}
}
