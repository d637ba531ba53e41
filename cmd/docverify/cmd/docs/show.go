package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/cmdutil"
	"github.com/agentstation/docverify/internal/cmd/output"
	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/logging"
)

// NewShowCommand creates the docs show subcommand.
func NewShowCommand(app application.Application) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <document-id> [case-file]",
		Short: "Show one document with its extracted fields and preview",
		Args:  cobra.RangeArgs(1, 2),
	}

	caseFlags := cmdutil.AddCaseFlags(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the preview markdown without rendering it")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.LoadCase(app, caseFlags, args[1:])
		if err != nil {
			return err
		}

		doc, err := c.Find(args[0])
		if err != nil {
			return err
		}

		ctx := logging.WithDocument(logging.WithCase(logging.WithLogger(cmd.Context(), app.Logger()), c.Name), doc.ID)
		logging.FromContext(ctx).Debug().Str("type", string(doc.Type)).Msg("showing document")

		format := output.Format(app.OutputFormat())
		if !format.IsTable() {
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), doc)
		}

		markdown := documentMarkdown(app.Catalog(), doc)
		if raw {
			_, err := io.WriteString(cmd.OutOrStdout(), markdown)
			return err
		}

		rendered, err := renderMarkdown(markdown, app.NoColor())
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), rendered)
		return err
	}

	return cmd
}

// documentMarkdown builds a markdown page for doc: a heading, a table of
// the extracted fields in catalog order, then the stored preview.
func documentMarkdown(catalog *documents.Catalog, doc *documents.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.DisplayName())
	fmt.Fprintf(&b, "**ID**: `%s` · **Type**: %s · **Pages**: %d", doc.ID, doc.Type, doc.Pages)
	if doc.SourceHint != "" {
		fmt.Fprintf(&b, " · **Source**: %s", doc.SourceHint)
	}
	b.WriteString("\n\n")

	b.WriteString("| Field | Value |\n|---|---|\n")
	n := 0
	for _, f := range catalog.Fields() {
		if v, ok := doc.Value(f.Key); ok {
			fmt.Fprintf(&b, "| %s | %s |\n", f.Label, strings.ReplaceAll(v, "|", "\\|"))
			n++
		}
	}
	if n == 0 {
		b.WriteString("| - | - |\n")
	}

	if preview := strings.TrimSpace(doc.Preview); preview != "" {
		b.WriteString("\n---\n\n")
		b.WriteString(preview)
		b.WriteString("\n")
	}
	return b.String()
}

// renderMarkdown renders markdown for the terminal.
func renderMarkdown(markdown string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(constants.PreviewWrapWidth),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
