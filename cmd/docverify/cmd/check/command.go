// Package check implements the check command, which reconciles a case and
// reports mismatching fields, the tax check and the risk score.
package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/cmdutil"
	"github.com/agentstation/docverify/internal/cmd/output"
	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/logging"
)

// RiskError is returned when a case scores at or above the risk threshold.
type RiskError struct {
	Case      string
	Risk      int
	Threshold int
}

// Error implements the error interface
func (e *RiskError) Error() string {
	return fmt.Sprintf("case %s: risk %d reached threshold %d", e.Case, e.Risk, e.Threshold)
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		mismatchesOnly bool
		failOnRisk     int
		field          string
	)

	cmd := &cobra.Command{
		Use:     "check [case-file]",
		GroupID: "core",
		Short:   "Reconcile a case and report mismatches",
		Long: `Check reconciles every document of a case field by field.

For each field the most common value across document types becomes the
canonical value; document types that supplied a different value are flagged.
The MV tax is checked against 11% (±1%) of the sale amount, and the findings
are folded into a risk score from 0 to 100.

Case files may be YAML, JSON or TOML.`,
		Example: `  docverify check --sample                  # Check the embedded sample case
  docverify check case.yaml                 # Check a case file
  docverify check case.toml -o wide         # Show every document type's value
  docverify check case.json --fail-on-risk 20
  docverify check --sample --field address   # Compare one field across documents`,
		Args: cobra.MaximumNArgs(1),
	}

	caseFlags := cmdutil.AddCaseFlags(cmd)
	cmd.Flags().BoolVarP(&mismatchesOnly, "mismatches-only", "m", false,
		"Only show fields with mismatches")
	cmd.Flags().StringVar(&field, "field", "",
		"Show every document type's value for one field key (see 'docverify fields')")
	cmd.Flags().IntVar(&failOnRisk, "fail-on-risk", 0,
		"Exit with an error when the risk score reaches this value (0 disables, default from risk_threshold)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		threshold := app.RiskThreshold()
		if cmd.Flags().Changed("fail-on-risk") {
			threshold = failOnRisk
		}
		if threshold < 0 || threshold > constants.MaxRiskScore {
			return errors.NewValidationError("fail-on-risk", threshold, "must be between 0 and 100")
		}

		key := documents.FieldKey(field)
		if field != "" && !app.Catalog().Contains(key) {
			return errors.NewNotFoundError("field", field)
		}

		c, err := cmdutil.LoadCase(app, caseFlags, args)
		if err != nil {
			return err
		}

		engine, err := app.Engine()
		if err != nil {
			return err
		}

		ctx := logging.WithLogger(cmd.Context(), app.Logger())
		ctx = logging.WithSource(logging.WithCase(ctx, c.Name), cmdutil.Source(caseFlags, args))
		ctx = logging.WithOperation(ctx, "check")
		logger := logging.FromContext(ctx)

		report := engine.Reconcile(c.Documents)

		for _, m := range report.Mismatches {
			types := make([]string, len(m.DocTypes))
			for i, t := range m.DocTypes {
				types[i] = string(t)
			}
			logger.Debug().
				Str("field", string(m.Field)).
				Str("canonical", m.Canonical).
				Strs("doc_types", types).
				Msg("field mismatch")
		}
		logger.Info().
			Int("mismatches", len(report.Mismatches)).
			Bool("tax_ok", report.TaxOK).
			Int("risk", report.Risk).
			Msg("case reconciled")

		format := output.Format(app.OutputFormat())
		if field != "" {
			err = printField(cmd.OutOrStdout(), app.Catalog(), c.Name, report, key, format)
		} else {
			err = printReport(cmd.OutOrStdout(), app.Catalog(), c.Name, report, format, mismatchesOnly)
		}
		if err != nil {
			return err
		}

		if threshold > 0 && report.Risk >= threshold {
			logger.Warn().Int("threshold", threshold).Msg("risk threshold reached")
			return &RiskError{Case: c.Name, Risk: report.Risk, Threshold: threshold}
		}
		return nil
	}

	return cmd
}
