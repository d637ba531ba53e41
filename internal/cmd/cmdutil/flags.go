// Package cmdutil provides shared flags and case loading for docverify commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
)

// CaseFlags holds the flags that select which case a command works on.
type CaseFlags struct {
	Sample bool
}

// AddCaseFlags adds case-selection flags to a command.
func AddCaseFlags(cmd *cobra.Command) *CaseFlags {
	flags := &CaseFlags{}

	cmd.Flags().BoolVar(&flags.Sample, "sample", false,
		"Use the embedded sample case instead of a case file")

	return flags
}

// CaseSource loads cases for commands.
type CaseSource interface {
	LoadCase(path string) (*documents.Case, error)
	SampleCase() (*documents.Case, error)
}

// LoadCase resolves the case named by args and flags: the embedded sample
// with --sample, otherwise the file in args[0] or the configured default.
func LoadCase(src CaseSource, flags *CaseFlags, args []string) (*documents.Case, error) {
	if flags != nil && flags.Sample {
		if len(args) > 0 {
			return nil, errors.NewValidationError("sample", args[0], "--sample cannot be combined with a case file")
		}
		return src.SampleCase()
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return src.LoadCase(path)
}

// Source describes where LoadCase reads the case from, for log fields.
func Source(flags *CaseFlags, args []string) string {
	switch {
	case flags != nil && flags.Sample:
		return constants.SampleCaseName
	case len(args) > 0:
		return args[0]
	default:
		return "case_file"
	}
}
