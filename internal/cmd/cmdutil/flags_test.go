package cmdutil_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmock "github.com/agentstation/docverify/internal/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/cmdutil"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
)

func TestAddCaseFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	flags := cmdutil.AddCaseFlags(cmd)

	require.NoError(t, cmd.Flags().Parse([]string{"--sample"}))
	assert.True(t, flags.Sample)
}

func TestLoadCase(t *testing.T) {
	var requested string
	mock := &appmock.Mock{
		LoadCaseFunc: func(path string) (*documents.Case, error) {
			requested = path
			return &documents.Case{Name: "from-file"}, nil
		},
	}

	t.Run("sample", func(t *testing.T) {
		c, err := cmdutil.LoadCase(mock, &cmdutil.CaseFlags{Sample: true}, nil)
		require.NoError(t, err)
		assert.Len(t, c.Documents, 8)
	})

	t.Run("sample and path conflict", func(t *testing.T) {
		_, err := cmdutil.LoadCase(mock, &cmdutil.CaseFlags{Sample: true}, []string{"case.yaml"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("path argument", func(t *testing.T) {
		c, err := cmdutil.LoadCase(mock, &cmdutil.CaseFlags{}, []string{"case.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "from-file", c.Name)
		assert.Equal(t, "case.yaml", requested)
	})

	t.Run("configured default", func(t *testing.T) {
		_, err := cmdutil.LoadCase(mock, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "", requested)
	})
}

func TestSource(t *testing.T) {
	assert.Equal(t, "sample", cmdutil.Source(&cmdutil.CaseFlags{Sample: true}, nil))
	assert.Equal(t, "case.yaml", cmdutil.Source(&cmdutil.CaseFlags{}, []string{"case.yaml"}))
	assert.Equal(t, "case_file", cmdutil.Source(nil, nil))
}
