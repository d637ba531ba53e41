package fields_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docverify/cmd/docverify/cmd/fields"
	appmock "github.com/agentstation/docverify/internal/cmd/application"
	"github.com/agentstation/docverify/pkg/documents"
)

func TestFieldsCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := fields.NewCommand(&appmock.Mock{})
		cmd.SetOut(&buf)
		cmd.SetArgs(nil)
		require.NoError(t, cmd.Execute())

		assert.Contains(t, buf.String(), "Chassis / VIN")
		assert.Contains(t, buf.String(), "insuranceEnd")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := fields.NewCommand(&appmock.Mock{OutputFormatFunc: func() string { return "json" }})
		cmd.SetOut(&buf)
		cmd.SetArgs(nil)
		require.NoError(t, cmd.Execute())

		var got []documents.Field
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 16)
		assert.Equal(t, documents.FieldVIN, got[0].Key)
		assert.True(t, got[0].Important)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cmd := fields.NewCommand(&appmock.Mock{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"vin"})
		assert.Error(t, cmd.Execute())
	})
}
