package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCmd_Use(t *testing.T) {
	assert.Equal(t, "info", infoCmd.Use)
}

func TestInfoCmd_PrintsIdentityAndCapabilities(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Personal Resume Agent")
	assert.Contains(t, buf.String(), "Capabilities:")
	assert.Contains(t, buf.String(), "Answer questions about work experience")
}

func TestInfoCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		infoJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Name\"")
	assert.Contains(t, buf.String(), "\"Capabilities\"")
}
