package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "render:")
	assert.Contains(t, string(data), "log:")

	// A second init must not clobber the existing file.
	require.Error(t, cmd.Execute())
}
