package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "fretwise "), "output %q", output)

	if strings.Contains(output, "version: unknown") {
		return
	}

	// Built with module info: "fretwise <version> (<go version>)".
	assert.Contains(t, output, "(go")
}
