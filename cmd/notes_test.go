package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeNotes(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newNotesCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestNotesCmd_Text(t *testing.T) {
	output, err := executeNotes(t, "--start-note", "G")
	require.NoError(t, err)

	assert.Equal(t, "SCALE: G Major\nNOTES: G, A, B, C, D, E, F#, G\n", output)
}

func TestNotesCmd_YAML(t *testing.T) {
	output, err := executeNotes(t, "--start-note", "C", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Scale string   `yaml:"scale"`
		Notes []string `yaml:"notes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &doc))

	assert.Equal(t, "C Major", doc.Scale)
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B", "C"}, doc.Notes)
}

func TestNotesCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing start note", []string{"--format", "text"}},
		{"unknown pitch", []string{"--start-note", "J"}},
		{"unknown format", []string{"--start-note", "C", "--format", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeNotes(t, tt.args...)
			require.Error(t, err)
		})
	}
}
