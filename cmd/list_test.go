package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ShowsCoverage(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"src/users.js":    compliantFixture,
		"src/sessions.js": violatingFixture,
	})

	var out bytes.Buffer

	cmd := newListCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir + "/..."})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "src/users.js")
	assert.Contains(t, out.String(), "src/sessions.js")
}

func TestList_ExcludeFlag(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"src/users.js":    compliantFixture,
		"src/sessions.js": violatingFixture,
	})

	var out bytes.Buffer

	cmd := newListCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--exclude", `sessions\.js$`, dir + "/..."})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "src/users.js")
	assert.NotContains(t, out.String(), "src/sessions.js")
}

func TestList_EmptyTree(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer

	cmd := newListCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir + "/..."})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "No source files found")
}
