package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

const compliantFixture = `// @description User storage.

// @description Creates a user.
// @param email address to register
// @returns the created user record
export function createUser(email) {}
`

const violatingFixture = `// @description Session helpers.

export function touchSession(id) {}
`

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func executeRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return &out, err
}

func TestRoot_CleanTreeExitsZero(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/users.js": compliantFixture})

	out, err := executeRoot(t, dir+"/...")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Files scanned: 1, with violations: 0")
}

func TestRoot_ViolationsExitOne(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/sessions.js": violatingFixture})

	out, err := executeRoot(t, dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitViolations, exitErr.Code)
	assert.Contains(t, out.String(), "[MissingBlock]")
}

func TestRoot_MalformedRulesExitTwo(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"src/users.js": compliantFixture,
		"rules.json":   `{"version": 1}`,
	})

	_, err := executeRoot(t, "--rules", filepath.Join(dir, "rules.json"), dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigError, exitErr.Code)
}

func TestRoot_MissingRootExitTwo(t *testing.T) {
	_, err := executeRoot(t, "/does/not/exist/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigError, exitErr.Code)
}

func TestRoot_JSONFormat(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/sessions.js": violatingFixture})

	out, err := executeRoot(t, "--format", "json", dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitViolations, exitErr.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Contains(t, doc, "violations")
}

func TestRoot_UnknownFormatExitTwo(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/users.js": compliantFixture})

	_, err := executeRoot(t, "--format", "yaml", dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigError, exitErr.Code)
	assert.Contains(t, exitErr.Error(), "unknown format")
}

func TestRoot_FailOnFiltersExitStatus(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/sessions.js": violatingFixture})

	// The only violation is a MissingBlock; gating on StaleOwnership
	// still reports it but exits clean.
	out, err := executeRoot(t, "--fail-on", "StaleOwnership", dir+"/...")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[MissingBlock]")
}

func TestRoot_InvalidFailOnExitTwo(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/users.js": compliantFixture})

	_, err := executeRoot(t, "--fail-on", "NoSuchKind", dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigError, exitErr.Code)
}

func TestRoot_OutputWritesReportFile(t *testing.T) {
	dir := writeFixture(t, map[string]string{"src/sessions.js": violatingFixture})
	target := filepath.Join(t.TempDir(), "report.json")

	_, err := executeRoot(t, "--format", "json", "--output", target, dir+"/...")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitViolations, exitErr.Code)

	raw, readErr := os.ReadFile(target)
	require.NoError(t, readErr)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
}

func TestRoot_ExcludeFlag(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"src/users.js":    compliantFixture,
		"src/sessions.js": violatingFixture,
	})

	_, err := executeRoot(t, "--exclude", `sessions\.js$`, dir+"/...")
	require.NoError(t, err)
}

func TestResolveFormat(t *testing.T) {
	format, explicit, err := resolveFormat("")
	require.NoError(t, err)
	assert.Equal(t, "text", format)
	assert.False(t, explicit)

	format, explicit, err = resolveFormat("json")
	require.NoError(t, err)
	assert.Equal(t, "json", format)
	assert.True(t, explicit)

	_, _, err = resolveFormat("yaml")
	require.Error(t, err)
}

func TestResolveFormat_Environment(t *testing.T) {
	t.Setenv("DOCLINT_FORMAT", "json")

	format, explicit, err := resolveFormat("")
	require.NoError(t, err)
	assert.Equal(t, "json", format)
	assert.True(t, explicit)

	// The flag wins over the environment.
	format, _, err = resolveFormat("text")
	require.NoError(t, err)
	assert.Equal(t, "text", format)
}

func TestResolveWorkers(t *testing.T) {
	assert.Equal(t, 4, resolveWorkers(4))
	assert.Equal(t, 0, resolveWorkers(0))

	t.Setenv("DOCLINT_WORKERS", "8")
	assert.Equal(t, 8, resolveWorkers(0))
	assert.Equal(t, 2, resolveWorkers(2))

	t.Setenv("DOCLINT_WORKERS", "nope")
	assert.Equal(t, 0, resolveWorkers(0))
}

func TestResolveFailOn(t *testing.T) {
	registry := schema.Default()

	kinds, err := resolveFailOn(nil, registry)
	require.NoError(t, err)
	assert.Equal(t, registry.FailOn(), kinds)

	kinds, err = resolveFailOn([]string{"missingblock", "StaleOwnership"}, registry)
	require.NoError(t, err)
	assert.Equal(t, []m.ViolationKind{m.MissingBlock, m.StaleOwnership}, kinds)

	_, err = resolveFailOn([]string{"bogus"}, registry)
	require.Error(t, err)
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"./..."}, parsePaths(nil))
	assert.Equal(t, []m.Path{"src", ".env"}, parsePaths([]string{"src", ".env"}))
}

func TestLoadRegistry_Environment(t *testing.T) {
	dir := writeFixture(t, map[string]string{
		"rules.json": `{"version": 1, "constructs": {"function": {"required": [{"tag": "@description", "value": "non-empty"}]}}}`,
	})

	t.Setenv("DOCLINT_RULES", filepath.Join(dir, "rules.json"))

	registry, err := loadRegistry("")
	require.NoError(t, err)

	_, ok := registry.RuleFor(m.KindFunction)
	assert.True(t, ok)

	_, ok = registry.RuleFor(m.KindAPIRoute)
	assert.False(t, ok)
}
