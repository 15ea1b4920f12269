package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/doclint/internal/model"
)

func TestDefault_CoversAllConstructKinds(t *testing.T) {
	registry := Default()

	for _, kind := range m.ConstructKinds() {
		rule, ok := registry.RuleFor(kind)
		require.True(t, ok, "no rule for %s", kind)
		assert.NotEmpty(t, rule.Required, "rule for %s has no required fields", kind)
		assert.True(t, rule.RequireBlock)
	}

	assert.Equal(t, m.ViolationKinds(), registry.FailOn())
}

func TestParse_ValidTable(t *testing.T) {
	registry, err := Parse([]byte(`{
		"version": 1,
		"constructs": {
			"function": {
				"required": [
					{"tag": "@description", "value": "non-empty"},
					{"tag": "@throws", "value": "matches-pattern:status-code"}
				],
				"optional": ["@example"]
			},
			"widget": {
				"require_block": false,
				"required": [{"tag": "@description", "value": "non-empty"}]
			}
		},
		"fail_on": ["MissingBlock"]
	}`))
	require.NoError(t, err)

	rule, ok := registry.RuleFor(m.KindFunction)
	require.True(t, ok)
	assert.Len(t, rule.Required, 2)
	assert.Equal(t, []string{"@example"}, rule.Optional)
	assert.True(t, rule.RequireBlock)

	// Unknown construct kinds are carried so new kinds need no recompile.
	widget, ok := registry.RuleFor(m.ConstructKind("widget"))
	require.True(t, ok)
	assert.False(t, widget.RequireBlock)

	_, ok = registry.RuleFor(m.KindInterface)
	assert.False(t, ok)

	assert.Equal(t, []m.ViolationKind{m.MissingBlock}, registry.FailOn())
}

func TestParse_MalformedTables(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"version": 1,`},
		{"missing constructs", `{"version": 1}`},
		{"empty constructs", `{"version": 1, "constructs": {}}`},
		{"no required fields", `{"version": 1, "constructs": {"function": {"required": []}}}`},
		{"bad predicate", `{"version": 1, "constructs": {"function": {"required": [{"tag": "@x", "value": "maybe"}]}}}`},
		{"bad fail_on", `{"version": 1, "constructs": {"function": {"required": [{"tag": "@x", "value": "non-empty"}]}}, "fail_on": ["Nope"]}`},
		{"unknown top-level key", `{"version": 1, "constructs": {"function": {"required": [{"tag": "@x", "value": "non-empty"}]}}, "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")

	table := `{
		"version": 1,
		"constructs": {
			"function": {"required": [{"tag": "@description", "value": "non-empty"}]}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o600))

	registry, err := Load(path)
	require.NoError(t, err)

	_, ok := registry.RuleFor(m.KindFunction)
	assert.True(t, ok)

	// fail_on omitted: every kind fails the run by default.
	assert.Equal(t, m.ViolationKinds(), registry.FailOn())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
