package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/doclint/internal/model"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func relatives(t *testing.T, root string, paths []m.Path) []string {
	t.Helper()

	out := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := filepath.Rel(root, string(path))
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}

	return out
}

func TestDiscover_FiltersByDialect(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts":     "",
		"src/app.jsx":    "",
		"src/notes.md":   "",
		"src/data.json":  "",
		".env":           "",
		".env.local":     "",
		"assets/logo.go": "",
	})

	files, err := NewLocalSourceFSAdapter().Discover([]m.Path{m.Path(root + "/...")}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{".env", ".env.local", "src/app.jsx", "src/app.ts"}, relatives(t, root, files))
}

func TestDiscover_SkipsWellKnownDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts":               "",
		"node_modules/pkg/idx.js":  "",
		"vendor/lib/shim.js":       "",
		".git/hooks/pre-commit.js": "",
	})

	files, err := NewLocalSourceFSAdapter().Discover([]m.Path{m.Path(root + "/...")}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.ts"}, relatives(t, root, files))
}

func TestDiscover_ExcludePatterns(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts":       "",
		"src/app.test.ts":  "",
		"src/deep/gen.js":  "",
		"src/deep/main.js": "",
	})

	files, err := NewLocalSourceFSAdapter().Discover(
		[]m.Path{m.Path(root + "/...")},
		[]string{`\.test\.ts$`, `gen\.js$`},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.ts", "src/deep/main.js"}, relatives(t, root, files))
}

func TestDiscover_InvalidExcludePattern(t *testing.T) {
	_, err := NewLocalSourceFSAdapter().Discover([]m.Path{"."}, []string{"("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestDiscover_NonRecursiveRoot(t *testing.T) {
	root := writeTree(t, map[string]string{
		"top.js":      "",
		"src/deep.js": "",
	})

	files, err := NewLocalSourceFSAdapter().Discover([]m.Path{m.Path(root)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"top.js"}, relatives(t, root, files))
}

func TestDiscover_ExplicitFileArgument(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts": "",
	})

	target := filepath.Join(root, "src", "app.ts")

	files, err := NewLocalSourceFSAdapter().Discover([]m.Path{m.Path(target)}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, m.Path(target), files[0])
}

func TestDiscover_DeduplicatesOverlappingRoots(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts": "",
	})

	target := filepath.Join(root, "src", "app.ts")

	files, err := NewLocalSourceFSAdapter().Discover(
		[]m.Path{m.Path(root + "/..."), m.Path(target)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.ts"}, relatives(t, root, files))
}

func TestDiscover_UnreadableSubtreeIsSkipped(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/app.ts":           "",
		"src/locked/hidden.ts": "",
	})

	locked := filepath.Join(root, "src", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	files, err := NewLocalSourceFSAdapter().Discover([]m.Path{m.Path(root + "/...")}, nil)
	require.NoError(t, err)

	assert.Contains(t, relatives(t, root, files), "src/app.ts")
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := NewLocalSourceFSAdapter().Discover([]m.Path{"/does/not/exist"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}
