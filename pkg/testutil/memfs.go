package testutil

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Boilerplate is the shared template set every assembled script needs.
func Boilerplate() map[string]string {
	return map[string]string{
		"common/enable.txt":      "enable\n",
		"common/conft.txt":       "configure terminal\n",
		"common/exit-conft.txt":  "end\n",
		"common/exit-enable.txt": "disable\n",
		"common/password.txt":    "enable secret <PASSWORD>\n",
		"common/save.txt":        "copy running-config startup-config\n",
	}
}

// TemplateFS builds an in-memory template tree from path -> content maps.
// Later maps win.
func TemplateFS(trees ...map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, tree := range trees {
		for name, content := range tree {
			fsys[name] = &fstest.MapFile{Data: []byte(content)}
		}
	}
	return fsys
}

// MemFS returns an afero memory filesystem holding files.
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		WriteFS(t, fsys, name, content)
	}
	return fsys
}

// WriteFS writes one file to fsys.
func WriteFS(t *testing.T, fsys afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0644))
}

// ReadFS returns the content of name on fsys.
func ReadFS(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	return string(data)
}

// ExistsFS reports whether name exists on fsys.
func ExistsFS(t *testing.T, fsys afero.Fs, name string) bool {
	t.Helper()

	ok, err := afero.Exists(fsys, name)
	require.NoError(t, err)
	return ok
}
