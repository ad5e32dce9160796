package templates

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefs(t *testing.T) {
	ref := OptionRef("router", "router", "basic", "hostname")
	assert.Equal(t, "router/basic/hostname.txt", ref.Path)
	assert.Equal(t, KindOption, ref.Kind)
	assert.Equal(t, []string{"hostname"}, ref.Options)

	ref = CompositeRef("router", "ssh", "ssh-user", "username", "password")
	assert.Equal(t, "common/ssh-user.txt", ref.Path)
	assert.Equal(t, "ssh", ref.Section)
	assert.Equal(t, "composite:common/ssh-user.txt", ref.String())

	ref = CommonRef(Password, "password")
	assert.Equal(t, "common/password.txt", ref.Path)
	assert.Equal(t, KindCommon, ref.Kind)
}

func TestStoreRead(t *testing.T) {
	store := New(fstest.MapFS{
		"router/basic/hostname.txt": {Data: []byte("hostname <HOSTNAME>\n")},
	})

	content, err := store.Read(OptionRef("router", "router", "basic", "hostname"))
	require.NoError(t, err)
	assert.Equal(t, "hostname <HOSTNAME>\n", content)

	_, err = store.Read(OptionRef("router", "router", "basic", "banner"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateMissing))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "router/basic/banner.txt", details["path"])
	assert.Equal(t, "banner", details["option"])
}

func TestStoreListing(t *testing.T) {
	store := New(fstest.MapFS{
		"router/basic/hostname.txt": {Data: []byte("hostname <HOSTNAME>")},
		"router/basic/banner.txt":   {Data: []byte("banner motd #<BANNER>#")},
		"router/basic/README":       {Data: []byte("notes")},
		"router/ssh/version.txt":    {Data: []byte("ip ssh version <VERSION>")},
	})

	sections, err := store.Sections("router")
	require.NoError(t, err)
	assert.Equal(t, []string{"basic", "ssh"}, sections)

	options, err := store.Options("router", "basic")
	require.NoError(t, err)
	assert.Equal(t, []string{"banner", "hostname"}, options)

	_, err = store.Sections("switch")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateMissing))
}

func TestFromDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/templates"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "common", "save.txt"), []byte("write memory\n"), 0644))

	store, err := FromDir(fsys, dir)
	require.NoError(t, err)
	content, err := store.Read(CommonRef(Save, ""))
	require.NoError(t, err)
	assert.Equal(t, "write memory\n", content)

	_, err = FromDir(fsys, filepath.Join(dir, "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateMissing))

	_, err = FromDir(fsys, filepath.Join(dir, "common", "save.txt"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateMissing))

	store, err = FromDir(nil, "")
	require.NoError(t, err)
	assert.True(t, store.Exists(CommonRef(Enable, "")))
}

func TestFromDirOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "router", "basic"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "router", "basic", "hostname.txt"), []byte("hostname <HOSTNAME>\n"), 0644))

	store, err := FromDir(nil, dir)
	require.NoError(t, err)

	sections, err := store.Sections("router")
	require.NoError(t, err)
	assert.Equal(t, []string{"basic"}, sections)
}

func TestDefaultStoreHasBoilerplate(t *testing.T) {
	store := Default()
	for _, name := range []string{Enable, Configure, ExitConfig, ExitEnable, Password, Save} {
		assert.True(t, store.Exists(CommonRef(name, "")), name)
	}

	save, err := store.Read(CommonRef(Save, ""))
	require.NoError(t, err)
	assert.Contains(t, save, "copy running-config startup-config")
}

func TestDefaultTemplatesUseWellFormedTokens(t *testing.T) {
	store := Default()
	token := regexp.MustCompile(`<[^<>]+>`)
	wellFormed := regexp.MustCompile(`^<[A-Z0-9_]+>$`)

	for _, root := range []string{"router", "switch"} {
		sections, err := store.Sections(root)
		require.NoError(t, err)

		for _, section := range sections {
			options, err := store.Options(root, section)
			require.NoError(t, err)

			for _, option := range options {
				content, err := store.Read(OptionRef(root, root, section, option))
				require.NoError(t, err)
				for _, tok := range token.FindAllString(content, -1) {
					assert.Regexp(t, wellFormed, tok, "%s/%s/%s", root, section, option)
				}
			}
		}
	}
}
