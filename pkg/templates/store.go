package templates

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/spf13/afero"
)

//go:embed data
var embedded embed.FS

// Store reads templates from a filesystem. It never writes.
type Store struct {
	fsys fs.FS
	// cache keeps each file's content; the same boilerplate is read many times per run
	cache map[string]string
}

// New returns a store over fsys.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys, cache: make(map[string]string)}
}

// Default returns the store of templates compiled into the binary.
func Default() *Store {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed directive guarantees the directory exists
		panic(err)
	}
	return New(sub)
}

// FromDir returns a store over dir on fsys, or the default store when dir
// is empty. A nil fsys means the OS filesystem.
func FromDir(fsys afero.Fs, dir string) (*Store, error) {
	if dir == "" {
		return Default(), nil
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateMissing, "template directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrTemplateMissing, "template directory %s is not a directory", dir)
	}
	return New(afero.NewIOFS(afero.NewBasePathFs(fsys, dir))), nil
}

// ReadPath returns the content of the template at p.
func (s *Store) ReadPath(p string) (string, error) {
	if content, ok := s.cache[p]; ok {
		return content, nil
	}

	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateMissing, "template not found (%s)", p).
			WithDetail("path", p)
	}

	content := string(data)
	s.cache[p] = content
	return content, nil
}

// Read returns the content of the referenced template.
func (s *Store) Read(ref Ref) (string, error) {
	content, err := s.ReadPath(ref.Path)
	if err != nil {
		if genErr, ok := err.(*errors.GenError); ok {
			genErr.WithDetail("section", ref.Section).WithDetail("option", ref.Option)
		}
		return "", err
	}
	return content, nil
}

// Exists reports whether the referenced template is present.
func (s *Store) Exists(ref Ref) bool {
	_, err := fs.Stat(s.fsys, ref.Path)
	return err == nil
}

// Sections lists the section directories under a device root.
func (s *Store) Sections(root string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateMissing, "template root %s", root)
	}
	var sections []string
	for _, e := range entries {
		if e.IsDir() {
			sections = append(sections, e.Name())
		}
	}
	return sections, nil
}

// Options lists the option templates of a section, without extension.
func (s *Store) Options(root, section string) ([]string, error) {
	dir := root + "/" + section
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateMissing, "template section %s", dir)
	}
	var options []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			options = append(options, strings.TrimSuffix(e.Name(), ".txt"))
		}
	}
	return options, nil
}
