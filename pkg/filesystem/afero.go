package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/spf13/afero"
)

// OrOS returns fsys, or the OS filesystem when fsys is nil.
func OrOS(fsys afero.Fs) afero.Fs {
	if fsys == nil {
		return afero.NewOsFs()
	}
	return fsys
}

// Exists reports whether name exists. Directories count.
func Exists(fsys afero.Fs, name string) (bool, error) {
	ok, err := afero.Exists(fsys, name)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "cannot access %s", name).
			WithDetail("path", name)
	}
	return ok, nil
}

// WriteAtomic writes data to a temporary file next to name and renames it
// into place, so readers never see a partially written file.
func WriteAtomic(fsys afero.Fs, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", dir).
				WithDetail("path", name)
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%d.tmp", filepath.Base(name), os.Getpid()))
	if err := afero.WriteFile(fsys, tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", name).
			WithDetail("path", name)
	}

	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to move output into place at %s", name).
			WithDetail("path", name)
	}
	return nil
}
