package sequence

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FS is the capability set the renumbering pipeline needs from a
// migration directory. Implementations join dir and name path-safely.
type FS interface {
	List(dir string) ([]string, error)
	Read(dir, name string) (string, error)
	Write(dir, name, content string) error
	Rename(dir, oldName, newName string) error
}

// DirFS reads and writes a real directory on the local filesystem.
type DirFS struct{}

var _ FS = DirFS{}

// List returns the names of the regular files in dir.
func (DirFS) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not find directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	return names, nil
}

func (DirFS) Read(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", errors.Wrapf(err, "could not read file %s", name)
	}
	return string(b), nil
}

func (DirFS) Write(dir, name, content string) error {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "could not write to file %s", name)
	}
	return nil
}

func (DirFS) Rename(dir, oldName, newName string) error {
	if err := os.Rename(filepath.Join(dir, oldName), filepath.Join(dir, newName)); err != nil {
		return errors.Wrapf(err, "could not rename %s to %s", oldName, newName)
	}
	return nil
}
