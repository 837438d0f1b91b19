package sequence

import (
	"sort"

	"github.com/pkg/errors"
)

// MemFS is an in-memory FS implementation. It backs the test suite and
// lets library users run the pipeline against a directory snapshot
// without touching the real filesystem.
type MemFS struct {
	dirs map[string]map[string]string
}

var _ FS = (*MemFS)(nil)

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{dirs: make(map[string]map[string]string)}
}

// AddFile creates or replaces a file, creating the directory as needed.
func (m *MemFS) AddFile(dir, name, content string) *MemFS {
	if m.dirs[dir] == nil {
		m.dirs[dir] = make(map[string]string)
	}
	m.dirs[dir][name] = content
	return m
}

// List returns file names sorted lexicographically so that scans are
// deterministic across runs.
func (m *MemFS) List(dir string) ([]string, error) {
	files, ok := m.dirs[dir]
	if !ok {
		return nil, errors.Errorf("could not find directory %s", dir)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (m *MemFS) Read(dir, name string) (string, error) {
	content, ok := m.dirs[dir][name]
	if !ok {
		return "", errors.Errorf("could not read file %s", name)
	}
	return content, nil
}

func (m *MemFS) Write(dir, name, content string) error {
	files, ok := m.dirs[dir]
	if !ok {
		return errors.Errorf("could not write to file %s", name)
	}
	files[name] = content
	return nil
}

func (m *MemFS) Rename(dir, oldName, newName string) error {
	files, ok := m.dirs[dir]
	if !ok {
		return errors.Errorf("could not rename %s to %s", oldName, newName)
	}

	content, ok := files[oldName]
	if !ok {
		return errors.Errorf("could not rename %s to %s", oldName, newName)
	}

	delete(files, oldName)
	files[newName] = content

	return nil
}
