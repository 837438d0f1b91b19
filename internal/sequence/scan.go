// Package sequence implements scanning and renumbering of ordered
// migration files. A migration file is named <id>_<description><ext>
// where only the integer before the first underscore carries meaning.
package sequence

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrBadPrefix means a filename's segment before the first
	// underscore does not parse as an integer.
	ErrBadPrefix = errors.New("filename has no numeric prefix")

	// ErrEmptySequence means the scanned directory held no migrations.
	ErrEmptySequence = errors.New("no last migration found")

	// ErrMigrationNotFound means the requested migration is not among
	// the scanned entries.
	ErrMigrationNotFound = errors.New("migration not found in sequence")

	// ErrNoPredecessor means a migration sits too early in the
	// sequence to have a predecessor to rewrite.
	ErrNoPredecessor = errors.New("no predecessor in sequence")
)

// Entry is one migration file in the sequence.
type Entry struct {
	ID       int
	Filename string
}

// Sequence is a list of entries, ordered ascending by ID once Sort has
// been called.
type Sequence []Entry

// ParseID extracts the leading sequence id from a migration filename.
func ParseID(filename string) (int, error) {
	prefix := strings.SplitN(filename, "_", 2)[0]
	id, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, errors.Wrapf(ErrBadPrefix, "%s", filename)
	}
	return id, nil
}

// Scan lists dir and collects every entry whose filename carries a
// numeric prefix. Non-conforming names are returned as skipped rather
// than aborting the scan.
func Scan(fsys FS, dir string) (Sequence, []string, error) {
	names, err := fsys.List(dir)
	if err != nil {
		return nil, nil, err
	}

	var seq Sequence
	var skipped []string
	for _, name := range names {
		id, err := ParseID(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		seq = append(seq, Entry{ID: id, Filename: name})
	}

	return seq, skipped, nil
}

// Sort orders the sequence ascending by id. Entries with equal ids keep
// their scan order.
func (s Sequence) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].ID < s[j].ID
	})
}

// Last returns the entry with the greatest id in a sorted sequence.
func (s Sequence) Last() (Entry, error) {
	if len(s) == 0 {
		return Entry{}, ErrEmptySequence
	}
	return s[len(s)-1], nil
}

// IndexOf locates a migration by exact filename match.
func (s Sequence) IndexOf(filename string) int {
	for i := range s {
		if s[i].Filename == filename {
			return i
		}
	}
	return -1
}

// Predecessor returns the entry whose stem the migration at idx names
// as its dependency: the immediate neighbour when its id is strictly
// smaller, otherwise one position further back (duplicate ids share a
// predecessor). The lookup is bounds-checked; the first and second
// positions of a sequence have nothing before them.
func (s Sequence) Predecessor(idx int) (Entry, error) {
	want := idx - 1
	if want >= 0 && s[idx].ID <= s[want].ID {
		want = idx - 2
	}
	if want < 0 {
		return Entry{}, errors.Wrapf(ErrNoPredecessor, "%s at position %d", s[idx].Filename, idx)
	}
	return s[want], nil
}
