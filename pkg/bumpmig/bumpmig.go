// Package bumpmig provides a public API for renumbering ordered
// migration files.
//
// A bump moves a migration to the end of its sequence: the file gets
// the next free sequence id, the dependency reference inside it is
// rewritten to point at the current last migration, and the file is
// renamed to match.
//
// Basic usage:
//
//	results := bumpmig.Bump("./app/migrations", []string{"0002_add_field.py"})
//	for _, r := range results {
//	    if !r.OK() {
//	        log.Printf("%s: %v", r.Migration, r.Err)
//	    }
//	}
//
// For CLI usage, install the bumpmig command:
//
//	go install github.com/rkallio/bumpmig/cmd/bumpmig@latest
package bumpmig

import (
	"github.com/rkallio/bumpmig/internal/bump"
	"github.com/rkallio/bumpmig/internal/config"
	"github.com/rkallio/bumpmig/internal/sequence"
)

// Entry is one migration file in a sequence.
type Entry = sequence.Entry

// Sequence is a list of entries ordered ascending by id.
type Sequence = sequence.Sequence

// FS is the filesystem capability set the pipeline operates through.
type FS = sequence.FS

// Result is the outcome of bumping one migration.
type Result = bump.Result

// Scan lists a migration directory, returning the entries whose names
// carry a numeric prefix sorted ascending by id, plus the names that
// were skipped.
func Scan(dir string) (Sequence, []string, error) {
	seq, skipped, err := sequence.Scan(sequence.DirFS{}, dir)
	if err != nil {
		return nil, nil, err
	}
	seq.Sort()
	return seq, skipped, nil
}

// Bump moves the named migrations to the end of the sequence in dir,
// left to right. Files are assumed to carry the default ".py"
// extension; use BumpFS for anything else.
func Bump(dir string, names []string) []Result {
	return BumpFS(sequence.DirFS{}, dir, names, config.DefaultExtension)
}

// BumpFS is Bump against an arbitrary filesystem and file extension.
func BumpFS(fsys FS, dir string, names []string, ext string) []Result {
	return bump.New(fsys, ext).Run(dir, names)
}

// NewMemFS returns an empty in-memory filesystem, useful for dry runs
// and tests.
func NewMemFS() *sequence.MemFS {
	return sequence.NewMemFS()
}
