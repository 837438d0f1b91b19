// Package bump drives the per-migration renumbering pipeline: scan,
// compute the new sequence id, rewrite the dependency reference, rename.
package bump

import (
	"strconv"

	"github.com/rkallio/bumpmig/internal/sequence"
)

// Result is the outcome of bumping one requested migration.
type Result struct {
	// Migration is the filename as requested by the caller.
	Migration string

	// Renamed is the filename after the bump. It is set as soon as the
	// new name is known, even when the bump later fails.
	Renamed string

	// Skipped lists non-conforming directory entries noticed while
	// scanning for this migration.
	Skipped []string

	// Err is nil only when both the rewrite and the rename succeeded.
	Err error
}

// OK reports whether the migration was fully bumped.
func (r Result) OK() bool {
	return r.Err == nil
}

// Bumper moves migrations to the end of their sequence.
type Bumper struct {
	fs  sequence.FS
	ext string
}

// New creates a bumper operating through the given filesystem for
// migration files carrying the given extension.
func New(fsys sequence.FS, ext string) *Bumper {
	return &Bumper{fs: fsys, ext: ext}
}

// Run bumps the requested migrations left to right. Each one is
// processed against a fresh scan, so later bumps see the renames done
// by earlier ones. A failure never aborts the batch; callers inspect
// the per-item results.
func (b *Bumper) Run(dir string, names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, b.one(dir, name))
	}
	return results
}

func (b *Bumper) one(dir, name string) Result {
	res := Result{Migration: name}

	seq, skipped, err := sequence.Scan(b.fs, dir)
	res.Skipped = skipped
	if err != nil {
		res.Err = err
		return res
	}
	seq.Sort()

	// The target's id comes from its own filename, independent of what
	// the scan found under that name.
	id, err := sequence.ParseID(name)
	if err != nil {
		res.Err = err
		return res
	}
	target := sequence.Entry{ID: id, Filename: name}

	last, err := seq.Last()
	if err != nil {
		res.Err = err
		return res
	}
	newID := last.ID + 1

	// First occurrence only: zero padding is not preserved, and an id
	// value recurring later in the name is left alone.
	res.Renamed = sequence.ReplaceStem(name, strconv.Itoa(id), strconv.Itoa(newID), 1)

	rewriter := sequence.NewRewriter(b.fs, b.ext)
	if err := rewriter.Rewrite(dir, seq, target); err != nil {
		res.Err = err
		return res
	}

	if err := sequence.Rename(b.fs, dir, name, res.Renamed); err != nil {
		res.Err = err
		return res
	}

	return res
}
