package sequence

import (
	"strings"

	"github.com/pkg/errors"
)

// Stem strips the migration file extension, yielding the identifier
// used in dependency references.
func Stem(filename, ext string) string {
	return strings.TrimSuffix(filename, ext)
}

// ReplaceStem is the one substring-replacement primitive both the
// dependency rewrite and the filename bump go through. It is a plain
// textual replacement: if old recurs where it was not meant to, so
// does the replacement. Keeping it in one place means a structural,
// prefix-aware replacement can be swapped in without touching the
// pipeline.
func ReplaceStem(text, old, new string, n int) string {
	return strings.Replace(text, old, new, n)
}

// Rewriter updates the dependency reference inside a migration file so
// it points at the migration that will become its new predecessor.
type Rewriter struct {
	fs  FS
	ext string
}

// NewRewriter creates a rewriter for files carrying the given
// extension.
func NewRewriter(fsys FS, ext string) *Rewriter {
	return &Rewriter{fs: fsys, ext: ext}
}

// Rewrite reads the target file, replaces every occurrence of its
// current predecessor's stem with the stem of the sequence's last
// entry, and writes the file back in place. seq must be sorted
// ascending and must contain the target by exact filename.
func (r *Rewriter) Rewrite(dir string, seq Sequence, target Entry) error {
	content, err := r.fs.Read(dir, target.Filename)
	if err != nil {
		return err
	}

	last, err := seq.Last()
	if err != nil {
		return err
	}

	idx := seq.IndexOf(target.Filename)
	if idx < 0 {
		return errors.Wrapf(ErrMigrationNotFound, "%s", target.Filename)
	}

	pred, err := seq.Predecessor(idx)
	if err != nil {
		return err
	}

	updated := ReplaceStem(content, Stem(pred.Filename, r.ext), Stem(last.Filename, r.ext), -1)

	return r.fs.Write(dir, target.Filename, updated)
}

// Rename moves a migration file to its new sequence id. No content is
// touched; callers rewrite before renaming.
func Rename(fsys FS, dir, oldName, newName string) error {
	return fsys.Rename(dir, oldName, newName)
}
