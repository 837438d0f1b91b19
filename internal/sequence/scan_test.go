package sequence

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseID(t *testing.T) {
	t.Parallel()

	valid := []struct {
		in  string
		out int
	}{
		{in: "0001_initial.py", out: 1},
		{in: "0002_add_field.py", out: 2},
		{in: "12_no_padding.py", out: 12},
		{in: "0300_big_gap.py", out: 300},
		{in: "7_", out: 7},
	}

	invalid := []string{
		"__init__.py",
		"helpers.py",
		"v2_add_field.py",
		"0001initial.py",
		"_0001_initial.py",
	}

	for _, tc := range valid {
		tc := tc

		t.Run(fmt.Sprintf("valid-%s", tc.in), func(t *testing.T) {
			id, err := ParseID(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.out, id)
		})
	}

	for _, in := range invalid {
		in := in

		t.Run(fmt.Sprintf("invalid-%s", in), func(t *testing.T) {
			_, err := ParseID(in)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadPrefix))
		})
	}
}

func Test_Scan(t *testing.T) {
	t.Run("conforming and non-conforming entries", func(t *testing.T) {
		fsys := NewMemFS().
			AddFile("migrations", "0001_initial.py", "").
			AddFile("migrations", "0002_add_field.py", "").
			AddFile("migrations", "__init__.py", "").
			AddFile("migrations", "helpers.py", "")

		seq, skipped, err := Scan(fsys, "migrations")

		require.NoError(t, err)
		assert.Len(t, seq, 2)
		assert.Len(t, skipped, 2)
		assert.ElementsMatch(t, []string{"__init__.py", "helpers.py"}, skipped)

		// every directory entry is either scanned or skipped
		assert.Equal(t, 4, len(seq)+len(skipped))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, _, err := Scan(NewMemFS(), "nowhere")
		assert.Error(t, err)
	})

	t.Run("real directory", func(t *testing.T) {
		dir := t.TempDir()
		fsys := DirFS{}

		require.NoError(t, fsys.Write(dir, "0001_initial.py", "x"))
		require.NoError(t, fsys.Write(dir, "notes.txt", "y"))

		seq, skipped, err := Scan(fsys, dir)
		require.NoError(t, err)
		require.Len(t, seq, 1)
		assert.Equal(t, Entry{ID: 1, Filename: "0001_initial.py"}, seq[0])
		assert.Equal(t, []string{"notes.txt"}, skipped)
	})
}

func Test_Sort(t *testing.T) {
	t.Parallel()

	t.Run("ascending by id", func(t *testing.T) {
		seq := Sequence{
			{ID: 3, Filename: "0003_c.py"},
			{ID: 1, Filename: "0001_a.py"},
			{ID: 2, Filename: "0002_b.py"},
		}

		seq.Sort()

		assert.Equal(t, []int{1, 2, 3}, ids(seq))
	})

	t.Run("stable for duplicate ids", func(t *testing.T) {
		seq := Sequence{
			{ID: 2, Filename: "0002_first.py"},
			{ID: 1, Filename: "0001_a.py"},
			{ID: 2, Filename: "0002_second.py"},
		}

		seq.Sort()

		assert.Equal(t, "0002_first.py", seq[1].Filename)
		assert.Equal(t, "0002_second.py", seq[2].Filename)
	})
}

func Test_Last(t *testing.T) {
	t.Parallel()

	t.Run("greatest id", func(t *testing.T) {
		seq := Sequence{{ID: 1, Filename: "0001_a.py"}, {ID: 2, Filename: "0002_b.py"}}
		last, err := seq.Last()
		require.NoError(t, err)
		assert.Equal(t, 2, last.ID)
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := Sequence{}.Last()
		assert.True(t, errors.Is(err, ErrEmptySequence))
	})
}

func Test_Predecessor(t *testing.T) {
	t.Parallel()

	seq := Sequence{
		{ID: 1, Filename: "0001_a.py"},
		{ID: 2, Filename: "0002_b.py"},
		{ID: 2, Filename: "0002_dup.py"},
		{ID: 3, Filename: "0003_c.py"},
	}

	t.Run("strictly greater id takes the neighbour", func(t *testing.T) {
		pred, err := seq.Predecessor(1)
		require.NoError(t, err)
		assert.Equal(t, "0001_a.py", pred.Filename)
	})

	t.Run("duplicate id skips one back", func(t *testing.T) {
		pred, err := seq.Predecessor(2)
		require.NoError(t, err)
		assert.Equal(t, "0001_a.py", pred.Filename)
	})

	t.Run("first entry has no predecessor", func(t *testing.T) {
		_, err := seq.Predecessor(0)
		assert.True(t, errors.Is(err, ErrNoPredecessor))
	})

	t.Run("second entry with duplicate id has no predecessor", func(t *testing.T) {
		dup := Sequence{
			{ID: 5, Filename: "0005_a.py"},
			{ID: 5, Filename: "0005_b.py"},
		}
		_, err := dup.Predecessor(1)
		assert.True(t, errors.Is(err, ErrNoPredecessor))
	})
}

func ids(seq Sequence) []int {
	out := make([]int, len(seq))
	for i, e := range seq {
		out[i] = e.ID
	}
	return out
}
