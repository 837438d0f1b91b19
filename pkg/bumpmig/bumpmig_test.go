package bumpmig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkallio/bumpmig/pkg/bumpmig"
)

func Test_BumpOnDisk(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"0001_initial.py":      "dependencies = []",
		"0002_add_field.py":    "dependencies = [('app', '0001_initial')]",
		"0003_remove_field.py": "dependencies = [('app', '0002_add_field')]",
		"__init__.py":          "",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	results := bumpmig.Bump(dir, []string{"0002_add_field.py"})

	require.Len(t, results, 1)
	require.True(t, results[0].OK(), "unexpected error: %v", results[0].Err)
	assert.Equal(t, "0004_add_field.py", results[0].Renamed)
	assert.Equal(t, []string{"__init__.py"}, results[0].Skipped)

	content, err := os.ReadFile(filepath.Join(dir, "0004_add_field.py"))
	require.NoError(t, err)
	assert.Equal(t, "dependencies = [('app', '0003_remove_field')]", string(content))

	_, err = os.Stat(filepath.Join(dir, "0002_add_field.py"))
	assert.True(t, os.IsNotExist(err))

	seq, skipped, err := bumpmig.Scan(dir)
	require.NoError(t, err)
	require.Len(t, seq, 3)
	assert.Equal(t, []string{"__init__.py"}, skipped)
	assert.Equal(t, 4, seq[2].ID)
	assert.Equal(t, "0004_add_field.py", seq[2].Filename)
}

func Test_BumpFSAgainstSnapshot(t *testing.T) {
	fsys := bumpmig.NewMemFS().
		AddFile("m", "0001_create.sql", "-- base").
		AddFile("m", "0002_alter.sql", "-- after 0001_create").
		AddFile("m", "0003_drop.sql", "-- after 0002_alter")

	results := bumpmig.BumpFS(fsys, "m", []string{"0002_alter.sql"}, ".sql")

	require.Len(t, results, 1)
	require.True(t, results[0].OK(), "unexpected error: %v", results[0].Err)
	assert.Equal(t, "0004_alter.sql", results[0].Renamed)

	content, err := fsys.Read("m", "0004_alter.sql")
	require.NoError(t, err)
	assert.Equal(t, "-- after 0003_drop", content)
}
