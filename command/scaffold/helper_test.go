package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// copyProject clones the miniature boilerplate from testdata into a
// temporary root so tests can mutate it freely.
func copyProject(t *testing.T) string {
	t.Helper()

	source := filepath.Join("..", "..", "testdata", "project")
	root := t.TempDir()

	err := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}

		target := filepath.Join(root, rel)
		if entry.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0644)
	})
	require.NoError(t, err)

	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// snapshotTree captures every file under root keyed by relative path.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(content)
		return nil
	})
	require.NoError(t, err)

	return snapshot
}

func mustRewriter(t *testing.T, module string, table string) *Rewriter {
	t.Helper()

	names, err := Derive(module, table)
	require.NoError(t, err)

	rewriter, err := NewRewriter("Example", names)
	require.NoError(t, err)

	return rewriter
}
