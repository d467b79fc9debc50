package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/menusys/pkg/adapters/file"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunDocumentStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "main", []byte("<menu/>")))

	data, err := os.ReadFile(filepath.Join(dir, "main.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<menu/>", string(data))

	// Stray files are not documents.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, names)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := file.New(t.TempDir())

	for _, name := range []string{"", "../escape", "a/b", `a\b`, ".."} {
		err := store.Put(context.Background(), name, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidName, "name %q", name)

		_, err = store.Get(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidName, "name %q", name)
	}
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing"))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
