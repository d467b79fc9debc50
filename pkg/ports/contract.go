package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore
// implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	t.Helper()

	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")
	doc := []byte(`<menu title="Main" prompt="> "></menu>`)

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, name, doc), "Put should not return error")

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, doc, loaded)
	})

	t.Run("Put Overwrites", func(t *testing.T) {
		updated := []byte(`<menu title="Updated" prompt="> "></menu>`)
		require.NoError(t, store.Put(ctx, name, updated))

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, updated, loaded)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("List", func(t *testing.T) {
		other := name + "-b"
		require.NoError(t, store.Put(ctx, other, doc))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
		assert.Contains(t, names, other)
		assert.IsNonDecreasing(t, names, "List should be sorted")

		require.NoError(t, store.Delete(ctx, other))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Get(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Get after Delete should return ErrDocumentNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice should be a no-op")
	})

	t.Run("Isolation", func(t *testing.T) {
		buf := []byte(fmt.Sprintf(`<menu title=%q></menu>`, name))
		require.NoError(t, store.Put(ctx, name, buf))
		buf[1] = 'X'

		loaded, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, byte('m'), loaded[1], "store must not alias caller buffers")

		loaded[1] = 'Y'
		again, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, byte('m'), again[1], "store must not hand out internal buffers")

		require.NoError(t, store.Delete(ctx, name))
	})
}
