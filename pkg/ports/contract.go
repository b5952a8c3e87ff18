package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/pkg/codec"
)

// RunDocumentStoreContract verifies that store behaves like a DocumentStore.
// store must be empty.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Save_Load", func(t *testing.T) {
		data := []byte("sections:\n  main:\n    - answer\n")
		require.NoError(t, store.Save(ctx, "hello", data, codec.YAML))

		doc, err := store.Load(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", doc.Name)
		assert.Equal(t, codec.YAML, doc.Format)
		assert.Equal(t, string(data), string(doc.Data))

		// callers must not be able to change stored bytes
		doc.Data[0] = 'X'
		again, err := store.Load(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, string(data), string(again.Data), "stored document was mutated through a loaded copy")
	})

	t.Run("Save_Replaces", func(t *testing.T) {
		data := []byte(`{"sections":{"main":["hangup"]}}`)
		require.NoError(t, store.Save(ctx, "hello", data, codec.JSON))

		doc, err := store.Load(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, codec.JSON, doc.Format)
		assert.Equal(t, string(data), string(doc.Data))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "another", []byte(`{}`), codec.JSON))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"another", "hello"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "hello"))

		_, err := store.Load(ctx, "hello")
		assert.ErrorIs(t, err, ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")
		assert.NoError(t, store.Delete(ctx, "hello"), "deleting twice is not an error")
	})

	t.Run("InvalidName", func(t *testing.T) {
		for _, name := range []string{"", "../escape", ".hidden", `a\b`} {
			assert.ErrorIs(t, store.Save(ctx, name, []byte(`{}`), codec.JSON), ErrInvalidName, "save %q", name)

			_, err := store.Load(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName, "load %q", name)
		}
	})
}
