package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Areuc/MyrepsCL/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStore_PutGetRoundtrip(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []testRecord{{ID: "1", Name: "Push Day"}, {ID: "2", Name: "Leg Day"}}
	require.NoError(t, fs.Put("routines_u1", in))

	var out []testRecord
	require.NoError(t, fs.Get("routines_u1", &out))
	assert.Equal(t, in, out)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out []testRecord
	assert.ErrorIs(t, fs.Get("nope", &out), store.ErrKeyNotFound)
}

func TestFileStore_WritesHumanReadableJSON(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Put("currentUser", testRecord{ID: "1", Name: "Ana"}))

	data, err := os.ReadFile(filepath.Join(dir, "currentUser.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n"), "expected indented JSON")
	assert.Contains(t, string(data), `"name": "Ana"`)
}

func TestFileStore_PutReplacesWholeValue(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Put("k", []testRecord{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, fs.Put("k", []testRecord{{ID: "3"}}))

	var out []testRecord
	require.NoError(t, fs.Get("k", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Put("k", testRecord{ID: "1"}))
	require.NoError(t, fs.Delete("k"))
	require.NoError(t, fs.Delete("k"))

	var out testRecord
	assert.ErrorIs(t, fs.Get("k", &out), store.ErrKeyNotFound)
}

func TestMemoryStore_BehavesLikeFileStore(t *testing.T) {
	ms := store.NewMemoryStore()

	require.NoError(t, ms.Put("k", testRecord{ID: "1", Name: "Ana"}))
	var out testRecord
	require.NoError(t, ms.Get("k", &out))
	assert.Equal(t, "Ana", out.Name)

	require.NoError(t, ms.Delete("k"))
	assert.ErrorIs(t, ms.Get("k", &out), store.ErrKeyNotFound)
}
