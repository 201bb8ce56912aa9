package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestCollection(t *testing.T) *Collection[record] {
	t.Helper()
	c, err := Open[record](filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)
	return c
}

func TestOpenCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "records.json")

	c, err := Open[record](path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c, err := Open[record](path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestAddAndFindRoundTrip(t *testing.T) {
	c := openTestCollection(t)

	c.Add(record{ID: "1", Name: "first"})
	c.Add(record{ID: "2", Name: "second"})

	assert.Equal(t, 2, c.Len())

	got, ok := c.FindOne(func(r record) bool { return r.ID == "2" })
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)

	// re-open from disk and verify the write survived
	reopened, err := Open[record](c.Path())
	require.NoError(t, err)
	assert.Equal(t, c.All(), reopened.All())
}

func TestFindOneMissing(t *testing.T) {
	c := openTestCollection(t)

	_, ok := c.FindOne(func(r record) bool { return r.ID == "nope" })
	assert.False(t, ok)
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	c := openTestCollection(t)
	c.Add(record{ID: "1", Name: "before"})

	ok := c.Update(func(r record) bool { return r.ID == "1" }, record{ID: "1"})
	require.True(t, ok)

	got, _ := c.FindOne(func(r record) bool { return r.ID == "1" })
	assert.Empty(t, got.Name, "update must not merge fields from the old record")
}

func TestUpdateNoMatch(t *testing.T) {
	c := openTestCollection(t)
	c.Add(record{ID: "1", Name: "only"})

	assert.False(t, c.Update(func(r record) bool { return r.ID == "2" }, record{ID: "2"}))
	assert.Equal(t, 1, c.Len())
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	c := openTestCollection(t)
	c.AddMany([]record{
		{ID: "1", Name: "dup"},
		{ID: "2", Name: "keep"},
		{ID: "3", Name: "dup"},
	})

	removed := c.DeleteMany(func(r record) bool { return r.Name == "dup" })
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Delete(func(r record) bool { return r.Name == "dup" }))
}

func TestCount(t *testing.T) {
	c := openTestCollection(t)
	c.AddMany([]record{{ID: "1"}, {ID: "2"}, {ID: "22"}})

	assert.Equal(t, 3, c.Count(nil))
	assert.Equal(t, 2, c.Count(func(r record) bool { return len(r.ID) == 1 }))
}

func TestRefreshReloadsFromDisk(t *testing.T) {
	c := openTestCollection(t)
	c.Add(record{ID: "1", Name: "original"})

	// simulate an out-of-band edit to the backing file
	require.NoError(t, os.WriteFile(c.Path(), []byte(`[{"id":"1","name":"edited"}]`), 0o644))

	c.Refresh()

	got, ok := c.FindOne(func(r record) bool { return r.ID == "1" })
	require.True(t, ok)
	assert.Equal(t, "edited", got.Name)
}

func TestClear(t *testing.T) {
	c := openTestCollection(t)
	c.AddMany([]record{{ID: "1"}, {ID: "2"}})

	c.Clear()

	assert.Equal(t, 0, c.Len())

	// the cleared file must still hold a JSON array, same as a fresh one
	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	reopened, err := Open[record](c.Path())
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.Len())
}
