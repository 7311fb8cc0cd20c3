package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JovenSoh/bookshelf/internal/core/book"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSample(t *testing.T) {
	c, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, SampleSource, c.Source())
	assert.Equal(t, 12, c.Len())

	b, err := c.Lookup("dune")
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, "covers/dune.jpg", b.CoverImage)
}

func TestLoad_EmptySpecUsesSample(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SampleSource, c.Source())
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "books.json", `[
		{"id": "a", "title": "Alpha", "author": "Ann", "coverImage": "a.jpg", "synopsis": "s", "notes": "n"},
		{"id": "b", "title": "Beta"}
	]`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, c.IDs())
	b, err := c.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, book.Book{ID: "a", Title: "Alpha", Author: "Ann", CoverImage: "a.jpg", Synopsis: "s", Notes: "n"}, b)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "books.yaml", `
- id: a
  title: Alpha
  cover_image: a.jpg
- id: b
  title: Beta
`)

	c, err := Load(path)
	require.NoError(t, err)

	b, err := c.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", b.CoverImage)
	assert.Equal(t, 2, c.Len())
}

func TestLoad_GlobConcatenatesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shelves/02-later.json", `[{"id": "c"}]`)
	writeFile(t, dir, "shelves/01-first.json", `[{"id": "a"}, {"id": "b"}]`)
	writeFile(t, dir, "shelves/nested/03-yaml.yml", "- id: d\n")
	writeFile(t, dir, "shelves/ignored.txt", "not a catalog")

	c, err := Load(filepath.Join(dir, "shelves", "**", "*.{json,yml}"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, c.IDs())
}

func TestLoad_GlobNoMatches(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "*.json"))
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "nope.json"), os.ErrNotExist},
		{"duplicate id", writeFile(t, dir, "dup.json", `[{"id": "a"}, {"id": "a"}]`), ErrDuplicateID},
		{"missing id", writeFile(t, dir, "noid.json", `[{"title": "Untitled"}]`), ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.json", `{"id": "not-an-array"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestLookup_NotFound(t *testing.T) {
	c, err := New("test", []book.Book{{ID: "a"}})
	require.NoError(t, err)

	_, err = c.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBooks_ReturnsCopy(t *testing.T) {
	c, err := New("test", []book.Book{{ID: "a", Title: "Alpha"}})
	require.NoError(t, err)

	books := c.Books()
	books[0].Title = "changed"

	b, _ := c.Lookup("a")
	assert.Equal(t, "Alpha", b.Title)
}

func TestIsPattern(t *testing.T) {
	assert.True(t, IsPattern("books/*.json"))
	assert.True(t, IsPattern("books/{a,b}.json"))
	assert.False(t, IsPattern("books/all.json"))
}
