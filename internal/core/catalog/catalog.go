// Package catalog loads the read-only list of books shown on the shelf.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/JovenSoh/bookshelf/internal/core/book"
	"github.com/JovenSoh/bookshelf/pkg/kv"
)

// SampleSource is reported by Source for the bundled catalog.
const SampleSource = "sample"

var (
	// ErrNotFound is returned by Lookup for unknown ids.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate book id")
	// ErrMissingID is returned for a record without an id.
	ErrMissingID = errors.New("book id is required")
	// ErrNoFiles is returned when a catalog pattern matches nothing.
	ErrNoFiles = errors.New("no catalog files matched")
)

//go:embed sample/books.json
var sampleFS embed.FS

// Catalog is an ordered, immutable list of books indexed by id.
type Catalog struct {
	source string
	books  []book.Book
	index  *kv.Store[string, int]
}

// New builds a catalog from books in the given order.
func New(source string, books []book.Book) (*Catalog, error) {
	index := kv.New[string, int]()
	for i, b := range books {
		if strings.TrimSpace(b.ID) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if !index.Insert(b.ID, i) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, b.ID)
		}
	}

	owned := make([]book.Book, len(books))
	copy(owned, books)

	return &Catalog{source: source, books: owned, index: index}, nil
}

// Sample returns the catalog bundled with the binary.
func Sample() (*Catalog, error) {
	data, err := sampleFS.ReadFile("sample/books.json")
	if err != nil {
		return nil, fmt.Errorf("read sample catalog: %w", err)
	}
	books, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode sample catalog: %w", err)
	}
	return New(SampleSource, books)
}

// Load reads a catalog from src. An empty src loads the bundled sample. A
// src containing glob metacharacters is expanded with doublestar and the
// matching files are concatenated in lexical path order; otherwise src is a
// single JSON or YAML file.
func Load(src string) (*Catalog, error) {
	if src == "" {
		return Sample()
	}

	paths := []string{src}
	if IsPattern(src) {
		matches, err := doublestar.FilepathGlob(src)
		if err != nil {
			return nil, fmt.Errorf("expand catalog pattern %q: %w", src, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFiles, src)
		}
		sort.Strings(matches)
		paths = matches
	}

	var books []book.Book
	for _, p := range paths {
		part, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		books = append(books, part...)
	}

	return New(src, books)
}

// LoadFile decodes the books in a single file. Files ending in .yaml or .yml
// are read as YAML; everything else as a JSON array.
func LoadFile(path string) ([]book.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var books []book.Book
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		books, err = decodeYAML(data)
	default:
		books, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return books, nil
}

// IsPattern reports whether src contains glob metacharacters.
func IsPattern(src string) bool {
	return strings.ContainsAny(src, "*?[{")
}

func decodeJSON(data []byte) ([]book.Book, error) {
	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func decodeYAML(data []byte) ([]book.Book, error) {
	var books []book.Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns the books in catalog order. The slice is a copy.
func (c *Catalog) Books() []book.Book {
	out := make([]book.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Lookup returns the book with the given id.
func (c *Catalog) Lookup(id string) (book.Book, error) {
	i, ok := c.index.Get(id)
	if !ok {
		return book.Book{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.books[i], nil
}

// IDs returns every id in catalog order.
func (c *Catalog) IDs() []string {
	return c.index.Keys()
}
