package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_DisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want string
	}{
		{"uses title", Book{ID: "1", Title: "Dune"}, "Dune"},
		{"trims whitespace", Book{ID: "1", Title: "  Dune "}, "Dune"},
		{"falls back to id", Book{ID: "dune-1965"}, "dune-1965"},
		{"blank title falls back", Book{ID: "x", Title: "   "}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.book.DisplayTitle())
		})
	}
}

func TestBook_Byline(t *testing.T) {
	assert.Equal(t, "By Frank Herbert", Book{Author: "Frank Herbert"}.Byline())
	assert.Empty(t, Book{}.Byline())
}
