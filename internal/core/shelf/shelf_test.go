package shelf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JovenSoh/bookshelf/internal/core/book"
)

func makeBooks(n int) []book.Book {
	books := make([]book.Book, n)
	for i := range books {
		books[i] = book.Book{ID: fmt.Sprintf("b%02d", i), Title: fmt.Sprintf("Book %d", i)}
	}
	return books
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		width   int
		wantLen []int
	}{
		{"twelve books width five", 12, 5, []int{5, 5, 2}},
		{"exact multiple", 10, 5, []int{5, 5}},
		{"fewer than width", 3, 5, []int{3}},
		{"width one", 3, 1, []int{1, 1, 1}},
		{"empty catalog", 0, 5, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Partition(makeBooks(tt.count), tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, Lengths(rows))
		})
	}
}

func TestPartition_PreservesOrder(t *testing.T) {
	books := makeBooks(7)

	rows, err := Partition(books, 3)
	require.NoError(t, err)

	var flat []book.Book
	for _, r := range rows {
		flat = append(flat, r...)
	}
	assert.Equal(t, books, flat)
}

func TestPartition_RowsDoNotAlias(t *testing.T) {
	books := makeBooks(4)

	rows, err := Partition(books, 2)
	require.NoError(t, err)

	// Appending to a row must not overwrite the next row's first book.
	_ = append(rows[0], book.Book{ID: "intruder"})
	assert.Equal(t, "b02", rows[1][0].ID)
}

func TestPartition_InvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1} {
		_, err := Partition(makeBooks(3), w)
		assert.ErrorIs(t, err, ErrInvalidWidth)
	}
}
