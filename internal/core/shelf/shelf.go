// Package shelf groups a flat catalog into fixed-width accordion rows.
package shelf

import (
	"errors"

	"github.com/JovenSoh/bookshelf/internal/core/book"
)

// DefaultRowWidth is the number of tabs per accordion row.
const DefaultRowWidth = 5

// ErrInvalidWidth is returned when a row width is not positive.
var ErrInvalidWidth = errors.New("row width must be greater than zero")

// Row is a contiguous run of books rendered as one accordion.
type Row []book.Book

// Partition splits books into rows of width books each, in catalog order.
// Every row has exactly width entries except possibly the last, which holds
// the remainder. An empty catalog yields no rows.
func Partition(books []book.Book, width int) ([]Row, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	rows := make([]Row, 0, (len(books)+width-1)/width)
	for start := 0; start < len(books); start += width {
		end := min(start+width, len(books))
		rows = append(rows, Row(books[start:end:end]))
	}
	return rows, nil
}

// Lengths returns the number of tabs in each row.
func Lengths(rows []Row) []int {
	lens := make([]int, len(rows))
	for i, r := range rows {
		lens[i] = len(r)
	}
	return lens
}
