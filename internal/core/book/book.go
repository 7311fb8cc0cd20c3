// Package book defines the catalog record rendered by bookshelf.
package book

import "strings"

// Book is a single catalog entry. Books are loaded once and never mutated.
type Book struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	CoverImage string `json:"coverImage" yaml:"cover_image"`
	Synopsis   string `json:"synopsis" yaml:"synopsis"`
	Notes      string `json:"notes" yaml:"notes"`
}

// DisplayTitle returns the title, falling back to the id for untitled records.
func (b Book) DisplayTitle() string {
	if t := strings.TrimSpace(b.Title); t != "" {
		return t
	}
	return b.ID
}

// Byline returns "By <author>" or an empty string when the author is unknown.
func (b Book) Byline() string {
	if b.Author == "" {
		return ""
	}
	return "By " + b.Author
}
