package logging

import "context"

type contextKey string

const (
	bookIDKey contextKey = "book_id"
	viewKey   contextKey = "view"
)

// WithBookID adds the ID of the book being acted on to the context.
func WithBookID(ctx context.Context, bookID string) context.Context {
	return context.WithValue(ctx, bookIDKey, bookID)
}

// WithView adds the name of the active screen (grid, detail) to the context.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewKey, view)
}

// GetBookID retrieves the book ID from the context.
// Returns empty string if not present.
func GetBookID(ctx context.Context) string {
	if id, ok := ctx.Value(bookIDKey).(string); ok {
		return id
	}
	return ""
}

// GetView retrieves the view name from the context.
// Returns empty string if not present.
func GetView(ctx context.Context) string {
	if v, ok := ctx.Value(viewKey).(string); ok {
		return v
	}
	return ""
}
