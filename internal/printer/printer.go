// Package printer writes styled, human-oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/JovenSoh/bookshelf/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines prefixed with a glyph and colored by the active
// theme.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a Printer writing normal output to out and errors to err.
func New(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one bound to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Header prints a bold section title followed by a divider.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.out, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.out, styles.DividerStyle.Render("────────────────────────────────"))
}

// Successf prints a formatted success line.
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.SuccessStyle.Render("✔ ")+fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational line.
func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.InfoStyle.Render("• ")+fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error line to the error writer.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.err, styles.ErrorStyle.Render("✘ ")+fmt.Sprintf(format, args...))
}

// Printf prints a plain formatted line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}
