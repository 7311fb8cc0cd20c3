// Package tmpl provides template rendering utilities for markdown documents.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// orDefault returns def when s is blank after trimming.
func orDefault(def, s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}

// mdEscape escapes characters that would start emphasis or headings when a
// plain value is interpolated into markdown.
func mdEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"#", `\#`,
	)
	return r.Replace(s)
}

var funcs = template.FuncMap{
	"trim":      strings.TrimSpace,
	"join":      strings.Join,
	"orDefault": orDefault,
	"md":        mdEscape,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - trim: Trim surrounding whitespace
//   - join: Join string slice with separator (e.g., join .Tags ", ")
//   - orDefault: Fall back to a default for blank values (e.g., .Notes | orDefault "none")
//   - md: Escape markdown control characters in a plain value
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
