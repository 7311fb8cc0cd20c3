package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JovenSoh/bookshelf/internal/core/book"
	"github.com/JovenSoh/bookshelf/internal/core/catalog"
	"github.com/JovenSoh/bookshelf/internal/core/config"
	"github.com/JovenSoh/bookshelf/internal/core/shelf"
	"github.com/JovenSoh/bookshelf/internal/core/viewport"
)

func sampleRows(t *testing.T) []shelf.Row {
	t.Helper()
	cat, err := catalog.Sample()
	require.NoError(t, err)
	rows, err := shelf.Partition(cat.Books(), shelf.DefaultRowWidth)
	require.NoError(t, err)
	return rows
}

func TestWriteRows_Expanded(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeRows(&buf, sampleRows(t), viewport.Expanded))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "header plus one line per row")
	assert.Contains(t, lines[1], "Dune | The Left Hand of Darkness")
	assert.Contains(t, lines[3], "The Road | Cloud Atlas")
}

func TestWriteRows_Compact(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeRows(&buf, sampleRows(t), viewport.Compact))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 13, "header plus one line per book")
	assert.Regexp(t, `^3\s+2\s+cloud-atlas\s+Cloud Atlas\s+David Mitchell$`, lines[12])
}

func TestNewLsOutput(t *testing.T) {
	out := newLsOutput(sampleRows(t), viewport.Compact)

	assert.Equal(t, "compact", out.Mode)
	require.Len(t, out.Rows, 12)
	assert.Equal(t, lsBook{Row: 1, Tab: 0, ID: "invisible-cities", Title: "Invisible Cities", Author: "Italo Calvino"}, out.Rows[5])
}

func TestNewLsOutput_Empty(t *testing.T) {
	out := newLsOutput(nil, viewport.Expanded)

	assert.NotNil(t, out.Rows, "empty shelf encodes as []")
}

func TestLsCmd_ResolveMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cmd := NewLsCmd(&Flags{Config: &cfg})

	cmd.mode = "compact"
	mode, err := cmd.resolveMode()
	require.NoError(t, err)
	assert.Equal(t, viewport.Compact, mode)

	cmd.mode = "sideways"
	_, err = cmd.resolveMode()
	assert.Error(t, err)
}

func TestBookMarkdown(t *testing.T) {
	md, err := bookMarkdown(book.Book{Synopsis: "Spice.", Notes: ""})
	require.NoError(t, err)

	assert.Contains(t, md, "## Synopsis\n\nSpice.")
	assert.Contains(t, md, "_No notes yet._")
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	result := validate(&cfg, "")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	cfg.Catalog = filepath.Join(t.TempDir(), "missing.json")
	result = validate(&cfg, "")
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "catalog", result.Errors[0].Field)
}

func TestFlags_Catalog(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg}

	cat, err := flags.Catalog()
	require.NoError(t, err)
	assert.Equal(t, catalog.SampleSource, cat.Source())

	cfg.Catalog = filepath.Join(t.TempDir(), "nope.json")
	_, err = flags.Catalog()
	assert.ErrorContains(t, err, "load catalog")
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd(&Flags{}, "dev", "dev (HEAD) now")

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"tui", "ls", "show", "config"}, names)
	assert.NotNil(t, root.Action)

	var flagNames []string
	for _, f := range root.Flags {
		flagNames = append(flagNames, f.Names()[0])
	}
	assert.Contains(t, flagNames, "profiler-port")
	assert.Contains(t, flagNames, "data-dir")
}

func TestReference(t *testing.T) {
	md, err := Reference(NewRootCmd(&Flags{}, "dev", "dev"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# bookshelf CLI reference"))
	assert.Contains(t, md, "## Global options")
	assert.Contains(t, md, "| `--config`, `-c` | `BOOKSHELF_CONFIG` | path to config file |")
	assert.Contains(t, md, "## bookshelf ls")
	assert.Contains(t, md, "## bookshelf config validate")
	assert.Contains(t, md, "`--mode`")
}
