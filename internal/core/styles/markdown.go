package styles

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog/log"
)

// RenderMarkdown renders md with the active theme, wrapped to width columns.
// When glamour fails the text is word-wrapped and returned unstyled.
func RenderMarkdown(md string, width int) string {
	width = max(width, 10)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return wordwrap.String(md, width)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return wordwrap.String(md, width)
	}

	return strings.Trim(rendered, "\n")
}
