package styles

// Glyphs used by the grid and detail views. They avoid Nerd Font code points
// so the shelf renders in any terminal font.
var (
	IconBook      = "▤"
	IconLock      = "◌"
	IconFocus     = "▸"
	IconSeparator = "/"
	IconMore      = "…"
)
