package tui

// Layout sizes in terminal cells.
const (
	tabWidth        = 3  // expanded-mode vertical tab
	rowHeight       = 14 // expanded-mode row, tabs and panel alike
	coverWidth      = 16
	coverHeight     = 10
	compactTabWidth = 18 // compact-mode horizontal tab
	notesLines      = 4  // notes shown inside a grid panel
	detailNotesRows = 6
	minContentWidth = 24
)

// View names, used in logs.
const (
	viewGrid   = "grid"
	viewDetail = "detail"
)

const (
	headerTitle    = "B O O K S H E L F"
	breadcrumbRoot = "My BookShelf"
	breadcrumbLeaf = "Book Details"
	footerLinkText = "Say Hi"
)
