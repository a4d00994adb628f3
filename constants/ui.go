package constants

// Terminal frontend glyphs
const (
	// DotGlyph fills every cell covered by a dot
	DotGlyph = '█'

	// CellAspect is the number of logical y units per terminal row
	// Terminal cells are about twice as tall as they are wide
	CellAspect = 2
)

// Desktop frontend
const (
	// DesktopWindowWidth is the default window width in screen coordinates
	DesktopWindowWidth = 540

	// DesktopWindowHeight is the default window height in screen coordinates
	DesktopWindowHeight = 960

	// DesktopWindowTitle prefixes the label shown in the title bar
	DesktopWindowTitle = "Tap Grid"
)
