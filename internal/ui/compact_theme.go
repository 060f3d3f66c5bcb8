package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is the set of colors a CompactTheme overrides
type Palette struct {
	Primary    color.Color
	Hover      color.Color
	Background color.Color
	Foreground color.Color
}

// DefaultPalette is the blue palette the window starts with
var DefaultPalette = Palette{
	Primary:    color.RGBA{R: 25, G: 118, B: 210, A: 255},
	Hover:      color.RGBA{R: 21, G: 101, B: 192, A: 255},
	Background: color.RGBA{R: 250, G: 250, B: 250, A: 255},
	Foreground: color.RGBA{R: 33, G: 33, B: 33, A: 255},
}

// MaterialPalette is the purple Material Design palette offered in the menu
var MaterialPalette = Palette{
	Primary:    color.RGBA{R: 0x62, G: 0x00, B: 0xee, A: 255}, // #6200ee
	Hover:      color.RGBA{R: 0x37, G: 0x00, B: 0xb3, A: 255}, // #3700b3
	Background: color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 255}, // #fafafa
	Foreground: color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 255}, // #212121
}

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct {
	palette Palette
}

// NewCompactTheme creates a compact theme with the default palette
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{palette: DefaultPalette}
}

// NewMaterialTheme creates a compact theme with the Material palette
func NewMaterialTheme() fyne.Theme {
	return &CompactTheme{palette: MaterialPalette}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return t.palette.Primary
	case theme.ColorNameFocus:
		return t.palette.Hover
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return t.palette.Background
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return t.palette.Foreground
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
