package bramble

import (
	"github.com/phanxgames/willow"
)

// --- Layout constants ---

const (
	ButtonHeight     = 44.0 // standard push-button height
	ButtonWidth      = 160.0
	ClaimButtonWidth = 96.0
	ToggleBoxSize    = 20.0
	ToggleMarkSize   = 12.0
	RowGap           = 10.0
	PanelPad         = 16.0
	BannerHeight     = 36.0

	spinnerSize = 28.0
	spinPeriod  = 0.9 // seconds per spinner revolution
)

// Z layers. Controls live in the chrome layer; overlays stack above it.
const (
	LayerChrome = 0
	LayerBanner = 800
	LayerDialog = 900
	LayerShield = 1000
)

// Theme bundles the font and palette shared by the concrete controls.
// Colors use willow's [0, 1] component range.
type Theme struct {
	Font willow.Font

	Fill     willow.Color // button/box resting fill
	FillDown willow.Color // fill while pressed
	Accent   willow.Color // checkmarks, selected radio options
	Chrome   willow.Color // panel and dialog backgrounds
	Scrim    willow.Color // translucent full-screen dims
	Text     willow.Color
	TextDim  willow.Color
}

// DefaultTheme returns the stock palette with no font set. Assign a font
// before adding text-bearing controls to a rendered scene; nil is fine for
// headless use.
func DefaultTheme() *Theme {
	return &Theme{
		Fill:     willow.Color{R: 0.23, G: 0.42, B: 0.70, A: 1},
		FillDown: willow.Color{R: 0.16, G: 0.30, B: 0.52, A: 1},
		Accent:   willow.Color{R: 0.95, G: 0.73, B: 0.25, A: 1},
		Chrome:   willow.Color{R: 0.13, G: 0.14, B: 0.19, A: 1},
		Scrim:    willow.Color{R: 0, G: 0, B: 0, A: 0.55},
		Text:     willow.Color{R: 1, G: 1, B: 1, A: 1},
		TextDim:  willow.Color{R: 0.72, G: 0.72, B: 0.76, A: 1},
	}
}

// lineHeight returns the theme font's line height, or a fallback when no
// font is set (headless scenes and tests).
func (t *Theme) lineHeight() float64 {
	if t.Font != nil {
		return t.Font.LineHeight()
	}
	return 16
}
