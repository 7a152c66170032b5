package bramble

import (
	"github.com/phanxgames/willow"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner slide timing.
const (
	bannerSlideTime = 0.3 // seconds in and out
	bannerRestY     = 8.0
)

// bannerPhase sequences the banner through slide-in, hold, slide-out.
type bannerPhase uint8

const (
	bannerIn bannerPhase = iota
	bannerHold
	bannerOut
	bannerDone
)

// Banner is a purely cosmetic announcement strip that slides in from the
// top of the screen, holds, slides back out, and disposes itself. It has no
// protocol involvement; it exists because every casual-game screen has one.
type Banner struct {
	root  *willow.Node
	strip *willow.Node
	text  *willow.Node

	phase bannerPhase
	tween *gween.Tween
	hold  float32
	Done  bool
}

// NewBanner creates a banner of the given width announcing text, holding
// on screen for holdSeconds before sliding away.
func NewBanner(name, text string, width float64, holdSeconds float32, theme *Theme) *Banner {
	root := willow.NewContainer(name)
	root.Y = -BannerHeight
	root.SetZIndex(LayerBanner)

	strip := willow.NewSprite(name+"-strip", willow.TextureRegion{})
	strip.ScaleX = width
	strip.ScaleY = BannerHeight
	strip.Color = theme.Accent
	root.AddChild(strip)

	label := willow.NewText(name+"-text", text, theme.Font)
	label.TextBlock.Align = willow.TextAlignCenter
	label.TextBlock.WrapWidth = width
	label.TextBlock.Color = theme.Chrome
	label.Y = (BannerHeight - theme.lineHeight()) / 2
	root.AddChild(label)

	return &Banner{
		root:  root,
		strip: strip,
		text:  label,
		tween: gween.New(-BannerHeight, bannerRestY, bannerSlideTime, ease.OutQuad),
		hold:  holdSeconds,
	}
}

// Node returns the banner's root scene node.
func (b *Banner) Node() *willow.Node {
	return b.root
}

// Update advances the slide animation by dt seconds. When the banner has
// fully slid out it disposes its nodes and sets Done.
func (b *Banner) Update(dt float32) {
	switch b.phase {
	case bannerIn, bannerOut:
		v, finished := b.tween.Update(dt)
		b.root.Y = float64(v)
		b.root.MarkDirty()
		if !finished {
			return
		}
		if b.phase == bannerIn {
			b.phase = bannerHold
			return
		}
		b.phase = bannerDone
		b.Done = true
		b.root.Dispose()
	case bannerHold:
		b.hold -= dt
		if b.hold <= 0 {
			b.phase = bannerOut
			b.tween = gween.New(bannerRestY, -BannerHeight, bannerSlideTime, ease.InQuad)
		}
	case bannerDone:
	}
}
