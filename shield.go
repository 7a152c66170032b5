package bramble

import (
	"math"

	"github.com/phanxgames/willow"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Shield is a full-screen input-blocking overlay raised while a lockstep
// action is in flight. It exists to keep *unrelated* controls on the same
// screen from being actuated during the round trip — the screen has no other
// "something is pending" signal.
//
// The shield owns a continuously spinning indicator; Dispose stops the
// animation before the nodes go away so no per-frame work dangles.
type Shield struct {
	root     *willow.Node
	spinner  *willow.Node
	spin     *gween.Tween
	disposed bool
}

// NewShield raises a shield over bounds as a child of parent. The shield's
// root sits in the top Z layer and swallows all pointer events inside
// bounds.
func NewShield(parent *willow.Node, bounds willow.Rect) *Shield {
	if parent == nil {
		panic("bramble: shield requires a parent node")
	}

	root := willow.NewContainer("shield")
	root.X = bounds.X
	root.Y = bounds.Y
	root.Interactable = true
	root.HitShape = willow.HitRect{Width: bounds.Width, Height: bounds.Height}
	root.SetZIndex(LayerShield)
	// Hit-testable with a no-op handler: events stop here.
	root.OnPointerDown = func(willow.PointerContext) {}
	root.OnPointerUp = func(willow.PointerContext) {}

	scrim := willow.NewSprite("shield-scrim", willow.TextureRegion{})
	scrim.ScaleX = bounds.Width
	scrim.ScaleY = bounds.Height
	scrim.Color = willow.Color{R: 0, G: 0, B: 0, A: 0.55}
	scrim.Interactable = false
	root.AddChild(scrim)

	spinner := willow.NewSprite("shield-spinner", willow.TextureRegion{})
	spinner.ScaleX = spinnerSize
	spinner.ScaleY = spinnerSize
	spinner.PivotX = 0.5
	spinner.PivotY = 0.5
	spinner.X = bounds.Width / 2
	spinner.Y = bounds.Height / 2
	spinner.Color = willow.Color{R: 1, G: 1, B: 1, A: 0.9}
	spinner.Interactable = false
	root.AddChild(spinner)

	parent.AddChild(root)

	return &Shield{
		root:    root,
		spinner: spinner,
		spin:    gween.New(0, 2*math.Pi, spinPeriod, ease.Linear),
	}
}

// Update advances the spinner by dt seconds. No-op after Dispose.
func (s *Shield) Update(dt float32) {
	if s.disposed {
		return
	}
	v, finished := s.spin.Update(dt)
	s.spinner.Rotation = float64(v)
	s.spinner.MarkDirty()
	if finished {
		s.spin.Reset()
	}
}

// Node returns the shield's root node.
func (s *Shield) Node() *willow.Node {
	return s.root
}

// Dispose stops the spinner and removes the shield from the scene. Safe to
// call more than once.
func (s *Shield) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.spin = nil
	s.root.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (s *Shield) IsDisposed() bool {
	return s.disposed
}
