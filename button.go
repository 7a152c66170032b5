package bramble

import (
	"github.com/phanxgames/willow"
	"github.com/tanema/gween/ease"
)

// pressScale is the uniform shrink applied to a button while pressed.
const pressScale = 0.96

// Button is the labeled push-button variant of [Control]: a solid fill, a
// centered label, and press/sync feedback through color and opacity. It adds
// no state of its own beyond the payload the caller supplies.
type Button[T any] struct {
	ctrl  *Control[T]
	theme *Theme

	labelText string
	w, h      float64

	root  *willow.Node
	bg    *willow.Node
	label *willow.Node
	pop   *willow.TweenGroup

	highlighted bool
}

// NewButton creates a w×h push-button. name is the control identifier;
// payload is delivered to the completion callback when the action resolves.
func NewButton[T any](name, label string, payload T, w, h float64, cfg Config, theme *Theme) *Button[T] {
	b := &Button[T]{
		theme:     theme,
		labelText: label,
		w:         w,
		h:         h,
	}
	b.ctrl = NewControl(name, payload, b, cfg)
	return b
}

// Control returns the underlying protocol primitive, for wiring completion
// and sync-change callbacks.
func (b *Button[T]) Control() *Control[T] {
	return b.ctrl
}

// Node returns the button's root scene node.
func (b *Button[T]) Node() *willow.Node {
	return b.ctrl.Node()
}

// Update advances press-pop animation and any in-flight shield.
func (b *Button[T]) Update(dt float32) {
	b.ctrl.Update(dt)
	if b.pop != nil && !b.pop.Done {
		b.pop.Update(dt)
	}
}

// Dispose releases the button and its control.
func (b *Button[T]) Dispose() {
	b.ctrl.Dispose()
}

// SetHighlight tints the button fill with the accent color. Used by
// RadioGroup to mark the selected option; purely cosmetic.
func (b *Button[T]) SetHighlight(on bool) {
	b.highlighted = on
	if on {
		b.bg.Color = b.theme.Accent
	} else {
		b.bg.Color = b.theme.Fill
	}
}

// --- Renderer hooks ---

// Build constructs the fill and label once at creation.
func (b *Button[T]) Build(root *willow.Node) {
	b.root = root
	root.HitShape = willow.HitRect{Width: b.w, Height: b.h}

	bg := willow.NewSprite(root.Name+"-bg", willow.TextureRegion{})
	bg.ScaleX = b.w
	bg.ScaleY = b.h
	bg.Color = b.theme.Fill
	bg.Interactable = false
	root.AddChild(bg)
	b.bg = bg

	label := willow.NewText(root.Name+"-label", b.labelText, b.theme.Font)
	label.TextBlock.Align = willow.TextAlignCenter
	label.TextBlock.WrapWidth = b.w
	label.TextBlock.Color = b.theme.Text
	label.Y = (b.h - b.theme.lineHeight()) / 2
	label.Interactable = false
	root.AddChild(label)
	b.label = label
}

// SetPressed shrinks and darkens the button while held; release restores the
// fill and pops the scale back with a short tween.
func (b *Button[T]) SetPressed(pressed bool) {
	root := b.root
	if pressed {
		b.bg.Color = b.theme.FillDown
		root.ScaleX = pressScale
		root.ScaleY = pressScale
		root.MarkDirty()
		return
	}
	b.restoreFill()
	b.pop = willow.TweenScale(root, 1, 1, 0.12, ease.OutQuad)
}

// SetSyncState dims the button while its action is in flight.
func (b *Button[T]) SetSyncState(state SyncState) {
	switch state {
	case SyncSending:
		b.root.Alpha = 0.55
	case SyncReceived, SyncIdle:
		b.root.Alpha = 1
	}
	b.root.MarkDirty()
}

func (b *Button[T]) restoreFill() {
	if b.highlighted {
		b.bg.Color = b.theme.Accent
	} else {
		b.bg.Color = b.theme.Fill
	}
}
