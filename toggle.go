package bramble

import (
	"github.com/phanxgames/willow"
)

// Toggle is the checkbox variant of [Control]. Its payload is the *next*
// checked value: pressing an unchecked toggle dispatches "true", and when
// that action resolves the toggle applies the flip, fires OnChange, and
// reactivates itself — every accepted action is expected to be followed by
// another.
type Toggle struct {
	ctrl    *Control[bool]
	theme   *Theme
	checked bool

	labelText string
	onChange  func(bool)

	root  *willow.Node
	box   *willow.Node
	mark  *willow.Node
	label *willow.Node
}

// NewToggle creates a toggle with the given starting checked state.
func NewToggle(name, label string, checked bool, cfg Config, theme *Theme) *Toggle {
	t := &Toggle{
		theme:     theme,
		checked:   checked,
		labelText: label,
	}
	t.ctrl = NewControl(name, !checked, t, cfg)
	t.ctrl.OnComplete(t.apply)
	return t
}

// Control returns the underlying protocol primitive.
func (t *Toggle) Control() *Control[bool] {
	return t.ctrl
}

// Node returns the toggle's root scene node.
func (t *Toggle) Node() *willow.Node {
	return t.ctrl.Node()
}

// Checked reports the current checked state.
func (t *Toggle) Checked() bool {
	return t.checked
}

// OnChange registers a callback fired with the new checked state each time
// an accepted toggle action resolves.
func (t *Toggle) OnChange(fn func(bool)) {
	t.onChange = fn
}

// Update advances any in-flight shield.
func (t *Toggle) Update(dt float32) {
	t.ctrl.Update(dt)
}

// Dispose releases the toggle and its control.
func (t *Toggle) Dispose() {
	t.ctrl.Dispose()
}

// apply is the completion handler: flip, notify, re-arm.
func (t *Toggle) apply(next bool) {
	t.checked = next
	t.mark.Visible = t.checked
	t.mark.MarkDirty()
	t.ctrl.SetPayload(!next)
	if t.onChange != nil {
		t.onChange(t.checked)
	}
	t.ctrl.Reactivate()
}

// --- Renderer hooks ---

// Build constructs the box, checkmark, and label once at creation.
func (t *Toggle) Build(root *willow.Node) {
	t.root = root
	root.HitShape = willow.HitRect{
		Width:  ToggleBoxSize + 8 + labelHitWidth,
		Height: ToggleBoxSize,
	}

	box := willow.NewSprite(root.Name+"-box", willow.TextureRegion{})
	box.ScaleX = ToggleBoxSize
	box.ScaleY = ToggleBoxSize
	box.Color = t.theme.Chrome
	box.Interactable = false
	root.AddChild(box)
	t.box = box

	inset := (ToggleBoxSize - ToggleMarkSize) / 2
	mark := willow.NewSprite(root.Name+"-mark", willow.TextureRegion{})
	mark.ScaleX = ToggleMarkSize
	mark.ScaleY = ToggleMarkSize
	mark.X = inset
	mark.Y = inset
	mark.Color = t.theme.Accent
	mark.Visible = t.checked
	mark.Interactable = false
	root.AddChild(mark)
	t.mark = mark

	label := willow.NewText(root.Name+"-label", t.labelText, t.theme.Font)
	label.X = ToggleBoxSize + 8
	label.Y = (ToggleBoxSize - t.theme.lineHeight()) / 2
	label.TextBlock.Color = t.theme.Text
	label.Interactable = false
	root.AddChild(label)
	t.label = label
}

// labelHitWidth extends the toggle's hit area over the label text.
const labelHitWidth = 140.0

// SetPressed darkens the box while held.
func (t *Toggle) SetPressed(pressed bool) {
	if pressed {
		t.box.Color = t.theme.FillDown
	} else {
		t.box.Color = t.theme.Chrome
	}
	t.box.MarkDirty()
}

// SetSyncState dims the toggle while its action is in flight.
func (t *Toggle) SetSyncState(state SyncState) {
	switch state {
	case SyncSending:
		t.root.Alpha = 0.55
	case SyncReceived, SyncIdle:
		t.root.Alpha = 1
	}
	t.root.MarkDirty()
}
