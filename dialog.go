package bramble

import (
	"github.com/phanxgames/willow"
)

// Dialog panel metrics.
const (
	dialogMaxWidth  = 420.0
	dialogHeight    = 200.0
	dialogButtonGap = 12.0
)

// DialogButton describes one affordance in a [Dialog]'s button row.
type DialogButton struct {
	Name   string // control identifier; unique per screen
	Label  string
	Result string // delivered to OnResult when this button's action resolves
}

// Dialog is a modal whose affordances are [Button] instances, so closing or
// confirming it runs the full synchronized action protocol. The dialog only
// *listens* to its buttons: it dims its chrome while any button is Sending
// and disposes itself when any button resolves. It never touches a button's
// state machine.
type Dialog struct {
	theme  *Theme
	bounds willow.Rect

	root    *willow.Node
	scrim   *willow.Node
	panel   *willow.Node
	title   *willow.Node
	body    *willow.Node
	buttons []*Button[string]

	onResult func(string)
	disposed bool
}

// NewDialog creates a modal over bounds with the given button row, in
// order. An empty buttons slice gets a single OK button named name+"-ok".
// The caller adds Node() to the screen and calls Update each frame.
func NewDialog(name, title, body string, buttons []DialogButton, cfg Config, theme *Theme, bounds willow.Rect) *Dialog {
	if len(buttons) == 0 {
		buttons = []DialogButton{{Name: name + "-ok", Label: "OK", Result: "ok"}}
	}

	d := &Dialog{theme: theme, bounds: bounds}

	root := willow.NewContainer(name)
	root.Interactable = true
	root.SetZIndex(LayerDialog)
	d.root = root

	// The scrim swallows pointer events behind the panel; same pattern as
	// the input shield, one layer down.
	scrim := willow.NewContainer(name + "-scrim")
	scrim.Interactable = true
	scrim.HitShape = willow.HitRect{Width: bounds.Width, Height: bounds.Height}
	scrim.OnPointerDown = func(willow.PointerContext) {}
	scrim.OnPointerUp = func(willow.PointerContext) {}
	dim := willow.NewSprite(name+"-dim", willow.TextureRegion{})
	dim.ScaleX = bounds.Width
	dim.ScaleY = bounds.Height
	dim.Color = theme.Scrim
	dim.Interactable = false
	scrim.AddChild(dim)
	root.AddChild(scrim)
	d.scrim = scrim

	panelW := bounds.Width - 4*PanelPad
	if panelW > dialogMaxWidth {
		panelW = dialogMaxWidth
	}
	panel := willow.NewContainer(name + "-panel")
	panel.Interactable = true
	panel.X = (bounds.Width - panelW) / 2
	panel.Y = (bounds.Height - dialogHeight) / 2
	bg := willow.NewSprite(name+"-panel-bg", willow.TextureRegion{})
	bg.ScaleX = panelW
	bg.ScaleY = dialogHeight
	bg.Color = theme.Chrome
	bg.Interactable = false
	panel.AddChild(bg)
	root.AddChild(panel)
	d.panel = panel

	titleNode := willow.NewText(name+"-title", title, theme.Font)
	titleNode.X = PanelPad
	titleNode.Y = PanelPad
	titleNode.TextBlock.Color = theme.Text
	titleNode.Interactable = false
	panel.AddChild(titleNode)
	d.title = titleNode

	bodyNode := willow.NewText(name+"-body", body, theme.Font)
	bodyNode.X = PanelPad
	bodyNode.Y = PanelPad + theme.lineHeight() + RowGap
	bodyNode.TextBlock.WrapWidth = panelW - 2*PanelPad
	bodyNode.TextBlock.Color = theme.TextDim
	bodyNode.Interactable = false
	panel.AddChild(bodyNode)
	d.body = bodyNode

	// Button row along the bottom edge, evenly divided.
	n := float64(len(buttons))
	btnW := (panelW - dialogButtonGap*(n+1)) / n
	btnY := dialogHeight - ButtonHeight - dialogButtonGap
	for i, spec := range buttons {
		result := spec.Result
		btn := NewButton(spec.Name, spec.Label, result, btnW, ButtonHeight, cfg, theme)
		btn.Node().X = dialogButtonGap + float64(i)*(btnW+dialogButtonGap)
		btn.Node().Y = btnY
		btn.Control().OnSyncChange(d.reflectSync)
		btn.Control().OnComplete(func(r string) {
			if d.onResult != nil {
				d.onResult(r)
			}
			d.Dispose()
		})
		panel.AddChild(btn.Node())
		d.buttons = append(d.buttons, btn)
	}

	return d
}

// Node returns the dialog's root scene node.
func (d *Dialog) Node() *willow.Node {
	return d.root
}

// Buttons returns the dialog's buttons in row order. The returned slice
// MUST NOT be mutated by the caller.
func (d *Dialog) Buttons() []*Button[string] {
	return d.buttons
}

// OnResult registers a callback fired with the resolving button's result
// just before the dialog disposes itself.
func (d *Dialog) OnResult(fn func(string)) {
	d.onResult = fn
}

// Update advances the dialog's buttons.
func (d *Dialog) Update(dt float32) {
	for _, b := range d.buttons {
		b.Update(dt)
	}
}

// Dispose releases the buttons (including any in-flight shield and pending
// hub registration) and the dialog subtree. Safe to call more than once.
func (d *Dialog) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	for _, b := range d.buttons {
		b.Dispose()
	}
	d.root.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (d *Dialog) IsDisposed() bool {
	return d.disposed
}

// reflectSync is cosmetic only: dim the panel while an action is in flight.
func (d *Dialog) reflectSync(state SyncState) {
	if d.disposed {
		return
	}
	if state == SyncSending {
		d.panel.Alpha = 0.5
	} else {
		d.panel.Alpha = 1
	}
	d.panel.MarkDirty()
}
