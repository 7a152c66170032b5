package bramble

import (
	"fmt"

	"github.com/phanxgames/willow"
)

// RadioOption describes one choice in a [RadioGroup].
type RadioOption struct {
	Name  string // control identifier; unique per screen
	Label string
	Value string
}

// RadioGroup coordinates a set of mutually exclusive [Button] options. The
// group is not itself a Control: each option runs its own protocol, and the
// group layers the selection rule on top.
//
// The selected option's control rests in SyncReceived, so tapping it again
// is ignored by the state machine with no callback and no broadcast. When a
// different option resolves, the group reactivates ONLY the previously
// selected option's button — never one that is mid-flight — keeping every
// deselected option pressable while an in-flight option stays locked.
type RadioGroup struct {
	root     *willow.Node
	buttons  []*Button[string]
	byValue  map[string]*Button[string]
	selected string
	onSelect func(string)
}

// NewRadioGroup creates a vertical group from options with the option whose
// Value equals selected pre-resolved. Panics if selected matches no option
// or an option value repeats — both are construction bugs.
func NewRadioGroup(name string, options []RadioOption, selected string, cfg Config, theme *Theme) *RadioGroup {
	if len(options) == 0 {
		panic("bramble: radio group requires at least one option")
	}

	g := &RadioGroup{
		root:     willow.NewContainer(name),
		byValue:  make(map[string]*Button[string], len(options)),
		selected: selected,
	}
	g.root.Interactable = true

	for i, opt := range options {
		if _, dup := g.byValue[opt.Value]; dup {
			panic(fmt.Sprintf("bramble: duplicate radio option value %q", opt.Value))
		}
		value := opt.Value
		btn := NewButton(opt.Name, opt.Label, value, ButtonWidth, ButtonHeight, cfg, theme)
		btn.Node().Y = float64(i) * (ButtonHeight + RowGap)
		btn.Control().OnComplete(func(string) { g.apply(value) })
		g.root.AddChild(btn.Node())
		g.buttons = append(g.buttons, btn)
		g.byValue[value] = btn
	}

	sel, ok := g.byValue[selected]
	if !ok {
		panic(fmt.Sprintf("bramble: radio selection %q matches no option", selected))
	}
	// The initial selection must not be pressable until another option is
	// chosen; settle resolves it without dispatching anything.
	sel.Control().settle()
	sel.SetHighlight(true)

	return g
}

// Node returns the group's root scene node.
func (g *RadioGroup) Node() *willow.Node {
	return g.root
}

// Selected returns the value of the currently selected option.
func (g *RadioGroup) Selected() string {
	return g.selected
}

// OnSelect registers a callback fired with the newly selected value each
// time the selection changes.
func (g *RadioGroup) OnSelect(fn func(string)) {
	g.onSelect = fn
}

// Buttons returns the option buttons in declaration order. The returned
// slice MUST NOT be mutated by the caller.
func (g *RadioGroup) Buttons() []*Button[string] {
	return g.buttons
}

// Update advances all option buttons.
func (g *RadioGroup) Update(dt float32) {
	for _, b := range g.buttons {
		b.Update(dt)
	}
}

// Dispose releases every option button and the group's root node.
func (g *RadioGroup) Dispose() {
	for _, b := range g.buttons {
		b.Dispose()
	}
	g.root.Dispose()
}

// apply is the selection transition: record the new value, re-arm the
// previous selection, notify.
func (g *RadioGroup) apply(value string) {
	if value == g.selected {
		return
	}
	prev := g.selected
	g.selected = value

	if pb, ok := g.byValue[prev]; ok {
		pb.SetHighlight(false)
		pb.Control().Reactivate()
	}
	if nb, ok := g.byValue[value]; ok {
		nb.SetHighlight(true)
	}
	if g.onSelect != nil {
		g.onSelect(value)
	}
}
