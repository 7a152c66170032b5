package bramble

import (
	"github.com/phanxgames/willow"
)

// DefaultAvatars are the stock avatar choices offered by [ProfilePanel].
var DefaultAvatars = []RadioOption{
	{Name: "avatar1", Label: "Captain", Value: "avatar1"},
	{Name: "avatar2", Label: "Navigator", Value: "avatar2"},
	{Name: "avatar3", Label: "Stowaway", Value: "avatar3"},
}

// ProfilePanel is the profile editor screen content: an avatar radio group,
// a share-results toggle, and a save button that commits the pending
// choices to the game state. The save button reactivates itself after each
// resolved save so the profile can be edited repeatedly.
type ProfilePanel struct {
	root  *willow.Node
	state *GameState

	avatars *RadioGroup
	share   *Toggle
	save    *Button[string]

	pendingAvatar string
	pendingShare  bool
}

// NewProfilePanel creates a profile editor bound to state. Controls are
// named name+"-save", name+"-share", and the avatar option names.
func NewProfilePanel(name string, state *GameState, cfg Config, theme *Theme) *ProfilePanel {
	if state == nil {
		panic("bramble: profile panel requires a game state")
	}

	_, avatar := state.Profile()
	if avatar == "" {
		avatar = DefaultAvatars[0].Value
	}

	p := &ProfilePanel{
		root:          willow.NewContainer(name),
		state:         state,
		pendingAvatar: avatar,
		pendingShare:  state.ShareResults(),
	}
	p.root.Interactable = true

	avatars := NewRadioGroup(name+"-avatars", DefaultAvatars, avatar, cfg, theme)
	avatars.OnSelect(func(v string) { p.pendingAvatar = v })
	p.root.AddChild(avatars.Node())
	p.avatars = avatars

	avatarsH := float64(len(DefaultAvatars))*(ButtonHeight+RowGap) - RowGap

	share := NewToggle(name+"-share", "Share my results", p.pendingShare, cfg, theme)
	share.OnChange(func(on bool) { p.pendingShare = on })
	share.Node().Y = avatarsH + PanelPad
	p.root.AddChild(share.Node())
	p.share = share

	save := NewButton(name+"-save", "Save", "save", ButtonWidth, ButtonHeight, cfg, theme)
	save.Node().Y = avatarsH + PanelPad + ToggleBoxSize + PanelPad
	save.Control().OnComplete(func(string) {
		p.commit()
		save.Control().Reactivate()
	})
	p.root.AddChild(save.Node())
	p.save = save

	return p
}

// commit writes the pending choices through to the game state.
func (p *ProfilePanel) commit() {
	name, _ := p.state.Profile()
	p.state.SetProfile(name, p.pendingAvatar)
	p.state.SetShareResults(p.pendingShare)
}

// Node returns the panel's root scene node.
func (p *ProfilePanel) Node() *willow.Node {
	return p.root
}

// Avatars returns the avatar radio group.
func (p *ProfilePanel) Avatars() *RadioGroup {
	return p.avatars
}

// Update advances the panel's controls.
func (p *ProfilePanel) Update(dt float32) {
	p.avatars.Update(dt)
	p.share.Update(dt)
	p.save.Update(dt)
}

// Dispose releases the panel's controls and root node.
func (p *ProfilePanel) Dispose() {
	p.avatars.Dispose()
	p.share.Dispose()
	p.save.Dispose()
	p.root.Dispose()
}
