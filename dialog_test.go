package bramble

import (
	"testing"

	"github.com/phanxgames/willow"
)

func dialogBounds() willow.Rect {
	return willow.Rect{Width: 640, Height: 480}
}

func TestNewDialogDefaultButton(t *testing.T) {
	d := NewDialog("confirm", "Title", "Body", nil, localConfig(), DefaultTheme(), dialogBounds())

	buttons := d.Buttons()
	if len(buttons) != 1 {
		t.Fatalf("dialog has %d buttons, want 1 default", len(buttons))
	}
	if buttons[0].Control().Name() != "confirm-ok" {
		t.Errorf("default button name = %q, want %q", buttons[0].Control().Name(), "confirm-ok")
	}

	var result string
	d.OnResult(func(r string) { result = r })
	tap(buttons[0])
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
}

func TestDialogButtonRow(t *testing.T) {
	d := NewDialog("quit", "Quit?", "Progress is saved.",
		[]DialogButton{
			{Name: "quit-cancel", Label: "Cancel", Result: "cancel"},
			{Name: "quit-confirm", Label: "Quit", Result: "confirm"},
		},
		localConfig(), DefaultTheme(), dialogBounds())

	buttons := d.Buttons()
	if len(buttons) != 2 {
		t.Fatalf("dialog has %d buttons, want 2", len(buttons))
	}
	// Row order matches declaration order, left to right.
	if buttons[0].Node().X >= buttons[1].Node().X {
		t.Error("buttons should be laid out left to right in declaration order")
	}

	var result string
	d.OnResult(func(r string) { result = r })
	tap(buttons[1])
	if result != "confirm" {
		t.Errorf("result = %q, want %q", result, "confirm")
	}
}

func TestDialogDisposesOnResolution(t *testing.T) {
	d := NewDialog("confirm", "Title", "Body", nil, localConfig(), DefaultTheme(), dialogBounds())

	tap(d.Buttons()[0])

	if !d.IsDisposed() {
		t.Error("dialog should dispose itself when a button resolves")
	}
	if !d.Node().IsDisposed() {
		t.Error("dialog subtree should be disposed")
	}
}

func TestDialogDimsWhileSending(t *testing.T) {
	rig := newLockstepRig()
	d := NewDialog("confirm", "Title", "Body", nil, rig.cfg, DefaultTheme(), dialogBounds())

	tap(d.Buttons()[0])

	if d.panel.Alpha != 0.5 {
		t.Errorf("panel alpha = %v while sending, want 0.5", d.panel.Alpha)
	}
	if d.IsDisposed() {
		t.Fatal("dialog must not dispose before the echo")
	}

	var result string
	d.OnResult(func(r string) { result = r })
	rig.wire.Flush()

	if result != "ok" {
		t.Errorf("result = %q after echo, want %q", result, "ok")
	}
	if !d.IsDisposed() {
		t.Error("dialog should dispose once the echo lands")
	}
}

func TestDialogScrimSwallowsInput(t *testing.T) {
	d := NewDialog("confirm", "Title", "Body", nil, localConfig(), DefaultTheme(), dialogBounds())

	if !d.scrim.Interactable {
		t.Error("scrim must be interactable")
	}
	if d.scrim.OnPointerDown == nil || d.scrim.OnPointerUp == nil {
		t.Error("scrim must install swallowing pointer handlers")
	}
	hit, ok := d.scrim.HitShape.(willow.HitRect)
	if !ok {
		t.Fatalf("scrim HitShape is %T, want HitRect", d.scrim.HitShape)
	}
	if hit.Width != 640 || hit.Height != 480 {
		t.Errorf("scrim hit rect = %vx%v, want full bounds", hit.Width, hit.Height)
	}
}

func TestDialogDisposeCancelsInFlight(t *testing.T) {
	rig := newLockstepRig()
	d := NewDialog("confirm", "Title", "Body", nil, rig.cfg, DefaultTheme(), dialogBounds())

	tap(d.Buttons()[0])
	d.Dispose()

	if rig.shieldRaised() {
		t.Error("disposing the dialog should tear down the button's shield")
	}
	if rig.hub.Pending("confirm-ok") {
		t.Error("disposing the dialog should drop the pending action")
	}

	var result string
	d.OnResult(func(r string) { result = r })
	rig.wire.Flush()
	if result != "" {
		t.Errorf("late echo produced result %q, want none", result)
	}

	d.Dispose() // idempotent
}
