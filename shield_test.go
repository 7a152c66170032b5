package bramble

import (
	"testing"

	"github.com/phanxgames/willow"
)

func TestNewShield(t *testing.T) {
	parent := willow.NewContainer("overlay")
	s := NewShield(parent, willow.Rect{Width: 320, Height: 240})

	if parent.NumChildren() != 1 {
		t.Fatalf("parent has %d children, want 1", parent.NumChildren())
	}
	root := s.Node()
	if !root.Interactable {
		t.Error("shield must be interactable to absorb input")
	}
	if root.OnPointerDown == nil || root.OnPointerUp == nil {
		t.Error("shield must install swallowing pointer handlers")
	}
	hit, ok := root.HitShape.(willow.HitRect)
	if !ok {
		t.Fatalf("HitShape is %T, want HitRect", root.HitShape)
	}
	if hit.Width != 320 || hit.Height != 240 {
		t.Errorf("hit rect = %vx%v, want 320x240", hit.Width, hit.Height)
	}
	if root.ZIndex != LayerShield {
		t.Errorf("ZIndex = %d, want %d", root.ZIndex, LayerShield)
	}
}

func TestNewShieldRequiresParent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil parent")
		}
	}()
	NewShield(nil, willow.Rect{Width: 10, Height: 10})
}

func TestShieldSpinnerAdvances(t *testing.T) {
	parent := willow.NewContainer("overlay")
	s := NewShield(parent, willow.Rect{Width: 100, Height: 100})

	s.Update(spinPeriod / 4)
	first := s.spinner.Rotation
	if first == 0 {
		t.Fatal("spinner should have rotated")
	}
	s.Update(spinPeriod / 4)
	if s.spinner.Rotation <= first {
		t.Error("spinner rotation should keep increasing")
	}

	// Crossing the period wraps instead of stopping.
	s.Update(spinPeriod)
	before := s.spinner.Rotation
	s.Update(spinPeriod / 4)
	if s.spinner.Rotation == before {
		t.Error("spinner should keep animating past one period")
	}
}

func TestShieldDispose(t *testing.T) {
	parent := willow.NewContainer("overlay")
	s := NewShield(parent, willow.Rect{Width: 100, Height: 100})

	s.Dispose()

	if !s.IsDisposed() {
		t.Error("IsDisposed = false after Dispose")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("parent has %d children after dispose, want 0", parent.NumChildren())
	}

	s.Update(0.1) // must not panic with the tween gone
	s.Dispose()   // idempotent
}
