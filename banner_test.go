package bramble

import "testing"

func TestBannerLifecycle(t *testing.T) {
	b := NewBanner("welcome", "Welcome back!", 640, 0.5, DefaultTheme())

	if b.Node().Y != -BannerHeight {
		t.Errorf("start Y = %v, want %v (off screen)", b.Node().Y, -BannerHeight)
	}

	// Slide in.
	b.Update(bannerSlideTime / 2)
	if b.Node().Y <= -BannerHeight {
		t.Error("banner should be sliding in")
	}
	b.Update(bannerSlideTime)
	if b.Node().Y != bannerRestY {
		t.Errorf("rest Y = %v, want %v", b.Node().Y, bannerRestY)
	}
	if b.Done {
		t.Fatal("banner should still be holding")
	}

	// Hold, then slide out.
	b.Update(0.5)
	b.Update(bannerSlideTime / 2)
	if b.Node().Y >= bannerRestY {
		t.Error("banner should be sliding out")
	}
	b.Update(bannerSlideTime)

	if !b.Done {
		t.Error("banner should report Done after sliding out")
	}
	if !b.Node().IsDisposed() {
		t.Error("banner should dispose its nodes when done")
	}

	b.Update(0.1) // done is terminal
}

func TestBannerZeroHold(t *testing.T) {
	b := NewBanner("flash", "Saved", 640, 0, DefaultTheme())

	b.Update(bannerSlideTime) // in
	b.Update(0.01)            // hold expires immediately
	b.Update(bannerSlideTime) // out

	if !b.Done {
		t.Error("zero-hold banner should complete after both slides")
	}
}
