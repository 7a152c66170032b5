package bramble

import "testing"

func sampleTasks() []Task {
	return []Task{
		{ID: "daily-login", Title: "Log in today", Points: 10},
		{ID: "first-game", Title: "Play a game", Points: 25},
	}
}

func TestTaskPanelClaim(t *testing.T) {
	state := NewGameState()
	p := NewTaskPanel("tasks", sampleTasks(), state, localConfig(), DefaultTheme())

	row := p.rows[0]
	tap(row.claim)

	if state.Points() != 10 {
		t.Errorf("Points = %d after claim, want 10", state.Points())
	}
	if !row.done {
		t.Error("claimed row should be marked done")
	}
	if row.node.Alpha != 0.45 {
		t.Errorf("claimed row alpha = %v, want 0.45", row.node.Alpha)
	}
	if row.claim.Control().State() != SyncReceived {
		t.Errorf("claim button state = %v, want received (spent)", row.claim.Control().State())
	}
}

func TestTaskPanelClaimIsOneShot(t *testing.T) {
	state := NewGameState()
	p := NewTaskPanel("tasks", sampleTasks(), state, localConfig(), DefaultTheme())

	row := p.rows[0]
	tap(row.claim)
	tap(row.claim) // resolved control ignores the second cycle

	if state.Points() != 10 {
		t.Errorf("Points = %d after double tap, want 10", state.Points())
	}

	// Even a forced second resolution cannot award twice: the game state's
	// claimed-set guard is an independent layer.
	row.claim.Control().Reactivate()
	tap(row.claim)
	if state.Points() != 10 {
		t.Errorf("Points = %d after forced re-claim, want 10", state.Points())
	}
}

func TestTaskPanelPreCompletedTask(t *testing.T) {
	state := NewGameState()
	state.CompleteTask("daily-login", 10)

	p := NewTaskPanel("tasks", sampleTasks(), state, localConfig(), DefaultTheme())

	if !p.rows[0].done {
		t.Error("pre-completed task should be marked done at construction")
	}
	if p.rows[0].claim.Control().State() != SyncReceived {
		t.Error("pre-completed claim button should be spent")
	}
	if p.rows[1].done {
		t.Error("other tasks should remain claimable")
	}
}

func TestTaskPanelLockstepClaim(t *testing.T) {
	rig := newLockstepRig()
	state := NewGameState()
	p := NewTaskPanel("tasks", sampleTasks(), state, rig.cfg, DefaultTheme())

	tap(p.rows[1].claim)

	if state.Points() != 0 {
		t.Fatal("points must not be awarded before the echo")
	}
	rig.wire.Flush()
	if state.Points() != 25 {
		t.Errorf("Points = %d after echo, want 25", state.Points())
	}
}

func TestTaskPanelRequiresState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil state")
		}
	}()
	NewTaskPanel("tasks", sampleTasks(), nil, localConfig(), DefaultTheme())
}
