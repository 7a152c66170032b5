package bramble

// GameState is the single-threaded shared state the screens mutate from
// their completion callbacks: score, profile fields, and the set of claimed
// tasks. It is only ever touched from the tick-stepped callback path, so
// mutation is serialized by construction and no locking exists.
type GameState struct {
	points       int
	profileName  string
	avatar       string
	shareResults bool

	completed map[string]bool
	onChange  func()
}

// NewGameState returns an empty game state.
func NewGameState() *GameState {
	return &GameState{
		completed: make(map[string]bool),
	}
}

// OnChange registers a notification fired after every mutation. Screens use
// it to refresh score labels.
func (g *GameState) OnChange(fn func()) {
	g.onChange = fn
}

// Points returns the current score.
func (g *GameState) Points() int {
	return g.points
}

// CompleteTask marks a task claimed and awards its points. Points for a
// given task id are awarded at most once; a repeat claim reports false and
// changes nothing.
func (g *GameState) CompleteTask(id string, points int) bool {
	if g.completed[id] {
		return false
	}
	g.completed[id] = true
	g.points += points
	g.notify()
	return true
}

// TaskCompleted reports whether the task has been claimed.
func (g *GameState) TaskCompleted(id string) bool {
	return g.completed[id]
}

// Profile returns the player's display name and avatar.
func (g *GameState) Profile() (name, avatar string) {
	return g.profileName, g.avatar
}

// SetProfile updates the player's display name and avatar.
func (g *GameState) SetProfile(name, avatar string) {
	g.profileName = name
	g.avatar = avatar
	g.notify()
}

// ShareResults reports whether the player opted into sharing results.
func (g *GameState) ShareResults() bool {
	return g.shareResults
}

// SetShareResults updates the sharing opt-in.
func (g *GameState) SetShareResults(on bool) {
	g.shareResults = on
	g.notify()
}

func (g *GameState) notify() {
	if g.onChange != nil {
		g.onChange()
	}
}
