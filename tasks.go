package bramble

import (
	"fmt"

	"github.com/phanxgames/willow"
)

// Task row metrics.
const (
	taskRowHeight = ButtonHeight + RowGap
	taskRowWidth  = 360.0
)

// Task is one claimable entry in a [TaskPanel].
type Task struct {
	ID     string
	Title  string
	Points int
}

// TaskPanel lists tasks with a claim button per row. Claim buttons are
// deliberately left one-shot: a claimed task's button stays resolved, so a
// second tap is ignored by the protocol and a task can never award twice —
// once from the button's one-shot default, and once more from
// [GameState.CompleteTask]'s own claimed-set guard.
type TaskPanel struct {
	root  *willow.Node
	state *GameState
	rows  []*taskRow
}

type taskRow struct {
	task  Task
	node  *willow.Node
	title *willow.Node
	claim *Button[string]
	done  bool
}

// NewTaskPanel creates a panel listing tasks. Claim buttons are named
// name+"-claim-"+task.ID.
func NewTaskPanel(name string, tasks []Task, state *GameState, cfg Config, theme *Theme) *TaskPanel {
	if state == nil {
		panic("bramble: task panel requires a game state")
	}

	p := &TaskPanel{
		root:  willow.NewContainer(name),
		state: state,
	}
	p.root.Interactable = true

	for i, task := range tasks {
		row := p.buildRow(name, task, theme, cfg)
		row.node.Y = float64(i) * taskRowHeight
		p.root.AddChild(row.node)
		p.rows = append(p.rows, row)
		if state.TaskCompleted(task.ID) {
			p.markDone(row)
		}
	}

	return p
}

func (p *TaskPanel) buildRow(panelName string, task Task, theme *Theme, cfg Config) *taskRow {
	row := &taskRow{task: task}

	node := willow.NewContainer(panelName + "-row-" + task.ID)
	node.Interactable = true
	row.node = node

	title := willow.NewText(node.Name+"-title", fmt.Sprintf("%s  (+%d)", task.Title, task.Points), theme.Font)
	title.Y = (ButtonHeight - theme.lineHeight()) / 2
	title.TextBlock.Color = theme.Text
	title.Interactable = false
	node.AddChild(title)
	row.title = title

	claim := NewButton(panelName+"-claim-"+task.ID, "Claim", task.ID, ClaimButtonWidth, ButtonHeight, cfg, theme)
	claim.Node().X = taskRowWidth - ClaimButtonWidth
	claim.Control().OnComplete(func(id string) {
		if p.state.CompleteTask(id, row.task.Points) {
			p.markDone(row)
		}
	})
	node.AddChild(claim.Node())
	row.claim = claim

	return row
}

// markDone dims a claimed row and settles its button so it reads and acts
// as spent. Claim buttons are never reactivated.
func (p *TaskPanel) markDone(row *taskRow) {
	if row.done {
		return
	}
	row.done = true
	row.claim.Control().settle()
	row.node.Alpha = 0.45
	row.node.MarkDirty()
}

// Node returns the panel's root scene node.
func (p *TaskPanel) Node() *willow.Node {
	return p.root
}

// Update advances the claim buttons.
func (p *TaskPanel) Update(dt float32) {
	for _, row := range p.rows {
		row.claim.Update(dt)
	}
}

// Dispose releases every row and the panel root.
func (p *TaskPanel) Dispose() {
	for _, row := range p.rows {
		row.claim.Dispose()
	}
	p.root.Dispose()
}
