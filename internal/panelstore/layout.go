package panelstore

import (
	"fmt"

	"github.com/PostHog/Twig-sub005/internal/paneltree"
	"github.com/PostHog/Twig-sub005/internal/tabid"
)

const (
	// MainPanelID is the designated default leaf new tabs fall back to.
	MainPanelID = "main-panel"

	// TerminalPanelID is the secondary leaf of the default tree.
	TerminalPanelID = "terminal-panel"

	// DefaultTabID is the system tab a leaf's selection falls back to
	// when its last tab closes.
	DefaultTabID = "logs"

	// ShellTabID is the system tab seeded into the terminal leaf.
	ShellTabID = "shell"
)

// TaskLayout is the full layout state of one task: the panel tree plus the
// derived file projections, focus, and transient drag bookkeeping. Layouts
// are fully isolated per task id.
type TaskLayout struct {
	Tree               paneltree.Node
	OpenFiles          []string
	RecentFiles        []string
	FocusedPanelID     string
	DraggingTabID      string
	DraggingTabPanelID string

	// nextID feeds the monotonic panel/group/terminal id generator.
	nextID int
}

func newTaskLayout() *TaskLayout {
	l := &TaskLayout{}
	l.Tree = &paneltree.Group{
		ID:        l.nextGroupID(),
		Direction: paneltree.DirectionVertical,
		Children: []paneltree.Node{
			&paneltree.Leaf{
				ID:          MainPanelID,
				Tabs:        []paneltree.Tab{logsTab()},
				ActiveTabID: DefaultTabID,
				ShowTabs:    true,
				Droppable:   true,
			},
			&paneltree.Leaf{
				ID:          TerminalPanelID,
				Tabs:        []paneltree.Tab{shellTab()},
				ActiveTabID: ShellTabID,
				ShowTabs:    true,
				Droppable:   true,
			},
		},
		Sizes: []float64{70, 30},
	}
	l.FocusedPanelID = MainPanelID
	return l
}

func logsTab() paneltree.Tab {
	return paneltree.Tab{
		ID:    DefaultTabID,
		Label: "Logs",
		Data:  paneltree.TabData{Type: paneltree.TabLogs},
	}
}

func shellTab() paneltree.Tab {
	return paneltree.Tab{
		ID:    ShellTabID,
		Label: "Shell",
		Data:  paneltree.TabData{Type: paneltree.TabTerminal, TerminalID: ShellTabID},
	}
}

func (l *TaskLayout) nextPanelID() string {
	l.nextID++
	return fmt.Sprintf("panel-%d", l.nextID)
}

func (l *TaskLayout) nextGroupID() string {
	l.nextID++
	return fmt.Sprintf("group-%d", l.nextID)
}

func (l *TaskLayout) nextTerminalID() string {
	l.nextID++
	return fmt.Sprintf("terminal-%d", l.nextID)
}

// resolveTargetLeaf picks the insertion leaf for a new tab: the explicit
// target when it resolves, else the focused leaf, else the main leaf, else
// the first leaf of the tree.
func (l *TaskLayout) resolveTargetLeaf(targetPanelID string) *paneltree.Leaf {
	if leaf := paneltree.FindLeaf(l.Tree, targetPanelID); leaf != nil {
		return leaf
	}
	if leaf := paneltree.FindLeaf(l.Tree, l.FocusedPanelID); leaf != nil {
		return leaf
	}
	if leaf := paneltree.FindLeaf(l.Tree, MainPanelID); leaf != nil {
		return leaf
	}
	return paneltree.FirstLeaf(l.Tree)
}

// applyCleanup replaces the tree with its cleaned form, keeping the
// previous tree when cleanup would empty it. Reports whether the candidate
// was committed.
func (l *TaskLayout) applyCleanup(candidate paneltree.Node) bool {
	cleaned := paneltree.Cleanup(candidate)
	if cleaned == nil {
		return false
	}
	l.Tree = cleaned
	return true
}

// trackOpen records a newly opened tab in the file projections. Only file
// tabs touch openFiles and recentFiles.
func (l *TaskLayout) trackOpen(tabID string, recentCap int) {
	ref := tabid.Parse(tabID)
	if ref.Kind != tabid.KindFile {
		return
	}
	for _, existing := range l.OpenFiles {
		if existing == ref.Value {
			l.recordRecent(ref.Value, recentCap)
			return
		}
	}
	l.OpenFiles = append(l.OpenFiles, ref.Value)
	l.recordRecent(ref.Value, recentCap)
}

// trackClose removes a closed file tab's path from openFiles.
func (l *TaskLayout) trackClose(tabID string) {
	ref := tabid.Parse(tabID)
	if ref.Kind != tabid.KindFile {
		return
	}
	for i, existing := range l.OpenFiles {
		if existing == ref.Value {
			l.OpenFiles = append(l.OpenFiles[:i], l.OpenFiles[i+1:]...)
			return
		}
	}
}

func (l *TaskLayout) recordRecent(path string, limit int) {
	out := make([]string, 0, len(l.RecentFiles)+1)
	out = append(out, path)
	for _, existing := range l.RecentFiles {
		if existing == path {
			continue
		}
		out = append(out, existing)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	l.RecentFiles = out
}
