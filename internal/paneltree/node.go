package paneltree

// Direction is the split axis of a group panel.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// TabType tags the semantic variant carried by a tab.
type TabType string

const (
	TabFile              TabType = "file"
	TabDiff              TabType = "diff"
	TabTerminal          TabType = "terminal"
	TabWorkspaceTerminal TabType = "workspace-terminal"
	TabLogs              TabType = "logs"
	TabOther             TabType = "other"
)

// DiffStatus is the change status carried by a diff tab.
type DiffStatus string

const (
	DiffModified  DiffStatus = "modified"
	DiffAdded     DiffStatus = "added"
	DiffDeleted   DiffStatus = "deleted"
	DiffRenamed   DiffStatus = "renamed"
	DiffUntracked DiffStatus = "untracked"
)

// TabData is the tagged payload of a tab. Only the fields matching Type are
// meaningful; the engine stores them and never interprets Component.
type TabData struct {
	Type       TabType    `json:"type"`
	Path       string     `json:"path,omitempty"`
	Status     DiffStatus `json:"status,omitempty"`
	TerminalID string     `json:"terminal_id,omitempty"`
	Lifecycle  string     `json:"lifecycle,omitempty"`
}

// Tab is a single content slot inside a leaf panel.
type Tab struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Data      TabData `json:"data"`
	Closeable bool    `json:"closeable"`
	Draggable bool    `json:"draggable"`
	Preview   bool    `json:"preview,omitempty"`
	Unsaved   bool    `json:"unsaved,omitempty"`

	// Component is an opaque render handle owned by the rendering
	// collaborator. It is never serialized.
	Component any `json:"-"`
}

// Node is a panel tree node: either *Leaf or *Group.
type Node interface {
	isNode()
	NodeID() string
}

// Leaf holds an ordered set of tabs and an active-tab pointer.
type Leaf struct {
	ID          string
	Tabs        []Tab
	ActiveTabID string
	ShowTabs    bool
	Droppable   bool
}

func (*Leaf) isNode() {}

func (l *Leaf) NodeID() string {
	if l == nil {
		return ""
	}
	return l.ID
}

// Group splits two or more children along a direction with proportional
// size weights. len(Sizes) always equals len(Children).
type Group struct {
	ID        string
	Direction Direction
	Children  []Node
	Sizes     []float64
}

func (*Group) isNode() {}

func (g *Group) NodeID() string {
	if g == nil {
		return ""
	}
	return g.ID
}

// TabIndex returns the position of tabID in the leaf, or -1.
func (l *Leaf) TabIndex(tabID string) int {
	if l == nil {
		return -1
	}
	for i, tab := range l.Tabs {
		if tab.ID == tabID {
			return i
		}
	}
	return -1
}

// Tab returns the tab with tabID, if present.
func (l *Leaf) Tab(tabID string) (Tab, bool) {
	idx := l.TabIndex(tabID)
	if idx < 0 {
		return Tab{}, false
	}
	return l.Tabs[idx], true
}

// ActiveTab returns the leaf's active tab, if it resolves.
func (l *Leaf) ActiveTab() (Tab, bool) {
	if l == nil {
		return Tab{}, false
	}
	return l.Tab(l.ActiveTabID)
}

func (l *Leaf) clone() *Leaf {
	if l == nil {
		return nil
	}
	out := &Leaf{
		ID:          l.ID,
		ActiveTabID: l.ActiveTabID,
		ShowTabs:    l.ShowTabs,
		Droppable:   l.Droppable,
	}
	if len(l.Tabs) > 0 {
		out.Tabs = append([]Tab(nil), l.Tabs...)
	}
	return out
}

func (g *Group) clone() *Group {
	if g == nil {
		return nil
	}
	out := &Group{ID: g.ID, Direction: g.Direction}
	if len(g.Children) > 0 {
		out.Children = append([]Node(nil), g.Children...)
	}
	if len(g.Sizes) > 0 {
		out.Sizes = append([]float64(nil), g.Sizes...)
	}
	return out
}
