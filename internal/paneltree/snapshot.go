package paneltree

import "fmt"

// NodeSnapshot captures a panel node in a JSON-safe format. The interface
// tree itself does not round-trip through encoding/json, so persistence
// goes through this flat form.
type NodeSnapshot struct {
	Type        string         `json:"type"`
	ID          string         `json:"id"`
	Direction   Direction      `json:"direction,omitempty"`
	Children    []NodeSnapshot `json:"children,omitempty"`
	Sizes       []float64      `json:"sizes,omitempty"`
	Tabs        []Tab          `json:"tabs,omitempty"`
	ActiveTabID string         `json:"active_tab_id,omitempty"`
	ShowTabs    bool           `json:"show_tabs,omitempty"`
	Droppable   bool           `json:"droppable,omitempty"`
}

// Snapshot converts a panel tree into its snapshot form.
func Snapshot(tree Node) *NodeSnapshot {
	switch n := tree.(type) {
	case *Leaf:
		snap := &NodeSnapshot{
			Type:        "leaf",
			ID:          n.ID,
			ActiveTabID: n.ActiveTabID,
			ShowTabs:    n.ShowTabs,
			Droppable:   n.Droppable,
		}
		if len(n.Tabs) > 0 {
			snap.Tabs = append([]Tab(nil), n.Tabs...)
		}
		return snap
	case *Group:
		snap := &NodeSnapshot{
			Type:      "group",
			ID:        n.ID,
			Direction: n.Direction,
		}
		if len(n.Sizes) > 0 {
			snap.Sizes = append([]float64(nil), n.Sizes...)
		}
		for _, child := range n.Children {
			childSnap := Snapshot(child)
			if childSnap == nil {
				continue
			}
			snap.Children = append(snap.Children, *childSnap)
		}
		return snap
	}
	return nil
}

// FromSnapshot rebuilds a panel tree from its snapshot form.
func FromSnapshot(snap *NodeSnapshot) (Node, error) {
	if snap == nil {
		return nil, nil
	}
	return nodeFromSnapshot(*snap)
}

func nodeFromSnapshot(snap NodeSnapshot) (Node, error) {
	switch snap.Type {
	case "leaf":
		leaf := &Leaf{
			ID:          snap.ID,
			ActiveTabID: snap.ActiveTabID,
			ShowTabs:    snap.ShowTabs,
			Droppable:   snap.Droppable,
		}
		if len(snap.Tabs) > 0 {
			leaf.Tabs = append([]Tab(nil), snap.Tabs...)
		}
		return leaf, nil
	case "group":
		group := &Group{ID: snap.ID, Direction: snap.Direction}
		if len(snap.Sizes) > 0 {
			group.Sizes = append([]float64(nil), snap.Sizes...)
		}
		for _, child := range snap.Children {
			node, err := nodeFromSnapshot(child)
			if err != nil {
				return nil, err
			}
			group.Children = append(group.Children, node)
		}
		if len(group.Children) < 2 {
			return nil, fmt.Errorf("paneltree: group %q has %d children, want at least 2", snap.ID, len(group.Children))
		}
		if len(group.Children) != len(group.Sizes) {
			return nil, fmt.Errorf("paneltree: group %q has %d children and %d sizes", snap.ID, len(group.Children), len(group.Sizes))
		}
		return group, nil
	default:
		return nil, fmt.Errorf("paneltree: unknown node type %q", snap.Type)
	}
}
