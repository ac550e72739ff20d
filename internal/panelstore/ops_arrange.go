package panelstore

import (
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// SplitDirection is a drop side, mapped onto a split axis plus a
// before/after insertion side.
type SplitDirection string

const (
	SplitLeft   SplitDirection = "left"
	SplitRight  SplitDirection = "right"
	SplitTop    SplitDirection = "top"
	SplitBottom SplitDirection = "bottom"
)

func (d SplitDirection) axis() paneltree.Direction {
	if d == SplitTop || d == SplitBottom {
		return paneltree.DirectionVertical
	}
	return paneltree.DirectionHorizontal
}

func (d SplitDirection) isAfter() bool {
	return d == SplitRight || d == SplitBottom
}

// MoveTab relocates tabID from the source leaf to the target leaf, where
// it becomes active. The source side goes through cleanup; moving a
// preview tab pins it.
func (s *Store) MoveTab(layoutID, tabID, sourcePanelID, targetPanelID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		source := paneltree.FindLeaf(l.Tree, sourcePanelID)
		target := paneltree.FindLeaf(l.Tree, targetPanelID)
		if source == nil || target == nil {
			return false
		}
		tab, ok := source.Tab(tabID)
		if !ok {
			return false
		}
		if sourcePanelID == targetPanelID {
			l.Tree = paneltree.UpdateLeaf(l.Tree, targetPanelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
				return paneltree.SetActiveTab(leaf, tabID)
			})
			return true
		}
		tab.Preview = false
		candidate := paneltree.UpdateLeaf(l.Tree, sourcePanelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
			return paneltree.RemoveTab(leaf, tabID, DefaultTabID)
		})
		candidate = paneltree.UpdateLeaf(candidate, targetPanelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
			leaf = paneltree.AddTab(leaf, tab)
			return paneltree.SetActiveTab(leaf, tabID)
		})
		return l.applyCleanup(candidate)
	})
}

// SplitPanel moves tabID out of the source leaf into a brand-new leaf
// split off the target panel. Splitting a leaf against itself while it
// holds at most one tab does not relocate the sole tab; a fresh terminal
// tab seeds the new sibling instead. Returns the new leaf's id on commit.
func (s *Store) SplitPanel(layoutID, tabID, sourcePanelID, targetPanelID string, direction SplitDirection) (string, bool) {
	var newPanelID string
	changed := s.mutate(layoutID, func(l *TaskLayout) bool {
		source := paneltree.FindLeaf(l.Tree, sourcePanelID)
		target := paneltree.FindPanel(l.Tree, targetPanelID)
		if source == nil || target == nil {
			return false
		}
		tab, ok := source.Tab(tabID)
		if !ok {
			return false
		}

		degenerate := sourcePanelID == targetPanelID && len(source.Tabs) <= 1
		if degenerate {
			tab = terminalTab(l.nextTerminalID())
		} else {
			tab.Preview = false
		}

		split := &paneltree.Leaf{
			ID:          l.nextPanelID(),
			Tabs:        []paneltree.Tab{tab},
			ActiveTabID: tab.ID,
			ShowTabs:    true,
			Droppable:   true,
		}

		candidate := l.Tree
		if !degenerate {
			candidate = paneltree.UpdateLeaf(candidate, sourcePanelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
				return paneltree.RemoveTab(leaf, tabID, DefaultTabID)
			})
		}
		candidate = paneltree.Update(candidate, targetPanelID, func(n paneltree.Node) paneltree.Node {
			children := []paneltree.Node{n, split}
			if !direction.isAfter() {
				children = []paneltree.Node{split, n}
			}
			return &paneltree.Group{
				ID:        l.nextGroupID(),
				Direction: direction.axis(),
				Children:  children,
				Sizes:     []float64{50, 50},
			}
		})
		if !l.applyCleanup(candidate) {
			return false
		}
		newPanelID = split.ID
		return true
	})
	return newPanelID, changed
}

// ReorderTabs splice-moves a tab within the named leaf.
func (s *Store) ReorderTabs(layoutID, panelID string, sourceIndex, targetIndex int) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		leaf := paneltree.FindLeaf(l.Tree, panelID)
		if leaf == nil {
			return false
		}
		next := paneltree.ReorderTabs(leaf, sourceIndex, targetIndex)
		if next == leaf {
			return false
		}
		l.Tree = paneltree.UpdateLeaf(l.Tree, panelID, func(*paneltree.Leaf) *paneltree.Leaf {
			return next
		})
		return true
	})
}

// UpdateSizes replaces the size weights of the addressed group. The caller
// is responsible for matching the child count.
func (s *Store) UpdateSizes(layoutID, groupID string, sizes []float64) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		group, ok := paneltree.FindPanel(l.Tree, groupID).(*paneltree.Group)
		if !ok || group == nil {
			return false
		}
		l.Tree = paneltree.Update(l.Tree, groupID, func(n paneltree.Node) paneltree.Node {
			g, ok := n.(*paneltree.Group)
			if !ok {
				return n
			}
			out := &paneltree.Group{
				ID:        g.ID,
				Direction: g.Direction,
				Children:  append([]paneltree.Node(nil), g.Children...),
				Sizes:     append([]float64(nil), sizes...),
			}
			return out
		})
		return true
	})
}
