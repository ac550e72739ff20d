package panelstore

import (
	"github.com/PostHog/Twig-sub005/internal/paneltree"
	"github.com/PostHog/Twig-sub005/internal/tabid"
)

// buildTab constructs the Tab for a content-derived id. Labels come from
// the id codec and stay overridable by later edits.
func buildTab(id string, preview bool) paneltree.Tab {
	ref := tabid.Parse(id)
	data := paneltree.TabData{Type: paneltree.TabOther}
	switch ref.Kind {
	case tabid.KindFile:
		data = paneltree.TabData{Type: paneltree.TabFile, Path: ref.Value}
	case tabid.KindDiff:
		data = paneltree.TabData{Type: paneltree.TabDiff, Path: ref.Value, Status: ref.Status}
	}
	return paneltree.Tab{
		ID:        id,
		Label:     tabid.Label(id),
		Data:      data,
		Closeable: true,
		Draggable: true,
		Preview:   preview,
	}
}

// OpenTab opens or activates tabID. An already-open tab is activated in
// place; asPreview=false additionally promotes a preview tab to pinned.
// A new tab lands in targetPanelID when it resolves, else the focused
// leaf, else the main leaf; opening as preview evicts the destination
// leaf's current preview tab.
func (s *Store) OpenTab(layoutID, tabID string, asPreview bool, targetPanelID string) bool {
	if tabID == "" {
		return false
	}
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		if leaf := paneltree.FindLeafWithTab(l.Tree, tabID); leaf != nil {
			return l.activateExisting(leaf.ID, tabID, asPreview)
		}
		leaf := l.resolveTargetLeaf(targetPanelID)
		if leaf == nil {
			return false
		}
		l.insertTab(leaf.ID, buildTab(tabID, asPreview), s.recentCap)
		return true
	})
}

// OpenFile opens path as a preview file tab in the default location.
func (s *Store) OpenFile(layoutID, path string) bool {
	if path == "" {
		return false
	}
	return s.OpenTab(layoutID, tabid.File(path), true, "")
}

// OpenDiff opens the diff tab for path with the given status.
func (s *Store) OpenDiff(layoutID, path string, status paneltree.DiffStatus) bool {
	if path == "" {
		return false
	}
	return s.OpenTab(layoutID, tabid.Diff(path, status), true, "")
}

// OpenTabInSplit opens tabID beside the main leaf: an existing tab is
// activated in place, a new one goes to the first non-main leaf, and when
// none exists the main leaf is split 50/50 to create one, which takes
// focus.
func (s *Store) OpenTabInSplit(layoutID, tabID string, asPreview bool) bool {
	if tabID == "" {
		return false
	}
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		if leaf := paneltree.FindLeafWithTab(l.Tree, tabID); leaf != nil {
			return l.activateExisting(leaf.ID, tabID, asPreview)
		}
		for _, leaf := range paneltree.Leaves(l.Tree) {
			if leaf.ID == MainPanelID {
				continue
			}
			l.insertTab(leaf.ID, buildTab(tabID, asPreview), s.recentCap)
			return true
		}
		main := paneltree.FindLeaf(l.Tree, MainPanelID)
		if main == nil {
			main = paneltree.FirstLeaf(l.Tree)
		}
		if main == nil {
			return false
		}
		split := &paneltree.Leaf{
			ID:        l.nextPanelID(),
			ShowTabs:  true,
			Droppable: true,
		}
		mainID := main.ID
		l.Tree = paneltree.Update(l.Tree, mainID, func(n paneltree.Node) paneltree.Node {
			return &paneltree.Group{
				ID:        l.nextGroupID(),
				Direction: paneltree.DirectionHorizontal,
				Children:  []paneltree.Node{n, split},
				Sizes:     []float64{50, 50},
			}
		})
		l.insertTab(split.ID, buildTab(tabID, asPreview), s.recentCap)
		l.FocusedPanelID = split.ID
		return true
	})
}

// activateExisting selects an already-open tab, clearing its preview flag
// when the open was requested as pinned. Reports whether the activation or
// the promotion actually changed anything, so a redundant reopen stays a
// no-op.
func (l *TaskLayout) activateExisting(panelID, tabID string, asPreview bool) bool {
	changed := false
	l.Tree = paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
		if !asPreview {
			if tab, ok := leaf.Tab(tabID); ok && tab.Preview {
				leaf = paneltree.UpdateTab(leaf, tabID, func(tab paneltree.Tab) paneltree.Tab {
					tab.Preview = false
					return tab
				})
				changed = true
			}
		}
		if leaf.ActiveTabID != tabID {
			leaf = paneltree.SetActiveTab(leaf, tabID)
			changed = true
		}
		return leaf
	})
	return changed
}

// insertTab places a new tab into the named leaf and makes it active,
// evicting the leaf's current preview tab first when the new tab is a
// preview. File projections are kept in sync for both the insert and the
// eviction.
func (l *TaskLayout) insertTab(panelID string, tab paneltree.Tab, recentCap int) {
	var evicted string
	l.Tree = paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
		if tab.Preview {
			if prev, ok := paneltree.PreviewTab(leaf); ok {
				evicted = prev.ID
				leaf = paneltree.RemoveTab(leaf, prev.ID, DefaultTabID)
			}
		}
		leaf = paneltree.AddTab(leaf, tab)
		return paneltree.SetActiveTab(leaf, tab.ID)
	})
	if evicted != "" {
		l.trackClose(evicted)
	}
	l.trackOpen(tab.ID, recentCap)
}
