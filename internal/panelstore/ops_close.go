package panelstore

import (
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// CloseTab removes tabID from the named leaf, applies the structural
// cleanup pass, and keeps the previous tree when cleanup would empty it.
func (s *Store) CloseTab(layoutID, panelID, tabID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		leaf := paneltree.FindLeaf(l.Tree, panelID)
		if leaf == nil || leaf.TabIndex(tabID) < 0 {
			return false
		}
		candidate := paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
			return paneltree.RemoveTab(leaf, tabID, DefaultTabID)
		})
		if !l.applyCleanup(candidate) {
			return false
		}
		l.trackClose(tabID)
		return true
	})
}

// CloseOtherTabs closes every closeable tab in the leaf except keepTabID.
// Tabs with Closeable=false are always retained.
func (s *Store) CloseOtherTabs(layoutID, panelID, keepTabID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		return l.closeBatch(panelID, keepTabID, func(i, keepIdx int, tab paneltree.Tab) bool {
			return i != keepIdx
		})
	})
}

// CloseTabsToRight closes every closeable tab after tabID in the leaf's
// current order; the reference tab itself is retained.
func (s *Store) CloseTabsToRight(layoutID, panelID, tabID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		return l.closeBatch(panelID, tabID, func(i, refIdx int, tab paneltree.Tab) bool {
			return i > refIdx
		})
	})
}

// closeBatch removes every closeable tab for which shouldClose reports
// true, given the index of the reference tab. The reference tab becomes
// active when the previous selection was closed.
func (l *TaskLayout) closeBatch(panelID, refTabID string, shouldClose func(i, refIdx int, tab paneltree.Tab) bool) bool {
	leaf := paneltree.FindLeaf(l.Tree, panelID)
	if leaf == nil {
		return false
	}
	refIdx := leaf.TabIndex(refTabID)
	if refIdx < 0 {
		return false
	}
	var closed []string
	candidate := paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
		kept := make([]paneltree.Tab, 0, len(leaf.Tabs))
		for i, tab := range leaf.Tabs {
			if tab.Closeable && shouldClose(i, refIdx, tab) {
				closed = append(closed, tab.ID)
				continue
			}
			kept = append(kept, tab)
		}
		out := &paneltree.Leaf{
			ID:          leaf.ID,
			Tabs:        kept,
			ActiveTabID: leaf.ActiveTabID,
			ShowTabs:    leaf.ShowTabs,
			Droppable:   leaf.Droppable,
		}
		if out.TabIndex(out.ActiveTabID) < 0 {
			out.ActiveTabID = refTabID
		}
		return out
	})
	if len(closed) == 0 {
		return false
	}
	if !l.applyCleanup(candidate) {
		return false
	}
	for _, id := range closed {
		l.trackClose(id)
	}
	return true
}
