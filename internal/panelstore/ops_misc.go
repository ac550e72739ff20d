package panelstore

import (
	"github.com/PostHog/Twig-sub005/internal/paneltree"
	"github.com/PostHog/Twig-sub005/internal/tabid"
)

func terminalTab(id string) paneltree.Tab {
	return paneltree.Tab{
		ID:        id,
		Label:     "Terminal",
		Data:      paneltree.TabData{Type: paneltree.TabTerminal, TerminalID: id},
		Closeable: true,
		Draggable: true,
	}
}

// KeepTab pins a preview tab in place without changing the selection.
func (s *Store) KeepTab(layoutID, panelID, tabID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		leaf := paneltree.FindLeaf(l.Tree, panelID)
		if leaf == nil {
			return false
		}
		tab, ok := leaf.Tab(tabID)
		if !ok || !tab.Preview {
			return false
		}
		l.Tree = paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
			return paneltree.UpdateTab(leaf, tabID, func(tab paneltree.Tab) paneltree.Tab {
				tab.Preview = false
				return tab
			})
		})
		return true
	})
}

// SetFocusedPanel records the focused leaf. The id may dangle after later
// structural edits; consumers fall back instead of failing.
func (s *Store) SetFocusedPanel(layoutID, panelID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		if l.FocusedPanelID == panelID {
			return false
		}
		l.FocusedPanelID = panelID
		return true
	})
}

// SetActiveTab selects tabID within the named leaf.
func (s *Store) SetActiveTab(layoutID, panelID, tabID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		leaf := paneltree.FindLeaf(l.Tree, panelID)
		if leaf == nil || leaf.TabIndex(tabID) < 0 || leaf.ActiveTabID == tabID {
			return false
		}
		l.Tree = paneltree.UpdateLeaf(l.Tree, panelID, func(leaf *paneltree.Leaf) *paneltree.Leaf {
			return paneltree.SetActiveTab(leaf, tabID)
		})
		return true
	})
}

// AddTerminalTab inserts a fresh terminal tab into the named leaf (or the
// terminal leaf when panelID is empty) and makes it active.
func (s *Store) AddTerminalTab(layoutID, panelID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		if panelID == "" {
			panelID = TerminalPanelID
		}
		leaf := l.resolveTargetLeaf(panelID)
		if leaf == nil {
			return false
		}
		l.insertTab(leaf.ID, terminalTab(l.nextTerminalID()), s.recentCap)
		return true
	})
}

// AddWorkspaceTerminalTab inserts the deterministic workspace terminal tab
// for sessionID, or activates it when it already exists. Lifecycle is the
// init/start tag carried on the tab data.
func (s *Store) AddWorkspaceTerminalTab(layoutID, sessionID, lifecycle string) bool {
	if sessionID == "" {
		return false
	}
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		id := tabid.WorkspaceTerminal(sessionID)
		if leaf := paneltree.FindLeafWithTab(l.Tree, id); leaf != nil {
			l.activateExisting(leaf.ID, id, false)
			return true
		}
		leaf := l.resolveTargetLeaf(TerminalPanelID)
		if leaf == nil {
			return false
		}
		tab := paneltree.Tab{
			ID:        id,
			Label:     "Terminal " + sessionID,
			Data:      paneltree.TabData{Type: paneltree.TabWorkspaceTerminal, TerminalID: sessionID, Lifecycle: lifecycle},
			Closeable: true,
			Draggable: true,
		}
		l.insertTab(leaf.ID, tab, s.recentCap)
		return true
	})
}

// SetDragging records the tab being dragged and its origin leaf.
func (s *Store) SetDragging(layoutID, tabID, panelID string) bool {
	return s.mutate(layoutID, func(l *TaskLayout) bool {
		if l.DraggingTabID == tabID && l.DraggingTabPanelID == panelID {
			return false
		}
		l.DraggingTabID = tabID
		l.DraggingTabPanelID = panelID
		return true
	})
}

// ClearDragging resets the drag bookkeeping.
func (s *Store) ClearDragging(layoutID string) bool {
	return s.SetDragging(layoutID, "", "")
}
