package paneltree

// AddTab appends a tab to the leaf. ActiveTabID is left for the caller to
// decide; preview eviction is the store's concern.
func AddTab(leaf *Leaf, tab Tab) *Leaf {
	if leaf == nil {
		return nil
	}
	out := leaf.clone()
	out.Tabs = append(out.Tabs, tab)
	return out
}

// RemoveTab removes tabID from the leaf and adjusts ActiveTabID: an
// inactive closure leaves the selection alone; closing the active tab
// selects min(closedIndex, len-1) of the remainder; an emptied leaf falls
// back to fallbackActive.
func RemoveTab(leaf *Leaf, tabID, fallbackActive string) *Leaf {
	if leaf == nil {
		return nil
	}
	idx := leaf.TabIndex(tabID)
	if idx < 0 {
		return leaf
	}
	out := leaf.clone()
	out.Tabs = append(out.Tabs[:idx], out.Tabs[idx+1:]...)
	if leaf.ActiveTabID != tabID {
		return out
	}
	if len(out.Tabs) == 0 {
		out.ActiveTabID = fallbackActive
		return out
	}
	next := idx
	if next > len(out.Tabs)-1 {
		next = len(out.Tabs) - 1
	}
	out.ActiveTabID = out.Tabs[next].ID
	return out
}

// SetActiveTab selects tabID in the leaf; a missing tab is a no-op.
func SetActiveTab(leaf *Leaf, tabID string) *Leaf {
	if leaf == nil || leaf.TabIndex(tabID) < 0 || leaf.ActiveTabID == tabID {
		return leaf
	}
	out := leaf.clone()
	out.ActiveTabID = tabID
	return out
}

// UpdateTab replaces the tab with tabID by updater(tab); missing is a no-op.
func UpdateTab(leaf *Leaf, tabID string, updater func(Tab) Tab) *Leaf {
	if leaf == nil || updater == nil {
		return leaf
	}
	idx := leaf.TabIndex(tabID)
	if idx < 0 {
		return leaf
	}
	out := leaf.clone()
	out.Tabs[idx] = updater(out.Tabs[idx])
	return out
}

// ReorderTabs splice-moves the tab at sourceIndex to targetIndex. Active
// tab identity is preserved since selection is id-based. Out-of-range
// indices are a no-op.
func ReorderTabs(leaf *Leaf, sourceIndex, targetIndex int) *Leaf {
	if leaf == nil {
		return nil
	}
	n := len(leaf.Tabs)
	if sourceIndex < 0 || sourceIndex >= n || targetIndex < 0 || targetIndex >= n || sourceIndex == targetIndex {
		return leaf
	}
	out := leaf.clone()
	moved := out.Tabs[sourceIndex]
	out.Tabs = append(out.Tabs[:sourceIndex], out.Tabs[sourceIndex+1:]...)
	rest := append([]Tab(nil), out.Tabs[targetIndex:]...)
	out.Tabs = append(out.Tabs[:targetIndex], moved)
	out.Tabs = append(out.Tabs, rest...)
	return out
}

// PreviewTab returns the leaf's preview tab, if one exists. The store
// maintains at most one per leaf.
func PreviewTab(leaf *Leaf) (Tab, bool) {
	if leaf == nil {
		return Tab{}, false
	}
	for _, tab := range leaf.Tabs {
		if tab.Preview {
			return tab, true
		}
	}
	return Tab{}, false
}
