// Package closeguard wraps the destructive close operations with an async
// confirmation gate over unsaved content. Batch closes are confirmed
// upfront and committed all-or-nothing: a single cancel aborts the whole
// batch with no partial effect.
package closeguard

import (
	"context"
	"fmt"

	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// Decision is a confirmation outcome. Anything but DecisionCancel grants
// permission to close.
type Decision string

const (
	DecisionSave    Decision = "save"
	DecisionDiscard Decision = "discard"
	DecisionCancel  Decision = "cancel"
)

// Registry is the external unsaved-content collaborator.
type Registry interface {
	HasUnsavedChanges(tabID string) bool
}

// Confirmer prompts the user about one unsaved tab.
type Confirmer interface {
	Confirm(ctx context.Context, tabID, label string) (Decision, error)
}

// Guard gates close operations on a store.
type Guard struct {
	store     *panelstore.Store
	registry  Registry
	confirmer Confirmer
}

// New creates a guard. Registry and confirmer may be nil, in which case
// only the tabs' own unsaved flags gate, resp. closes proceed unprompted.
func New(store *panelstore.Store, registry Registry, confirmer Confirmer) *Guard {
	return &Guard{store: store, registry: registry, confirmer: confirmer}
}

func (g *Guard) unsaved(tab paneltree.Tab) bool {
	if tab.Unsaved {
		return true
	}
	return g.registry != nil && g.registry.HasUnsavedChanges(tab.ID)
}

// confirmAll collects a decision for every candidate before anything
// closes. Returns false when any decision is a cancel.
func (g *Guard) confirmAll(ctx context.Context, candidates []paneltree.Tab) (bool, error) {
	for _, tab := range candidates {
		if !g.unsaved(tab) {
			continue
		}
		if g.confirmer == nil {
			continue
		}
		decision, err := g.confirmer.Confirm(ctx, tab.ID, tab.Label)
		if err != nil {
			return false, fmt.Errorf("closeguard: confirm %s: %w", tab.ID, err)
		}
		if decision == DecisionCancel {
			return false, nil
		}
	}
	return true, nil
}

// CloseTab closes one tab after confirmation. Returns whether the tree
// changed.
func (g *Guard) CloseTab(ctx context.Context, layoutID, panelID, tabID string) (bool, error) {
	if g == nil {
		return false, nil
	}
	tab, ok := g.findTab(layoutID, panelID, tabID)
	if !ok || !tab.Closeable {
		return false, nil
	}
	proceed, err := g.confirmAll(ctx, []paneltree.Tab{tab})
	if err != nil || !proceed {
		return false, err
	}
	return g.store.CloseTab(layoutID, panelID, tabID), nil
}

// CloseOtherTabs closes every closeable tab except keepTabID, gated on a
// full upfront confirmation pass.
func (g *Guard) CloseOtherTabs(ctx context.Context, layoutID, panelID, keepTabID string) (bool, error) {
	if g == nil {
		return false, nil
	}
	candidates := g.batchCandidates(layoutID, panelID, keepTabID, func(i, refIdx int) bool {
		return i != refIdx
	})
	proceed, err := g.confirmAll(ctx, candidates)
	if err != nil || !proceed {
		return false, err
	}
	return g.store.CloseOtherTabs(layoutID, panelID, keepTabID), nil
}

// CloseTabsToRight closes every closeable tab after tabID, gated on a
// full upfront confirmation pass.
func (g *Guard) CloseTabsToRight(ctx context.Context, layoutID, panelID, tabID string) (bool, error) {
	if g == nil {
		return false, nil
	}
	candidates := g.batchCandidates(layoutID, panelID, tabID, func(i, refIdx int) bool {
		return i > refIdx
	})
	proceed, err := g.confirmAll(ctx, candidates)
	if err != nil || !proceed {
		return false, err
	}
	return g.store.CloseTabsToRight(layoutID, panelID, tabID), nil
}

func (g *Guard) findTab(layoutID, panelID, tabID string) (paneltree.Tab, bool) {
	view, ok := g.store.GetLayout(layoutID)
	if !ok {
		return paneltree.Tab{}, false
	}
	leaf := paneltree.FindLeaf(view.Tree, panelID)
	if leaf == nil {
		return paneltree.Tab{}, false
	}
	return leaf.Tab(tabID)
}

// batchCandidates mirrors the store's batch retention rules: only
// closeable tabs selected by shouldClose relative to the reference index.
func (g *Guard) batchCandidates(layoutID, panelID, refTabID string, shouldClose func(i, refIdx int) bool) []paneltree.Tab {
	view, ok := g.store.GetLayout(layoutID)
	if !ok {
		return nil
	}
	leaf := paneltree.FindLeaf(view.Tree, panelID)
	if leaf == nil {
		return nil
	}
	refIdx := leaf.TabIndex(refTabID)
	if refIdx < 0 {
		return nil
	}
	var out []paneltree.Tab
	for i, tab := range leaf.Tabs {
		if tab.Closeable && shouldClose(i, refIdx) {
			out = append(out, tab)
		}
	}
	return out
}
