// Package shortcut maps named keyboard shortcuts onto layout store
// operations for one active layout. The key dispatcher collaborator only
// sees names and callbacks; key sequences are its concern.
package shortcut

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PostHog/Twig-sub005/internal/closeguard"
	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// Dispatcher binds a named shortcut to a handler, scoped by the caller to
// "layout is active".
type Dispatcher interface {
	Bind(name string, handler func())
}

// Handler wires shortcuts to one layout.
type Handler struct {
	store    *panelstore.Store
	guard    *closeguard.Guard
	layoutID string
	logger   *slog.Logger
}

// New creates a handler for layoutID.
func New(store *panelstore.Store, guard *closeguard.Guard, layoutID string) *Handler {
	return &Handler{store: store, guard: guard, layoutID: layoutID, logger: slog.Default()}
}

// focusedLeaf resolves the focused leaf, falling back to the main leaf and
// then the first leaf when the focus id dangles.
func (h *Handler) focusedLeaf() *paneltree.Leaf {
	view, ok := h.store.GetLayout(h.layoutID)
	if !ok {
		return nil
	}
	if leaf := paneltree.FindLeaf(view.Tree, view.FocusedPanelID); leaf != nil {
		return leaf
	}
	if leaf := paneltree.FindLeaf(view.Tree, panelstore.MainPanelID); leaf != nil {
		return leaf
	}
	return paneltree.FirstLeaf(view.Tree)
}

// ActivateTab selects the nth tab (0-based) of the focused leaf. Out of
// range is a no-op.
func (h *Handler) ActivateTab(n int) bool {
	if h == nil {
		return false
	}
	leaf := h.focusedLeaf()
	if leaf == nil || n < 0 || n >= len(leaf.Tabs) {
		return false
	}
	return h.store.SetActiveTab(h.layoutID, leaf.ID, leaf.Tabs[n].ID)
}

// CloseActiveTab closes the focused leaf's active tab through the close
// guard. A non-closeable active tab is a no-op.
func (h *Handler) CloseActiveTab(ctx context.Context) (bool, error) {
	if h == nil {
		return false, nil
	}
	leaf := h.focusedLeaf()
	if leaf == nil {
		return false, nil
	}
	tab, ok := leaf.ActiveTab()
	if !ok || !tab.Closeable {
		return false, nil
	}
	return h.guard.CloseTab(ctx, h.layoutID, leaf.ID, tab.ID)
}

// FocusNextPanel cycles focus to the next leaf in depth-first order.
func (h *Handler) FocusNextPanel() bool {
	if h == nil {
		return false
	}
	view, ok := h.store.GetLayout(h.layoutID)
	if !ok {
		return false
	}
	leaves := paneltree.Leaves(view.Tree)
	if len(leaves) == 0 {
		return false
	}
	current := 0
	for i, leaf := range leaves {
		if leaf.ID == view.FocusedPanelID {
			current = i
			break
		}
	}
	next := leaves[(current+1)%len(leaves)]
	return h.store.SetFocusedPanel(h.layoutID, next.ID)
}

// Bind registers the standard shortcut names on the dispatcher: tab-1
// through tab-9, close-tab, and next-panel.
func (h *Handler) Bind(d Dispatcher) {
	if h == nil || d == nil {
		return
	}
	for i := 0; i < 9; i++ {
		n := i
		d.Bind(fmt.Sprintf("tab-%d", n+1), func() { h.ActivateTab(n) })
	}
	d.Bind("close-tab", func() {
		if _, err := h.CloseActiveTab(context.Background()); err != nil {
			h.logger.Warn("shortcut: close active tab", "error", err)
		}
	})
	d.Bind("next-panel", func() { h.FocusNextPanel() })
}
