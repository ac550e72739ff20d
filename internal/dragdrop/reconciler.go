// Package dragdrop translates drag lifecycle events from the gesture
// collaborator into panel store operations: live same-leaf reordering
// during the drag, and a move or split on drop.
package dragdrop

import (
	"log/slog"

	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// ItemType classifies what a drag event points at.
type ItemType string

const (
	ItemTab    ItemType = "tab"
	ItemTabBar ItemType = "tab-bar"
	ItemPanel  ItemType = "panel"
)

// ZoneCenter is the panel drop zone that moves instead of splits.
const ZoneCenter = "center"

// Event is one drag lifecycle signal from the gesture library.
type Event struct {
	Type    ItemType
	PanelID string
	TabID   string

	// Zone is set for panel drops: "center" or a split side
	// (top/bottom/left/right).
	Zone string
}

// Reconciler drives one layout's drag state machine.
//
// Structural mutations on drop are routed through the deferral hook so
// the gesture library finishes its own teardown before the tree changes
// underneath the renderer; a nil hook applies them synchronously.
type Reconciler struct {
	store    *panelstore.Store
	layoutID string
	deferFn  func(apply func())
	logger   *slog.Logger
}

// New creates a reconciler for one layout. deferFn may be nil.
func New(store *panelstore.Store, layoutID string, deferFn func(apply func())) *Reconciler {
	return &Reconciler{
		store:    store,
		layoutID: layoutID,
		deferFn:  deferFn,
		logger:   slog.Default(),
	}
}

func (r *Reconciler) schedule(apply func()) {
	if r.deferFn == nil {
		apply()
		return
	}
	r.deferFn(apply)
}

// DragStart records the dragged tab. Non-tab grabs are ignored.
func (r *Reconciler) DragStart(ev Event) {
	if r == nil || ev.Type != ItemTab || ev.TabID == "" {
		return
	}
	r.store.SetDragging(r.layoutID, ev.TabID, ev.PanelID)
}

// DragOver live-reorders when the pointer hovers another tab in the same
// leaf as the dragged one. Cross-leaf hovers wait for the drop.
func (r *Reconciler) DragOver(ev Event) {
	if r == nil || ev.Type != ItemTab || ev.TabID == "" {
		return
	}
	view, ok := r.store.GetLayout(r.layoutID)
	if !ok || view.DraggingTabID == "" {
		return
	}
	if ev.PanelID != view.DraggingTabPanelID || ev.TabID == view.DraggingTabID {
		return
	}
	leaf := paneltree.FindLeaf(view.Tree, ev.PanelID)
	if leaf == nil {
		return
	}
	from := leaf.TabIndex(view.DraggingTabID)
	to := leaf.TabIndex(ev.TabID)
	if from < 0 || to < 0 || from == to {
		return
	}
	r.store.ReorderTabs(r.layoutID, ev.PanelID, from, to)
}

// DragEnd clears the drag state and, for a completed drop, commits the
// resulting move or split on the deferral hook. A canceled drag leaves
// the tree exactly as the live reordering left it.
func (r *Reconciler) DragEnd(ev Event, canceled bool) {
	if r == nil {
		return
	}
	view, ok := r.store.GetLayout(r.layoutID)
	r.store.ClearDragging(r.layoutID)
	if !ok || canceled {
		return
	}
	tabID := view.DraggingTabID
	sourcePanel := view.DraggingTabPanelID
	if tabID == "" || sourcePanel == "" {
		return
	}

	switch ev.Type {
	case ItemTab, ItemTabBar:
		if ev.PanelID == "" || ev.PanelID == sourcePanel {
			return
		}
		r.schedule(func() {
			if r.store.MoveTab(r.layoutID, tabID, sourcePanel, ev.PanelID) {
				r.store.SetFocusedPanel(r.layoutID, ev.PanelID)
			}
		})
	case ItemPanel:
		if ev.PanelID == "" {
			return
		}
		if ev.Zone == ZoneCenter {
			r.schedule(func() {
				if r.store.MoveTab(r.layoutID, tabID, sourcePanel, ev.PanelID) {
					r.store.SetFocusedPanel(r.layoutID, ev.PanelID)
				}
			})
			return
		}
		direction, ok := splitZone(ev.Zone)
		if !ok {
			r.logger.Debug("dragdrop: unknown drop zone", "zone", ev.Zone)
			return
		}
		r.schedule(func() {
			if newPanel, ok := r.store.SplitPanel(r.layoutID, tabID, sourcePanel, ev.PanelID, direction); ok {
				r.store.SetFocusedPanel(r.layoutID, newPanel)
			}
		})
	}
}

func splitZone(zone string) (panelstore.SplitDirection, bool) {
	switch zone {
	case "left":
		return panelstore.SplitLeft, true
	case "right":
		return panelstore.SplitRight, true
	case "top":
		return panelstore.SplitTop, true
	case "bottom":
		return panelstore.SplitBottom, true
	}
	return "", false
}
