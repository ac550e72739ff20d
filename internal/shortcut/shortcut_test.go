package shortcut

import (
	"context"
	"testing"

	"github.com/PostHog/Twig-sub005/internal/closeguard"
	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
	"github.com/PostHog/Twig-sub005/internal/tabid"
)

func newHandler(t *testing.T) (*panelstore.Store, *Handler) {
	t.Helper()
	s := panelstore.New(panelstore.Options{})
	s.InitializeTask("t1")
	s.OpenTab("t1", tabid.File("a.go"), false, "")
	s.OpenTab("t1", tabid.File("b.go"), false, "")
	h := New(s, closeguard.New(s, nil, nil), "t1")
	return s, h
}

func activeTab(t *testing.T, s *panelstore.Store, panelID string) string {
	t.Helper()
	view, ok := s.GetLayout("t1")
	if !ok {
		t.Fatal("layout missing")
	}
	leaf := paneltree.FindLeaf(view.Tree, panelID)
	if leaf == nil {
		t.Fatalf("leaf %q missing", panelID)
	}
	return leaf.ActiveTabID
}

func TestActivateTabByIndex(t *testing.T) {
	s, h := newHandler(t)
	if !h.ActivateTab(0) {
		t.Fatal("ActivateTab(0) returned false")
	}
	if got := activeTab(t, s, panelstore.MainPanelID); got != "logs" {
		t.Fatalf("active = %q", got)
	}
	if h.ActivateTab(9) {
		t.Fatal("out-of-range index must be a no-op")
	}
	if h.ActivateTab(-1) {
		t.Fatal("negative index must be a no-op")
	}
}

func TestActivateTabFollowsFocus(t *testing.T) {
	s, h := newHandler(t)
	s.SetFocusedPanel("t1", panelstore.TerminalPanelID)
	h.ActivateTab(0)
	if got := activeTab(t, s, panelstore.TerminalPanelID); got != "shell" {
		t.Fatalf("active = %q", got)
	}
}

func TestActivateTabDanglingFocusFallsBack(t *testing.T) {
	s, h := newHandler(t)
	s.SetFocusedPanel("t1", "deleted-panel")
	if !h.ActivateTab(1) {
		t.Fatal("dangling focus should fall back to main leaf")
	}
	if got := activeTab(t, s, panelstore.MainPanelID); got != "file-a.go" {
		t.Fatalf("active = %q", got)
	}
}

func TestCloseActiveTab(t *testing.T) {
	s, h := newHandler(t)
	changed, err := h.CloseActiveTab(context.Background())
	if err != nil || !changed {
		t.Fatalf("CloseActiveTab = %v, %v", changed, err)
	}
	view, _ := s.GetLayout("t1")
	if paneltree.FindLeafWithTab(view.Tree, "file-b.go") != nil {
		t.Fatal("active tab not closed")
	}
}

func TestCloseActiveTabNonCloseable(t *testing.T) {
	s, h := newHandler(t)
	s.SetActiveTab("t1", panelstore.MainPanelID, "logs")
	changed, err := h.CloseActiveTab(context.Background())
	if err != nil || changed {
		t.Fatalf("CloseActiveTab = %v, %v", changed, err)
	}
	if got := activeTab(t, s, panelstore.MainPanelID); got != "logs" {
		t.Fatalf("active = %q", got)
	}
}

func TestFocusNextPanelCycles(t *testing.T) {
	s, h := newHandler(t)
	if !h.FocusNextPanel() {
		t.Fatal("FocusNextPanel returned false")
	}
	view, _ := s.GetLayout("t1")
	if view.FocusedPanelID != panelstore.TerminalPanelID {
		t.Fatalf("FocusedPanelID = %q", view.FocusedPanelID)
	}
	h.FocusNextPanel()
	view, _ = s.GetLayout("t1")
	if view.FocusedPanelID != panelstore.MainPanelID {
		t.Fatalf("cycle should wrap: %q", view.FocusedPanelID)
	}
}

type fakeDispatcher struct {
	bound map[string]func()
}

func (f *fakeDispatcher) Bind(name string, handler func()) {
	if f.bound == nil {
		f.bound = make(map[string]func())
	}
	f.bound[name] = handler
}

func TestBindRegistersShortcuts(t *testing.T) {
	s, h := newHandler(t)
	d := &fakeDispatcher{}
	h.Bind(d)
	for _, name := range []string{"tab-1", "tab-9", "close-tab", "next-panel"} {
		if d.bound[name] == nil {
			t.Fatalf("shortcut %q not bound", name)
		}
	}
	d.bound["tab-1"]()
	if got := activeTab(t, s, panelstore.MainPanelID); got != "logs" {
		t.Fatalf("tab-1 handler: active = %q", got)
	}
}
