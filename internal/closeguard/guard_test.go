package closeguard

import (
	"context"
	"errors"
	"testing"

	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
	"github.com/PostHog/Twig-sub005/internal/tabid"
)

type fakeRegistry struct {
	unsaved map[string]bool
}

func (f *fakeRegistry) HasUnsavedChanges(tabID string) bool { return f.unsaved[tabID] }

type fakeConfirmer struct {
	decisions map[string]Decision
	asked     []string
	err       error
}

func (f *fakeConfirmer) Confirm(_ context.Context, tabID, _ string) (Decision, error) {
	f.asked = append(f.asked, tabID)
	if f.err != nil {
		return "", f.err
	}
	if d, ok := f.decisions[tabID]; ok {
		return d, nil
	}
	return DecisionDiscard, nil
}

func newGuardStore(t *testing.T) *panelstore.Store {
	t.Helper()
	s := panelstore.New(panelstore.Options{})
	s.InitializeTask("t1")
	s.OpenTab("t1", tabid.File("a.go"), false, "")
	s.OpenTab("t1", tabid.File("b.go"), false, "")
	s.OpenTab("t1", tabid.File("c.go"), false, "")
	return s
}

func mainLeaf(t *testing.T, s *panelstore.Store) *paneltree.Leaf {
	t.Helper()
	view, ok := s.GetLayout("t1")
	if !ok {
		t.Fatal("layout missing")
	}
	leaf := paneltree.FindLeaf(view.Tree, panelstore.MainPanelID)
	if leaf == nil {
		t.Fatal("main leaf missing")
	}
	return leaf
}

func TestCloseTabWithoutUnsavedSkipsPrompt(t *testing.T) {
	s := newGuardStore(t)
	confirmer := &fakeConfirmer{}
	g := New(s, &fakeRegistry{}, confirmer)
	changed, err := g.CloseTab(context.Background(), "t1", panelstore.MainPanelID, "file-a.go")
	if err != nil || !changed {
		t.Fatalf("CloseTab = %v, %v", changed, err)
	}
	if len(confirmer.asked) != 0 {
		t.Fatalf("unexpected prompts: %v", confirmer.asked)
	}
}

func TestCloseTabCancelAborts(t *testing.T) {
	s := newGuardStore(t)
	registry := &fakeRegistry{unsaved: map[string]bool{"file-a.go": true}}
	confirmer := &fakeConfirmer{decisions: map[string]Decision{"file-a.go": DecisionCancel}}
	g := New(s, registry, confirmer)
	changed, err := g.CloseTab(context.Background(), "t1", panelstore.MainPanelID, "file-a.go")
	if err != nil || changed {
		t.Fatalf("CloseTab = %v, %v", changed, err)
	}
	if mainLeaf(t, s).TabIndex("file-a.go") < 0 {
		t.Fatal("tab closed despite cancel")
	}
}

func TestCloseTabSaveDecisionProceeds(t *testing.T) {
	s := newGuardStore(t)
	registry := &fakeRegistry{unsaved: map[string]bool{"file-a.go": true}}
	confirmer := &fakeConfirmer{decisions: map[string]Decision{"file-a.go": DecisionSave}}
	g := New(s, registry, confirmer)
	changed, err := g.CloseTab(context.Background(), "t1", panelstore.MainPanelID, "file-a.go")
	if err != nil || !changed {
		t.Fatalf("CloseTab = %v, %v", changed, err)
	}
}

func TestCloseTabNonCloseableIsNoop(t *testing.T) {
	s := newGuardStore(t)
	g := New(s, &fakeRegistry{}, &fakeConfirmer{})
	changed, err := g.CloseTab(context.Background(), "t1", panelstore.MainPanelID, "logs")
	if err != nil || changed {
		t.Fatalf("CloseTab(logs) = %v, %v", changed, err)
	}
}

func TestBatchSingleCancelAbortsAll(t *testing.T) {
	s := newGuardStore(t)
	registry := &fakeRegistry{unsaved: map[string]bool{"file-a.go": true, "file-c.go": true}}
	confirmer := &fakeConfirmer{decisions: map[string]Decision{
		"file-a.go": DecisionDiscard,
		"file-c.go": DecisionCancel,
	}}
	g := New(s, registry, confirmer)
	changed, err := g.CloseOtherTabs(context.Background(), "t1", panelstore.MainPanelID, "file-b.go")
	if err != nil || changed {
		t.Fatalf("CloseOtherTabs = %v, %v", changed, err)
	}
	leaf := mainLeaf(t, s)
	// No partial effect: every tab is still there.
	for _, id := range []string{"logs", "file-a.go", "file-b.go", "file-c.go"} {
		if leaf.TabIndex(id) < 0 {
			t.Fatalf("tab %q closed despite batch cancel", id)
		}
	}
}

func TestBatchConfirmsBeforeAnyClose(t *testing.T) {
	s := newGuardStore(t)
	registry := &fakeRegistry{unsaved: map[string]bool{"file-b.go": true, "file-c.go": true}}
	confirmer := &fakeConfirmer{}
	g := New(s, registry, confirmer)
	changed, err := g.CloseTabsToRight(context.Background(), "t1", panelstore.MainPanelID, "file-a.go")
	if err != nil || !changed {
		t.Fatalf("CloseTabsToRight = %v, %v", changed, err)
	}
	if len(confirmer.asked) != 2 {
		t.Fatalf("expected both unsaved tabs confirmed upfront, asked %v", confirmer.asked)
	}
	leaf := mainLeaf(t, s)
	if leaf.TabIndex("file-b.go") >= 0 || leaf.TabIndex("file-c.go") >= 0 {
		t.Fatal("tabs to the right not closed")
	}
}

func TestConfirmErrorAborts(t *testing.T) {
	s := newGuardStore(t)
	registry := &fakeRegistry{unsaved: map[string]bool{"file-a.go": true}}
	confirmer := &fakeConfirmer{err: errors.New("dialog torn down")}
	g := New(s, registry, confirmer)
	changed, err := g.CloseTab(context.Background(), "t1", panelstore.MainPanelID, "file-a.go")
	if err == nil || changed {
		t.Fatalf("CloseTab = %v, %v", changed, err)
	}
	if mainLeaf(t, s).TabIndex("file-a.go") < 0 {
		t.Fatal("tab closed despite confirm error")
	}
}

func TestUnsavedFlagOnTabGates(t *testing.T) {
	s := newGuardStore(t)
	// Flag unsaved state on the tab itself rather than the registry.
	s.OpenTab("t1", tabid.File("a.go"), false, "")
	view, _ := s.GetLayout("t1")
	leaf := paneltree.FindLeaf(view.Tree, panelstore.MainPanelID)
	if leaf == nil {
		t.Fatal("main leaf missing")
	}
	confirmer := &fakeConfirmer{decisions: map[string]Decision{"file-a.go": DecisionCancel}}
	g := New(s, nil, confirmer)
	tab, _ := leaf.Tab("file-a.go")
	tab.Unsaved = true
	if !g.unsaved(tab) {
		t.Fatal("tab-level unsaved flag ignored")
	}
}
