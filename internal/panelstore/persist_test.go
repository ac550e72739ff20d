package panelstore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/PostHog/Twig-sub005/internal/tabid"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := New(Options{})
	s.InitializeTask("t1")
	s.InitializeTask("t2")
	s.OpenFile("t1", "src/App.tsx")
	s.OpenTab("t1", tabid.File("src/Other.tsx"), false, "")
	s.SplitPanel("t2", "shell", TerminalPanelID, TerminalPanelID, SplitRight)
	s.SetFocusedPanel("t2", TerminalPanelID)

	snap := s.Snapshot()
	beforeT1 := mustLayout(t, s, "t1")
	beforeT2 := mustLayout(t, s, "t2")

	s.ClearAllLayouts()
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	afterT1 := mustLayout(t, s, "t1")
	afterT2 := mustLayout(t, s, "t2")
	if !reflect.DeepEqual(beforeT1.Tree, afterT1.Tree) {
		t.Fatalf("t1 tree mismatch:\n got %#v\nwant %#v", afterT1.Tree, beforeT1.Tree)
	}
	if !equalStrings(beforeT1.OpenFiles, afterT1.OpenFiles) {
		t.Fatalf("t1 OpenFiles = %v, want %v", afterT1.OpenFiles, beforeT1.OpenFiles)
	}
	if !reflect.DeepEqual(beforeT2.Tree, afterT2.Tree) {
		t.Fatal("t2 tree mismatch")
	}
	if afterT2.FocusedPanelID != beforeT2.FocusedPanelID {
		t.Fatalf("t2 focus = %q, want %q", afterT2.FocusedPanelID, beforeT2.FocusedPanelID)
	}
}

func TestRestoreContinuesIDGenerator(t *testing.T) {
	s := New(Options{})
	s.InitializeTask("t1")
	newPanel, _ := s.SplitPanel("t1", "shell", TerminalPanelID, TerminalPanelID, SplitRight)

	snap := s.Snapshot()
	s.ClearAllLayouts()
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	nextPanel, ok := s.SplitPanel("t1", "logs", MainPanelID, MainPanelID, SplitRight)
	if !ok {
		t.Fatal("SplitPanel after restore failed")
	}
	if nextPanel == newPanel {
		t.Fatalf("id generator restarted: %q reused", nextPanel)
	}
}

func TestPersisterSaveLoad(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPersister(dir, nil)
	if err != nil {
		t.Fatalf("NewPersister() error: %v", err)
	}
	s := New(Options{Persister: p})
	s.InitializeTask("t1")
	s.OpenFile("t1", "a.go")

	loaded := p.Load()
	if loaded.Version != SnapshotVersion {
		t.Fatalf("Version = %d", loaded.Version)
	}
	restored := New(Options{})
	if err := restored.Restore(loaded); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if !equalStrings(restored.OpenFiles("t1"), []string{"a.go"}) {
		t.Fatalf("OpenFiles = %v", restored.OpenFiles("t1"))
	}
}

func TestPersisterLoadMissingFile(t *testing.T) {
	p, err := NewPersister(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewPersister() error: %v", err)
	}
	snap := p.Load()
	if len(snap.State.TaskLayouts) != 0 {
		t.Fatalf("expected empty snapshot, got %#v", snap)
	}
}

func TestPersisterLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StoreFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	p, err := NewPersister(dir, nil)
	if err != nil {
		t.Fatalf("NewPersister() error: %v", err)
	}
	snap := p.Load()
	if len(snap.State.TaskLayouts) != 0 {
		t.Fatal("corrupt snapshot should load as empty")
	}
}

func TestRestoreVersionMismatchResets(t *testing.T) {
	s := New(Options{})
	s.InitializeTask("t1")
	snap := s.Snapshot()
	snap.Version = SnapshotVersion - 1
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if ids := s.LayoutIDs(); len(ids) != 0 {
		t.Fatalf("version mismatch should reset: %v", ids)
	}
}
