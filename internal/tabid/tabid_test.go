package tabid

import (
	"testing"

	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

func TestFileRoundTrip(t *testing.T) {
	id := File("src/App.tsx")
	if id != "file-src/App.tsx" {
		t.Fatalf("File() = %q", id)
	}
	ref := Parse(id)
	if ref.Kind != KindFile || ref.Value != "src/App.tsx" {
		t.Fatalf("Parse(%q) = %#v", id, ref)
	}
}

func TestDiffRoundTrip(t *testing.T) {
	id := Diff("src/App.tsx", paneltree.DiffModified)
	if id != "diff-modified:src/App.tsx" {
		t.Fatalf("Diff() = %q", id)
	}
	ref := Parse(id)
	if ref.Kind != KindDiff || ref.Value != "src/App.tsx" || ref.Status != paneltree.DiffModified {
		t.Fatalf("Parse(%q) = %#v", id, ref)
	}
}

func TestDiffWithoutStatus(t *testing.T) {
	id := Diff("src/App.tsx", "")
	if id != "diff-src/App.tsx" {
		t.Fatalf("Diff() = %q", id)
	}
	ref := Parse(id)
	if ref.Kind != KindDiff || ref.Value != "src/App.tsx" || ref.Status != "" {
		t.Fatalf("Parse(%q) = %#v", id, ref)
	}
}

func TestDiffPathContainingColon(t *testing.T) {
	// "a:b.txt" must not be misread as a status prefix.
	ref := Parse(Diff("a:b.txt", ""))
	if ref.Kind != KindDiff || ref.Value != "a:b.txt" || ref.Status != "" {
		t.Fatalf("Parse = %#v", ref)
	}
}

func TestParseSystemTab(t *testing.T) {
	ref := Parse("logs")
	if ref.Kind != KindSystem || ref.Value != "logs" {
		t.Fatalf("Parse(logs) = %#v", ref)
	}
}

func TestWorkspaceTerminalID(t *testing.T) {
	id := WorkspaceTerminal("s42")
	if id != "workspace-terminal-s42" {
		t.Fatalf("WorkspaceTerminal() = %q", id)
	}
	if ref := Parse(id); ref.Kind != KindSystem || ref.Value != id {
		t.Fatalf("Parse(%q) = %#v", id, ref)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{File("src/App.tsx"), "App.tsx"},
		{Diff("src/App.tsx", paneltree.DiffModified), "App.tsx (diff)"},
		{Diff("src/App.tsx", paneltree.DiffDeleted), "App.tsx (Deleted)"},
		{Diff("src/App.tsx", paneltree.DiffAdded), "App.tsx (New)"},
		{Diff("src/App.tsx", paneltree.DiffUntracked), "App.tsx (New)"},
		{Diff("src/App.tsx", paneltree.DiffRenamed), "App.tsx (Renamed)"},
		{Diff("src/App.tsx", ""), "App.tsx (diff)"},
		{"logs", "logs"},
		{"workspace-terminal-s1", "workspace-terminal-s1"},
	}
	for _, tc := range cases {
		if got := Label(tc.id); got != tc.want {
			t.Fatalf("Label(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
