package paneltree

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tree := Node(&Group{
		ID:        "g1",
		Direction: DirectionHorizontal,
		Children: []Node{
			&Leaf{
				ID:          "left",
				Tabs:        []Tab{{ID: "file-a.go", Label: "a.go", Data: TabData{Type: TabFile, Path: "a.go"}, Closeable: true, Preview: true}},
				ActiveTabID: "file-a.go",
				ShowTabs:    true,
				Droppable:   true,
			},
			&Leaf{ID: "right", Tabs: []Tab{{ID: "shell", Label: "Shell", Data: TabData{Type: TabTerminal, TerminalID: "shell"}}}, ActiveTabID: "shell"},
		},
		Sizes: []float64{60, 40},
	})

	snap := Snapshot(tree)
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var decoded NodeSnapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	rebuilt, err := FromSnapshot(&decoded)
	if err != nil {
		t.Fatalf("FromSnapshot() error: %v", err)
	}
	if !reflect.DeepEqual(tree, rebuilt) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", rebuilt, tree)
	}
}

func TestFromSnapshotRejectsMalformedGroup(t *testing.T) {
	snap := &NodeSnapshot{
		Type:      "group",
		ID:        "g1",
		Direction: DirectionVertical,
		Children:  []NodeSnapshot{{Type: "leaf", ID: "a"}, {Type: "leaf", ID: "b"}},
		Sizes:     []float64{100},
	}
	if _, err := FromSnapshot(snap); err == nil {
		t.Fatal("expected size mismatch error")
	}
	if _, err := FromSnapshot(&NodeSnapshot{Type: "blob"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func TestFromSnapshotRejectsUndersizedGroup(t *testing.T) {
	// Groups hold at least two children; a snapshot edited down to fewer
	// must fail restore instead of rebuilding a degenerate tree.
	for _, snap := range []*NodeSnapshot{
		{Type: "group", ID: "g1", Direction: DirectionVertical},
		{
			Type:      "group",
			ID:        "g1",
			Direction: DirectionVertical,
			Children:  []NodeSnapshot{{Type: "leaf", ID: "a"}},
			Sizes:     []float64{100},
		},
	} {
		if _, err := FromSnapshot(snap); err == nil {
			t.Fatalf("group with %d children restored", len(snap.Children))
		}
	}
}

func TestSnapshotNilTree(t *testing.T) {
	if Snapshot(nil) != nil {
		t.Fatal("nil tree should snapshot to nil")
	}
	node, err := FromSnapshot(nil)
	if err != nil || node != nil {
		t.Fatalf("FromSnapshot(nil) = %#v, %v", node, err)
	}
}
