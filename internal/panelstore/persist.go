package panelstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PostHog/Twig-sub005/internal/atomicfile"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// SnapshotVersion is the persisted schema version. Bumping it makes every
// existing snapshot load as an empty store; there is no field-level
// migration by design.
const SnapshotVersion = 3

// StoreFileName is the fixed store key the snapshot is persisted under.
const StoreFileName = "twigpanes-layouts.json"

// StoreSnapshot is the on-disk shape of the full store.
type StoreSnapshot struct {
	Version int           `json:"version"`
	State   snapshotState `json:"state"`
}

type snapshotState struct {
	TaskLayouts map[string]layoutSnapshot `json:"taskLayouts"`
}

type layoutSnapshot struct {
	PanelTree      *paneltree.NodeSnapshot `json:"panel_tree"`
	OpenFiles      []string                `json:"open_files,omitempty"`
	RecentFiles    []string                `json:"recent_files,omitempty"`
	FocusedPanelID string                  `json:"focused_panel_id,omitempty"`
	NextID         int                     `json:"next_id"`
}

// snapshotLocked captures the full store state. Drag bookkeeping is
// transient and never persisted. Callers hold s.mu.
func (s *Store) snapshotLocked() StoreSnapshot {
	snap := StoreSnapshot{Version: SnapshotVersion}
	snap.State.TaskLayouts = make(map[string]layoutSnapshot, len(s.layouts))
	for id, layout := range s.layouts {
		snap.State.TaskLayouts[id] = layoutSnapshot{
			PanelTree:      paneltree.Snapshot(layout.Tree),
			OpenFiles:      append([]string(nil), layout.OpenFiles...),
			RecentFiles:    append([]string(nil), layout.RecentFiles...),
			FocusedPanelID: layout.FocusedPanelID,
			NextID:         layout.nextID,
		}
	}
	return snap
}

// Snapshot captures the full store state.
func (s *Store) Snapshot() StoreSnapshot {
	if s == nil {
		return StoreSnapshot{Version: SnapshotVersion}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore replaces the store contents with a snapshot. A version mismatch
// resets to an empty store, never a partial migration.
func (s *Store) Restore(snap StoreSnapshot) error {
	if s == nil {
		return errors.New("panelstore: store is nil")
	}
	layouts := make(map[string]*TaskLayout)
	if snap.Version == SnapshotVersion {
		for id, ls := range snap.State.TaskLayouts {
			layout, err := layoutFromSnapshot(ls)
			if err != nil {
				s.logger.Warn("panelstore: corrupt layout in snapshot, resetting", "layout", id, "error", err)
				layouts = make(map[string]*TaskLayout)
				break
			}
			layouts[id] = layout
		}
	} else if len(snap.State.TaskLayouts) > 0 {
		s.logger.Warn("panelstore: snapshot version mismatch, resetting",
			"have", snap.Version, "want", SnapshotVersion)
	}
	s.mu.Lock()
	s.layouts = layouts
	s.mu.Unlock()
	s.notify("")
	return nil
}

func layoutFromSnapshot(ls layoutSnapshot) (*TaskLayout, error) {
	tree, err := paneltree.FromSnapshot(ls.PanelTree)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = newTaskLayout().Tree
	}
	layout := &TaskLayout{
		Tree:           tree,
		FocusedPanelID: ls.FocusedPanelID,
		nextID:         ls.NextID,
	}
	if len(ls.OpenFiles) > 0 {
		layout.OpenFiles = append([]string(nil), ls.OpenFiles...)
	}
	if len(ls.RecentFiles) > 0 {
		layout.RecentFiles = append([]string(nil), ls.RecentFiles...)
	}
	return layout, nil
}

// Persister writes store snapshots to a single JSON file via atomic
// rename.
type Persister struct {
	path   string
	logger *slog.Logger
}

// NewPersister creates a persister rooted at dir.
func NewPersister(dir string, logger *slog.Logger) (*Persister, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("panelstore: persister dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{path: filepath.Join(dir, StoreFileName), logger: logger}, nil
}

// Path returns the snapshot file path.
func (p *Persister) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}

// Save writes the snapshot to disk.
func (p *Persister) Save(snap StoreSnapshot) error {
	if p == nil {
		return nil
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("panelstore: encode snapshot: %w", err)
	}
	return atomicfile.Save(p.path, data, 0o600)
}

// Load reads the persisted snapshot. A missing file yields an empty
// snapshot; a corrupt one is logged and likewise treated as empty, so the
// caller always gets a usable store.
func (p *Persister) Load() StoreSnapshot {
	empty := StoreSnapshot{Version: SnapshotVersion}
	if p == nil {
		return empty
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn("panelstore: read snapshot failed", "path", p.path, "error", err)
		}
		return empty
	}
	var snap StoreSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		p.logger.Warn("panelstore: decode snapshot failed, resetting", "path", p.path, "error", err)
		return empty
	}
	return snap
}
