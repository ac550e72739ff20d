// Package panelstore owns the dockable panel/tab layout state, keyed by
// task id. Every mutating operation is atomic from the caller's view and
// degrades to a no-op on lookup misses; structural failure never escapes
// as an error. Persistence and change notification hang off the store as
// subscribers.
package panelstore

import (
	"log/slog"
	"sync"

	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

// DefaultRecentFilesCap bounds the per-layout MRU file list.
const DefaultRecentFilesCap = 10

// Options configures a Store.
type Options struct {
	// RecentFilesCap overrides DefaultRecentFilesCap when positive.
	RecentFilesCap int

	// Persister, when set, receives the full store snapshot after every
	// committed mutation. Save failures are logged, never surfaced.
	Persister *Persister

	Logger *slog.Logger
}

// Store holds all task layouts and exposes the layout operations.
type Store struct {
	mu        sync.Mutex
	layouts   map[string]*TaskLayout
	recentCap int
	persister *Persister
	logger    *slog.Logger

	subMu   sync.Mutex
	subs    map[int]func(layoutID string)
	nextSub int
}

// New creates an empty store.
func New(opts Options) *Store {
	recentCap := opts.RecentFilesCap
	if recentCap <= 0 {
		recentCap = DefaultRecentFilesCap
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		layouts:   make(map[string]*TaskLayout),
		recentCap: recentCap,
		persister: opts.Persister,
		logger:    logger,
		subs:      make(map[int]func(string)),
	}
}

// Subscribe registers a change callback fired after every committed
// mutation with the affected layout id ("" for store-wide resets). The
// returned cancel func unregisters it.
func (s *Store) Subscribe(fn func(layoutID string)) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(layoutID string) {
	if s.persister != nil {
		s.mu.Lock()
		snap := s.snapshotLocked()
		s.mu.Unlock()
		if err := s.persister.Save(snap); err != nil {
			s.logger.Warn("panelstore: persist snapshot failed", "error", err)
		}
	}
	s.subMu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(layoutID)
	}
}

// mutate runs fn on the named layout under the lock and notifies on
// commit. A missing layout or an fn returning false is a silent no-op.
func (s *Store) mutate(layoutID string, fn func(*TaskLayout) bool) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	layout := s.layouts[layoutID]
	if layout == nil {
		s.mu.Unlock()
		return false
	}
	changed := fn(layout)
	s.mu.Unlock()
	if changed {
		s.notify(layoutID)
	}
	return changed
}

// InitializeTask creates the default two-leaf layout for layoutID. Calling
// it for an existing layout is a no-op.
func (s *Store) InitializeTask(layoutID string) {
	if s == nil || layoutID == "" {
		return
	}
	s.mu.Lock()
	if _, ok := s.layouts[layoutID]; ok {
		s.mu.Unlock()
		return
	}
	s.layouts[layoutID] = newTaskLayout()
	s.mu.Unlock()
	s.notify(layoutID)
}

// ClearAllLayouts drops every layout. Used for schema-version resets.
func (s *Store) ClearAllLayouts() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.layouts = make(map[string]*TaskLayout)
	s.mu.Unlock()
	s.notify("")
}

// LayoutView is a read snapshot of one task layout. The tree is shared:
// operations rebuild touched nodes, so a held view stays stable.
type LayoutView struct {
	Tree               paneltree.Node
	OpenFiles          []string
	RecentFiles        []string
	FocusedPanelID     string
	DraggingTabID      string
	DraggingTabPanelID string
}

// GetLayout returns a read view of the layout, if it exists.
func (s *Store) GetLayout(layoutID string) (LayoutView, bool) {
	if s == nil {
		return LayoutView{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	layout := s.layouts[layoutID]
	if layout == nil {
		return LayoutView{}, false
	}
	return LayoutView{
		Tree:               layout.Tree,
		OpenFiles:          append([]string(nil), layout.OpenFiles...),
		RecentFiles:        append([]string(nil), layout.RecentFiles...),
		FocusedPanelID:     layout.FocusedPanelID,
		DraggingTabID:      layout.DraggingTabID,
		DraggingTabPanelID: layout.DraggingTabPanelID,
	}, true
}

// LayoutIDs returns the ids of all known layouts.
func (s *Store) LayoutIDs() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.layouts))
	for id := range s.layouts {
		out = append(out, id)
	}
	return out
}

// OpenFiles returns the layout's open file paths in insertion order.
func (s *Store) OpenFiles(layoutID string) []string {
	view, ok := s.GetLayout(layoutID)
	if !ok {
		return nil
	}
	return view.OpenFiles
}

// RecentFiles returns the layout's MRU file paths.
func (s *Store) RecentFiles(layoutID string) []string {
	view, ok := s.GetLayout(layoutID)
	if !ok {
		return nil
	}
	return view.RecentFiles
}
