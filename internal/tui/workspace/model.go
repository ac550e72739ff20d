// Package workspace is the Bubble Tea front-end over the panel engine: it
// renders one task's panel tree and feeds key and drag events into the
// store. The engine itself never imports this package; the TUI is one
// rendering collaborator among possible others.
package workspace

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PostHog/Twig-sub005/internal/closeguard"
	"github.com/PostHog/Twig-sub005/internal/dragdrop"
	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/shortcut"

	"github.com/charmbracelet/bubbles/key"
)

// deferredApplyMsg carries a post-drag tree mutation scheduled for the
// next update cycle, after the drag interaction fully settled.
type deferredApplyMsg struct {
	apply func()
}

// storeChangedMsg triggers a re-render after a store mutation.
type storeChangedMsg struct {
	layoutID string
}

// Model is the workspace TUI model for one layout.
type Model struct {
	store      *panelstore.Store
	guard      *closeguard.Guard
	shortcuts  *shortcut.Handler
	reconciler *dragdrop.Reconciler
	layoutID   string

	keys   keyMap
	picker *pickerModel

	width  int
	height int

	changes chan string
	done    chan struct{}
	cancel  func()
	err     error
}

// NewModel wires a workspace model over the store for layoutID. The
// layout is initialized when missing.
func NewModel(store *panelstore.Store, guard *closeguard.Guard, layoutID string) *Model {
	if _, ok := store.GetLayout(layoutID); !ok {
		store.InitializeTask(layoutID)
	}
	m := &Model{
		store:     store,
		guard:     guard,
		shortcuts: shortcut.New(store, guard, layoutID),
		layoutID:  layoutID,
		keys:      defaultKeyMap(),
		changes:   make(chan string, 16),
		done:      make(chan struct{}),
	}
	m.cancel = store.Subscribe(func(id string) {
		if id == "" || id == layoutID {
			select {
			case m.changes <- id:
			default:
			}
		}
	})
	return m
}

// Deferrer returns the next-frame hook drag reconcilers should use so
// post-drop mutations run after the current interaction settles. The
// returned closure hands the apply func to the Bubble Tea loop as a
// message instead of running it inline.
func (m *Model) Deferrer(program *tea.Program) func(func()) {
	return func(apply func()) {
		go program.Send(deferredApplyMsg{apply: apply})
	}
}

// AttachReconciler gives the model a drag reconciler built with a
// deferral hook (usually Deferrer of the running program).
func (m *Model) AttachReconciler(r *dragdrop.Reconciler) {
	m.reconciler = r
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case id := <-m.changes:
			return storeChangedMsg{layoutID: id}
		case <-m.done:
			return nil
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case storeChangedMsg:
		return m, m.waitForChange()
	case deferredApplyMsg:
		if msg.apply != nil {
			msg.apply()
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m.updatePicker(msg)
	}
	switch {
	case key.Matches(msg, m.keys.quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.nextPanel):
		m.shortcuts.FocusNextPanel()
		return m, nil
	case key.Matches(msg, m.keys.closeTab):
		if _, err := m.shortcuts.CloseActiveTab(context.Background()); err != nil {
			m.err = err
		}
		return m, nil
	case key.Matches(msg, m.keys.newTerm):
		m.store.AddTerminalTab(m.layoutID, "")
		return m, nil
	case key.Matches(msg, m.keys.splitRight):
		m.splitActive(panelstore.SplitRight)
		return m, nil
	case key.Matches(msg, m.keys.splitDown):
		m.splitActive(panelstore.SplitBottom)
		return m, nil
	case key.Matches(msg, m.keys.picker):
		m.openPicker()
		return m, nil
	}
	for i, binding := range m.keys.tabs {
		if key.Matches(msg, binding) {
			m.shortcuts.ActivateTab(i)
			return m, nil
		}
	}
	return m, nil
}

// splitActive splits the focused leaf along the given side using its
// active tab, exercising the degenerate single-tab path when it applies.
func (m *Model) splitActive(direction panelstore.SplitDirection) {
	view, ok := m.store.GetLayout(m.layoutID)
	if !ok {
		return
	}
	leaf := focusedLeaf(view)
	if leaf == nil {
		return
	}
	if newPanel, ok := m.store.SplitPanel(m.layoutID, leaf.ActiveTabID, leaf.ID, leaf.ID, direction); ok {
		m.store.SetFocusedPanel(m.layoutID, newPanel)
	}
}

// Close releases the store subscription and unblocks any pending
// waitForChange command.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		close(m.done)
	}
}
