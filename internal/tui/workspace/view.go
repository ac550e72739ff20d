package workspace

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("62"))
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
	previewTabStyle = tabStyle.Italic(true)
	contentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	view, ok := m.store.GetLayout(m.layoutID)
	if !ok {
		return "no layout"
	}
	body := m.renderNode(view, view.Tree, m.width, m.height-1)
	status := m.renderStatus(view)
	if m.picker != nil {
		return lipgloss.JoinVertical(lipgloss.Left, m.picker.view(m.width), status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m *Model) renderNode(view panelstore.LayoutView, node paneltree.Node, width, height int) string {
	switch n := node.(type) {
	case *paneltree.Leaf:
		return m.renderLeaf(view, n, width, height)
	case *paneltree.Group:
		return m.renderGroup(view, n, width, height)
	}
	return ""
}

func (m *Model) renderGroup(view panelstore.LayoutView, group *paneltree.Group, width, height int) string {
	total := 0.0
	for _, s := range group.Sizes {
		total += s
	}
	if total <= 0 {
		total = float64(len(group.Children))
	}
	parts := make([]string, 0, len(group.Children))
	span := width
	if group.Direction == paneltree.DirectionVertical {
		span = height
	}
	used := 0
	for i, child := range group.Children {
		size := int(float64(span) * group.Sizes[i] / total)
		if i == len(group.Children)-1 {
			size = span - used
		}
		used += size
		if group.Direction == paneltree.DirectionVertical {
			parts = append(parts, m.renderNode(view, child, width, size))
		} else {
			parts = append(parts, m.renderNode(view, child, size, height))
		}
	}
	if group.Direction == paneltree.DirectionVertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderLeaf(view panelstore.LayoutView, leaf *paneltree.Leaf, width, height int) string {
	style := panelStyle
	if leaf.ID == view.FocusedPanelID {
		style = focusedPanelStyle
	}
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}
	var rows []string
	if leaf.ShowTabs || len(leaf.Tabs) > 1 {
		rows = append(rows, renderTabBar(leaf, innerW))
		innerH--
	}
	if innerH > 0 {
		rows = append(rows, renderContent(leaf, innerW, innerH))
	}
	return style.Width(innerW).Height(height - 2).Render(strings.Join(rows, "\n"))
}

func renderTabBar(leaf *paneltree.Leaf, width int) string {
	var cells []string
	for _, tab := range leaf.Tabs {
		style := tabStyle
		if tab.Preview {
			style = previewTabStyle
		}
		if tab.ID == leaf.ActiveTabID {
			style = activeTabStyle
		}
		cells = append(cells, style.Render(tab.Label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// renderContent paints a placeholder body per tab type. Real content
// components (editors, terminals, diff viewers) plug in through the tab's
// opaque Component handle; the demo renders a summary line instead.
func renderContent(leaf *paneltree.Leaf, width, height int) string {
	tab, ok := leaf.ActiveTab()
	if !ok {
		return ""
	}
	var body string
	switch tab.Data.Type {
	case paneltree.TabFile:
		body = "file: " + tab.Data.Path
	case paneltree.TabDiff:
		body = "diff: " + tab.Data.Path
	case paneltree.TabTerminal, paneltree.TabWorkspaceTerminal:
		body = "terminal: " + tab.Data.TerminalID
	case paneltree.TabLogs:
		body = "logs"
	default:
		body = tab.Label
	}
	return contentStyle.MaxWidth(width).MaxHeight(height).Render(body)
}

func (m *Model) renderStatus(view panelstore.LayoutView) string {
	parts := []string{
		"layout " + m.layoutID,
		"focus " + view.FocusedPanelID,
	}
	if len(view.OpenFiles) > 0 {
		parts = append(parts, "open "+strings.Join(view.OpenFiles, " "))
	}
	if m.err != nil {
		parts = append(parts, "err "+m.err.Error())
	}
	return statusStyle.MaxWidth(m.width).Render(strings.Join(parts, " | "))
}

func focusedLeaf(view panelstore.LayoutView) *paneltree.Leaf {
	if leaf := paneltree.FindLeaf(view.Tree, view.FocusedPanelID); leaf != nil {
		return leaf
	}
	if leaf := paneltree.FindLeaf(view.Tree, panelstore.MainPanelID); leaf != nil {
		return leaf
	}
	return paneltree.FirstLeaf(view.Tree)
}
