package workspace

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// pickerModel is the recent-files overlay: a text input fuzzy-filtering
// the layout's MRU list.
type pickerModel struct {
	input    textinput.Model
	files    []string
	matches  []string
	selected int
}

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	pickerItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newPicker(files []string) *pickerModel {
	input := textinput.New()
	input.Placeholder = "recent file"
	input.Focus()
	p := &pickerModel{input: input, files: files}
	p.filter()
	return p
}

func (p *pickerModel) filter() {
	query := p.input.Value()
	if query == "" {
		p.matches = p.files
	} else {
		results := fuzzy.Find(query, p.files)
		p.matches = make([]string, 0, len(results))
		for _, r := range results {
			p.matches = append(p.matches, r.Str)
		}
	}
	if p.selected >= len(p.matches) {
		p.selected = 0
	}
}

func (p *pickerModel) view(width int) string {
	rows := []string{pickerTitleStyle.Render("Recent files")}
	rows = append(rows, p.input.View())
	for i, match := range p.matches {
		style := pickerItemStyle
		if i == p.selected {
			style = pickerSelectedStyle
		}
		rows = append(rows, style.MaxWidth(width).Render(match))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) openPicker() {
	m.picker = newPicker(m.store.RecentFiles(m.layoutID))
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		m.picker = nil
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		if m.picker.selected < len(m.picker.matches) {
			m.store.OpenFile(m.layoutID, m.picker.matches[m.picker.selected])
		}
		m.picker = nil
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
		if m.picker.selected > 0 {
			m.picker.selected--
		}
		return m, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
		if m.picker.selected < len(m.picker.matches)-1 {
			m.picker.selected++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker.input, cmd = m.picker.input.Update(msg)
	m.picker.filter()
	return m, cmd
}
