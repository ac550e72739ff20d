package workspace

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	tabs       []key.Binding
	closeTab   key.Binding
	nextPanel  key.Binding
	newTerm    key.Binding
	splitRight key.Binding
	splitDown  key.Binding
	picker     key.Binding
	quit       key.Binding
}

func defaultKeyMap() keyMap {
	km := keyMap{
		closeTab:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		nextPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		newTerm:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new terminal")),
		splitRight: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "split right")),
		splitDown:  key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "split down")),
		picker:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "recent files")),
		quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
	digits := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for _, d := range digits {
		km.tabs = append(km.tabs, key.NewBinding(key.WithKeys(d), key.WithHelp(d, "tab "+d)))
	}
	return km
}
