package topic

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextSubTab key.Binding
	PrevSubTab key.Binding
	NextShape  key.Binding
	PrevShape  key.Binding
	Select     key.Binding
	Ordinal    key.Binding
	Clear      key.Binding
	Photos     key.Binding
	Search     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextSubTab: key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→/]", "következő nézet")),
		PrevSubTab: key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←/[", "előző nézet")),
		NextShape:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "következő elem")),
		PrevShape:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "előző elem")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "kijelöl / elenged")),
		Ordinal:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1–9", "elem sorszám szerint")),
		Clear:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "kijelölés törlése")),
		Photos:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "fotópéldák")),
		Search:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "képkeresés böngészőben")),
	}
}

// Bindings lists the panel keys for the help overlay.
func Bindings() []key.Binding {
	k := defaultKeys()
	return []key.Binding{k.PrevSubTab, k.NextSubTab, k.PrevShape, k.NextShape, k.Select, k.Ordinal, k.Clear, k.Photos, k.Search}
}
