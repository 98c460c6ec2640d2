package teaui

import "github.com/charmbracelet/bubbles/key"

type listKeys struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Clear    key.Binding
	Favorite key.Binding
	Bookmark key.Binding
	Quit     key.Binding
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Favorite, k.Bookmark, k.Clear, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type detailKeys struct {
	Previous key.Binding
	Next     key.Binding
	Back     key.Binding
	Favorite key.Binding
	Bookmark key.Binding
	Larger   key.Binding
	Smaller  key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Back, k.Favorite, k.Bookmark, k.Larger, k.Smaller, k.Reset}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

func defaultListKeys() listKeys {
	return listKeys{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "kor")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "hoos")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fur")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "nadiifi")),
		Favorite: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "jecel")),
		Bookmark: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "calaamadee")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "ka bax")),
	}
}

func defaultDetailKeys() detailKeys {
	return detailKeys{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "hore")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "xigta")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace", "q"), key.WithHelp("esc", "dib")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "jecel")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "calaamadee")),
		Larger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "A+")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "A-")),
		Reset:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "A")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "ka bax")),
	}
}
