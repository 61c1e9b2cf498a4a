package browser

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the kiosk browser TUI.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Home       key.Binding
	Search     key.Binding
	PrevImage  key.Binding
	NextImage  key.Binding
	TextSmall  key.Binding
	TextLarge  key.Binding
	Breadcrumb key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Search, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back, k.Home},
		{k.Search, k.Breadcrumb, k.PrevImage, k.NextImage, k.TextSmall, k.TextLarge},
		{k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "nahoru"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "dolů"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "otevřít"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "zpět"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "H"),
		key.WithHelp("H", "domů"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "hledat"),
	),
	PrevImage: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "předchozí obrázek"),
	),
	NextImage: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "další obrázek"),
	),
	TextSmall: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "menší text"),
	),
	TextLarge: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "větší text"),
	),
	Breadcrumb: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "úroveň cesty"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "nápověda"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "konec"),
	),
}
