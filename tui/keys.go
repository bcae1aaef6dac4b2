package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings shared by the screens. QuitMenu is only
// active on screens without a text prompt, where plain keys are free to use.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Submit   key.Binding
	Back     key.Binding
	Quit     key.Binding
	QuitMenu key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "start"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run command"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	QuitMenu: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, binding := range bindings {
		if i > 0 {
			line += " | "
		}
		line += binding.Help().Key + ": " + binding.Help().Desc
	}
	return line
}
