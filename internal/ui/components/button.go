package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// Button is a styled button bound to a key.
type Button struct {
	Label   string
	Binding key.Binding
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, binding key.Binding, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Binding: binding,
		Active:  true,
		OnPress: onPress,
	}
}

// SetActive enables or disables the button and its binding.
func (b *Button) SetActive(active bool) {
	b.Active = active
	b.Binding.SetEnabled(active)
}

// Update presses the button when its binding matches.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, b.Binding) {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if h := b.Binding.Help().Key; h != "" {
		label += " (" + h + ")"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
