package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for entering a 1-based position.
type NumberInput struct {
	Model   textinput.Model
	Max     int
	invalid bool
}

// NewNumberInput creates a focused input accepting 1..maxValue.
func NewNumberInput(prompt string, maxValue int) NumberInput {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "1-" + strconv.Itoa(maxValue)
	ti.CharLimit = len(strconv.Itoa(maxValue))
	ti.Focus()

	return NumberInput{Model: ti, Max: maxValue}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update filters non-digit keys and forwards the rest.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		k := kmsg.String()
		if len(k) == 1 && (k[0] < '0' || k[0] > '9') {
			return n, nil
		}
	}

	n.invalid = false
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ out of range")
	}
	return view
}

// Index returns the zero-based position entered. ok is false when the
// value is empty or outside 1..Max, and the input is flagged invalid.
func (n *NumberInput) Index() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil || v < 1 || v > n.Max {
		n.invalid = true
		return 0, false
	}
	return v - 1, true
}
