package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// OptionList renders the lettered options of a question.
//
// In study mode Reveal marks the correct option. In quiz mode Selected
// marks the learner's pick and the correct letter stays hidden.
type OptionList struct {
	Options  []question.Option
	Selected string
	Correct  string
	Reveal   bool
	Width    int
}

// View renders one option per line.
func (o OptionList) View() string {
	if len(o.Options) == 0 {
		return theme.Hint.Render("  (no options listed for this question)") + "\n"
	}

	var b strings.Builder
	for _, opt := range o.Options {
		marker := "○"
		style := theme.Unselected
		switch {
		case o.Reveal && opt.Letter == o.Correct:
			marker = "✓"
			style = theme.Correct
		case opt.Letter == o.Selected:
			marker = "●"
			style = theme.Selected
		}

		line := marker + " " + opt.Letter + ". " + opt.Text
		if o.Width > 4 {
			line = lipgloss.NewStyle().Width(o.Width - 2).Render(line)
		}
		b.WriteString("  " + style.Render(line) + "\n")
	}
	return b.String()
}
