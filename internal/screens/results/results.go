// Package results shows the score and per-question breakdown of a
// submitted quiz.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/router"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// RetakeMsg asks the quiz screen underneath to start a new attempt.
type RetakeMsg struct{}

// StudyModeMsg asks the quiz screen underneath to switch to study mode.
type StudyModeMsg struct{}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Retake key.Binding
	Study  key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Scroll")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Retake: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Retake")),
	Study:  key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Study mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("Esc", "Review quiz")),
}

// ResultsScreen displays the quiz results.
type ResultsScreen struct {
	summary      *session.Summary
	scrollOffset int
	height       int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(summary *session.Summary) *ResultsScreen {
	return &ResultsScreen{summary: summary}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Quiz Results"
}

func (s *ResultsScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return s.summary.Category
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.Up, keys.Retake, keys.Study, keys.Back)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case key.Matches(kmsg, keys.Down):
		s.scrollOffset++
	case key.Matches(kmsg, keys.Retake):
		return s, router.PopWith(RetakeMsg{})
	case key.Matches(kmsg, keys.Study):
		return s, router.PopWith(StudyModeMsg{})
	case key.Matches(kmsg, keys.Back):
		return s, router.Pop()
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	res := sum.Result

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz Results"))
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if res.Percentage < 70 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		scoreStyle.Render(fmt.Sprintf("%d / %d", res.Correct, res.Total)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   (%d%%)", res.Percentage))))
	b.WriteString("\n")

	unanswered := res.Total - answered(res.Breakdown)
	if unanswered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d left unanswered", unanswered)))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 72))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	head := b.String()
	bodyHeight := height - lipgloss.Height(head)
	lines := breakdownLines(res.Breakdown, width)
	s.height = bodyHeight
	s.clampScroll(len(lines), bodyHeight)

	end := min(len(lines), s.scrollOffset+max(bodyHeight, 0))
	return head + strings.Join(lines[s.scrollOffset:end], "\n")
}

// clampScroll keeps the offset inside the breakdown.
func (s *ResultsScreen) clampScroll(total, height int) {
	maxOffset := max(total-height, 0)
	s.scrollOffset = max(0, min(s.scrollOffset, maxOffset))
}

func breakdownLines(outcomes []quiz.Outcome, width int) []string {
	wrap := lipgloss.NewStyle().Width(max(width-8, 20))
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	for i, o := range outcomes {
		mark := theme.Correct.Render("✓")
		if !o.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		prompt := wrap.Render(fmt.Sprintf("%d. %s", i+1, o.Prompt))
		for j, l := range strings.Split(prompt, "\n") {
			if j == 0 {
				lines = append(lines, "  "+mark+" "+l)
			} else {
				lines = append(lines, "    "+l)
			}
		}

		yours := dim.Render("(no answer)")
		if o.Answered() {
			style := theme.Incorrect
			if o.IsCorrect {
				style = theme.Correct
			}
			yours = style.Render(letterText(o.Selected, o.SelectedText))
		}
		lines = append(lines, "    "+dim.Render("Your answer:    ")+yours)
		if !o.IsCorrect {
			lines = append(lines, "    "+dim.Render("Correct answer: ")+theme.Correct.Render(letterText(o.CorrectLetter, o.CorrectText)))
		}
		if o.Explanation != "" {
			for _, l := range strings.Split(wrap.Render(o.Explanation), "\n") {
				lines = append(lines, "    "+theme.Explanation.Render(l))
			}
		}
		lines = append(lines, "")
	}
	return lines
}

func letterText(letter, text string) string {
	if letter == "" {
		return "?"
	}
	if text == "" {
		return letter
	}
	return letter + ". " + text
}

func answered(outcomes []quiz.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Answered() {
			n++
		}
	}
	return n
}
