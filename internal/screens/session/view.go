package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/components"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.state.Empty() {
		return renderEmpty(s.state.Category, width, height)
	}

	cw := min(width-4, 100)
	var b strings.Builder

	b.WriteString(s.renderInfoLine(cw))
	b.WriteString("\n")
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		p := sess.ProgressOf(s.state)
		b.WriteString(components.NewProgressBar("", p.Fraction(), false, cw).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderQuestion(cw))

	if s.state.Mode == question.ModeQuiz {
		b.WriteString("\n")
		b.WriteString(s.renderQuizFooter())
	}

	if s.jump != nil {
		b.WriteString("\n\n")
		b.WriteString(s.jump.View())
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

// renderInfoLine renders position on the left and mode details on the right.
func (s *SessionScreen) renderInfoLine(width int) string {
	st := s.state
	p := sess.ProgressOf(st)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", p.Position, p.Total))

	var badges []string
	switch st.Mode {
	case question.ModeStudy:
		if st.Shuffle {
			badges = append(badges, theme.Badge.Render("Shuffled"))
		}
	case question.ModeQuiz:
		if st.Category == question.AllCategory {
			badges = append(badges, lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Sample: "+sampleLabel(st.SampleSize, len(s.deck.Records))))
		}
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Answered: %d / %d", p.Answered, p.Total)))
	}
	right := strings.Join(badges, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *SessionScreen) renderQuestion(width int) string {
	r, ok := sess.Current(s.state)
	if !ok {
		return ""
	}
	parsed := question.Parse(r)
	study := s.state.Mode == question.ModeStudy

	var b strings.Builder
	b.WriteString(theme.Prompt.Width(width - 6).Render(parsed.Text))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.Category))
	b.WriteString("\n\n")

	b.WriteString(components.OptionList{
		Options:  parsed.Options,
		Selected: sess.Selected(s.state),
		Correct:  parsed.Correct,
		Reveal:   study && s.state.Revealed,
		Width:    width - 6,
	}.View())

	if study && s.state.Revealed {
		b.WriteString("\n")
		answer := "Answer: " + parsed.Correct
		if parsed.Correct == "" {
			answer = "Answer:"
		}
		b.WriteString(theme.Correct.Render(answer))
		b.WriteString("\n")
		b.WriteString(theme.Explanation.Width(width - 6).Render(parsed.Explanation))
	}

	return theme.Card.Width(width).Render(b.String())
}

func (s *SessionScreen) renderQuizFooter() string {
	if s.state.Phase == sess.PhaseFinalized {
		return theme.Hint.Render("Quiz submitted. Press Enter to see results or R to retake.")
	}
	return s.submit.View()
}

func renderEmpty(category string, width, height int) string {
	msg := fmt.Sprintf("No questions in %q.\n\nPress Tab for the next section or / to choose one.", category)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

// sampleLabel names a sample size; zero means the whole bank.
func sampleLabel(n, total int) string {
	if n == 0 {
		return fmt.Sprintf("All (%d)", total)
	}
	return fmt.Sprintf("%d", n)
}
