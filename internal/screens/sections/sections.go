// Package sections lets the learner pick the section to work on.
package sections

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/components"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// ChosenMsg reports the section the learner picked.
type ChosenMsg struct {
	Category string
}

// SectionsScreen lists every section with its question count.
type SectionsScreen struct {
	menu       components.Menu
	categories []string
}

var _ screen.Screen = (*SectionsScreen)(nil)
var _ screen.KeyHintProvider = (*SectionsScreen)(nil)

// New lists the sections of records with current preselected. choose
// builds the command run when a section is picked.
func New(records []question.Record, current string, choose func(category string) tea.Cmd) *SectionsScreen {
	categories := question.Taxonomy(records)
	counts := question.CountByCategory(records)

	items := make([]components.MenuItem, len(categories))
	selected := 0
	for i, c := range categories {
		items[i] = components.MenuItem{
			Label:  c,
			Detail: fmt.Sprintf("(%d)", counts[c]),
			Action: func() tea.Cmd { return choose(c) },
		}
		if c == current {
			selected = i
		}
	}

	menu := components.NewMenu(items)
	menu.Selected = selected
	return &SectionsScreen{menu: menu, categories: categories}
}

func (s *SectionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SectionsScreen) Title() string {
	return "Sections"
}

func (s *SectionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SectionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SectionsScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Choose a section")
	body := lipgloss.NewStyle().Width(width).Render(s.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, "", title, "", body))
}

// Highlighted returns the section under the cursor.
func (s *SectionsScreen) Highlighted() string {
	return s.categories[s.menu.Selected]
}
