package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/welcome"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/components"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 60))
}

func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(cw))
}

// renderStatsBar shows bank size and the section new sessions start in.
func renderStatsBar(questions, sections int, category string, cw int) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s %s  %s %s\n%s %s",
		countStyle.Render(fmt.Sprint(questions)), dim.Render("questions"),
		countStyle.Render(fmt.Sprint(sections)), dim.Render("sections"),
		dim.Render("Section:"), sectionStyle.Render(category),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when compact.
func renderMenu(menu components.Menu, cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(menu.View())
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, item := range menu.Items {
		if i == menu.Selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double-border frame centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
