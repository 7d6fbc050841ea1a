// Package home is the main menu.
package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/router"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/notice"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/sections"
	sessionscreen "github.com/albertoserr18/CompE-561-Study-tool/internal/screens/session"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/components"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deck       sess.Deck
	category   string
	sampleSize int
	logger     *slog.Logger
	menu       components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. category and sampleSize seed the
// sessions started from the menu.
func New(deck sess.Deck, category string, sampleSize int, logger *slog.Logger) *HomeScreen {
	if category == "" {
		category = question.AllCategory
	}
	h := &HomeScreen{
		deck:       deck,
		category:   category,
		sampleSize: sampleSize,
		logger:     logger,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd { return h.start(question.ModeStudy) }},
		{Label: "QUIZ", Action: func() tea.Cmd { return h.start(question.ModeQuiz) }},
		{Label: "SECTIONS", Action: func() tea.Cmd {
			return router.Push(sections.New(h.deck.Records, h.category, func(category string) tea.Cmd {
				return router.PopWith(sections.ChosenMsg{Category: category})
			}))
		}},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) start(mode question.Mode) tea.Cmd {
	if len(h.deck.Records) == 0 {
		return router.Push(notice.New("No questions", "The question bank is empty.\nRun `studytool import <file>` to load one."))
	}
	return router.Push(sessionscreen.New(h.deck, sessionscreen.Options{
		Mode:       mode,
		Category:   h.category,
		SampleSize: h.sampleSize,
	}, h.logger))
}

// Category returns the section new sessions start in.
func (h *HomeScreen) Category() string {
	return h.category
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(sections.ChosenMsg); ok {
		h.category = msg.Category
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) && layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	cw := contentWidth(width)

	parts := []string{
		renderTitle(cw),
		renderStatsBar(len(h.deck.Records), len(h.deck.Taxonomy())-1, h.category, cw),
		renderMenu(h.menu, cw, compact),
	}

	return renderFrame(strings.Join(parts, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	return h.category
}
