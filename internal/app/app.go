// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/router"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/home"
	sessionscreen "github.com/albertoserr18/CompE-561-Study-tool/internal/screens/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/welcome"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
)

// Options configures the app.
type Options struct {
	Deck       sess.Deck
	Logger     *slog.Logger
	Category   string
	Mode       question.Mode
	SampleSize int

	// Direct skips the welcome screen and opens a session in Mode.
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
	init   tea.Cmd
}

// newAppModel creates a new AppModel starting at the welcome screen, or
// at a session on top of home when opts.Direct is set.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	newHome := func() screen.Screen {
		return home.New(opts.Deck, opts.Category, opts.SampleSize, logger)
	}

	if opts.Direct {
		r := router.New(newHome())
		cmd := r.Push(sessionscreen.New(opts.Deck, sessionscreen.Options{
			Mode:       opts.Mode,
			Category:   opts.Category,
			SampleSize: opts.SampleSize,
		}, logger))
		return AppModel{router: r, init: cmd}
	}

	w := welcome.New(len(opts.Deck.Records), len(opts.Deck.Taxonomy())-1, newHome)
	return AppModel{router: router.New(w), init: w.Init()}
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
