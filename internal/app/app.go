package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/home"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/word"
)

// Options carries the collaborators the TUI needs. Generator may be nil
// when no LLM provider is configured; AI quiz modes are then disabled.
type Options struct {
	Words     store.WordRepo
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Analytics *store.Analytics
	Generator contentgen.Generator
}

// refreshStatsMsg asks the root model to recount the header stats.
type refreshStatsMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	mastered   int
	totalWords int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Words, opts.Events, opts.Snapshots, opts.Analytics, opts.Generator)
	m := AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
	m.refreshStats()
	return m
}

// refreshStats recounts the header word totals.
func (m *AppModel) refreshStats() {
	if m.opts.Words == nil {
		return
	}
	counts, total, err := m.opts.Words.TierCounts(context.Background())
	if err != nil {
		return
	}
	m.totalWords = total
	m.mastered = counts[string(word.TierMastered)]
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshStatsMsg:
		m.refreshStats()
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// A session may have just finished; recount after the router
		// handles the navigation.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, func() tea.Msg { return refreshStatsMsg{} })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.mastered, m.totalWords, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
