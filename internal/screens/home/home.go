package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/setup"
	"github.com/abhisek/lexiz/internal/screens/stats"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/word"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	totalWords    int
	masteredCount int
	reviewCount   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(words store.WordRepo, events store.EventRepo, snaps store.SnapshotRepo, analytics *store.Analytics, generator contentgen.Generator) *HomeScreen {
	var total, mastered, review int
	if words != nil {
		if counts, n, err := words.TierCounts(context.Background()); err == nil {
			total = n
			mastered = counts[string(word.TierMastered)]
			review = counts[string(word.TierNeedsReview)]
		}
	}

	items := []components.MenuItem{
		{Label: "Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(words, events, analytics, generator),
				}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "Stats", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(words, snaps)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		totalWords:    total,
		masteredCount: mastered,
		reviewCount:   review,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("L E X I Z"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("your vocabulary coach"))
	b.WriteString("\n\n")

	// Stats line.
	if h.totalWords == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No words yet. Add some with: lexiz words add"))
	} else {
		statsLine := fmt.Sprintf("%d words   %s %d mastered   %s %d to review",
			h.totalWords,
			lipgloss.NewStyle().Foreground(theme.Success).Render("★"),
			h.masteredCount,
			lipgloss.NewStyle().Foreground(theme.Error).Render("!"),
			h.reviewCount,
		)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(statsLine))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
