// Package stats renders the vocabulary progress overview.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/word"
)

type statsLoadedMsg struct {
	Counts   map[string]int
	Total    int
	Snapshot *store.Snapshot
	Err      error
}

// StatsScreen shows per-tier word counts and the latest snapshot.
type StatsScreen struct {
	words  store.WordRepo
	snaps  store.SnapshotRepo
	counts map[string]int
	total  int
	snap   *store.Snapshot
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(words store.WordRepo, snaps store.SnapshotRepo) *StatsScreen {
	return &StatsScreen{words: words, snaps: snaps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		counts, total, err := s.words.TierCounts(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		var snap *store.Snapshot
		if s.snaps != nil {
			snap, _ = s.snaps.Latest(ctx)
		}

		return statsLoadedMsg{Counts: counts, Total: total, Snapshot: snap}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.counts = msg.Counts
			s.total = msg.Total
			s.snap = msg.Snapshot
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// tierOrder fixes the display order from freshest to strongest.
var tierOrder = []struct {
	tier  word.Tier
	label string
}{
	{word.TierNew, "New"},
	{word.TierInProgress, "In progress"},
	{word.TierNeedsReview, "Needs review"},
	{word.TierMastered, "Mastered"},
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if s.total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No words yet. Add some with: lexiz words add")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d words", s.total)))
	b.WriteString("\n\n")

	barWidth := min(width-30, 40)
	for _, row := range tierOrder {
		n := s.counts[string(row.tier)]
		pct := float64(n) / float64(s.total)
		bar := components.NewProgressBar(fmt.Sprintf("%-13s", row.label), pct, false, barWidth)
		line := fmt.Sprintf("%s %3d", bar.View(), n)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.snap != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Last snapshot: %s", s.snap.Timestamp.Format("Jan 02, 2006 15:04"))))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
