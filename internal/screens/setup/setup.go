// Package setup holds the pre-session form where the learner picks a
// quiz mode, word count and pool filters.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	quizscreen "github.com/abhisek/lexiz/internal/screens/quiz"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

const (
	fieldMode = iota
	fieldCount
	fieldHardOnly
	fieldLanguage
	fieldStart
	fieldMax
)

var allModes = []quiz.Mode{quiz.ModeChoice, quiz.ModeSpelling, quiz.ModeStory, quiz.ModeCloze}

func modeLabel(m quiz.Mode) string {
	switch m {
	case quiz.ModeChoice:
		return "Translation (multiple choice)"
	case quiz.ModeSpelling:
		return "Spelling"
	case quiz.ModeStory:
		return "Story (AI generated)"
	case quiz.ModeCloze:
		return "Cloze (AI generated)"
	}
	return string(m)
}

// SetupScreen collects a session preset and starts the quiz.
type SetupScreen struct {
	words     store.WordRepo
	events    store.EventRepo
	analytics *store.Analytics
	generator contentgen.Generator

	focus    int
	modeIdx  int
	count    components.TextInput
	hardOnly bool
	language components.TextInput
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(words store.WordRepo, events store.EventRepo, analytics *store.Analytics, generator contentgen.Generator) *SetupScreen {
	count := components.NewTextInput("10", true, 10)
	lang := components.NewTextInput("any", false, 10)
	return &SetupScreen{
		words:     words,
		events:    events,
		analytics: analytics,
		generator: generator,
		count:     count,
		language:  lang,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// modeAvailable reports whether the mode at idx can run with the
// configured collaborators.
func (s *SetupScreen) modeAvailable(idx int) bool {
	if !allModes[idx].Spec().NeedsContent {
		return true
	}
	return s.generator != nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateInputs(msg)
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up":
		if s.focus > 0 {
			s.focus--
		}
		return s, nil
	case "down":
		if s.focus < fieldMax-1 {
			s.focus++
		}
		return s, nil
	case "enter":
		if s.focus == fieldStart {
			btn := components.NewButton("Start", true, s.startCmd)
			_, cmd := btn.Update(kmsg)
			return s, cmd
		}
		s.focus++
		return s, nil
	}

	switch s.focus {
	case fieldMode:
		switch kmsg.String() {
		case "left", "h":
			s.cycleMode(-1)
		case "right", "l":
			s.cycleMode(1)
		}
		return s, nil
	case fieldHardOnly:
		switch kmsg.String() {
		case "left", "right", "h", "l", "space", " ":
			s.hardOnly = !s.hardOnly
		}
		return s, nil
	}

	return s.updateInputs(msg)
}

func (s *SetupScreen) updateInputs(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldLanguage:
		s.language, cmd = s.language.Update(msg)
	}
	return s, cmd
}

// cycleMode moves the mode selection, skipping unavailable modes.
func (s *SetupScreen) cycleMode(dir int) {
	for i := 0; i < len(allModes); i++ {
		next := (s.modeIdx + dir*(i+1)) % len(allModes)
		if next < 0 {
			next += len(allModes)
		}
		if s.modeAvailable(next) {
			s.modeIdx = next
			return
		}
	}
}

func (s *SetupScreen) startCmd() tea.Cmd {
	s.errMsg = ""

	count := 10
	if v, err := s.count.NumericValue(); err == nil && v > 0 {
		count = v
	}

	lang := strings.TrimSpace(s.language.Value())
	if lang == "any" {
		lang = ""
	}

	mode := allModes[s.modeIdx]
	preset := quiz.Preset{
		WordCount: count,
		HardOnly:  s.hardOnly,
		Language:  lang,
		Mode:      mode,
	}

	opts := quiz.Options{
		Source:    s.words,
		Gateway:   s.words,
		Generator: s.generator,
	}
	if s.analytics != nil {
		opts.Analytics = s.analytics
	}

	ctrl, err := quiz.NewController(preset, opts)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizscreen.New(ctrl, mode, s.events),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Mode", modeLabel(allModes[s.modeIdx])},
		{"Words", s.count.View()},
		{"Hard words only", onOff(s.hardOnly)},
		{"Language", s.language.View()},
		{"", components.NewButton("Start", s.focus == fieldStart, nil).View()},
	}

	for i, row := range rows {
		focused := i == s.focus
		prefix := "   "
		if focused {
			prefix = " > "
		}

		var line string
		if row.label == "" {
			line = prefix + row.value
		} else {
			line = fmt.Sprintf("%s%-18s %s", prefix, row.label, row.value)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.generator == nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Story and cloze quizzes need an LLM provider. See: lexiz llm")))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
