package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.feedback != nil:
		return s.renderFeedback(width)
	}

	switch s.ctrl.Phase() {
	case qz.PhaseLoadingFirst:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Writing your story...")
	case qz.PhaseWaiting:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing the next word...")
	case qz.PhaseError:
		return renderError(width, s.ctrl.Err())
	case qz.PhasePresenting:
		return s.renderWordView(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Starting session...")
}

// renderWordView renders the presented word with the mode's input area.
func (s *QuizScreen) renderWordView(width int) string {
	w, ok := s.ctrl.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	played, total := s.ctrl.Progress()
	score, streak, _ := s.ctrl.Score()

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.Title()))

	streakStr := ""
	if streak > 1 {
		streakStr = fmt.Sprintf("  x%d", streak)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Word %d/%d  %s %d%s",
			played+1, total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			score,
			streakStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)

	switch s.mode {
	case qz.ModeChoice:
		b.WriteString(promptStyle.Render(fmt.Sprintf("What does %q mean?", w.Text)))
	case qz.ModeSpelling:
		b.WriteString(promptStyle.Render(fmt.Sprintf("Spell the word for %q", w.Translation)))
	case qz.ModeStory, qz.ModeCloze:
		if content, ok := s.ctrl.CurrentContent(); ok {
			passage := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(content.Passage)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Fill in the blank"))
		}
	}
	b.WriteString("\n\n")

	// Wrong attempt with retries left.
	if s.tryAgain != nil {
		left := s.ctrl.AttemptsLeft()
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Not quite. %d attempt(s) left.", left)))
		b.WriteString("\n\n")
	}

	// Input area.
	if s.choiceActive() {
		b.WriteString(s.renderChoices(width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

// renderChoices renders the option list for choice-style modes.
func (s *QuizScreen) renderChoices(width int) string {
	choices := s.ctrl.Choices()
	if len(choices) == 0 {
		return ""
	}

	var b strings.Builder
	for i, choice := range choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the settled outcome overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	ev := s.feedback

	var b strings.Builder
	b.WriteString("\n\n")

	switch ev.Outcome {
	case qz.OutcomeCorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		if ev.Streak > 1 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render(fmt.Sprintf("Streak x%d", ev.Streak)))
		}
	case qz.OutcomeSkipped:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Bold(true).
			Render("Skipped"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	if ev.Outcome != qz.OutcomeCorrect && ev.Expected != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Answer: %s", ev.Expected)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Words answered so far will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  [R] Retry   [Esc] Quit", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
