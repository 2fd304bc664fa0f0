package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/summary"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

const pollInterval = 100 * time.Millisecond

// QuizScreen drives one quiz session. The session controller owns all
// quiz state; this screen translates key events into controller calls
// and renders the observable phase.
type QuizScreen struct {
	ctrl      *qz.Controller
	eventRepo store.EventRepo
	mode      qz.Mode

	input       components.TextInput
	mcSelected  int
	feedback    *qz.OutcomeEvent
	tryAgain    *qz.OutcomeEvent // wrong attempt with retries left
	quitConfirm bool
	errMsg      string
	polling     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen around a not-yet-started controller.
func New(ctrl *qz.Controller, mode qz.Mode, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		ctrl:      ctrl,
		eventRepo: eventRepo,
		mode:      mode,
		input:     components.NewTextInput("Type the word...", false, 40),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: s.ctrl.Start(context.Background())}
	}
}

func (s *QuizScreen) Title() string {
	switch s.mode {
	case qz.ModeChoice:
		return "Translation Quiz"
	case qz.ModeSpelling:
		return "Spelling Quiz"
	case qz.ModeStory:
		return "Story Quiz"
	case qz.ModeCloze:
		return "Cloze Quiz"
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.ctrl.Phase() == qz.PhaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case pollTickMsg:
		return s.handlePoll()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typingActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	switch s.ctrl.Phase() {
	case qz.PhasePresenting:
		return s, s.presentCmd()
	default:
		return s, s.startPolling()
	}
}

// handlePoll re-reads the controller phase while background generation
// runs. Polling stops once the phase is no longer transient.
func (s *QuizScreen) handlePoll() (screen.Screen, tea.Cmd) {
	switch s.ctrl.Phase() {
	case qz.PhaseLoadingFirst, qz.PhaseWaiting:
		return s, pollCmd()
	case qz.PhasePresenting:
		s.polling = false
		return s, s.presentCmd()
	default:
		s.polling = false
		return s, nil
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		// Start failed; any key returns home.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s.dismiss()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.feedback != nil {
		return s.advance()
	}

	switch s.ctrl.Phase() {
	case qz.PhaseError:
		switch key {
		case "r", "R":
			if err := s.ctrl.Retry(context.Background()); err == nil {
				return s, s.startPolling()
			}
		case "esc":
			s.quitConfirm = true
		}
		return s, nil

	case qz.PhasePresenting:
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "tab":
			return s.skip()
		case "enter":
			return s.submit()
		}

		if s.choiceActive() {
			choices := s.ctrl.Choices()
			switch key {
			case "1", "2", "3", "4":
				idx := int(key[0] - '1')
				if idx < len(choices) {
					s.mcSelected = idx
					return s.submit()
				}
			case "up", "k":
				if s.mcSelected > 0 {
					s.mcSelected--
				}
			case "down", "j":
				if s.mcSelected < len(choices)-1 {
					s.mcSelected++
				}
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// choiceActive reports whether the presented word is answered by
// picking an option.
func (s *QuizScreen) choiceActive() bool {
	return s.mode.Spec().NumChoices > 0
}

func (s *QuizScreen) typingActive() bool {
	return !s.choiceActive() && s.ctrl.Phase() == qz.PhasePresenting && s.feedback == nil && !s.quitConfirm
}

// presentCmd resets per-word input state when a word becomes visible.
func (s *QuizScreen) presentCmd() tea.Cmd {
	s.mcSelected = 0
	s.tryAgain = nil
	if s.choiceActive() {
		return nil
	}
	s.input = components.NewTextInput("Type the word...", false, 40)
	return s.input.Init()
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	var answer string
	if s.choiceActive() {
		choices := s.ctrl.Choices()
		if s.mcSelected < 0 || s.mcSelected >= len(choices) {
			return s, nil
		}
		answer = choices[s.mcSelected]
	} else {
		answer = s.input.Value()
		if answer == "" {
			return s, nil
		}
	}

	ev, err := s.ctrl.SubmitAnswer(context.Background(), answer)
	if err != nil {
		return s, nil
	}

	if ev.Outcome == qz.OutcomeIncorrect {
		// Attempts remain; clear the input and let the learner retry.
		s.tryAgain = &ev
		s.input = components.NewTextInput("Type the word...", false, 40)
		return s, s.input.Init()
	}

	s.recordAnswer(ev, answer)
	s.feedback = &ev
	return s, nil
}

func (s *QuizScreen) skip() (screen.Screen, tea.Cmd) {
	ev, err := s.ctrl.Skip(context.Background())
	if err != nil {
		return s, nil
	}
	s.recordAnswer(ev, "")
	s.feedback = &ev
	return s, nil
}

// advance dismisses feedback and moves to the next word or the summary.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.feedback = nil

	if s.ctrl.Phase() == qz.PhaseComplete {
		return s.showSummary()
	}

	if err := s.ctrl.Next(); err != nil {
		return s, nil
	}
	switch s.ctrl.Phase() {
	case qz.PhasePresenting:
		return s, s.presentCmd()
	case qz.PhaseWaiting:
		return s, s.startPolling()
	}
	return s, nil
}

func (s *QuizScreen) dismiss() (screen.Screen, tea.Cmd) {
	sum := s.ctrl.Dismiss(context.Background())
	if sum == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s.pushSummary(sum)
}

func (s *QuizScreen) showSummary() (screen.Screen, tea.Cmd) {
	return s.pushSummary(s.ctrl.Summary())
}

func (s *QuizScreen) pushSummary(sum *qz.Summary) (screen.Screen, tea.Cmd) {
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// recordAnswer persists one settled word as an answer event.
func (s *QuizScreen) recordAnswer(ev qz.OutcomeEvent, learnerAnswer string) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:      s.ctrl.SessionID(),
		WordID:         string(ev.WordID),
		QuizType:       string(s.mode),
		Outcome:        outcomeString(ev.Outcome),
		Attempts:       ev.Attempts,
		LearnerAnswer:  learnerAnswer,
		ExpectedAnswer: ev.Expected,
		ScoreDelta:     ev.ScoreDelta,
	})
}

func outcomeString(o qz.Outcome) string {
	switch o {
	case qz.OutcomeCorrect:
		return "correct"
	case qz.OutcomeExhausted:
		return "exhausted"
	case qz.OutcomeSkipped:
		return "skipped"
	}
	return "incorrect"
}

func (s *QuizScreen) startPolling() tea.Cmd {
	if s.polling {
		return nil
	}
	s.polling = true
	return pollCmd()
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
