package quiz

import "time"

// startedMsg is sent when the session controller finished starting.
type startedMsg struct {
	Err error
}

// pollTickMsg drives polling while content generation runs in the
// background. The controller phase is re-read on every tick.
type pollTickMsg time.Time
