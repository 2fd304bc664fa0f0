package quiz

import "fmt"

// InsufficientItemsError is returned by Start when the filtered pool is
// smaller than the preset requires. Fatal to this session, not to the
// process; the caller must change the preset (or add words) to retry.
type InsufficientItemsError struct {
	Required  int
	Available int
}

func (e *InsufficientItemsError) Error() string {
	return fmt.Sprintf("not enough words to start: need %d, have %d", e.Required, e.Available)
}

// StateError reports an operation invoked in a phase that does not
// allow it. This is caller misuse, not a runtime condition, and is
// returned loudly rather than silently ignored.
type StateError struct {
	Op    string
	Phase Phase
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s in phase %s", e.Op, e.Phase)
}
