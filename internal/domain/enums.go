package domain

import "fmt"

// FilterMode restricts the day view by completion state.
type FilterMode string

const (
	FilterAll         FilterMode = "all"
	FilterToday       FilterMode = "today"
	FilterCompleted   FilterMode = "completed"
	FilterUncompleted FilterMode = "uncompleted"
)

// AllFilterModes lists the modes in cycle order for the UI.
var AllFilterModes = []FilterMode{FilterAll, FilterToday, FilterCompleted, FilterUncompleted}

// ParseFilterMode validates a user-supplied mode string against the closed set.
// FilterToday adds no restriction beyond FilterAll; it only signals that the
// caller has set the viewed date to today.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterAll, FilterToday, FilterCompleted, FilterUncompleted:
		return FilterMode(s), nil
	}
	return "", fmt.Errorf("unknown filter mode %q (want all, today, completed or uncompleted)", s)
}
