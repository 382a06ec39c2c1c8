package model

import "fmt"

// UnknownActionError aborts generation when an action name falls outside the
// translation table. The message carries the offending name verbatim.
type UnknownActionError struct {
	Name string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("translate: unknown action %q", e.Name)
}

// UnknownSignalError aborts generation when a signal name falls outside the
// wrap table.
type UnknownSignalError struct {
	Name string
}

func (e UnknownSignalError) Error() string {
	return fmt.Sprintf("translate: unknown signal %q", e.Name)
}
