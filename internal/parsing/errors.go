package parsing

import "fmt"

// InputError represents a contract violation at the parse boundary.
// Malformed *content* never produces an error; only inputs the API cannot
// accept at all (e.g. oversized documents) are rejected.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
