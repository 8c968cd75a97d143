package sales

import "fmt"

// ValidationError reports a rejected update payload. The handler maps it to a
// 400 before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
