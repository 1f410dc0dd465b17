package form

import "errors"

// Sentinel errors for form session misuse. Both indicate caller-logic
// defects, not recoverable input problems: they are returned immediately and
// must never be swallowed, since continuing would corrupt the rendered
// markup.
var (
	// ErrUnbalancedField is returned when a session ends with fields still
	// open, or a field is ended with none open.
	ErrUnbalancedField = errors.New("formbind: unbalanced field begin/end")

	// ErrSessionClosed is returned when a session is ended (or written to)
	// after End already ran.
	ErrSessionClosed = errors.New("formbind: form session already closed")
)

// IsUnbalancedField checks if err reports an unbalanced field begin/end pair.
func IsUnbalancedField(err error) bool {
	return errors.Is(err, ErrUnbalancedField)
}
