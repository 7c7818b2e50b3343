package smallnum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrepresentable is returned when a bound exceeds every rung of the
	// width ladder. There is no safe fallback width for such a bound.
	ErrUnrepresentable = errors.New("bound exceeds every supported width")
)

// OutOfRangeError indicates a checked narrowing conversion whose input does
// not fit the destination width. It is a caller contract violation: the input
// exceeded the bound the destination type was resolved for.
type OutOfRangeError struct {
	// Value is the rejected input in decimal form.
	Value string
	// Kind is the destination rung.
	Kind Kind
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %s does not fit %s", e.Value, e.Kind)
}
