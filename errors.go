package memoize

import "fmt"

var (
	// ErrInvalidConfig is returned when a Config cannot be decoded or validated.
	ErrInvalidConfig = fmt.Errorf("invalid memoize config")

	// ErrPanicked is wrapped by the Err of an EventFailure caused by a panic.
	ErrPanicked = fmt.Errorf("memoized function panicked")
)

// panicked carries a recovered panic value out of a flight so that every
// caller sharing the flight can re-panic with the original value.
type panicked struct {
	value any
}

func (p *panicked) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanicked, p.value)
}

func (p *panicked) Unwrap() error {
	return ErrPanicked
}
