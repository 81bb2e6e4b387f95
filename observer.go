package memoize

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// now is a short span around the current instant.
func now() TimeSpan {
	t := time.Now()
	return timespan.BetweenTimes(t.Add(-1*epsilon), t.Add(epsilon))
}

// EventKind tells what happened on a debug memoizer call.
type EventKind int

const (
	// EventHit is a call answered from the cache.
	EventHit EventKind = iota
	// EventMiss is a successful invocation whose result was stored.
	EventMiss
	// EventFailure is an invocation that returned an error or panicked.
	EventFailure
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event is delivered to the observer of a Debug memoizer.
//
// For misses and failures Span covers the invocation of the wrapped function.
type Event struct {
	Kind        EventKind
	Key         string
	Span        TimeSpan
	Err         error
	TimesCalled uint64
}
