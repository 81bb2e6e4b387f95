package memoize

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Memoize wraps fn so that repeated calls with the same cache key return the
// stored result instead of invoking fn again.
//
// cache is used as memory and mutated in place; a nil cache, including a nil
// MapCache, gets a fresh MapCache.
// Results are stored only when fn returns a nil error. Errors and panics from fn
// reach the caller unchanged and the next call with the same arguments retries fn.
func Memoize[O any](
	fn func(args ...any) (O, error),
	cache Cache[O],
) func(args ...any) (O, error) {
	m := newMemoizer(fn, cache, nil)
	return func(args ...any) (O, error) {
		return m.call(args)
	}
}

// tracer observes the life cycle of calls on a memoizer.
type tracer interface {
	hit(key string)
	miss(key string)
	done(key string, start, end time.Time, err error)
}

type memoizer[O any] struct {
	fn    func(args ...any) (O, error)
	trace tracer

	mu    sync.RWMutex
	cache Cache[O]

	// group runs at most one invocation per key at a time.
	group singleflight.Group
}

func newMemoizer[O any](
	fn func(args ...any) (O, error),
	cache Cache[O],
	trace tracer,
) *memoizer[O] {
	if fn == nil {
		panic("memoize: nil function")
	}
	if mc, ok := cache.(MapCache[O]); cache == nil || ok && mc == nil {
		cache = MapCache[O]{}
	}
	return &memoizer[O]{fn: fn, cache: cache, trace: trace}
}

func (m *memoizer[O]) load(key string) (O, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache.Load(key)
}

func (m *memoizer[O]) store(key string, value O) {
	m.mu.Lock()
	m.cache.Store(key, value)
	m.mu.Unlock()
}

func (m *memoizer[O]) call(args []any) (O, error) {
	key := Key(args...)
	if v, ok := m.load(key); ok {
		m.hit(key)
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		// another flight may have stored the key since the first check
		if v, ok := m.load(key); ok {
			m.hit(key)
			return boxed[O]{value: v}, nil
		}
		return m.invoke(key, args)
	})
	if p, ok := err.(*panicked); ok {
		panic(p.value)
	}
	return res.(boxed[O]).value, err
}

func (m *memoizer[O]) invoke(key string, args []any) (any, error) {
	if m.trace != nil {
		m.trace.miss(key)
	}
	start := time.Now()
	v, err := m.run(args)
	end := time.Now()

	// the store stays outside run so a faulty cache is not reported as a failure of fn
	if err == nil {
		m.store(key, v)
	}
	if m.trace != nil {
		m.trace.done(key, start, end, err)
	}
	return boxed[O]{value: v}, err
}

// run invokes fn, turning a panic into a *panicked error.
func (m *memoizer[O]) run(args []any) (v O, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero O
			v, err = zero, &panicked{value: r}
		}
	}()
	return m.fn(args...)
}

func (m *memoizer[O]) hit(key string) {
	if m.trace != nil {
		m.trace.hit(key)
	}
}
