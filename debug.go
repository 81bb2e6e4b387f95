package memoize

import (
	"fmt"
	"reflect"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/memoize/internal/log"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// LogLevel is the level of the threshold warning.
type LogLevel = log.LogLevel

const (
	LevelDebug LogLevel = log.LogDebug
	LevelInfo  LogLevel = log.LogInfo
	LevelWarn  LogLevel = log.LogWarn
	LevelError LogLevel = log.LogError
)

// DebugOption configures a Debug memoizer.
type DebugOption func(*debugConfig)

type debugConfig struct {
	threshold uint64
	logger    *zap.Logger
	level     log.LogLevel
	name      string
	observer  func(Event)
}

// WithThreshold sets the number of invocations at which a warning is logged once.
// 0 disables the warning.
func WithThreshold(threshold uint64) DebugOption {
	return func(c *debugConfig) { c.threshold = threshold }
}

// WithLogger sets the logger receiving the threshold warning.
func WithLogger(logger *zap.Logger) DebugOption {
	return func(c *debugConfig) { c.logger = logger }
}

// WithWarnLevel sets the level of the threshold warning. Defaults to LevelWarn.
func WithWarnLevel(level LogLevel) DebugOption {
	return func(c *debugConfig) { c.level = level }
}

// WithName attaches a name to every log line of the memoizer.
func WithName(name string) DebugOption {
	return func(c *debugConfig) { c.name = name }
}

// WithObserver registers fn to receive an Event for every call.
// fn runs synchronously on the calling goroutine.
func WithObserver(fn func(Event)) DebugOption {
	return func(c *debugConfig) { c.observer = fn }
}

// Debug is a memoizer that counts invocations of the wrapped function and
// exposes its cache for inspection.
type Debug[O any] struct {
	m *memoizer[O]

	id     string
	count  atomic.Uint64
	cfg    debugConfig
	fnDesc string
	fnAddr uintptr
}

// MemoizeDebug is Memoize with instrumentation.
//
// The call counter is incremented before every invocation of fn, so failed
// invocations are counted too. When the counter reaches the threshold, three
// warning lines are logged: the count, a description of fn and its address.
func MemoizeDebug[O any](
	fn func(args ...any) (O, error),
	cache Cache[O],
	opts ...DebugOption,
) *Debug[O] {
	return newDebug(fn, fn, cache, opts)
}

// newDebug wraps fn; target is the function described in warnings.
func newDebug[O any](
	fn func(args ...any) (O, error),
	target any,
	cache Cache[O],
	opts []DebugOption,
) *Debug[O] {
	cfg := debugConfig{level: log.LogWarn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}

	d := &Debug[O]{
		id:  uuid.New().String(),
		cfg: cfg,
	}
	d.fnDesc, d.fnAddr = describeFunc(target)
	d.m = newMemoizer(fn, cache, d)
	return d
}

// Call invokes the memoized function.
func (d *Debug[O]) Call(args ...any) (O, error) {
	return d.m.call(args)
}

// Cache returns the live cache of the memoizer, not a copy.
func (d *Debug[O]) Cache() Cache[O] {
	return d.m.cache
}

// TimesCalled returns how many times the wrapped function has been invoked.
func (d *Debug[O]) TimesCalled() uint64 {
	return d.count.Load()
}

// ID returns the unique id of the memoizer, as it appears in its log lines.
func (d *Debug[O]) ID() string {
	return d.id
}

func (d *Debug[O]) hit(key string) {
	d.emit(Event{Kind: EventHit, Key: key, Span: now()})
}

func (d *Debug[O]) miss(key string) {
	count := d.count.Add(1)
	if count == d.cfg.threshold {
		d.warnThreshold(count)
	}
}

func (d *Debug[O]) done(key string, start, end time.Time, err error) {
	ev := Event{Kind: EventMiss, Key: key, Span: timespan.BetweenTimes(start, end)}
	if err != nil {
		ev.Kind, ev.Err = EventFailure, err
	}
	d.emit(ev)
}

func (d *Debug[O]) emit(ev Event) {
	if d.cfg.observer == nil {
		return
	}
	ev.TimesCalled = d.count.Load()
	d.cfg.observer(ev)
}

func (d *Debug[O]) warnThreshold(count uint64) {
	fields := map[string]interface{}{"memoizer": d.id}
	if d.cfg.name != "" {
		fields["name"] = d.cfg.name
	}
	log.Emit(d.cfg.logger, log.LogPayload{
		Level:   d.cfg.level,
		Message: fmt.Sprintf("memoization for function reached threshold number of calls: %d", count),
		Fields:  fields,
	})
	log.Emit(d.cfg.logger, log.LogPayload{
		Level:   d.cfg.level,
		Message: d.fnDesc,
		Fields:  fields,
	})
	log.Emit(d.cfg.logger, log.LogPayload{
		Level:   d.cfg.level,
		Message: "memoized function",
		Fields: map[string]interface{}{
			"memoizer": d.id,
			"fn":       d.fnAddr,
		},
	})
	if err := d.cfg.logger.Sync(); err != nil {
		d.cfg.logger.Debug("failed to sync logger", zap.Error(err))
	}
}

// describeFunc returns the symbol name and source position of fn, and its entry address.
func describeFunc(fn any) (string, uintptr) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Sprint(fn), 0
	}
	pc := v.Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return fmt.Sprintf("func@%#x", pc), pc
	}
	file, line := f.FileLine(pc)
	return fmt.Sprintf("%s (%s:%d)", f.Name(), file, line), pc
}
