// Package memoize wraps functions so that repeated calls with the same
// arguments return a stored result instead of running the function again.
//
// # Cache keys
//
// The cache key of a call is the textual form of each argument joined with
// a comma (see Key). Arguments are compared by text only, so a call with
// (1, 2, 3) and a later call with ("1", 2, 3) share one entry. A call without
// arguments has the key "".
//
// # Memoizers
//
// Memoize and the typed MemoizeI<n>O1 / MemoizeI<n>OE wrappers store results
// of successful calls only: a returned error or a panic reaches the caller
// unchanged and is never cached.
//
// MemoizeDebug and the DebugI<n>O* wrappers additionally count invocations,
// log a one-time warning when the count reaches a threshold, report every
// call to an optional observer, and expose the live cache.
//
//	fib, dbg := memoize.DebugI1O1(func(n int) int { ... }, nil, memoize.WithThreshold(100))
//	fib(30)
//	dbg.TimesCalled() // => number of invocations
//	dbg.Cache()       // => the cache itself, not a copy
//
// Go has no implicit receiver; to memoize a method pass a method value such
// as obj.Method, which binds the receiver.
//
// # Concurrency
//
// A memoizer may be called from many goroutines. Concurrent calls with the
// same key share one invocation, and the cache is never locked while the
// wrapped function runs, so memoized functions may call themselves
// recursively. A MapCache must not be touched by the caller while calls are
// in flight; SyncMapCache and ShardedCache may be shared between memoizers.
//
// Caches are never evicted or expired.
package memoize
