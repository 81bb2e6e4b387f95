package memoize_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/memoize"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib func(int) int
	fib = memoize.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, nil)

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	caches := map[string]func() memoize.Cache[int]{
		"MapCache":     func() memoize.Cache[int] { return memoize.MapCache[int]{} },
		"SyncMapCache": func() memoize.Cache[int] { return memoize.NewSyncMapCache[int]() },
		"ShardedCache": func() memoize.Cache[int] { return memoize.NewShardedCache[int](8) },
	}
	for name, newCache := range caches {
		b.Run(fmt.Sprintf("Cache_%s", name), func(b *testing.B) {
			var lev func(string, string) int
			lev = memoize.MemoizeI2O1(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev(a[1:], b[1:])
				}
				return 1 + min(
					lev(a[1:], b),
					lev(a, b[1:]),
					lev(a[1:], b[1:]),
				)
			}, newCache())

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

func BenchmarkKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = memoize.Key(1, "two", 3.5, true)
	}
}
