package memoize

// argAt returns args[i] as I. A nil argument becomes the zero value of I.
func argAt[I any](args []any, i int) I {
	v, _ := args[i].(I)
	return v
}

func MemoizeI0O1[O any](
	fn func() O,
	cache Cache[O],
) func() O {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(), nil
		},
		cache,
	)
	return func() O {
		o, _ := memoized()
		return o
	}
}

func MemoizeI0OE[O any](
	fn func() (O, error),
	cache Cache[O],
) func() (O, error) {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn()
		},
		cache,
	)
	return func() (O, error) {
		return memoized()
	}
}

func MemoizeI1O1[I1 any, O any](
	fn func(I1) O,
	cache Cache[O],
) func(I1) O {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0)), nil
		},
		cache,
	)
	return func(i1 I1) O {
		o, _ := memoized(i1)
		return o
	}
}

func MemoizeI1OE[I1 any, O any](
	fn func(I1) (O, error),
	cache Cache[O],
) func(I1) (O, error) {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0))
		},
		cache,
	)
	return func(i1 I1) (O, error) {
		return memoized(i1)
	}
}

func MemoizeI2O1[I1, I2 any, O any](
	fn func(I1, I2) O,
	cache Cache[O],
) func(I1, I2) O {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1)), nil
		},
		cache,
	)
	return func(i1 I1, i2 I2) O {
		o, _ := memoized(i1, i2)
		return o
	}
}

func MemoizeI2OE[I1, I2 any, O any](
	fn func(I1, I2) (O, error),
	cache Cache[O],
) func(I1, I2) (O, error) {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1))
		},
		cache,
	)
	return func(i1 I1, i2 I2) (O, error) {
		return memoized(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 any, O any](
	fn func(I1, I2, I3) O,
	cache Cache[O],
) func(I1, I2, I3) O {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2)), nil
		},
		cache,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		o, _ := memoized(i1, i2, i3)
		return o
	}
}

func MemoizeI3OE[I1, I2, I3 any, O any](
	fn func(I1, I2, I3) (O, error),
	cache Cache[O],
) func(I1, I2, I3) (O, error) {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2))
		},
		cache,
	)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return memoized(i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4 any, O any](
	fn func(I1, I2, I3, I4) O,
	cache Cache[O],
) func(I1, I2, I3, I4) O {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3)), nil
		},
		cache,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		o, _ := memoized(i1, i2, i3, i4)
		return o
	}
}

func MemoizeI4OE[I1, I2, I3, I4 any, O any](
	fn func(I1, I2, I3, I4) (O, error),
	cache Cache[O],
) func(I1, I2, I3, I4) (O, error) {
	memoized := Memoize(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3))
		},
		cache,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return memoized(i1, i2, i3, i4)
	}
}

// The DebugI<n>O* wrappers return the typed memoized function together with
// the Debug memoizer backing it, for inspection.

func DebugI0O1[O any](
	fn func() O,
	cache Cache[O],
	opts ...DebugOption,
) (func() O, *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(), nil
		},
		fn,
		cache,
		opts,
	)
	return func() O {
		o, _ := d.Call()
		return o
	}, d
}

func DebugI0OE[O any](
	fn func() (O, error),
	cache Cache[O],
	opts ...DebugOption,
) (func() (O, error), *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn()
		},
		fn,
		cache,
		opts,
	)
	return func() (O, error) {
		return d.Call()
	}, d
}

func DebugI1O1[I1 any, O any](
	fn func(I1) O,
	cache Cache[O],
	opts ...DebugOption,
) (func(I1) O, *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0)), nil
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1) O {
		o, _ := d.Call(i1)
		return o
	}, d
}

func DebugI1OE[I1 any, O any](
	fn func(I1) (O, error),
	cache Cache[O],
	opts ...DebugOption,
) (func(I1) (O, error), *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0))
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1) (O, error) {
		return d.Call(i1)
	}, d
}

func DebugI2O1[I1, I2 any, O any](
	fn func(I1, I2) O,
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2) O, *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1)), nil
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2) O {
		o, _ := d.Call(i1, i2)
		return o
	}, d
}

func DebugI2OE[I1, I2 any, O any](
	fn func(I1, I2) (O, error),
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2) (O, error), *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1))
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2) (O, error) {
		return d.Call(i1, i2)
	}, d
}

func DebugI3O1[I1, I2, I3 any, O any](
	fn func(I1, I2, I3) O,
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2, I3) O, *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2)), nil
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		o, _ := d.Call(i1, i2, i3)
		return o
	}, d
}

func DebugI3OE[I1, I2, I3 any, O any](
	fn func(I1, I2, I3) (O, error),
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2, I3) (O, error), *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2))
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return d.Call(i1, i2, i3)
	}, d
}

func DebugI4O1[I1, I2, I3, I4 any, O any](
	fn func(I1, I2, I3, I4) O,
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2, I3, I4) O, *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3)), nil
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		o, _ := d.Call(i1, i2, i3, i4)
		return o
	}, d
}

func DebugI4OE[I1, I2, I3, I4 any, O any](
	fn func(I1, I2, I3, I4) (O, error),
	cache Cache[O],
	opts ...DebugOption,
) (func(I1, I2, I3, I4) (O, error), *Debug[O]) {
	d := newDebug(
		func(args ...any) (O, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3))
		},
		fn,
		cache,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return d.Call(i1, i2, i3, i4)
	}, d
}
