package purefn

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	maxTableSize int,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) (O1, error) {
			return pureFn(argAt[I1](args, 0)), nil
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize int,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) (O1, error) {
			return pureFn(argAt[I1](args, 0), argAt[I2](args, 1)), nil
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize int,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...any) (O1, error) {
			return pureFn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2)), nil
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize int,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...any) (O1, error) {
			return pureFn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3)), nil
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// TryTableizeI1O1 memoizes a fallible function. Failed calls are not cached,
// so the next call with the same argument runs fn again.
func TryTableizeI1O1[I1 comparable, O1 any](
	fn func(I1) (O1, error),
	maxTableSize int,
) func(I1) (O1, error) {
	memo := mustNew(
		func(args ...any) (O1, error) {
			return fn(argAt[I1](args, 0))
		},
		maxTableSize,
	)
	return func(i1 I1) (O1, error) {
		return memo.GetOrCompute(i1)
	}
}

func TryTableizeI2O1[I1, I2 comparable, O1 any](
	fn func(I1, I2) (O1, error),
	maxTableSize int,
) func(I1, I2) (O1, error) {
	memo := mustNew(
		func(args ...any) (O1, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O1, error) {
		return memo.GetOrCompute(i1, i2)
	}
}

func TryTableizeI3O1[I1, I2, I3 comparable, O1 any](
	fn func(I1, I2, I3) (O1, error),
	maxTableSize int,
) func(I1, I2, I3) (O1, error) {
	memo := mustNew(
		func(args ...any) (O1, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return memo.GetOrCompute(i1, i2, i3)
	}
}

func TryTableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	fn func(I1, I2, I3, I4) (O1, error),
	maxTableSize int,
) func(I1, I2, I3, I4) (O1, error) {
	memo := mustNew(
		func(args ...any) (O1, error) {
			return fn(argAt[I1](args, 0), argAt[I2](args, 1), argAt[I3](args, 2), argAt[I4](args, 3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return memo.GetOrCompute(i1, i2, i3, i4)
	}
}

// argAt recovers a typed argument. The comma-ok form keeps a nil interface
// argument from panicking.
func argAt[T any](args []any, i int) T {
	v, _ := args[i].(T)
	return v
}

func mustNew[O any](compute Compute[O], maxTableSize int) *Store[O] {
	memo, err := New(maxTableSize, compute)
	if err != nil {
		panic(err)
	}
	return memo
}

func tableize[O any](
	pureFn Compute[O],
	maxTableSize int,
) func(...any) O {
	memo := mustNew(pureFn, maxTableSize)
	return func(args ...any) O {
		v, err := memo.GetOrCompute(args...)
		if err != nil {
			panic(err)
		}
		return v
	}
}
