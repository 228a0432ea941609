package purefn

import "errors"

// ErrInvalidCapacity is returned by New when the capacity is not a positive integer.
var ErrInvalidCapacity = errors.New("capacity should be greater than 0")

// ErrNilCompute is returned by New when no computation is given to memoize.
var ErrNilCompute = errors.New("compute function is nil")

// ErrUnhashable reports an argument that cannot form a stable cache key:
// a mutable container (slice, map) or a value compared by identity only
// (pointer, channel, func).
var ErrUnhashable = errors.New("unhashable argument")
