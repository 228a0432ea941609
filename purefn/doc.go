// Package purefn provides bounded memoization for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is Store, a least-recently-used table of results keyed by
// call arguments. Arguments are normalized into a Key: numbers, strings,
// booleans and immutable composites of them (arrays, structs, Tuple) are
// accepted, while slices, maps, pointers, funcs and channels are rejected with
// ErrUnhashable, because a key must be stable under equality, not identity.
//
// Features:
//   - Store: GetOrCompute with O(1) lookup, promotion and eviction.
//   - Arg / Key: explicit tagged key components; KeyOf never fails.
//   - TableizeI1O1 to TableizeI4O1: typed memoizers for infallible functions.
//   - TryTableizeI1O1 to TryTableizeI4O1: typed memoizers that never cache failures.
//
// Key equality follows Go's == on the original values: int(2), int64(2) and
// float64(2) are three different keys. -0.0 and +0.0 share a key, and so do
// all NaNs.
//
// A Store is meant for a single goroutine. It is not safe for concurrent use.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
