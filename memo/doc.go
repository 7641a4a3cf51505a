// Package memo memoizes pure functions by treating them as lazily filled
// key/value tables.
//
// A pure function and a key/value store describe the same thing: a mapping
// from inputs to outputs. The function computes an entry on demand, the
// store remembers entries already computed. A Cache joins the two:
//
//	→ the first Get for a key runs the function and records the result,
//	→ every later Get for that key reads the record.
//
// The function is invoked at most once per key for successful results.
// Failures are never recorded; they are returned unchanged and the next Get
// for that key tries again. Concurrent Gets for the same unresolved key share
// one computation, while Gets for different keys never wait on each other.
//
// The table only grows. There is no eviction, no size bound and no
// invalidation; the table lives as long as the Cache does. Storage is
// pluggable through package store ("get-or-absent, set"), which is also the
// extension point for bounded or shared backends.
//
// Besides the Cache type this package exports closure adapters:
//   - Func and Pure wrap a function and return a function with the same
//     signature, backed by a private Cache.
//   - TableizeI1O1 to TableizeI4O2 memoize functions of up to four
//     arguments and one or two results.
//
// Example:
//
//	square := memo.Pure(func(n int) int {
//	    fmt.Println("computing", n)
//	    return n * n
//	})
//	square(3) // prints "computing 3"
//	square(3) // served from the table
//
// WARNING: memoizing a function that depends on time, I/O or other ambient
// state freezes whatever it returned the first time.
package memo
