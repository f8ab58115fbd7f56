// Package testrand provides throwaway random values for tests: scalars,
// ranged numbers, byte buffers, alphanumeric strings, and filenames that do
// not collide with existing entries in the current working directory.
//
// Every generator draws from the process-wide math/rand/v2 source, so
// concurrent calls are safe without any locking on the caller's side. Values
// are not cryptographically secure and sequences are not reproducible; the
// package exists to cut boilerplate in tests that need "some value",
// "some bytes", or "a name that isn't taken".
//
// # Usage
//
//	import "github.com/ognis1205/regd-testing/pkg/testrand"
//
//	n := testrand.Value[uint32]()
//	port := testrand.Range(1024, 65536)
//	payload := testrand.Bytes(16)
//	id := testrand.Alphanumeric(12)
//	path := testrand.Filename(12) // no such file in the cwd
//
// Range and RangeInclusive panic with ErrEmptyRange when the supplied bounds
// describe no values, and Filename panics with ErrZeroLengthName when asked
// for an empty name. Both indicate a bug in the calling test, not a runtime
// condition to recover from; everything else is a total function over its
// documented inputs and never fails.
package testrand
