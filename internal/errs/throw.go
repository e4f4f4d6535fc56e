// Package errs threads contract-violation errors up out of the recursive,
// deeply-branching geometry algorithms (funnel construction, splinegon
// construction) without plumbing an error return through every call.
// Fatalf panics with a SightError; the exported entry points in package
// sightline recover and convert it to a normal error return. No package in
// this module calls Fatalf at present. This mirrors the teacher's
// advanced/internal.HandleTriangulatePanicRecover.
package errs

import "github.com/pkg/errors"

// SightError marks a panic value produced by Fatalf as a contract
// violation this package is willing to recover from and convert to an
// error, as opposed to an unrelated runtime panic that should keep
// propagating.
type SightError struct{ error }

// Fatalf panics with a SightError built from the given format and args.
func Fatalf(format string, args ...interface{}) {
	panic(SightError{errors.Errorf(format, args...)})
}

// Recover converts a SightError panic value into a normal error. Any other
// recovered value is re-panicked, since it was never ours to begin with.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if sightErr, ok := r.(SightError); ok {
		return sightErr.error
	}
	panic(r)
}
