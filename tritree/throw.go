package tritree

import "github.com/pkg/errors"

// Degenerate geometry only surfaces in the middle of construction helpers,
// and threading errors through them would complicate every caller for what
// is always a caller bug. Instead, internals panic with a TreeError, and the
// public API recovers to convert to an error.

type TreeError error

// Panic with a TreeError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleTreePanicRecover(r interface{}) error {
	if r != nil {
		if treeError, ok := r.(TreeError); ok {
			return treeError
		}
		panic(r)
	}
	return nil
}
