// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package st

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions the library itself raises.
// Errors returned by user functions inside computations are propagated
// unchanged; nothing is caught or retried.

var (
	// ErrIndexRange reports an array access outside [0, size).
	// Errors returned by Arr operations wrap it with the offending
	// index and the array size.
	ErrIndexRange = errors.New("st: index out of range")

	// ErrNegativeSize reports an array creation with a negative size.
	ErrNegativeSize = errors.New("st: negative array size")

	// ErrScopeMismatch reports a cell or array operated on under a scope
	// other than the one that created it. Handles never cross sessions;
	// a computation that smuggles one out of a Run call and uses it in
	// another fails with this error.
	ErrScopeMismatch = errors.New("st: value used outside its scope")

	// ErrUnresolvedFix reports a fixpoint result forced before the
	// fixpoint computation completed. See [Fix].
	ErrUnresolvedFix = errors.New("st: fixpoint result forced before resolution")
)

// indexError wraps ErrIndexRange with the offending index and array size.
func indexError(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexRange, index, size)
}
