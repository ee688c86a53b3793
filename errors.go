// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Construction errors. Once a [Visitor] or [Visitable] has been built,
// dispatch itself has no error path.
var (
	// ErrNotInRegistry reports a type that the registry does not list.
	ErrNotInRegistry = errors.New("visit: type not in registry")

	// ErrIndexOutOfRange reports a position outside [0, Len).
	ErrIndexOutOfRange = errors.New("visit: registry index out of range")

	// ErrMissingHandler reports registered types left without a handler.
	ErrMissingHandler = errors.New("visit: missing handler")

	// ErrAmbiguousHandler reports a type with more than one handler.
	ErrAmbiguousHandler = errors.New("visit: ambiguous handler")

	// ErrNotEmbedded reports a Self attached to a value that does not
	// contain it.
	ErrNotEmbedded = errors.New("visit: mixin not embedded in value")

	// ErrNotStruct reports a non-struct type passed where fields are read.
	ErrNotStruct = errors.New("visit: not a struct type")
)

// mismatchedValue panics when a slot receives a value of the wrong type.
//
//go:noinline
func mismatchedValue(want reflect.Type, got Erased) {
	panic(fmt.Sprintf("visit: slot for *%v received %T", want, got))
}

// unattached panics on Accept through a [Self] that was never attached.
//
//go:noinline
func unattached(c reflect.Type) {
	panic("visit: Accept on unattached " + c.String())
}
