// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Tuple is a fixed-size heterogeneous product whose element types form a
// registry. TypeList returns that registry with the element order kept.
type Tuple interface {
	TypeList() List
}

// Tuple1 is a one-element tuple.
type Tuple1[A any] struct {
	V0 A
}

// Tuple2 is a two-element tuple.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 is a three-element tuple.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 is a four-element tuple.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Tuple5 is a five-element tuple.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// Tuple6 is a six-element tuple.
type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

func (Tuple1[A]) TypeList() List                { return List1[A]{} }
func (Tuple2[A, B]) TypeList() List             { return List2[A, B]{} }
func (Tuple3[A, B, C]) TypeList() List          { return List3[A, B, C]{} }
func (Tuple4[A, B, C, D]) TypeList() List       { return List4[A, B, C, D]{} }
func (Tuple5[A, B, C, D, E]) TypeList() List    { return List5[A, B, C, D, E]{} }
func (Tuple6[A, B, C, D, E, F]) TypeList() List { return List6[A, B, C, D, E, F]{} }

// FromTuple converts a tuple to its registry.
func FromTuple(t Tuple) List {
	return t.TypeList()
}

// StructTypes returns the field types of the struct S in declaration order.
// It is the reflective counterpart of [FromTuple] for arbitrary structs, and
// fails with [ErrNotStruct] for any other kind.
func StructTypes[S any]() ([]reflect.Type, error) {
	st := reflect.TypeFor[S]()
	if st.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrNotStruct, "%v is a %v", st, st.Kind())
	}
	types := make([]reflect.Type, st.NumField())
	for i := range types {
		types[i] = st.Field(i).Type
	}
	return types, nil
}
