// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// List is a type-level registry: an ordered, fixed sequence of types.
// Registries are named by their type, built from [Nil] and [Cons], and carry
// no runtime state. The zero value of a registry type is the registry.
//
// The unexported methods close the set of implementations; a registry
// cannot be extended after it is declared.
type List interface {
	// Len returns the number of registered types.
	Len() int

	appendTypes(dst []reflect.Type) []reflect.Type
	typeAt(i int) reflect.Type
	// index returns i plus the position of the first entry H for which
	// probe holds a *H, or -1 if there is none.
	index(probe Erased, i int) int
	// fill binds slots[i:] tail first, so construction runs from the
	// last index down to i.
	fill(slots []slot, i int, lookup handlerLookup)
}

// Nil is the empty registry.
type Nil struct{}

// Len returns 0.
func (Nil) Len() int { return 0 }

func (Nil) appendTypes(dst []reflect.Type) []reflect.Type { return dst }
func (Nil) typeAt(int) reflect.Type                       { return nil }
func (Nil) index(Erased, int) int                         { return -1 }
func (Nil) fill([]slot, int, handlerLookup)               {}

// Cons is the registry with head type H followed by the registry T.
type Cons[H any, T List] struct{}

// Len returns 1 + T's length.
func (Cons[H, T]) Len() int {
	var t T
	return 1 + t.Len()
}

func (Cons[H, T]) appendTypes(dst []reflect.Type) []reflect.Type {
	var t T
	return t.appendTypes(append(dst, reflect.TypeFor[H]()))
}

func (Cons[H, T]) typeAt(i int) reflect.Type {
	if i == 0 {
		return reflect.TypeFor[H]()
	}
	var t T
	return t.typeAt(i - 1)
}

func (Cons[H, T]) index(probe Erased, i int) int {
	if _, ok := probe.(*H); ok {
		return i
	}
	var t T
	return t.index(probe, i+1)
}

func (Cons[H, T]) fill(slots []slot, i int, lookup handlerLookup) {
	var t T
	t.fill(slots, i+1, lookup)
	slots[i] = bindSlot[H](lookup(i, reflect.TypeFor[H]()))
}

// Registry shorthands for small arities.
type (
	List1[A any]                = Cons[A, Nil]
	List2[A, B any]             = Cons[A, List1[B]]
	List3[A, B, C any]          = Cons[A, List2[B, C]]
	List4[A, B, C, D any]       = Cons[A, List3[B, C, D]]
	List5[A, B, C, D, E any]    = Cons[A, List4[B, C, D, E]]
	List6[A, B, C, D, E, F any] = Cons[A, List5[B, C, D, E, F]]
)

// Length returns the number of types in L.
func Length[L List]() int {
	var l L
	return l.Len()
}

// Types returns the types of L in registry order.
func Types[L List]() []reflect.Type {
	var l L
	return TypesOf(l)
}

// TypesOf returns the types of the registry value l in order.
func TypesOf(l List) []reflect.Type {
	return l.appendTypes(make([]reflect.Type, 0, l.Len()))
}

// Has reports whether T occurs anywhere in L.
func Has[T any, L List]() bool {
	var l L
	return l.index((*T)(nil), 0) >= 0
}

// AtHead reports whether T is the first type of L.
func AtHead[T any, L List]() bool {
	var l L
	return l.index((*T)(nil), 0) == 0
}

// IndexOf returns the position of the first occurrence of T in L.
// It fails with [ErrNotInRegistry] when T is absent.
func IndexOf[T any, L List]() (int, error) {
	var l L
	if i := l.index((*T)(nil), 0); i >= 0 {
		return i, nil
	}
	return -1, errors.WithHintf(
		errors.Wrapf(ErrNotInRegistry, "%v", reflect.TypeFor[T]()),
		"registry holds %v", Types[L](),
	)
}

// MustIndexOf is like [IndexOf] but panics when T is absent.
func MustIndexOf[T any, L List]() int {
	i, err := IndexOf[T, L]()
	if err != nil {
		panic(err)
	}
	return i
}

// TypeAt returns the type at position i of L.
// It fails with [ErrIndexOutOfRange] unless [ValidIndex] holds.
func TypeAt[L List](i int) (reflect.Type, error) {
	if !ValidIndex[L](i) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, Length[L]())
	}
	var l L
	return l.typeAt(i), nil
}

// ValidIndex reports whether 0 <= i < Length[L]().
func ValidIndex[L List](i int) bool {
	return i >= 0 && i < Length[L]()
}

// SameTypeAt reports whether the type at position i of L is T.
// An invalid index reports false.
func SameTypeAt[T any, L List](i int) bool {
	t, err := TypeAt[L](i)
	return err == nil && t == reflect.TypeFor[T]()
}

// Duplicates returns every type that occurs more than once in L, once each,
// in order of its second occurrence.
//
// Registries are expected to be duplicate-free. Nothing in this package
// enforces that; a repeated type shadows its later slots, since lookups
// resolve to the first occurrence.
func Duplicates[L List]() []reflect.Type {
	seen := make(map[reflect.Type]int)
	var dups []reflect.Type
	for _, t := range Types[L]() {
		seen[t]++
		if seen[t] == 2 {
			dups = append(dups, t)
		}
	}
	return dups
}

// HasRepeats reports whether any type occurs more than once in L.
func HasRepeats[L List]() bool {
	return len(Duplicates[L]()) > 0
}

// indexOfType is IndexOf for a runtime type.
func indexOfType(l List, t reflect.Type) int {
	for i, u := range TypesOf(l) {
		if u == t {
			return i
		}
	}
	return -1
}
