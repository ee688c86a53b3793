// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Erased is a visited value with its static type erased.
// A value reaching slot i is always a *T where T is the i-th registered type;
// slots recover T with a single type assertion.
type Erased = any

// Abstract is the multi-method interface of the registry L: one dispatch
// slot per registered type, selected by position instead of by name.
//
// VisitAt(i, v) runs the handler of slot i with v, which must be a *T for
// the i-th type T of L. Visitables compute i from their static type, so
// callers rarely use VisitAt directly. Registry names L in the method set,
// which keeps visitors of different registries from satisfying each other's
// interface.
type Abstract[L List] interface {
	Registry() L
	Len() int
	VisitAt(i int, v Erased)
}

// Single is the single-method interface for one registered type.
// An [Abstract] visitor is the composition of one Single per type of L.
type Single[T any] interface {
	Visit(*T)
}

// slot is one dispatch entry of a [Visitor].
type slot func(Erased)

// handlerLookup returns the handler for the i-th type t, or nil.
// A handler is either a func(*T) or a func(Erased).
type handlerLookup func(i int, t reflect.Type) any

// bindSlot turns a handler into the typed slot for H.
// It returns nil if h is not a handler for H.
func bindSlot[H any](h any) slot {
	switch f := h.(type) {
	case func(*H):
		if f == nil {
			return nil
		}
		return func(v Erased) {
			x, ok := v.(*H)
			if !ok {
				mismatchedValue(reflect.TypeFor[H](), v)
			}
			f(x)
		}
	case func(Erased):
		if f == nil {
			return nil
		}
		return func(v Erased) {
			if _, ok := v.(*H); !ok {
				mismatchedValue(reflect.TypeFor[H](), v)
			}
			f(v)
		}
	}
	return nil
}

// Visitor is the table implementation of [Abstract]. It holds exactly
// Len[L] slots and never changes after construction.
type Visitor[L List] struct {
	slots []slot
}

// Registry returns the registry value L.
func (*Visitor[L]) Registry() L {
	var l L
	return l
}

// Len returns the number of dispatch slots, which equals [Length] of L.
func (v *Visitor[L]) Len() int { return len(v.slots) }

// VisitAt runs slot i with x.
func (v *Visitor[L]) VisitAt(i int, x Erased) { v.slots[i](x) }

// build binds every slot of L through lookup.
// It fails with [ErrMissingHandler] naming each type left unbound.
func build[L List](lookup handlerLookup) (*Visitor[L], error) {
	var l L
	slots := make([]slot, l.Len())
	l.fill(slots, 0, lookup)
	var missing []reflect.Type
	for i, s := range slots {
		if s == nil {
			missing = append(missing, l.typeAt(i))
		}
	}
	if len(missing) > 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrMissingHandler, "%v", missing),
			"every registered type needs exactly one handler",
		)
	}
	return &Visitor[L]{slots: slots}, nil
}

// Case is one handler waiting to be placed in a [Visitor] by [New].
type Case struct {
	typ reflect.Type
	h   any
}

// On returns the case handling *T with f.
func On[T any](f func(*T)) Case {
	return Case{typ: reflect.TypeFor[T](), h: f}
}

// Method returns the case handling *T with s.Visit.
func Method[T any](s Single[T]) Case {
	return On(s.Visit)
}

// New assembles a visitor for L from one case per registered type.
// Case order does not matter.
//
// New fails with [ErrNotInRegistry] for a case whose type L does not list,
// [ErrAmbiguousHandler] for two cases of one type, and [ErrMissingHandler]
// when a registered type has no case.
func New[L List](cases ...Case) (*Visitor[L], error) {
	var l L
	byType := make(map[reflect.Type]any, len(cases))
	for _, c := range cases {
		if c.typ == nil {
			return nil, errors.Wrap(ErrMissingHandler, "zero Case")
		}
		if indexOfType(l, c.typ) < 0 {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrNotInRegistry, "case for %v", c.typ),
				"registry holds %v", TypesOf(l),
			)
		}
		if _, dup := byType[c.typ]; dup {
			return nil, errors.Wrapf(ErrAmbiguousHandler, "two cases for %v", c.typ)
		}
		byType[c.typ] = c.h
	}
	return build[L](func(_ int, t reflect.Type) any { return byType[t] })
}

// MustNew is like [New] but panics on error.
func MustNew[L List](cases ...Case) *Visitor[L] {
	v, err := New[L](cases...)
	if err != nil {
		panic(err)
	}
	return v
}

// Dispatch runs the slot of v that handles the static type T.
// It panics if T is not registered in L.
func Dispatch[T any, L List](v Abstract[L], x *T) {
	v.VisitAt(MustIndexOf[T, L](), x)
}
