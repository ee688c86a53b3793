// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Visitable is a value that dispatches itself to a visitor of L.
//
// Accept is the first dispatch: an ordinary interface call chosen by the
// dynamic type behind the Visitable. The implementation then performs the
// second dispatch, selecting the slot of its own static type.
type Visitable[L List] interface {
	Accept(v Abstract[L])
}

// Accept dispatches c to the slot of v registered for C.
// It is the whole body of a hand-written Accept method:
//
//	func (c *Circle) Accept(v visit.Abstract[Shapes]) { visit.Accept(c, v) }
//
// Accept panics if C is not registered in L.
func Accept[C any, L List](c *C, v Abstract[L]) {
	v.VisitAt(MustIndexOf[C, L](), c)
}

// Self is an embeddable mixin that makes *C a [Visitable] of L.
// The slot is resolved once, by [Self.Attach], from the static type C:
//
//	type Shapes struct {
//		visit.Cons[Circle, visit.Cons[Square, visit.Nil]]
//	}
//
//	type Circle struct {
//		visit.Self[Shapes, Circle]
//		R float64
//	}
//
//	c := &Circle{R: 1}
//	c.MustAttach(c)
//
// When the registry lists types that embed Self, declare it as a struct
// embedding the list, as above, not as an alias: the alias would make the
// registry and its members mutually recursive through a generic alias,
// which the compiler rejects.
//
// Self records where it sits inside C, not the address of C. Accept derives
// the visited pointer from its own receiver, so a copy of an attached value
// dispatches the copy. Embedding Self next to another embedded base is the
// way to make an existing type visitable without touching the base.
type Self[L List, C any] struct {
	// offset+1 of Self within C; 0 means unattached.
	at    uintptr
	index int
}

// Attach binds the mixin to c, the value that embeds it.
// It fails with [ErrNotInRegistry] if C is not registered in L, and with
// [ErrNotEmbedded] if s is not a field of *c.
func (s *Self[L, C]) Attach(c *C) error {
	i, err := IndexOf[C, L]()
	if err != nil {
		return err
	}
	base, field := uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(s))
	size, own := unsafe.Sizeof(*c), unsafe.Sizeof(*s)
	if c == nil || size < own || field < base || field-base > size-own {
		return errors.Wrapf(ErrNotEmbedded, "%v", reflect.TypeFor[C]())
	}
	s.at, s.index = field-base+1, i
	return nil
}

// MustAttach is like [Self.Attach] but panics on error.
func (s *Self[L, C]) MustAttach(c *C) {
	if err := s.Attach(c); err != nil {
		panic(err)
	}
}

// Accept dispatches the value that embeds s to its slot of v.
// It panics if the mixin was never attached.
func (s *Self[L, C]) Accept(v Abstract[L]) {
	if s.at == 0 {
		unattached(reflect.TypeFor[C]())
	}
	v.VisitAt(s.index, s.owner())
}

// owner steps back from s to the start of the C that contains it.
func (s *Self[L, C]) owner() *C {
	return (*C)(unsafe.Add(unsafe.Pointer(s), -int(s.at-1)))
}

type bound[L List, C any] struct {
	c     *C
	index int
}

func (b bound[L, C]) Accept(v Abstract[L]) { v.VisitAt(b.index, b.c) }

// Bind returns c as a Visitable of L without requiring C to embed [Self].
// It fails with [ErrNotInRegistry] if C is not registered in L.
func Bind[L List, C any](c *C) (Visitable[L], error) {
	i, err := IndexOf[C, L]()
	if err != nil {
		return nil, err
	}
	return bound[L, C]{c: c, index: i}, nil
}
