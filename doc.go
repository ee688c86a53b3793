// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package visit provides double dispatch over a closed, declared set of
// concrete types, without hand-written dispatch code.
//
// A registry of types is declared once, as a type. Values of those types
// are made visitable, and visitors are supplied as per-type handlers or as
// a single callable; the package generates the dispatch table between them.
//
// # Design Philosophy
//
// visit provides:
//   - Registries as types: membership and positions are fixed at declaration
//   - Explicit type-indexed slots instead of overloading, one slot per type
//   - Construction-time completeness checks, and no failure modes afterwards
//   - Allocation-free dispatch through typed closures, with no reflection on
//     the call path
//
// Generated code (see cmd/visitgen) moves the completeness checks from
// construction time to compile time.
//
// # Type Registry
//
// A registry is a type-level list built from [Nil] and [Cons]:
//
//	type Shapes = visit.Cons[Circle, visit.Cons[Square, visit.Nil]]
//	type Shapes = visit.List2[Circle, Square] // same type
//
// A registry whose members embed [Self] refers back to itself through
// them. Declare it as a struct embedding the list instead of an alias:
//
//	type Shapes struct {
//		visit.Cons[Circle, visit.Cons[Square, visit.Nil]]
//	}
//
// Queries are generic functions instantiated with the registry:
//
//   - [Length]: Number of registered types
//   - [Has], [AtHead]: Membership tests
//   - [IndexOf], [MustIndexOf]: Position of a type ([ErrNotInRegistry] if absent)
//   - [TypeAt], [ValidIndex], [SameTypeAt]: Positional access ([ErrIndexOutOfRange])
//   - [Types], [TypesOf]: All types in order
//   - [FromTuple], [StructTypes]: Registries from tuples and struct fields
//   - [Duplicates], [HasRepeats]: Repeated-type query
//
// Registries are expected to be duplicate-free. A repeated type is not
// rejected; every lookup resolves to its first occurrence.
//
// # Multi-Method Interface
//
// [Abstract] is the visitor contract of a registry: Len slots, slot i
// handling *T for the i-th type T. [Visitor] is its table implementation.
//
//   - [New], [MustNew]: Assemble from cases, one per type
//   - [On]: Case from a func(*T)
//   - [Method]: Case from a [Single] (any value with Visit(*T))
//   - [Funcs1] … [Funcs6]: Fixed-arity constructors checked by the compiler
//   - [Dispatch]: Call the slot of a statically known type
//
// # Visitables
//
// [Visitable] is the first-dispatch side. The slot is always chosen from the
// static type the value was made visitable as, never from a runtime tag:
//
//   - [Accept]: One-line body for a hand-written Accept method
//   - [Self]: Embeddable mixin, resolved once by [Self.Attach]; copies
//     dispatch themselves
//   - [Bind]: Wrap a value that cannot embed [Self]
//
// # Generic Adapter
//
// [Generic] turns one callable into a visitor. Handlers are found by
// parameter type among the callable's methods. A func(Erased), or a single
// method taking Erased, handles every type not matched by a typed method.
// [Func] is the infallible form for func(Erased).
//
// # Example
//
//	type Circle struct{ R float64 }
//	type Square struct{ Side float64 }
//	type Shapes = visit.List2[Circle, Square]
//
//	func (c *Circle) Accept(v visit.Abstract[Shapes]) { visit.Accept(c, v) }
//	func (s *Square) Accept(v visit.Abstract[Shapes]) { visit.Accept(s, v) }
//
//	var area float64
//	v := visit.Funcs2(
//		func(c *Circle) { area = math.Pi * c.R * c.R },
//		func(s *Square) { area = s.Side * s.Side },
//	)
//
//	var shape visit.Visitable[Shapes] = &Square{Side: 2}
//	shape.Accept(v)
//	// area == 4
package visit
