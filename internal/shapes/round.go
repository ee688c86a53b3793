// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/cockroachdb/errors"

	"code.hybscloud.com/visit"
)

// Round is the run-time registry of round shapes. It is a struct rather
// than an alias because Ring embeds a mixin over it.
type Round struct {
	visit.Cons[Circle, visit.Cons[Ring, visit.Nil]]
}

// Accept makes *Circle a visit.Visitable of Round.
func (c *Circle) Accept(v visit.Abstract[Round]) { visit.Accept(c, v) }

// Ring is an annulus. It embeds Circle for its outer radius, and therefore
// inherits Circle's AcceptShape: Shape visitors see a Ring as a Circle.
// Round visitors see a Ring, since Ring overrides Accept with its own
// mixin.
type Ring struct {
	Circle
	visit.Self[Round, Ring]
	Inner float64
}

// NewRing returns an attached Ring.
func NewRing(outer, inner float64) *Ring {
	r := &Ring{Circle: Circle{R: outer}, Inner: inner}
	r.MustAttach(r)
	return r
}

// Accept dispatches r to the Ring slot of v.
func (r *Ring) Accept(v visit.Abstract[Round]) { r.Self.Accept(v) }

// RoundArea returns the summed area of round shapes. The hole of a Ring is
// excluded.
func RoundArea(xs ...visit.Visitable[Round]) float64 {
	var total float64
	v := visit.MustNew[Round](
		visit.On(func(c *Circle) { total += math.Pi * c.R * c.R }),
		visit.On(func(r *Ring) { total += math.Pi * (r.R*r.R - r.Inner*r.Inner) }),
	)
	for _, x := range xs {
		x.Accept(v)
	}
	return total
}

// Runtime returns s as a visit.Visitable of ShapeTypes, for use with
// visitors built at run time such as ShapeRuntime or visit.Generic.
// Types that merely embed a shape, such as Ring, are rejected.
func Runtime(s ShapeVisitable) (visit.Visitable[ShapeTypes], error) {
	switch s := s.(type) {
	case *Circle:
		return visit.Bind[ShapeTypes](s)
	case *Square:
		return visit.Bind[ShapeTypes](s)
	case *Triangle:
		return visit.Bind[ShapeTypes](s)
	}
	return nil, errors.Wrapf(visit.ErrNotInRegistry, "%T", s)
}
