// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shapes is a worked example of both dispatch styles.
//
// The Shape registry is generated by visitgen (see visit_gen.go): the
// compiler rejects a visitor that misses a shape. The Round registry in
// round.go is built at run time with the visit mixin and shows how a type
// that embeds a visitable base overrides its acceptance.
package shapes

import "math"

//go:generate go run code.hybscloud.com/visit/cmd/visitgen generate --name Shape --types Circle,Square,Triangle

// Circle is a circle of radius R.
type Circle struct{ R float64 }

// Square is a square of side Side.
type Square struct{ Side float64 }

// Triangle is a triangle given by its side lengths.
type Triangle struct{ A, B, C float64 }

// Area is a ShapeVisitor that sums the areas of visited shapes.
type Area struct{ Total float64 }

func (a *Area) VisitCircle(c *Circle) { a.Total += math.Pi * c.R * c.R }

func (a *Area) VisitSquare(s *Square) { a.Total += s.Side * s.Side }

// VisitTriangle uses Heron's formula.
func (a *Area) VisitTriangle(t *Triangle) {
	s := (t.A + t.B + t.C) / 2
	a.Total += math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}

// TotalArea returns the summed area of shapes.
func TotalArea(shapes ...ShapeVisitable) float64 {
	var a Area
	for _, s := range shapes {
		s.AcceptShape(&a)
	}
	return a.Total
}

// Perimeter returns the perimeter of s.
func Perimeter(s ShapeVisitable) float64 {
	var p float64
	s.AcceptShape(ShapeFuncs{
		Circle:   func(c *Circle) { p = 2 * math.Pi * c.R },
		Square:   func(s *Square) { p = 4 * s.Side },
		Triangle: func(t *Triangle) { p = t.A + t.B + t.C },
	})
	return p
}
