// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/visit"
)

var (
	_ ShapeVisitor   = (*Area)(nil)
	_ ShapeVisitor   = ShapeFuncs{}
	_ ShapeVisitable = (*Circle)(nil)
	_ ShapeVisitable = (*Ring)(nil)

	_ visit.Visitable[Round] = (*Circle)(nil)
	_ visit.Visitable[Round] = (*Ring)(nil)
)

func TestShapeTypes(t *testing.T) {
	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[Circle](),
		reflect.TypeFor[Square](),
		reflect.TypeFor[Triangle](),
	}, visit.Types[ShapeTypes]())
	assert.True(t, visit.Has[Square, ShapeTypes]())
	assert.False(t, visit.Has[Ring, ShapeTypes]())
}

func TestTotalArea(t *testing.T) {
	got := TotalArea(&Circle{R: 1}, &Square{Side: 2}, &Triangle{A: 3, B: 4, C: 5})
	assert.InDelta(t, math.Pi+4+6, got, 1e-9)
	assert.Zero(t, TotalArea())
}

func TestPerimeter(t *testing.T) {
	assert.InDelta(t, 2*math.Pi, Perimeter(&Circle{R: 1}), 1e-9)
	assert.InDelta(t, 8.0, Perimeter(&Square{Side: 2}), 1e-9)
	assert.InDelta(t, 12.0, Perimeter(&Triangle{A: 3, B: 4, C: 5}), 1e-9)
}

func TestShapeRuntime(t *testing.T) {
	var a Area
	v := ShapeRuntime(&a)
	assert.Equal(t, 3, v.Len())

	for _, s := range []ShapeVisitable{&Circle{R: 1}, &Square{Side: 2}, &Triangle{A: 3, B: 4, C: 5}} {
		x, err := Runtime(s)
		require.NoError(t, err)
		x.Accept(v)
	}
	assert.InDelta(t, math.Pi+4+6, a.Total, 1e-9)

	visit.Dispatch[Square, ShapeTypes](v, &Square{Side: 1})
	assert.InDelta(t, math.Pi+4+6+1, a.Total, 1e-9)
}

func TestRuntimeRejectsEmbedding(t *testing.T) {
	_, err := Runtime(NewRing(2, 1))
	assert.ErrorIs(t, err, visit.ErrNotInRegistry)
}

func TestGenericOverGeneratedVisitor(t *testing.T) {
	var a Area
	v, err := visit.Generic[ShapeTypes](&a)
	require.NoError(t, err)

	visit.Dispatch[Circle, ShapeTypes](v, &Circle{R: 2})
	visit.Dispatch[Triangle, ShapeTypes](v, &Triangle{A: 3, B: 4, C: 5})
	assert.InDelta(t, 4*math.Pi+6, a.Total, 1e-9)
}

func TestFuncRecordsOrder(t *testing.T) {
	var seen []string
	v := visit.Func[ShapeTypes](func(x visit.Erased) {
		seen = append(seen, reflect.TypeOf(x).Elem().Name())
	})
	for _, s := range []ShapeVisitable{&Circle{}, &Square{}, &Circle{}} {
		x, err := Runtime(s)
		require.NoError(t, err)
		x.Accept(v)
	}
	assert.Equal(t, []string{"Circle", "Square", "Circle"}, seen)
}

func TestRing(t *testing.T) {
	r := NewRing(2, 1)

	// Shape visitors see the embedded Circle.
	var kinds []string
	r.AcceptShape(ShapeFuncs{
		Circle:   func(*Circle) { kinds = append(kinds, "circle") },
		Square:   func(*Square) { kinds = append(kinds, "square") },
		Triangle: func(*Triangle) { kinds = append(kinds, "triangle") },
	})
	assert.Equal(t, []string{"circle"}, kinds)
	assert.InDelta(t, 4*math.Pi, TotalArea(r), 1e-9)

	// Round visitors see the Ring itself.
	assert.InDelta(t, 3*math.Pi, RoundArea(r), 1e-9)
	assert.InDelta(t, 4*math.Pi, RoundArea(r, &Circle{R: 1}), 1e-9)
}

func TestRingCopy(t *testing.T) {
	orig := NewRing(2, 1)
	cp := *orig
	cp.Inner = 1.5

	var seen *Ring
	v := visit.MustNew[Round](visit.On(func(*Circle) {}), visit.On(func(r *Ring) { seen = r }))
	cp.Accept(v)
	assert.Same(t, &cp, seen)
	assert.InDelta(t, math.Pi*(4-2.25), RoundArea(&cp), 1e-9)
	assert.InDelta(t, 3*math.Pi, RoundArea(orig), 1e-9)
}

func TestUnattachedRingPanics(t *testing.T) {
	r := &Ring{Circle: Circle{R: 1}}
	assert.Panics(t, func() { RoundArea(r) })
}
