// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/visit"
)

// onlyB is a hand-written single-method visitor.
type onlyB struct{ seen []string }

func (o *onlyB) Visit(b *B) { o.seen = append(o.seen, b.S) }

func TestNewFromCases(t *testing.T) {
	var got []string
	b := &onlyB{}
	v, err := visit.New[ABC](
		visit.On(func(c *C) { got = append(got, "C") }),
		visit.Method[B](b),
		visit.On(func(a *A) { got = append(got, "A") }),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	(&A{}).Accept(v)
	(&B{S: "hello"}).Accept(v)
	(&C{}).Accept(v)

	assert.Equal(t, []string{"A", "C"}, got)
	assert.Equal(t, []string{"hello"}, b.seen)
}

func TestNewMissingHandler(t *testing.T) {
	_, err := visit.New[ABC](visit.On(func(*A) {}))
	require.ErrorIs(t, err, visit.ErrMissingHandler)
	assert.Contains(t, err.Error(), "visit_test.B")
	assert.Contains(t, err.Error(), "visit_test.C")
}

func TestNewNotInRegistry(t *testing.T) {
	_, err := visit.New[visit.List1[A]](
		visit.On(func(*A) {}),
		visit.On(func(*X) {}),
	)
	assert.ErrorIs(t, err, visit.ErrNotInRegistry)
}

func TestNewAmbiguous(t *testing.T) {
	_, err := visit.New[visit.List1[A]](
		visit.On(func(*A) {}),
		visit.On(func(*A) {}),
	)
	assert.ErrorIs(t, err, visit.ErrAmbiguousHandler)
}

func TestNewZeroCase(t *testing.T) {
	_, err := visit.New[visit.List1[A]](visit.Case{})
	assert.ErrorIs(t, err, visit.ErrMissingHandler)
}

func TestNewNilFunc(t *testing.T) {
	var f func(*A)
	_, err := visit.New[visit.List1[A]](visit.On(f))
	assert.ErrorIs(t, err, visit.ErrMissingHandler)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { visit.MustNew[ABC]() })
	assert.NotPanics(t, func() {
		visit.MustNew[visit.List1[A]](visit.On(func(*A) {}))
	})
}

func TestFuncs(t *testing.T) {
	var sum int
	v := visit.Funcs3(
		func(a *A) { sum += a.N },
		func(b *B) { sum += len(b.S) },
		func(c *C) { sum += int(c.F) },
	)
	// Funcs3 infers exactly the ABC registry.
	var _ visit.Abstract[ABC] = v

	for _, x := range []visit.Visitable[ABC]{&A{N: 1}, &B{S: "ab"}, &C{F: 4}} {
		x.Accept(v)
	}
	assert.Equal(t, 7, sum)
}

func TestFuncsArities(t *testing.T) {
	n := 0
	inc := func() { n++ }
	assert.Equal(t, 1, visit.Funcs1(func(*A) { inc() }).Len())
	assert.Equal(t, 2, visit.Funcs2(func(*A) { inc() }, func(*B) { inc() }).Len())
	assert.Equal(t, 4, visit.Funcs4(
		func(*A) {}, func(*B) {}, func(*C) {}, func(*X) {},
	).Len())
	assert.Equal(t, 5, visit.Funcs5(
		func(*A) {}, func(*B) {}, func(*C) {}, func(*X) {}, func(*int) {},
	).Len())
	v6 := visit.Funcs6(
		func(*A) {}, func(*B) {}, func(*C) {}, func(*X) {}, func(*int) {}, func(s *string) { *s = "seen" },
	)
	s := ""
	visit.Dispatch[string, visit.List6[A, B, C, X, int, string]](v6, &s)
	assert.Equal(t, "seen", s)
	assert.Equal(t, 0, n)
}

func TestFuncsNilPanics(t *testing.T) {
	assert.Panics(t, func() { visit.Funcs2(func(*A) {}, (func(*B))(nil)) })
}

func TestDispatch(t *testing.T) {
	r := &recorder{}
	v := visit.MustGeneric[ABC](r)
	c := &C{F: 1.5}
	visit.Dispatch[C, ABC](v, c)
	assert.Equal(t, []string{"C"}, r.names)
	assert.Same(t, c, r.last)

	assert.Panics(t, func() { visit.Dispatch[X, ABC](v, &X{}) })
}

func TestVisitAtMismatchedValue(t *testing.T) {
	v := visit.Funcs2(func(*A) {}, func(*B) {})
	assert.PanicsWithValue(t, "visit: slot for *visit_test.A received *visit_test.B", func() {
		v.VisitAt(0, &B{})
	})
}
