// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Generic adapts the callable f into a visitor of L, so that per-type logic
// can be written without building cases by hand.
//
// For each registered type T, the handler is the one method of f whose
// signature is func(*T), or f itself when f is a func(*T). Method names are
// irrelevant; only the parameter type selects. Pointer-receiver methods are
// visible only when f is a pointer. A func(Erased) handles every type and
// is equivalent to [Func]. A method taking Erased, such as Visit(any),
// handles every type that no typed method handles.
//
//	type printer struct{ w io.Writer }
//	func (p printer) Circle(c *Circle) { fmt.Fprintln(p.w, "circle", c.R) }
//	func (p printer) Square(s *Square) { fmt.Fprintln(p.w, "square", s.Side) }
//
//	v, err := visit.Generic[Shapes](printer{os.Stdout})
//
// Generic fails with [ErrMissingHandler] naming every type f cannot handle,
// and with [ErrAmbiguousHandler] when f has more than one candidate for a type.
func Generic[L List](f any) (*Visitor[L], error) {
	if f == nil {
		return nil, errors.Wrap(ErrMissingHandler, "nil callable")
	}
	if u, ok := f.(func(Erased)); ok {
		return Func[L](u), nil
	}

	rv := reflect.ValueOf(f)
	mt := methodTableOf(rv.Type())
	handlers := make(map[int]any, Length[L]())
	for i, t := range Types[L]() {
		cands, erased := mt.candidates(t)
		switch len(cands) {
		case 0:
			continue
		case 1:
		default:
			return nil, errors.WithDetailf(
				errors.Wrapf(ErrAmbiguousHandler, "%v has %d handlers for *%v", rv.Type(), len(cands), t),
				"candidates: %s", candidateNames(rv.Type(), cands),
			)
		}
		handlers[i] = handlerValue(rv, cands[0], t, erased)
	}
	return build[L](func(i int, _ reflect.Type) any { return handlers[i] })
}

// MustGeneric is like [Generic] but panics on error.
func MustGeneric[L List](f any) *Visitor[L] {
	v, err := Generic[L](f)
	if err != nil {
		panic(err)
	}
	return v
}

// Func builds a visitor of L whose every slot calls f with the visited
// value. It panics if f is nil.
func Func[L List](f func(Erased)) *Visitor[L] {
	if f == nil {
		panic("visit: nil handler")
	}
	v, _ := build[L](func(int, reflect.Type) any { return f })
	return v
}

// handlerValue returns candidate k of rv as an unnamed func(*T), or
// func(Erased) when erased, the forms bindSlot expects.
func handlerValue(rv reflect.Value, k int, t reflect.Type, erased bool) any {
	in := reflect.PointerTo(t)
	if erased {
		in = erasedType
	}
	want := reflect.FuncOf([]reflect.Type{in}, nil, false)
	if k == selfCandidate {
		return rv.Convert(want).Interface()
	}
	return rv.Method(k).Interface()
}

func candidateNames(ft reflect.Type, cands []int) []string {
	names := make([]string, len(cands))
	for i, k := range cands {
		if k == selfCandidate {
			names[i] = ft.String()
			continue
		}
		names[i] = ft.Method(k).Name
	}
	return names
}
