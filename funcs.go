// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import "reflect"

// Fixed-arity visitor constructors. The registry is inferred from the
// handler types, so a missing or mistyped handler is a compile error rather
// than a construction error. A nil handler panics.

func typed[T any](f func(*T)) slot {
	s := bindSlot[T](f)
	if s == nil {
		panic("visit: nil handler for " + reflect.TypeFor[T]().String())
	}
	return s
}

// Funcs1 builds the visitor of List1[A].
func Funcs1[A any](fa func(*A)) *Visitor[List1[A]] {
	return &Visitor[List1[A]]{slots: []slot{typed(fa)}}
}

// Funcs2 builds the visitor of List2[A, B].
func Funcs2[A, B any](fa func(*A), fb func(*B)) *Visitor[List2[A, B]] {
	return &Visitor[List2[A, B]]{slots: []slot{typed(fa), typed(fb)}}
}

// Funcs3 builds the visitor of List3[A, B, C].
func Funcs3[A, B, C any](fa func(*A), fb func(*B), fc func(*C)) *Visitor[List3[A, B, C]] {
	return &Visitor[List3[A, B, C]]{slots: []slot{typed(fa), typed(fb), typed(fc)}}
}

// Funcs4 builds the visitor of List4[A, B, C, D].
func Funcs4[A, B, C, D any](fa func(*A), fb func(*B), fc func(*C), fd func(*D)) *Visitor[List4[A, B, C, D]] {
	return &Visitor[List4[A, B, C, D]]{slots: []slot{typed(fa), typed(fb), typed(fc), typed(fd)}}
}

// Funcs5 builds the visitor of List5[A, B, C, D, E].
func Funcs5[A, B, C, D, E any](
	fa func(*A), fb func(*B), fc func(*C), fd func(*D), fe func(*E),
) *Visitor[List5[A, B, C, D, E]] {
	return &Visitor[List5[A, B, C, D, E]]{slots: []slot{
		typed(fa), typed(fb), typed(fc), typed(fd), typed(fe),
	}}
}

// Funcs6 builds the visitor of List6[A, B, C, D, E, F].
func Funcs6[A, B, C, D, E, F any](
	fa func(*A), fb func(*B), fc func(*C), fd func(*D), fe func(*E), ff func(*F),
) *Visitor[List6[A, B, C, D, E, F]] {
	return &Visitor[List6[A, B, C, D, E, F]]{slots: []slot{
		typed(fa), typed(fb), typed(fc), typed(fd), typed(fe), typed(ff),
	}}
}
