// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit_test

import (
	"code.hybscloud.com/visit"
)

// Test registry: ABC = {A, B, C}. X is never registered.

type A struct{ N int }
type B struct{ S string }
type C struct{ F float64 }
type X struct{}

type ABC = visit.List3[A, B, C]

func (a *A) Accept(v visit.Abstract[ABC]) { visit.Accept(a, v) }
func (b *B) Accept(v visit.Abstract[ABC]) { visit.Accept(b, v) }
func (c *C) Accept(v visit.Abstract[ABC]) { visit.Accept(c, v) }

// recorder logs the name of every type it visits and the last value seen.
type recorder struct {
	names []string
	last  any
}

func (r *recorder) A(a *A) { r.names = append(r.names, "A"); r.last = a }
func (r *recorder) B(b *B) { r.names = append(r.names, "B"); r.last = b }
func (r *recorder) C(c *C) { r.names = append(r.names, "C"); r.last = c }
