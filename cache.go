// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package visit

import (
	"reflect"
	"sync"
)

// Method tables for callables handed to Generic, keyed by callable type.
// A table is computed once per type and shared read-only afterwards;
// visitors built from it hold typed slots and never consult the cache.

var methodTables sync.Map // reflect.Type -> *methodTable

// selfCandidate marks the callable itself, a func(*T), as a handler.
const selfCandidate = -1

// methodTable maps a parameter type *T to the candidates that accept it:
// method indices of the callable type, or selfCandidate. Candidates taking
// Erased are kept apart in anyParam.
type methodTable struct {
	byParam  map[reflect.Type][]int
	anyParam []int
}

var erasedType = reflect.TypeFor[Erased]()

func methodTableOf(ft reflect.Type) *methodTable {
	if mt, ok := methodTables.Load(ft); ok {
		return mt.(*methodTable)
	}
	mt, _ := methodTables.LoadOrStore(ft, newMethodTable(ft))
	return mt.(*methodTable)
}

func newMethodTable(ft reflect.Type) *methodTable {
	mt := &methodTable{byParam: make(map[reflect.Type][]int)}
	if ft.Kind() == reflect.Func {
		mt.add(ft, 0, selfCandidate)
	}
	for k := range ft.NumMethod() {
		// Method types carry the receiver as their first parameter.
		mt.add(ft.Method(k).Type, 1, k)
	}
	return mt
}

func (mt *methodTable) add(ft reflect.Type, skip, k int) {
	switch {
	case isHandlerSignature(ft, skip):
		p := ft.In(skip)
		mt.byParam[p] = append(mt.byParam[p], k)
	case isErasedSignature(ft, skip):
		mt.anyParam = append(mt.anyParam, k)
	}
}

// isHandlerSignature reports whether ft is func(..., *T) with exactly one
// parameter after skip and no results.
func isHandlerSignature(ft reflect.Type, skip int) bool {
	return ft.NumIn() == skip+1 &&
		ft.NumOut() == 0 &&
		!ft.IsVariadic() &&
		ft.In(skip).Kind() == reflect.Pointer
}

// isErasedSignature reports whether ft is func(..., Erased) with exactly
// one parameter after skip and no results.
func isErasedSignature(ft reflect.Type, skip int) bool {
	return ft.NumIn() == skip+1 &&
		ft.NumOut() == 0 &&
		!ft.IsVariadic() &&
		ft.In(skip) == erasedType
}

// candidates returns the handlers for *t. Typed candidates take precedence
// over those taking Erased; erased reports which kind was returned.
func (mt *methodTable) candidates(t reflect.Type) (cands []int, erased bool) {
	if cands = mt.byParam[reflect.PointerTo(t)]; len(cands) > 0 {
		return cands, false
	}
	return mt.anyParam, len(mt.anyParam) > 0
}
