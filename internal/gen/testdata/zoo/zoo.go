// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zoo is a fixture for registry resolution.
package zoo

type Cat struct{ Lives int }

type Dog struct{ Name string }

type Fish int

type Animal interface{ Sound() string }

type Cage[T any] struct{ Occupant T }

type Pet = Dog

type CatPtr *Cat

const Legs = 4
