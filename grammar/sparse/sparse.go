/*
Package sparse implements a small sparse matrix of integer pairs, used for
parser selection tables. Every entry holds a primary value and, if a second
value has been added for the same position, a conflicting value.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by (row, column) for binary search.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// IntMatrix is a sparse matrix of int32 pairs. Construct with
//
//     M := NewIntMatrix(8, 40, sparse.DefaultNullValue)
//
// Then
//
//     M.Add(2, 3, 4711)          // first value, no conflict
//     v := M.Value(2, 3)         // returns 4711
//     M.Add(2, 3, 123)           // second value, returns true (conflict)
//     a, b := M.Values(2, 3)     // returns 4711, 123
//     v = M.Value(7, 7)          // returns the null-value
//
type IntMatrix struct {
	values  []triplet // sorted by (row, col)
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	a, b     int32
}

// NewIntMatrix creates a matrix of size m x n with a given null-value.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int { return m.rowcnt }

// N returns the column count.
func (m *IntMatrix) N() int { return m.colcnt }

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 { return m.nullval }

// ValueCount returns the number of positions set.
func (m *IntMatrix) ValueCount() int { return len(m.values) }

// search returns the index of the first triplet not left of (i,j).
func (m *IntMatrix) search(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		t := m.values[k]
		return t.row > i || t.row == i && t.col >= j
	})
}

func (m *IntMatrix) at(i, j int) (int, bool) {
	k := m.search(i, j)
	return k, k < len(m.values) && m.values[k].row == i && m.values[k].col == j
}

// Value returns the primary value at (i,j), or the null-value.
func (m *IntMatrix) Value(i, j int) int32 {
	if k, ok := m.at(i, j); ok {
		return m.values[k].a
	}
	return m.nullval
}

// Values returns both values at (i,j). Unset values are the null-value.
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, ok := m.at(i, j); ok {
		return m.values[k].a, m.values[k].b
	}
	return m.nullval, m.nullval
}

// Add stores value at (i,j). If a different value is already present, value
// becomes the entry's second value and Add reports a conflict. Adding a value
// which is already present is a no-op.
func (m *IntMatrix) Add(i, j int, value int32) (conflict bool) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Add() index (%d,%d) out of range", i, j))
	}
	k, ok := m.at(i, j)
	if ok {
		t := &m.values[k]
		if t.a == value || t.b == value {
			return t.b != m.nullval
		}
		t.b = value // overwrite a previous conflicting value
		return true
	}
	m.values = append(m.values, triplet{})
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = triplet{row: i, col: j, a: value, b: m.nullval}
	return false
}

// Each calls f for every position set, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.a, t.b)
	}
}
