// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package matrix

import (
	"strings"

	"github.com/consensys/go-polymat/pkg/ring"
)

// SquareMatrix is a dense matrix of order n over some coefficient ring.  Cells
// are stored in row-major order.  Operations combining two matrices require
// them to have the same order; this is not checked.
type SquareMatrix[T ring.Ring[T]] struct {
	order uint
	cells [][]T
}

// NewSquareMatrix constructs the zero matrix of a given order.
func NewSquareMatrix[T ring.Ring[T]](order uint) *SquareMatrix[T] {
	var (
		zero  = ring.Zero[T]()
		cells = make([][]T, order)
	)
	//
	for i := range cells {
		cells[i] = make([]T, order)
		for j := range cells[i] {
			cells[i][j] = zero
		}
	}
	//
	return &SquareMatrix[T]{order, cells}
}

// NewScalarMatrix constructs the matrix value*I of a given order.
func NewScalarMatrix[T ring.Ring[T]](order uint, value T) *SquareMatrix[T] {
	m := NewSquareMatrix[T](order)
	//
	for i := uint(0); i < order; i++ {
		m.cells[i][i] = value
	}
	//
	return m
}

// NewIdentity constructs the identity matrix of a given order.
func NewIdentity[T ring.Ring[T]](order uint) *SquareMatrix[T] {
	return NewScalarMatrix(order, ring.One[T]())
}

// NewSquareMatrixFromTable constructs a matrix from a given table of rows.  The
// table is copied, and must be square.
func NewSquareMatrixFromTable[T ring.Ring[T]](rows [][]T) *SquareMatrix[T] {
	var (
		order = uint(len(rows))
		cells = make([][]T, order)
	)
	//
	for i, row := range rows {
		if uint(len(row)) != order {
			panic("matrix table is not square")
		}
		//
		cells[i] = make([]T, order)
		copy(cells[i], row)
	}
	//
	return &SquareMatrix[T]{order, cells}
}

// Convert a matrix over one ring into a matrix over another, using a given
// function to map each cell.
func Convert[T ring.Ring[T], U ring.Ring[U]](m *SquareMatrix[U], fn func(U) T) *SquareMatrix[T] {
	res := NewSquareMatrix[T](m.order)
	//
	for i := range m.cells {
		for j, cell := range m.cells[i] {
			res.cells[i][j] = fn(cell)
		}
	}
	//
	return res
}

// Order returns the number of rows (equivalently columns) of this matrix.
func (m *SquareMatrix[T]) Order() uint {
	return m.order
}

// Get returns the cell at a given row and column.
func (m *SquareMatrix[T]) Get(row, col uint) T {
	return m.cells[row][col]
}

// Cells returns a copy of the table underlying this matrix.
func (m *SquareMatrix[T]) Cells() [][]T {
	table := make([][]T, m.order)
	//
	for i, row := range m.cells {
		table[i] = make([]T, m.order)
		copy(table[i], row)
	}
	//
	return table
}

// Clone returns a deep copy of this matrix.
func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	return &SquareMatrix[T]{m.order, m.Cells()}
}

// Equal determines whether two matrices have the same order and agree on every
// cell.
func (m *SquareMatrix[T]) Equal(other *SquareMatrix[T]) bool {
	if m.order != other.order {
		return false
	}
	//
	for i := range m.cells {
		for j := range m.cells[i] {
			if !ring.Equal(m.cells[i][j], other.cells[i][j]) {
				return false
			}
		}
	}
	//
	return true
}

// One returns the identity matrix with the same order as this matrix.
func (m *SquareMatrix[T]) One() *SquareMatrix[T] {
	return NewIdentity[T](m.order)
}

// Add returns m + other
func (m *SquareMatrix[T]) Add(other *SquareMatrix[T]) *SquareMatrix[T] {
	return m.Clone().AddInPlace(other)
}

// AddInPlace updates this matrix with m + other, returning m.
func (m *SquareMatrix[T]) AddInPlace(other *SquareMatrix[T]) *SquareMatrix[T] {
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = m.cells[i][j].Add(other.cells[i][j])
		}
	}
	//
	return m
}

// Sub returns m - other
func (m *SquareMatrix[T]) Sub(other *SquareMatrix[T]) *SquareMatrix[T] {
	return m.Clone().SubInPlace(other)
}

// SubInPlace updates this matrix with m - other, returning m.
func (m *SquareMatrix[T]) SubInPlace(other *SquareMatrix[T]) *SquareMatrix[T] {
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = m.cells[i][j].Sub(other.cells[i][j])
		}
	}
	//
	return m
}

// Mul returns the matrix product m * other.
func (m *SquareMatrix[T]) Mul(other *SquareMatrix[T]) *SquareMatrix[T] {
	res := NewSquareMatrix[T](m.order)
	//
	for k := uint(0); k < m.order; k++ {
		for i := uint(0); i < m.order; i++ {
			mik := m.cells[i][k]
			//
			for j := uint(0); j < m.order; j++ {
				res.cells[i][j] = res.cells[i][j].Add(mik.Mul(other.cells[k][j]))
			}
		}
	}
	//
	return res
}

// MulInPlace updates this matrix with m * other, returning m.
func (m *SquareMatrix[T]) MulInPlace(other *SquareMatrix[T]) *SquareMatrix[T] {
	m.cells = m.Mul(other).cells
	//
	return m
}

// Scale returns the matrix obtained by multiplying every cell by a given scalar.
func (m *SquareMatrix[T]) Scale(scalar T) *SquareMatrix[T] {
	return m.Clone().ScaleInPlace(scalar)
}

// ScaleInPlace multiplies every cell of this matrix by a given scalar,
// returning m.
func (m *SquareMatrix[T]) ScaleInPlace(scalar T) *SquareMatrix[T] {
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = m.cells[i][j].Mul(scalar)
		}
	}
	//
	return m
}

// AddScalar returns m + scalar*I
func (m *SquareMatrix[T]) AddScalar(scalar T) *SquareMatrix[T] {
	return m.Clone().AddScalarInPlace(scalar)
}

// AddScalarInPlace updates this matrix with m + scalar*I, returning m.
func (m *SquareMatrix[T]) AddScalarInPlace(scalar T) *SquareMatrix[T] {
	return m.AddInPlace(NewScalarMatrix(m.order, scalar))
}

// SubScalar returns m - scalar*I
func (m *SquareMatrix[T]) SubScalar(scalar T) *SquareMatrix[T] {
	return m.Clone().SubScalarInPlace(scalar)
}

// SubScalarInPlace updates this matrix with m - scalar*I, returning m.
func (m *SquareMatrix[T]) SubScalarInPlace(scalar T) *SquareMatrix[T] {
	return m.SubInPlace(NewScalarMatrix(m.order, scalar))
}

// String renders this matrix one row per line, with cells separated by a
// single space.
func (m *SquareMatrix[T]) String() string {
	var builder strings.Builder
	//
	for _, row := range m.cells {
		for j, cell := range row {
			if j != 0 {
				builder.WriteString(" ")
			}
			//
			builder.WriteString(cell.String())
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
