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
package poly

import (
	"fmt"
	"slices"

	"github.com/consensys/go-polymat/pkg/matrix"
	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/util/math"
)

// Eval substitutes a given value for the variable at a given (0-based) slot,
// returning the resulting polynomial.  The dimension is unchanged, with the
// substituted slot having exponent zero in every term of the result.  An error
// is returned if the index is not less than the dimension.
func (p *Polynomial[T]) Eval(value T, index uint) (*Polynomial[T], error) {
	return p.substitute(index, func(n uint) *Polynomial[T] {
		return Constant(math.Pow(value, n))
	})
}

// Substitute replaces the variable at a given (0-based) slot with a given
// polynomial, re-expanding the result.  The result has the same dimension as
// this polynomial, unless the value has a larger dimension.  An error is
// returned if the index is not less than the dimension.
func (p *Polynomial[T]) Substitute(value *Polynomial[T], index uint) (*Polynomial[T], error) {
	return p.substitute(index, func(n uint) *Polynomial[T] {
		return math.Pow(value, n)
	})
}

// EvalAll evaluates this polynomial at a given point, which must supply exactly
// one value for each variable slot.
func (p *Polynomial[T]) EvalAll(values ...T) (T, error) {
	var (
		res = p
		err error
	)
	//
	if uint(len(values)) != p.Dimension() {
		return ring.Zero[T](), fmt.Errorf("polynomial has %d dimensions, but %d values given: %w",
			p.Dimension(), len(values), ErrIndexOutOfRange)
	}
	//
	for i, v := range values {
		if res, err = res.Eval(v, uint(i)); err != nil {
			return ring.Zero[T](), err
		}
	}
	//
	return res.Const(), nil
}

// EvalMatrix evaluates a univariate polynomial at a given square matrix, such
// that each term c*x^n contributes c*M^n.  An error is returned if this
// polynomial has more than one dimension.
func (p *Polynomial[T]) EvalMatrix(value *matrix.SquareMatrix[T]) (*matrix.SquareMatrix[T], error) {
	if p.Dimension() > 1 {
		return nil, fmt.Errorf("polynomial has %d dimensions: %w", p.Dimension(), ErrNotUnivariate)
	}
	//
	res := matrix.NewSquareMatrix[T](value.Order())
	//
	for _, term := range p.terms {
		res.AddInPlace(matrix.Pow(value, term.exponents[0]).ScaleInPlace(term.coefficient))
	}
	//
	return res, nil
}

// Substitution algorithm shared by Eval and Substitute.  Each term is split into
// the power of the substituted variable and the remainder, with the remainder
// then multiplied by the corresponding power of the value.  Powers are cached
// since many terms typically share them.
func (p *Polynomial[T]) substitute(index uint, power func(uint) *Polynomial[T]) (*Polynomial[T], error) {
	var (
		dim    = p.Dimension()
		res    = &Polynomial[T]{dimension: dim}
		powers = make(map[uint]*Polynomial[T])
	)
	//
	if index >= dim {
		return nil, fmt.Errorf("cannot substitute variable %d, polynomial has %d dimensions: %w",
			index, dim, ErrIndexOutOfRange)
	}
	//
	for _, term := range p.terms {
		var (
			key = slices.Clone(term.exponents)
			n   = key[index]
		)
		//
		key[index] = 0
		//
		vn, ok := powers[n]
		if !ok {
			vn = power(n)
			powers[n] = vn
		}
		//
		remainder := &Polynomial[T]{dim, []Term[T]{{key, term.coefficient}}}
		res.AddInPlace(remainder.Mul(vn))
	}
	//
	return res, nil
}
