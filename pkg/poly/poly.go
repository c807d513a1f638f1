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
	"slices"

	"github.com/consensys/go-polymat/pkg/ring"
)

// Term is a single monomial of a polynomial, together with its coefficient.
type Term[T ring.Ring[T]] struct {
	exponents   Monomial
	coefficient T
}

// Exponents returns (a copy of) the exponent tuple of this term.
func (t Term[T]) Exponents() Monomial {
	return slices.Clone(t.exponents)
}

// Coefficient returns the coefficient of this term.
func (t Term[T]) Coefficient() T {
	return t.coefficient
}

// Polynomial is a sparse multivariate polynomial over a given coefficient ring.
// Terms are keyed by their exponent tuples, and held in ascending
// lexicographic order of those tuples.  Every tuple has length equal to the
// dimension of the polynomial, which is the number of variable slots it
// tracks.  Observe the dimension can exceed the number of variables which
// actually occur.  Terms whose coefficient is zero are retained until the
// polynomial is explicitly pruned.
//
// An uninitialised Polynomial corresponds with zero, and has dimension 1.
type Polynomial[T ring.Ring[T]] struct {
	dimension uint
	terms     []Term[T]
}

// Zero constructs the zero polynomial.
func Zero[T ring.Ring[T]]() *Polynomial[T] {
	return &Polynomial[T]{dimension: 1}
}

// Constant constructs the constant polynomial with a given value.
func Constant[T ring.Ring[T]](value T) *Polynomial[T] {
	return &Polynomial[T]{1, []Term[T]{{Monomial{0}, value}}}
}

// Variable constructs the polynomial consisting of a single variable, where
// variables are numbered from 1.  The resulting polynomial has dimension equal
// to the given index.
func Variable[T ring.Ring[T]](index uint) *Polynomial[T] {
	if index == 0 {
		panic("variables are numbered from 1")
	}
	//
	exponents := make(Monomial, index)
	exponents[index-1] = 1
	//
	return &Polynomial[T]{index, []Term[T]{{exponents, ring.One[T]()}}}
}

// X constructs the polynomial consisting of the first variable.
func X[T ring.Ring[T]]() *Polynomial[T] {
	return Variable[T](1)
}

// Convert a polynomial over one ring into a polynomial over another, using a
// given function to map each coefficient.
func Convert[T ring.Ring[T], U ring.Ring[U]](p *Polynomial[U], fn func(U) T) *Polynomial[T] {
	terms := make([]Term[T], len(p.terms))
	//
	for i, term := range p.terms {
		terms[i] = Term[T]{slices.Clone(term.exponents), fn(term.coefficient)}
	}
	//
	return &Polynomial[T]{p.Dimension(), terms}
}

// AddConverted returns p + q, where the coefficients of q are first mapped onto
// those of p using a given function.
func AddConverted[T ring.Ring[T], U ring.Ring[U]](p *Polynomial[T], q *Polynomial[U], fn func(U) T) *Polynomial[T] {
	return p.Add(Convert(q, fn))
}

// SubConverted returns p - q, where the coefficients of q are first mapped onto
// those of p using a given function.
func SubConverted[T ring.Ring[T], U ring.Ring[U]](p *Polynomial[T], q *Polynomial[U], fn func(U) T) *Polynomial[T] {
	return p.Sub(Convert(q, fn))
}

// MulConverted returns p * q, where the coefficients of q are first mapped onto
// those of p using a given function.
func MulConverted[T ring.Ring[T], U ring.Ring[U]](p *Polynomial[T], q *Polynomial[U], fn func(U) T) *Polynomial[T] {
	return p.Mul(Convert(q, fn))
}

// Dimension returns the number of variable slots in this polynomial.
func (p *Polynomial[T]) Dimension() uint {
	return max(1, p.dimension)
}

// Len returns the number of (stored) terms in this polynomial, including any
// whose coefficient is zero.
func (p *Polynomial[T]) Len() uint {
	return uint(len(p.terms))
}

// Terms returns a snapshot of the terms of this polynomial, in order.
func (p *Polynomial[T]) Terms() []Term[T] {
	terms := make([]Term[T], len(p.terms))
	//
	for i, term := range p.terms {
		terms[i] = Term[T]{slices.Clone(term.exponents), term.coefficient}
	}
	//
	return terms
}

// Coefficient returns the coefficient of the monomial with the given exponents,
// or zero if no such term is stored.
func (p *Polynomial[T]) Coefficient(exponents ...uint) T {
	var (
		dim = p.Dimension()
		key = Monomial(exponents)
	)
	// Exponents for slots beyond the dimension cannot be nonzero.
	if uint(len(key)) > dim && !Monomial(key[dim:]).IsConstant() {
		return ring.Zero[T]()
	}
	//
	if i, ok := p.find(key.Resize(dim)); ok {
		return p.terms[i].coefficient
	}
	//
	return ring.Zero[T]()
}

// Const returns the constant term of this polynomial.
func (p *Polynomial[T]) Const() T {
	return p.Coefficient()
}

// Degree returns the largest total degree of any term with a nonzero
// coefficient.
func (p *Polynomial[T]) Degree() uint {
	var degree uint
	//
	for _, term := range p.terms {
		if !term.coefficient.IsZero() {
			degree = max(degree, term.exponents.Degree())
		}
	}
	//
	return degree
}

// Clone performs a deep copy of this polynomial.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	return &Polynomial[T]{p.Dimension(), p.Terms()}
}

// Equal determines whether two polynomials are equivalent.  Polynomials of
// different dimension can be equal, and terms with zero coefficients are
// ignored.
func (p *Polynomial[T]) Equal(other *Polynomial[T]) bool {
	for _, term := range p.Sub(other).terms {
		if !term.coefficient.IsZero() {
			return false
		}
	}
	//
	return true
}

// One returns the constant polynomial 1.
func (p *Polynomial[T]) One() *Polynomial[T] {
	return Constant(ring.One[T]())
}

// Prune removes all terms whose coefficient is zero.  This does not change the
// value of the polynomial, only its representation.
func (p *Polynomial[T]) Prune() {
	p.terms = slices.DeleteFunc(p.terms, func(t Term[T]) bool {
		return t.coefficient.IsZero()
	})
}

// ============================================================================
// Scalar arithmetic
// ============================================================================

// AddScalar returns p + value.
func (p *Polynomial[T]) AddScalar(value T) *Polynomial[T] {
	return p.Clone().AddScalarInPlace(value)
}

// AddScalarInPlace updates this polynomial with p + value, returning p.
func (p *Polynomial[T]) AddScalarInPlace(value T) *Polynomial[T] {
	p.dimension = p.Dimension()
	p.accumulate(make(Monomial, p.dimension), value, add[T])
	//
	return p
}

// SubScalar returns p - value.
func (p *Polynomial[T]) SubScalar(value T) *Polynomial[T] {
	return p.Clone().SubScalarInPlace(value)
}

// SubScalarInPlace updates this polynomial with p - value, returning p.
func (p *Polynomial[T]) SubScalarInPlace(value T) *Polynomial[T] {
	p.dimension = p.Dimension()
	p.accumulate(make(Monomial, p.dimension), value, sub[T])
	//
	return p
}

// Scale returns p * value.
func (p *Polynomial[T]) Scale(value T) *Polynomial[T] {
	return p.Clone().ScaleInPlace(value)
}

// ScaleInPlace multiplies every coefficient of this polynomial by a given
// value, returning p.  Terms which become zero are retained.
func (p *Polynomial[T]) ScaleInPlace(value T) *Polynomial[T] {
	for i := range p.terms {
		p.terms[i].coefficient = p.terms[i].coefficient.Mul(value)
	}
	//
	return p
}

// ============================================================================
// Polynomial arithmetic
// ============================================================================

// Add returns p + other.  The dimension of the result is the larger of the two
// dimensions.
func (p *Polynomial[T]) Add(other *Polynomial[T]) *Polynomial[T] {
	return p.combine(other, add[T])
}

// AddInPlace updates this polynomial with p + other, returning p.
func (p *Polynomial[T]) AddInPlace(other *Polynomial[T]) *Polynomial[T] {
	return p.set(p.Add(other))
}

// Sub returns p - other.  The dimension of the result is the larger of the two
// dimensions.
func (p *Polynomial[T]) Sub(other *Polynomial[T]) *Polynomial[T] {
	return p.combine(other, sub[T])
}

// SubInPlace updates this polynomial with p - other, returning p.
func (p *Polynomial[T]) SubInPlace(other *Polynomial[T]) *Polynomial[T] {
	return p.set(p.Sub(other))
}

// Mul returns p * other, computed as the full convolution of their terms.  The
// dimension of the result is the larger of the two dimensions.
func (p *Polynomial[T]) Mul(other *Polynomial[T]) *Polynomial[T] {
	res := &Polynomial[T]{dimension: max(p.Dimension(), other.Dimension())}
	//
	for _, ith := range p.terms {
		for _, jth := range other.terms {
			key := ith.exponents.Merge(jth.exponents, res.dimension)
			res.accumulate(key, ith.coefficient.Mul(jth.coefficient), add[T])
		}
	}
	//
	return res
}

// MulInPlace updates this polynomial with p * other, returning p.
func (p *Polynomial[T]) MulInPlace(other *Polynomial[T]) *Polynomial[T] {
	return p.set(p.Mul(other))
}

// Combine the terms of this polynomial with those of another, after both have
// been resized to the larger dimension.  Terms of this polynomial are added
// into the result, whilst those of the other are applied using the given
// operator.
func (p *Polynomial[T]) combine(other *Polynomial[T], op func(T, T) T) *Polynomial[T] {
	res := &Polynomial[T]{dimension: max(p.Dimension(), other.Dimension())}
	//
	for _, term := range p.terms {
		res.accumulate(term.exponents.Resize(res.dimension), term.coefficient, add[T])
	}
	//
	for _, term := range other.terms {
		res.accumulate(term.exponents.Resize(res.dimension), term.coefficient, op)
	}
	//
	return res
}

// Accumulate a value into the term with a given key using a given operator,
// where the term is created (with a zero coefficient) if it does not already
// exist.  The key must have length matching the dimension, and is not copied.
func (p *Polynomial[T]) accumulate(key Monomial, value T, op func(T, T) T) {
	i, ok := p.find(key)
	//
	if ok {
		p.terms[i].coefficient = op(p.terms[i].coefficient, value)
	} else {
		p.terms = slices.Insert(p.terms, i, Term[T]{key, op(ring.Zero[T](), value)})
	}
}

// Find the position of the term with the given key or, if none exists, the
// position at which it should be inserted.
func (p *Polynomial[T]) find(key Monomial) (int, bool) {
	return slices.BinarySearchFunc(p.terms, key, func(t Term[T], k Monomial) int {
		return t.exponents.Cmp(k)
	})
}

func (p *Polynomial[T]) set(other *Polynomial[T]) *Polynomial[T] {
	p.dimension = other.dimension
	p.terms = other.terms
	//
	return p
}

func add[T ring.Ring[T]](x, y T) T {
	return x.Add(y)
}

func sub[T ring.Ring[T]](x, y T) T {
	return x.Sub(y)
}
