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
	"math/rand"
	"testing"

	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/util/assert"
	"github.com/consensys/go-polymat/pkg/util/math"
)

type Poly = *Polynomial[ring.Int]

func x(index uint) Poly {
	return Variable[ring.Int](index)
}

func constant(value int64) Poly {
	return Constant(ring.Int(value))
}

func Test_PolyConst_01(t *testing.T) {
	p := constant(2)
	checkText(t, p, "2")
	p.SubScalarInPlace(4)
	checkText(t, p, "-2")
	p = p.AddScalar(8)
	checkText(t, p, "6")
	p = p.SubScalar(100)
	checkText(t, p, "-94")
}

func Test_PolyConst_02(t *testing.T) {
	var p Polynomial[ring.Int]
	// Uninitialised polynomials are zero
	assert.Equal(t, uint(1), p.Dimension())
	assert.Equal(t, uint(0), p.Len())
	assert.Equal(t, ring.Int(0), p.Const())
	checkText(t, &p, "0")
	checkText(t, Zero[ring.Int](), "0")
	p.AddScalarInPlace(3)
	checkText(t, &p, "3")
}

func Test_PolyArith_01(t *testing.T) {
	checkText(t, X[ring.Int]().AddScalar(1), "1 + x")
	checkText(t, X[ring.Int]().Scale(3).AddScalar(1), "1 + 3x")
	checkText(t, constant(1).Add(X[ring.Int]().Scale(3)), "1 + 3x")
}

func Test_PolyArith_02(t *testing.T) {
	q := X[ring.Int]().Scale(3).AddScalar(1)
	q = math.Pow(q, 2)
	checkText(t, q, "1 + 6x + 9x^2")
	q = math.Pow(q, 4)
	checkText(t, q, "1 + 24x + 252x^2 + 1512x^3 + 5670x^4 + 13608x^5 + 20412x^6 + 17496x^7 + 6561x^8")
}

func Test_PolyArith_03(t *testing.T) {
	q := math.Pow(x(1), 2).Scale(3).AddScalar(1).Sub(x(1)).AddScalar(8)
	checkText(t, q, "9 - x + 3x^2")
}

func Test_PolyArith_04(t *testing.T) {
	q := x(2).AddScalar(1).Add(x(3)).Add(x(4))
	checkText(t, q, "1 + w + z + y")
	assert.Equal(t, uint(4), q.Dimension())
	//
	w := math.Pow(q, 2)
	checkText(t, w, "1 + 2w + w^2 + 2z + 2zw + z^2 + 2y + 2yw + 2yz + y^2")
}

func Test_PolyArith_05(t *testing.T) {
	a := constant(1).Add(x(1).Mul(x(2))).Add(x(2).Mul(x(3))).Add(x(3))
	checkText(t, a, "1 + z + yz + xy")
	assert.Equal(t, uint(3), a.Dimension())
}

func Test_PolyArith_06(t *testing.T) {
	p := x(1).AddScalar(2)
	q := x(2).SubScalar(1)
	// In place forms update (and return) the receiver
	assert.Equal(t, p, p.MulInPlace(q))
	checkText(t, p, "-2 + 2y - x + xy")
	p.SubInPlace(x(2).Mul(x(1)))
	checkText(t, p, "-2 + 2y - x + 0xy")
	p.AddInPlace(x(1)).ScaleInPlace(3)
	checkText(t, p, "-6 + 6y + 0x + 0xy")
	// Operands are unchanged
	checkText(t, q, "-1 + y")
}

func Test_PolyArith_07(t *testing.T) {
	// Subtracting across dimensions
	p := x(1).Sub(x(3))
	checkText(t, p, "-1z + x")
	assert.Equal(t, uint(3), p.Dimension())
	p = x(3).Sub(x(1))
	checkText(t, p, "1z - x")
}

func Test_PolyArith_08(t *testing.T) {
	// Scalar addition and subtraction target the constant term of the current
	// dimension.
	p := x(3).AddScalar(5).SubScalar(7)
	checkText(t, p, "-2 + z")
	assert.Equal(t, uint(3), p.Dimension())
	assert.Equal(t, ring.Int(-2), p.Const())
}

func Test_PolyPrune_01(t *testing.T) {
	p := x(1).Scale(0).AddScalar(1).Add(x(2).Scale(0))
	checkText(t, p, "1 + 0y + 0x")
	assert.Equal(t, uint(3), p.Len())
	p.Prune()
	checkText(t, p, "1")
	assert.Equal(t, uint(1), p.Len())
	// Pruning is idempotent
	p.Prune()
	checkText(t, p, "1")
}

func Test_PolyPrune_02(t *testing.T) {
	q := constant(1).Add(math.Pow(x(1), 3).Scale(0)).Add(math.Pow(x(3), 4)).Add(math.Pow(x(4), 5))
	checkText(t, q, "1 + w^5 + z^4 + 0x^3")
	q.Prune()
	checkText(t, q, "1 + w^5 + z^4")
}

func Test_PolyPrune_03(t *testing.T) {
	var (
		rng = rand.New(rand.NewSource(3))
		p   = randomPoly(rng, 4, 12)
		q   = p.Clone()
	)
	// Introduce some zero terms
	p.SubInPlace(randomPoly(rng, 3, 5).Scale(0))
	q.Prune()
	//
	for k := 0; k < 20; k++ {
		point := randomPoint(rng, 4)
		//
		before, err1 := p.EvalAll(point...)
		after, err2 := q.EvalAll(point...)
		//
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, before, after)
	}
	//
	assert.Equal(t, true, p.Equal(q))
}

func Test_PolyText_01(t *testing.T) {
	// The first term always renders its coefficient
	checkText(t, x(1), "1x")
	checkText(t, x(1).Scale(-1), "-1x")
	checkText(t, x(2).Sub(x(1).Scale(4)), "1y - 4x")
	checkText(t, math.Pow(x(6), 2).Add(x(5)).Add(x(1)), "1k^2 + t + x")
}

func Test_PolyText_02(t *testing.T) {
	p := x(1).Add(x(7))
	//
	_, err := p.Text()
	assert.ErrorIs(t, err, ErrUnnamedVariable)
	// Rendering fails fast
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	_ = p.String()
}

func Test_PolyText_03(t *testing.T) {
	// Unused slots beyond the sixth do not prevent rendering
	p := x(1).Add(x(7).Scale(0))
	p.Prune()
	checkText(t, p, "1x")
	assert.Equal(t, uint(7), p.Dimension())
}

func Test_PolyCoeffs_01(t *testing.T) {
	p := constant(4).Add(x(1).Scale(3)).Add(x(1).Mul(x(2)).Scale(-5))
	//
	assert.Equal(t, ring.Int(4), p.Const())
	assert.Equal(t, ring.Int(3), p.Coefficient(1))
	assert.Equal(t, ring.Int(3), p.Coefficient(1, 0, 0, 0))
	assert.Equal(t, ring.Int(-5), p.Coefficient(1, 1))
	assert.Equal(t, ring.Int(0), p.Coefficient(1, 1, 1))
	assert.Equal(t, ring.Int(0), p.Coefficient(2))
	assert.Equal(t, uint(2), p.Degree())
	//
	terms := p.Terms()
	assert.Equal(t, 3, len(terms))
	assert.Equal(t, Monomial{0, 0}, terms[0].Exponents())
	assert.Equal(t, Monomial{1, 0}, terms[1].Exponents())
	assert.Equal(t, Monomial{1, 1}, terms[2].Exponents())
	assert.Equal(t, ring.Int(-5), terms[2].Coefficient())
	// Snapshot is independent of the polynomial
	terms[0].exponents[0] = 9
	assert.Equal(t, ring.Int(4), p.Const())
}

func Test_PolyDegree_01(t *testing.T) {
	assert.Equal(t, uint(0), constant(7).Degree())
	assert.Equal(t, uint(0), Zero[ring.Int]().Degree())
	assert.Equal(t, uint(3), math.Pow(x(1).Add(x(2)), 3).Degree())
	// Zero terms do not count
	assert.Equal(t, uint(1), x(1).Add(math.Pow(x(2), 5).Scale(0)).Degree())
}

func Test_PolyPow_01(t *testing.T) {
	// p^0 is one, even for zero
	checkText(t, math.Pow(Zero[ring.Int](), 0), "1")
	checkText(t, math.Pow(constant(0), 0), "1")
	checkText(t, math.Pow(x(3), 0), "1")
	//
	p := x(1).AddScalar(1)
	acc := constant(1)
	//
	for i := uint(0); i < 10; i++ {
		assert.Equal(t, true, math.Pow(p, i).Equal(acc), "Pow(p,%d)", i)
		acc = acc.Mul(p)
	}
}

func Test_PolyConvert_01(t *testing.T) {
	var (
		p = x(1).Scale(3).Sub(x(2)).AddScalar(-2)
		q = Convert(p, func(v ring.Int) ring.Int { return v * 2 })
	)
	//
	assert.Equal(t, true, q.Equal(p.Scale(2)))
	assert.Equal(t, p.Dimension(), q.Dimension())
}

// ============================================================================
// Algebraic properties
// ============================================================================

func Test_PolyProps_01(t *testing.T) {
	var rng = rand.New(rand.NewSource(1))
	//
	for k := 0; k < 50; k++ {
		p := randomPoly(rng, 1+uint(rng.Intn(3)), 6)
		q := randomPoly(rng, 1+uint(rng.Intn(3)), 6)
		r := randomPoly(rng, 1+uint(rng.Intn(3)), 6)
		// Commutativity
		checkEqual(t, p.Add(q), q.Add(p))
		checkEqual(t, p.Mul(q), q.Mul(p))
		// Associativity
		checkEqual(t, p.Add(q).Add(r), p.Add(q.Add(r)))
		checkEqual(t, p.Mul(q).Mul(r), p.Mul(q.Mul(r)))
		// Distributivity
		checkEqual(t, p.Mul(q.Add(r)), p.Mul(q).Add(p.Mul(r)))
		// Inverses
		checkEqual(t, p.Sub(p), Zero[ring.Int]())
		checkEqual(t, p.Sub(q).Add(q), p)
	}
}

func Test_PolyProps_02(t *testing.T) {
	// Combining polynomials never loses terms, and the dimension is the max.
	p := x(1).Add(x(3)).Add(x(2).Mul(x(3)))
	q := constant(5).Add(x(1).Scale(2))
	r := p.Add(q)
	//
	assert.Equal(t, uint(3), r.Dimension())
	assert.Equal(t, uint(3), q.Add(p).Dimension())
	assert.Equal(t, uint(3), p.Mul(q).Dimension())
	checkText(t, r, "5 + z + yz + 3x")
	//
	for _, term := range r.Terms() {
		assert.Equal(t, 3, len(term.Exponents()))
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkText(t *testing.T, p Poly, expected string) {
	t.Helper()
	//
	if actual, err := p.Text(); err != nil {
		t.Error(err)
	} else if actual != expected {
		t.Errorf("incorrect rendering (was \"%s\", expected \"%s\")", actual, expected)
	}
}

func checkEqual(t *testing.T, lhs Poly, rhs Poly) {
	t.Helper()
	//
	if !lhs.Equal(rhs) {
		t.Errorf("polynomials not equivalent: %s vs %s", lhs, rhs)
	}
}

// Construct a random polynomial with upto n terms of a given dimension, using
// small coefficients and exponents.
func randomPoly(rng *rand.Rand, dimension uint, n int) Poly {
	p := &Polynomial[ring.Int]{dimension: dimension}
	//
	for k, count := 0, 1+rng.Intn(n); k < count; k++ {
		exponents := make(Monomial, dimension)
		//
		for i := range exponents {
			exponents[i] = uint(rng.Intn(3))
		}
		//
		term := Term[ring.Int]{exponents, ring.Int(rng.Intn(11) - 5)}
		p.AddInPlace(&Polynomial[ring.Int]{dimension, []Term[ring.Int]{term}})
	}
	//
	return p
}

func randomPoint(rng *rand.Rand, dimension uint) []ring.Int {
	point := make([]ring.Int, dimension)
	//
	for i := range point {
		point[i] = ring.Int(rng.Intn(21) - 10)
	}
	//
	return point
}
