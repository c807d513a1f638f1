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
	"strconv"
	"strings"
)

// Variables holds the names used when rendering the variables of a polynomial,
// such that the ith name is used for Variable(i+1).  Only six variables can be
// named.
var Variables = []string{"x", "y", "z", "w", "t", "k"}

// Monomial is an exponent tuple identifying a product of variables, where
// position i holds the power of variable i+1.  Monomials of different lengths
// are compared as though the shorter were padded with zeros on the right.
type Monomial []uint

// Cmp compares two monomials lexicographically, with position 0 being the most
// significant.
func (m Monomial) Cmp(other Monomial) int {
	n := max(len(m), len(other))
	//
	for i := 0; i < n; i++ {
		l, r := m.Nth(uint(i)), other.Nth(uint(i))
		//
		if l < r {
			return -1
		} else if l > r {
			return 1
		}
	}
	//
	return 0
}

// Nth returns the exponent at a given position, which is zero for positions
// beyond the length of this monomial.
func (m Monomial) Nth(index uint) uint {
	if index < uint(len(m)) {
		return m[index]
	}
	//
	return 0
}

// Resize returns a copy of this monomial padded with zeros (on the right) up to
// the given length.  Positions beyond the given length are dropped, and must
// therefore be zero.
func (m Monomial) Resize(n uint) Monomial {
	nm := make(Monomial, n)
	copy(nm, m)
	//
	return nm
}

// Merge constructs the monomial of a given length obtained by multiplying this
// monomial with another.  That is, by summing their exponents position-wise.
func (m Monomial) Merge(other Monomial, n uint) Monomial {
	nm := make(Monomial, n)
	//
	for i, e := range m {
		nm[i] += e
	}
	//
	for i, e := range other {
		nm[i] += e
	}
	//
	return nm
}

// IsConstant checks whether every exponent of this monomial is zero.
func (m Monomial) IsConstant() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	//
	return true
}

// Degree returns the total degree of this monomial.
func (m Monomial) Degree() uint {
	var degree uint
	//
	for _, e := range m {
		degree += e
	}
	//
	return degree
}

// Text renders this monomial as a product of named variables, such as "xy^2".
// The constant monomial renders as the empty string.
func (m Monomial) Text() (string, error) {
	var builder strings.Builder
	//
	for i, e := range m {
		if e == 0 {
			continue
		} else if i >= len(Variables) {
			return "", fmt.Errorf("variable %d: %w", i+1, ErrUnnamedVariable)
		}
		//
		builder.WriteString(Variables[i])
		//
		if e > 1 {
			builder.WriteString("^")
			builder.WriteString(strconv.FormatUint(uint64(e), 10))
		}
	}
	//
	return builder.String(), nil
}
