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
	"strings"

	"github.com/consensys/go-polymat/pkg/ring"
)

// Text constructs the canonical rendering of this polynomial, such as
// "1 - x + 3x^2".  Terms are rendered in ascending order of their exponent
// tuples, with the first giving its signed coefficient in full.  Subsequent
// terms are joined by their sign, and a coefficient of magnitude one is
// omitted.  Terms with zero coefficients are rendered unless pruned.  An error
// is returned if some term refers to a variable which has no name.
func (p *Polynomial[T]) Text() (string, error) {
	var (
		builder strings.Builder
		one     = ring.One[T]()
	)
	//
	if len(p.terms) == 0 {
		return "0", nil
	}
	//
	for i, term := range p.terms {
		suffix, err := term.exponents.Text()
		//
		if err != nil {
			return "", err
		} else if i == 0 {
			builder.WriteString(term.coefficient.String())
			builder.WriteString(suffix)
			//
			continue
		}
		//
		if ring.Sign(term.coefficient) < 0 {
			builder.WriteString(" - ")
		} else {
			builder.WriteString(" + ")
		}
		//
		if abs := ring.Abs(term.coefficient); !ring.Equal(abs, one) {
			builder.WriteString(abs.String())
		}
		//
		builder.WriteString(suffix)
	}
	//
	return builder.String(), nil
}

// String returns the canonical rendering of this polynomial, and panics if
// some variable cannot be named (see Text).
func (p *Polynomial[T]) String() string {
	text, err := p.Text()
	if err != nil {
		panic(err.Error())
	}
	//
	return text
}
