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
package math

// Monoid captures the multiplicative structure required for exponentiation.
// Values are treated as immutable, hence Mul must return a fresh value rather
// than updating its receiver.
type Monoid[T any] interface {
	// Mul returns the product of this value and another.
	Mul(T) T
	// One returns the multiplicative identity compatible with this value.  For
	// scalars this is simply 1, whilst for (say) a square matrix it is the
	// identity of the same order.
	One() T
}

// Pow raises a given base to a given power using binary exponentiation.
// Observe that Pow(v, 0) is always the identity, even when v is zero.
func Pow[T Monoid[T]](base T, exp uint) T {
	result := base.One()
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = base.Mul(base)
	}
	//
	return result
}
