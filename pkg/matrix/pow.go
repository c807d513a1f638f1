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

import "github.com/consensys/go-polymat/pkg/ring"

// Pow raises a given matrix to a given power using binary exponentiation.  This
// is equivalent to math.Pow, except that the identity is constructed directly
// from the order of the base.
func Pow[T ring.Ring[T]](base *SquareMatrix[T], exp uint) *SquareMatrix[T] {
	result := NewIdentity[T](base.Order())
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		//
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
