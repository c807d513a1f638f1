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
package ring

import (
	"fmt"

	"github.com/consensys/go-polymat/pkg/util/math"
)

// Ring describes the coefficient types over which polynomials and matrices are
// defined.  Elements are values: arithmetic never updates the receiver, but
// instead returns a fresh element.  The zero value of a ring type is not
// required to be meaningful, hence Zero() should be used to obtain zero.
type Ring[T any] interface {
	fmt.Stringer
	math.Monoid[T]
	// Add returns x + y
	Add(y T) T
	// Sub returns x - y
	Sub(y T) T
	// IsZero checks whether this element is the additive identity.
	IsZero() bool
	// SetInt64 returns the element representing a given (small) integer.  The
	// receiver plays no part in this.
	SetInt64(v int64) T
}

// Signed is implemented by coefficient types which are ordered with respect to
// zero.  This is only needed for sign-magnitude rendering of polynomials;
// coefficient types which don't implement it are rendered as non-negative.
type Signed[T any] interface {
	// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
	Sign() int
	// Abs returns |x|.
	Abs() T
}

// Zero constructs the additive identity of a given ring.
func Zero[T Ring[T]]() T {
	var element T
	//
	return element.SetInt64(0)
}

// One constructs the multiplicative identity of a given ring.
func One[T Ring[T]]() T {
	var element T
	//
	return element.SetInt64(1)
}

// Int64 constructs the element of a given ring corresponding to a given integer.
func Int64[T Ring[T]](val int64) T {
	var element T
	//
	return element.SetInt64(val)
}

// Neg returns -x
func Neg[T Ring[T]](x T) T {
	return Zero[T]().Sub(x)
}

// Equal checks whether two elements are the same, which holds when their
// difference is zero.
func Equal[T Ring[T]](x, y T) bool {
	return x.Sub(y).IsZero()
}

// Sign returns the sign of a given element.  For rings which don't implement
// Signed this is either 0 or +1.
func Sign[T Ring[T]](x T) int {
	if s, ok := any(x).(Signed[T]); ok {
		return s.Sign()
	} else if x.IsZero() {
		return 0
	}
	//
	return 1
}

// Abs returns the magnitude of a given element.  For unordered rings this is
// the element itself.
func Abs[T Ring[T]](x T) T {
	if s, ok := any(x).(Signed[T]); ok {
		return s.Abs()
	}
	//
	return x
}
