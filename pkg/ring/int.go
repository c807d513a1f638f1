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

import "strconv"

// Int is the ring of machine integers.  Arithmetic wraps on overflow, so this
// is really the ring of integers modulo 2^64.
type Int int64

// Add implementation for the Ring interface.
func (x Int) Add(y Int) Int {
	return x + y
}

// Sub implementation for the Ring interface.
func (x Int) Sub(y Int) Int {
	return x - y
}

// Mul implementation for the Ring interface.
func (x Int) Mul(y Int) Int {
	return x * y
}

// One implementation for the Ring interface.
func (x Int) One() Int {
	return 1
}

// IsZero implementation for the Ring interface.
func (x Int) IsZero() bool {
	return x == 0
}

// SetInt64 implementation for the Ring interface.
func (x Int) SetInt64(v int64) Int {
	return Int(v)
}

// Sign implementation for the Signed interface.
func (x Int) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs implementation for the Signed interface.
func (x Int) Abs() Int {
	if x < 0 {
		return -x
	}
	//
	return x
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
