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

import "errors"

// ErrIndexOutOfRange is reported when a variable index does not identify a
// variable slot of the polynomial in question.
var ErrIndexOutOfRange = errors.New("variable index out of range")

// ErrNotUnivariate is reported when an operation defined only for polynomials
// of a single variable is applied to a multivariate polynomial.
var ErrNotUnivariate = errors.New("polynomial is not univariate")

// ErrUnnamedVariable is reported when rendering a term which uses a variable
// for which no name is available.
var ErrUnnamedVariable = errors.New("variable has no name")
