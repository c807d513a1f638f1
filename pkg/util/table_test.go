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
package util

import (
	"bytes"
	"testing"

	"github.com/consensys/go-polymat/pkg/util/assert"
)

func Test_Table_01(t *testing.T) {
	var (
		buf   bytes.Buffer
		table = NewTablePrinter(2, 2)
	)
	//
	table.SetRow(0, "4", "3")
	table.SetRow(1, "-12", "4")
	//
	assert.NoError(t, table.Print(&buf))
	assert.Equal(t, "   4 | 3 |\n -12 | 4 |\n", buf.String())
}

func Test_Table_02(t *testing.T) {
	var (
		buf   bytes.Buffer
		table = NewTablePrinter(2, 1)
	)
	//
	table.Set(0, 0, "123456")
	table.Set(1, 0, "7")
	table.SetMaxWidth(3)
	//
	assert.NoError(t, table.Print(&buf))
	assert.Equal(t, " 123 | 7 |\n", buf.String())
}
