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
package cmd

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/ring/bls12377"
	"github.com/consensys/go-polymat/pkg/ring/bn254"
	"github.com/consensys/go-polymat/pkg/util"
	"github.com/consensys/go-polymat/pkg/util/math"
	"github.com/spf13/cobra"
)

// powCmd represents the pow command
var powCmd = &cobra.Command{
	Use:   "pow [flags] expr n",
	Short: "raise a polynomial to a non-negative power.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Dispatch(cmd, args, runPow[ring.Int], runPow[bls12377.Element], runPow[bn254.Element])
	},
}

func runPow[T ring.Ring[T]](cmd *cobra.Command, args []string) error {
	p, err := parsePoly[T](args[0])
	if err != nil {
		return err
	}
	//
	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid exponent \"%s\"", args[1])
	}
	//
	stats := util.NewPerfStats()
	p = math.Pow(p, uint(n))
	//
	stats.Log("Exponentiating polynomial")
	//
	return printPoly(cmd, p)
}

func init() {
	rootCmd.AddCommand(powCmd)
}
