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
	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/ring/bls12377"
	"github.com/consensys/go-polymat/pkg/ring/bn254"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [flags] expr",
	Short: "print the canonical form of a polynomial.",
	Long:  `Parse a polynomial given as an S-expression and print its canonical rendering.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Dispatch(cmd, args, runRender[ring.Int], runRender[bls12377.Element], runRender[bn254.Element])
	},
}

func runRender[T ring.Ring[T]](cmd *cobra.Command, args []string) error {
	p, err := parsePoly[T](args[0])
	if err != nil {
		return err
	}
	//
	return printPoly(cmd, p)
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
