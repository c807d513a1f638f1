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
	"os"

	"github.com/consensys/go-polymat/pkg/matrix"
	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/ring/bls12377"
	"github.com/consensys/go-polymat/pkg/ring/bn254"
	"github.com/consensys/go-polymat/pkg/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// matrixCmd represents the matrix command
var matrixCmd = &cobra.Command{
	Use:   "matrix [flags] expr",
	Short: "evaluate a univariate polynomial at a square matrix.",
	Long: `Evaluate a univariate polynomial at a square matrix, given via --matrix as rows
separated by ';' with cells separated by ','.  For example, "1,1;1,1".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Dispatch(cmd, args, runMatrix[ring.Int], runMatrix[bls12377.Element], runMatrix[bn254.Element])
	},
}

func runMatrix[T ring.Ring[T]](cmd *cobra.Command, args []string) error {
	p, err := parsePoly[T](args[0])
	if err != nil {
		return err
	}
	//
	m, err := parseMatrix[T](GetString(cmd, "matrix"))
	if err != nil {
		return err
	}
	//
	stats := util.NewPerfStats()
	//
	if m, err = p.EvalMatrix(m); err != nil {
		return err
	}
	//
	stats.Log("Evaluating polynomial at matrix")
	//
	return printMatrix(cmd, m)
}

func printMatrix[T ring.Ring[T]](cmd *cobra.Command, m *matrix.SquareMatrix[T]) error {
	var (
		order = m.Order()
		tp    = util.NewTablePrinter(order, order)
	)
	//
	for i := uint(0); i < order; i++ {
		for j := uint(0); j < order; j++ {
			tp.Set(j, i, m.Get(i, j).String())
		}
	}
	// Columns share the terminal width, when there is one.
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) && order > 0 {
		if width, _, err := term.GetSize(fd); err == nil && uint(width)/order > 3 {
			tp.SetMaxWidth(uint(width)/order - 3)
		}
	}
	//
	return tp.Print(cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().String("matrix", "1", "square matrix to evaluate at (e.g. \"1,1;1,1\")")
}
