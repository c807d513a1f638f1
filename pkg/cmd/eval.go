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

	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/ring/bls12377"
	"github.com/consensys/go-polymat/pkg/ring/bn254"
	"github.com/consensys/go-polymat/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr",
	Short: "substitute values for variables of a polynomial.",
	Long: `Substitute constant values for variables of a polynomial, in the order given.
Variables are identified by their zero-based slot, so "--at 0=2" replaces x by 2.
The resulting polynomial and its constant term are printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Dispatch(cmd, args, runEval[ring.Int], runEval[bls12377.Element], runEval[bn254.Element])
	},
}

func runEval[T ring.Ring[T]](cmd *cobra.Command, args []string) error {
	p, err := parsePoly[T](args[0])
	if err != nil {
		return err
	}
	//
	assignments, err := parseAssignments[T](GetStringArray(cmd, "at"))
	if err != nil {
		return err
	}
	//
	stats := util.NewPerfStats()
	//
	for _, a := range assignments {
		log.Debugf("substituting %s for slot %d", a.Value.String(), a.Index)
		//
		if p, err = p.Eval(a.Value, a.Index); err != nil {
			return err
		}
	}
	//
	stats.Log("Evaluating polynomial")
	//
	if err := printPoly(cmd, p); err != nil {
		return err
	}
	//
	fmt.Fprintf(cmd.OutOrStdout(), "const: %s\n", p.Const().String())
	//
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArray("at", []string{}, "substitute a value for a variable slot (e.g. 0=2)")
}
