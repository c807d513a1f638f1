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
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-polymat/pkg/matrix"
	"github.com/consensys/go-polymat/pkg/poly"
	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Action is a command implementation for a specific coefficient ring.
type Action func(cmd *cobra.Command, args []string) error

// Dispatch runs the implementation matching the coefficient ring selected via
// the "ring" flag.  Errors are logged before exiting.
func Dispatch(cmd *cobra.Command, args []string, integer Action, bls Action, bn Action) {
	var action Action
	//
	switch name := GetString(cmd, "ring"); name {
	case "int":
		action = integer
	case "bls12-377":
		action = bls
	case "bn254":
		action = bn
	default:
		log.Errorf("unknown coefficient ring \"%s\"", name)
		os.Exit(2)
	}
	//
	if err := action(cmd, args); err != nil {
		log.Error(err)
		os.Exit(2)
	}
}

// Parse a polynomial given on the command line.
func parsePoly[T ring.Ring[T]](input string) (*poly.Polynomial[T], error) {
	stats := util.NewPerfStats()
	p, err := poly.Parse[T](input)
	//
	stats.Log("Parsing polynomial")
	//
	return p, err
}

// Print a polynomial, pruning it first if requested.
func printPoly[T ring.Ring[T]](cmd *cobra.Command, p *poly.Polynomial[T]) error {
	if GetFlag(cmd, "prune") {
		p.Prune()
	}
	//
	text, err := p.Text()
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	//
	return err
}

// Parse a ring element from an integer literal.
func parseElement[T ring.Ring[T]](input string) (T, error) {
	val, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return ring.Zero[T](), fmt.Errorf("invalid constant \"%s\"", input)
	}
	//
	return ring.Int64[T](val), nil
}

// Assignment binds a value to a (0-based) variable slot.
type Assignment[T ring.Ring[T]] struct {
	Index uint
	Value T
}

// Parse assignments of the form "i=v".
func parseAssignments[T ring.Ring[T]](inputs []string) ([]Assignment[T], error) {
	assignments := make([]Assignment[T], len(inputs))
	//
	for i, input := range inputs {
		split := strings.Split(input, "=")
		if len(split) != 2 {
			return nil, fmt.Errorf("invalid assignment \"%s\" (expected index=value)", input)
		}
		//
		index, err := strconv.ParseUint(strings.TrimSpace(split[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid variable index \"%s\"", split[0])
		}
		//
		value, err := parseElement[T](split[1])
		if err != nil {
			return nil, err
		}
		//
		assignments[i] = Assignment[T]{uint(index), value}
	}
	//
	return assignments, nil
}

// Parse a square matrix given as rows separated by ';', with cells separated
// by ','.  For example, "1,1;1,1".
func parseMatrix[T ring.Ring[T]](input string) (*matrix.SquareMatrix[T], error) {
	var (
		lines = strings.Split(input, ";")
		rows  = make([][]T, len(lines))
	)
	//
	for i, line := range lines {
		cells := strings.Split(line, ",")
		if len(cells) != len(lines) {
			return nil, fmt.Errorf("matrix row %d has %d cells (expected %d)", i, len(cells), len(lines))
		}
		//
		rows[i] = make([]T, len(cells))
		//
		for j, cell := range cells {
			val, err := parseElement[T](cell)
			if err != nil {
				return nil, err
			}
			//
			rows[i][j] = val
		}
	}
	//
	return matrix.NewSquareMatrixFromTable(rows), nil
}
