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

import (
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"github.com/consensys/go-polymat/pkg/ring"
	"github.com/consensys/go-polymat/pkg/util/math"
)

// SyntaxError is reported when parsing a malformed polynomial.
type SyntaxError struct {
	// Offset (in runes) within the input where the error arose.
	Offset int
	// Message describing the problem.
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// Parse a given S-expression into a polynomial.  Symbols are either integer
// constants or variable names (see Variables), whilst lists apply one of the
// operators "+", "-", "*" or "^" to their arguments.  For example,
// "(+ 1 (* 3 x) (^ y 2))" describes 1 + 3x + y^2.  Comments begin with ';'
// and run to the end of the line.
func Parse[T ring.Ring[T]](input string) (*Polynomial[T], error) {
	p := &parser[T]{text: []rune(input)}
	// Parse the input
	poly, err := p.parsePoly()
	// Sanity check everything was parsed
	if err == nil {
		if p.skipWhiteSpace(); p.index != len(p.text) {
			err = p.error("unexpected remainder")
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return poly, nil
}

type parser[T ring.Ring[T]] struct {
	text []rune
	// Determine current position within text
	index int
}

func (p *parser[T]) parsePoly() (*Polynomial[T], *SyntaxError) {
	p.skipWhiteSpace()
	//
	switch {
	case p.index == len(p.text):
		return nil, p.error("unexpected end-of-file")
	case p.text[p.index] == ')':
		return nil, p.error("unexpected end-of-list")
	case p.text[p.index] == '(':
		return p.parseList()
	default:
		return p.parseSymbol()
	}
}

func (p *parser[T]) parseSymbol() (*Polynomial[T], *SyntaxError) {
	start := p.index
	symbol := p.next()
	// Check for variable
	if i := slices.Index(Variables, symbol); i >= 0 {
		return Variable[T](uint(i + 1)), nil
	}
	// Check for constant
	if val, err := strconv.ParseInt(symbol, 10, 64); err == nil {
		return Constant(ring.Int64[T](val)), nil
	}
	//
	return nil, &SyntaxError{start, fmt.Sprintf("unknown symbol \"%s\"", symbol)}
}

func (p *parser[T]) parseList() (*Polynomial[T], *SyntaxError) {
	// Consume '('
	p.index++
	p.skipWhiteSpace()
	//
	start := p.index
	//
	if p.index == len(p.text) || p.text[p.index] == '(' || p.text[p.index] == ')' {
		return nil, p.error("expected operator")
	}
	//
	operator := p.next()
	//
	switch operator {
	case "+":
		return p.foldList(start, (*Polynomial[T]).Add)
	case "-":
		return p.parseSub(start)
	case "*":
		return p.foldList(start, (*Polynomial[T]).Mul)
	case "^":
		return p.parsePow()
	default:
		return nil, &SyntaxError{start, fmt.Sprintf("unknown operator \"%s\"", operator)}
	}
}

// Parse "(- a)" as negation, and "(- a b ...)" as repeated subtraction.
func (p *parser[T]) parseSub(start int) (*Polynomial[T], *SyntaxError) {
	args, err := p.parseSequence()
	//
	switch {
	case err != nil:
		return nil, err
	case len(args) == 0:
		return nil, &SyntaxError{start, "malformed expression"}
	case len(args) == 1:
		return Zero[T]().Sub(args[0]), nil
	}
	//
	return fold(args, (*Polynomial[T]).Sub), nil
}

// Parse "(^ a n)" where n must be a non-negative integer literal.
func (p *parser[T]) parsePow() (*Polynomial[T], *SyntaxError) {
	base, err := p.parsePoly()
	if err != nil {
		return nil, err
	}
	//
	p.skipWhiteSpace()
	start := p.index
	//
	if p.index == len(p.text) || p.text[p.index] == '(' || p.text[p.index] == ')' {
		return nil, p.error("expected exponent")
	}
	//
	exp, e := strconv.ParseUint(p.next(), 10, 32)
	if e != nil {
		return nil, &SyntaxError{start, "invalid exponent"}
	} else if err = p.expect(')'); err != nil {
		return nil, err
	}
	//
	return math.Pow(base, uint(exp)), nil
}

func (p *parser[T]) foldList(start int, op func(*Polynomial[T], *Polynomial[T]) *Polynomial[T]) (
	*Polynomial[T], *SyntaxError) {
	args, err := p.parseSequence()
	//
	if err != nil {
		return nil, err
	} else if len(args) == 0 {
		return nil, &SyntaxError{start, "malformed expression"}
	}
	//
	return fold(args, op), nil
}

// Parse zero or more polynomials upto (and including) the closing bracket.
func (p *parser[T]) parseSequence() ([]*Polynomial[T], *SyntaxError) {
	var elements []*Polynomial[T]
	//
	for p.skipWhiteSpace(); p.index == len(p.text) || p.text[p.index] != ')'; p.skipWhiteSpace() {
		element, err := p.parsePoly()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	// Consume terminator
	p.index++
	//
	return elements, nil
}

func (p *parser[T]) expect(r rune) *SyntaxError {
	p.skipWhiteSpace()
	//
	if p.index == len(p.text) || p.text[p.index] != r {
		return p.error(fmt.Sprintf("expected '%c'", r))
	}
	//
	p.index++
	//
	return nil
}

// Next extracts the next symbol from the input.
func (p *parser[T]) next() string {
	i := len(p.text)
	//
	for j := p.index; j < i; j++ {
		if c := p.text[j]; c == '(' || c == ')' || c == ';' || unicode.IsSpace(c) {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i
	//
	return string(token)
}

// SkipWhiteSpace skips over any whitespace, including comments.
func (p *parser[T]) skipWhiteSpace() {
	for p.index < len(p.text) && (unicode.IsSpace(p.text[p.index]) || p.text[p.index] == ';') {
		if p.text[p.index] == ';' {
			// Skip comment
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		} else {
			p.index++
		}
	}
}

// Construct a parser error at the current position in the input stream.
func (p *parser[T]) error(msg string) *SyntaxError {
	return &SyntaxError{p.index, msg}
}

func fold[T ring.Ring[T]](args []*Polynomial[T], op func(*Polynomial[T], *Polynomial[T]) *Polynomial[T]) *Polynomial[T] {
	res := args[0]
	//
	for _, arg := range args[1:] {
		res = op(res, arg)
	}
	//
	return res
}
