// Copyright 2024 The SafeCalc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calculator

import (
	"fmt"
	"strconv"
)

// ErrKind classifies the ways an expression can fail to evaluate.
type ErrKind int

const (
	// ErrSyntax means tokenizing or parsing failed: malformed literal,
	// unbalanced parentheses, unexpected token, or empty input.
	ErrSyntax ErrKind = iota
	// ErrUnknownName means an identifier was not found among the constants.
	ErrUnknownName
	// ErrUnknownFunction means a call target was not found among the functions.
	ErrUnknownFunction
	// ErrUnsupportedOperator is reserved for operators outside the whitelist.
	// The parser cannot construct such nodes, so this kind is defense-in-depth.
	ErrUnsupportedOperator
	// ErrBadArguments means a function was called with the wrong number of
	// arguments.
	ErrBadArguments
	// ErrDivisionByZero means a division or modulo by exactly zero.
	ErrDivisionByZero
	// ErrDomain means a function's mathematical domain was violated.
	ErrDomain
)

func (k ErrKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnknownName:
		return "unknown name"
	case ErrUnknownFunction:
		return "unknown function"
	case ErrUnsupportedOperator:
		return "unsupported operator"
	case ErrBadArguments:
		return "bad arguments"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrDomain:
		return "domain error"
	default:
		return "error"
	}
}

// Error is the single error type returned by Evaluate. Every failure is
// recoverable by the caller; the message is suitable to show to an end user
// verbatim.
type Error struct {
	// Kind is the failure class.
	Kind ErrKind
	// Name is the offending identifier, function, or operator, if any.
	Name string
	// Pos is the 1-based rune position of the offending input for syntax
	// errors, or 0 when no position applies.
	Pos int
	// Msg is the human-readable diagnostic.
	Msg string
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
		if e.Name != "" {
			msg += ": " + strconv.Quote(e.Name)
		}
	}
	if e.Pos > 0 {
		return msg + " (at position " + strconv.Itoa(e.Pos) + ")"
	}
	return msg
}

// syntaxErr builds a positioned syntax error.
func syntaxErr(pos int, format string, args ...interface{}) *Error {
	return &Error{Kind: ErrSyntax, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// domainErr builds a domain error for the named function or operator.
func domainErr(name, msg string) *Error {
	return &Error{Kind: ErrDomain, Name: name, Msg: name + ": " + msg}
}
