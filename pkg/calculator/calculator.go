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

// Package calculator evaluates short arithmetic expressions such as
// (1+2)**3, sqrt(9), or sin(pi/2) into a float64.
//
// The grammar is a fixed whitelist: numeric literals, the constants pi, e
// and tau, the operators + - * / % ** with Python-style precedence, and a
// closed set of math functions. Nothing else is representable in the syntax
// tree the parser builds, so there is no way for input to reach host code
// or state. Evaluation is a pure function with no I/O and no shared mutable
// state; it is safe to call from any number of goroutines.
package calculator

import "math"

// Evaluate tokenizes, parses, and evaluates expr. On failure the returned
// error is always a *Error whose Kind tells the failure class and whose
// message can be shown to the user as is.
//
// A successful result is a finite float64 or, where float64 arithmetic
// legitimately overflows (for example exp(1e9)), an infinity. NaN is never
// returned: every computation that would produce one is reported as an
// error instead.
func Evaluate(expr string) (float64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	root, err := parse(toks)
	if err != nil {
		return 0, err
	}
	v, err := evalNode(root)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		// Unreachable if the per-operation checks are complete; kept so a
		// missed path surfaces as an error rather than a silent NaN.
		return 0, domainErr("expression", "result is not a number")
	}
	return v, nil
}
