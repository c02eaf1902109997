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

import "math"

// The registries are the only names the evaluator will resolve. Both maps
// are read-only after package initialization, so concurrent evaluations may
// share them without locking.

// constants maps constant names to their values.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

// function is one entry of the function registry: an arity range and a
// numeric implementation that reports its own domain violations.
type function struct {
	name    string
	minArgs int
	maxArgs int
	call    func(args []float64) (float64, error)
}

var functions = map[string]function{
	"abs":   monadic("abs", math.Abs),
	"round": monadic("round", math.RoundToEven),
	"sqrt": {name: "sqrt", minArgs: 1, maxArgs: 1, call: func(args []float64) (float64, error) {
		if args[0] < 0 {
			return 0, domainErr("sqrt", "negative argument")
		}
		return math.Sqrt(args[0]), nil
	}},
	"sin":  monadic("sin", math.Sin),
	"cos":  monadic("cos", math.Cos),
	"tan":  monadic("tan", math.Tan),
	"asin": arcSine("asin", math.Asin),
	"acos": arcSine("acos", math.Acos),
	"atan": monadic("atan", math.Atan),
	"log":  {name: "log", minArgs: 1, maxArgs: 2, call: logN},
	"log10": {name: "log10", minArgs: 1, maxArgs: 1, call: func(args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, domainErr("log10", "argument must be positive")
		}
		return math.Log10(args[0]), nil
	}},
	"ln": {name: "ln", minArgs: 1, maxArgs: 1, call: func(args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, domainErr("ln", "argument must be positive")
		}
		return math.Log(args[0]), nil
	}},
	"exp":   monadic("exp", math.Exp),
	"floor": monadic("floor", math.Floor),
	"ceil":  monadic("ceil", math.Ceil),
}

// monadic wraps a total one-argument function into a registry entry.
func monadic(name string, f func(float64) float64) function {
	return function{
		name:    name,
		minArgs: 1,
		maxArgs: 1,
		call: func(args []float64) (float64, error) {
			return f(args[0]), nil
		},
	}
}

// arcSine wraps asin/acos, which are only defined on [-1, 1].
func arcSine(name string, f func(float64) float64) function {
	return function{
		name:    name,
		minArgs: 1,
		maxArgs: 1,
		call: func(args []float64) (float64, error) {
			if args[0] < -1 || args[0] > 1 {
				return 0, domainErr(name, "argument outside [-1, 1]")
			}
			return f(args[0]), nil
		},
	}
}

// logN implements log(x) as the natural log and log(x, base) as the log in
// the given base.
func logN(args []float64) (float64, error) {
	x := args[0]
	if x <= 0 {
		return 0, domainErr("log", "argument must be positive")
	}
	if len(args) == 1 {
		return math.Log(x), nil
	}
	base := args[1]
	if base <= 0 {
		return 0, domainErr("log", "base must be positive")
	}
	if base == 1 {
		return 0, domainErr("log", "base must not be 1")
	}
	return math.Log(x) / math.Log(base), nil
}
