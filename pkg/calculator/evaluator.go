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

// evalNode computes the value of a syntax tree by structural recursion.
// Operands evaluate left before right, so the first error encountered in
// source order is the one reported.
func evalNode(n *node) (float64, error) {
	switch n.kind {
	case nodeNumber:
		return n.val, nil
	case nodeName:
		v, ok := constants[n.name]
		if !ok {
			return 0, &Error{Kind: ErrUnknownName, Name: n.name}
		}
		return v, nil
	case nodeUnary:
		v, err := evalNode(n.left)
		if err != nil {
			return 0, err
		}
		switch n.un {
		case unPos:
			return v, nil
		case unNeg:
			return -v, nil
		default:
			return 0, &Error{Kind: ErrUnsupportedOperator, Msg: "unsupported unary operator"}
		}
	case nodeBinary:
		l, err := evalNode(n.left)
		if err != nil {
			return 0, err
		}
		r, err := evalNode(n.right)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.bin, l, r)
	case nodeCall:
		fn, ok := functions[n.name]
		if !ok {
			return 0, &Error{Kind: ErrUnknownFunction, Name: n.name}
		}
		if len(n.args) < fn.minArgs || len(n.args) > fn.maxArgs {
			return 0, &Error{Kind: ErrBadArguments, Name: n.name, Msg: "bad arguments for " + n.name + "()"}
		}
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := evalNode(a)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return fn.call(args)
	default:
		return 0, &Error{Kind: ErrUnsupportedOperator, Msg: "unsupported expression"}
	}
}

func applyBinary(op binOp, l, r float64) (float64, error) {
	switch op {
	case binAdd:
		return l + r, nil
	case binSub:
		return l - r, nil
	case binMul:
		return l * r, nil
	case binDiv:
		if r == 0 {
			return 0, &Error{Kind: ErrDivisionByZero, Name: "/", Msg: "division by zero"}
		}
		return l / r, nil
	case binMod:
		if r == 0 {
			return 0, &Error{Kind: ErrDivisionByZero, Name: "%", Msg: "division by zero"}
		}
		return math.Mod(l, r), nil
	case binPow:
		v := math.Pow(l, r)
		// A negative base with a fractional exponent has no real result;
		// report it instead of leaking a NaN.
		if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
			return 0, domainErr("**", "no real result")
		}
		return v, nil
	default:
		return 0, &Error{Kind: ErrUnsupportedOperator, Msg: "unsupported binary operator"}
	}
}
