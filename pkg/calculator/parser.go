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

// The grammar, lowest precedence first:
//
//	additive       = multiplicative { ("+" | "-") multiplicative }
//	multiplicative = unary { ("*" | "/" | "%") unary }
//	unary          = ("+" | "-") unary | power
//	power          = primary [ "**" unary ]
//	primary        = number | ident | ident "(" [ additive { "," additive } ] ")" | "(" additive ")"
//
// Routing unary above power while recursing back into unary from the
// exponent position gives the required asymmetry: -2**2 is -(2**2) while
// 2**-2 is 2**(-2), and 2**3**2 associates to the right.

type nodeKind int8

const (
	nodeNumber nodeKind = iota
	nodeName
	nodeBinary
	nodeUnary
	nodeCall
)

// binOp enumerates the permitted binary operators. The parser can construct
// no operator outside this set.
type binOp int8

const (
	binAdd binOp = iota
	binSub
	binMul
	binDiv
	binMod
	binPow
)

// unOp enumerates the permitted unary operators.
type unOp int8

const (
	unPos unOp = iota
	unNeg
)

// node is a node in the restricted syntax tree. Only the five shapes named
// by nodeKind are representable; there is no escape hatch into anything the
// evaluator does not know how to compute.
type node struct {
	kind nodeKind

	val  float64 // nodeNumber
	name string  // nodeName, nodeCall
	bin  binOp   // nodeBinary
	un   unOp    // nodeUnary

	left  *node   // nodeBinary, nodeUnary
	right *node   // nodeBinary
	args  []*node // nodeCall, in call order
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// acceptOp consumes the next token if it is the given operator.
func (p *parser) acceptOp(text string) bool {
	if tok := p.peek(); tok.kind == tokenOp && tok.text == text {
		p.pos++
		return true
	}
	return false
}

// parse turns a token stream into a syntax tree. Any leftover token after a
// complete expression is a syntax error.
func parse(toks []token) (*node, error) {
	p := &parser{toks: toks}
	if p.peek().kind == tokenEOF {
		return nil, syntaxErr(0, "empty expression")
	}
	n, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, syntaxErr(tok.pos, "unexpected token %s after end of expression", tok)
	}
	return n, nil
}

func (p *parser) parseAdditive() (*node, error) {
	n, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op binOp
		switch {
		case p.acceptOp("+"):
			op = binAdd
		case p.acceptOp("-"):
			op = binSub
		default:
			return n, nil
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, bin: op, left: n, right: rhs}
	}
}

func (p *parser) parseMultiplicative() (*node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op binOp
		switch {
		case p.acceptOp("*"):
			op = binMul
		case p.acceptOp("/"):
			op = binDiv
		case p.acceptOp("%"):
			op = binMod
		default:
			return n, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, bin: op, left: n, right: rhs}
	}
}

func (p *parser) parseUnary() (*node, error) {
	var op unOp
	switch {
	case p.acceptOp("+"):
		op = unPos
	case p.acceptOp("-"):
		op = unNeg
	default:
		return p.parsePower()
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeUnary, un: op, left: operand}, nil
}

func (p *parser) parsePower() (*node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.acceptOp("**") {
		return base, nil
	}
	// The exponent recurses into unary so that 2**-2 parses.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeBinary, bin: binPow, left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return &node{kind: nodeNumber, val: tok.val}, nil
	case tokenIdent:
		if p.acceptOp("(") {
			return p.parseCall(tok)
		}
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenOp:
		if tok.text == "(" {
			n, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			if !p.acceptOp(")") {
				return nil, syntaxErr(p.peek().pos, "missing closing parenthesis")
			}
			return n, nil
		}
		return nil, syntaxErr(tok.pos, "unexpected token %s", tok)
	case tokenEOF:
		return nil, syntaxErr(tok.pos, "unexpected end of expression")
	default:
		return nil, syntaxErr(tok.pos, "unexpected token %s", tok)
	}
}

// parseCall parses the argument list of name(...); the opening parenthesis
// has been consumed.
func (p *parser) parseCall(name token) (*node, error) {
	call := &node{kind: nodeCall, name: name.text}
	if p.acceptOp(")") {
		return call, nil
	}
	for {
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		call.args = append(call.args, arg)
		if p.acceptOp(",") {
			continue
		}
		if p.acceptOp(")") {
			return call, nil
		}
		tok := p.peek()
		if tok.kind == tokenEOF {
			return nil, syntaxErr(tok.pos, "missing closing parenthesis in call to %s", name.text)
		}
		return nil, syntaxErr(tok.pos, "unexpected token %s in call to %s", tok, name.text)
	}
}
