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
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	// tokenEOF marks the end of the input.
	tokenEOF tokenKind = iota
	// tokenNumber is a numeric literal.
	tokenNumber
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is an operator or punctuation: + - * / % ** ( ) ,
	tokenOp
)

type token struct {
	kind tokenKind
	text string  // operator symbol or identifier name
	val  float64 // value of a number token
	pos  int     // 1-based rune position in the input
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// tokenize scans the whole input eagerly and returns its tokens, ending with
// a tokenEOF entry. The grammar is tiny, so there is no benefit to streaming.
func tokenize(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9', r == '.':
			tok, n, err := scanNumber(runes, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = n
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			toks = append(toks, token{kind: tokenIdent, text: string(runes[start:i]), pos: start + 1})
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokenOp, text: "**", pos: i + 1})
				i += 2
			} else {
				toks = append(toks, token{kind: tokenOp, text: "*", pos: i + 1})
				i++
			}
		case strings.ContainsRune("+-/%(),", r):
			toks = append(toks, token{kind: tokenOp, text: string(r), pos: i + 1})
			i++
		default:
			return nil, syntaxErr(i+1, "unexpected character %q", r)
		}
	}
	toks = append(toks, token{kind: tokenEOF, pos: len(runes) + 1})
	return toks, nil
}

// scanNumber scans a floating-point literal starting at runes[start]: digits,
// an optional single decimal point, and an optional e/E exponent with an
// optional sign. Hexadecimal literals and underscore separators are not part
// of the grammar.
func scanNumber(runes []rune, start int) (token, int, error) {
	i := start
	digits := false
	for i < len(runes) && isDigit(runes[i]) {
		i++
		digits = true
	}
	if i < len(runes) && runes[i] == '.' {
		i++
		for i < len(runes) && isDigit(runes[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return token{}, 0, syntaxErr(start+1, "malformed number")
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j >= len(runes) || !isDigit(runes[j]) {
			return token{}, 0, syntaxErr(start+1, "malformed number: missing exponent digits")
		}
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
		i = j
	}
	text := string(runes[start:i])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, syntaxErr(start+1, "malformed number %q", text)
	}
	return token{kind: tokenNumber, text: text, val: v, pos: start + 1}, i, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
