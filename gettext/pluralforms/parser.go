// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluralforms

import (
	"strconv"

	gettexterr "github.com/justinas/gettext/gettext/errors"
)

// parse parses a plural expression into a Node tree.
//
// Unlike a conventional precedence-climbing parser, this walks a fixed
// chain of levels from loosest to tightest binding: parens, &&, ||,
// ternary, >=, >, <=, <, ==, !=, %, unary !, then the two leaf forms
// (integer literal, "n"). At each level the parser scans the whole
// current span left to right for the first occurrence of that level's
// token outside any parentheses; if found, it splits the span there and
// recurses on both halves (or three spans, for the ternary) from the top
// of the chain again. Because every split restarts the chain rather than
// descending to the next level, two operators at the same nominal level
// come out right-associative in the resulting tree - harmless for every
// plural formula in the gettext manual, since none mixes same-level
// operators in a way where associativity would matter.
func parse(expr string) (Node, error) {
	return parseParens(stripSpace(expr))
}

func stripSpace(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b = append(b, s[i])
	}
	return string(b)
}

// parseParens strips one layer of fully-wrapping parentheses and
// re-enters the chain on the inner span. A span is "fully wrapped" only
// when the paren opening at index 0 matches the closing paren at the
// final index - tracking depth accounts for any nested parens in
// between.
func parseParens(s string) (Node, error) {
	if len(s) >= 2 && s[0] == '(' {
		if end, ok := matchParen(s, 0); ok && end == len(s)-1 {
			return parse(s[1:end])
		}
	}
	return parseAnd(s)
}

// matchParen returns the index of the ')' matching the '(' at open,
// tracking nesting depth, or ok=false if the parens are unbalanced.
func matchParen(s string, open int) (end int, ok bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// findTop returns the index of the first occurrence of tok in s at
// paren-depth zero, or -1 if tok does not occur outside parentheses.
func findTop(s, tok string) int {
	depth := 0
	for i := 0; i+len(tok) <= len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && s[i:i+len(tok)] == tok {
			return i
		}
	}
	return -1
}

// binaryLevel tries to split s on the first top-level occurrence of tok,
// recursing into the chain on both sides and combining them with op. If
// tok does not occur at the top level it falls through to next.
func binaryLevel(s, tok string, op Op, next func(string) (Node, error)) (Node, error) {
	idx := findTop(s, tok)
	if idx == -1 {
		return next(s)
	}
	left, err := parse(s[:idx])
	if err != nil {
		return nil, err
	}
	right, err := parse(s[idx+len(tok):])
	if err != nil {
		return nil, err
	}
	return &OpNode{Op: op, Left: left, Right: right}, nil
}

func parseAnd(s string) (Node, error) { return binaryLevel(s, "&&", OpAnd, parseOr) }
func parseOr(s string) (Node, error)  { return binaryLevel(s, "||", OpOr, parseTernary) }

// parseTernary looks for the first top-level '?'; if present, it then
// looks for the first top-level ':' after it, splitting the span into
// condition, then-branch and else-branch.
func parseTernary(s string) (Node, error) {
	qPos := findTopByte(s, '?', 0)
	if qPos == -1 {
		return parseGe(s)
	}
	cPos := findTopByte(s, ':', qPos+1)
	if cPos == -1 {
		return nil, gettexterr.New(gettexterr.PluralParsing)
	}
	cond, err := parse(s[:qPos])
	if err != nil {
		return nil, err
	}
	then, err := parse(s[qPos+1 : cPos])
	if err != nil {
		return nil, err
	}
	els, err := parse(s[cPos+1:])
	if err != nil {
		return nil, err
	}
	return &TernaryNode{Cond: cond, Then: then, Else: els}, nil
}

// findTopByte is findTop specialized to a single byte token, starting
// the scan (and its depth tracking) from start.
func findTopByte(s string, b byte, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && s[i] == b {
			return i
		}
	}
	return -1
}

func parseGe(s string) (Node, error)  { return binaryLevel(s, ">=", OpGte, parseGt) }
func parseGt(s string) (Node, error)  { return binaryLevel(s, ">", OpGt, parseLe) }
func parseLe(s string) (Node, error)  { return binaryLevel(s, "<=", OpLte, parseLt) }
func parseLt(s string) (Node, error)  { return binaryLevel(s, "<", OpLt, parseEq) }
func parseEq(s string) (Node, error)  { return binaryLevel(s, "==", OpEq, parseNeq) }
func parseNeq(s string) (Node, error) { return binaryLevel(s, "!=", OpNeq, parseMod) }
func parseMod(s string) (Node, error) { return binaryLevel(s, "%", OpMod, parseNot) }

func parseNot(s string) (Node, error) {
	if len(s) > 0 && s[0] == '!' {
		child, err := parse(s[1:])
		if err != nil {
			return nil, err
		}
		return &NotNode{Child: child}, nil
	}
	return parseLeaf(s)
}

// parseLeaf parses the two leaf forms: a non-negative decimal integer,
// or the literal "n". Anything else is a syntax error.
func parseLeaf(s string) (Node, error) {
	if s == "n" {
		return NNode{}, nil
	}
	if s != "" && isAllDigits(s) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return IntNode(v), nil
		}
	}
	return nil, gettexterr.New(gettexterr.PluralParsing)
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
