// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluralforms

import "strings"

// Parse parses a Plural-Forms "plural=" expression and returns the
// compiled Node tree, or a PluralParsing error (see gettext/errors) if
// the formula cannot be parsed.
//
// Well-known formulas from the gettext manual are looked up in a
// precomputed table first, skipping the recursive-descent parse
// entirely - the formulas below are reproduced verbatim from
// http://www.gnu.org/software/gettext/manual/gettext.html#Plural-forms.
func Parse(expr string) (Node, error) {
	normalized := strings.Replace(expr, " ", "", -1)
	if n, ok := wellKnown[normalized]; ok {
		return n, nil
	}
	return parse(expr)
}

// DefaultNode is the resolver used when a catalog declares no
// Plural-Forms header: "n != 1", valid for English and similar
// languages.
var DefaultNode Node = &OpNode{Op: OpNeq, Left: NNode{}, Right: IntNode(1)}

// wellKnown maps a handful of Plural-Forms formulas straight from the
// gettext manual to precomputed trees, avoiding a parse on the hot path
// of opening a catalog in one of these very common languages.
var wellKnown = map[string]Node{
	// nplurals=1; plural=0;
	"0": IntNode(0),
	// nplurals=2; plural=n != 1; (English, German, ...)
	"n!=1": DefaultNode,
	// nplurals=2; plural=n>1; (French, Brazilian Portuguese, ...)
	"n>1": &OpNode{Op: OpGt, Left: NNode{}, Right: IntNode(1)},
	// nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n!=0 ? 1 : 2; (Latvian)
	"n%10==1&&n%100!=11?0:n!=0?1:2": &TernaryNode{
		Cond: &OpNode{Op: OpAnd,
			Left:  &OpNode{Op: OpEq, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(10)}, Right: IntNode(1)},
			Right: &OpNode{Op: OpNeq, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(100)}, Right: IntNode(11)},
		},
		Then: IntNode(0),
		Else: &TernaryNode{
			Cond: &OpNode{Op: OpNeq, Left: NNode{}, Right: IntNode(0)},
			Then: IntNode(1),
			Else: IntNode(2),
		},
	},
	// nplurals=3; plural=n==1 ? 0 : n==2 ? 1 : 2; (Scottish Gaelic)
	"n==1?0:n==2?1:2": &TernaryNode{
		Cond: &OpNode{Op: OpEq, Left: NNode{}, Right: IntNode(1)},
		Then: IntNode(0),
		Else: &TernaryNode{
			Cond: &OpNode{Op: OpEq, Left: NNode{}, Right: IntNode(2)},
			Then: IntNode(1),
			Else: IntNode(2),
		},
	},
	// nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2; (Lithuanian, Russian, ...)
	"n%10==1&&n%100!=11?0:n%10>=2&&(n%100<10||n%100>=20)?1:2": &TernaryNode{
		Cond: &OpNode{Op: OpAnd,
			Left:  &OpNode{Op: OpEq, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(10)}, Right: IntNode(1)},
			Right: &OpNode{Op: OpNeq, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(100)}, Right: IntNode(11)},
		},
		Then: IntNode(0),
		Else: &TernaryNode{
			Cond: &OpNode{Op: OpAnd,
				Left: &OpNode{Op: OpGte, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(10)}, Right: IntNode(2)},
				Right: &OpNode{Op: OpOr,
					Left:  &OpNode{Op: OpLt, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(100)}, Right: IntNode(10)},
					Right: &OpNode{Op: OpGte, Left: &OpNode{Op: OpMod, Left: NNode{}, Right: IntNode(100)}, Right: IntNode(20)},
				},
			},
			Then: IntNode(1),
			Else: IntNode(2),
		},
	},
}
