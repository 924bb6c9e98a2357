// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gettext

import (
	"fmt"

	"github.com/justinas/gettext/gettext/pluralforms"
)

// Resolver picks the plural-form index to use for a given count. A
// Catalog's resolver is either a compiled plural expression tree or a
// caller-supplied function; both shapes satisfy this interface, so
// Catalog.NGettext never needs to know which one it has.
type Resolver interface {
	Resolve(n int64) int64
	fmt.Stringer
}

// ResolverFunc adapts a plain function to a Resolver, for callers who
// want to force a plural rule via ParseOptions.ForcePlural rather than
// relying on the catalog's own Plural-Forms header.
type ResolverFunc func(n int64) int64

// Resolve calls f.
func (f ResolverFunc) Resolve(n int64) int64 { return f(n) }

// String satisfies Resolver; function values carry no useful name.
func (f ResolverFunc) String() string { return "ResolverFunc(...)" }

// exprResolver is a Resolver backed by a compiled plural expression
// tree, the variant produced when a catalog's own Plural-Forms header
// is parsed.
type exprResolver struct {
	node pluralforms.Node
}

func (e exprResolver) Resolve(n int64) int64 { return e.node.Eval(n) }

func (e exprResolver) String() string { return e.node.String() }

// newExprResolver wraps a compiled plural expression tree as a
// Resolver.
func newExprResolver(node pluralforms.Node) Resolver {
	return exprResolver{node: node}
}

// DefaultResolver is the resolver used when a catalog declares no
// Plural-Forms header and the caller has not forced one: index 0 when
// n == 1, index 1 otherwise.
var DefaultResolver Resolver = newExprResolver(pluralforms.DefaultNode)
