// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gettext

import (
	"testing"

	"github.com/justinas/gettext/gettext/internal/mofixture"
)

// TestIntegration mirrors the reference implementation's end-to-end
// suite: a catalog with plain, plural, contextual and contextual-plural
// entries, queried through all four front-door methods including the
// non-existent-key fallback paths.
func TestIntegration(t *testing.T) {
	data := mofixture.Build("",
		mofixture.Entry{ID: "existent", Translations: []string{"egzistuojantis"}},
		mofixture.Entry{ID: "a good string", PluralID: "good strings", Translations: []string{"gera eilute", "geros eilutes"}},
		mofixture.Entry{Context: "ctxt", HasContext: true, ID: "existent", Translations: []string{"egzistuojantis kontekste"}},
		mofixture.Entry{
			Context: "ctxt", HasContext: true,
			ID: "a good string", PluralID: "good strings",
			Translations: []string{"gera eilute kontekste", "geros eilutes kontekste"},
		},
	)
	cat, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	assertEq(t, cat.Gettext("non-existent"), "non-existent")
	assertEq(t, cat.Gettext("existent"), "egzistuojantis")

	assertEq(t, cat.NGettext("a bad string", "bad strings", 1), "a bad string")
	assertEq(t, cat.NGettext("a bad string", "bad strings", 2), "bad strings")
	assertEq(t, cat.NGettext("a good string", "good strings", 1), "gera eilute")
	assertEq(t, cat.NGettext("a good string", "good strings", 2), "geros eilutes")

	assertEq(t, cat.PGettext("ctxt", "non-existent"), "non-existent")
	assertEq(t, cat.PGettext("ctxt", "existent"), "egzistuojantis kontekste")

	assertEq(t, cat.NPGettext("ctxt", "a bad string", "bad strings", 1), "a bad string")
	assertEq(t, cat.NPGettext("ctxt", "a bad string", "bad strings", 2), "bad strings")
	assertEq(t, cat.NPGettext("ctxt", "a good string", "good strings", 1), "gera eilute kontekste")
	assertEq(t, cat.NPGettext("ctxt", "a good string", "good strings", 2), "geros eilutes kontekste")
}

func assertEq(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestDeterminism checks that parsing the same bytes twice and querying
// each catalog independently gives identical results.
func TestDeterminism(t *testing.T) {
	data := mofixture.Build("", mofixture.Entry{ID: "Text", Translations: []string{"Tekstas"}})
	c1, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if c1.Gettext("Text") != c2.Gettext("Text") {
		t.Error("parsing the same bytes twice produced different results")
	}
}
