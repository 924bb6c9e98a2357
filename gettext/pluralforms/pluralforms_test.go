// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluralforms

import "testing"

// germanic is n != 1 written with spaces, so TestParseLonghand can check
// that Parse strips them and resolves the formula to the n != 1 rule.
const germanic = "n != 1"

func TestParseWellKnownMatchesParser(t *testing.T) {
	for expr := range wellKnown {
		fast, err := Parse(expr)
		if err != nil {
			t.Fatalf("Parse(%q) (fast path): %v", expr, err)
		}
		slow, err := parse(expr)
		if err != nil {
			t.Fatalf("parse(%q) (slow path): %v", expr, err)
		}
		for n := int64(0); n < 200; n++ {
			if got, want := fast.Eval(n), slow.Eval(n); got != want {
				t.Errorf("%q: n=%d: fast path=%d, slow path=%d", expr, n, got, want)
			}
		}
	}
}

func TestParseLonghand(t *testing.T) {
	node, err := Parse(germanic)
	if err != nil {
		t.Fatalf("Parse(%q): %v", germanic, err)
	}
	for n, want := range map[int64]int64{0: 1, 1: 0, 2: 1, 100: 1} {
		if got := node.Eval(n); got != want {
			t.Errorf("n=%d: got %d, want %d", n, got, want)
		}
	}
}

func TestParseTernaryAndOr(t *testing.T) {
	node, err := Parse("(n == 1 || n == 2) ? 0 : 1")
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 0, 0, 1}
	for n, w := range want {
		if got := node.Eval(int64(n)); got != w {
			t.Errorf("n=%d: got %d, want %d", n, got, w)
		}
	}
}

func TestParseLithuanian(t *testing.T) {
	node, err := Parse("(n%10==1 && n%100!=11) ? 0 : ((n%10>=2 && (n%100<10 || n%100>=20)) ? 1 : 2)")
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int64]int64{1: 0, 2: 1, 9: 1, 10: 2, 11: 2, 21: 0, 100: 2}
	for n, want := range cases {
		if got := node.Eval(n); got != want {
			t.Errorf("n=%d: got %d, want %d", n, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	badExprs := []string{
		"1 *",
		"-1 * 2",
		"1 (1)",
		"1 ?",
		"1 ? 2",
		"1 :",
		"1 : 2",
		"2 * (3 * (4 + 5)",
		"2 * (3 * (4 + 5)))",
		"",
	}
	for _, expr := range badExprs {
		if _, err := parse(expr); err == nil {
			t.Errorf("parse(%q): expected an error, got nil", expr)
		}
	}
}
