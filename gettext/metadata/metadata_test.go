package metadata

import "testing"

func TestParse(t *testing.T) {
	blob := "Project-Id-Version: 2.0\n" +
		"Content-Type: text/plain; charset=iso-8859-1\n" +
		"Plural-Forms: nplurals=2; plural=n!=1;\n"
	m, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m["Project-Id-Version"] != "2.0" {
		t.Errorf("Project-Id-Version = %q", m["Project-Id-Version"])
	}
	if cs, ok := m.Charset(); !ok || cs != "iso-8859-1" {
		t.Errorf("Charset() = %q, %v", cs, ok)
	}
	n, nOK, plural, pluralOK := m.PluralForms()
	if !nOK || n != 2 {
		t.Errorf("n_plurals = %d, %v", n, nOK)
	}
	if !pluralOK || plural != "n!=1" {
		t.Errorf("plural = %q, %v", plural, pluralOK)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("this line has no colon\n"); err == nil {
		t.Fatal("expected an error for a colon-less line")
	}
}

func TestParseEmptyLinesIgnored(t *testing.T) {
	m, err := Parse("\n\nContent-Type: text/plain; charset=utf-8\n\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cs, ok := m.Charset(); !ok || cs != "utf-8" {
		t.Errorf("Charset() = %q, %v", cs, ok)
	}
}

func TestCharsetMissing(t *testing.T) {
	m := Map{}
	if _, ok := m.Charset(); ok {
		t.Error("expected ok=false for a missing Content-Type header")
	}
}

func TestPluralFormsMissing(t *testing.T) {
	m := Map{}
	n, nOK, plural, pluralOK := m.PluralForms()
	if nOK || pluralOK || n != 0 || plural != "" {
		t.Errorf("expected zero values, got %d %v %q %v", n, nOK, plural, pluralOK)
	}
}

func TestPluralFormsNonIntegerNPlurals(t *testing.T) {
	m := Map{"Plural-Forms": "nplurals=many; plural=n!=1"}
	_, nOK, plural, pluralOK := m.PluralForms()
	if nOK {
		t.Error("expected nOK=false for a non-integer n_plurals")
	}
	if !pluralOK || plural != "n!=1" {
		t.Errorf("plural = %q, %v", plural, pluralOK)
	}
}
