// Package charset resolves a named character encoding to a decoder and
// decodes catalog byte strings under it.
//
// This is the "encoding translator" the teacher's MoReader doc comment
// anticipated but never implemented ("[c]urrently only UTF-8 encoding is
// supported. An encoding translator may be added in the future.").
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	gettexterr "github.com/justinas/gettext/gettext/errors"
)

// aliases maps labels gettext catalogs commonly emit in Content-Type
// charset= declarations to the canonical WHATWG label htmlindex expects.
// gettext/iconv favor "cpNNNN" spellings that the WHATWG registry does
// not recognize directly.
var aliases = map[string]string{
	"cp1250": "windows-1250",
	"cp1251": "windows-1251",
	"cp1252": "windows-1252",
	"cp1253": "windows-1253",
	"cp1254": "windows-1254",
	"cp1255": "windows-1255",
	"cp1256": "windows-1256",
	"cp1257": "windows-1257",
	"cp1258": "windows-1258",
	"cp936":  "gbk",
	"cp950":  "big5",
	"utf8":   "utf-8",
}

// UTF8 is the default encoding used before any charset has been
// discovered, and for catalogs that never declare one.
var UTF8 encoding.Encoding = unicode.UTF8

// Lookup resolves a WHATWG/IANA charset label (as found in a catalog's
// Content-Type header, e.g. "utf-8", "cp1257", "windows-1257") to an
// encoding.Encoding. It returns ok=false if the label is not recognized
// by either registry or the alias table.
func Lookup(label string) (encoding.Encoding, bool) {
	normalized := normalize(label)
	if enc, err := htmlindex.Get(normalized); err == nil {
		return enc, true
	}
	if canon, ok := aliases[normalized]; ok {
		if enc, err := htmlindex.Get(canon); err == nil {
			return enc, true
		}
	}
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, true
	}
	return nil, false
}

func normalize(label string) string {
	b := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}

// Decode decodes b under enc, returning a *gettexterr.Error with kind
// DecodingError if the byte sequence is invalid.
func Decode(enc encoding.Encoding, b []byte) (string, error) {
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", gettexterr.Newf(gettexterr.DecodingError, "%v", err)
	}
	return string(s), nil
}
