// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gettext

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ParseOptions configures Catalog parsing: a forced character encoding,
// a forced plural resolver, or both. The zero value decodes under the
// catalog's own Content-Type charset (UTF-8 if it declares none) and
// resolves plurals with its own Plural-Forms header (DefaultResolver if
// it declares none).
type ParseOptions struct {
	forcedEncoding encoding.Encoding
	forcedResolver Resolver
}

// ForceEncoding fixes the character encoding used to decode every
// string in the file, bypassing the catalog's own Content-Type charset
// declaration (if any). Returns opts for chaining.
func (opts *ParseOptions) ForceEncoding(enc encoding.Encoding) *ParseOptions {
	opts.forcedEncoding = enc
	return opts
}

// ForcePlural fixes the resolver used to pick a plural form, bypassing
// the catalog's own Plural-Forms header (if any). Returns opts for
// chaining.
func (opts *ParseOptions) ForcePlural(r Resolver) *ParseOptions {
	opts.forcedResolver = r
	return opts
}

// Parse builds a Catalog from an MO file's contents under opts.
func (opts *ParseOptions) Parse(data []byte) (*Catalog, error) {
	return parse(data, opts)
}

// String renders opts for diagnostics. Encoding and resolver values
// aren't usefully printable on their own, so this names them instead.
func (opts *ParseOptions) String() string {
	enc := "discovery"
	if opts.forcedEncoding != nil {
		if name, err := htmlindex.Name(opts.forcedEncoding); err == nil {
			enc = name
		} else {
			enc = "forced"
		}
	}
	resolver := "discovery"
	if opts.forcedResolver != nil {
		resolver = opts.forcedResolver.String()
	}
	return fmt.Sprintf("ParseOptions{force_encoding: %s, force_plural: %s}", enc, resolver)
}
