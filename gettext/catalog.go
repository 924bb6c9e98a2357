// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gettext

import (
	"github.com/justinas/gettext/gettext/metadata"
	"github.com/justinas/gettext/gettext/mo"
	"github.com/justinas/gettext/gettext/pluralforms"
)

// Catalog is a set of translation strings parsed out of one MO file,
// plus the resolver used to pick a plural form and the metadata header
// the file declared (if any).
//
// A Catalog is immutable after it is built, aside from Merge; queries
// are safe for concurrent use by many goroutines.
type Catalog struct {
	messages map[string]Message
	resolver Resolver
	meta     metadata.Map
	hasMeta  bool
}

// Empty returns a Catalog with no messages. Every lookup against it
// falls back to the id (or plural id) passed in, per the default
// resolver.
func Empty() *Catalog {
	return &Catalog{
		messages: make(map[string]Message),
		resolver: DefaultResolver,
	}
}

// Parse parses a gettext catalog from the given MO file contents. It is
// equivalent to (&ParseOptions{}).Parse(data).
func Parse(data []byte) (*Catalog, error) {
	return new(ParseOptions).Parse(data)
}

// parse builds a Catalog from data using opts.forcedEncoding (nil to use
// the encoding-discovery protocol) and opts.forcedResolver (nil to use
// the catalog's own Plural-Forms header, falling back to DefaultResolver).
func parse(data []byte, opts *ParseOptions) (*Catalog, error) {
	result, err := mo.Decode(data, opts.forcedEncoding)
	if err != nil {
		return nil, err
	}

	cat := Empty()
	if result.HasMetadata {
		cat.meta, cat.hasMeta = result.Metadata, true
	}

	switch {
	case opts.forcedResolver != nil:
		cat.resolver = opts.forcedResolver
	case result.HasPluralExpr:
		node, err := pluralforms.Parse(result.PluralExpr)
		if err != nil {
			return nil, err
		}
		cat.resolver = newExprResolver(node)
	}

	for _, e := range result.Entries {
		cat.insert(Message{
			ID:           e.ID,
			Context:      e.Context,
			HasContext:   e.HasContext,
			PluralID:     e.PluralID,
			HasPluralID:  e.HasPluralID,
			Translations: e.Translations,
		})
	}
	return cat, nil
}

func (c *Catalog) insert(m Message) {
	c.messages[m.key()] = m
}

// Metadata returns the catalog's parsed header map and whether the
// source file declared one at all (entry 0 with an empty id).
func (c *Catalog) Metadata() (metadata.Map, bool) {
	return c.meta, c.hasMeta
}

// Merge overlays other's messages onto c; on key collision the incoming
// message from other wins. c's resolver and metadata are left
// untouched.
func (c *Catalog) Merge(other *Catalog) {
	for k, m := range other.messages {
		c.messages[k] = m
	}
}

// Gettext returns the singular translation of id, or id itself if no
// translation exists.
func (c *Catalog) Gettext(id string) string {
	if msg, ok := c.messages[key("", false, id)]; ok {
		if s, ok := translated(msg, 0); ok {
			return s
		}
	}
	return id
}

// PGettext returns the singular translation of id in the disambiguating
// context ctx, or id itself if no translation exists.
func (c *Catalog) PGettext(ctx, id string) string {
	if msg, ok := c.messages[key(ctx, true, id)]; ok {
		if s, ok := translated(msg, 0); ok {
			return s
		}
	}
	return id
}

// NGettext returns the translation of id chosen by the catalog's
// resolver for the count n, or id (n == 1) / plural (n != 1) if no
// translation exists or the resolver's index is out of range.
func (c *Catalog) NGettext(id, plural string, n int64) string {
	return c.nget(key("", false, id), id, plural, n)
}

// NPGettext is NGettext with a disambiguating context, as PGettext is
// to Gettext.
func (c *Catalog) NPGettext(ctx, id, plural string, n int64) string {
	return c.nget(key(ctx, true, id), id, plural, n)
}

func (c *Catalog) nget(k, id, plural string, n int64) string {
	idx := c.resolver.Resolve(n)
	if msg, ok := c.messages[k]; ok {
		if s, ok := translated(msg, idx); ok {
			return s
		}
	}
	if n == 1 {
		return id
	}
	return plural
}

func translated(m Message, idx int64) (string, bool) {
	if idx < 0 || idx >= int64(len(m.Translations)) {
		return "", false
	}
	return m.Translations[idx], true
}
