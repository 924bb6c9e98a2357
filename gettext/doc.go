// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gettext reads GNU-style binary translation catalogs (MO
// files) and serves singular and plural translations at runtime, with
// optional message context.
//
//	data, err := os.ReadFile("fr.mo")
//	cat, err := gettext.Parse(data)
//	cat.Gettext("Hello")
//	cat.NGettext("%d file", "%d files", n)
//
// A Catalog built by Parse or ParseOptions.Parse is immutable and safe
// for concurrent queries. This package has no notion of a process-wide
// "current locale"; callers hold and select catalogs explicitly.
package gettext
