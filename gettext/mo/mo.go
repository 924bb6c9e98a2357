// Package mo implements the GNU MO binary catalog layout: header
// validation, the parallel originals/translations table walk, and
// context/plural field splitting. It hands decoded strings and the raw
// metadata blob up to the gettext package, which is responsible for
// turning them into a Catalog.
//
// Grounded on the teacher's MoReader.Read in gettext/mo.go, generalized
// from a single hardcoded UTF-8 decode to the encoding-discovery
// protocol its doc comment said was future work.
package mo

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding"

	"github.com/justinas/gettext/gettext/charset"
	gettexterr "github.com/justinas/gettext/gettext/errors"
	"github.com/justinas/gettext/gettext/metadata"
)

const (
	magicLittleEndian uint32 = 0x950412de
	magicBigEndian    uint32 = 0xde120495
	headerSize               = 28

	contextSep = 0x04
	pluralSep  = 0x00
)

// Entry is one decoded (non-metadata) record from the originals and
// translations tables.
type Entry struct {
	Context      string
	HasContext   bool
	ID           string
	PluralID     string
	HasPluralID  bool
	Translations []string
}

// Result is the decoded contents of an MO file: every message entry,
// plus the metadata blob (entry 0, empty id) if the file declared one.
type Result struct {
	Entries []Entry

	Metadata    metadata.Map
	HasMetadata bool

	// PluralExpr is the raw "plural" piece of the Plural-Forms header,
	// if the metadata declared one.
	PluralExpr   string
	HasPluralExpr bool
}

// Decode validates the header, walks both string tables, and decodes
// every entry. forced, if non-nil, is used for every string in the file
// and disables the metadata-driven charset switch; otherwise decoding
// starts under charset.UTF8 and switches once the metadata entry (which
// is always decoded under the starting encoding) declares a charset.
func Decode(data []byte, forced encoding.Encoding) (*Result, error) {
	if len(data) < headerSize {
		return nil, gettexterr.New(gettexterr.Eof)
	}

	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[0:4]) {
	case magicLittleEndian:
		order = binary.LittleEndian
	case magicBigEndian:
		order = binary.BigEndian
	default:
		return nil, gettexterr.New(gettexterr.BadMagic)
	}

	n := order.Uint32(data[8:12])
	originalsOff := order.Uint32(data[12:16])
	translationsOff := order.Uint32(data[16:20])

	active := forced
	forcedEncoding := forced != nil
	if active == nil {
		active = charset.UTF8
	}

	res := &Result{Entries: make([]Entry, 0, n)}

	for i := uint32(0); i < n; i++ {
		oBlob, err := readOriginalBlob(data, order, originalsOff, i)
		if err != nil {
			return nil, err
		}
		tBlob, err := readBlob(data, order, translationsOff, i)
		if err != nil {
			return nil, err
		}

		var ctxBytes, rest []byte
		hasContext := false
		if idx := bytes.IndexByte(oBlob, contextSep); idx != -1 {
			ctxBytes, rest, hasContext = oBlob[:idx], oBlob[idx+1:], true
		} else {
			rest = oBlob
		}

		// A 0x00 is embedded in the counted bytes only when the entry
		// has a plural form (msgid\0msgid_plural); a singular entry's
		// only NUL is the implicit terminator past the counted length,
		// which readOriginalBlob does not include here.
		var idBytes, pluralBytes []byte
		if idx0 := bytes.IndexByte(rest, pluralSep); idx0 != -1 {
			idBytes = rest[:idx0]
			pluralBytes = rest[idx0+1:]
		} else {
			idBytes = rest
		}

		ctx, err := charset.Decode(active, ctxBytes)
		if err != nil {
			return nil, err
		}
		id, err := charset.Decode(active, idBytes)
		if err != nil {
			return nil, err
		}
		pluralID, err := charset.Decode(active, pluralBytes)
		if err != nil {
			return nil, err
		}

		var translations []string
		for _, part := range bytes.Split(tBlob, []byte{pluralSep}) {
			s, err := charset.Decode(active, part)
			if err != nil {
				return nil, err
			}
			translations = append(translations, s)
		}

		if id == "" {
			if i != 0 {
				return nil, gettexterr.New(gettexterr.MisplacedMetadata)
			}
			blob := ""
			if len(translations) > 0 {
				blob = translations[0]
			}
			meta, err := metadata.Parse(blob)
			if err != nil {
				return nil, err
			}
			res.Metadata, res.HasMetadata = meta, true

			if !forcedEncoding {
				if label, ok := meta.Charset(); ok {
					enc, ok := charset.Lookup(label)
					if !ok {
						return nil, gettexterr.Newf(gettexterr.UnknownEncoding, "%s", label)
					}
					active = enc
				}
			}
			if _, _, plural, ok := meta.PluralForms(); ok {
				res.PluralExpr, res.HasPluralExpr = plural, true
			}
			continue
		}

		res.Entries = append(res.Entries, Entry{
			Context:      ctx,
			HasContext:   hasContext,
			ID:           id,
			PluralID:     pluralID,
			HasPluralID:  len(pluralBytes) > 0,
			Translations: translations,
		})
	}

	return res, nil
}

// readBlob reads the length/offset record at table+8*i and returns the
// byte slice it designates, failing with Eof if either the record or
// the blob it points to runs past the end of data.
func readBlob(data []byte, order binary.ByteOrder, table uint32, i uint32) ([]byte, error) {
	recOff := uint64(table) + uint64(i)*8
	if recOff+8 > uint64(len(data)) {
		return nil, gettexterr.New(gettexterr.Eof)
	}
	length := order.Uint32(data[recOff : recOff+4])
	offset := order.Uint32(data[recOff+4 : recOff+8])
	end := uint64(offset) + uint64(length)
	if end > uint64(len(data)) {
		return nil, gettexterr.New(gettexterr.Eof)
	}
	return data[offset:end], nil
}

// readOriginalBlob is readBlob for the originals table: it additionally
// requires the implicit NUL terminator at offset+length to lie within
// data, since the format guarantees one there and the caller relies on
// its presence to tell a singular entry from a truncated file.
func readOriginalBlob(data []byte, order binary.ByteOrder, table uint32, i uint32) ([]byte, error) {
	recOff := uint64(table) + uint64(i)*8
	if recOff+8 > uint64(len(data)) {
		return nil, gettexterr.New(gettexterr.Eof)
	}
	length := order.Uint32(data[recOff : recOff+4])
	offset := order.Uint32(data[recOff+4 : recOff+8])
	end := uint64(offset) + uint64(length)
	if end+1 > uint64(len(data)) {
		return nil, gettexterr.New(gettexterr.Eof)
	}
	return data[offset:end], nil
}
