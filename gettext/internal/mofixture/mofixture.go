// Package mofixture builds little-endian MO file bytes for use as test
// fixtures. It is test-support code, not a public writer: the library
// this repository implements treats MO serialization as out of scope.
//
// Adapted from the teacher's moMessageWriter in gettext/mo.go, trimmed
// to the one thing tests need: turning a handful of (context, id,
// plural id, translations) tuples plus an optional header blob into
// valid MO bytes.
package mofixture

import (
	"bytes"
	"encoding/binary"
)

const magicLittleEndian uint32 = 0x950412de

// Entry is one message to bake into a fixture.
type Entry struct {
	Context      string
	HasContext   bool
	ID           string
	PluralID     string
	Translations []string
}

// Build assembles an MO file. If header is non-empty, it is emitted as
// entry 0 with an empty id, ahead of entries in the given order.
func Build(header string, entries ...Entry) []byte {
	all := make([]Entry, 0, len(entries)+1)
	if header != "" {
		all = append(all, Entry{Translations: []string{header}})
	}
	all = append(all, entries...)

	count := uint32(len(all))
	originals := new(bytes.Buffer)
	translations := new(bytes.Buffer)

	type record struct{ length, offset uint32 }
	oRecords := make([]record, count)
	tRecords := make([]record, count)

	for i, e := range all {
		src := e.ID
		if e.HasContext {
			src = e.Context + "\x04" + src
		}
		if e.PluralID != "" {
			src += "\x00" + e.PluralID
		}
		oRecords[i] = record{length: uint32(len(src)), offset: uint32(originals.Len())}
		originals.WriteString(src)
		originals.WriteByte(0)

		dst := joinNUL(e.Translations)
		tRecords[i] = record{length: uint32(len(dst)), offset: uint32(translations.Len())}
		translations.WriteString(dst)
		translations.WriteByte(0)
	}

	originalsTableOff := uint32(28)
	translationsTableOff := originalsTableOff + count*8
	originalsDataOff := translationsTableOff + count*8
	translationsDataOff := originalsDataOff + uint32(originals.Len())

	buf := new(bytes.Buffer)
	header32 := []uint32{
		magicLittleEndian,
		0, // revision
		count,
		originalsTableOff,
		translationsTableOff,
		0, // hash table size
		0, // hash table offset
	}
	binary.Write(buf, binary.LittleEndian, header32)

	for _, r := range oRecords {
		binary.Write(buf, binary.LittleEndian, []uint32{r.length, r.offset + originalsDataOff})
	}
	for _, r := range tRecords {
		binary.Write(buf, binary.LittleEndian, []uint32{r.length, r.offset + translationsDataOff})
	}
	buf.Write(originals.Bytes())
	buf.Write(translations.Bytes())

	return buf.Bytes()
}

func joinNUL(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\x00"
		}
		out += p
	}
	return out
}
