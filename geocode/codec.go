// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"encoding/binary"
	"fmt"
)

// Binary layout (§4.9, §6.2). A varint is unsigned LEB128. A
// length-prefixed string is a varint byte-length followed by UTF-8 bytes.
//
//	magic "PNGEO", version byte
//	entry_count: varint
//	entry_count * { prefix: length-prefixed ascii digit string,
//	                description: length-prefixed utf-8 string }
//
// Entries need not arrive sorted by prefix; decodeTable sorts and buckets
// them by digit length so Lookup can binary-search each length in turn.
const (
	magic   = "PNGEO"
	version = byte(1)
)

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) varint() uint64 {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		panic(fmt.Errorf("geocode: corrupt varint at offset %d", r.pos))
	}
	r.pos += n
	return v
}

func (r *byteReader) bytes(n int) []byte {
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *byteReader) string() string {
	n := int(r.varint())
	if n == 0 {
		return ""
	}
	return string(r.bytes(n))
}

// rawEntry is one decoded (prefix, description) pair before bucketing.
type rawEntry struct {
	prefix      string
	description string
}

// decodeEntries parses blob into its raw (prefix, description) pairs,
// without sorting or bucketing them — decodeTable does that.
func decodeEntries(blob []byte) (entries []rawEntry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("geocode: %v", rec)
		}
	}()
	r := &byteReader{buf: blob}
	if len(blob) < len(magic)+1 || string(r.bytes(len(magic))) != magic {
		return nil, fmt.Errorf("geocode: bad magic")
	}
	if v := r.bytes(1)[0]; v != version {
		return nil, fmt.Errorf("geocode: unsupported version %d", v)
	}
	count := int(r.varint())
	entries = make([]rawEntry, count)
	for i := 0; i < count; i++ {
		entries[i] = rawEntry{prefix: r.string(), description: r.string()}
	}
	return entries, nil
}

// encodeEntries is the encoder counterpart, used by cmd/gen-metadata to
// produce the files decodeEntries reads. It performs no sorting: the
// builder is expected to hand entries in whatever order its source data
// has them in, since decodeTable sorts on load.
func encodeEntries(entries []rawEntry) []byte {
	buf := make([]byte, 0, 64+16*len(entries))
	buf = append(buf, magic...)
	buf = append(buf, version)
	buf = appendVarint(buf, uint64(len(entries)))
	for _, e := range entries {
		buf = appendString(buf, e.prefix)
		buf = appendString(buf, e.description)
	}
	return buf
}

// RawEntry is the exported form of rawEntry, for callers outside this
// package (cmd/gen-metadata) that build prefix tables from source data.
type RawEntry struct {
	Prefix      string
	Description string
}

// EncodeTable renders entries into the binary layout decodeEntries reads
// back. It is exported only for cmd/gen-metadata; runtime code never
// calls it.
func EncodeTable(entries []RawEntry) []byte {
	raw := make([]rawEntry, len(entries))
	for i, e := range entries {
		raw[i] = rawEntry{prefix: e.Prefix, description: e.Description}
	}
	return encodeEntries(raw)
}

func appendVarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}

func appendString(buf []byte, s string) []byte {
	buf = appendVarint(buf, uint64(len(s)))
	return append(buf, s...)
}
