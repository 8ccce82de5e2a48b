// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

import (
	"encoding/binary"
	"fmt"
)

// Binary layout (§6.1). A varint is unsigned LEB128. A length-prefixed
// string is a varint byte-length followed by UTF-8 bytes. An "optional"
// value is a one-byte presence flag followed by the value if present.
//
//	magic "PNMD", version byte
//	region_count: varint
//	region_count * { id: string, country_code: varint, main: bool,
//	                 body_len: varint, body: body_len bytes }
//	nongeo_count: varint
//	nongeo_count * { country_code: varint, body_len: varint, body: body_len bytes }
//
// A record body holds every Metadata field except id/country_code/main,
// which live in the index entry above it.
const (
	magic   = "PNMD"
	version = byte(1)
)

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) varint() uint64 {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		panic(fmt.Errorf("metadata: corrupt varint at offset %d", r.pos))
	}
	r.pos += n
	return v
}

func (r *byteReader) byte() byte {
	b := r.buf[r.pos]
	r.pos++
	return b
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

func (r *byteReader) optString() string {
	if r.byte() == 0 {
		return ""
	}
	return r.string()
}

func (r *byteReader) boolean() bool {
	return r.byte() != 0
}

func (r *byteReader) lengths() []int {
	n := int(r.varint())
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = int(r.varint())
	}
	return out
}

func (r *byteReader) descriptor() *Descriptor {
	return &Descriptor{
		NationalNumberPattern:    r.string(),
		PossibleLengths:          r.lengths(),
		PossibleLengthsLocalOnly: r.lengths(),
		ExampleNumber:            r.optString(),
	}
}

func (r *byteReader) optDescriptor() *Descriptor {
	if r.byte() == 0 {
		return nil
	}
	return r.descriptor()
}

func (r *byteReader) numberFormat() NumberFormat {
	f := NumberFormat{
		Pattern:        r.string(),
		FormatTemplate: r.string(),
	}
	n := int(r.varint())
	if n > 0 {
		f.LeadingDigits = make([]string, n)
		for i := range f.LeadingDigits {
			f.LeadingDigits[i] = r.string()
		}
	}
	f.NationalPrefixFormattingRule = r.optString()
	f.DomesticCarrierCodeFormattingRule = r.optString()
	f.NationalPrefixOptionalWhenFormatting = r.boolean()
	f.InternationalFormat = r.optString()
	return f
}

func (r *byteReader) formatsList() []NumberFormat {
	n := int(r.varint())
	if n == 0 {
		return nil
	}
	out := make([]NumberFormat, n)
	for i := range out {
		out[i] = r.numberFormat()
	}
	return out
}

// decodeBody parses everything in a Metadata record except id, country
// code, and main_country_for_code, which the caller supplies from the
// lightweight index entry that located this body's bytes.
func decodeBody(body []byte, id string, countryCode int, main bool) *Metadata {
	r := &byteReader{buf: body}
	m := &Metadata{ID: id, CountryCode: countryCode, MainCountryForCode: main}
	m.InternationalPrefix = r.string()
	m.PreferredInternationalPrefix = r.optString()
	m.NationalPrefix = r.optString()
	m.NationalPrefixForParsing = r.optString()
	m.NationalPrefixTransformRule = r.optString()
	m.PreferredExtnPrefix = r.optString()
	m.MobileNumberPortableRegion = r.boolean()
	m.LeadingDigits = r.optString()
	m.General = r.optDescriptor()
	m.FixedLine = r.optDescriptor()
	m.Mobile = r.optDescriptor()
	m.TollFree = r.optDescriptor()
	m.PremiumRate = r.optDescriptor()
	m.SharedCost = r.optDescriptor()
	m.PersonalNumber = r.optDescriptor()
	m.Voip = r.optDescriptor()
	m.Pager = r.optDescriptor()
	m.Uan = r.optDescriptor()
	m.Voicemail = r.optDescriptor()
	m.NoInternationalDialling = r.optDescriptor()
	m.NumberFormats = r.formatsList()
	m.InternationalFormats = r.formatsList()
	return m
}

// byteWriter is the encode-side mirror of byteReader, used only by the
// offline build tool (cmd/gen-metadata) to produce the blob byteReader
// consumes; nothing at runtime writes metadata.
type byteWriter struct {
	buf []byte
}

func (w *byteWriter) varint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf = append(w.buf, tmp[:n]...)
}

func (w *byteWriter) byte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *byteWriter) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *byteWriter) string(s string) {
	w.varint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *byteWriter) optString(s string) {
	if s == "" {
		w.byte(0)
		return
	}
	w.byte(1)
	w.string(s)
}

func (w *byteWriter) boolean(b bool) {
	if b {
		w.byte(1)
	} else {
		w.byte(0)
	}
}

func (w *byteWriter) lengths(ls []int) {
	w.varint(uint64(len(ls)))
	for _, l := range ls {
		w.varint(uint64(l))
	}
}

func (w *byteWriter) descriptor(d *Descriptor) {
	w.string(d.NationalNumberPattern)
	w.lengths(d.PossibleLengths)
	w.lengths(d.PossibleLengthsLocalOnly)
	w.optString(d.ExampleNumber)
}

func (w *byteWriter) optDescriptor(d *Descriptor) {
	if d == nil {
		w.byte(0)
		return
	}
	w.byte(1)
	w.descriptor(d)
}

func (w *byteWriter) numberFormat(f NumberFormat) {
	w.string(f.Pattern)
	w.string(f.FormatTemplate)
	w.varint(uint64(len(f.LeadingDigits)))
	for _, ld := range f.LeadingDigits {
		w.string(ld)
	}
	w.optString(f.NationalPrefixFormattingRule)
	w.optString(f.DomesticCarrierCodeFormattingRule)
	w.boolean(f.NationalPrefixOptionalWhenFormatting)
	w.optString(f.InternationalFormat)
}

func (w *byteWriter) formatsList(fs []NumberFormat) {
	w.varint(uint64(len(fs)))
	for _, f := range fs {
		w.numberFormat(f)
	}
}

// encodeBody renders everything encodeBody's decode counterpart
// (decodeBody) reads back: every Metadata field except id, country code,
// and main_country_for_code, which the index entry around this body
// already carries.
func encodeBody(m *Metadata) []byte {
	w := &byteWriter{}
	w.string(m.InternationalPrefix)
	w.optString(m.PreferredInternationalPrefix)
	w.optString(m.NationalPrefix)
	w.optString(m.NationalPrefixForParsing)
	w.optString(m.NationalPrefixTransformRule)
	w.optString(m.PreferredExtnPrefix)
	w.boolean(m.MobileNumberPortableRegion)
	w.optString(m.LeadingDigits)
	w.optDescriptor(m.General)
	w.optDescriptor(m.FixedLine)
	w.optDescriptor(m.Mobile)
	w.optDescriptor(m.TollFree)
	w.optDescriptor(m.PremiumRate)
	w.optDescriptor(m.SharedCost)
	w.optDescriptor(m.PersonalNumber)
	w.optDescriptor(m.Voip)
	w.optDescriptor(m.Pager)
	w.optDescriptor(m.Uan)
	w.optDescriptor(m.Voicemail)
	w.optDescriptor(m.NoInternationalDialling)
	w.formatsList(m.NumberFormats)
	w.formatsList(m.InternationalFormats)
	return w.buf
}

// EncodeBlob renders regions and nonGeo into the binary layout documented
// above, the inverse of decodeIndex/decodeBody. It is exported only for
// cmd/gen-metadata; runtime code never calls it.
func EncodeBlob(regions []*Metadata, nonGeo []*Metadata) []byte {
	w := &byteWriter{}
	w.bytes([]byte(magic))
	w.byte(version)

	w.varint(uint64(len(regions)))
	for _, m := range regions {
		body := encodeBody(m)
		w.string(m.ID)
		w.varint(uint64(m.CountryCode))
		w.boolean(m.MainCountryForCode)
		w.varint(uint64(len(body)))
		w.bytes(body)
	}

	w.varint(uint64(len(nonGeo)))
	for _, m := range nonGeo {
		body := encodeBody(m)
		w.varint(uint64(m.CountryCode))
		w.varint(uint64(len(body)))
		w.bytes(body)
	}
	return w.buf
}

// indexEntry is what the store scans eagerly at load time: enough to
// answer for_region / country_code_to_regions / supported_* without
// compiling a single pattern (§4.3's "loading is lazy per record").
type indexEntry struct {
	id          string // empty for non-geo entries (always "001" conceptually)
	countryCode int
	main        bool
	body        []byte
}

// decodeIndex scans blob once and returns the region and non-geo index
// entries, without decoding any record body.
func decodeIndex(blob []byte) (regions []indexEntry, nonGeo []indexEntry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("metadata: %v", rec)
		}
	}()
	r := &byteReader{buf: blob}
	if len(blob) < len(magic)+1 || string(r.bytes(len(magic))) != magic {
		return nil, nil, fmt.Errorf("metadata: bad magic")
	}
	if v := r.byte(); v != version {
		return nil, nil, fmt.Errorf("metadata: unsupported version %d", v)
	}

	regionCount := int(r.varint())
	regions = make([]indexEntry, regionCount)
	for i := 0; i < regionCount; i++ {
		id := r.string()
		cc := int(r.varint())
		main := r.boolean()
		bodyLen := int(r.varint())
		body := r.bytes(bodyLen)
		regions[i] = indexEntry{id: id, countryCode: cc, main: main, body: body}
	}

	nonGeoCount := int(r.varint())
	nonGeo = make([]indexEntry, nonGeoCount)
	for i := 0; i < nonGeoCount; i++ {
		cc := int(r.varint())
		bodyLen := int(r.varint())
		body := r.bytes(bodyLen)
		nonGeo[i] = indexEntry{id: NonGeoRegionID, countryCode: cc, body: body}
	}
	return regions, nonGeo, nil
}
