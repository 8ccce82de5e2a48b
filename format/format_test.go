// Copyright (c) 2025 A Bit of Help, Inc.

package format

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/stretchr/testify/assert"
)

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	store := metadata.NewDefaultStore(nil)
	return New(store, regexcache.New(nil))
}

func TestFormat_E164(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, "+41446681800", f.Format(n, E164))
}

func TestFormat_National_ReinjectsNationalPrefix(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, "044 668 18 00", f.Format(n, National))
}

func TestFormat_International(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, "+41 44 668 18 00", f.Format(n, International))
}

func TestFormat_RFC3966WithExtension(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	n.Extension = "42"
	assert.Equal(t, "tel:+41446681800;ext=42", f.Format(n, RFC3966))
}

func TestFormat_USNationalOmitsTrunkDigit(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(1, 2025551234)
	assert.Equal(t, "202-555-1234", f.Format(n, National))
}

func TestFormat_BrazilWithoutCarrierCode(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(55, 1187654321)
	assert.Equal(t, "(011 8765-4321)", f.Format(n, National))
}

func TestFormat_BrazilWithCarrierCode(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(55, 1187654321)
	n.PreferredDomesticCarrierCode = "15"
	assert.Equal(t, "15 (011 8765-4321)", f.Format(n, National))
}

func TestFormatOutOfCountryCallingNumber_FromUS(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, "011 41 44 668 18 00", f.FormatOutOfCountryCallingNumber(n, "US"))
}

func TestFormatOutOfCountryCallingNumber_SameCallingCodeUsesNational(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(1, 2025551234)
	assert.Equal(t, "202-555-1234", f.FormatOutOfCountryCallingNumber(n, "CA"))
}

func TestFormatOutOfCountryKeepingAlphaChars(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(1, 8002668228)
	n.RawInput = "+1 800 CONTACT"
	assert.Equal(t, "00 1 800CONTACT", f.FormatOutOfCountryKeepingAlphaChars(n, "CH"))
}

func TestFormatOutOfCountryKeepingAlphaChars_NoRawInputFallsBack(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, f.FormatOutOfCountryCallingNumber(n, "US"), f.FormatOutOfCountryKeepingAlphaChars(n, "US"))
}

func TestFormatInOriginalFormat_FromPlusUsesInternational(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	n.CountryCodeSource = number.FromPlus
	assert.Equal(t, "+41 44 668 18 00", f.FormatInOriginalFormat(n, "US"))
}

func TestFormatInOriginalFormat_FromIDDUsesOutOfCountryForm(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	n.CountryCodeSource = number.FromIDD
	assert.Equal(t, "011 41 44 668 18 00", f.FormatInOriginalFormat(n, "US"))
}

func TestFormatInOriginalFormat_FromNoPlusWithCCPrefixesBareCallingCode(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	n.CountryCodeSource = number.FromNoPlusWithCC
	assert.Equal(t, "41 044 668 18 00", f.FormatInOriginalFormat(n, "US"))
}

func TestFormatInOriginalFormat_DefaultUsesNational(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	assert.Equal(t, "044 668 18 00", f.FormatInOriginalFormat(n, "CH"))
}

func TestFormatForMobileDialing_BrazilFixedLineWithoutCarrierCodeIsUndialable(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(55, 1187654321)
	assert.Equal(t, "", f.FormatForMobileDialing(n, "BR", true))
}

func TestFormatForMobileDialing_MexicoMobileSameRegion(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(52, 1551234567)
	got := f.FormatForMobileDialing(n, "MX", true)
	assert.Equal(t, "045 01155 123 4567", got)
}

func TestFormatForMobileDialing_ArgentinaMobileFromAbroad(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(54, 91123456789)
	got := f.FormatForMobileDialing(n, "US", true)
	assert.Equal(t, "+54 991123456789", got)
}

func TestFormatForMobileDialing_WithoutFormattingStripsPunctuation(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(41, 446681800)
	got := f.FormatForMobileDialing(n, "CH", false)
	assert.Equal(t, "0446681800", got)
}

func TestFormatForMobileDialing_UnknownCallingCode(t *testing.T) {
	f := newTestFormatter(t)
	n := number.New(999, 1234567)
	assert.Equal(t, "", f.FormatForMobileDialing(n, "US", true))
}
