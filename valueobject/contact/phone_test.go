// Copyright (c) 2025 A Bit of Help, Inc.

package contact

import (
	"testing"

	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone_ParsesThroughCoreParser(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	require.False(t, p.IsEmpty())
	assert.Equal(t, 41, p.CountryCode())
}

func TestNewPhone_EmptyIsAllowed(t *testing.T) {
	p, err := NewPhone("", "CH")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, "", p.String())
}

func TestNewPhone_NotANumberFails(t *testing.T) {
	_, err := NewPhone("@@@", "US")
	assert.Error(t, err)
}

func TestPhone_String_IsE164(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	assert.Equal(t, "+41446681800", p.String())
}

func TestPhone_Equals_SameSubscriberDifferentGrouping(t *testing.T) {
	a, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	b, err := NewPhone("+41446681800", "CH")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}

func TestPhone_Equals_DifferentNumbers(t *testing.T) {
	a, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	b, err := NewPhone("650 253 0000", "US")
	require.NoError(t, err)
	assert.False(t, a.Equals(b))
}

func TestPhone_Equals_BothEmpty(t *testing.T) {
	a, err := NewPhone("", "CH")
	require.NoError(t, err)
	b, err := NewPhone("", "US")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}

func TestPhone_IsEmpty(t *testing.T) {
	empty, err := NewPhone("", "US")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	nonEmpty, err := NewPhone("650 253 0000", "US")
	require.NoError(t, err)
	assert.False(t, nonEmpty.IsEmpty())
}

func TestPhone_Validate_ValidFixedLine(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestPhone_Validate_InvalidNumberFails(t *testing.T) {
	// 12345 is too short for any CH length and matches no CH type descriptor.
	n := number.New(41, 12345)
	p := FromNumber(n, "CH")
	assert.Error(t, p.Validate())
}

func TestPhone_Validate_EmptyIsValid(t *testing.T) {
	p, err := NewPhone("", "CH")
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestPhone_Format(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	assert.Equal(t, "+41446681800", p.Format(format.E164))
	assert.Equal(t, "044 668 18 00", p.Format(format.National))
	assert.Equal(t, "+41 44 668 18 00", p.Format(format.International))
}

func TestPhone_NationalAndInternationalAndNormalized(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	assert.Equal(t, "044 668 18 00", p.National())
	assert.Equal(t, "+41 44 668 18 00", p.International())
	assert.Equal(t, "+41446681800", p.Normalized())
}

func TestPhone_Format_Empty(t *testing.T) {
	p, err := NewPhone("", "CH")
	require.NoError(t, err)
	assert.Equal(t, "", p.Format(format.E164))
}

func TestPhone_CountryCode(t *testing.T) {
	p, err := NewPhone("650 253 0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CountryCode())
}

func TestPhone_Type_TollFree(t *testing.T) {
	p, err := NewPhone("+1 800 CONTACT", "US")
	require.NoError(t, err)
	assert.Equal(t, metadata.TollFree, p.Type())
}

func TestPhone_Type_EmptyIsUnknown(t *testing.T) {
	p, err := NewPhone("", "US")
	require.NoError(t, err)
	assert.Equal(t, metadata.Unknown, p.Type())
}

func TestPhone_Region(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	region, ok := p.Region()
	require.True(t, ok)
	assert.Equal(t, "CH", region)
}

func TestPhone_IsValidForCountry(t *testing.T) {
	p, err := NewPhone("044 668 18 00", "CH")
	require.NoError(t, err)
	assert.True(t, p.IsValidForCountry("CH"))
	assert.False(t, p.IsValidForCountry("US"))
}

func TestPhone_IsValidForCountry_Empty(t *testing.T) {
	p, err := NewPhone("", "CH")
	require.NoError(t, err)
	assert.False(t, p.IsValidForCountry("CH"))
}

func TestFromNumber(t *testing.T) {
	n := number.New(41, 446681800)
	p := FromNumber(n, "CH")
	assert.False(t, p.IsEmpty())
	assert.Equal(t, "+41446681800", p.String())
}
