// Copyright (c) 2025 A Bit of Help, Inc.

package parse

import (
	"testing"

	"github.com/abitofhelp/phonenumber/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestKnownCallingCode_PrefersLongerMatch(t *testing.T) {
	p := newTestParser(t)
	cc, rest, ok := p.longestKnownCallingCode("41446681800")
	require.True(t, ok)
	assert.Equal(t, 41, cc)
	assert.Equal(t, "446681800", rest)
}

func TestLongestKnownCallingCode_NoMatch(t *testing.T) {
	p := newTestParser(t)
	_, _, ok := p.longestKnownCallingCode("5551234")
	assert.False(t, ok)
}

func TestExtractCountryCode_PlusPrefix(t *testing.T) {
	p := newTestParser(t)
	chMeta, ok := p.store.ForRegion("CH")
	require.True(t, ok)

	cc, nsn, source, err := p.extractCountryCode("+41446681800", chMeta)
	require.NoError(t, err)
	assert.Equal(t, 41, cc)
	assert.Equal(t, "446681800", nsn)
	assert.Equal(t, number.FromPlus, source)
}

func TestExtractCountryCode_PlusUnknownCallingCode(t *testing.T) {
	p := newTestParser(t)
	_, _, _, err := p.extractCountryCode("+9991234567", nil)
	assert.Error(t, err)
}

func TestExtractCountryCode_IDDFromDefaultRegion(t *testing.T) {
	p := newTestParser(t)
	usMeta, ok := p.store.ForRegion("US")
	require.True(t, ok)

	cc, _, source, err := p.extractCountryCode("011 44 20 7946 0018", usMeta)
	require.NoError(t, err)
	assert.Equal(t, 44, cc)
	assert.Equal(t, number.FromIDD, source)
}

func TestExtractCountryCode_NoPlusNoIDDFallsThroughToDefault(t *testing.T) {
	p := newTestParser(t)
	usMeta, ok := p.store.ForRegion("US")
	require.True(t, ok)

	cc, nsn, source, err := p.extractCountryCode("6502530000", usMeta)
	require.NoError(t, err)
	assert.Equal(t, 0, cc)
	assert.Equal(t, "6502530000", nsn)
	assert.Equal(t, number.SourceUnspecified, source)
}

func TestIsPossibleForMeta_NilMetadata(t *testing.T) {
	p := newTestParser(t)
	assert.False(t, p.isPossibleForMeta(nil, "123"))
}

func TestIsPossibleForMeta_ChecksGeneralLengths(t *testing.T) {
	p := newTestParser(t)
	chMeta, ok := p.store.ForRegion("CH")
	require.True(t, ok)
	assert.True(t, p.isPossibleForMeta(chMeta, "446681800"))
	assert.False(t, p.isPossibleForMeta(chMeta, "1"))
}
