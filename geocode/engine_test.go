// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocodeEngine(t *testing.T) *engine {
	t.Helper()
	return newEngine(DefaultFS(), family{dir: geocodeDir, name: geoFileName}, nil)
}

func TestEngine_LookupEnglish(t *testing.T) {
	e := newGeocodeEngine(t)
	desc, ok := e.lookup(41, 446681800, "en", "", "")
	require.True(t, ok)
	assert.Equal(t, "Zurich", desc)
}

func TestEngine_LookupGerman(t *testing.T) {
	e := newGeocodeEngine(t)
	desc, ok := e.lookup(41, 446681800, "de", "", "")
	require.True(t, ok)
	assert.Equal(t, "Zuerich", desc)
}

func TestEngine_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	e := newGeocodeEngine(t)
	desc, ok := e.lookup(41, 446681800, "fr", "", "")
	require.True(t, ok)
	assert.Equal(t, "Zurich", desc)
}

func TestEngine_ChineseSuppressesEnglishFallback(t *testing.T) {
	e := newGeocodeEngine(t)
	_, ok := e.lookup(41, 446681800, "zh", "", "")
	assert.False(t, ok)
}

func TestEngine_UnknownCallingCode(t *testing.T) {
	e := newGeocodeEngine(t)
	_, ok := e.lookup(999, 123, "en", "", "")
	assert.False(t, ok)
}

func TestEngine_TimezoneFamilyIgnoresLanguage(t *testing.T) {
	e := newEngine(DefaultFS(), family{dir: timezoneDir, name: timezoneFileName, languageIndependent: true}, nil)
	desc, ok := e.lookup(41, 446681800, "whatever-language", "", "")
	require.True(t, ok)
	assert.Equal(t, "Europe/Zurich", desc)
}

func TestEngine_CarrierFamily(t *testing.T) {
	e := newEngine(DefaultFS(), family{dir: carrierDir, name: carrierFileName}, nil)
	desc, ok := e.lookup(1, 2041234567, "en", "", "")
	require.True(t, ok)
	assert.Equal(t, "Bell MTS", desc)
}
