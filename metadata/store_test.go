// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewDefaultStore(nil)
}

func TestForRegion_KnownRegion(t *testing.T) {
	s := newTestStore(t)
	m, ok := s.ForRegion("CH")
	require.True(t, ok)
	assert.Equal(t, 41, m.CountryCode)
	assert.Equal(t, "0", m.NationalPrefix)
	require.NotNil(t, m.General)
	assert.Contains(t, m.General.PossibleLengths, 9)
}

func TestForRegion_Unknown(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.ForRegion("ZZ")
	assert.False(t, ok)
}

func TestMustForRegion_PanicsOnUnknown(t *testing.T) {
	s := newTestStore(t)
	assert.Panics(t, func() { s.MustForRegion("ZZ") })
}

func TestForCountryCode_NonGeo(t *testing.T) {
	s := newTestStore(t)
	m, ok := s.ForCountryCode(800)
	require.True(t, ok)
	assert.Equal(t, NonGeoRegionID, m.ID)
	assert.True(t, m.IsNonGeographical())
}

func TestForCountryCode_MainRegionForSharedCode(t *testing.T) {
	s := newTestStore(t)
	m, ok := s.ForCountryCode(1)
	require.True(t, ok)
	assert.Equal(t, "US", m.ID)
}

func TestCountryCodeToRegions_MainFirst(t *testing.T) {
	s := newTestStore(t)
	regions := s.CountryCodeToRegions(1)
	require.NotEmpty(t, regions)
	assert.Equal(t, "US", regions[0])
	assert.Contains(t, regions, "CA")
}

func TestSupportedRegions_IncludesSeeded(t *testing.T) {
	s := newTestStore(t)
	regions := s.SupportedRegions()
	assert.Contains(t, regions, "DE")
	assert.Contains(t, regions, "BR")
}

func TestSupportedCallingCodes(t *testing.T) {
	s := newTestStore(t)
	ccs := s.SupportedCallingCodes()
	assert.Contains(t, ccs, 41)
	assert.Contains(t, ccs, 800)
}

func TestSupportedNonGeoEntities(t *testing.T) {
	s := newTestStore(t)
	entities := s.SupportedNonGeoEntities()
	assert.ElementsMatch(t, []int{800, 808}, entities)
}

func TestDecode_IsIdempotent(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.ForRegion("FR")
	b, _ := s.ForRegion("FR")
	assert.Same(t, a, b)
}
