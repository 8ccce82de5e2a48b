// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStoreAndRegexes(t *testing.T) (*metadata.Store, *regexcache.Cache) {
	t.Helper()
	return metadata.NewDefaultStore(nil), regexcache.New(nil)
}

func TestGeocoder_DescribeEnglishAndGerman(t *testing.T) {
	store, regexes := newTestStoreAndRegexes(t)
	g := NewGeocoder(store, regexes, nil)
	n := number.New(41, 446681800)

	desc, ok := g.Describe(n, "en")
	require.True(t, ok)
	assert.Equal(t, "Zurich", desc)

	desc, ok = g.Describe(n, "de")
	require.True(t, ok)
	assert.Equal(t, "Zuerich", desc)
}

func TestGeocoder_NonGeographicalFallsBackToCountryName(t *testing.T) {
	store, regexes := newTestStoreAndRegexes(t)
	g := NewGeocoder(store, regexes, nil)
	n, ok := regionNonGeographicalExample(t, store)
	if !ok {
		t.Skip("no non-geographical example number available in this fixture")
	}
	desc, ok := g.Describe(n, "en")
	require.True(t, ok)
	assert.NotEmpty(t, desc)
}

func TestCarrierMapper_CarrierName(t *testing.T) {
	store, regexes := newTestStoreAndRegexes(t)
	c := NewCarrierMapper(store, regexes, nil)
	n := number.New(1, 2041234567)
	name, ok := c.CarrierName(n, "en")
	require.True(t, ok)
	assert.Equal(t, "Bell MTS", name)
}

func TestTimezoneMapper_Timezone(t *testing.T) {
	store, regexes := newTestStoreAndRegexes(t)
	tz := NewTimezoneMapper(store, regexes, nil)
	n := number.New(41, 446681800)
	got, ok := tz.Timezone(n)
	require.True(t, ok)
	assert.Equal(t, "Europe/Zurich", got)
}

// regionNonGeographicalExample looks up a toll-free example from the
// metadata store's US record, if one is embedded.
func regionNonGeographicalExample(t *testing.T, store *metadata.Store) (number.Number, bool) {
	t.Helper()
	m, ok := store.ForRegion("US")
	if !ok || !m.TollFree.HasExample() {
		return number.Number{}, false
	}
	return number.New(m.CountryCode, mustAtoU64(t, m.TollFree.ExampleNumber)), true
}

func mustAtoU64(t *testing.T, s string) uint64 {
	t.Helper()
	var n uint64
	for _, r := range s {
		require.True(t, r >= '0' && r <= '9')
		n = n*10 + uint64(r-'0')
	}
	return n
}
