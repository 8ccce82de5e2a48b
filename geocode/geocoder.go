// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// geocodeDir is where the geographical-description data files live.
const geocodeDir = "testdata/geocode"

// Geocoder answers "where is this number from" (§6.4), backed by the
// prefix-map engine rooted at geocodeDir.
type Geocoder struct {
	lookupFacade
}

// NewGeocoder constructs a Geocoder over store's classifier and the
// module's embedded geocode data files. logger may be nil.
func NewGeocoder(store *metadata.Store, regexes *regexcache.Cache, logger *logging.ContextLogger) *Geocoder {
	return &Geocoder{lookupFacade{
		engine:     newEngine(DefaultFS(), family{dir: geocodeDir, name: geoFileName}, logger),
		classifier: classify.New(store, regexes),
		names:      defaultRegionNames(),
	}}
}

// Describe returns the geographical description of n in language (e.g.
// "en", "de"), falling back to English unless language is zh/ja/ko (§4.9).
func (g *Geocoder) Describe(n number.Number, language string) (string, bool) {
	return g.describe(n, language, "", "")
}

// DescribeWithLocale is Describe but lets the caller also supply a script
// and region, for the full locale-candidate chain of §4.9.
func (g *Geocoder) DescribeWithLocale(n number.Number, language, script, region string) (string, bool) {
	return g.describe(n, language, script, region)
}
