// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
)

// isGeographicalType reports whether t denotes a number that can plausibly
// be tied to a place: fixed-line and mobile numbers can, the various
// non-geographical service types (toll-free, voip, premium-rate, ...)
// cannot (§6.4).
func isGeographicalType(t metadata.NumberType) bool {
	switch t {
	case metadata.FixedLine, metadata.Mobile, metadata.FixedLineOrMobile:
		return true
	default:
		return false
	}
}

// defaultRegionNames is the CLDR-display-name stand-in used for the
// country-name fallback (§6.4). It is deliberately limited to the regions
// this module's embedded metadata and prefix-map fixtures actually cover;
// see DESIGN.md.
func defaultRegionNames() map[string]string {
	return map[string]string{
		"US": "United States",
		"CA": "Canada",
		"CH": "Switzerland",
		"DE": "Germany",
		"FR": "France",
		"GB": "United Kingdom",
		"AU": "Australia",
		"BR": "Brazil",
		"MX": "Mexico",
		"AR": "Argentina",
		"IT": "Italy",
	}
}

// lookupFacade is the collaborators and fallback table every facade
// (Geocoder, CarrierMapper, TimezoneMapper) shares: one data-file engine,
// the classifier used to decide geographicality and resolve a region, and
// the region-name fallback table (§6.4).
type lookupFacade struct {
	engine     *engine
	classifier *classify.Classifier
	names      map[string]string
}

// describe returns the family's prefix-map description for n, or — when
// n's type is not geographical, or the family has nothing for n's prefix —
// the country name of n's resolved region (§6.4's "refuse to geocode...
// fall back to a country-name result").
func (f *lookupFacade) describe(n number.Number, language, script, region string) (string, bool) {
	if !isGeographicalType(f.classifier.NumberType(n)) {
		return f.countryName(n)
	}
	if desc, ok := f.engine.lookup(n.CallingCode, n.NationalNumber, language, script, region); ok {
		return desc, true
	}
	return f.countryName(n)
}

func (f *lookupFacade) countryName(n number.Number) (string, bool) {
	region, ok := f.classifier.RegionForNumber(n)
	if !ok {
		return "", false
	}
	name, ok := f.names[region]
	return name, ok
}
