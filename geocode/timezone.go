// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// timezoneDir is where timezone-mapping data files live.
const timezoneDir = "testdata/timezone"

// TimezoneMapper answers "what IANA timezone is this number in" (§6.4).
// Timezone data is language-independent (§4.9), so it has no locale
// candidate chain: one file per calling code.
type TimezoneMapper struct {
	lookupFacade
}

// NewTimezoneMapper constructs a TimezoneMapper over store's classifier
// and the module's embedded timezone data files. logger may be nil.
func NewTimezoneMapper(store *metadata.Store, regexes *regexcache.Cache, logger *logging.ContextLogger) *TimezoneMapper {
	return &TimezoneMapper{lookupFacade{
		engine:     newEngine(DefaultFS(), family{dir: timezoneDir, name: timezoneFileName, languageIndependent: true}, logger),
		classifier: classify.New(store, regexes),
		names:      defaultRegionNames(),
	}}
}

// Timezone returns the IANA timezone identifier n's prefix maps to, or the
// country name when n's type is not geographical.
func (tz *TimezoneMapper) Timezone(n number.Number) (string, bool) {
	return tz.describe(n, "", "", "")
}
