// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// carrierDir is where carrier-mapping data files live.
const carrierDir = "testdata/carrier"

// CarrierMapper answers "which carrier was this number originally
// assigned to" (§6.4). It has no portability awareness: a ported number
// reports its original assignee, consistent with this module's Non-goals
// around live carrier state (§1).
type CarrierMapper struct {
	lookupFacade
}

// NewCarrierMapper constructs a CarrierMapper over store's classifier and
// the module's embedded carrier data files. logger may be nil.
func NewCarrierMapper(store *metadata.Store, regexes *regexcache.Cache, logger *logging.ContextLogger) *CarrierMapper {
	return &CarrierMapper{lookupFacade{
		engine:     newEngine(DefaultFS(), family{dir: carrierDir, name: carrierFileName}, logger),
		classifier: classify.New(store, regexes),
		names:      defaultRegionNames(),
	}}
}

// CarrierName returns the name of the carrier n was originally assigned to,
// in language, or the country name when n's type is not geographical.
func (c *CarrierMapper) CarrierName(n number.Number, language string) (string, bool) {
	return c.describe(n, language, "", "")
}
