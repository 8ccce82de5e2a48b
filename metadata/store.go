// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

import (
	"context"
	"embed"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/abitofhelp/phonenumber/cache"
	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/logging"
)

// neverExpires mirrors regexcache's rationale: a decoded Metadata record
// never goes stale, so the TTL is set a year out and entries leave the
// cache only through its size bound (which evicts an arbitrary entry).
const neverExpires = 24 * 365 * time.Hour

//go:embed testdata/metadata.bin
var embeddedData embed.FS

// DefaultBlob returns the module's built-in numbering-plan blob, the
// output cmd/gen-metadata would produce from the checked-in YAML sources.
// It covers a representative subset of the world's numbering plans, not
// every CLDR region; see DESIGN.md for which regions are included and why.
func DefaultBlob() []byte {
	b, err := embeddedData.ReadFile("testdata/metadata.bin")
	if err != nil {
		panic(err)
	}
	return b
}

// Store owns the decoded index and a cache of fully-decoded records. The
// index (id, calling code, main-for-code flag, raw body bytes) is built
// eagerly from the blob at construction time; a record's patterns are not
// compiled until ForRegion/ForCountryCode first asks for that record,
// matching §4.3's "loading is lazy per record" and §5's double-checked
// per-key cache-fill discipline.
type Store struct {
	byRegion map[string]indexEntry
	byCC     map[int][]indexEntry // ordered: main-for-code first
	nonGeo   map[int]indexEntry

	records *cache.Cache[*Metadata]
	fillMu  sync.Mutex
}

// NewStore decodes blob's index and returns a ready Store. It panics if
// blob is malformed, since a corrupt embedded blob is a build-time bug.
func NewStore(blob []byte, logger *logging.ContextLogger) *Store {
	regions, nonGeo, err := decodeIndex(blob)
	if err != nil {
		panic(err)
	}

	s := &Store{
		byRegion: make(map[string]indexEntry, len(regions)),
		byCC:     make(map[int][]indexEntry),
		nonGeo:   make(map[int]indexEntry, len(nonGeo)),
	}
	for _, e := range regions {
		s.byRegion[e.id] = e
		s.byCC[e.countryCode] = append(s.byCC[e.countryCode], e)
	}
	for cc, list := range s.byCC {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].main && !list[j].main
		})
		s.byCC[cc] = list
	}
	for _, e := range nonGeo {
		s.nonGeo[e.countryCode] = e
	}

	cfg := cache.DefaultConfig().WithTTL(neverExpires).WithMaxSize(2048)
	opts := cache.DefaultOptions().WithName("metadata")
	if logger != nil {
		opts = opts.WithLogger(logger)
	}
	s.records = cache.NewCache[*Metadata](cfg, opts)
	return s
}

// NewDefaultStore builds a Store from DefaultBlob.
func NewDefaultStore(logger *logging.ContextLogger) *Store {
	return NewStore(DefaultBlob(), logger)
}

func (s *Store) decode(key string, e indexEntry) *Metadata {
	ctx := context.Background()
	if m, ok := s.records.Get(ctx, key); ok {
		return m
	}
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if m, ok := s.records.Get(ctx, key); ok {
		return m
	}
	m := decodeBody(e.body, e.id, e.countryCode, e.main)
	s.records.Set(ctx, key, m)
	return m
}

// ForRegion returns the fully-decoded metadata for region (a two-letter
// CLDR code or the NonGeoRegionID sentinel), or ok=false if unsupported.
func (s *Store) ForRegion(region string) (*Metadata, bool) {
	if region == NonGeoRegionID {
		return nil, false // non-geo entities have no single record; use ForCountryCode.
	}
	e, ok := s.byRegion[region]
	if !ok {
		return nil, false
	}
	return s.decode("region:"+region, e), true
}

// MustForRegion is ForRegion but panics per §4.3 ("the store fails with
// metadata_missing if a caller passes an unknown region code") for call
// sites that have already validated the region is supported.
func (s *Store) MustForRegion(region string) *Metadata {
	m, ok := s.ForRegion(region)
	if !ok {
		errors.FatalMetadataMissing(region)
	}
	return m
}

// ForCountryCode returns the metadata for a calling code that maps to a
// unique non-geographical entity, or to the main region for that code.
func (s *Store) ForCountryCode(cc int) (*Metadata, bool) {
	if e, ok := s.nonGeo[cc]; ok {
		return s.decode("nongeo:"+strconv.Itoa(cc), e), true
	}
	list := s.byCC[cc]
	if len(list) == 0 {
		return nil, false
	}
	return s.decode("region:"+list[0].id, list[0]), true
}

// CountryCodeToRegions returns every region sharing calling code cc,
// ordered so the main-for-code region comes first.
func (s *Store) CountryCodeToRegions(cc int) []string {
	list := s.byCC[cc]
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.id
	}
	return out
}

// SupportedRegions returns every region code this store has a record for.
func (s *Store) SupportedRegions() []string {
	out := make([]string, 0, len(s.byRegion))
	for id := range s.byRegion {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SupportedCallingCodes returns every calling code with at least one region
// or non-geo record.
func (s *Store) SupportedCallingCodes() []int {
	seen := make(map[int]bool, len(s.byCC)+len(s.nonGeo))
	for cc := range s.byCC {
		seen[cc] = true
	}
	for cc := range s.nonGeo {
		seen[cc] = true
	}
	out := make([]int, 0, len(seen))
	for cc := range seen {
		out = append(out, cc)
	}
	sort.Ints(out)
	return out
}

// SupportedNonGeoEntities returns every calling code backed by a
// non-geographical record.
func (s *Store) SupportedNonGeoEntities() []int {
	out := make([]int, 0, len(s.nonGeo))
	for cc := range s.nonGeo {
		out = append(out, cc)
	}
	sort.Ints(out)
	return out
}
