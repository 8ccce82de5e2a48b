// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"sync"
	"time"

	"github.com/abitofhelp/phonenumber/cache"
	"github.com/abitofhelp/phonenumber/logging"
)

// neverExpires mirrors metadata/regexcache's rationale: a decoded Table
// never goes stale once loaded, so the TTL is set a year out and entries
// leave the cache only through its size bound (which evicts an arbitrary
// entry).
const neverExpires = 24 * 365 * time.Hour

//go:embed testdata
var embeddedData embed.FS

// DefaultFS returns the module's built-in prefix-map data files. It covers
// a representative subset of calling codes, not the whole world; see
// DESIGN.md.
func DefaultFS() fs.FS {
	return embeddedData
}

// fileNamer builds the on-disk filename for one (calling_code, locale)
// pair within a data family's directory, per §6.2's naming scheme.
type fileNamer func(callingCode int, locale string) string

// family is one data-file family: a root directory plus its naming
// convention and whether it varies by language at all (timezone data does
// not, per §4.9/§6.2).
type family struct {
	dir               string
	name              fileNamer
	languageIndependent bool
}

// engine is the shared lookup machinery behind Geocoder, CarrierMapper,
// and TimezoneMapper: one per family, each with its own fill-once cache of
// decoded Tables (§4.3/§5's "shared across the process; fill-once"
// discipline, same as metadata and regexcache).
type engine struct {
	fsys   fs.FS
	fam    family
	tables *cache.Cache[*Table]
	fillMu sync.Mutex
}

func newEngine(fsys fs.FS, fam family, logger *logging.ContextLogger) *engine {
	cfg := cache.DefaultConfig().WithTTL(neverExpires).WithMaxSize(512)
	opts := cache.DefaultOptions().WithName("geocode:" + fam.dir)
	if logger != nil {
		opts = opts.WithLogger(logger)
	}
	return &engine{
		fsys:   fsys,
		fam:    fam,
		tables: cache.NewCache[*Table](cfg, opts),
	}
}

// loadFile returns the decoded Table for one exact (callingCode, locale)
// file, or ok=false if no such file exists in this family.
func (e *engine) loadFile(callingCode int, locale string) (*Table, bool) {
	path := e.fam.dir + "/" + e.fam.name(callingCode, locale)
	ctx := context.Background()
	if t, ok := e.tables.Get(ctx, path); ok {
		return t, true
	}
	e.fillMu.Lock()
	defer e.fillMu.Unlock()
	if t, ok := e.tables.Get(ctx, path); ok {
		return t, true
	}
	blob, err := fs.ReadFile(e.fsys, path)
	if err != nil {
		return nil, false
	}
	t, decErr := decodeTable(blob)
	if decErr != nil {
		panic(fmt.Errorf("geocode: %s: %w", path, decErr))
	}
	e.tables.Set(ctx, path, t)
	return t, true
}

// lookupLocale picks, among localeCandidates(language, script, region),
// the first file that exists (§4.9's mapping file provider), then looks up
// (callingCode, nationalNumber) in it.
func (e *engine) lookupLocale(callingCode int, language, script, region string, nationalNumber uint64) (description string, matched bool) {
	var candidates []string
	if e.fam.languageIndependent {
		candidates = []string{""}
	} else {
		candidates = localeCandidates(language, script, region)
	}
	for _, locale := range candidates {
		t, ok := e.loadFile(callingCode, locale)
		if !ok {
			continue
		}
		return t.Lookup(callingCode, nationalNumber)
	}
	return "", false
}

// lookup implements the full locale-selection-then-English-fallback
// algorithm of §4.9 on top of lookupLocale: an empty description from the
// preferred locale (present entry, "defer to English" per the compression
// rule) or no file/entry at all both fall through to English, unless the
// preferred language is zh/ja/ko.
func (e *engine) lookup(callingCode int, nationalNumber uint64, language, script, region string) (string, bool) {
	if e.fam.languageIndependent {
		return e.lookupLocale(callingCode, "", "", "", nationalNumber)
	}
	if language == "" {
		language = "en"
	}
	desc, matched := e.lookupLocale(callingCode, language, script, region, nationalNumber)
	if matched && desc != "" {
		return desc, true
	}
	if language == "en" || suppressEnglishFallback(language) {
		return "", false
	}
	desc, matched = e.lookupLocale(callingCode, "en", "", "", nationalNumber)
	if matched && desc != "" {
		return desc, true
	}
	return "", false
}

func geoFileName(callingCode int, locale string) string {
	return strconv.Itoa(callingCode) + "_" + locale + ".bin"
}

func carrierFileName(callingCode int, locale string) string {
	return strconv.Itoa(callingCode) + "_" + locale + "_carrier.bin"
}

func timezoneFileName(callingCode int, _ string) string {
	return strconv.Itoa(callingCode) + "_timezone.bin"
}
