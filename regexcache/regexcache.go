// Copyright (c) 2025 A Bit of Help, Inc.

// Package regexcache is a bounded, compile-on-demand cache of compiled
// regular expressions keyed by pattern string. Metadata descriptors, format
// selection, and national-prefix stripping all go through it instead of
// calling regexp.Compile directly, so a numbering plan with thousands of
// patterns across hundreds of regions does not recompile the same pattern
// on every lookup.
package regexcache

import (
	"context"
	"regexp"
	"time"

	"github.com/abitofhelp/phonenumber/cache"
	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/logging"
)

// neverExpires is used as the TTL for cached patterns: a compiled regexp
// never goes stale, so the cache's staleness clock is set far enough out
// that only size-based eviction ever reclaims an entry.
const neverExpires = 24 * 365 * time.Hour

// DefaultMaxSize bounds the cache the way the teacher's cache.Config bounds
// any other cache: beyond this many distinct patterns, each new pattern
// evicts an arbitrary cached one. Numbering-plan data in practice uses on
// the order of a few thousand distinct patterns, so this leaves headroom.
const DefaultMaxSize = 4096

// Cache wraps cache.Cache[*regexp.Regexp] with a no-TTL, size-bounded
// configuration: compiled patterns never go stale, so only the size bound
// ever reclaims an entry.
type Cache struct {
	inner *cache.Cache[*regexp.Regexp]
}

// New constructs a Cache. logger may be nil.
func New(logger *logging.ContextLogger) *Cache {
	cfg := cache.DefaultConfig().WithTTL(neverExpires).WithMaxSize(DefaultMaxSize)
	opts := cache.DefaultOptions().WithName("regexcache")
	if logger != nil {
		opts = opts.WithLogger(logger)
	}
	inner := cache.NewCache[*regexp.Regexp](cfg, opts)
	return &Cache{inner: inner}
}

// Get compiles pattern on first request and returns the cached automaton on
// every subsequent request for the same pattern string. A compile failure
// is a data bug (§9): it panics via errors.FatalPatternInvalid rather than
// propagating a value the caller would have to check on every hot-path call.
func (c *Cache) Get(pattern string) *regexp.Regexp {
	ctx := context.Background()
	if re, ok := c.inner.Get(ctx, pattern); ok {
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		errors.FatalPatternInvalid(pattern, err)
	}
	c.inner.Set(ctx, pattern, re)
	return re
}

// MustMatch reports whether pattern fully matches s, anchoring both ends
// the way §3.2's national_number_pattern is defined to be matched.
func (c *Cache) MustMatch(pattern, s string) bool {
	re := c.Get(pattern)
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// HasPrefixMatch reports whether pattern matches starting at the beginning
// of s (used for leading_digits selectors, which only need a prefix match).
func (c *Cache) HasPrefixMatch(pattern, s string) bool {
	re := c.Get(pattern)
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}
