// Copyright (c) 2025 A Bit of Help, Inc.

package match

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/stretchr/testify/assert"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	store := metadata.NewDefaultStore(nil)
	p := parse.New(store, regexcache.New(nil))
	return New(p)
}

func TestNumbers_ExactMatch(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(41, 446681800)
	assert.Equal(t, ExactMatch, m.Numbers(a, b))
}

func TestNumbers_ExtensionMismatchIsNoMatch(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	a.Extension = "123"
	b := number.New(41, 446681800)
	b.Extension = "456"
	assert.Equal(t, NoMatch, m.Numbers(a, b))
}

func TestNumbers_NSNMatchWhenOneCallingCodeMissing(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(0, 446681800)
	assert.Equal(t, NSNMatch, m.Numbers(a, b))
}

func TestNumbers_NoMatchWhenCallingCodesDifferButNSNEqual(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(49, 446681800)
	assert.Equal(t, NoMatch, m.Numbers(a, b))
}

func TestNumbers_ShortNSNMatchOnSuffix(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(0, 6681800)
	assert.Equal(t, ShortNSNMatch, m.Numbers(a, b))
}

func TestNumbers_SuffixTooShortIsNoMatch(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(0, 1800)
	assert.Equal(t, NoMatch, m.Numbers(a, b))
}

func TestNumbers_ExactMatchRequiresEqualExtensionsWhenBothPresent(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	a.Extension = "7"
	b := number.New(41, 446681800)
	b.Extension = "7"
	assert.Equal(t, ExactMatch, m.Numbers(a, b))
}

func TestNumbers_UnrelatedNumbersNoMatch(t *testing.T) {
	m := newTestMatcher(t)
	a := number.New(41, 446681800)
	b := number.New(1, 2025551234)
	assert.Equal(t, NoMatch, m.Numbers(a, b))
}

func TestStrings_BestEffortMatchIgnoresFormatting(t *testing.T) {
	m := newTestMatcher(t)
	assert.Equal(t, ExactMatch, m.Strings("+41 44 668 18 00", "+41446681800"))
}

func TestStrings_UnparseableInputIsNoMatch(t *testing.T) {
	m := newTestMatcher(t)
	assert.Equal(t, NoMatch, m.Strings("@", "+41446681800"))
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "EXACT_MATCH", ExactMatch.String())
	assert.Equal(t, "NO_MATCH", NoMatch.String())
}
