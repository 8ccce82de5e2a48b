// Copyright (c) 2025 A Bit of Help, Inc.

// Package match compares two numbers — already parsed, or raw strings
// parsed best-effort — and reports how confidently they identify the same
// line (§4.6).
package match

import (
	"strings"

	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
)

// Result is the match engine's confidence level, from no relation at all to
// a field-for-field identical number.
type Result int

const (
	NoMatch Result = iota
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

func (r Result) String() string {
	switch r {
	case ExactMatch:
		return "EXACT_MATCH"
	case NSNMatch:
		return "NSN_MATCH"
	case ShortNSNMatch:
		return "SHORT_NSN_MATCH"
	default:
		return "NO_MATCH"
	}
}

// minShortNSNMatchLength is the shorter side's minimum digit count for a
// suffix relationship to count as a match at all (§4.6 rule 3).
const minShortNSNMatchLength = 7

// Matcher compares numbers. Its parser is only consulted by Strings, for
// the best-effort parse of raw input; Numbers needs no collaborators.
type Matcher struct {
	parser *parse.Parser
}

// New constructs a Matcher. parser is used only by Strings.
func New(parser *parse.Parser) *Matcher {
	return &Matcher{parser: parser}
}

// Numbers implements the rules of §4.6 against two already-parsed numbers.
func (m *Matcher) Numbers(a, b number.Number) Result {
	aStr := a.NationalNumberString()
	bStr := b.NationalNumberString()

	if a.CallingCode == b.CallingCode && aStr == bStr && a.Extension == b.Extension {
		return ExactMatch
	}
	if a.Extension != "" && b.Extension != "" && a.Extension != b.Extension {
		return NoMatch
	}
	if aStr == bStr {
		if a.CallingCode == b.CallingCode || a.CallingCode == 0 || b.CallingCode == 0 {
			return NSNMatch
		}
		return NoMatch
	}
	if shorter, isSuffix := suffixRelation(aStr, bStr); isSuffix && len(shorter) >= minShortNSNMatchLength {
		return ShortNSNMatch
	}
	return NoMatch
}

// Strings parses a and b with no default region — tolerating a missing
// country code rather than failing outright — then delegates to Numbers.
// Either side failing to parse at all is a NoMatch (§4.6).
func (m *Matcher) Strings(a, b string) Result {
	na, errA := m.parser.Parse(a, "", parse.Options{})
	if errA != nil {
		return NoMatch
	}
	nb, errB := m.parser.Parse(b, "", parse.Options{})
	if errB != nil {
		return NoMatch
	}
	return m.Numbers(na, nb)
}

// suffixRelation reports whether one of a, b (necessarily of different
// lengths) is a suffix of the other, and returns the shorter of the two.
func suffixRelation(a, b string) (shorter string, isSuffix bool) {
	if len(a) == len(b) {
		return "", false
	}
	longer := a
	shorter = b
	if len(a) < len(b) {
		shorter, longer = a, b
	}
	return shorter, strings.HasSuffix(longer, shorter)
}
