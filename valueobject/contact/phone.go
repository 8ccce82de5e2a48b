// Copyright (c) 2025 A Bit of Help, Inc.

// Package contact provides value objects related to contact information.
package contact

import (
	"strings"
	"sync"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/match"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/valueobject/base"
)

// engineOnce builds the one parser/formatter/classifier/matcher set every
// Phone in the process shares, the same default-store-backed collaborators
// cmd/phonenumber-demo and cmd/phonenumber-server construct for themselves.
// A package-level value object has no constructor argument for injecting
// these, so it lazily builds its own the first time a Phone is created.
var (
	engineOnce sync.Once
	enParser   *parse.Parser
	enFormat   *format.Formatter
	enClassify *classify.Classifier
	enMatch    *match.Matcher
)

func engine() (*parse.Parser, *format.Formatter, *classify.Classifier, *match.Matcher) {
	engineOnce.Do(func() {
		store := metadata.NewDefaultStore(nil)
		regexes := regexcache.New(nil)
		enParser = parse.New(store, regexes)
		enFormat = format.New(store, regexes)
		enClassify = classify.New(store, regexes)
		enMatch = match.New(enParser)
	})
	return enParser, enFormat, enClassify, enMatch
}

// Phone is a value object wrapping an already-parsed number.Number (§3.1),
// giving callers outside the core packages a single immutable handle on a
// phone number plus the region it was parsed against, instead of the
// parser/formatter/classifier triple the core itself threads explicitly.
type Phone struct {
	n             number.Number
	defaultRegion string
	parsed        bool
}

var _ base.ValueObject = Phone{}
var _ base.Equatable[Phone] = Phone{}
var _ base.Validatable = Phone{}

// NewPhone parses raw using defaultRegion as the region hint (§4.4). An
// empty or all-whitespace raw is accepted as the empty Phone, matching the
// "empty is allowed" convention of an optional contact field.
func NewPhone(raw string, defaultRegion string) (Phone, error) {
	if strings.TrimSpace(raw) == "" {
		return Phone{}, nil
	}
	p, _, _, _ := engine()
	n, err := p.Parse(raw, defaultRegion, parse.Options{KeepRawInput: true})
	if err != nil {
		return Phone{}, err
	}
	return Phone{n: n, defaultRegion: defaultRegion, parsed: true}, nil
}

// FromNumber wraps an already-parsed or directly constructed number.Number,
// for callers (e.g. the gRPC facade) that parsed through the core packages
// directly and want the Phone presentation layer on top of the result.
func FromNumber(n number.Number, defaultRegion string) Phone {
	return Phone{n: n, defaultRegion: defaultRegion, parsed: true}
}

// Number returns the wrapped number.Number.
func (p Phone) Number() number.Number {
	return p.n
}

// String returns the phone in E.164 form, or "" when empty.
func (p Phone) String() string {
	if p.IsEmpty() {
		return ""
	}
	_, f, _, _ := engine()
	return f.Format(p.n, format.E164)
}

// IsEmpty reports whether this Phone was built from blank input.
func (p Phone) IsEmpty() bool {
	return !p.parsed
}

// Equals reports whether p and other identify the same subscriber, per the
// match engine's confidence rules (§4.6); anything short of NoMatch counts
// as equal. Two empty Phones are equal.
func (p Phone) Equals(other Phone) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() == other.IsEmpty()
	}
	_, _, _, m := engine()
	return m.Numbers(p.n, other.n) != match.NoMatch
}

// Validate reports whether the wrapped number is a valid (not merely
// possible) number per the classifier (§4.5). An empty Phone is valid,
// matching the "empty is allowed" convention of an optional field.
func (p Phone) Validate() error {
	if p.IsEmpty() {
		return nil
	}
	_, _, c, _ := engine()
	if !c.IsValid(p.n) {
		return &invalidPhoneError{raw: p.n.String()}
	}
	return nil
}

// Format renders the wrapped number in the requested style (§4.7). An
// empty Phone formats to "".
func (p Phone) Format(style format.Style) string {
	if p.IsEmpty() {
		return ""
	}
	_, f, _, _ := engine()
	return f.Format(p.n, style)
}

// National is Format(format.National).
func (p Phone) National() string { return p.Format(format.National) }

// International is Format(format.International).
func (p Phone) International() string { return p.Format(format.International) }

// Normalized is Format(format.E164), the canonical machine-comparable form.
func (p Phone) Normalized() string { return p.Format(format.E164) }

// CountryCode returns the wrapped number's calling code, or 0 when empty.
func (p Phone) CountryCode() int {
	return p.n.CallingCode
}

// Type classifies the wrapped number (§4.5); Unknown when empty.
func (p Phone) Type() metadata.NumberType {
	if p.IsEmpty() {
		return metadata.Unknown
	}
	_, _, c, _ := engine()
	return c.NumberType(p.n)
}

// Region returns the region the wrapped number resolves to (§4.5).
func (p Phone) Region() (string, bool) {
	if p.IsEmpty() {
		return "", false
	}
	_, _, c, _ := engine()
	return c.RegionForNumber(p.n)
}

// IsValidForCountry reports whether the wrapped number validates
// specifically against region's metadata (§4.5, "use sparingly").
func (p Phone) IsValidForCountry(region string) bool {
	if p.IsEmpty() {
		return false
	}
	_, _, c, _ := engine()
	return c.IsValidForRegion(p.n, region)
}

// invalidPhoneError reports a Phone whose digits parsed but did not match
// any of its region's typed descriptors.
type invalidPhoneError struct {
	raw string
}

func (e *invalidPhoneError) Error() string {
	return "contact: phone number is not valid: " + e.raw
}
