// Copyright (c) 2025 A Bit of Help, Inc.

// Package parse turns free-form phone number input plus a default region
// into a canonical number.Number or a typed errors.ParseError (§4.4).
package parse

import (
	"github.com/abitofhelp/phonenumber/digitnorm"
	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// MaxNationalNumberLength is the hard cap from §4.4 step 7 and §1's
// non-goals: no supported national number exceeds seventeen digits.
const MaxNationalNumberLength = 17

// Parser holds the shared, reusable collaborators every parse needs: the
// metadata store and the regex cache. It has no per-call mutable state, so
// one Parser is safe to share across goroutines (§5).
type Parser struct {
	store   *metadata.Store
	regexes *regexcache.Cache
}

// New constructs a Parser over store, compiling patterns through regexes.
func New(store *metadata.Store, regexes *regexcache.Cache) *Parser {
	return &Parser{store: store, regexes: regexes}
}

// Options configures a single Parse call (§4.4).
type Options struct {
	// KeepRawInput, if true, populates Number.RawInput with the original
	// string exactly as given.
	KeepRawInput bool
	// CheckRegion, if true, fails with CodeInvalidCountryCode when the
	// resolved calling code has no known region or non-geo entity.
	CheckRegion bool
}

// extensionPattern recognizes the common extension separators: ";ext=",
// "ext", "x", "#", and the bare word "int" (§4.4 step 2).
const extensionPattern = `(?i)(?:;ext=|x|#|ext\.?|int\.?)\s*([0-9]{1,7})\s*$`

// Parse implements the algorithm in §4.4.
func (p *Parser) Parse(raw string, defaultRegion string, opts Options) (number.Number, error) {
	if !digitnorm.IsViablePhoneNumber(raw) {
		return number.Number{}, errors.New(errors.CodeNotANumber, "parse.Parse", "input is not viable as a phone number").
			WithDetail("input", raw)
	}

	working, extension := splitExtension(p.regexes, raw)

	working = digitnorm.ConvertAlphaToDigits(working)
	working = digitnorm.NormalizeDigitsOnly(working)
	if working == "" {
		return number.Number{}, errors.New(errors.CodeNotANumber, "parse.Parse", "no digits remained after normalisation")
	}

	defaultMeta, _ := p.store.ForRegion(defaultRegion)

	cc, nsn, source, err := p.extractCountryCode(working, defaultMeta)
	if err != nil {
		return number.Number{}, err
	}

	var meta *metadata.Metadata
	if cc != 0 {
		meta, _ = p.store.ForCountryCode(cc)
	} else {
		meta = defaultMeta
		if defaultMeta != nil {
			cc = defaultMeta.CountryCode
			source = number.FromDefaultRegion
		}
	}

	var carrierCode string
	if meta != nil {
		nsn, carrierCode = p.stripNationalPrefix(meta, nsn)
	}

	if meta != nil && meta.General != nil {
		minLen := minPossibleLength(meta.General)
		if len(nsn) < minLen {
			return number.Number{}, errors.New(errors.CodeTooShortNSN, "parse.Parse", "national number shorter than region minimum").
				WithDetail("region", defaultRegion).WithDetail("nsn", nsn)
		}
	}
	if len(nsn) > MaxNationalNumberLength {
		return number.Number{}, errors.New(errors.CodeTooLongNSN, "parse.Parse", "national number exceeds seventeen digits").
			WithDetail("nsn", nsn)
	}
	if len(nsn) == 0 {
		return number.Number{}, errors.New(errors.CodeTooShortNSN, "parse.Parse", "no national number digits remained")
	}

	italianLeadingZero, leadingZeros, trimmed := extractLeadingZeros(nsn)

	n, convErr := atoU64(trimmed)
	if convErr != nil {
		return number.Number{}, errors.Wrap(convErr, errors.CodeNotANumber, "parse.Parse", "national number is not numeric")
	}

	result := number.Number{
		CallingCode:                  cc,
		NationalNumber:               n,
		ItalianLeadingZero:           italianLeadingZero,
		NumberOfLeadingZeros:         leadingZeros,
		Extension:                    extension,
		CountryCodeSource:            source,
		PreferredDomesticCarrierCode: carrierCode,
	}
	if opts.KeepRawInput {
		result.RawInput = raw
	}

	if opts.CheckRegion {
		if _, ok := p.store.ForCountryCode(cc); !ok {
			return number.Number{}, errors.New(errors.CodeInvalidCountryCode, "parse.Parse", "calling code has no known region").
				WithDetail("calling_code", cc)
		}
	}

	return result, nil
}

func splitExtension(regexes *regexcache.Cache, raw string) (working string, extension string) {
	re := regexes.Get(extensionPattern)
	loc := re.FindStringSubmatchIndex(raw)
	if loc == nil {
		return raw, ""
	}
	extension = raw[loc[2]:loc[3]]
	working = raw[:loc[0]]
	return working, extension
}

func minPossibleLength(d *metadata.Descriptor) int {
	min := -1
	for _, l := range d.PossibleLengths {
		if min == -1 || l < min {
			min = l
		}
	}
	if min == -1 {
		return 0
	}
	return min
}

// extractLeadingZeros separates meaningful leading zeros from the numeric
// value (§3.1, §4.4 step 8). A lone "0" is treated as zero leading zeros to
// avoid reporting a zero-length numeric value as having a leading zero.
func extractLeadingZeros(nsn string) (italian bool, count int, trimmed string) {
	if len(nsn) <= 1 {
		return false, 0, nsn
	}
	i := 0
	for i < len(nsn)-1 && nsn[i] == '0' {
		i++
	}
	if i == 0 {
		return false, 0, nsn
	}
	return true, i, nsn[i:]
}

func atoU64(s string) (uint64, error) {
	var n uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconvErr(s)
		}
		n = n*10 + uint64(c-'0')
	}
	return n, nil
}

type numError struct{ s string }

func (e *numError) Error() string { return "parse: not a numeric string: " + e.s }

func strconvErr(s string) error { return &numError{s: s} }
