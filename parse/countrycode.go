// Copyright (c) 2025 A Bit of Help, Inc.

package parse

import (
	"strconv"
	"strings"

	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
)

// maxCallingCodeDigits bounds the longest-prefix search in §4.4.1: no
// calling code is longer than three digits.
const maxCallingCodeDigits = 3

// extractCountryCode implements §4.4.1. working has already had any
// leading '+' normalized to the ASCII character by digitnorm.
func (p *Parser) extractCountryCode(working string, defaultMeta *metadata.Metadata) (cc int, nsn string, source number.CountryCodeSource, err error) {
	if strings.HasPrefix(working, "+") {
		rest := working[1:]
		foundCC, foundNSN, ok := p.longestKnownCallingCode(rest)
		if !ok {
			return 0, "", number.SourceUnspecified, errors.New(errors.CodeInvalidCountryCode, "parse.extractCountryCode", "no known calling code after '+'")
		}
		return foundCC, foundNSN, number.FromPlus, nil
	}

	if defaultMeta != nil && defaultMeta.InternationalPrefix != "" {
		re := p.regexes.Get(`^(?:` + defaultMeta.InternationalPrefix + `)`)
		if loc := re.FindStringIndex(working); loc != nil {
			rest := working[loc[1]:]
			foundCC, foundNSN, ok := p.longestKnownCallingCode(rest)
			if ok {
				return foundCC, foundNSN, number.FromIDD, nil
			}
		}
	}

	if defaultMeta != nil && defaultMeta.CountryCode != 0 {
		ccStr := strconv.Itoa(defaultMeta.CountryCode)
		if strings.HasPrefix(working, ccStr) {
			withoutCC := working[len(ccStr):]
			withCC := working // ambiguous: treat whole string as NSN candidate too
			if p.isPossibleForMeta(defaultMeta, withoutCC) && !p.isPossibleForMeta(defaultMeta, withCC) {
				return defaultMeta.CountryCode, withoutCC, number.FromNoPlusWithCC, nil
			}
		}
	}

	return 0, working, number.SourceUnspecified, nil
}

// longestKnownCallingCode tries 3, then 2, then 1 digit prefixes of s
// against the metadata store's known calling codes (§4.4.1).
func (p *Parser) longestKnownCallingCode(s string) (cc int, rest string, ok bool) {
	for length := maxCallingCodeDigits; length >= 1; length-- {
		if len(s) < length {
			continue
		}
		candidate := s[:length]
		n, convErr := atoU64(candidate)
		if convErr != nil {
			continue
		}
		if _, found := p.store.ForCountryCode(int(n)); found {
			return int(n), s[length:], true
		}
	}
	return 0, s, false
}

func (p *Parser) isPossibleForMeta(m *metadata.Metadata, nsn string) bool {
	if m == nil || m.General == nil {
		return false
	}
	l := len(nsn)
	for _, allowed := range m.General.PossibleLengths {
		if allowed == l {
			return true
		}
	}
	for _, allowed := range m.General.PossibleLengthsLocalOnly {
		if allowed == l {
			return true
		}
	}
	return false
}
