// Copyright (c) 2025 A Bit of Help, Inc.

// Package classify answers questions about an already-parsed number.Number:
// whether its shape is even possible, whether it is actually valid, what
// type of line it describes, and which region it belongs to (§4.5).
package classify

import (
	"github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// Classifier holds the collaborators every classification query needs. It
// has no per-call mutable state and is safe to share across goroutines.
type Classifier struct {
	store   *metadata.Store
	regexes *regexcache.Cache
}

// New constructs a Classifier over store, matching patterns through regexes.
func New(store *metadata.Store, regexes *regexcache.Cache) *Classifier {
	return &Classifier{store: store, regexes: regexes}
}

// metadataForNumber resolves the single metadata record is_valid and
// number_type reason about: among the regions sharing n's calling code, the
// one whose leading_digits matches, else the main region for the code.
func (c *Classifier) metadataForNumber(n number.Number) *metadata.Metadata {
	m, _ := c.store.ForCountryCode(n.CallingCode)
	if m == nil {
		return nil
	}
	if len(m.LeadingDigits) == 0 {
		return m
	}
	regions := c.store.CountryCodeToRegions(n.CallingCode)
	if len(regions) <= 1 {
		return m
	}
	nsn := n.NationalNumberString()
	for _, region := range regions {
		candidate, ok := c.store.ForRegion(region)
		if !ok || candidate.LeadingDigits == "" {
			continue
		}
		if c.regexes.HasPrefixMatch(candidate.LeadingDigits, nsn) {
			return candidate
		}
	}
	return m
}

// IsPossible reports whether n's national number length is possible for
// some region mapping to its calling code (§4.5).
func (c *Classifier) IsPossible(n number.Number) bool {
	reason := c.IsPossibleWithReason(n)
	return reason == errors.ReasonIsPossible
}

// IsPossibleWithReason is IsPossible but distinguishes why an impossible
// number failed (§4.5, §7).
func (c *Classifier) IsPossibleWithReason(n number.Number) errors.Code {
	regions := c.store.CountryCodeToRegions(n.CallingCode)
	var nonGeoMeta *metadata.Metadata
	if len(regions) == 0 {
		m, ok := c.store.ForCountryCode(n.CallingCode)
		if !ok {
			return errors.ReasonInvalidCountryCode
		}
		nonGeoMeta = m
	}

	length := len(n.NationalNumberString())

	shortest, longest := -1, -1
	anyLengthMatched := false
	checkDescriptor := func(d *metadata.Descriptor) {
		if d == nil {
			return
		}
		for _, l := range d.PossibleLengths {
			if shortest == -1 || l < shortest {
				shortest = l
			}
			if l > longest {
				longest = l
			}
			if l == length {
				anyLengthMatched = true
			}
		}
		for _, l := range d.PossibleLengthsLocalOnly {
			if l == length {
				anyLengthMatched = true
			}
		}
	}

	if nonGeoMeta != nil {
		checkDescriptor(nonGeoMeta.General)
	}
	for _, region := range regions {
		m, ok := c.store.ForRegion(region)
		if !ok {
			continue
		}
		checkDescriptor(m.General)
	}

	if anyLengthMatched {
		return errors.ReasonIsPossible
	}
	if shortest == -1 {
		return errors.ReasonInvalidLength
	}
	if length < shortest {
		return errors.ReasonTooShort
	}
	if length > longest {
		return errors.ReasonTooLong
	}
	return errors.ReasonInvalidLength
}

// IsValid reports whether some typed descriptor of n's resolved metadata
// fully matches the national number (§4.5).
func (c *Classifier) IsValid(n number.Number) bool {
	m := c.metadataForNumber(n)
	if m == nil {
		return false
	}
	t, _ := c.numberTypeFor(m, n)
	return t != metadata.Unknown
}

// IsValidForRegion additionally requires that region is the metadata
// actually matched, per §4.5's "use sparingly" caveat.
func (c *Classifier) IsValidForRegion(n number.Number, region string) bool {
	m, ok := c.store.ForRegion(region)
	if !ok || m.CountryCode != n.CallingCode {
		return false
	}
	t, matchedRegion := c.numberTypeFor(m, n)
	return t != metadata.Unknown && matchedRegion
}

// NumberType walks descriptors in the fixed priority order from §4.5 and
// returns the first type whose pattern and length both match. When both
// fixed-line and mobile match and their patterns are textually identical,
// it collapses to FixedLineOrMobile.
func (c *Classifier) NumberType(n number.Number) metadata.NumberType {
	m := c.metadataForNumber(n)
	if m == nil {
		return metadata.Unknown
	}
	t, _ := c.numberTypeFor(m, n)
	return t
}

func (c *Classifier) numberTypeFor(m *metadata.Metadata, n number.Number) (metadata.NumberType, bool) {
	nsn := n.NationalNumberString()
	length := len(nsn)

	if m.General != nil && !descriptorMatches(c.regexes, m.General, nsn, length) {
		return metadata.Unknown, false
	}

	// TypedDescriptors walks fixed_line immediately before mobile, in that
	// priority order (§4.5). When both descriptors are present, share a
	// pattern, and that pattern matches, the two are indistinguishable and
	// the result collapses to FixedLineOrMobile instead of reporting
	// whichever of the pair happened to be checked first.
	for _, entry := range m.TypedDescriptors() {
		if entry.Type == metadata.FixedLine && m.FixedLine != nil && m.Mobile != nil &&
			m.FixedLine.NationalNumberPattern == m.Mobile.NationalNumberPattern &&
			descriptorTypeMatches(c.regexes, m.FixedLine, nsn, length) {
			return metadata.FixedLineOrMobile, true
		}
		if descriptorTypeMatches(c.regexes, entry.Desc, nsn, length) {
			return entry.Type, true
		}
	}
	return metadata.Unknown, true
}

func descriptorTypeMatches(regexes *regexcache.Cache, d *metadata.Descriptor, nsn string, length int) bool {
	if d == nil || d.NationalNumberPattern == "" {
		return false
	}
	return descriptorMatches(regexes, d, nsn, length)
}

func descriptorMatches(regexes *regexcache.Cache, d *metadata.Descriptor, nsn string, length int) bool {
	if !lengthAllowed(d, length) {
		return false
	}
	return regexes.MustMatch(d.NationalNumberPattern, nsn)
}

func lengthAllowed(d *metadata.Descriptor, length int) bool {
	for _, l := range d.PossibleLengths {
		if l == length {
			return true
		}
	}
	for _, l := range d.PossibleLengthsLocalOnly {
		if l == length {
			return true
		}
	}
	return false
}

// RegionForNumber picks, among the regions sharing n's calling code, the
// one whose leading_digits matches, else the main region, else none (§4.5).
func (c *Classifier) RegionForNumber(n number.Number) (string, bool) {
	regions := c.store.CountryCodeToRegions(n.CallingCode)
	if len(regions) == 0 {
		return "", false
	}
	nsn := n.NationalNumberString()
	for _, region := range regions {
		m, ok := c.store.ForRegion(region)
		if !ok || m.LeadingDigits == "" {
			continue
		}
		if c.regexes.HasPrefixMatch(m.LeadingDigits, nsn) {
			return region, true
		}
	}
	return regions[0], true
}

// ExampleNumber returns the embedded example for region and type, if the
// metadata carries one (§4.5; absent in lite builds per §3.2).
func (c *Classifier) ExampleNumber(region string, t metadata.NumberType) (number.Number, bool) {
	m, ok := c.store.ForRegion(region)
	if !ok {
		return number.Number{}, false
	}
	d := descriptorForType(m, t)
	if !d.HasExample() {
		return number.Number{}, false
	}
	n, err := atoU64(d.ExampleNumber)
	if err != nil {
		return number.Number{}, false
	}
	return number.New(m.CountryCode, n), true
}

// LengthForRegionAndType returns the possible-length set (global and
// local-only combined) that region's descriptor for t allows (§4.5).
func (c *Classifier) LengthForRegionAndType(region string, t metadata.NumberType) []int {
	m, ok := c.store.ForRegion(region)
	if !ok {
		return nil
	}
	d := descriptorForType(m, t)
	if d == nil {
		return nil
	}
	out := make([]int, 0, len(d.PossibleLengths)+len(d.PossibleLengthsLocalOnly))
	out = append(out, d.PossibleLengths...)
	out = append(out, d.PossibleLengthsLocalOnly...)
	return out
}

func descriptorForType(m *metadata.Metadata, t metadata.NumberType) *metadata.Descriptor {
	switch t {
	case metadata.FixedLine, metadata.FixedLineOrMobile:
		return m.FixedLine
	case metadata.Mobile:
		return m.Mobile
	case metadata.TollFree:
		return m.TollFree
	case metadata.PremiumRate:
		return m.PremiumRate
	case metadata.SharedCost:
		return m.SharedCost
	case metadata.Voip:
		return m.Voip
	case metadata.PersonalNumber:
		return m.PersonalNumber
	case metadata.Pager:
		return m.Pager
	case metadata.Uan:
		return m.Uan
	case metadata.Voicemail:
		return m.Voicemail
	default:
		return m.General
	}
}

func atoU64(s string) (uint64, error) {
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New(errors.CodeNotANumber, "classify.ExampleNumber", "example number is not numeric")
		}
		n = n*10 + uint64(r-'0')
	}
	return n, nil
}
