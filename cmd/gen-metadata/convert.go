// Copyright (c) 2025 A Bit of Help, Inc.

package main

import (
	"github.com/abitofhelp/phonenumber/filterdsl"
	"github.com/abitofhelp/phonenumber/geocode"
	"github.com/abitofhelp/phonenumber/metadata"
)

// toDescriptor converts one YAML descriptor, applying filter's per-field
// exclusions for parent (none means keep the whole thing).
func toDescriptor(parent string, d *descriptorSource, filter *filterdsl.Filter) *metadata.Descriptor {
	if d == nil {
		return nil
	}
	if filter != nil && filter.DropsParent(parent) {
		return nil
	}
	out := &metadata.Descriptor{}
	if filter == nil || !filter.DropsChild(parent, "nationalNumberPattern") {
		out.NationalNumberPattern = d.NationalNumberPattern
	}
	if filter == nil || !filter.DropsChild(parent, "possibleLength") {
		out.PossibleLengths = d.PossibleLengths
	}
	if filter == nil || !filter.DropsChild(parent, "possibleLengthLocalOnly") {
		out.PossibleLengthsLocalOnly = d.PossibleLengthsLocalOnly
	}
	if filter == nil || !filter.DropsChild(parent, "exampleNumber") {
		out.ExampleNumber = d.ExampleNumber
	}
	return out
}

func toNumberFormat(f formatSource) metadata.NumberFormat {
	return metadata.NumberFormat{
		Pattern:                              f.Pattern,
		FormatTemplate:                       f.FormatTemplate,
		LeadingDigits:                        f.LeadingDigits,
		NationalPrefixFormattingRule:         f.NationalPrefixFormattingRule,
		DomesticCarrierCodeFormattingRule:    f.DomesticCarrierCodeFormattingRule,
		NationalPrefixOptionalWhenFormatting: f.NationalPrefixOptionalWhenFormatting,
		InternationalFormat:                  f.InternationalFormat,
	}
}

// toMetadata converts one YAML region record into its runtime form,
// applying filter's childless-field exclusions along the way.
func toMetadata(r regionSource, filter *filterdsl.Filter) *metadata.Metadata {
	m := &metadata.Metadata{
		CountryCode:         r.CountryCode,
		ID:                  r.ID,
		InternationalPrefix: r.InternationalPrefix,
	}
	if filter == nil || !filter.DropsChildless("mainCountryForCode") {
		m.MainCountryForCode = r.MainCountryForCode
	}
	if filter == nil || !filter.DropsChildless("mobileNumberPortableRegion") {
		m.MobileNumberPortableRegion = r.MobileNumberPortableRegion
	}
	if filter == nil || !filter.DropsChildless("nationalPrefix") {
		m.NationalPrefix = r.NationalPrefix
	}
	if filter == nil || !filter.DropsChildless("nationalPrefixForParsing") {
		m.NationalPrefixForParsing = r.NationalPrefixForParsing
	}
	if filter == nil || !filter.DropsChildless("nationalPrefixTransformRule") {
		m.NationalPrefixTransformRule = r.NationalPrefixTransformRule
	}
	if filter == nil || !filter.DropsChildless("preferredInternationalPrefix") {
		m.PreferredInternationalPrefix = r.PreferredInternationalPrefix
	}
	if filter == nil || !filter.DropsChildless("preferredExtnPrefix") {
		m.PreferredExtnPrefix = r.PreferredExtnPrefix
	}
	if filter == nil || !filter.DropsChildless("leadingDigits") {
		m.LeadingDigits = r.LeadingDigits
	}

	m.General = toDescriptor("generalDesc", r.General, filter)
	m.FixedLine = toDescriptor("fixedLine", r.FixedLine, filter)
	m.Mobile = toDescriptor("mobile", r.Mobile, filter)
	m.TollFree = toDescriptor("tollFree", r.TollFree, filter)
	m.PremiumRate = toDescriptor("premiumRate", r.PremiumRate, filter)
	m.SharedCost = toDescriptor("sharedCost", r.SharedCost, filter)
	m.PersonalNumber = toDescriptor("personalNumber", r.PersonalNumber, filter)
	m.Voip = toDescriptor("voip", r.Voip, filter)
	m.Pager = toDescriptor("pager", r.Pager, filter)
	m.Uan = toDescriptor("uan", r.Uan, filter)
	m.Voicemail = toDescriptor("voicemail", r.Voicemail, filter)
	m.NoInternationalDialling = toDescriptor("noInternationalDialling", r.NoInternationalDialling, filter)

	if filter == nil || !filter.DropsChildless("numberFormat") {
		for _, f := range r.NumberFormats {
			m.NumberFormats = append(m.NumberFormats, toNumberFormat(f))
		}
	}
	if filter == nil || !filter.DropsChildless("internationalFormat") {
		for _, f := range r.InternationalFormats {
			m.InternationalFormats = append(m.InternationalFormats, toNumberFormat(f))
		}
	}
	return m
}

// toGeoTable converts one YAML prefix-description file into the binary
// blob geocode.EncodeTable produces (§6.2).
func toGeoTable(g geoSource) []byte {
	entries := make([]geocode.RawEntry, len(g.Entries))
	for i, e := range g.Entries {
		entries[i] = geocode.RawEntry{Prefix: e.Prefix, Description: e.Description}
	}
	return geocode.EncodeTable(entries)
}
