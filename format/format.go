// Copyright (c) 2025 A Bit of Help, Inc.

// Package format renders a parsed number.Number back into text, in the
// styles and out-of-country conventions described in §4.7.
package format

import (
	"strconv"
	"strings"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/digitnorm"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// Style selects one of the four rendering conventions from §4.7.
type Style int

const (
	E164 Style = iota
	International
	National
	RFC3966
)

// Formatter renders numbers. It has no per-call mutable state and is safe
// to share across goroutines.
type Formatter struct {
	store      *metadata.Store
	regexes    *regexcache.Cache
	classifier *classify.Classifier
}

// New constructs a Formatter over store, matching patterns through regexes.
func New(store *metadata.Store, regexes *regexcache.Cache) *Formatter {
	return &Formatter{store: store, regexes: regexes, classifier: classify.New(store, regexes)}
}

// Format renders n in the requested style (§4.7).
func (f *Formatter) Format(n number.Number, style Style) string {
	switch style {
	case E164:
		return f.e164(n)
	case RFC3966:
		return f.rfc3966(n)
	case International:
		return f.formatWithMetadata(n, true)
	default:
		return f.formatWithMetadata(n, false)
	}
}

func (f *Formatter) e164(n number.Number) string {
	return "+" + strconv.Itoa(n.CallingCode) + n.NationalNumberString()
}

func (f *Formatter) rfc3966(n number.Number) string {
	out := "tel:" + f.e164(n)
	if n.Extension != "" {
		out += ";ext=" + n.Extension
	}
	return out
}

// formatWithMetadata implements the "core formatting routine" of §4.7: pick
// the first number_format whose leading_digits matches, apply its pattern
// and template, then (for national style) re-inject the national prefix or
// domestic carrier code per the format's formatting rule.
func (f *Formatter) formatWithMetadata(n number.Number, international bool) string {
	meta, ok := f.store.ForCountryCode(n.CallingCode)
	if !ok {
		return f.e164(n)
	}
	nsn := n.NationalNumberString()

	list := meta.NumberFormats
	if international {
		list = meta.FormatsOrFallback()
	}
	nf, found := f.matchFormat(list, nsn)
	if !found {
		if international {
			return "+" + strconv.Itoa(n.CallingCode) + " " + nsn
		}
		return nsn
	}

	template := nf.FormatTemplate
	if international && nf.InternationalFormat != "" {
		template = nf.InternationalFormat
	}
	formatted, ok := f.applyTemplate(nf.Pattern, template, nsn)
	if !ok {
		formatted = nsn
	}

	if international {
		return "+" + strconv.Itoa(n.CallingCode) + " " + formatted
	}
	return applyPrefixRule(nf, meta.NationalPrefix, n.PreferredDomesticCarrierCode, formatted)
}

func (f *Formatter) matchFormat(list []metadata.NumberFormat, nsn string) (metadata.NumberFormat, bool) {
	for _, nf := range list {
		if !f.leadingDigitsMatch(nf.LeadingDigits, nsn) {
			continue
		}
		if f.regexes.MustMatch(nf.Pattern, nsn) {
			return nf, true
		}
	}
	return metadata.NumberFormat{}, false
}

func (f *Formatter) leadingDigitsMatch(patterns []string, nsn string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if f.regexes.HasPrefixMatch(p, nsn) {
			return true
		}
	}
	return false
}

func (f *Formatter) applyTemplate(pattern, template, nsn string) (string, bool) {
	re := f.regexes.Get(pattern)
	loc := re.FindStringSubmatchIndex(nsn)
	if loc == nil || loc[0] != 0 || loc[1] != len(nsn) {
		return "", false
	}
	groupCount := len(loc)/2 - 1
	groups := make([]string, groupCount)
	for i := 1; i <= groupCount; i++ {
		s, e := loc[2*i], loc[2*i+1]
		if s >= 0 {
			groups[i-1] = nsn[s:e]
		}
	}
	return expandGroups(template, groups), true
}

// expandGroups substitutes $1..$9 in template with groups, the way a
// format_template references the pattern's capture groups.
func expandGroups(template string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '$' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
			idx := int(template[i+1] - '1')
			if idx < len(groups) {
				b.WriteString(groups[idx])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// applyPrefixRule re-injects the national prefix (or, when a carrier code
// is present and the format defines one, the domestic carrier code rule)
// using the $NP / $FG / $CC tokens of §3.2.
func applyPrefixRule(nf metadata.NumberFormat, nationalPrefix, carrierCode, formatted string) string {
	rule := nf.NationalPrefixFormattingRule
	if carrierCode != "" && nf.DomesticCarrierCodeFormattingRule != "" {
		rule = nf.DomesticCarrierCodeFormattingRule
	}
	if rule == "" {
		return formatted
	}
	out := strings.ReplaceAll(rule, "$FG", formatted)
	out = strings.ReplaceAll(out, "$NP", nationalPrefix)
	out = strings.ReplaceAll(out, "$CC", carrierCode)
	return out
}

// FormatOutOfCountryCallingNumber renders n the way a caller dialling from
// callingFromRegion would need to dial it (§4.7): national format when the
// two share a calling code, otherwise that region's international dialling
// prefix followed by the calling code and international-formatted number.
func (f *Formatter) FormatOutOfCountryCallingNumber(n number.Number, callingFromRegion string) string {
	fromMeta, ok := f.store.ForRegion(callingFromRegion)
	if !ok {
		return f.Format(n, E164)
	}
	if fromMeta.CountryCode == n.CallingCode {
		return f.Format(n, National)
	}
	ccStr := strconv.Itoa(n.CallingCode)
	intlFormatted := f.formatWithMetadata(n, true)
	rest := strings.TrimPrefix(intlFormatted, "+"+ccStr+" ")
	return dialingPrefix(fromMeta) + " " + ccStr + " " + rest
}

// FormatOutOfCountryKeepingAlphaChars is FormatOutOfCountryCallingNumber but
// rebuilt from n.RawInput so any vanity letters the caller typed survive
// (§4.7). Returns the out-of-country form without alpha preservation when
// RawInput was not captured.
func (f *Formatter) FormatOutOfCountryKeepingAlphaChars(n number.Number, callingFromRegion string) string {
	if n.RawInput == "" {
		return f.FormatOutOfCountryCallingNumber(n, callingFromRegion)
	}
	kept := digitnorm.NormalizeDigits(n.RawInput)
	kept = strings.TrimPrefix(kept, "+")
	ccStr := strconv.Itoa(n.CallingCode)
	kept = strings.TrimPrefix(kept, ccStr)

	fromMeta, ok := f.store.ForRegion(callingFromRegion)
	if !ok || fromMeta.CountryCode == n.CallingCode {
		return kept
	}
	return dialingPrefix(fromMeta) + " " + ccStr + " " + kept
}

func dialingPrefix(fromMeta *metadata.Metadata) string {
	if fromMeta.PreferredInternationalPrefix != "" {
		return fromMeta.PreferredInternationalPrefix
	}
	return fromMeta.InternationalPrefix
}

// FormatInOriginalFormat reproduces the convention the caller originally
// used, as recorded in n.CountryCodeSource (§4.7).
func (f *Formatter) FormatInOriginalFormat(n number.Number, callingFromRegion string) string {
	switch n.CountryCodeSource {
	case number.FromPlus:
		return f.Format(n, International)
	case number.FromIDD:
		return f.FormatOutOfCountryCallingNumber(n, callingFromRegion)
	case number.FromNoPlusWithCC:
		return strconv.Itoa(n.CallingCode) + " " + f.Format(n, National)
	default:
		return f.Format(n, National)
	}
}

// FormatForMobileDialing renders n the way a mobile handset in
// callingFromRegion should dial it, or "" when it cannot be reliably
// dialled at all (§4.7). Brazilian long-distance fixed lines need a
// carrier selection code the caller hasn't supplied; Mexican and
// Argentine mobile numbers carry a trunk digit their stored national form
// omits.
func (f *Formatter) FormatForMobileDialing(n number.Number, callingFromRegion string, withFormatting bool) string {
	region, ok := f.classifier.RegionForNumber(n)
	if !ok {
		return ""
	}
	sameRegion := region == callingFromRegion
	numberType := f.classifier.NumberType(n)

	if region == "BR" && sameRegion && n.PreferredDomesticCarrierCode == "" && numberType == metadata.FixedLine {
		return ""
	}

	var result string
	if sameRegion {
		result = f.Format(n, National)
	} else {
		result = f.Format(n, E164)
	}

	switch {
	case region == "MX" && sameRegion && numberType == metadata.Mobile:
		result = "045 " + f.Format(n, National)
	case region == "AR" && !sameRegion && numberType == metadata.Mobile:
		result = "+" + strconv.Itoa(n.CallingCode) + " 9" + n.NationalNumberString()
	}

	if !withFormatting {
		result = stripFormattingPunctuation(result)
	}
	return result
}

func stripFormattingPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
