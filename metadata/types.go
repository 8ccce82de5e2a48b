// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

// NonGeoRegionID is the sentinel region id used for non-geographical
// calling codes (international freephone, shared-cost services, ...).
const NonGeoRegionID = "001"

// Descriptor is one number-type's shape: the pattern its national number
// must fully match, and the lengths that pattern is allowed to produce.
type Descriptor struct {
	NationalNumberPattern    string
	PossibleLengths          []int
	PossibleLengthsLocalOnly []int
	ExampleNumber            string // empty means absent
}

// HasExample reports whether this descriptor carries an example number.
func (d *Descriptor) HasExample() bool {
	return d != nil && d.ExampleNumber != ""
}

// NumberFormat is one entry in a region's national or international
// format list (§3.2).
type NumberFormat struct {
	Pattern                              string
	FormatTemplate                       string
	LeadingDigits                        []string
	NationalPrefixFormattingRule         string // empty means absent
	DomesticCarrierCodeFormattingRule    string // empty means absent
	NationalPrefixOptionalWhenFormatting bool
	InternationalFormat                  string // empty means "reuse FormatTemplate"
}

// HasNationalPrefixFormattingRule reports whether a rule was supplied.
func (f *NumberFormat) HasNationalPrefixFormattingRule() bool {
	return f.NationalPrefixFormattingRule != ""
}

// Metadata is one region's (or non-geographical entity's) complete
// numbering-plan record (§3.2).
type Metadata struct {
	CountryCode                 int
	ID                          string
	InternationalPrefix         string
	PreferredInternationalPrefix string // empty means absent
	NationalPrefix              string // empty means absent
	NationalPrefixForParsing    string // empty means "use NationalPrefix literally"
	NationalPrefixTransformRule string // empty means absent
	PreferredExtnPrefix         string // empty means absent
	MainCountryForCode          bool
	MobileNumberPortableRegion  bool
	LeadingDigits               string // empty means absent

	General                  *Descriptor
	FixedLine                *Descriptor
	Mobile                   *Descriptor
	TollFree                 *Descriptor
	PremiumRate              *Descriptor
	SharedCost               *Descriptor
	PersonalNumber           *Descriptor
	Voip                     *Descriptor
	Pager                    *Descriptor
	Uan                      *Descriptor
	Voicemail                *Descriptor
	NoInternationalDialling  *Descriptor

	NumberFormats        []NumberFormat
	InternationalFormats []NumberFormat

	// ShortMetadata is a deliberately unimplemented hook: the short-number
	// sibling component (out of scope per §1) would populate this from the
	// same binary carrier if this module ever grew that feature.
	ShortMetadata *ShortMetadata
}

// ShortMetadata is the placeholder record type for the out-of-scope
// short-number component; no loader ever populates one.
type ShortMetadata struct {
	ID string
}

// IsNonGeographical reports whether this record describes a
// non-geographical entity rather than a CLDR region.
func (m *Metadata) IsNonGeographical() bool {
	return m.ID == NonGeoRegionID
}

// FormatsOrFallback returns InternationalFormats, or NumberFormats when the
// former is empty, per §3.2's "may be empty, in which case the national
// list applies" rule.
func (m *Metadata) FormatsOrFallback() []NumberFormat {
	if len(m.InternationalFormats) > 0 {
		return m.InternationalFormats
	}
	return m.NumberFormats
}

// TypedDescriptors returns every typed descriptor in the fixed priority
// order the classifier's number_type walk uses (§4.5), paired with the
// NumberType each belongs to.
func (m *Metadata) TypedDescriptors() []struct {
	Type NumberType
	Desc *Descriptor
} {
	return []struct {
		Type NumberType
		Desc *Descriptor
	}{
		{PremiumRate, m.PremiumRate},
		{TollFree, m.TollFree},
		{SharedCost, m.SharedCost},
		{Voip, m.Voip},
		{PersonalNumber, m.PersonalNumber},
		{Pager, m.Pager},
		{Uan, m.Uan},
		{Voicemail, m.Voicemail},
		{FixedLine, m.FixedLine},
		{Mobile, m.Mobile},
	}
}

// NumberType is the classifier's type enumeration (§3.2, §4.5).
type NumberType int

const (
	Unknown NumberType = iota
	FixedLine
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	Voip
	PersonalNumber
	Pager
	Uan
	Voicemail
)

func (t NumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case Voip:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case Uan:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}
