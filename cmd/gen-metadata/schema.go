// Copyright (c) 2025 A Bit of Help, Inc.

package main

// sourceFile is the top-level shape of a numbering-plan YAML source file
// (§6.1): one file per region, or one shared file for every non-geographical
// entity. cmd/gen-metadata compiles a directory of these into the binary
// layout metadata.EncodeBlob produces.
type sourceFile struct {
	Regions []regionSource `yaml:"regions"`
	NonGeo  []regionSource `yaml:"non_geo"`
}

// regionSource mirrors metadata.Metadata field-for-field, in the
// human-editable YAML shape; convert.go's toMetadata converts it.
type regionSource struct {
	ID                           string `yaml:"id" validate:"required"`
	CountryCode                  int    `yaml:"country_code" validate:"required,min=1"`
	InternationalPrefix          string `yaml:"international_prefix" validate:"required"`
	PreferredInternationalPrefix string `yaml:"preferred_international_prefix"`
	NationalPrefix               string `yaml:"national_prefix"`
	NationalPrefixForParsing     string `yaml:"national_prefix_for_parsing"`
	NationalPrefixTransformRule  string `yaml:"national_prefix_transform_rule"`
	PreferredExtnPrefix          string `yaml:"preferred_extn_prefix"`
	MainCountryForCode           bool   `yaml:"main_country_for_code"`
	MobileNumberPortableRegion   bool   `yaml:"mobile_number_portable_region"`
	LeadingDigits                string `yaml:"leading_digits"`

	General                 *descriptorSource `yaml:"general_desc"`
	FixedLine               *descriptorSource `yaml:"fixed_line"`
	Mobile                  *descriptorSource `yaml:"mobile"`
	TollFree                *descriptorSource `yaml:"toll_free"`
	PremiumRate             *descriptorSource `yaml:"premium_rate"`
	SharedCost              *descriptorSource `yaml:"shared_cost"`
	PersonalNumber          *descriptorSource `yaml:"personal_number"`
	Voip                    *descriptorSource `yaml:"voip"`
	Pager                   *descriptorSource `yaml:"pager"`
	Uan                     *descriptorSource `yaml:"uan"`
	Voicemail               *descriptorSource `yaml:"voicemail"`
	NoInternationalDialling *descriptorSource `yaml:"no_international_dialling"`

	NumberFormats        []formatSource `yaml:"number_format"`
	InternationalFormats []formatSource `yaml:"international_format"`
}

type descriptorSource struct {
	NationalNumberPattern    string `yaml:"national_number_pattern" validate:"required"`
	PossibleLengths          []int  `yaml:"possible_length"`
	PossibleLengthsLocalOnly []int  `yaml:"possible_length_local_only"`
	ExampleNumber            string `yaml:"example_number"`
}

type formatSource struct {
	Pattern                              string   `yaml:"pattern" validate:"required"`
	FormatTemplate                       string   `yaml:"format" validate:"required"`
	LeadingDigits                        []string `yaml:"leading_digits"`
	NationalPrefixFormattingRule         string   `yaml:"national_prefix_formatting_rule"`
	DomesticCarrierCodeFormattingRule    string   `yaml:"domestic_carrier_code_formatting_rule"`
	NationalPrefixOptionalWhenFormatting bool     `yaml:"national_prefix_optional_when_formatting"`
	InternationalFormat                  string   `yaml:"international_format"`
}

// geoSource is one (calling_code, language_tag) prefix-description file's
// YAML source (§4.9, §6.2): a flat list of prefix/description pairs.
type geoSource struct {
	CallingCode int            `yaml:"calling_code" validate:"required,min=1"`
	Language    string         `yaml:"language" validate:"required"`
	Entries     []geoEntrySource `yaml:"entries"`
}

type geoEntrySource struct {
	Prefix      string `yaml:"prefix" validate:"required"`
	Description string `yaml:"description"`
}
