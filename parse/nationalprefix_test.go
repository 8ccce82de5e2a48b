// Copyright (c) 2025 A Bit of Help, Inc.

package parse

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/stretchr/testify/assert"
)

func TestApplyBackrefs_SingleGroup(t *testing.T) {
	assert.Equal(t, "9 1234", applyBackrefs("9 $1", []string{"1234"}))
}

func TestApplyBackrefs_NoReferenceInRule(t *testing.T) {
	assert.Equal(t, "plain", applyBackrefs("plain", []string{"1234"}))
}

func TestApplyBackrefs_MissingGroupLeavesBlank(t *testing.T) {
	assert.Equal(t, "x", applyBackrefs("x$2", []string{"1234"}))
}

func simpleMeta(nationalPrefix, forParsing, transformRule string, lengths []int) *metadata.Metadata {
	return &metadata.Metadata{
		CountryCode:                 55,
		ID:                          "XX",
		NationalPrefix:              nationalPrefix,
		NationalPrefixForParsing:    forParsing,
		NationalPrefixTransformRule: transformRule,
		General: &metadata.Descriptor{
			NationalNumberPattern: `\d+`,
			PossibleLengths:       lengths,
		},
	}
}

func TestStripNationalPrefix_SimpleLiteralPrefix(t *testing.T) {
	p := newTestParser(t)
	meta := simpleMeta("0", "", "", []int{9})
	result, carrier := p.stripNationalPrefix(meta, "0123456789")
	assert.Equal(t, "123456789", result)
	assert.Empty(t, carrier)
}

func TestStripNationalPrefix_NoPrefixConfigured(t *testing.T) {
	p := newTestParser(t)
	meta := simpleMeta("", "", "", []int{9})
	result, carrier := p.stripNationalPrefix(meta, "123456789")
	assert.Equal(t, "123456789", result)
	assert.Empty(t, carrier)
}

func TestStripNationalPrefix_TransformRuleCapturesCarrierCode(t *testing.T) {
	p := newTestParser(t)
	// Brazil-shaped rule: "0" optionally followed by a two-digit carrier
	// selection code, reinjected ahead of the remaining national number.
	meta := simpleMeta("0", `0(?:(\d{2}))?`, "$1", []int{10})
	result, carrier := p.stripNationalPrefix(meta, "01512345678")
	assert.Equal(t, "1512345678", result)
	assert.Equal(t, "15", carrier)
}

func TestStripNationalPrefix_UndoesStripWhenItBreaksPossibility(t *testing.T) {
	p := newTestParser(t)
	// Stripping "0" would leave an 8-digit number, which General doesn't
	// allow, while the original 9-digit string (with leading 0) does.
	meta := simpleMeta("0", "", "", []int{9})
	result, carrier := p.stripNationalPrefix(meta, "012345678")
	assert.Equal(t, "012345678", result)
	assert.Empty(t, carrier)
}

func TestStripNationalPrefix_NoMatchLeavesNumberUnchanged(t *testing.T) {
	p := newTestParser(t)
	meta := simpleMeta("0", "", "", []int{9})
	result, carrier := p.stripNationalPrefix(meta, "923456789")
	assert.Equal(t, "923456789", result)
	assert.Empty(t, carrier)
}
