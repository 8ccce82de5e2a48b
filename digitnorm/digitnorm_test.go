// Copyright (c) 2025 A Bit of Help, Inc.

package digitnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigits_ArabicIndic(t *testing.T) {
	assert.Equal(t, "0123456789", NormalizeDigits("٠١٢٣٤٥٦٧٨٩"))
}

func TestNormalizeDigits_Fullwidth(t *testing.T) {
	assert.Equal(t, "12345", NormalizeDigits("１２３４５"))
}

func TestNormalizeDigits_PreservesPlusAndLetters(t *testing.T) {
	assert.Equal(t, "+1800MICROSOFT", NormalizeDigits("+1 800 MICROSOFT"))
}

func TestNormalizeDigits_DropsOtherSymbols(t *testing.T) {
	assert.Equal(t, "123", NormalizeDigits("1#2@3"))
}

func TestNormalizeDigitsOnly_StripsLetters(t *testing.T) {
	assert.Equal(t, "+1800", NormalizeDigitsOnly("+1 800 MICROSOFT"))
}

func TestConvertAlphaToDigits(t *testing.T) {
	// M-I-C-R-O-S-O-F-T -> 6-4-2-7-6-7-6-3-8
	assert.Equal(t, "+1800642767638", ConvertAlphaToDigits("+1800MICROSOFT"))
}

func TestConvertAlphaToDigits_LowerCase(t *testing.T) {
	assert.Equal(t, "2273", ConvertAlphaToDigits("bard"))
}

func TestIsViablePhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain national", "6502530000", true},
		{"with plus and spaces", "+1 650 253 0000", true},
		{"with parens and dashes", "(650) 253-0000", true},
		{"vanity number", "1-800-MICROSOFT", true},
		{"too short", "1", false},
		{"garbage", "@@@", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsViablePhoneNumber(tt.in))
		})
	}
}
