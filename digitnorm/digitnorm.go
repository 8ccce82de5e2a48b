// Copyright (c) 2025 A Bit of Help, Inc.

// Package digitnorm turns free-form user input — native-script digits,
// keypad letters, punctuation, stray symbols — into the plain ASCII digit
// strings every other package in this module operates on. Nothing here
// parses a number; it only decides which runes are part of one.
package digitnorm

import (
	"strings"
	"unicode"
)

// PLUS_CHARS lists the runes recognised as a leading international-call
// marker: ASCII plus (U+002B), fullwidth plus (U+FF0B), and U+FE63.
const PLUS_CHARS = "+＋﹣"

// STAR is the keypad '*' character, kept distinct from plus because some
// vertical-service numbers start with it.
const STAR = '*'

// validPunctuation is the set of separator characters tolerated inside an
// otherwise-digit string: hyphen variants, parentheses, brackets, dot,
// whitespace, slash, tilde.
const validPunctuation = "-‐‑‒–—−()[]. \t\n/~"

// waitChar marks a dial-pause in some raw inputs; viable but not a digit.
const waitChar = ';'

// extensionMarkers are additional characters treated as viable even though
// they are letters, because they commonly introduce an extension.
const extensionMarkers = "x#"

// keypad is the E.161 alphabetic-to-digit mapping used for vanity numbers
// like "1-800-MICROSOFT".
var keypad = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// digitValue returns the ASCII digit '0'-'9' for r if r has a Unicode
// decimal digit value (covers Arabic-Indic, Devanagari, fullwidth, etc.),
// and ok=false otherwise.
func digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rng := range []struct{ lo, hi rune }{
		{0x0660, 0x0669}, // Arabic-Indic
		{0x06F0, 0x06F9}, // Extended Arabic-Indic
		{0x0966, 0x096F}, // Devanagari
		{0x09E6, 0x09EF}, // Bengali
		{0x0A66, 0x0A6F}, // Gurmukhi
		{0x0AE6, 0x0AEF}, // Gujarati
		{0x0B66, 0x0B6F}, // Oriya
		{0x0BE6, 0x0BEF}, // Tamil
		{0x0C66, 0x0C6F}, // Telugu
		{0x0CE6, 0x0CEF}, // Kannada
		{0x0D66, 0x0D6F}, // Malayalam
		{0x0E50, 0x0E59}, // Thai
		{0x0ED0, 0x0ED9}, // Lao
		{0x0F20, 0x0F29}, // Tibetan
		{0xFF10, 0xFF19}, // Fullwidth
	} {
		if r >= rng.lo && r <= rng.hi {
			return byte('0' + (r - rng.lo)), true
		}
	}
	return 0, false
}

// isValidPunctuation reports whether r is one of the separator characters
// tolerated inside a viable phone number.
func isValidPunctuation(r rune) bool {
	for _, p := range validPunctuation {
		if p == r {
			return true
		}
	}
	return false
}

func isPlus(r rune) bool {
	for _, p := range PLUS_CHARS {
		if p == r {
			return true
		}
	}
	return false
}

// NormalizeDigits replaces every Unicode decimal digit with its ASCII
// equivalent and keeps ASCII letters as-is. Every PLUS_CHARS rune, wherever
// it appears, is emitted as ASCII '+'. Everything else, valid punctuation
// included, is dropped.
func NormalizeDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if v, ok := digitValue(r); ok {
			out = append(out, v)
			continue
		}
		if isPlus(r) {
			out = append(out, '+')
			continue
		}
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			out = append(out, byte(r))
			continue
		}
	}
	return string(out)
}

// NormalizeDigitsOnly is NormalizeDigits with ASCII letters stripped too,
// leaving only digits (and an ASCII '+' for each PLUS_CHARS rune).
func NormalizeDigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if v, ok := digitValue(r); ok {
			out = append(out, v)
			continue
		}
		if isPlus(r) {
			out = append(out, '+')
		}
	}
	return string(out)
}

// ConvertAlphaToDigits applies the E.161 keypad mapping to ASCII letters,
// leaving digits and everything else untouched.
func ConvertAlphaToDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		upper := r
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		if d, ok := keypad[upper]; ok {
			out = append(out, d)
			continue
		}
		if v, ok := digitValue(r); ok {
			out = append(out, v)
			continue
		}
		if isPlus(r) {
			out = append(out, '+')
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}

// MinViableLength is the minimum number of characters is_viable_phone_number
// requires before a string is worth attempting to parse.
const MinViableLength = 2

// IsViablePhoneNumber reports whether s is worth attempting to parse: at
// least MinViableLength characters, and composed only of digits, letters,
// valid punctuation, plus characters, the wait character, or an extension
// marker.
func IsViablePhoneNumber(s string) bool {
	if len([]rune(s)) < MinViableLength {
		return false
	}
	for _, r := range s {
		if _, ok := digitValue(r); ok {
			continue
		}
		if isPlus(r) || isValidPunctuation(r) || r == waitChar || strings.ContainsRune(extensionMarkers, r) {
			continue
		}
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			continue
		}
		return false
	}
	return true
}
