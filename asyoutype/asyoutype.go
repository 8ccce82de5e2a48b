// Copyright (c) 2025 A Bit of Help, Inc.

// Package asyoutype implements the streaming re-formatter of §4.8: a
// plain, pull-driven object whose InputDigit method returns the current
// best-effort display string after each keystroke. It is not a coroutine
// and is not thread-safe per instance (§5); callers serialize their own
// access the same way a text-field widget would own one formatter.
package asyoutype

import (
	"strings"

	"github.com/abitofhelp/phonenumber/digitnorm"
	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// minDigitsBeforeFormatting is §4.8 step 3's "fewer than 3 digits
// entered" threshold: below it, AsYouType echoes input unchanged rather
// than attempting a parse that cannot possibly succeed yet.
const minDigitsBeforeFormatting = 3

// AsYouType is a single typing session over one default region. Construct
// one per input field; call Clear to start a new number in the same field.
type AsYouType struct {
	store     *metadata.Store
	regexes   *regexcache.Cache
	parser    *parse.Parser
	formatter *format.Formatter

	defaultRegion string

	original     []rune
	ableToFormat bool

	lastOutput         string
	rememberedPosition int
}

// New constructs an AsYouType formatter defaulting to defaultRegion when
// the caller never types a leading '+' (§4.8).
func New(store *metadata.Store, regexes *regexcache.Cache, defaultRegion string) *AsYouType {
	a := &AsYouType{
		store:         store,
		regexes:       regexes,
		parser:        parse.New(store, regexes),
		formatter:     format.New(store, regexes),
		defaultRegion: defaultRegion,
	}
	a.Clear()
	return a
}

// Clear resets all session state (§4.8's "reset requires explicit clear").
func (a *AsYouType) Clear() {
	a.original = a.original[:0]
	a.ableToFormat = true
	a.lastOutput = ""
	a.rememberedPosition = -1
}

// InputDigit appends one character and returns the current best-effort
// formatted text (§4.8).
func (a *AsYouType) InputDigit(c rune) string {
	return a.input(c, false)
}

// InputDigitAndRememberPosition is InputDigit, but also records where the
// caller's cursor should land in the returned string; retrieve it with
// GetRememberedPosition (§4.8).
func (a *AsYouType) InputDigitAndRememberPosition(c rune) string {
	return a.input(c, true)
}

// GetRememberedPosition returns the position last recorded by
// InputDigitAndRememberPosition, or -1 if it has never been called since
// construction or the last Clear.
func (a *AsYouType) GetRememberedPosition() int {
	return a.rememberedPosition
}

func isDigitOrPlus(c rune) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return strings.ContainsRune(digitnorm.PLUS_CHARS, c)
}

// input implements the per-keystroke algorithm of §4.8. Rather than
// maintaining the live candidate-format list the spec's algorithm
// describes, this formatter takes the "reparse an accumulating buffer"
// shortcut §4.8's own overview text allows: each keystroke re-runs the
// full parser against everything typed so far and, on success, asks the
// formatter for the matching national or international rendering. This
// keeps one code path instead of two (see DESIGN.md).
func (a *AsYouType) input(c rune, remember bool) string {
	if !a.ableToFormat {
		a.original = append(a.original, c)
		out := string(a.original)
		a.lastOutput = out
		if remember {
			a.rememberedPosition = len(out)
		}
		return out
	}

	if !isDigitOrPlus(c) && a.hasEnteredEnoughToFormat() {
		a.ableToFormat = false
		a.original = append(a.original, c)
		out := string(a.original)
		a.lastOutput = out
		if remember {
			a.rememberedPosition = len(out)
		}
		return out
	}

	a.original = append(a.original, c)
	digits := digitnorm.NormalizeDigitsOnly(string(a.original))
	digitCount := len(strings.TrimPrefix(digits, "+"))

	if digitCount < minDigitsBeforeFormatting {
		out := string(a.original)
		a.lastOutput = out
		if remember {
			a.rememberedPosition = len(out)
		}
		return out
	}

	result := a.formatted(digits)
	a.lastOutput = result
	if remember {
		a.rememberedPosition = mapDigitIndexToPosition(result, digitCount)
	}
	return result
}

// hasEnteredEnoughToFormat reports whether a format has plausibly already
// been chosen for this session — i.e. whether a stray non-digit character
// from here on should latch the "unable to format" state (§4.8 step 1).
func (a *AsYouType) hasEnteredEnoughToFormat() bool {
	digits := digitnorm.NormalizeDigitsOnly(string(a.original))
	return len(strings.TrimPrefix(digits, "+")) >= minDigitsBeforeFormatting
}

// formatted re-parses digits (the normalized form of everything typed so
// far) and renders it in the convention the input so far implies:
// international when a calling code was recognized (via '+' or IDD),
// national otherwise. A parse failure (too short, unrecognized calling
// code, ...) falls back to echoing the digits with a leading '+' if one
// was typed.
func (a *AsYouType) formatted(digits string) string {
	n, err := a.parser.Parse(digits, a.defaultRegion, parse.Options{})
	if err != nil {
		return digits
	}
	style := format.National
	if n.CountryCodeSource == number.FromPlus || n.CountryCodeSource == number.FromIDD {
		style = format.International
	}
	return a.formatter.Format(n, style)
}

// mapDigitIndexToPosition finds, within formatted, the position right
// after the digitIndex-th digit character (1-based), approximating where
// the just-typed digit landed after reformatting (§4.8).
func mapDigitIndexToPosition(formatted string, digitIndex int) int {
	seen := 0
	for i, r := range formatted {
		if r >= '0' && r <= '9' {
			seen++
			if seen == digitIndex {
				return i + 1
			}
		}
	}
	return len(formatted)
}
