// Copyright (c) 2025 A Bit of Help, Inc.

package asyoutype

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(t *testing.T, defaultRegion string) *AsYouType {
	t.Helper()
	store := metadata.NewDefaultStore(nil)
	regexes := regexcache.New(nil)
	return New(store, regexes, defaultRegion)
}

func typeDigits(a *AsYouType, digits string) string {
	var out string
	for _, c := range digits {
		out = a.InputDigit(c)
	}
	return out
}

func TestAsYouType_SwissNationalNumber(t *testing.T) {
	a := newTestFormatter(t, "CH")
	got := typeDigits(a, "0446681800")
	assert.Equal(t, "044 668 18 00", got)
}

func TestAsYouType_USNationalNumber(t *testing.T) {
	a := newTestFormatter(t, "US")
	got := typeDigits(a, "2025551234")
	assert.Equal(t, "202-555-1234", got)
}

func TestAsYouType_InternationalWithPlus(t *testing.T) {
	a := newTestFormatter(t, "US")
	got := typeDigits(a, "+41446681800")
	assert.Equal(t, "+41 44 668 18 00", got)
}

func TestAsYouType_FewerThanThreeDigitsEchoesInput(t *testing.T) {
	a := newTestFormatter(t, "CH")
	got := a.InputDigit('0')
	assert.Equal(t, "0", got)
	got = a.InputDigit('4')
	assert.Equal(t, "04", got)
}

func TestAsYouType_ClearResetsState(t *testing.T) {
	a := newTestFormatter(t, "CH")
	typeDigits(a, "0446681800")
	a.Clear()
	got := a.InputDigit('2')
	assert.Equal(t, "2", got)
}

func TestAsYouType_RememberedPositionIsWithinOutput(t *testing.T) {
	a := newTestFormatter(t, "CH")
	var last string
	for _, c := range "0446681800" {
		last = a.InputDigitAndRememberPosition(c)
	}
	pos := a.GetRememberedPosition()
	assert.GreaterOrEqual(t, pos, 0)
	assert.LessOrEqual(t, pos, len(last))
}

func TestAsYouType_Idempotence(t *testing.T) {
	a := newTestFormatter(t, "CH")
	first := typeDigits(a, "0446681800")

	a.Clear()
	var second string
	for i, c := range "0446681800" {
		if i%2 == 0 {
			second = a.InputDigitAndRememberPosition(c)
			_ = a.GetRememberedPosition()
		} else {
			second = a.InputDigit(c)
		}
	}
	assert.Equal(t, first, second)
}

func TestAsYouType_GetRememberedPositionDefaultsToNegativeOne(t *testing.T) {
	a := newTestFormatter(t, "CH")
	assert.Equal(t, -1, a.GetRememberedPosition())
}

func TestAsYouType_UnparseableStillEchoesDigits(t *testing.T) {
	a := newTestFormatter(t, "")
	got := typeDigits(a, "+999999999999")
	require.NotEmpty(t, got)
	assert.Contains(t, got, "+")
}
