package scan

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	store := metadata.NewDefaultStore(nil)
	regexes := regexcache.New(nil)
	return New(store, regexes)
}

func collect(it *Iterator) []Match {
	var out []Match
	for {
		m, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func TestScanner_FindsNumberSurroundedByText(t *testing.T) {
	s := newTestScanner(t)
	text := "Call the Zurich office at 044 668 18 00 before noon."
	matches := collect(s.FindNumbers(text, "CH", Valid, 0))
	require.Len(t, matches, 1)
	assert.Equal(t, "044 668 18 00", matches[0].RawString)
	assert.Equal(t, 41, matches[0].Number.CallingCode)
}

func TestScanner_PossibleFindsPlusPrefixedNumberInText(t *testing.T) {
	s := newTestScanner(t)
	text := "reach us on +1 202-555-1234 anytime"
	matches := collect(s.FindNumbers(text, "", Possible, 0))
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(2025551234), matches[0].Number.NationalNumber)
}

func TestScanner_SkipsDigitRunEmbeddedInLongerSerial(t *testing.T) {
	s := newTestScanner(t)
	text := "order number 98765432109876543 was shipped"
	matches := collect(s.FindNumbers(text, "US", Valid, 0))
	assert.Empty(t, matches)
}

func TestScanner_SkipsShortDigitRuns(t *testing.T) {
	s := newTestScanner(t)
	text := "room 42 is down the hall"
	matches := collect(s.FindNumbers(text, "US", Possible, 0))
	assert.Empty(t, matches)
}

func TestScanner_NoMatchesReturnsFalseImmediately(t *testing.T) {
	s := newTestScanner(t)
	it := s.FindNumbers("no numbers here at all", "US", Possible, 0)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestScanner_MaxTriesBoundsCandidatesExamined(t *testing.T) {
	s := newTestScanner(t)
	text := "044 668 18 00 and also 044 668 18 00 again"
	it := s.FindNumbers(text, "CH", Valid, 1)
	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestScanner_StrictGroupingRejectsReflowedDigits(t *testing.T) {
	s := newTestScanner(t)
	text := "dial 0446681800 for the front desk"
	matches := collect(s.FindNumbers(text, "CH", StrictGrouping, 0))
	assert.Empty(t, matches)
}

func TestScanner_StrictGroupingAcceptsMatchingGrouping(t *testing.T) {
	s := newTestScanner(t)
	text := "dial 044 668 18 00 for the front desk"
	matches := collect(s.FindNumbers(text, "CH", StrictGrouping, 0))
	require.Len(t, matches, 1)
}

func TestScanner_ExactlySameGroupingRequiresIdenticalText(t *testing.T) {
	s := newTestScanner(t)
	text := "dial 044  668 18 00 please"
	matches := collect(s.FindNumbers(text, "CH", ExactlySameGrouping, 0))
	assert.Empty(t, matches)
}

func TestDigitGroups(t *testing.T) {
	assert.Equal(t, []int{3, 3, 2, 2}, digitGroups("044 668 18 00"))
	assert.Equal(t, []int{10}, digitGroups("0446681800"))
}

func TestSameDigitGrouping(t *testing.T) {
	assert.True(t, sameDigitGrouping("044 668 18 00", "044 668 18 00"))
	assert.False(t, sameDigitGrouping("0446681800", "044 668 18 00"))
}
