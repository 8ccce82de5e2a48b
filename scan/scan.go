package scan

import (
	"regexp"
	"strings"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/number"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// Leniency selects how strictly a candidate substring must resemble a
// real phone number to be reported as a Match, strictest last (§4.10).
type Leniency int

const (
	Possible Leniency = iota
	Valid
	StrictGrouping
	ExactlySameGrouping
)

// Match is one number found in surrounding text: its raw span and the
// number it parsed to (§4.10).
type Match struct {
	RawString string
	Start     int // byte offset into the scanned text
	End       int // byte offset, exclusive
	Number    number.Number
}

// minCandidateDigits is §4.10's "candidates shorter than three digits are
// skipped" rule.
const minCandidateDigits = 3

// candidatePattern is the conservative number-like regex §4.10 describes:
// an optional leading '+', then a run of digits, letters, and the
// formatting punctuation a real number may contain.
var candidatePattern = regexp.MustCompile(`[+＋]?[0-9０-９]([0-9０-９A-Za-z()\-.\s/~]{0,24}[0-9０-９A-Za-z])?`)

// Scanner finds number-shaped substrings in arbitrary text. It is safe to
// share across goroutines: it carries no mutable state itself, only the
// same Parser/Classifier/Formatter collaborators used elsewhere.
type Scanner struct {
	parser     *parse.Parser
	classifier *classify.Classifier
	formatter  *format.Formatter
}

// New constructs a Scanner over store, matching and parsing through regexes.
func New(store *metadata.Store, regexes *regexcache.Cache) *Scanner {
	return &Scanner{
		parser:     parse.New(store, regexes),
		classifier: classify.New(store, regexes),
		formatter:  format.New(store, regexes),
	}
}

// Iterator is the "lazy, finite, restart-from-scratch-only sequence"
// §4.10 describes: each call to Next advances through the text once;
// there is no way to resume a partially-consumed Iterator except by
// calling Scanner.FindNumbers again from the start.
type Iterator struct {
	scanner       *Scanner
	text          string
	defaultRegion string
	leniency      Leniency
	maxTries      int

	pos   int
	tries int
}

// FindNumbers returns an Iterator over every number-shaped match in text.
// maxTries bounds how many *candidate substrings* are examined (not how
// many matches are returned); zero or negative means unbounded (§4.10).
func (s *Scanner) FindNumbers(text, defaultRegion string, leniency Leniency, maxTries int) *Iterator {
	return &Iterator{scanner: s, text: text, defaultRegion: defaultRegion, leniency: leniency, maxTries: maxTries}
}

// Next returns the next match, or ok=false once the text (or maxTries) is
// exhausted.
func (it *Iterator) Next() (Match, bool) {
	for it.pos < len(it.text) {
		if it.maxTries > 0 && it.tries >= it.maxTries {
			return Match{}, false
		}
		loc := candidatePattern.FindStringIndex(it.text[it.pos:])
		if loc == nil {
			it.pos = len(it.text)
			return Match{}, false
		}
		start, end := it.pos+loc[0], it.pos+loc[1]
		it.tries++
		it.pos = end

		candidate := it.text[start:end]
		// candidatePattern admits letters, so it runs on into the words
		// that follow a number ("044 668 18 00 before noon"); cut the
		// candidate at the first whitespace that precedes a letter.
		for i := 1; i < len(candidate); i++ {
			c, prev := candidate[i], candidate[i-1]
			if (prev == ' ' || prev == '\t' || prev == '\n') && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
				candidate = strings.TrimRight(candidate[:i], " \t\n")
				end = start + len(candidate)
				it.pos = end
				break
			}
		}
		if digitCount(candidate) < minCandidateDigits {
			continue
		}
		if embeddedInLongerDigitRun(it.text, start, end) {
			continue
		}

		n, err := it.scanner.parser.Parse(candidate, it.defaultRegion, parse.Options{KeepRawInput: true})
		if err != nil {
			continue
		}
		if !it.scanner.satisfies(n, candidate, it.leniency) {
			continue
		}
		return Match{RawString: candidate, Start: start, End: end, Number: n}, true
	}
	return Match{}, false
}

// satisfies tests n (parsed from candidate) against leniency (§4.10).
func (s *Scanner) satisfies(n number.Number, candidate string, leniency Leniency) bool {
	switch leniency {
	case Possible:
		return s.classifier.IsPossible(n)
	case Valid:
		return s.classifier.IsValid(n)
	case StrictGrouping, ExactlySameGrouping:
		if !s.classifier.IsValid(n) {
			return false
		}
		national := s.formatter.Format(n, format.National)
		if !sameDigitGrouping(candidate, national) {
			return false
		}
		if leniency == ExactlySameGrouping {
			return normalizeSeparators(candidate) == normalizeSeparators(national)
		}
		return true
	default:
		return false
	}
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// embeddedInLongerDigitRun reports whether the character immediately
// before start or immediately after end (if any) is itself a digit,
// meaning candidate was carved out of a longer digit run such as a serial
// or account number rather than standing on its own (§4.10).
func embeddedInLongerDigitRun(text string, start, end int) bool {
	if start > 0 && isASCIIDigit(text[start-1]) {
		return true
	}
	if end < len(text) && isASCIIDigit(text[end]) {
		return true
	}
	return false
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitGroups returns the lengths of the runs of digits in s, separated
// by anything non-digit; a leading '+' is not itself a group.
func digitGroups(s string) []int {
	var groups []int
	run := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			run++
			continue
		}
		if run > 0 {
			groups = append(groups, run)
			run = 0
		}
	}
	if run > 0 {
		groups = append(groups, run)
	}
	return groups
}

func sameDigitGrouping(a, b string) bool {
	ga, gb := digitGroups(a), digitGroups(b)
	if len(ga) != len(gb) {
		return false
	}
	for i := range ga {
		if ga[i] != gb[i] {
			return false
		}
	}
	return true
}

// normalizeSeparators collapses runs of whitespace to a single space and
// trims the result, so two strings that differ only in incidental spacing
// still compare equal under ExactlySameGrouping.
func normalizeSeparators(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' })
	return strings.Join(fields, " ")
}
