// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import (
	"sort"
	"strconv"
)

// tableEntry is one decoded, parsed (prefix, description) pair, bucketed
// by the digit-length of its prefix.
type tableEntry struct {
	prefix      int64
	description string
}

// Table is one loaded data file's decoded content: the parallel
// prefix/description arrays of §4.9, bucketed by prefix length and sorted
// within each bucket for binary search.
type Table struct {
	byLength map[int][]tableEntry
	lengths  []int // distinct prefix lengths, descending
}

// decodeTable parses blob and builds a ready-to-query Table.
func decodeTable(blob []byte) (*Table, error) {
	raw, err := decodeEntries(blob)
	if err != nil {
		return nil, err
	}
	t := &Table{byLength: make(map[int][]tableEntry)}
	seenLength := make(map[int]bool)
	for _, e := range raw {
		n, convErr := strconv.ParseInt(e.prefix, 10, 64)
		if convErr != nil {
			continue // malformed prefix in a data file is skipped, not fatal
		}
		l := len(e.prefix)
		t.byLength[l] = append(t.byLength[l], tableEntry{prefix: n, description: e.description})
		if !seenLength[l] {
			seenLength[l] = true
			t.lengths = append(t.lengths, l)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.lengths)))
	for l, list := range t.byLength {
		sort.Slice(list, func(i, j int) bool { return list[i].prefix < list[j].prefix })
		t.byLength[l] = list
	}
	return t, nil
}

// Lookup implements the longest-matching-prefix search of §4.9: for each
// distinct prefix length, longest first, binary-search that bucket for an
// exact match of the first L digits of (calling_code ++ national_number).
// It returns the raw stored description (which may be empty, meaning
// "defer to English" per §4.9's compression rule) and whether any prefix
// matched at all.
func (t *Table) Lookup(callingCode int, nationalNumber uint64) (description string, matched bool) {
	full := strconv.Itoa(callingCode) + strconv.FormatUint(nationalNumber, 10)
	for _, l := range t.lengths {
		if l > len(full) {
			continue
		}
		key, err := strconv.ParseInt(full[:l], 10, 64)
		if err != nil {
			continue
		}
		list := t.byLength[l]
		idx := sort.Search(len(list), func(i int) bool { return list[i].prefix >= key })
		if idx < len(list) && list[idx].prefix == key {
			return list[idx].description, true
		}
	}
	return "", false
}
