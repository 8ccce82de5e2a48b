// Copyright (c) 2025 A Bit of Help, Inc.

package parse

import (
	"regexp"
	"strings"

	"github.com/abitofhelp/phonenumber/metadata"
)

// stripNationalPrefix implements §4.4.2. It returns the (possibly)
// stripped national number and any carrier code the transform rule
// surfaced.
func (p *Parser) stripNationalPrefix(meta *metadata.Metadata, nsn string) (result string, carrierCode string) {
	pattern := meta.NationalPrefixForParsing
	if pattern == "" {
		if meta.NationalPrefix == "" {
			return nsn, ""
		}
		pattern = "^" + regexp.QuoteMeta(meta.NationalPrefix)
	} else if !strings.HasPrefix(pattern, "^") {
		pattern = "^(?:" + pattern + ")"
	}

	re := p.regexes.Get(pattern)
	loc := re.FindStringSubmatchIndex(nsn)
	if loc == nil || loc[0] != 0 {
		return nsn, ""
	}

	var candidate string
	var group string
	if len(loc) >= 4 && loc[2] >= 0 {
		group = nsn[loc[2]:loc[3]]
	}
	remainder := nsn[loc[1]:]

	if group != "" && meta.NationalPrefixTransformRule != "" {
		candidate = applyBackrefs(meta.NationalPrefixTransformRule, []string{group}) + remainder
	} else {
		candidate = remainder
	}

	prestripPossible := p.isPossibleForMeta(meta, nsn)
	poststripPossible := p.isPossibleForMeta(meta, candidate)

	if poststripPossible {
		if group != "" && candidate != remainder {
			carrierCode = group
		}
		return candidate, carrierCode
	}
	if prestripPossible {
		return nsn, ""
	}
	return candidate, carrierCode
}

// applyBackrefs substitutes $1..$9 in rule from groups (groups[0] is $1),
// per the sed-style transform rule syntax in §3.2 / §4.4.2.
func applyBackrefs(rule string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(rule); i++ {
		c := rule[i]
		if c == '$' && i+1 < len(rule) && rule[i+1] >= '1' && rule[i+1] <= '9' {
			idx := int(rule[i+1] - '1')
			if idx < len(groups) {
				b.WriteString(groups[idx])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
