// Copyright (c) 2025 A Bit of Help, Inc.

package geocode

import "strings"

// localeNormalizations maps a language_region combination onto the
// language_script tag the data files actually use for it, per §4.9's
// "zh_TW, zh_HK, zh_MO -> zh_Hant" rule.
var localeNormalizations = map[string]string{
	"zh_TW": "zh_Hant",
	"zh_HK": "zh_Hant",
	"zh_MO": "zh_Hant",
}

// suppressEnglishFallback reports whether language's mapping file, when it
// yields nothing, should NOT fall back to English (§4.9: zh, ja, ko).
func suppressEnglishFallback(language string) bool {
	switch language {
	case "zh", "ja", "ko":
		return true
	default:
		return false
	}
}

// localeCandidates builds the ordered list of locale tags to try for a
// mapping file, per §4.9: language_script_region, then language_script,
// then language_region, then language. Empty script/region are simply
// omitted from the corresponding candidate.
func localeCandidates(language, script, region string) []string {
	if language == "" {
		return nil
	}
	if norm, ok := localeNormalizations[language+"_"+region]; ok {
		language, script, region = splitNormalized(norm)
	}

	var out []string
	add := func(parts ...string) {
		var nonEmpty []string
		for _, p := range parts {
			if p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		tag := strings.Join(nonEmpty, "_")
		for _, existing := range out {
			if existing == tag {
				return
			}
		}
		out = append(out, tag)
	}

	if script != "" && region != "" {
		add(language, script, region)
	}
	if script != "" {
		add(language, script)
	}
	if region != "" {
		add(language, region)
	}
	add(language)
	return out
}

// splitNormalized splits a normalized "lang_Script" tag (as produced by
// localeNormalizations) back into language/script/region components.
func splitNormalized(tag string) (language, script, region string) {
	parts := strings.SplitN(tag, "_", 2)
	if len(parts) == 1 {
		return parts[0], "", ""
	}
	return parts[0], parts[1], ""
}
