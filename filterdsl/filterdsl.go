// Copyright (c) 2025 A Bit of Help, Inc.

// Package filterdsl parses the build-time field filter of §6.3: a
// comma/colon-separated expression such as
// "uan(possibleLength,exampleNumber):pager(exampleNumber):fixedLine:nationalPrefix"
// naming which metadata fields a build variant should drop. It is used only
// by cmd/gen-metadata at compile time; nothing at runtime imports it.
package filterdsl

import (
	"fmt"
	"strings"
)

// Code identifies why an expression failed to parse.
type Code string

const (
	CodeUnknownToken     Code = "UNKNOWN_TOKEN"
	CodeChildlessAsParent Code = "CHILDLESS_FIELD_AS_PARENT"
	CodeParentAsChild    Code = "PARENT_FIELD_AS_CHILD"
	CodeDuplicateGroup   Code = "DUPLICATE_GROUP"
	CodeUnbalancedParens Code = "UNBALANCED_PARENTHESES"
	CodeEmptyGroup       Code = "EMPTY_GROUP"
	CodeBadSeparator     Code = "BAD_SEPARATOR"
)

// Error is returned whenever Parse rejects an expression.
type Error struct {
	Code    Code
	Token   string
	Message string
}

func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("filterdsl: %s: %q (%s)", e.Message, e.Token, e.Code)
	}
	return fmt.Sprintf("filterdsl: %s (%s)", e.Message, e.Code)
}

func newErr(code Code, token, message string) *Error {
	return &Error{Code: code, Token: token, Message: message}
}

// parentFields are the typed-descriptor fields of metadata.Metadata:
// parents may appear bare (dropping the whole descriptor) or with a
// parenthesized child list (dropping only those children from it).
var parentFields = map[string]bool{
	"generalDesc":             true,
	"fixedLine":                true,
	"mobile":                   true,
	"tollFree":                 true,
	"premiumRate":              true,
	"sharedCost":               true,
	"personalNumber":           true,
	"voip":                     true,
	"pager":                    true,
	"uan":                      true,
	"voicemail":                true,
	"noInternationalDialling":  true,
}

// childFields are Descriptor fields. A bare child token (not inside a
// parent's parentheses) drops that field from every parent at once, per
// §6.3's "equivalent expressions" rule.
var childFields = map[string]bool{
	"nationalNumberPattern":   true,
	"possibleLength":          true,
	"possibleLengthLocalOnly": true,
	"exampleNumber":           true,
}

// childlessFields are Metadata fields with no children; they may only
// appear bare, never as a parent and never inside parentheses.
var childlessFields = map[string]bool{
	"nationalPrefix":              true,
	"nationalPrefixForParsing":    true,
	"nationalPrefixTransformRule": true,
	"preferredInternationalPrefix": true,
	"preferredExtnPrefix":          true,
	"mainCountryForCode":           true,
	"mobileNumberPortableRegion":   true,
	"leadingDigits":                true,
	"numberFormat":                 true,
	"internationalFormat":          true,
}

// Filter is the parsed, canonical form of a filter expression: the set of
// fields a build should drop.
type Filter struct {
	// DroppedParents holds parents excluded entirely (bare token).
	DroppedParents map[string]bool
	// DroppedChildren maps parent name to the set of children dropped from
	// just that parent (from a parent(child,...) group).
	DroppedChildren map[string]map[string]bool
	// DroppedChildEverywhere holds child field names dropped from every
	// parent at once (from a bare child token).
	DroppedChildEverywhere map[string]bool
	// DroppedChildless holds childless fields dropped entirely.
	DroppedChildless map[string]bool
}

// DropsParent reports whether parent is entirely excluded.
func (f *Filter) DropsParent(parent string) bool {
	return f.DroppedParents[parent]
}

// DropsChild reports whether child is excluded from parent, either because
// it was named under that specific parent or named bare (everywhere).
func (f *Filter) DropsChild(parent, child string) bool {
	if f.DroppedChildEverywhere[child] {
		return true
	}
	return f.DroppedChildren[parent] != nil && f.DroppedChildren[parent][child]
}

// DropsChildless reports whether a standalone field is excluded.
func (f *Filter) DropsChildless(field string) bool {
	return f.DroppedChildless[field]
}

// Parse parses expr into a Filter, applying every error mode §6.3 defines.
func Parse(expr string) (*Filter, error) {
	f := &Filter{
		DroppedParents:         map[string]bool{},
		DroppedChildren:        map[string]map[string]bool{},
		DroppedChildEverywhere: map[string]bool{},
		DroppedChildless:       map[string]bool{},
	}
	if strings.TrimSpace(expr) == "" {
		return f, nil
	}

	groups, err := splitTopLevel(expr, ':')
	if err != nil {
		return nil, err
	}

	seenParent := map[string]bool{}
	seenChildEverywhere := map[string]bool{}
	seenChildless := map[string]bool{}

	for _, group := range groups {
		name, children, hasParens, err := splitGroup(group)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, newErr(CodeEmptyGroup, group, "empty group")
		}

		switch {
		case hasParens:
			if !parentFields[name] {
				if childlessFields[name] {
					return nil, newErr(CodeChildlessAsParent, name, "childless field used as parent")
				}
				return nil, newErr(CodeUnknownToken, name, "unknown token")
			}
			if seenParent[name] {
				return nil, newErr(CodeDuplicateGroup, name, "parent listed more than once")
			}
			seenParent[name] = true

			if len(children) == 0 {
				return nil, newErr(CodeEmptyGroup, group, "empty child list")
			}
			seenChild := map[string]bool{}
			for _, child := range children {
				if child == "" {
					return nil, newErr(CodeBadSeparator, group, "empty child name")
				}
				if !childFields[child] {
					if parentFields[child] {
						return nil, newErr(CodeParentAsChild, child, "parent field used as child")
					}
					return nil, newErr(CodeUnknownToken, child, "unknown token")
				}
				if seenChild[child] {
					return nil, newErr(CodeDuplicateGroup, child, "child listed more than once under the same parent")
				}
				seenChild[child] = true
				if seenChildEverywhere[child] {
					return nil, newErr(CodeDuplicateGroup, child, "child named both standalone and under a parent")
				}
				if f.DroppedChildren[name] == nil {
					f.DroppedChildren[name] = map[string]bool{}
				}
				f.DroppedChildren[name][child] = true
			}

		case parentFields[name]:
			if seenParent[name] {
				return nil, newErr(CodeDuplicateGroup, name, "parent listed more than once")
			}
			seenParent[name] = true
			f.DroppedParents[name] = true

		case childFields[name]:
			if seenChildEverywhere[name] {
				return nil, newErr(CodeDuplicateGroup, name, "child listed more than once")
			}
			for parent := range f.DroppedChildren {
				if f.DroppedChildren[parent][name] {
					return nil, newErr(CodeDuplicateGroup, name, "child named both standalone and under a parent")
				}
			}
			seenChildEverywhere[name] = true
			f.DroppedChildEverywhere[name] = true

		case childlessFields[name]:
			if seenChildless[name] {
				return nil, newErr(CodeDuplicateGroup, name, "childless field listed more than once")
			}
			seenChildless[name] = true
			f.DroppedChildless[name] = true

		default:
			return nil, newErr(CodeUnknownToken, name, "unknown token")
		}
	}

	return f, nil
}

// splitTopLevel splits s on sep, but only outside parentheses, and rejects
// leading, trailing, or adjacent separators and unbalanced parentheses.
func splitTopLevel(s string, sep byte) ([]string, error) {
	depth := 0
	start := 0
	var parts []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, newErr(CodeUnbalancedParens, s, "unbalanced parentheses")
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, newErr(CodeUnbalancedParens, s, "unbalanced parentheses")
	}
	parts = append(parts, s[start:])

	for _, p := range parts {
		if p == "" {
			return nil, newErr(CodeBadSeparator, s, "leading, trailing, or adjacent separator")
		}
	}
	return parts, nil
}

// splitGroup parses one top-level group into its field name and, if
// parenthesized, its child token list.
func splitGroup(group string) (name string, children []string, hasParens bool, err error) {
	open := strings.IndexByte(group, '(')
	if open < 0 {
		if strings.ContainsRune(group, ')') {
			return "", nil, false, newErr(CodeUnbalancedParens, group, "unbalanced parentheses")
		}
		return group, nil, false, nil
	}
	if !strings.HasSuffix(group, ")") {
		return "", nil, false, newErr(CodeUnbalancedParens, group, "unbalanced parentheses")
	}
	name = group[:open]
	inner := group[open+1 : len(group)-1]
	if strings.ContainsAny(inner, "()") {
		return "", nil, false, newErr(CodeUnbalancedParens, group, "unbalanced parentheses")
	}
	if inner == "" {
		return name, nil, true, nil
	}
	raw := strings.Split(inner, ",")
	for _, c := range raw {
		if c == "" {
			return "", nil, false, newErr(CodeBadSeparator, group, "leading, trailing, or adjacent comma")
		}
	}
	return name, raw, true, nil
}
