// Copyright (c) 2025 A Bit of Help, Inc.

// Package scan implements the text scanner of §4.10: it extracts zero or
// more phone-number-shaped substrings from arbitrary surrounding text,
// parses each one, and reports it as a match only if it clears the
// caller's chosen leniency bar.
package scan
