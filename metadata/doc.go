// Copyright (c) 2025 A Bit of Help, Inc.

// Package metadata owns the immutable per-region and per-calling-code
// descriptors that the parser, classifier, and formatter all consult. It
// loads them lazily from an embedded binary blob keyed by region code or
// calling code, compiling each record's patterns only on first use.
package metadata
