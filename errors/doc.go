// Copyright (c) 2025 A Bit of Help, Inc.

// Package errors defines the closed set of failure codes the phone number
// parser and classifier can return, plus a ParseError type carrying them.
package errors
