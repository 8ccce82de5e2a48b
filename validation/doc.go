// Copyright (c) 2025 A Bit of Help, Inc.

// Package validation validates metadata build-tool input. The compiler in
// cmd/gen-metadata runs every region record and every prefix-description
// file parsed from YAML through Struct before it is allowed into the
// compiled blob, so a malformed source file fails the build instead of
// producing a metadata record the runtime trusts blindly. A region's
// descriptors are checked with it; its number-format entries are not
// checked one by one.
package validation
