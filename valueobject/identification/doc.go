// Copyright (c) 2025 A Bit of Help, Inc.

// Package identification provides value objects related to identification.
//
// This package contains one value object, ID, a unique identifier in UUID
// form. It is immutable and follows the Value Object pattern from
// Domain-Driven Design. There are no name, username, date, gender or
// password value objects here.
//
// ID provides methods for:
//   - Creating and validating instances (NewID)
//   - Generating new random UUIDs (GenerateID)
//   - String representation
//   - Equality comparison
//   - Emptiness checking
//
// Example usage:
//
//	// Create a new ID
//	id, err := identification.NewID("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // Handle validation error
//	}
//
//	// Generate a random ID
//	randomID := identification.GenerateID()
//
// All value objects in this package are designed to be immutable, so they cannot
// be changed after creation. To modify a value object, create a new instance with
// the desired values.
package identification