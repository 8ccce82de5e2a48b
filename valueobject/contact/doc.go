// Copyright (c) 2025 A Bit of Help, Inc.

// Package contact provides value objects related to contact information.
//
// Phone is the one value object this package carries: an immutable handle
// on a parsed phone number, backed directly by this module's own parser,
// formatter, classifier, and match engine rather than ad hoc validation
// regexes. It follows the Value Object pattern from Domain-Driven Design:
// constructed via a validating NewPhone, compared via Equals, and otherwise
// read-only.
//
// Example usage:
//
//	phone, err := contact.NewPhone("044 668 18 00", "CH")
//	if err != nil {
//	    // Handle parse error
//	}
//
//	fmt.Println(phone.National())      // "044 668 18 00"
//	fmt.Println(phone.International()) // "+41 44 668 18 00"
//	fmt.Println(phone.Normalized())    // "+41446681800"
//	fmt.Println(phone.Validate())      // nil: the number is valid
//
// All value objects in this package are immutable: to change the wrapped
// number, construct a new Phone rather than mutating one in place.
package contact
