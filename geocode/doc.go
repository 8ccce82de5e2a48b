// Copyright (c) 2025 A Bit of Help, Inc.

// Package geocode implements the prefix-to-description map engine of §4.9:
// a sorted-prefix, longest-match lookup over (calling_code, national_number)
// keyed data files, plus the locale-selection rules of §6.2, and the three
// thin facades (Geocoder, CarrierMapper, TimezoneMapper) that §6.4 describes
// as sitting atop one shared engine.
package geocode
