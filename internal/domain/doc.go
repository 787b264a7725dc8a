// Package domain models city weather lookups.
//
// # Input Conventions
//
// Users type a city name optionally decorated with a trailing suffix that
// selects how much of the provider's data ends up in the report:
//
//	"london"    →  basic report (temperature, feels-like, description)
//	"london+"   →  adds coordinates and observation date
//	"london++"  →  adds timezone, pressure, humidity, visibility, wind speed
//
// Only the last one or two characters are ever significant: "a+++" parses as
// the city "a+" at full detail. Parsing is total over all strings, including
// the empty string, and never fails.
//
// # Report Shapes
//
// Each detail level maps to a fixed-shape record ([BasicReport],
// [StandardReport], [FullReport]) rather than a dynamically keyed map, so the
// set of rendered fields is checked at compile time. [Project] selects the
// shape for an upstream [Observation].
//
// # Time Format
//
// Observation timestamps arrive from the provider as epoch seconds and are
// rendered as "YYYY-MM-DD HH:MM:SS UTC", always in UTC.
//
// # Error Collapse
//
// All lookup failures (unknown city, transport error, bad credentials) fold
// into a single [LookupError] with the message "No weather info for <city>".
// The underlying cause is preserved for logs via Unwrap but is never part of
// the user-facing message.
package domain
