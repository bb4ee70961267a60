// Package unit defines the canonical, manufacturer-independent representation
// of an HVAC unit and the structured outcomes shared by the decode, build,
// search and validate features.
//
// # Canonical Specification
//
// A Spec carries the semantic attributes of a unit (capacity, voltage, phase,
// system type, efficiency ratings, accessories) decoupled from any vendor's
// model-number encoding. Each populated field carries a Provenance tag so a
// caller can tell a decoded value from a supplied or defaulted one.
//
// # Diagnostics
//
// Diagnostics are pure outputs. They never mutate the specification they
// describe; a consistent specification yields an empty diagnostic list.
//
// # Match Kinds
//
// When a continuous request value (tons, BTU) is resolved against a discrete
// ladder of supported values, the MatchKind records how the resolved value
// relates to the request: exact, rounded up, rounded down, or clamped to a
// ladder bound.
package unit
