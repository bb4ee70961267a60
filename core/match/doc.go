// Package match ranks catalog units against replacement search criteria.
//
// The engine applies the matching policy in three stages: hard filters
// (system type, phase, family), band filters (voltage band membership,
// tonnage tolerance), and heating-capacity fallback. When the requested
// heating BTU value does not exist in the catalog, the engine keeps the
// entries carrying the nearest available heating value within the same
// family and tonnage bracket instead of returning nothing.
//
// Results are ordered by increasing distance from the requested capacity,
// then by increasing distance from the requested heating input, with ties
// broken by catalog insertion order. A search never fails; an empty result
// just means nothing qualified.
package match
