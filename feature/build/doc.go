// Package build assembles vendor model numbers from canonical requests.
//
// A build resolves every schema position of the target family, in schema
// order, to a concrete code: either an exact code supplied by the caller
// (validated against the position's table and the family's allowed set) or
// a numeric value resolved through the family's capacity/BTU ladder to the
// nearest supported size. Accessory positions merge with the family's
// default options tail in either replace or additive mode.
//
// A required position with no resolvable code aborts the build with a
// schema violation; no model string is produced. Builds that succeed always
// validate clean against the family constraints.
//
// # HTTP Endpoints
//
//   - POST /build : Assemble a model number.
//   - GET /build/families : List buildable families and their positions.
package build
