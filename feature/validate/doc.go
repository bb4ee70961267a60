// Package validate exposes the family-constraint validator over HTTP.
//
// It wraps core/validate: a model number is parsed against the master
// schema, or an explicit specification is checked as-is, and the family's
// capacity, heating and accessory constraints produce a diagnostic report.
//
// # HTTP Endpoints
//
//   - POST /validate : Validate a model number or specification.
package validate
