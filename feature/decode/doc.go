// Package decode turns raw data-plate text into a canonical specification.
//
// Input text arrives from the OCR collaborator as a plain string plus a
// confidence score; this package never sees image bytes. Decoding runs in
// two stages: normalization (whitespace collapsing plus a fixed table of
// known OCR misread corrections) and extraction (an ordered table of
// regular-expression rules per field, first match wins).
//
// # Honest Failure
//
// When the OCR confidence or the text length is below the hard quality
// floor, decoding fails outright with zero populated fields. The decoder
// never substitutes a guess for a field it could not read.
//
// # HTTP Endpoints
//
//   - POST /decode : Decode plate text into a specification.
package decode
