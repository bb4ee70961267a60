// Package schema loads and exposes the master model-number schema.
//
// The schema is the single source of truth for how a vendor model number is
// put together: the ordered character positions of the string, the code table
// behind each position, the families (product lines) that select a subset of
// positions and constrain their codes, and the ladders of discrete capacity
// values used for nearest-match fallback.
//
// # Lifecycle
//
// The schema is loaded exactly once at process start, either from a local
// JSON file or from an object in the storage bucket. A malformed document is
// a fatal startup error. The resulting Master value is immutable; it is
// shared read-only by the decode, build, search and validate features, so
// any number of requests may use it concurrently without coordination.
//
// # Ladders
//
// Continuous request values (tons, BTU/h) rarely hit a supported value
// exactly. A Ladder resolves such a value to the nearest supported one and
// reports how it got there (exact, rounded up, rounded down, or clamped to a
// bound). Resolution is monotonic: a larger request never resolves to a
// smaller ladder value.
package schema
