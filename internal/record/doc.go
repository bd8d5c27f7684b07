// Package record loads game records and derives the per-segment display
// state the overlay needs.
//
// A record is a JSON or YAML document listing timestamped segments with the
// score at each segment's end. Derivation is a strict left-to-right fold over
// the ordered segments carrying the running maximum score per team; it is
// never parallelized because each segment's winner flag depends on every
// earlier segment.
package record
