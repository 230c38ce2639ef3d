// Package memory provides in-memory sequences that cover each capability tier of a cursor:
// a random access sized Slice, a bidirectional sized List,
// an unsized but measurable Runes, and an unbounded Iota.
package memory
