// Package store provides the backing byte buffers for the piece table:
// a write-once original buffer and an append-only add buffer.
//
// The store is the only component that performs bulk allocation or copying.
// Everything above it addresses text through (slot, start, length) triples,
// which remain valid indefinitely because neither buffer ever shrinks or
// relocates content that is already referenced.
package store
