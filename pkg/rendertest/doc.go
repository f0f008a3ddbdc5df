// Package rendertest provides a deterministic harness for testing
// weft renders without a real host: a manually driven work slicer, a
// pump-style Tester bound to an in-memory host tree, and JSON
// snapshots of the committed host tree for golden-file assertions.
package rendertest
