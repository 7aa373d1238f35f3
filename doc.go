// Package mmr implements a verifier for Merkle Mountain Range (MMR)
// inclusion proofs.
//
// An MMR is an append-only accumulator built from a forest of perfect
// binary Merkle trees ("peaks") whose nodes share a single linear index
// space. Given a claimed root, the total node count of the MMR
// (mmr_size), one or more leaves to be proved, and a compact proof
// program describing how to reconstruct peaks and bag them into the
// root, Verify decides whether the claim holds.
//
// The verifier is a small stack machine (vm.go) driven by a byte stream
// of commands (push leaf, push proof node, merge, mark peak, bag peaks).
// It consumes leaves and proof nodes through pull-style readers
// (stream.go), reconstructs intermediate nodes with a 2-ary hash merge
// (merge.go), and tracks which peak positions are still expected with a
// small cursor (peakwalker.go). Position arithmetic (height in tree,
// sibling/parent offsets, peak positions) lives in position.go and
// bits.go and is pure and allocation-free.
//
// Building or updating an MMR, generating proofs, persistent storage,
// concurrent mutation and proof aggregation are all out of scope for
// this package; see internal/mmrtesting for a test-only MMR builder and
// proof compiler used to exercise Verify.
package mmr
