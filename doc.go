// Package merkle builds authenticated binary hash trees over ordered leaf
// sequences and produces compact, independently verifiable inclusion proofs.
//
// A tree is constructed once, bottom-up, from items ([FromItems]) or from
// precomputed leaf digests ([FromLeafHashes]). Hashing is pluggable through
// the [TreeHasher] capability; [NewTreeHasher] adapts any stdlib hash.Hash
// with leaf/node domain separation, and [Sha256BatchHasher] provides a
// vectorized SHA-256 variant. Proofs generated with [MerkleTree.Prove] carry
// everything a verifier needs: holding only the expected root, a verifier
// checks membership in O(height) with [Proof.Verify].
package merkle
