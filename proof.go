package merkle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/celestiaorg/merkle/pb"
)

// ErrInvalidProof is returned when a serialized proof cannot be decoded into
// a structurally valid Proof. It says nothing about whether the proof
// verifies against any root.
var ErrInvalidProof = errors.New("malformed proof")

// Side marks the position of the current node within its pair while folding
// a proof towards the root.
type Side byte

const (
	// Left means the current node is the left argument of the combining
	// hash and the recorded sibling the right one.
	Left Side = 0
	// Right means the current node is the right argument of the combining
	// hash and the recorded sibling the left one.
	Right Side = 1
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", byte(s))
	}
}

// Proof is a self-contained inclusion proof for a single leaf: the leaf
// digest, the leaf's index among the leaves, and the ordered leaf-to-root
// sequence of (sibling digest, side) entries needed to recompute the root.
//
// A Proof is a value type, independent of the tree that produced it; the
// tree may be discarded after generation. Verification needs only the proof
// and the expected root.
type Proof struct {
	leafHash  []byte
	leafIndex int
	siblings  [][]byte
	sides     []Side
}

// NewProof assembles a proof from its parts. The slices are used as-is; the
// caller must not modify them afterwards. Entries are ordered leaf to root.
func NewProof(leafHash []byte, leafIndex int, siblings [][]byte, sides []Side) Proof {
	return Proof{
		leafHash:  leafHash,
		leafIndex: leafIndex,
		siblings:  siblings,
		sides:     sides,
	}
}

// LeafHash returns the digest of the proven leaf.
func (proof Proof) LeafHash() []byte {
	return proof.leafHash
}

// LeafIndex returns the zero-based index of the proven leaf.
func (proof Proof) LeafIndex() int {
	return proof.leafIndex
}

// Siblings returns the sibling digests, ordered leaf to root.
func (proof Proof) Siblings() [][]byte {
	return proof.siblings
}

// Sides returns the side markers, ordered leaf to root, aligned with
// Siblings.
func (proof Proof) Sides() []Side {
	return proof.sides
}

// Verify recomputes a candidate root by folding the leaf digest with every
// (sibling, side) entry in order through th.HashNode and compares it to the
// expected root byte-exactly. It consults nothing but the proof itself: cost
// and data requirement are O(height), independent of the tree size.
//
// An untrusted proof failing to verify is a normal outcome, hence the
// boolean result rather than an error.
func (proof Proof) Verify(th TreeHasher, root []byte) bool {
	if len(proof.siblings) != len(proof.sides) {
		return false
	}

	current := proof.leafHash
	for i, sibling := range proof.siblings {
		var err error
		if proof.sides[i] == Left {
			current, err = th.HashNode(current, sibling)
		} else {
			current, err = th.HashNode(sibling, current)
		}
		if err != nil {
			return false
		}
	}
	return bytes.Equal(current, root)
}

// VerifyInclusion checks that item is the leaf this proof commits to and
// that the proof folds to the expected root: it hashes item with th.HashLeaf,
// compares against the embedded leaf digest, then runs Verify.
func (proof Proof) VerifyInclusion(th TreeHasher, item []byte, root []byte) bool {
	leafHash, err := th.HashLeaf(item)
	if err != nil {
		return false
	}
	if !bytes.Equal(leafHash, proof.leafHash) {
		return false
	}
	return proof.Verify(th, root)
}

// ToProto converts the proof into its wire form. All digests are copied.
func (proof Proof) ToProto() *pb.Proof {
	siblings := make([][]byte, len(proof.siblings))
	for i, sibling := range proof.siblings {
		siblings[i] = append([]byte(nil), sibling...)
	}
	sides := make([]byte, len(proof.sides))
	for i, side := range proof.sides {
		sides[i] = byte(side)
	}
	return &pb.Proof{
		LeafHash:  append([]byte(nil), proof.leafHash...),
		LeafIndex: uint64(proof.leafIndex),
		Siblings:  siblings,
		Sides:     sides,
	}
}

// ProofFromProto converts a wire-form proof back into a Proof. It returns
// ErrInvalidProof if the message is structurally inconsistent: mismatched
// sibling/side counts, unknown side values, digests of differing sizes, or
// side bits that disagree with the leaf index.
func ProofFromProto(p *pb.Proof) (Proof, error) {
	if p == nil {
		return Proof{}, fmt.Errorf("%w: nil message", ErrInvalidProof)
	}
	if len(p.LeafHash) == 0 {
		return Proof{}, fmt.Errorf("%w: empty leaf hash", ErrInvalidProof)
	}
	if len(p.Sides) != len(p.Siblings) {
		return Proof{}, fmt.Errorf("%w: %d siblings but %d sides",
			ErrInvalidProof, len(p.Siblings), len(p.Sides))
	}
	// The index of a leaf with h entries above it fits in h bits.
	if len(p.Siblings) > 62 || p.LeafIndex>>uint(len(p.Siblings)) != 0 {
		return Proof{}, fmt.Errorf("%w: leaf index %d does not fit a proof of %d entries",
			ErrInvalidProof, p.LeafIndex, len(p.Siblings))
	}

	index := int(p.LeafIndex)
	sides := make([]Side, len(p.Sides))
	for i, s := range p.Sides {
		if s != byte(Left) && s != byte(Right) {
			return Proof{}, fmt.Errorf("%w: unknown side %d at entry %d", ErrInvalidProof, s, i)
		}
		want := Left
		if (index>>uint(i))&1 == 1 {
			want = Right
		}
		if Side(s) != want {
			return Proof{}, fmt.Errorf("%w: side at entry %d disagrees with leaf index %d",
				ErrInvalidProof, i, index)
		}
		sides[i] = Side(s)
	}

	siblings := make([][]byte, len(p.Siblings))
	for i, sibling := range p.Siblings {
		if len(sibling) != len(p.LeafHash) {
			return Proof{}, fmt.Errorf("%w: sibling %d: got: %v, want: %v",
				ErrInvalidProof, i, len(sibling), len(p.LeafHash))
		}
		siblings[i] = append([]byte(nil), sibling...)
	}

	return Proof{
		leafHash:  append([]byte(nil), p.LeafHash...),
		leafIndex: index,
		siblings:  siblings,
		sides:     sides,
	}, nil
}
