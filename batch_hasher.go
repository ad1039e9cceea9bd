package merkle

import (
	"crypto/sha256"
	"fmt"

	"github.com/prysmaticlabs/gohashtree"
)

// LevelHasher is an optional upgrade interface for TreeHasher
// implementations that can combine a whole tree level at once. The tree
// builder type-asserts for it and, when present, hashes level by level
// instead of pair by pair.
type LevelHasher interface {
	// HashLevel computes the parent level of an even-length level of
	// digests: entry i of the result is the parent of entries 2i and 2i+1
	// of the input. The input digests must all be Size() bytes.
	HashLevel(level [][]byte) ([][]byte, error)
}

var (
	_ TreeHasher  = (*Sha256BatchHasher)(nil)
	_ LevelHasher = (*Sha256BatchHasher)(nil)
)

// Sha256BatchHasher is a SHA-256 TreeHasher that hashes inner levels in
// batches through gohashtree's vectorized two-to-one compression.
//
// gohashtree consumes exactly 64-byte blocks, which leaves no room for a
// node prefix. Domain separation therefore works by input length: every leaf
// digest is sha256(LeafPrefix || sha256(data)), a 33-byte preimage, while
// every inner-node digest has a 64-byte preimage, so the two domains are
// disjoint for any data. Roots computed under this scheme differ from roots
// computed under the default Hasher; the two are distinct capabilities and
// must not be mixed within one tree or proof.
//
// A Sha256BatchHasher is stateless and safe for concurrent use.
type Sha256BatchHasher struct{}

// NewSha256BatchHasher returns a Sha256BatchHasher.
func NewSha256BatchHasher() *Sha256BatchHasher {
	return &Sha256BatchHasher{}
}

// Size returns the SHA-256 digest size.
func (b *Sha256BatchHasher) Size() int {
	return sha256.Size
}

// HashLeaf computes sha256(LeafPrefix || sha256(data)). The inner hash pins
// the preimage to 33 bytes, which no 64-byte node preimage can equal.
func (b *Sha256BatchHasher) HashLeaf(data []byte) ([]byte, error) {
	inner := sha256.Sum256(data)
	prefixed := make([]byte, 0, 1+sha256.Size)
	prefixed = append(prefixed, LeafPrefix)
	prefixed = append(prefixed, inner[:]...)
	res := sha256.Sum256(prefixed)
	return res[:], nil
}

// HashNode computes sha256(left || right). It returns ErrInvalidNodeLen if
// either child is not exactly sha256.Size bytes.
func (b *Sha256BatchHasher) HashNode(left, right []byte) ([]byte, error) {
	if len(left) != sha256.Size {
		return nil, fmt.Errorf("%w: got: %v, want: %v", ErrInvalidNodeLen, len(left), sha256.Size)
	}
	if len(right) != sha256.Size {
		return nil, fmt.Errorf("%w: got: %v, want: %v", ErrInvalidNodeLen, len(right), sha256.Size)
	}

	data := make([]byte, 0, 2*sha256.Size)
	data = append(data, left...)
	data = append(data, right...)
	res := sha256.Sum256(data)
	return res[:], nil
}

// HashLevel combines an even-length level of digests into its parent level
// with a single vectorized pass.
func (b *Sha256BatchHasher) HashLevel(level [][]byte) ([][]byte, error) {
	if len(level)%2 != 0 {
		return nil, fmt.Errorf("%w: odd level length %v", ErrInvalidNodeLen, len(level))
	}

	chunks := make([]byte, 0, len(level)*sha256.Size)
	for _, d := range level {
		if len(d) != sha256.Size {
			return nil, fmt.Errorf("%w: got: %v, want: %v", ErrInvalidNodeLen, len(d), sha256.Size)
		}
		chunks = append(chunks, d...)
	}

	digests := make([]byte, len(level)/2*sha256.Size)
	if err := gohashtree.HashByteSlice(digests, chunks); err != nil {
		return nil, fmt.Errorf("batch hashing level: %w", err)
	}

	parents := make([][]byte, len(level)/2)
	for i := range parents {
		parents[i] = digests[i*sha256.Size : (i+1)*sha256.Size]
	}
	return parents, nil
}
