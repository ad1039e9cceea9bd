package merkle

import (
	"errors"
	"fmt"
	"hash"
)

// Prefixes used for domain separation between the two hashing modes. A leaf
// digest is computed over LeafPrefix || data, an inner-node digest over
// NodePrefix || left || right, so a digest produced in one mode can never be
// reproduced in the other.
const (
	LeafPrefix = 0
	NodePrefix = 1
)

var (
	ErrInvalidNodeLen = errors.New("invalid node digest size")
	ErrInvalidLeafLen = errors.New("invalid leaf digest size")
)

// TreeHasher is the hashing capability consumed by the tree builder and the
// proof verifier. HashLeaf and HashNode must use distinguishable input
// domains. Size is the fixed digest size in bytes; every digest produced by
// either method is exactly Size bytes.
//
// Implementations are not required to be safe for concurrent use. Callers
// that hash from multiple goroutines must use one instance per goroutine.
type TreeHasher interface {
	// HashLeaf computes the leaf digest of data.
	HashLeaf(data []byte) ([]byte, error)

	// HashNode combines two child digests into their parent digest.
	// Both children must be exactly Size() bytes.
	HashNode(left, right []byte) ([]byte, error)

	// Size returns the digest size in bytes.
	Size() int
}

var (
	_ hash.Hash  = (*Hasher)(nil)
	_ TreeHasher = (*Hasher)(nil)
)

// Hasher is the default TreeHasher. It wraps a base hash function and applies
// the LeafPrefix/NodePrefix tags, so any stdlib-compatible hash.Hash can back
// a tree.
//
// Hasher also implements hash.Hash itself: Write accepts either raw leaf data
// or the concatenation of two node digests (distinguished by length), and Sum
// returns the corresponding tagged digest.
type Hasher struct {
	baseHasher hash.Hash

	tp   byte   // type of the node to be hashed
	data []byte // written data of the node
}

// NewTreeHasher wraps baseHasher into a Hasher. The baseHasher instance is
// owned by the returned Hasher and must not be used elsewhere concurrently.
func NewTreeHasher(baseHasher hash.Hash) *Hasher {
	return &Hasher{
		baseHasher: baseHasher,
	}
}

// Size returns the number of bytes Sum will return.
func (n *Hasher) Size() int {
	return n.baseHasher.Size()
}

// Write writes data to be hashed.
//
// Data of exactly twice the digest size is treated as the concatenation of
// two child node digests; anything else is treated as leaf data. Only a
// single write is allowed between resets; it panics on a second write.
func (n *Hasher) Write(data []byte) (int, error) {
	if n.data != nil {
		panic("only a single Write is allowed")
	}

	if len(data) == n.Size()*2 {
		n.tp = NodePrefix
	} else {
		n.tp = LeafPrefix
	}

	n.data = data
	return len(data), nil
}

// Sum computes the hash of the written data. It does not append the given
// suffix, violating the hash.Hash contract the same way the stdlib checksum
// types do when misused; callers are expected to pass nil.
func (n *Hasher) Sum([]byte) []byte {
	switch n.tp {
	case LeafPrefix:
		res, err := n.HashLeaf(n.data)
		if err != nil {
			panic(err) // HashLeaf on the default Hasher cannot fail
		}
		return res
	case NodePrefix:
		res, err := n.HashNode(n.data[:n.Size()], n.data[n.Size():])
		if err != nil {
			panic(err) // children were length-checked by Write
		}
		return res
	default:
		panic("node type wasn't set")
	}
}

// Reset resets the Hasher to its initial state.
func (n *Hasher) Reset() {
	n.tp, n.data = 255, nil // reset with an invalid node type, as zero value is a valid leaf
	n.baseHasher.Reset()
}

// BlockSize returns the underlying hash's block size.
func (n *Hasher) BlockSize() int {
	return n.baseHasher.BlockSize()
}

// HashLeaf computes the leaf digest of data as H(LeafPrefix || data).
func (n *Hasher) HashLeaf(data []byte) ([]byte, error) {
	h := n.baseHasher
	h.Reset()

	prefixed := make([]byte, 0, len(data)+1)
	prefixed = append(prefixed, LeafPrefix)
	prefixed = append(prefixed, data...)
	//nolint:errcheck
	h.Write(prefixed)
	return h.Sum(make([]byte, 0, n.Size())), nil
}

// MustHashLeaf is a wrapper around HashLeaf that panics on error.
func (n *Hasher) MustHashLeaf(data []byte) []byte {
	res, err := n.HashLeaf(data)
	if err != nil {
		panic(err)
	}
	return res
}

// ValidateNodeFormat checks that node is a digest of the expected size and
// returns ErrInvalidNodeLen if it is not.
func (n *Hasher) ValidateNodeFormat(node []byte) error {
	if len(node) != n.Size() {
		return fmt.Errorf("%w: got: %v, want: %v", ErrInvalidNodeLen, len(node), n.Size())
	}
	return nil
}

// HashNode computes the parent digest of two child digests as
// H(NodePrefix || left || right). It returns ErrInvalidNodeLen if either
// child is not exactly Size() bytes.
func (n *Hasher) HashNode(left, right []byte) ([]byte, error) {
	if err := n.ValidateNodeFormat(left); err != nil {
		return nil, err
	}
	if err := n.ValidateNodeFormat(right); err != nil {
		return nil, err
	}

	h := n.baseHasher
	h.Reset()

	// Note this seems a little faster than calling several Write()s on the
	// underlying Hash function (see:
	// https://github.com/google/trillian/pull/1503):
	data := make([]byte, 0, 1+len(left)+len(right))
	data = append(data, NodePrefix)
	data = append(data, left...)
	data = append(data, right...)
	//nolint:errcheck
	h.Write(data)
	return h.Sum(make([]byte, 0, n.Size())), nil
}
