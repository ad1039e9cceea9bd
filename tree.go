package merkle

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput      = errors.New("at least one leaf is required")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// MerkleTree is an immutable binary hash tree over an ordered sequence of
// leaves.
//
// All digests are stored in a single contiguous buffer holding the levels
// concatenated bottom-up: leaves first, root last. For four leaves:
//
//	[h1 h2 h3 h4 h12 h34 root]
//
// A level of odd length pairs its last digest with itself to form the
// parent, so the level above a level of width w has width ceil(w/2). The
// root of a single-leaf tree is the leaf digest itself.
//
// A MerkleTree is built once and never mutated; concurrent reads need no
// coordination.
type MerkleTree struct {
	th TreeHasher

	nodes   []byte // all levels, leaves first, root last
	offsets []int  // digest offset of each level within nodes
	widths  []int  // number of digests in each level

	leafCount int
	height    int
	size      int // digest size in bytes
}

// FromItems builds a tree by hashing each item into a leaf digest with
// th.HashLeaf, preserving order. It returns ErrEmptyInput if items is empty.
func FromItems(th TreeHasher, items [][]byte) (*MerkleTree, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrEmptyInput)
	}
	leafHashes := make([][]byte, len(items))
	for i, item := range items {
		leafHash, err := th.HashLeaf(item)
		if err != nil {
			return nil, fmt.Errorf("hashing leaf %d: %w", i, err)
		}
		leafHashes[i] = leafHash
	}
	return build(th, leafHashes)
}

// FromLeafHashes builds a tree from precomputed leaf digests, preserving
// order. Each digest must be exactly th.Size() bytes (ErrInvalidLeafLen
// otherwise); the digests are copied, the caller keeps ownership of the
// input. It returns ErrEmptyInput if leafHashes is empty.
func FromLeafHashes(th TreeHasher, leafHashes [][]byte) (*MerkleTree, error) {
	if len(leafHashes) == 0 {
		return nil, fmt.Errorf("%w: no leaf hashes", ErrEmptyInput)
	}
	for i, leafHash := range leafHashes {
		if len(leafHash) != th.Size() {
			return nil, fmt.Errorf("%w: leaf %d: got: %v, want: %v",
				ErrInvalidLeafLen, i, len(leafHash), th.Size())
		}
	}
	return build(th, leafHashes)
}

func build(th TreeHasher, leafHashes [][]byte) (*MerkleTree, error) {
	widths := levelWidths(len(leafHashes))
	size := th.Size()

	offsets := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		offsets[i] = total
		total += w
	}

	t := &MerkleTree{
		th:        th,
		nodes:     make([]byte, total*size),
		offsets:   offsets,
		widths:    widths,
		leafCount: len(leafHashes),
		height:    len(widths) - 1,
		size:      size,
	}

	for i, leafHash := range leafHashes {
		copy(t.nodes[i*size:(i+1)*size], leafHash)
	}

	lh, batched := th.(LevelHasher)
	for level := 0; level < t.height; level++ {
		var err error
		if batched {
			err = t.buildLevelBatched(lh, level)
		} else {
			err = t.buildLevel(level)
		}
		if err != nil {
			return nil, fmt.Errorf("building level %d: %w", level+1, err)
		}
	}
	return t, nil
}

// buildLevel computes level+1 from level, pairing digests left to right and
// pairing the last digest with itself when the level has odd width.
func (t *MerkleTree) buildLevel(level int) error {
	w := t.widths[level]
	for i := 0; i < w; i += 2 {
		left := t.node(level, i)
		right := left
		if i+1 < w {
			right = t.node(level, i+1)
		}
		parent, err := t.th.HashNode(left, right)
		if err != nil {
			return err
		}
		copy(t.node(level+1, i/2), parent)
	}
	return nil
}

// buildLevelBatched is buildLevel through the LevelHasher fast path. The
// odd-width duplication rule is applied here so HashLevel only ever sees an
// even-length level.
func (t *MerkleTree) buildLevelBatched(lh LevelHasher, level int) error {
	w := t.widths[level]
	children := make([][]byte, 0, w+1)
	for i := 0; i < w; i++ {
		children = append(children, t.node(level, i))
	}
	if w%2 == 1 {
		children = append(children, t.node(level, w-1))
	}

	parents, err := lh.HashLevel(children)
	if err != nil {
		return err
	}
	for i, parent := range parents {
		copy(t.node(level+1, i), parent)
	}
	return nil
}

// node returns a view into the backing buffer; callers must not let it
// escape unmodified to the outside.
func (t *MerkleTree) node(level, i int) []byte {
	off := (t.offsets[level] + i) * t.size
	return t.nodes[off : off+t.size]
}

// Root returns a copy of the root digest.
func (t *MerkleTree) Root() []byte {
	return append([]byte(nil), t.node(t.height, 0)...)
}

// LeafCount returns the number of leaves the tree was built from.
func (t *MerkleTree) LeafCount() int {
	return t.leafCount
}

// Height returns the number of combining levels above the leaves:
// ceil(log2(leaf count)), 0 for a single-leaf tree. Every proof generated
// from the tree has exactly Height entries.
func (t *MerkleTree) Height() int {
	return t.height
}

// Leaf returns a copy of the leaf digest at index i.
func (t *MerkleTree) Leaf(i int) ([]byte, error) {
	if i < 0 || i >= t.leafCount {
		return nil, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, i, t.leafCount)
	}
	return append([]byte(nil), t.node(0, i)...), nil
}

// Nodes returns a copy of the flat node buffer: all levels concatenated
// bottom-up, leaves first, root last.
func (t *MerkleTree) Nodes() []byte {
	return append([]byte(nil), t.nodes...)
}

// Prove generates the inclusion proof for the leaf at the given index. The
// proof records, leaf to root, the sibling digest the current node was
// paired with and the side the current node stood on. When the current node
// was the odd one out and was paired with itself, the recorded sibling is
// the node itself and the side is Left.
//
// The returned proof holds copies of all digests and stays valid after the
// tree is discarded.
func (t *MerkleTree) Prove(index int) (Proof, error) {
	if index < 0 || index >= t.leafCount {
		return Proof{}, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, index, t.leafCount)
	}

	siblings := make([][]byte, 0, t.height)
	sides := make([]Side, 0, t.height)
	j := index
	for level := 0; level < t.height; level++ {
		sib := j ^ 1
		side := Left
		if j%2 == 1 {
			side = Right
		}
		if sib >= t.widths[level] {
			// j was paired with itself at this level.
			sib = j
		}
		siblings = append(siblings, append([]byte(nil), t.node(level, sib)...))
		sides = append(sides, side)
		j >>= 1
	}

	return Proof{
		leafHash:  append([]byte(nil), t.node(0, index)...),
		leafIndex: index,
		siblings:  siblings,
		sides:     sides,
	}, nil
}

// levelWidths returns the number of digests in every level of a tree with n
// leaves, bottom-up. A level of odd width w still yields ceil(w/2) parents
// because its last digest is paired with itself.
func levelWidths(n int) []int {
	widths := []int{n}
	for w := n; w > 1; w = (w + 1) / 2 {
		widths = append(widths, (w+1)/2)
	}
	return widths
}
