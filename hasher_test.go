package merkle

import (
	"bytes"
	"crypto"
	"crypto/sha256"
	_ "crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sum computes the hash of the concatenation of data under the given
// algorithm.
func sum(hash crypto.Hash, data ...[]byte) []byte {
	h := hash.New()
	for _, d := range data {
		//nolint:errcheck
		h.Write(d)
	}
	return h.Sum(nil)
}

func TestHasher_HashLeaf(t *testing.T) {
	defaultRawData := []byte("a blockchain is a chain of blocks")

	tests := []struct {
		name string
		data []byte
	}{
		{"empty leaf", []byte{}},
		{"one byte leaf", []byte{0x01}},
		{"leaf with data", defaultRawData},
		{"leaf the size of two digests", bytes.Repeat([]byte{0xab}, 2*sha256.Size)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTreeHasher(sha256.New())
			got, err := n.HashLeaf(tt.data)
			require.NoError(t, err)
			assert.Equal(t, sum(crypto.SHA256, []byte{LeafPrefix}, tt.data), got)
		})
	}
}

func TestHasher_HashNode(t *testing.T) {
	left := sum(crypto.SHA256, []byte("left"))
	right := sum(crypto.SHA256, []byte("right"))

	n := NewTreeHasher(sha256.New())
	got, err := n.HashNode(left, right)
	require.NoError(t, err)
	assert.Equal(t, sum(crypto.SHA256, []byte{NodePrefix}, left, right), got)

	// argument order matters
	swapped, err := n.HashNode(right, left)
	require.NoError(t, err)
	assert.NotEqual(t, got, swapped)
}

func TestHasher_HashNode_InvalidChildren(t *testing.T) {
	valid := sum(crypto.SHA256, []byte("node"))

	tests := []struct {
		name        string
		left, right []byte
	}{
		{"left too short", valid[:16], valid},
		{"right too short", valid, valid[:31]},
		{"left too long", append(append([]byte(nil), valid...), 0x00), valid},
		{"empty right", valid, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTreeHasher(sha256.New())
			_, err := n.HashNode(tt.left, tt.right)
			assert.ErrorIs(t, err, ErrInvalidNodeLen)
		})
	}
}

func TestHasher_DigestSizeFollowsBase(t *testing.T) {
	n := NewTreeHasher(crypto.SHA512.New())
	require.Equal(t, crypto.SHA512.Size(), n.Size())

	leafHash, err := n.HashLeaf([]byte("data"))
	require.NoError(t, err)
	require.Len(t, leafHash, crypto.SHA512.Size())

	// digests of the SHA-256 size are rejected as children
	_, err = n.HashNode(sum(crypto.SHA256, []byte("l")), sum(crypto.SHA256, []byte("r")))
	assert.ErrorIs(t, err, ErrInvalidNodeLen)

	nodeHash, err := n.HashNode(
		sum(crypto.SHA512, []byte("l")),
		sum(crypto.SHA512, []byte("r")),
	)
	require.NoError(t, err)
	assert.Equal(t, sum(crypto.SHA512,
		[]byte{NodePrefix},
		sum(crypto.SHA512, []byte("l")),
		sum(crypto.SHA512, []byte("r")),
	), nodeHash)
}

func TestHasher_HashInterface(t *testing.T) {
	data := []byte("some leaf data")
	left := sum(crypto.SHA256, []byte("left"))
	right := sum(crypto.SHA256, []byte("right"))

	n := NewTreeHasher(sha256.New())
	_, err := n.Write(data)
	require.NoError(t, err)
	assert.Equal(t, n.MustHashLeaf(data), n.Sum(nil))

	n.Reset()
	_, err = n.Write(append(append([]byte(nil), left...), right...))
	require.NoError(t, err)
	wantNode, err := n.HashNode(left, right)
	require.NoError(t, err)
	assert.Equal(t, wantNode, n.Sum(nil))

	n.Reset()
	_, err = n.Write(data)
	require.NoError(t, err)
	assert.Panics(t, func() {
		//nolint:errcheck
		n.Write(data)
	}, "second Write without Reset should panic")
}

func TestSha256BatchHasher_HashLeaf(t *testing.T) {
	b := NewSha256BatchHasher()
	require.Equal(t, sha256.Size, b.Size())

	data := []byte("batched leaf")
	got, err := b.HashLeaf(data)
	require.NoError(t, err)
	// leaf preimages are 33 bytes, node preimages 64; the inner hash keeps
	// the two domains disjoint for data of any length
	assert.Equal(t, sum(crypto.SHA256, []byte{LeafPrefix}, sum(crypto.SHA256, data)), got)
}

func TestSha256BatchHasher_HashNode(t *testing.T) {
	b := NewSha256BatchHasher()
	left := sum(crypto.SHA256, []byte("left"))
	right := sum(crypto.SHA256, []byte("right"))

	got, err := b.HashNode(left, right)
	require.NoError(t, err)
	// no node prefix in this scheme; leaves carry the only domain tag
	assert.Equal(t, sum(crypto.SHA256, left, right), got)

	_, err = b.HashNode(left[:8], right)
	assert.ErrorIs(t, err, ErrInvalidNodeLen)
	_, err = b.HashNode(left, nil)
	assert.ErrorIs(t, err, ErrInvalidNodeLen)
}

func TestSha256BatchHasher_HashLevel(t *testing.T) {
	b := NewSha256BatchHasher()

	level := make([][]byte, 8)
	for i := range level {
		level[i] = sum(crypto.SHA256, []byte{byte(i)})
	}

	parents, err := b.HashLevel(level)
	require.NoError(t, err)
	require.Len(t, parents, 4)
	for i, parent := range parents {
		want, err := b.HashNode(level[2*i], level[2*i+1])
		require.NoError(t, err)
		assert.Equal(t, want, parent, "parent %d", i)
	}
}

func TestSha256BatchHasher_HashLevel_Invalid(t *testing.T) {
	b := NewSha256BatchHasher()

	_, err := b.HashLevel([][]byte{sum(crypto.SHA256, []byte("lonely"))})
	assert.ErrorIs(t, err, ErrInvalidNodeLen, "odd level length")

	_, err = b.HashLevel([][]byte{
		sum(crypto.SHA256, []byte("ok")),
		[]byte("not a digest"),
	})
	assert.ErrorIs(t, err, ErrInvalidNodeLen, "wrong digest size")
}
