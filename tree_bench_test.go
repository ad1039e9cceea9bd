package merkle_test

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/celestiaorg/merkle"
)

func benchItems(n int) [][]byte {
	items := make([][]byte, n)
	for i := range items {
		items[i] = fmt.Appendf(nil, "item_%d_some_payload_bytes", i)
	}
	return items
}

func benchmarkFromItems(b *testing.B, th merkle.TreeHasher, n int) {
	items := benchItems(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := merkle.FromItems(th, items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromItems(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("default/%d", n), func(b *testing.B) {
			benchmarkFromItems(b, merkle.NewTreeHasher(sha256.New()), n)
		})
		b.Run(fmt.Sprintf("batched/%d", n), func(b *testing.B) {
			benchmarkFromItems(b, merkle.NewSha256BatchHasher(), n)
		})
	}
}

func BenchmarkProve(b *testing.B) {
	th := merkle.NewTreeHasher(sha256.New())
	tree, err := merkle.FromItems(th, benchItems(16384))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Prove(i % tree.LeafCount()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	th := merkle.NewTreeHasher(sha256.New())
	tree, err := merkle.FromItems(th, benchItems(16384))
	if err != nil {
		b.Fatal(err)
	}
	root := tree.Root()
	proof, err := tree.Prove(16383)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !proof.Verify(th, root) {
			b.Fatal("proof failed to verify")
		}
	}
}
