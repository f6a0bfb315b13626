package rbtree

import (
	"hash"

	"github.com/nodalcore/nodalcore/hashing"
	"github.com/nodalcore/nodalcore/sortable"
)

// hashableKey is the constraint Hash requires of a tree's key type: ordered
// (so the tree itself works) and hashable (so it can contribute to a digest).
type hashableKey[K any] interface {
	sortable.Sortable[K]
	hashing.Hashable
}

// treeHashable adapts an in-order traversal of a Tree into a single
// hashing.Hashable, folding every key and value into the digest in sorted
// order so that two trees with identical contents hash identically
// regardless of insertion history.
type treeHashable[K hashableKey[K], V hashing.Hashable] struct {
	tree *Tree[K, V]
}

func (w treeHashable[K, V]) UpdateHash(h hash.Hash) error {
	for k, v := range w.tree.All() {
		if err := k.UpdateHash(h); err != nil {
			return err
		}

		if err := v.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}

// Hash computes a digest of a tree's full contents using fn (for example
// hashing.Sha256 or hashing.Xxh3), caching the result until the tree is next
// mutated. Hash requires stricter type constraints than Tree itself — both
// key and value types must be hashing.Hashable — so it is a free function
// rather than a method, the same shape as the rest of the hashing package's
// generic helpers.
func Hash[K hashableKey[K], V hashing.Hashable](t *Tree[K, V], fn hashing.HashFunc) (string, error) {
	if fn == nil {
		fn = hashing.Sha256
	}

	if !t.hashDirty {
		return t.hashCache, nil
	}

	sum, err := fn(treeHashable[K, V]{tree: t})
	if err != nil {
		return "", err
	}

	t.hashCache = sum
	t.hashDirty = false

	return sum, nil
}
