package rbtree

import (
	"iter"

	"github.com/nodalcore/nodalcore/assert"
	"github.com/nodalcore/nodalcore/sortable"
	"github.com/nodalcore/nodalcore/zero"
)

// Tree is an order-statistic red-black tree map. The zero value is not
// usable; construct one with [New].
type Tree[K sortable.Sortable[K], V any] struct {
	root *node[K, V]

	hashDirty bool
	hashCache string
}

// New constructs an empty Tree.
func New[K sortable.Sortable[K], V any](opts ...Option) *Tree[K, V] {
	_ = newConfig(opts...)

	return &Tree[K, V]{hashDirty: true}
}

// Count returns the number of entries currently stored in the tree.
func (t *Tree[K, V]) Count() int {
	return subtreeCount(t.root)
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree[K, V]) markDirty() {
	t.hashDirty = true
}

// getNode walks the tree looking for key, returning the node holding it (or
// nil), its would-be parent, and the direction from that parent the node
// would hang off of (used by Insert to splice in a new node without a
// second descent).
func (t *Tree[K, V]) getNode(key K) (n, parent *node[K, V], dir direction) {
	dir = nodir
	n = t.root

	for n != nil {
		switch {
		case key.Equals(n.key):
			return n, parent, dir
		case key.LessThan(n.key):
			parent, dir = n, left
			n = n.left
		default:
			parent, dir = n, right
			n = n.right
		}
	}

	return nil, parent, dir
}

// Insert stores value under key, replacing any existing value for that key.
// It reports whether a new entry was created (false means an existing key's
// value was replaced).
func (t *Tree[K, V]) Insert(key K, value V) bool {
	existing, parent, dir := t.getNode(key)
	if existing != nil {
		existing.value = value
		t.markDirty()

		return false
	}

	n := &node[K, V]{key: key, value: value, color: red, count: 1, parent: parent}

	switch {
	case parent == nil:
		n.color = black
		t.root = n
	case dir == left:
		parent.left = n
	default:
		parent.right = n
	}

	t.recomputeUpward(parent)
	t.fixupInsert(n)
	t.markDirty()

	return true
}

// GetByKey returns the value stored under key, if any.
func (t *Tree[K, V]) GetByKey(key K) (V, bool) {
	n, _, _ := t.getNode(key)
	if n == nil {
		return zero.Value[V](), false
	}

	return n.value, true
}

// RemoveByKey deletes the entry stored under key, returning its value.
func (t *Tree[K, V]) RemoveByKey(key K) (V, bool) {
	n, _, _ := t.getNode(key)
	if n == nil {
		return zero.Value[V](), false
	}

	value := n.value
	t.deleteNode(n)

	return value, true
}

// GetByPosition returns the key and value at the given zero-based in-order
// position. It panics via assertion if position is out of range.
func (t *Tree[K, V]) GetByPosition(position int) (K, V) {
	n := t.locateByPosition(position)
	assert.True(n != nil, "rbtree: position out of range")

	return n.key, n.value
}

// RemoveAtPosition deletes the entry at the given zero-based in-order
// position and returns its key and value.
func (t *Tree[K, V]) RemoveAtPosition(position int) (K, V) {
	n := t.locateByPosition(position)
	assert.True(n != nil, "rbtree: position out of range")

	key, value := n.key, n.value
	t.deleteNode(n)

	return key, value
}

// locateByPosition descends from the root comparing the requested index
// against the size of the current node's left subtree, which is exactly
// that node's rank within the subtree currently under consideration.
func (t *Tree[K, V]) locateByPosition(position int) *node[K, V] {
	n := t.root
	i := position

	for n != nil {
		rank := subtreeCount(n.left)

		switch {
		case i < rank:
			n = n.left
		case i > rank:
			i -= rank + 1
			n = n.right
		default:
			return n
		}
	}

	return nil
}

func minimum[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	assert.True(n != nil, "rbtree: minimum of empty subtree")

	for n.left != nil {
		n = n.left
	}

	return n
}

func maximum[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	assert.True(n != nil, "rbtree: maximum of empty subtree")

	for n.right != nil {
		n = n.right
	}

	return n
}

// First returns the lowest key currently stored, if any.
func (t *Tree[K, V]) First() (K, V, bool) {
	if t.root == nil {
		return zero.Value[K](), zero.Value[V](), false
	}

	n := minimum(t.root)

	return n.key, n.value, true
}

// Last returns the highest key currently stored, if any.
func (t *Tree[K, V]) Last() (K, V, bool) {
	if t.root == nil {
		return zero.Value[K](), zero.Value[V](), false
	}

	n := maximum(t.root)

	return n.key, n.value, true
}

// PopFirst removes and returns the lowest key currently stored, if any.
func (t *Tree[K, V]) PopFirst() (K, V, bool) {
	if t.root == nil {
		return zero.Value[K](), zero.Value[V](), false
	}

	n := minimum(t.root)
	key, value := n.key, n.value
	t.deleteNode(n)

	return key, value, true
}

// PopLast removes and returns the highest key currently stored, if any.
func (t *Tree[K, V]) PopLast() (K, V, bool) {
	if t.root == nil {
		return zero.Value[K](), zero.Value[V](), false
	}

	n := maximum(t.root)
	key, value := n.key, n.value
	t.deleteNode(n)

	return key, value, true
}

// All returns an iterator over the tree's entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(n *node[K, V]) bool
		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}
			if !walk(n.left) {
				return false
			}
			if !yield(n.key, n.value) {
				return false
			}

			return walk(n.right)
		}
		walk(t.root)
	}
}

// Keys returns an iterator over the tree's keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// ValuesView exposes the tree's values in ascending-key order as a
// positionally addressable, mutable-in-place sequence: ValueAt/SetValueAt
// operate by in-order position without touching the tree's keys.
type ValuesView[K sortable.Sortable[K], V any] struct {
	tree *Tree[K, V]
}

// Values returns a view over the tree's values addressable by position.
func (t *Tree[K, V]) Values() ValuesView[K, V] {
	return ValuesView[K, V]{tree: t}
}

// All iterates the values in ascending-key order.
func (v ValuesView[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range v.tree.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// ValueAt returns the value at the given zero-based in-order position.
func (v ValuesView[K, V]) ValueAt(position int) V {
	_, val := v.tree.GetByPosition(position)

	return val
}

// SetValueAt replaces the value at the given zero-based in-order position
// without altering the tree's shape or key ordering.
func (v ValuesView[K, V]) SetValueAt(position int, value V) {
	n := v.tree.locateByPosition(position)
	assert.True(n != nil, "rbtree: position out of range")

	n.value = value
	v.tree.markDirty()
}
