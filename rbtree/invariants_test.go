package rbtree

import (
	"testing"

	"github.com/nodalcore/nodalcore/sortable"
)

// checkInvariants walks the whole tree and reports the first red-black or
// order-statistic invariant it finds broken. It is test-only scaffolding,
// not part of the public API.
func checkInvariants[K sortable.Sortable[K], V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()

	if tr.root != nil && tr.root.color != black {
		t.Fatalf("root is not black")
	}

	blackHeight(t, tr.root)
	checkCounts(t, tr.root)
	checkParentLinks(t, tr.root, nil)
}

func blackHeight[K sortable.Sortable[K], V any](t *testing.T, n *node[K, V]) int {
	t.Helper()

	if n == nil {
		return 1
	}

	if n.color == red {
		if isRed(n.left) || isRed(n.right) {
			t.Fatalf("red node %v has a red child", n.key)
		}
	}

	left := blackHeight(t, n.left)
	right := blackHeight(t, n.right)

	if left != right {
		t.Fatalf("black height mismatch at node %v: left=%d right=%d", n.key, left, right)
	}

	if n.color == black {
		return left + 1
	}

	return left
}

func checkCounts[K sortable.Sortable[K], V any](t *testing.T, n *node[K, V]) {
	t.Helper()

	if n == nil {
		return
	}

	checkCounts(t, n.left)
	checkCounts(t, n.right)

	want := 1 + subtreeCount(n.left) + subtreeCount(n.right)
	if n.count != want {
		t.Fatalf("node %v has count %d, want %d", n.key, n.count, want)
	}
}

func checkParentLinks[K sortable.Sortable[K], V any](t *testing.T, n, parent *node[K, V]) {
	t.Helper()

	if n == nil {
		return
	}

	if n.parent != parent {
		t.Fatalf("node %v has wrong parent link", n.key)
	}

	checkParentLinks(t, n.left, n)
	checkParentLinks(t, n.right, n)
}
