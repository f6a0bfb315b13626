package rbtree

// transplant replaces the subtree rooted at u with the subtree rooted at v,
// reattaching v under u's former parent. It does not touch u's own children;
// callers are responsible for relinking whichever of u's children survive.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// recomputeUpward recomputes n's count and then walks up through its
// ancestors doing the same, stopping at the root. It assumes n's own
// children already carry correct counts, which holds for every call site:
// insertion starts from the parent of a freshly attached leaf, deletion starts from the
// node whose child set just changed.
func (t *Tree[K, V]) recomputeUpward(n *node[K, V]) {
	for n != nil {
		n.recount()
		n = n.parent
	}
}

// deleteNode removes z from the tree using the CLRS transplant-based
// splice: if z has at most one child, that child takes z's place directly;
// otherwise z's in-order successor (the minimum of its right subtree) is
// moved into z's place and its own former position is spliced over by its
// right child.
func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOriginalColor := y.color

	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	t.recomputeUpward(xParent)

	if yOriginalColor == black {
		t.fixupDelete(x, xParent)
	}

	t.markDirty()
}
