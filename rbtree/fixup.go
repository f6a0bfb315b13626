package rbtree

import "github.com/nodalcore/nodalcore/assert"

// fixupInsert restores the red-black properties after a plain BST insert of
// a red leaf z. It walks up the tree recoloring or rotating until the
// violation (a red node with a red parent) is resolved or z reaches the
// root.
func (t *Tree[K, V]) fixupInsert(z *node[K, V]) {
loop:
	for {
		if z.parent == nil {
			break loop
		}

		if z.parent.color == black {
			break loop
		}

		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			uncle := grandparent.right

			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue loop
			}

			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}

			z.parent.color = black
			grandparent.color = red
			t.rotateRight(grandparent)

			break loop
		}

		uncle := grandparent.left

		if isRed(uncle) {
			z.parent.color = black
			uncle.color = black
			grandparent.color = red
			z = grandparent

			continue loop
		}

		if z == z.parent.left {
			z = z.parent
			t.rotateRight(z)
		}

		z.parent.color = black
		grandparent.color = red
		t.rotateLeft(grandparent)

		break loop
	}

	t.root.color = black
}

// fixupDelete restores the red-black properties after a node has been
// spliced out of the tree, leaving x (possibly nil) in its place with
// xParent as x's new parent. x carries an extra "double black" unit that
// this walk pushes up the tree via rotation or recoloring until it can be
// absorbed.
//
// x itself can be nil (the removed node had no children), so the walk is
// driven by xParent rather than by x.parent, which a nil x obviously
// doesn't have.
func (t *Tree[K, V]) fixupDelete(x, xParent *node[K, V]) {
loop:
	for x != t.root && !isRed(x) {
		if xParent == nil {
			break loop
		}

		if x == xParent.left {
			w := xParent.right
			assert.True(w != nil, "rbtree: delete fixup found no sibling")

			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
				assert.True(w != nil, "rbtree: delete fixup found no sibling")
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent

				continue loop
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = xParent.right
				assert.True(w != nil, "rbtree: delete fixup found no sibling")
			}

			w.color = xParent.color
			xParent.color = black
			w.right.color = black
			t.rotateLeft(xParent)
			x = t.root
			xParent = nil

			break loop
		}

		w := xParent.left
		assert.True(w != nil, "rbtree: delete fixup found no sibling")

		if isRed(w) {
			w.color = black
			xParent.color = red
			t.rotateRight(xParent)
			w = xParent.left
			assert.True(w != nil, "rbtree: delete fixup found no sibling")
		}

		if !isRed(w.left) && !isRed(w.right) {
			w.color = red
			x = xParent
			xParent = x.parent

			continue loop
		}

		if !isRed(w.left) {
			w.right.color = black
			w.color = red
			t.rotateLeft(w)
			w = xParent.left
			assert.True(w != nil, "rbtree: delete fixup found no sibling")
		}

		w.color = xParent.color
		xParent.color = black
		w.left.color = black
		t.rotateRight(xParent)
		x = t.root
		xParent = nil

		break loop
	}

	if x != nil {
		x.color = black
	}
}
