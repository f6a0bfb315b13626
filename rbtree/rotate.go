package rbtree

import "github.com/nodalcore/nodalcore/assert"

// rotateLeft performs the standard CLRS left rotation around x, promoting
// x's right child into x's former position:
//
//	    x                 y
//	   / \               / \
//	  a   y      ->      x   c
//	     / \            / \
//	    b   c          a   b
//
// Both affected nodes' subtree counts are recomputed afterward: x first
// (its children are now final), then y (whose left child is now x).
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	assert.True(y != nil, "rbtree: rotateLeft requested with no right child")
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	x.recount()
	y.recount()
}

// rotateRight is the mirror image of rotateLeft, rotating around y and
// promoting y's left child into y's former position.
func (t *Tree[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	assert.True(x != nil, "rbtree: rotateRight requested with no left child")
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}

	x.right = y
	y.parent = x

	y.recount()
	x.recount()
}
