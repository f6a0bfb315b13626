// Package rbtree provides an order-statistic red-black tree map: a balanced
// binary search tree that maintains sorted key-value pairs and, because every
// node tracks the size of its own subtree, supports O(log n) positional
// (by-rank) access in addition to the usual keyed operations.
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil children) are considered black
//  4. Red nodes cannot have red children
//  5. Every path from root to leaf passes through the same number of black nodes
//
// Keys must implement [github.com/nodalcore/nodalcore/sortable.Sortable]; the
// tree does not require keys to be hashable or comparable beyond that
// interface. Values may be any type. Positional operations (GetByPosition,
// RemoveAtPosition) additionally rely on a subtree-size count maintained on
// every node and kept correct across insertion, removal, and rotation.
//
// A Tree is not safe for concurrent use; callers must serialize access
// externally. Iterating with [Tree.All] or [Tree.Keys] while mutating the
// tree is undefined behavior.
package rbtree
