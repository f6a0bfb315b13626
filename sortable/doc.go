// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in ordered data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// These types are designed to work as keys of
// [github.com/nodalcore/nodalcore/rbtree.Tree], the order-statistic red-black
// tree map in this module.
//
// The Sortable interface extends [github.com/nodalcore/nodalcore/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need a tree keyed by sortable values:
//
//	tree := rbtree.New[sortable.Int, string]()
//	tree.Insert(sortable.Int(42), "answer")
//	tree.Insert(sortable.Int(10), "ten")
//	tree.Insert(sortable.Int(25), "quarter")
//
//	// Keys are visited in sorted order: 10, 25, 42
//	for key, value := range tree.All() {
//	    fmt.Println(int(key), value)
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. [github.com/nodalcore/nodalcore/rbtree.Tree] itself is not
// safe for concurrent use and requires external synchronization.
package sortable
