// Package value implements the JSON value tree: a tagged union over the
// six JSON kinds with pluggable container backings and an index protocol
// for both read-only lookup and create-on-write mutation.
//
// # Ownership
//
// Values are owned by their parent: arrays own their elements and objects
// own their key/value pairs. [Array.PushBack] and [Object.Insert] transfer
// ownership of the inserted *Value; after insertion the caller MUST NOT
// place the same *Value into another container. Use [Value.Clone] to share
// a subtree between trees. The tree is strictly tree-shaped: no sharing,
// no cycles.
//
// # Container backings
//
// Exactly one Array backing and one Object backing is compiled into a
// build, selected with build tags:
//
//   - vec_array (default) / list_array for arrays
//   - vec_object (default) / list_object / btree_object for objects
//
// The behavioural contract is identical across backings; only complexity
// differs. The list backings box every element, so element addresses are
// stable across insertion and removal. The btree_object backing iterates
// in sorted key order rather than insertion order.
//
// # Concurrency
//
// A Value may be shared for concurrent read-only use provided no
// goroutine mutates it. Concurrent mutation is the caller's
// responsibility; nothing in this package serialises access.
package value
