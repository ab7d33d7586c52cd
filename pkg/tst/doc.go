// ## Overview
// Package tst implements a persistent (immutable, structurally shared)
// ternary search tree over sequences of ordered symbols.
// Every tree is a cheap value: copying a Tree copies a reference, not nodes,
// and inserting a sequence returns a new Tree while the old one stays valid
// and fully navigable. Subtrees not touched by an insertion are shared by
// reference between the old and the new version, so any number of versions
// can coexist and be read concurrently without synchronization.
//
// ## Example usage:
//
//	empty := tst.New[rune]()
//
//	// Insert never mutates; use the returned tree.
//	dict := empty.Insert([]rune("category"))
//	dict = dict.Insert([]rune("functor"))
//	dict = dict.Insert([]rune("theory"))
//
//	fmt.Println(dict.Exist([]rune("category"))) // Output: true
//	fmt.Println(dict.Exist([]rune("cat")))      // Output: false
//
//	// Longest prefix shared with any stored word.
//	fmt.Println(string(dict.Prefix([]rune("catamorphism")))) // Output: cat
//
//	// Fold is the single traversal primitive; Size is derived from it.
//	fmt.Println(dict.Size())
//
//	// The original tree is untouched.
//	fmt.Println(empty.Empty()) // Output: true
//
// This package uses generics so the tree can store sequences of any ordered
// symbol type, not just runes.
package tst
