package tst

import (
	"cmp"
	"errors"
)

// ErrEmptyTree is returned by the structural accessors (Value, Word, Left,
// Center, Right) when called on an empty tree.
var ErrEmptyTree = errors.New("ternary search tree is empty")

// node is a single immutable vertex of the tree. No field is ever written
// after construction, so nodes can be shared freely between tree versions.
type node[C cmp.Ordered] struct {
	value  C
	word   bool
	left   *node[C]
	center *node[C]
	right  *node[C]
}

// Tree is a handle to a shared, immutable node. The zero value is the empty
// tree and is valid for every operation.
type Tree[C cmp.Ordered] struct {
	root *node[C]
}

// New returns the empty tree.
func New[C cmp.Ordered]() Tree[C] {
	return Tree[C]{}
}

// From builds a tree holding exactly the sequence seq: each symbol becomes a
// center-linked node and the node of the last symbol carries the word mark.
// An empty sequence gives the empty tree.
func From[C cmp.Ordered](seq []C) Tree[C] {
	if len(seq) == 0 {
		return Tree[C]{}
	}
	return Tree[C]{&node[C]{
		value:  seq[0],
		word:   len(seq) == 1,
		center: From(seq[1:]).root,
	}}
}

// FromString builds a rune tree holding exactly the word s.
func FromString(s string) Tree[rune] {
	return From([]rune(s))
}

// Insert returns a new tree containing every sequence of t plus seq.
// t itself is never modified. Only the nodes on the descent path are
// reallocated; every subtree off that path is shared by reference with t.
// Inserting the empty sequence is a no-op and returns t unchanged.
func (t Tree[C]) Insert(seq []C) Tree[C] {
	if len(seq) == 0 {
		return t
	}
	if t.Empty() {
		return From(seq)
	}
	n := t.root
	switch s := seq[0]; {
	case s > n.value:
		return Tree[C]{&node[C]{
			value:  n.value,
			word:   n.word,
			left:   n.left,
			center: n.center,
			right:  Tree[C]{n.right}.Insert(seq).root,
		}}
	case s < n.value:
		return Tree[C]{&node[C]{
			value:  n.value,
			word:   n.word,
			left:   Tree[C]{n.left}.Insert(seq).root,
			center: n.center,
			right:  n.right,
		}}
	default:
		// One remaining symbol means the word ends at this node.
		return Tree[C]{&node[C]{
			value:  n.value,
			word:   n.word || len(seq) == 1,
			left:   n.left,
			center: Tree[C]{n.center}.Insert(seq[1:]).root,
			right:  n.right,
		}}
	}
}

// Empty reports whether the tree has no root.
func (t Tree[C]) Empty() bool {
	return t.root == nil
}

// Value returns the symbol at the root, or ErrEmptyTree on the empty tree.
func (t Tree[C]) Value() (C, error) {
	if t.Empty() {
		var zero C
		return zero, ErrEmptyTree
	}
	return t.root.value, nil
}

// Word returns the word mark at the root, or ErrEmptyTree on the empty tree.
func (t Tree[C]) Word() (bool, error) {
	if t.Empty() {
		return false, ErrEmptyTree
	}
	return t.root.word, nil
}

// Left returns the left subtree, or ErrEmptyTree on the empty tree.
func (t Tree[C]) Left() (Tree[C], error) {
	if t.Empty() {
		return Tree[C]{}, ErrEmptyTree
	}
	return Tree[C]{t.root.left}, nil
}

// Center returns the center subtree, or ErrEmptyTree on the empty tree.
func (t Tree[C]) Center() (Tree[C], error) {
	if t.Empty() {
		return Tree[C]{}, ErrEmptyTree
	}
	return Tree[C]{t.root.center}, nil
}

// Right returns the right subtree, or ErrEmptyTree on the empty tree.
func (t Tree[C]) Right() (Tree[C], error) {
	if t.Empty() {
		return Tree[C]{}, ErrEmptyTree
	}
	return Tree[C]{t.root.right}, nil
}

// prefixSearch descends from t guided by seq and returns the number of
// symbols matched plus the last non-empty tree visited (the parent at the
// point the descent stopped). Left/right steps do not consume a symbol;
// only a center step does.
func (t Tree[C]) prefixSearch(seq []C, matched int, parent Tree[C]) (int, Tree[C]) {
	if t.Empty() || len(seq) == 0 {
		return matched, parent
	}
	switch s := seq[0]; {
	case t.root.value > s:
		return Tree[C]{t.root.left}.prefixSearch(seq, matched, t)
	case t.root.value < s:
		return Tree[C]{t.root.right}.prefixSearch(seq, matched, t)
	default:
		return Tree[C]{t.root.center}.prefixSearch(seq[1:], matched+1, t)
	}
}

// Exist reports whether the full sequence seq is stored in the tree as a
// word. It is safe on the empty tree.
func (t Tree[C]) Exist(seq []C) bool {
	matched, last := t.prefixSearch(seq, 0, Tree[C]{})
	return matched == len(seq) && !last.Empty() && last.root.word
}

// Prefix returns the longest prefix of seq shared with any sequence stored
// in the tree, word boundary or not. It is safe on the empty tree.
func (t Tree[C]) Prefix(seq []C) []C {
	matched, _ := t.prefixSearch(seq, 0, Tree[C]{})
	return seq[:matched]
}

// Fold reduces the tree into a single accumulated value. The children of
// every non-empty tree are folded in left, center, right order, then combine
// is applied to the accumulator and the current tree, so every node is
// visited exactly once and combine sees a node only after its three subtrees
// are fully reduced. The empty tree yields acc unchanged.
//
// Fold is a free function because Go methods cannot introduce the extra
// accumulator type parameter.
func Fold[C cmp.Ordered, A any](t Tree[C], acc A, combine func(A, Tree[C]) A) A {
	if t.Empty() {
		return acc
	}
	children := []Tree[C]{{t.root.left}, {t.root.center}, {t.root.right}}
	for _, child := range children {
		acc = Fold(child, acc, combine)
	}
	return combine(acc, t)
}

// Size returns the number of nodes in the tree, counted via Fold.
func (t Tree[C]) Size() int {
	return Fold(t, 0, func(acc int, _ Tree[C]) int {
		return acc + 1
	})
}

// Words returns every stored sequence in symbol order.
func Words[C cmp.Ordered](t Tree[C]) [][]C {
	var words [][]C
	var walk func(n *node[C], prefix []C)
	walk = func(n *node[C], prefix []C) {
		if n == nil {
			return
		}
		walk(n.left, prefix)
		withValue := append(append([]C(nil), prefix...), n.value)
		if n.word {
			words = append(words, withValue)
		}
		walk(n.center, withValue)
		walk(n.right, prefix)
	}
	walk(t.root, nil)
	return words
}

// ExistString reports whether the word s is stored in a rune tree.
func ExistString(t Tree[rune], s string) bool {
	return t.Exist([]rune(s))
}

// PrefixString returns the longest prefix of s shared with any word stored
// in a rune tree.
func PrefixString(t Tree[rune], s string) string {
	return string(t.Prefix([]rune(s)))
}
