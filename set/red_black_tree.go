package set

import (
	"iter"

	"github.com/amp-labs/orderedfloat/sortable"
)

// color represents the color of a node in the red-black tree.
// Nil children count as black.
type color bool

const black, red color = true, false

// String returns a human-readable representation of the node color.
func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

// rbtNode is a single node in the red-black tree.
type rbtNode[K sortable.Sortable[K]] struct {
	key    K
	color  color
	left   *rbtNode[K]
	right  *rbtNode[K]
	parent *rbtNode[K]
}

// redBlackTreeSet is a SortedSet backed by a red-black tree.
//
// The tree maintains the usual properties:
//  1. Every node is either red or black.
//  2. The root is black.
//  3. A red node has no red children.
//  4. Every path from a node to its nil descendants has the same number of black nodes.
//
// Keys are placed by LessThan and matched by Equals, so for OrderedFloat keys
// every NaN lands in one slot, after +Inf, and +0.0/-0.0 share another.
// Add, Remove, Contains, Min and Max are O(log n); Size is O(1).
//
// The algorithms follow "Introduction to Algorithms" (CLRS), chapter 13,
// with nil leaves instead of a sentinel node.
type redBlackTreeSet[K sortable.Sortable[K]] struct {
	root *rbtNode[K]
	size int
}

// NewRedBlackTreeSet creates an empty ordered set.
//
//	floats := set.NewRedBlackTreeSet[orderedfloat.Float64]()
//	_ = floats.Add(orderedfloat.Float64Of(math.NaN()))
//	_ = floats.Add(orderedfloat.Float64Of(-1))
//	// Iterating yields: -1, NaN
func NewRedBlackTreeSet[K sortable.Sortable[K]]() SortedSet[K] {
	return &redBlackTreeSet[K]{}
}

// AddAll adds every element. It never returns an error.
func (r *redBlackTreeSet[K]) AddAll(elements ...K) error {
	for _, element := range elements {
		if err := r.Add(element); err != nil {
			return err
		}
	}

	return nil
}

// Add inserts element unless an equal key is present, in which case the
// existing key is kept.
func (r *redBlackTreeSet[K]) Add(element K) error {
	var parent *rbtNode[K]

	for node := r.root; node != nil; {
		parent = node

		switch {
		case element.Equals(node.key):
			return nil
		case element.LessThan(node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	z := &rbtNode[K]{key: element, color: red, parent: parent}

	switch {
	case parent == nil:
		r.root = z
	case element.LessThan(parent.key):
		parent.left = z
	default:
		parent.right = z
	}

	r.size++
	r.fixupPut(z)

	return nil
}

// Remove deletes the key equal to element, if any.
//
// CLRS tracks x's parent through the sentinel; with nil leaves x may be nil,
// so xParent is carried explicitly into fixupDelete.
func (r *redBlackTreeSet[K]) Remove(element K) error {
	z := r.find(element)
	if z == nil {
		return nil
	}

	y := z
	yOriginalColor := y.color

	var x, xParent *rbtNode[K]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		r.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		r.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			r.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		r.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	r.size--

	if yOriginalColor == black {
		r.fixupDelete(x, xParent)
	}

	return nil
}

// Clear drops every node.
func (r *redBlackTreeSet[K]) Clear() {
	r.root = nil
	r.size = 0
}

// Contains reports whether a key equal to element is present. It never
// returns an error.
func (r *redBlackTreeSet[K]) Contains(element K) (bool, error) {
	return r.find(element) != nil, nil
}

func (r *redBlackTreeSet[K]) Size() int {
	return r.size
}

// Entries returns the keys in ascending order.
func (r *redBlackTreeSet[K]) Entries() []K {
	entries := make([]K, 0, r.size)
	for key := range r.Seq() {
		entries = append(entries, key)
	}

	return entries
}

// Seq yields the keys in ascending order (in-order traversal).
func (r *redBlackTreeSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(r.root, yield)
	}
}

func inOrder[K sortable.Sortable[K]](node *rbtNode[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}

	return inOrder(node.left, yield) && yield(node.key) && inOrder(node.right, yield)
}

func (r *redBlackTreeSet[K]) Min() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	return minimum(r.root).key, true
}

func (r *redBlackTreeSet[K]) Max() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	return maximum(r.root).key, true
}

// Union returns a new tree holding the keys of both sets. When both hold
// equal keys, the receiver's key is kept.
func (r *redBlackTreeSet[K]) Union(other Set[K]) (Set[K], error) {
	out := &redBlackTreeSet[K]{}

	for key := range r.Seq() {
		_ = out.Add(key)
	}

	for key := range other.Seq() {
		_ = out.Add(key)
	}

	return out, nil
}

// Intersection returns a new tree holding the receiver's keys that are also
// in other. Errors from other.Contains are returned as is.
func (r *redBlackTreeSet[K]) Intersection(other Set[K]) (Set[K], error) {
	out := &redBlackTreeSet[K]{}

	for key := range r.Seq() {
		contains, err := other.Contains(key)
		if err != nil {
			return nil, err
		}

		if contains {
			_ = out.Add(key)
		}
	}

	return out, nil
}

func (r *redBlackTreeSet[K]) find(key K) *rbtNode[K] {
	node := r.root

	for node != nil {
		switch {
		case key.Equals(node.key):
			return node
		case key.LessThan(node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// rotateLeft performs a left rotation around node x.
//
//	  x                 y
//	 / \               / \
//	a   y      =>     x   c
//	   / \           / \
//	  b   c         a   b
func (r *redBlackTreeSet[K]) rotateLeft(x *rbtNode[K]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	r.replaceChild(x, y)

	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft.
func (r *redBlackTreeSet[K]) rotateRight(y *rbtNode[K]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	r.replaceChild(y, x)

	x.right = y
	y.parent = x
}

// replaceChild hangs v where u was under u's parent. u's own links are untouched.
func (r *redBlackTreeSet[K]) replaceChild(u, v *rbtNode[K]) {
	v.parent = u.parent

	switch {
	case u.parent == nil:
		r.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
}

// transplant replaces the subtree rooted at u with the one rooted at v, which may be nil.
func (r *redBlackTreeSet[K]) transplant(u, v *rbtNode[K]) {
	switch {
	case u.parent == nil:
		r.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut restores the red-black properties after inserting the red node z.
//
//	Case 1: uncle is red: recolor parent, uncle and grandparent, move up
//	Case 2: uncle is black, z is an inner child: rotate into case 3
//	Case 3: uncle is black, z is an outer child: rotate grandparent and recolor
func (r *redBlackTreeSet[K]) fixupPut(z *rbtNode[K]) {
	for isRed(z.parent) {
		// A red parent is never the root, so the grandparent exists.
		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			uncle := grandparent.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.right {
				z = z.parent
				r.rotateLeft(z)
			}

			z.parent.color = black
			z.parent.parent.color = red
			r.rotateRight(z.parent.parent)
		} else {
			uncle := grandparent.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.left {
				z = z.parent
				r.rotateRight(z)
			}

			z.parent.color = black
			z.parent.parent.color = red
			r.rotateLeft(z.parent.parent)
		}
	}

	r.root.color = black
}

// fixupDelete pushes the extra black carried by x (child of xParent) up the
// tree until it can be absorbed.
//
//	Case 1: sibling w is red: rotate so the sibling becomes black
//	Case 2: w is black with two black children: recolor w, move up
//	Case 3: w is black, far child black: rotate w into case 4
//	Case 4: w is black, far child red: rotate parent, recolor, done
//
// When x is black the removed node had black height >= 1 on x's side, so the
// sibling w is never nil.
//
//nolint:dupl // symmetric cases
func (r *redBlackTreeSet[K]) fixupDelete(x, xParent *rbtNode[K]) {
	for x != r.root && !isRed(x) {
		if x == xParent.left {
			w := xParent.right
			if isRed(w) {
				w.color = black
				xParent.color = red
				r.rotateLeft(xParent)
				w = xParent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				r.rotateRight(w)
				w = xParent.right
			}

			w.color = xParent.color
			xParent.color = black
			w.right.color = black
			r.rotateLeft(xParent)
			x = r.root
		} else {
			w := xParent.left
			if isRed(w) {
				w.color = black
				xParent.color = red
				r.rotateRight(xParent)
				w = xParent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = xParent
				xParent = x.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				r.rotateLeft(w)
				w = xParent.left
			}

			w.color = xParent.color
			xParent.color = black
			w.left.color = black
			r.rotateRight(xParent)
			x = r.root
		}
	}

	if x != nil {
		x.color = black
	}
}

func isRed[K sortable.Sortable[K]](n *rbtNode[K]) bool {
	return n != nil && n.color == red
}

// minimum returns the leftmost node of the subtree rooted at x.
func minimum[K sortable.Sortable[K]](x *rbtNode[K]) *rbtNode[K] {
	for x.left != nil {
		x = x.left
	}

	return x
}

// maximum returns the rightmost node of the subtree rooted at x.
func maximum[K sortable.Sortable[K]](x *rbtNode[K]) *rbtNode[K] {
	for x.right != nil {
		x = x.right
	}

	return x
}
