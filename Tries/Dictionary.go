package Tries

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// A node in the trie. next maps a rune to the child node; it is nil until the node gets
// its first child. end tells whether a key ends at this node, in which case v is its value.
type node[V any] struct {
	next *treemap.Map
	v    V
	end  bool
}

func (n *node[V]) child(r rune) *node[V] {
	if n.next != nil {
		if c, ok := n.next.Get(r); ok {
			return c.(*node[V])
		}
	}
	return nil
}

func (n *node[V]) addChild(r rune) *node[V] {
	if n.next == nil {
		n.next = treemap.NewWith(utils.RuneComparator)
	}
	c := new(node[V])
	n.next.Put(r, c)
	return c
}

func (n *node[V]) leaf() bool {
	return n.next == nil || n.next.Empty()
}

// walk the subtree rooting at n in key order. path holds the runes leading to n.
// Returns false if f stopped the walk.
func (n *node[V]) walk(path []rune, f func(string, V) bool) bool {
	if n.end && !f(string(path), n.v) {
		return false
	}
	if n.next == nil {
		return true
	}
	for it := n.next.Iterator(); it.Next(); {
		if !it.Value().(*node[V]).walk(append(path, it.Key().(rune)), f) {
			return false
		}
	}
	return true
}

// Entry is a key in a Dictionary with its value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Dictionary maps non empty strings to values, sharing the storage of common prefixes.
// Keys are enumerated in the order of their runes. The zero value is an empty
// Dictionary ready to use.
type Dictionary[V any] struct {
	root node[V]
	n    int
}

func (u *Dictionary[V]) find(key string) *node[V] {
	cur := &u.root
	for _, r := range key {
		if cur = cur.child(r); cur == nil {
			return nil
		}
	}
	return cur
}

// Put v under key. Returns true if key is new, false if an old value was replaced or key is empty.
// Time: O(len(key)*log(A)) where A is the size of the alphabet.
func (u *Dictionary[V]) Put(key string, v V) bool {
	if key == "" {
		return false
	}
	cur := &u.root
	for _, r := range key {
		next := cur.child(r)
		if next == nil {
			next = cur.addChild(r)
		}
		cur = next
	}
	cur.v = v
	if cur.end {
		return false
	}
	cur.end = true
	u.n++
	return true
}

// Get the value under key.
func (u *Dictionary[V]) Get(key string) (v V, ok bool) {
	if n := u.find(key); n != nil && n.end && key != "" {
		return n.v, true
	}
	return
}

func (u *Dictionary[V]) Has(key string) bool {
	_, ok := u.Get(key)
	return ok
}

// HasPrefix tells whether some key starts with prefix.
func (u *Dictionary[V]) HasPrefix(prefix string) bool {
	if prefix == "" {
		return u.n > 0
	}
	return u.find(prefix) != nil
}

// Remove key. Nodes left with neither a key nor children are unlinked.
func (u *Dictionary[V]) Remove(key string) bool {
	if key == "" {
		return false
	}
	rs := []rune(key)
	path := make([]*node[V], 0, len(rs)+1)
	cur := &u.root
	path = append(path, cur)
	for _, r := range rs {
		if cur = cur.child(r); cur == nil {
			return false
		}
		path = append(path, cur)
	}
	if !cur.end {
		return false
	}
	cur.end, cur.v = false, *new(V)
	u.n--
	for i := len(rs); i > 0 && !path[i].end && path[i].leaf(); i-- {
		path[i-1].next.Remove(rs[i-1])
	}
	return true
}

// Range calls f for every key and value in key order, until f returns false.
func (u *Dictionary[V]) Range(f func(key string, v V) bool) {
	u.root.walk(nil, f)
}

// WithPrefix returns the entries whose keys start with prefix, in key order.
func (u *Dictionary[V]) WithPrefix(prefix string) (es []Entry[V]) {
	n := u.find(prefix)
	if n == nil {
		return
	}
	n.walk([]rune(prefix), func(k string, v V) bool {
		es = append(es, Entry[V]{k, v})
		return true
	})
	return
}

// Keys in key order.
func (u *Dictionary[V]) Keys() []string {
	ks := make([]string, 0, u.n)
	u.Range(func(k string, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Values in key order.
func (u *Dictionary[V]) Values() []V {
	vs := make([]V, 0, u.n)
	u.Range(func(_ string, v V) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *Dictionary[V]) Len() int {
	return u.n
}

func (u *Dictionary[V]) Clear() {
	u.root, u.n = node[V]{}, 0
}
