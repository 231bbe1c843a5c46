package Tries

import (
	"github.com/sephirothx/dstruct"
)

// Trie is a set of non empty strings. The zero value is an empty Trie ready to use.
type Trie struct {
	d Dictionary[struct{}]
}

// From returns a Trie holding every string of ss.
func From(ss []string) (*Trie, error) {
	u := new(Trie)
	if _, err := u.AddAll(ss); err != nil {
		return nil, err
	}
	return u, nil
}

// Add s. Returns false if s is empty or already in the Trie.
func (u *Trie) Add(s string) bool {
	return u.d.Put(s, struct{}{})
}

// AddAll strings of ss, returning how many were new.
func (u *Trie) AddAll(ss []string) (int, error) {
	if ss == nil {
		return 0, &dstruct.InvalidArgumentError{Name: "ss", Reason: "nil slice"}
	}
	c := 0
	for _, s := range ss {
		if u.Add(s) {
			c++
		}
	}
	return c, nil
}

func (u *Trie) Remove(s string) bool {
	return u.d.Remove(s)
}

// RemoveAll strings of ss, returning how many were removed.
func (u *Trie) RemoveAll(ss []string) (int, error) {
	if ss == nil {
		return 0, &dstruct.InvalidArgumentError{Name: "ss", Reason: "nil slice"}
	}
	c := 0
	for _, s := range ss {
		if u.Remove(s) {
			c++
		}
	}
	return c, nil
}

func (u *Trie) Contains(s string) bool {
	return u.d.Has(s)
}

// ContainsAll tells whether every string of ss is in the Trie.
func (u *Trie) ContainsAll(ss []string) (bool, error) {
	if ss == nil {
		return false, &dstruct.InvalidArgumentError{Name: "ss", Reason: "nil slice"}
	}
	for _, s := range ss {
		if !u.Contains(s) {
			return false, nil
		}
	}
	return true, nil
}

// ContainsPrefix tells whether some string in the Trie starts with prefix.
func (u *Trie) ContainsPrefix(prefix string) bool {
	return u.d.HasPrefix(prefix)
}

// WithPrefix returns the strings starting with prefix, in rune order.
func (u *Trie) WithPrefix(prefix string) []string {
	es := u.d.WithPrefix(prefix)
	ss := make([]string, len(es))
	for i, e := range es {
		ss[i] = e.Key
	}
	return ss
}

// All strings in rune order.
func (u *Trie) All() []string {
	return u.d.Keys()
}

func (u *Trie) Len() int {
	return u.d.Len()
}

func (u *Trie) Clear() {
	u.d.Clear()
}
