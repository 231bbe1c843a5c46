package Tries

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var words = []string{"asdf", "qwer", "qwerty", "asd", "asfghj"}

func TestTrie_Add(t *testing.T) {
	var trie Trie
	assert.True(t, trie.Add("asd"))
	assert.Equal(t, 1, trie.Len())
	assert.True(t, trie.Contains("asd"))
	assert.True(t, trie.Add("asdf"))
	assert.False(t, trie.Add("asd"))
	assert.Equal(t, 2, trie.Len())
	assert.True(t, trie.Add("as"))
	assert.True(t, trie.Contains("as"))
	assert.Equal(t, 3, trie.Len())
	assert.False(t, trie.Add(""))
	assert.False(t, trie.Contains(""))
}

func TestTrie_AddAll(t *testing.T) {
	trie, err := From(words)
	require.NoError(t, err)
	assert.Equal(t, 5, trie.Len())
	ok, err := trie.ContainsAll(words)
	require.NoError(t, err)
	assert.True(t, ok)
	for _, s := range []string{"as", "asth", "asfg", "q", "qwertyu"} {
		assert.False(t, trie.Contains(s), s)
	}
	ok, _ = trie.ContainsAll([]string{"asd", "as"})
	assert.False(t, ok)
	_, err = trie.AddAll(nil)
	assert.Error(t, err)
	_, err = From(nil)
	assert.Error(t, err)
}

func TestTrie_Remove(t *testing.T) {
	trie, _ := From(words)
	assert.True(t, trie.Remove("asd"))
	assert.False(t, trie.Remove("asd"))
	assert.False(t, trie.Remove("as"))
	assert.True(t, trie.Contains("asdf"))
	assert.True(t, trie.ContainsPrefix("asd"))
	n, err := trie.RemoveAll([]string{"asdf", "nope", "qwerty"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, trie.ContainsPrefix("asd"))
	assert.True(t, trie.ContainsPrefix("qwer"))
	assert.False(t, trie.ContainsPrefix("qwert"))
	assert.Equal(t, []string{"asfghj", "qwer"}, trie.All())
}

func TestTrie_WithPrefix(t *testing.T) {
	trie, _ := From(words)
	assert.Equal(t, []string{"asd", "asdf", "asfghj"}, trie.WithPrefix("as"))
	assert.Equal(t, []string{"qwer", "qwerty"}, trie.WithPrefix("qwer"))
	assert.Empty(t, trie.WithPrefix("z"))
	assert.Equal(t, []string{"asd", "asdf", "asfghj", "qwer", "qwerty"}, trie.WithPrefix(""))
	assert.True(t, trie.ContainsPrefix(""))
}

func TestTrie_Clear(t *testing.T) {
	trie, _ := From(words)
	trie.Clear()
	assert.Zero(t, trie.Len())
	assert.False(t, trie.ContainsPrefix("a"))
	trie.Add("a")
	trie.Add("asd")
	assert.Equal(t, 2, trie.Len())
}

func TestDictionary(t *testing.T) {
	var d Dictionary[int]
	assert.True(t, d.Put("héllo", 1))
	assert.True(t, d.Put("help", 2))
	assert.False(t, d.Put("help", 3))
	v, ok := d.Get("help")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = d.Get("hel")
	assert.False(t, ok)
	assert.Equal(t, []Entry[int]{{"help", 3}, {"héllo", 1}}, d.WithPrefix("h"))
	assert.Equal(t, []string{"help", "héllo"}, d.Keys())
	assert.Equal(t, []int{3, 1}, d.Values())
	assert.True(t, d.Remove("héllo"))
	assert.False(t, d.HasPrefix("hé"))
	assert.Equal(t, 1, d.Len())
}

func TestDictionary_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	var d Dictionary[int]
	model := make(map[string]int)
	key := func() string {
		b := make([]byte, 1+rg.Intn(4))
		for i := range b {
			b[i] = 'a' + byte(rg.Intn(3))
		}
		return string(b)
	}
	for i := range 5000 {
		k := key()
		if rg.Intn(2) == 0 {
			_, in := model[k]
			if d.Put(k, i) == in {
				t.Fatalf("Put(%q) disagrees with the model", k)
			}
			model[k] = i
		} else {
			_, in := model[k]
			if d.Remove(k) != in {
				t.Fatalf("Remove(%q) disagrees with the model", k)
			}
			delete(model, k)
		}
	}
	want := make([]string, 0, len(model))
	for k := range model {
		want = append(want, k)
	}
	slices.Sort(want)
	assert.Equal(t, want, d.Keys())
	d.Range(func(k string, v int) bool {
		assert.Equal(t, model[k], v, k)
		return true
	})
	stop := 0
	d.Range(func(string, int) bool {
		stop++
		return stop < 3
	})
	assert.Equal(t, min(3, len(model)), stop)
}
