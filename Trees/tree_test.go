package Trees

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 3000
	tAddValRange = 1000
	tBigN        = 40000
)

type variant struct {
	name string
	make func() Tree[int]
}

var variants = []variant{
	{"AVL", func() Tree[int] { return NewAVL[int]() }},
	{"RB", func() Tree[int] { return NewRB[int](uint32(1)) }},
	{"BST", func() Tree[int] { return NewBST[int]() }},
}

// shape writes the tree in pre-order with nil markers, together with whatever extra
// says about each node. Two trees with the same shape string are structurally identical.
func shape[N comparable](u view[int, N], extra func(N) string) string {
	var sb strings.Builder
	var z N
	var walk func(N)
	walk = func(n N) {
		if n == z {
			sb.WriteString("_ ")
			return
		}
		fmt.Fprintf(&sb, "(%d %d %s ", u.val(n), u.lsz(n), extra(n))
		walk(u.left(n))
		walk(u.right(n))
		sb.WriteString(") ")
	}
	walk(u.top())
	return sb.String()
}

func snapshot(tr Tree[int]) string {
	switch x := tr.(type) {
	case *AVLTree[int]:
		return shape(x.view(), func(n *node[int]) string { return fmt.Sprint(n.h) })
	case *BSTree[int]:
		return shape(x.view(), func(*node[int]) string { return "" })
	case *RBTree[int, uint32]:
		return shape(x.view(), func(i uint32) string { return fmt.Sprint(x.ifs[i].red, x.ifs[i].p) })
	}
	panic("unknown tree")
}

// recursive traversals to check the iterators against.
func recursive[N comparable](u view[int, N], kind string) (vs []int) {
	var z N
	var walk func(N)
	walk = func(n N) {
		if n == z {
			return
		}
		if kind == "pre" {
			vs = append(vs, u.val(n))
		}
		walk(u.left(n))
		if kind == "in" {
			vs = append(vs, u.val(n))
		}
		walk(u.right(n))
		if kind == "post" {
			vs = append(vs, u.val(n))
		}
	}
	walk(u.top())
	return
}

func recursiveOf(tr Tree[int], kind string) []int {
	switch x := tr.(type) {
	case *AVLTree[int]:
		return recursive(x.view(), kind)
	case *BSTree[int]:
		return recursive(x.view(), kind)
	case *RBTree[int, uint32]:
		return recursive(x.view(), kind)
	}
	panic("unknown tree")
}

func audit(t *testing.T, tr Tree[int], op string) {
	t.Helper()
	if err := tr.Audit(); err != nil {
		t.Fatalf("after %s: %v", op, err)
	}
}

// upperBound is the number of values in sorted that are <= v, which is where Insert places v.
func upperBound(sorted []int, v int) int {
	i, _ := slices.BinarySearch(sorted, v+1)
	return i
}

func TestTree_Insert(t *testing.T) {
	for _, va := range variants {
		t.Run(va.name, func(t *testing.T) {
			tree := va.make()
			var content []int
			for range tAddN {
				v := rg.Intn(tAddValRange)
				want := upperBound(content, v)
				if r := tree.Insert(v); r != want {
					t.Fatalf("Insert(%d) gives rank %d, want %d", v, r, want)
				}
				content = slices.Insert(content, want, v)
				audit(t, tree, fmt.Sprint("Insert ", v))
			}
			if tree.Count() != len(content) {
				t.Errorf("tree size is %d, want %d", tree.Count(), len(content))
			}
			if got := Collect(tree.InOrder()); !slices.Equal(got, content) {
				t.Errorf("in-order is %v, want %v", got, content)
			}
			t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Count())
		})
	}
}

func TestTree_Remove(t *testing.T) {
	for _, va := range variants {
		t.Run(va.name, func(t *testing.T) {
			tree := va.make()
			if tree.Remove(0) {
				t.Errorf("empty tree has non existent key %v", 0)
			}
			var content []int
			for range tAddN {
				v := rg.Intn(tAddValRange)
				tree.Insert(v)
				content = slices.Insert(content, upperBound(content, v), v)
			}
			for range tAddN * 2 {
				v := rg.Intn(tAddValRange * 5 / 4)
				i, in := slices.BinarySearch(content, v)
				var before string
				if !in {
					before = snapshot(tree)
				}
				if got := tree.Remove(v); got != in {
					t.Fatalf("Remove(%d) gives %v, want %v", v, got, in)
				}
				if in {
					content = slices.Delete(content, i, i+1)
				} else if after := snapshot(tree); after != before {
					t.Fatalf("failed Remove(%d) changed the tree", v)
				}
				audit(t, tree, fmt.Sprint("Remove ", v))
			}
			if tree.Count() != len(content) {
				t.Errorf("tree size is %d, want %d", tree.Count(), len(content))
			}
			if got := Collect(tree.InOrder()); !slices.Equal(got, content) {
				t.Errorf("in-order is %v, want %v", got, content)
			}
		})
	}
}

func TestTree_RemoveTwice(t *testing.T) {
	for _, va := range variants {
		tree := va.make()
		for _, v := range rg.Perm(500) {
			tree.Insert(v)
		}
		for _, v := range rg.Perm(500) {
			if !tree.Remove(v) {
				t.Errorf("%s: failed to delete key %v", va.name, v)
			}
			if tree.Remove(v) {
				t.Errorf("%s: can delete a second time key %v", va.name, v)
			}
			audit(t, tree, fmt.Sprint("Remove ", v))
		}
		if tree.Count() != 0 || tree.Height() != 0 {
			t.Errorf("%s: tree isn't empty after removing everything", va.name)
		}
	}
}

func TestTree_AddDel(t *testing.T) {
	for _, va := range variants {
		t.Run(va.name, func(t *testing.T) {
			tree := va.make()
			content := make(map[int]int)
			n := 0
			for range tBigN {
				v := rg.Intn(tBigN / 2)
				if rg.Intn(3) == 0 {
					if tree.Remove(v) != (content[v] > 0) {
						t.Fatalf("Remove(%d) disagrees with the content", v)
					}
					if content[v] > 0 {
						content[v]--
						n--
					}
				} else {
					tree.Insert(v)
					content[v]++
					n++
				}
			}
			audit(t, tree, "all operations")
			if tree.Count() != n {
				t.Errorf("tree size is %d, want %d", tree.Count(), n)
			}
			for k, c := range content {
				if tree.Find(k) != (c > 0) {
					t.Errorf("Find(%d) is %v, want %v", k, !(c > 0), c > 0)
				}
			}
			t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Count())
		})
	}
}

func TestTree_Index(t *testing.T) {
	for _, va := range variants {
		tree := va.make()
		var content []int
		for range tAddN {
			v := rg.Intn(tAddValRange)
			tree.Insert(v)
			content = slices.Insert(content, upperBound(content, v), v)
		}
		for i, want := range content {
			if got, err := tree.Index(i); err != nil || got != want {
				t.Fatalf("%s: Index(%d) gives (%d, %v), want %d", va.name, i, got, err, want)
			}
		}
		for _, i := range []int{-1, len(content), len(content) + 10} {
			if _, err := tree.Index(i); err == nil {
				t.Errorf("%s: Index(%d) has no error", va.name, i)
			}
		}
		for v := -1; v <= tAddValRange; v++ {
			want, found := slices.BinarySearch(content, v)
			if r, f := tree.RankOf(v); r != want || f != found {
				t.Fatalf("%s: RankOf(%d) gives (%d, %v), want (%d, %v)", va.name, v, r, f, want, found)
			}
			if found {
				if got, _ := tree.Index(want); got != v {
					t.Fatalf("%s: Index(RankOf(%d)) gives %d", va.name, v, got)
				}
			}
		}
	}
}

func TestTree_Neighbors(t *testing.T) {
	for _, va := range variants {
		tree := va.make()
		var content []int
		for range tAddN {
			v := rg.Intn(tAddValRange) * 2
			tree.Insert(v)
			content = slices.Insert(content, upperBound(content, v), v)
		}
		for v := -3; v <= 2*tAddValRange+2; v++ {
			i, _ := slices.BinarySearch(content, v)
			p, hasP := tree.Predecessor(v)
			if hasP != (i > 0) || (hasP && p != content[i-1]) {
				t.Fatalf("%s: Predecessor(%d) gives (%d, %v)", va.name, v, p, hasP)
			}
			j := upperBound(content, v)
			s, hasS := tree.Successor(v)
			if hasS != (j < len(content)) || (hasS && s != content[j]) {
				t.Fatalf("%s: Successor(%d) gives (%d, %v)", va.name, v, s, hasS)
			}
		}
		if m, err := tree.Min(); err != nil || m != content[0] {
			t.Errorf("%s: Min gives (%d, %v)", va.name, m, err)
		}
		if m, err := tree.Max(); err != nil || m != content[len(content)-1] {
			t.Errorf("%s: Max gives (%d, %v)", va.name, m, err)
		}
	}
}

func TestTree_Traversals(t *testing.T) {
	for _, va := range variants {
		tree := va.make()
		for range tAddN {
			tree.Insert(rg.Intn(tAddValRange))
		}
		for kind, f := range map[string]func() func() (int, bool){"in": tree.InOrder, "pre": tree.PreOrder, "post": tree.PostOrder} {
			if got, want := Collect(f()), recursiveOf(tree, kind); !slices.Equal(got, want) {
				t.Errorf("%s: %s-order traversal differs from the recursive one", va.name, kind)
			}
		}
		bf := Collect(tree.BreadthFirst())
		if len(bf) != tree.Count() {
			t.Errorf("%s: breadth first gives %d values, want %d", va.name, len(bf), tree.Count())
		}
		pre := Collect(tree.PreOrder())
		if bf[0] != pre[0] {
			t.Errorf("%s: breadth first starts with %d, want the root %d", va.name, bf[0], pre[0])
		}
		slices.Sort(bf)
		if !slices.Equal(bf, Collect(tree.InOrder())) {
			t.Errorf("%s: breadth first doesn't visit every node once", va.name)
		}
		if !slices.IsSorted(Collect(tree.InOrder())) {
			t.Errorf("%s: in-order isn't sorted", va.name)
		}
		next := tree.InOrder()
		for _, ok := next(); ok; _, ok = next() {
		}
		if _, ok := next(); ok {
			t.Errorf("%s: exhausted iterator gives a value", va.name)
		}
	}
}

func TestTree_Clear(t *testing.T) {
	for _, va := range variants {
		tree := va.make()
		for _, v := range rg.Perm(100) {
			tree.Insert(v)
		}
		tree.Clear()
		audit(t, tree, "Clear")
		if tree.Count() != 0 || tree.Find(1) {
			t.Errorf("%s: tree isn't empty after Clear", va.name)
		}
		if _, ok := tree.InOrder()(); ok {
			t.Errorf("%s: empty tree has an in-order value", va.name)
		}
		tree.Insert(7)
		if v, _ := tree.Index(0); v != 7 {
			t.Errorf("%s: tree is unusable after Clear", va.name)
		}
	}
}

func TestTree_AVLBalance(t *testing.T) {
	tree := NewAVL[int]()
	for i := range 1 << 12 {
		tree.Insert(i)
	}
	// a perfectly sorted insertion gives a complete tree.
	if h := tree.Height(); h != 13 {
		t.Errorf("height is %d, want 13", h)
	}
}

func TestTree_RBArena(t *testing.T) {
	tree := NewRB[int](uint32(0))
	for i := range 1000 {
		tree.Insert(i)
	}
	for i := 0; i < 1000; i += 2 {
		tree.Remove(i)
	}
	l := len(tree.ifs)
	for i := 0; i < 1000; i += 2 {
		tree.Insert(i)
	}
	if len(tree.ifs) != l {
		t.Errorf("arena grew to %d, want %d: freed indexes weren't reused", len(tree.ifs), l)
	}
	audit(t, tree, "reuse")
}

func TestTree_RBIndexOverflow(t *testing.T) {
	tree := NewRB[int](uint8(0))
	for i := range 255 {
		tree.Insert(i)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("no panic after running out of indexes")
		}
	}()
	tree.Insert(255)
}
