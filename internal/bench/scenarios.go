package bench

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/sephirothx/dstruct/Trees"
)

// Scenario is a fixed sequence of operations with known results.
type Scenario struct {
	Name  string
	Check func(t Trees.Tree[int]) error
}

func insertAll(t Trees.Tree[int], vs ...int) {
	for _, v := range vs {
		t.Insert(v)
	}
}

func inOrder(t Trees.Tree[int], want ...int) error {
	if got := Trees.Collect(t.InOrder()); !slices.Equal(got, want) {
		return errors.Errorf("in-order gave %v, want %v", got, want)
	}
	return nil
}

func wantIndex(t Trees.Tree[int], i, want int) error {
	got, err := t.Index(i)
	if err != nil {
		return errors.Wrapf(err, "index %d", i)
	}
	if got != want {
		return errors.Errorf("index %d gave %d, want %d", i, got, want)
	}
	return nil
}

// Scenarios are checks every tree must pass, starting from an empty tree.
var Scenarios = []Scenario{
	{"sorted in-order", func(t Trees.Tree[int]) error {
		insertAll(t, 6, 4, 2, 5, 1, 3, 7, 9, 8, 10)
		if t.Count() != 10 {
			return errors.Errorf("count is %d, want 10", t.Count())
		}
		return inOrder(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	}},
	{"insert rank", func(t Trees.Tree[int]) error {
		insertAll(t, 6, 4, 2, 1, 3, 7, 9, 8, 10)
		if r := t.Insert(5); r != 4 {
			return errors.Errorf("insert 5 gave rank %d, want 4", r)
		}
		return wantIndex(t, 7, 8)
	}},
	{"remove once", func(t Trees.Tree[int]) error {
		insertAll(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		if !t.Remove(8) {
			return errors.New("first remove of 8 failed")
		}
		if t.Remove(8) || t.Remove(-10) {
			return errors.New("removed an absent value")
		}
		return inOrder(t, 1, 2, 3, 4, 5, 6, 7, 9, 10)
	}},
	{"remove then index", func(t Trees.Tree[int]) error {
		insertAll(t, 20, 10, 5, 15, 30, 25, 35, 32, 33)
		if !t.Remove(10) || !t.Remove(30) {
			return errors.New("remove of a present value failed")
		}
		if err := wantIndex(t, 5, 33); err != nil {
			return err
		}
		return inOrder(t, 5, 15, 20, 25, 32, 33, 35)
	}},
}

// RunScenarios runs every scenario against a new tree of each engine, auditing it
// afterwards. It returns the number of failures.
func RunScenarios(engines []string) (failed int, err error) {
	for _, e := range engines {
		for _, s := range Scenarios {
			t, err := NewTree(e)
			if err != nil {
				return failed, err
			}
			err = s.Check(t)
			if err == nil {
				err = t.Audit()
			}
			if err != nil {
				failed++
				logger.Errorf("%s: %s: %v", e, s.Name, err)
				continue
			}
			logger.Infof("%s: %s: ok", e, s.Name)
		}
	}
	return failed, nil
}
