package bench

import (
	"math/rand"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	"github.com/sephirothx/dstruct/Trees"
	"github.com/sephirothx/dstruct/internal/flogging"
)

var logger = flogging.MustGetLogger("bench")

// Operation kinds, also the names of their timers.
const (
	opInsert = "insert"
	opRemove = "remove"
	opFind   = "find"
	opIndex  = "index"
	opAudit  = "audit"
)

// Report sums up a run.
type Report struct {
	Ops     int
	Audits  int
	Final   int // Count of the tree at the end.
	Height  int
	Metrics metrics.Registry
}

// oracle is the sorted slice a tree is checked against.
type oracle []int

// insert v after every value equal to it and return its position.
func (o *oracle) insert(v int) int {
	i := sort.SearchInts(*o, v+1)
	*o = slices.Insert(*o, i, v)
	return i
}

func (o *oracle) remove(v int) bool {
	i, ok := slices.BinarySearch(*o, v)
	if ok {
		*o = slices.Delete(*o, i, i+1)
	}
	return ok
}

// Run the workload of c, recording a timer per operation into r. It stops at the first
// disagreement with the oracle or failed audit.
func Run(c Config, r metrics.Registry) (Report, error) {
	rep := Report{Metrics: r}
	if err := c.Validate(); err != nil {
		return rep, err
	}
	tree, _ := NewTree(c.Tree)
	rnd := rand.New(rand.NewSource(c.Seed))
	var o oracle
	timer := func(name string) metrics.Timer {
		return metrics.GetOrRegisterTimer(c.Tree+"."+name, r)
	}
	misses := metrics.GetOrRegisterCounter(c.Tree+".remove.miss", r)

	audit := func() error {
		rep.Audits++
		var err error
		timer(opAudit).Time(func() { err = tree.Audit() })
		if err != nil {
			return errors.Wrapf(err, "audit after %d operations", rep.Ops)
		}
		if got := Trees.Collect(tree.InOrder()); !slices.Equal(got, []int(o)) {
			return errors.Errorf("after %d operations the tree holds %v, want %v", rep.Ops, got, []int(o))
		}
		return nil
	}

	mutations := 0
	for ; rep.Ops < c.Ops; rep.Ops++ {
		v := rnd.Intn(c.KeyRange)
		switch k := rnd.Intn(8); {
		case k < 3:
			var got int
			timer(opInsert).Time(func() { got = tree.Insert(v) })
			if want := o.insert(v); got != want {
				return rep, errors.Errorf("operation %d: insert %d gave rank %d, want %d", rep.Ops, v, got, want)
			}
			mutations++
		case k < 5:
			var got bool
			timer(opRemove).Time(func() { got = tree.Remove(v) })
			if want := o.remove(v); got != want {
				return rep, errors.Errorf("operation %d: remove %d gave %t, want %t", rep.Ops, v, got, want)
			}
			if !got {
				misses.Inc(1)
			}
			mutations++
		case k < 7:
			var got bool
			timer(opFind).Time(func() { got = tree.Find(v) })
			if _, want := slices.BinarySearch(o, v); got != want {
				return rep, errors.Errorf("operation %d: find %d gave %t, want %t", rep.Ops, v, got, want)
			}
		default:
			i := rnd.Intn(len(o) + 1)
			var got int
			var err error
			timer(opIndex).Time(func() { got, err = tree.Index(i) })
			if i == len(o) {
				if err == nil {
					return rep, errors.Errorf("operation %d: index %d of %d values succeeded", rep.Ops, i, len(o))
				}
			} else if err != nil {
				return rep, errors.Wrapf(err, "operation %d", rep.Ops)
			} else if got != o[i] {
				return rep, errors.Errorf("operation %d: index %d gave %d, want %d", rep.Ops, i, got, o[i])
			}
		}
		if c.AuditEvery > 0 && mutations == c.AuditEvery {
			mutations = 0
			if err := audit(); err != nil {
				return rep, err
			}
			logger.Debugf("%d operations done, %d values", rep.Ops+1, tree.Count())
		}
	}
	if err := audit(); err != nil {
		return rep, err
	}
	rep.Final, rep.Height = tree.Count(), tree.Height()
	logger.Infof("%s: %d operations, %d audits, %d values, height %d", c.Tree, rep.Ops, rep.Audits, rep.Final, rep.Height)
	return rep, nil
}

// Summarize logs count, mean and the 99th percentile of every timer in r.
func Summarize(r metrics.Registry) {
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Timer:
			s := m.Snapshot()
			logger.Infof("%-16s n=%-8d mean=%8.0fns p99=%8.0fns", name, s.Count(), s.Mean(), s.Percentile(0.99))
		case metrics.Counter:
			logger.Infof("%-16s n=%d", name, m.Count())
		}
	})
}
