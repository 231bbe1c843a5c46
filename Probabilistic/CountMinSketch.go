package Probabilistic

import (
	"math"

	"github.com/sephirothx/dstruct"
)

// CountMinSketch estimates how many times each value was added, never underestimating
// as long as all the counts added are positive. With width ceil(e/eps) and depth
// ceil(ln(1/delta)), an estimate exceeds the true count by more than eps times the total
// count with probability at most delta.
type CountMinSketch struct {
	w, d  int
	count []int64 // count[i*w+j] is column j of row i.
}

// NewCountMinSketch returns a CountMinSketch with error eps and confidence 1-delta.
func NewCountMinSketch(eps, delta float64) (*CountMinSketch, error) {
	if !(eps > 0 && eps < 1) {
		return nil, &dstruct.InvalidArgumentError{Name: "eps", Reason: "must be within (0, 1)"}
	}
	if !(delta > 0 && delta < 1) {
		return nil, &dstruct.InvalidArgumentError{Name: "delta", Reason: "must be within (0, 1)"}
	}
	return NewCountMinSketchSized(int(math.Ceil(math.E/eps)), int(math.Ceil(math.Log(1/delta))))
}

// NewCountMinSketchSized returns a CountMinSketch of depth rows of width counters.
func NewCountMinSketchSized(width, depth int) (*CountMinSketch, error) {
	if width <= 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "width", Reason: "must be positive"}
	}
	if depth <= 0 {
		return nil, &dstruct.InvalidArgumentError{Name: "depth", Reason: "must be positive"}
	}
	return &CountMinSketch{width, depth, make([]int64, width*depth)}, nil
}

func (u *CountMinSketch) Width() int { return u.w }
func (u *CountMinSketch) Depth() int { return u.d }

// AddN adds n occurrences of data.
func (u *CountMinSketch) AddN(data []byte, n int64) {
	h1, h2 := hashes(data)
	for i := range u.d {
		u.count[i*u.w+nth(h1, h2, i, u.w)] += n
	}
}

func (u *CountMinSketch) Add(data []byte) {
	u.AddN(data, 1)
}

func (u *CountMinSketch) AddString(s string) {
	u.AddN([]byte(s), 1)
}

// Estimate how many times data was added.
func (u *CountMinSketch) Estimate(data []byte) int64 {
	h1, h2 := hashes(data)
	e := int64(math.MaxInt64)
	for i := range u.d {
		e = min(e, u.count[i*u.w+nth(h1, h2, i, u.w)])
	}
	return e
}

func (u *CountMinSketch) EstimateString(s string) int64 {
	return u.Estimate([]byte(s))
}

// Clear all counts.
func (u *CountMinSketch) Clear() {
	clear(u.count)
}
