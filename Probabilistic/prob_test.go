package Probabilistic

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMurmur3(t *testing.T) {
	for _, c := range []struct {
		data string
		seed uint32
		want uint32
	}{
		{"", 0, 0},
		{"", 1, 0x514E28B7},
		{"", 0xffffffff, 0x81F16F39},
		{"\x00\x00\x00\x00", 0, 0x2362F9DE},
		{"Hello, world!", 0x9747b28c, 0x24884CBA},
	} {
		assert.Equal(t, c.want, Murmur3([]byte(c.data), c.seed), "%q seed %x", c.data, c.seed)
	}
}

func TestBloomFilter(t *testing.T) {
	const n = 1000
	f, err := NewBloomFilter(n, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 9586, f.M())
	assert.Equal(t, 7, f.K())
	for i := range n {
		f.AddString(strconv.Itoa(i))
	}
	for i := range n {
		if !f.ContainsString(strconv.Itoa(i)) {
			t.Fatalf("false negative for %d", i)
		}
	}
	fp := 0
	for i := n; i < 11*n; i++ {
		if f.ContainsString(strconv.Itoa(i)) {
			fp++
		}
	}
	// the expected rate is 1%; allow some slack.
	assert.Less(t, fp, 10*n/50, "false positive rate too high")
	f.Clear()
	assert.False(t, f.ContainsString("1"))
}

func TestBloomFilter_Invalid(t *testing.T) {
	for _, c := range [][2]float64{{0, 0.5}, {-1, 0.5}, {10, 0}, {10, 1}, {10, -0.5}} {
		_, err := NewBloomFilter(int(c[0]), c[1])
		assert.Error(t, err, c)
	}
	_, err := NewBloomFilterSized(0, 1)
	assert.Error(t, err)
	_, err = NewBloomFilterSized(8, 0)
	assert.Error(t, err)
	f, err := NewBloomFilterSized(1, 3)
	require.NoError(t, err)
	f.Add([]byte("x"))
	assert.True(t, f.Contains([]byte("y")))
}

func TestCountMinSketch(t *testing.T) {
	s, err := NewCountMinSketch(0.001, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 2719, s.Width())
	assert.Equal(t, 5, s.Depth())
	for i := range 100 {
		s.AddN([]byte(strconv.Itoa(i)), int64(i))
	}
	s.AddString("7")
	total := int64(100*99/2 + 1)
	for i := range 100 {
		e := s.Estimate([]byte(strconv.Itoa(i)))
		want := int64(i)
		if i == 7 {
			want++
		}
		assert.GreaterOrEqual(t, e, want)
		assert.LessOrEqual(t, e, want+total/100, "estimate of %d is too far off", i)
	}
	s.Clear()
	assert.Zero(t, s.EstimateString("7"))
}

func TestCountMinSketch_Invalid(t *testing.T) {
	for _, c := range [][2]float64{{0, 0.5}, {1, 0.5}, {0.5, 0}, {0.5, 1}} {
		_, err := NewCountMinSketch(c[0], c[1])
		assert.Error(t, err, c)
	}
	_, err := NewCountMinSketchSized(0, 1)
	assert.Error(t, err)
	_, err = NewCountMinSketchSized(1, 0)
	assert.Error(t, err)
}
