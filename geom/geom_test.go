package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/roadrush/geom"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, geom.Clamp(5, 0, 10))
	assert.Equal(t, 0.0, geom.Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, geom.Clamp(12, 0, 10))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, geom.Lerp(0, 10, 0))
	assert.Equal(t, 10.0, geom.Lerp(0, 10, 1))
	assert.Equal(t, 2.5, geom.Lerp(0, 10, 0.25))
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi, geom.DegToRad(180), 1e-12)
	assert.InDelta(t, math.Pi/6, geom.DegToRad(30), 1e-12)
}

func TestOverlaps(t *testing.T) {
	t.Run("disjoint boxes", func(t *testing.T) {
		a := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
		b := geom.Rect{X: 20, Y: 20, W: 10, H: 10}
		assert.False(t, geom.Overlaps(a, b))
		assert.False(t, geom.Overlaps(b, a))
	})

	t.Run("identical boxes", func(t *testing.T) {
		a := geom.Rect{X: 3, Y: 4, W: 10, H: 10}
		assert.True(t, geom.Overlaps(a, a))
	})

	t.Run("edge contact is not overlap", func(t *testing.T) {
		a := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
		right := geom.Rect{X: 10, Y: 0, W: 10, H: 10}
		below := geom.Rect{X: 0, Y: 10, W: 10, H: 10}
		assert.False(t, geom.Overlaps(a, right))
		assert.False(t, geom.Overlaps(a, below))
	})

	t.Run("symmetry", func(t *testing.T) {
		r := geom.NewRand(7)
		for i := 0; i < 500; i++ {
			a := geom.Rect{X: r.Float64() * 50, Y: r.Float64() * 50, W: r.Float64() * 30, H: r.Float64() * 30}
			b := geom.Rect{X: r.Float64() * 50, Y: r.Float64() * 50, W: r.Float64() * 30, H: r.Float64() * 30}
			if geom.Overlaps(a, b) != geom.Overlaps(b, a) {
				t.Fatalf("overlap not symmetric for %+v and %+v", a, b)
			}
		}
	})
}

func TestRandomInt(t *testing.T) {
	r := geom.NewRand(42)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := geom.RandomInt(r, 150, 153)
		if v < 150 || v > 153 {
			t.Fatalf("value %d outside [150, 153]", v)
		}
		seen[v] = true
	}
	assert.Len(t, seen, 4, "both bounds should be reachable")
	assert.Equal(t, 9, geom.RandomInt(r, 9, 9))
}

func TestRandomChoice(t *testing.T) {
	r := geom.NewRand(1)
	list := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, list, geom.RandomChoice(r, list))
	}
	assert.Panics(t, func() { geom.RandomChoice(r, []int{}) })
}

func TestNewRandDeterministic(t *testing.T) {
	a := geom.NewRand(99)
	b := geom.NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-9876543: "-9,876,543",
	}
	for in, want := range cases {
		assert.Equal(t, want, geom.FormatNumber(in))
	}
}
