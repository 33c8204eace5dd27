package main

import "github.com/plus3/roadrush/world"

// trafficSampler runs at the end of every active tick and records how busy
// the road got.
type trafficSampler struct {
	peak    int
	samples int64
	total   int64
}

func (t *trafficSampler) Execute(frame *world.UpdateFrame) {
	n := frame.Storage.EnemyCount()
	t.peak = max(t.peak, n)
	t.samples++
	t.total += int64(n)
}

func (t *trafficSampler) average() float64 {
	if t.samples == 0 {
		return 0
	}
	return float64(t.total) / float64(t.samples)
}
