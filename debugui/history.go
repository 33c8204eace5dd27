package debugui

// FrameHistory is a fixed-size ring of frame times in milliseconds. The
// backing slice is handed to ImGui's plot functions as-is, so the oldest
// sample sits at Offset.
type FrameHistory struct {
	samples []float32
	offset  int
	filled  int
}

// NewFrameHistory creates a ring holding size samples. size below one is
// raised to one.
func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records a frame that took dt seconds.
func (h *FrameHistory) Push(dt float64) {
	h.samples[h.offset] = float32(dt * 1000)
	h.offset = (h.offset + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Samples returns the raw ring.
func (h *FrameHistory) Samples() []float32 { return h.samples }

// Offset is the index of the oldest sample.
func (h *FrameHistory) Offset() int { return h.offset }

// Len is the number of recorded samples, at most the ring size.
func (h *FrameHistory) Len() int { return h.filled }

// Average returns the mean frame time in milliseconds over the recorded
// samples, or 0 when nothing has been recorded.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples[:h.filled] {
		sum += ms
	}
	return sum / float32(h.filled)
}

// FPS derives frames per second from Average.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}

// Ordered returns a copy of the samples from oldest to newest.
func (h *FrameHistory) Ordered() []float32 {
	out := make([]float32, 0, h.filled)
	if h.filled < len(h.samples) {
		return append(out, h.samples[:h.filled]...)
	}
	out = append(out, h.samples[h.offset:]...)
	return append(out, h.samples[:h.offset]...)
}

// Extremes returns the shortest and longest recorded frame in milliseconds.
func (h *FrameHistory) Extremes() (lo, hi float32) {
	if h.filled == 0 {
		return 0, 0
	}
	lo, hi = h.samples[0], h.samples[0]
	for _, ms := range h.samples[1:h.filled] {
		lo = min(lo, ms)
		hi = max(hi, ms)
	}
	return lo, hi
}
