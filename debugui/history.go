package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	values []float32
	index  int
	filled int
}

// NewHistory allocates a ring of n samples. n must be positive.
func NewHistory(n int) *History {
	if n <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{values: make([]float32, n)}
}

// Push overwrites the oldest sample with v.
func (h *History) Push(v float32) {
	h.values[h.index] = v
	h.index = (h.index + 1) % len(h.values)
	h.filled = min(h.filled+1, len(h.values))
}

// Avg returns the mean of the samples pushed so far, zero when empty.
func (h *History) Avg() float32 {
	if h.filled == 0 {
		return 0
	}

	var sum float32
	for _, v := range h.values {
		sum += v
	}
	return sum / float32(h.filled)
}

// Values returns the backing ring in storage order.
func (h *History) Values() []float32 {
	return h.values
}
