package indicator

// SMA calculates the Simple Moving Average over a fixed window using a
// ring buffer, so Update stays O(1) regardless of period.
type SMA struct {
	period int
	window []float64
	head   int
	count  int
	sum    float64
}

// NewSMA creates a new SMA calculator with the given period.
func NewSMA(period int) *SMA {
	return &SMA{
		period: period,
		window: make([]float64, period),
	}
}

func (s *SMA) Update(close float64) {
	if s.count >= s.period {
		s.sum -= s.window[s.head]
	}
	s.window[s.head] = close
	s.head = (s.head + 1) % s.period
	s.sum += close
	if s.count < s.period {
		s.count++
	}
}

func (s *SMA) Value() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func (s *SMA) Ready() bool { return s.count >= s.period }
