package engine

import "time"

// Results summarizes a finished game
type Results struct {
	Total   time.Duration
	Splits  []time.Duration // Splits[i] is the time between tap i and the previous tap (or the start)
	Average time.Duration
	Misses  int

	// Fastest and Slowest are 1-based sequence numbers
	Fastest, Slowest           int
	FastestSplit, SlowestSplit time.Duration
}

// computeResults derives splits from the tap latencies of dots ordered by sequence
func computeResults(dots []Dot, misses int) *Results {
	r := &Results{
		Splits: make([]time.Duration, len(dots)),
		Misses: misses,
	}
	if len(dots) == 0 {
		return r
	}

	var prev time.Duration
	for i, d := range dots {
		split := d.TapLatency - prev
		prev = d.TapLatency
		r.Splits[i] = split

		if i == 0 || split < r.FastestSplit {
			r.Fastest, r.FastestSplit = d.Sequence, split
		}
		if i == 0 || split > r.SlowestSplit {
			r.Slowest, r.SlowestSplit = d.Sequence, split
		}
	}

	r.Total = dots[len(dots)-1].TapLatency
	r.Average = r.Total / time.Duration(len(dots))
	return r
}
