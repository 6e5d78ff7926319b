package schema

// Report holds the distribution and run statistics of a flip sequence.
type Report struct {
	Total     int
	Heads     int
	Tails     int
	HeadsRuns int
	TailsRuns int
}

// HeadsPercent returns the share of heads in percent.
func (r Report) HeadsPercent() float64 {
	return percent(r.Heads, r.Total)
}

// TailsPercent returns the share of tails in percent.
func (r Report) TailsPercent() float64 {
	return percent(r.Tails, r.Total)
}

// Runs returns the number of counted runs of either outcome.
func (r Report) Runs() int {
	return r.HeadsRuns + r.TailsRuns
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
