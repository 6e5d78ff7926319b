package core

import "pkt.systems/coinflip/schema"

// Analyze computes the distribution and run statistics of flips in a single
// pass. It returns false when flips is empty.
//
// A run is counted once, when its streak reaches exactly schema.RunLength.
// Longer streaks keep growing without counting again, so a run of 12 equal
// outcomes counts as one.
func Analyze(flips []schema.Outcome) (schema.Report, bool) {
	if len(flips) == 0 {
		return schema.Report{}, false
	}
	report := schema.Report{Total: len(flips)}
	headsStreak, tailsStreak := 0, 0
	for _, flip := range flips {
		if flip == schema.Heads {
			report.Heads++
			headsStreak++
			tailsStreak = 0
			if headsStreak == schema.RunLength {
				report.HeadsRuns++
			}
			continue
		}
		report.Tails++
		tailsStreak++
		headsStreak = 0
		if tailsStreak == schema.RunLength {
			report.TailsRuns++
		}
	}
	return report, true
}
