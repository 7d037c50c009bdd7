package covering

import "fmt"

// CoverageStats summarizes how completely a generated set of combinations
// covers the feasible t-way interactions of a dimension space.
type CoverageStats struct {
	Strength      int
	TotalTuples   int
	CoveredTuples int
	Combinations  int
}

// Coverage returns the fraction of feasible tuples covered, in [0, 1]. A
// space with zero feasible tuples (e.g. one where the constraint set
// rejects every tuple) reports full coverage.
func (s CoverageStats) Coverage() float64 {
	if s.TotalTuples == 0 {
		return 1
	}
	return float64(s.CoveredTuples) / float64(s.TotalTuples)
}

func (s CoverageStats) String() string {
	return fmt.Sprintf("CoverageStats(strength=%d, %d/%d tuples covered (%.1f%%), %d combinations)",
		s.Strength, s.CoveredTuples, s.TotalTuples, s.Coverage()*100, s.Combinations)
}
