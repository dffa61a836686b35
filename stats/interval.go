package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed z-value for a confidence level given in
// percent, e.g. 95.
func ZVal(confidence float64) float64 {
	std := distuv.UnitNormal
	return std.Quantile((1 + confidence/100) / 2)
}

// Interval returns the normal-approximation confidence interval around the
// mean.
func (s *Statistic) Interval(confidence float64) (lo, hi float64) {
	half := ZVal(confidence) * s.StandardError()
	return s.Mean() - half, s.Mean() + half
}
