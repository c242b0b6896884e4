package genome

import "gonum.org/v1/gonum/stat"

// TrackStats summarizes the numeric "value" attribute of a track's features.
// GC content and skew tracks carry one value per window.
type TrackStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// StatsFor computes summary statistics for a track's value attributes.
// Features without a numeric value are ignored. Returns a zero-count result
// when no feature carries a value.
func StatsFor(t *Track) TrackStats {
	var vals []float64
	for _, f := range t.Features {
		if v, ok := f.NumericAttr("value"); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return TrackStats{}
	}
	s := TrackStats{
		Count: len(vals),
		Mean:  stat.Mean(vals, nil),
		Min:   vals[0],
		Max:   vals[0],
	}
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	for _, v := range vals[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}
