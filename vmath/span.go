package vmath

// SpanWithin checks that the span [aY, aY+aH] lies inside [bY, bY+bH], edges inclusive
func SpanWithin(aY, aH, bY, bH float64) bool {
	return aY >= bY && aY+aH <= bY+bH
}

// InRange checks lo <= v <= hi
func InRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// Sign returns -1, 0 or +1
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
