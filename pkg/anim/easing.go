package anim

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EaseOutCubic decelerates toward 1. Effect strength runs it on remaining
// lifetime, so a fading effect holds near full and drops off at the end.
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}
