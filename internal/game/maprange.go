package game

// MapRange maps x from [inMin,inMax] onto [outMin,outMax] by clamped
// linear interpolation. Inputs outside the range clamp to the nearest
// boundary first. A degenerate input range returns outMin rather than
// dividing by zero. Pure: same inputs, same output.
func MapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}
	if x < inMin {
		x = inMin
	}
	if x > inMax {
		x = inMax
	}
	return outMin + (outMax-outMin)*(x-inMin)/(inMax-inMin)
}
