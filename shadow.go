package fold

// ShadowIntensity returns the overlay intensity in [0, 1] for a panel.
//
// It is -rotation/90 for a top-hinged panel rotated inside (-90, 0), and 0
// in every other case, including bottom-hinged panels. The ramp is closed
// at -90 so a fully folded panel reports exactly 1.
func ShadowIntensity(rotation float64, gravity Gravity) float64 {
	if gravity == GravityTop && rotation >= -90 && rotation < 0 {
		return -rotation / 90
	}
	return 0
}

// ShadowAlpha scales maxAlpha by intensity, truncating toward zero.
// Intensity outside [0, 1] is clamped.
func ShadowAlpha(intensity float64, maxAlpha uint8) uint8 {
	switch {
	case !(intensity > 0):
		return 0
	case intensity >= 1:
		return maxAlpha
	}
	return uint8(float64(maxAlpha) * intensity)
}

// simpleIntensity is the two-sided ramp used by SimpleShading: the panel
// darkens toward 90 degrees whichever edge it hangs from.
func simpleIntensity(rotation float64, gravity Gravity) float64 {
	switch gravity {
	case GravityTop:
		return ShadowIntensity(rotation, gravity)
	case GravityBottom:
		if rotation > 0 && rotation <= 90 {
			return rotation / 90
		}
	}
	return 0
}
