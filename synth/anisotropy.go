package synth

import "math"

// applyAnisotropy rotates noise-space coordinates so the grain axis aligns
// with x, then stretches the cross-grain axis by 1/(1-0.9*intensity)
// (1.0 at intensity=0, up to 10x at intensity->1), elongating features
// along the structural grain direction. Grounded on
// original_source/.../noise/anisotropic.rs's apply_anisotropy.
func applyAnisotropy(x, y, grainAngle, grainIntensity float64) (xp, yp float64) {
	cosA := math.Cos(grainAngle)
	sinA := math.Sin(grainAngle)
	xr := x*cosA + y*sinA
	yr := -x*sinA + y*cosA

	intensity := grainIntensity
	if intensity < 0 {
		intensity = 0
	} else if intensity > 0.99 {
		intensity = 0.99
	}
	scale := 1.0 / (1.0 - 0.9*intensity)
	return xr, yr * scale
}
