package synth

import "github.com/spectrum-art/terra-incognita/rng"

// warper holds the four independent noise sources the two-level domain warp
// needs (decorrelated macro/micro, x/y), constructed once per generation run
// rather than per pixel. Grounded on original_source/.../noise/warp.rs's
// domain_warp, which constructs its four Perlin sources inline per call;
// hoisting the construction out of the per-pixel loop changes nothing about
// the math, only when the (seed-derived, not coordinate-derived) sources get
// built.
type warper struct {
	macroX, macroY *rng.Source
	microX, microY *rng.Source
}

func newWarper(seed int64) *warper {
	return &warper{
		macroX: rng.NewSource(seed ^ 0x0001),
		macroY: rng.NewSource(seed ^ 0x0002),
		microX: rng.NewSource(seed ^ 0x0003),
		microY: rng.NewSource(seed ^ 0x0004),
	}
}

// warp displaces (x, y) through macro then micro domain warping. macroScale
// and microScale are amplitudes in noise-space units; microScale < 1e-9
// skips the second level.
func (w *warper) warp(x, y, macroScale, microScale float64) (xw, yw float64) {
	xm := x + macroScale*w.macroX.Eval2(x, y)
	ym := y + macroScale*w.macroY.Eval2(x+5.2, y+1.3)

	if microScale < 1e-9 {
		return xm, ym
	}

	xu := xm + microScale*w.microX.Eval2(xm, ym)
	yu := ym + microScale*w.microY.Eval2(xm+3.7, ym+9.1)
	return xu, yu
}
