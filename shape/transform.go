package shape

import "math"

// Transform is a 2D affine transformation matrix mapping a point (x, y) to
//
//	x' = SX*x + KX*y + TX
//	y' = KY*x + SY*y + TY
type Transform struct {
	SX, KX, KY, SY, TX, TY float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Translation returns a transform that translates by (tx, ty).
func Translation(tx, ty float32) Transform {
	return Transform{SX: 1, SY: 1, TX: tx, TY: ty}
}

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float32) Transform {
	return Transform{SX: sx, SY: sy}
}

// Rotation returns a transform that rotates by deg degrees about the origin.
func Rotation(deg float32) Transform {
	rad := float64(deg) * math.Pi / 180

	sin := float32(math.Sin(rad))
	cos := float32(math.Cos(rad))

	return Transform{SX: cos, KX: -sin, KY: sin, SY: cos}
}

// Skewing returns a transform that skews by the factors (kx, ky).
func Skewing(kx, ky float32) Transform {
	return Transform{SX: 1, KX: kx, KY: ky, SY: 1}
}

// PostConcat returns the transform equivalent to applying t first and then m.
func (t Transform) PostConcat(m Transform) Transform {
	return Transform{
		SX: m.SX*t.SX + m.KX*t.KY,
		KX: m.SX*t.KX + m.KX*t.SY,
		TX: m.SX*t.TX + m.KX*t.TY + m.TX,
		KY: m.KY*t.SX + m.SY*t.KY,
		SY: m.KY*t.KX + m.SY*t.SY,
		TY: m.KY*t.TX + m.SY*t.TY + m.TY,
	}
}

// PostTranslate returns t followed by a translation of (tx, ty).
func (t Transform) PostTranslate(tx, ty float32) Transform {
	return t.PostConcat(Translation(tx, ty))
}

// PostScale returns t followed by a scale of (sx, sy).
func (t Transform) PostScale(sx, sy float32) Transform {
	return t.PostConcat(Scaling(sx, sy))
}

// PostRotate returns t followed by a rotation of deg degrees about the
// origin.
func (t Transform) PostRotate(deg float32) Transform {
	return t.PostConcat(Rotation(deg))
}

// PostRotateAt returns t followed by a rotation of deg degrees about the
// point (tx, ty).
func (t Transform) PostRotateAt(deg, tx, ty float32) Transform {
	pivot := Translation(-tx, -ty).
		PostConcat(Rotation(deg)).
		PostConcat(Translation(tx, ty))

	return t.PostConcat(pivot)
}

// PostSkew returns t followed by a skew of (kx, ky).
func (t Transform) PostSkew(kx, ky float32) Transform {
	return t.PostConcat(Skewing(kx, ky))
}

// PostFlip returns t followed by a reflection across the line through the
// origin at deg degrees from vertical.
func (t Transform) PostFlip(deg float32) Transform {
	return t.PostRotate(deg).PostScale(-1, 1).PostRotate(-deg)
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float32) (float32, float32) {
	return t.SX*x + t.KX*y + t.TX, t.KY*x + t.SY*y + t.TY
}

// Invert returns the inverse transform, or false if t is not invertible.
func (t Transform) Invert() (Transform, bool) {
	det := t.SX*t.SY - t.KX*t.KY
	if det == 0 {
		return Transform{}, false
	}

	inv := 1 / det

	return Transform{
		SX: t.SY * inv,
		KX: -t.KX * inv,
		KY: -t.KY * inv,
		SY: t.SX * inv,
		TX: (t.KX*t.TY - t.SY*t.TX) * inv,
		TY: (t.KY*t.TX - t.SX*t.TY) * inv,
	}, true
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
