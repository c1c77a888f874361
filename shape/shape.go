// Package shape models the vector scene graph produced by evaluating a
// quilt script. Shapes are immutable once published: every modifier returns
// a new node, sharing untouched children with the original, so shapes can be
// cached and reused across goroutines without locks.
package shape

// Kind discriminates the node variants of a shape graph.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSquare
	KindCircle
	KindTriangle
	KindFill
	KindComposite
	KindCollection
)

// String returns the name of the kind as it appears in scripts.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "EMPTY"
	case KindSquare:
		return "SQUARE"
	case KindCircle:
		return "CIRCLE"
	case KindTriangle:
		return "TRIANGLE"
	case KindFill:
		return "FILL"
	case KindComposite:
		return "composite"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Shape is a node in the scene graph. Geometry fields are populated
// according to Kind: X/Y/Width/Height for squares, X/Y/Radius for circles,
// Points for triangles. Composite nodes hold exactly two children in A and
// B, and collection nodes hold any number in Shapes.
//
// A node's Transform applies to its entire subtree during rendering.
// A composite or collection Color with nonzero alpha recolors its subtree.
type Shape struct {
	A, B      *Shape
	Shapes    []*Shape
	Points    [6]float32
	Transform Transform
	Color     HSLA
	X, Y      float32
	Width     float32
	Height    float32
	Radius    float32
	Kind      Kind
}

// Square returns the unit square spanning [-1, 1] on both axes.
func Square() *Shape {
	return &Shape{
		Kind:      KindSquare,
		X:         -1,
		Y:         -1,
		Width:     2,
		Height:    2,
		Transform: Identity(),
		Color:     White,
	}
}

// Circle returns the unit circle centered on the origin.
func Circle() *Shape {
	return &Shape{
		Kind:      KindCircle,
		Radius:    1,
		Transform: Identity(),
		Color:     White,
	}
}

// Triangle returns an equilateral triangle inscribed in the unit circle,
// pointing down.
func Triangle() *Shape {
	return &Shape{
		Kind:      KindTriangle,
		Points:    [6]float32{-1, 0.577350269, 1, 0.577350269, 0, -1.154700538},
		Transform: Identity(),
		Color:     White,
	}
}

// Fill returns a shape covering the entire canvas regardless of transforms.
func Fill() *Shape {
	return &Shape{
		Kind:      KindFill,
		Transform: Identity(),
		Color:     White,
	}
}

// Empty returns the shape that renders nothing.
func Empty() *Shape {
	return &Shape{
		Kind:      KindEmpty,
		Transform: Identity(),
	}
}

// Compose layers b over a.
func Compose(a, b *Shape) *Shape {
	return &Shape{
		Kind:      KindComposite,
		A:         a,
		B:         b,
		Transform: Identity(),
		Color:     Transparent,
	}
}

// Collect layers the given shapes in order, first at the bottom.
func Collect(shapes []*Shape) *Shape {
	return &Shape{
		Kind:      KindCollection,
		Shapes:    shapes,
		Transform: Identity(),
		Color:     Transparent,
	}
}

// clone returns a shallow copy sharing all children.
func (s *Shape) clone() *Shape {
	c := *s

	return &c
}

// transformable reports whether transform modifiers affect this node.
// Fills cover the canvas and empties render nothing, so neither moves.
func (s *Shape) transformable() bool {
	return s.Kind != KindFill && s.Kind != KindEmpty
}

// mapTransform returns a copy of s with fn applied to its transform.
func (s *Shape) mapTransform(fn func(Transform) Transform) *Shape {
	if !s.transformable() {
		return s
	}

	c := s.clone()
	c.Transform = fn(c.Transform)

	return c
}

// Translate returns s translated by (tx, ty).
func (s *Shape) Translate(tx, ty float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostTranslate(tx, ty)
	})
}

// Rotate returns s rotated by deg degrees about the origin.
func (s *Shape) Rotate(deg float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostRotate(deg)
	})
}

// RotateAt returns s rotated by deg degrees about the point (tx, ty).
func (s *Shape) RotateAt(deg, tx, ty float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostRotateAt(deg, tx, ty)
	})
}

// Scale returns s scaled by (sx, sy) about the origin.
func (s *Shape) Scale(sx, sy float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostScale(sx, sy)
	})
}

// Skew returns s skewed by the factors (kx, ky).
func (s *Shape) Skew(kx, ky float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostSkew(kx, ky)
	})
}

// Flip returns s reflected across the line through the origin at deg degrees
// from vertical.
func (s *Shape) Flip(deg float32) *Shape {
	return s.mapTransform(func(t Transform) Transform {
		return t.PostFlip(deg)
	})
}

// FlipH returns s reflected across the vertical axis.
func (s *Shape) FlipH() *Shape {
	return s.Scale(-1, 1)
}

// FlipV returns s reflected across the horizontal axis.
func (s *Shape) FlipV() *Shape {
	return s.Scale(1, -1)
}

// FlipD returns s reflected across both axes.
func (s *Shape) FlipD() *Shape {
	return s.Scale(-1, -1)
}

// mapColor returns a copy of s with fn applied to the color of every
// basic descendant. Composite and collection nodes are rebuilt so the
// original graph is never mutated.
func (s *Shape) mapColor(fn func(HSLA) HSLA) *Shape {
	switch s.Kind {
	case KindEmpty:
		return s
	case KindComposite:
		c := s.clone()
		c.A = c.A.mapColor(fn)
		c.B = c.B.mapColor(fn)

		return c
	case KindCollection:
		c := s.clone()
		c.Shapes = make([]*Shape, len(s.Shapes))

		for i, child := range s.Shapes {
			c.Shapes[i] = child.mapColor(fn)
		}

		return c
	default:
		c := s.clone()
		c.Color = fn(c.Color)

		return c
	}
}

// SetColor returns s recolored to c.
func (s *Shape) SetColor(c HSLA) *Shape {
	return s.mapColor(func(HSLA) HSLA { return c })
}

// SetHSL returns s recolored to (h, s, l) with alpha preserved.
func (s *Shape) SetHSL(h, sat, l float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		return HSLA{H: h, S: sat, L: l, A: c.A}
	})
}

// SetHue returns s with the hue of every basic descendant set to h degrees.
func (s *Shape) SetHue(h float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.H = h

		return c
	})
}

// SetSaturation returns s with saturation set to sat.
func (s *Shape) SetSaturation(sat float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.S = sat

		return c
	})
}

// SetLightness returns s with lightness set to l.
func (s *Shape) SetLightness(l float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.L = l

		return c
	})
}

// SetAlpha returns s with alpha set to a.
func (s *Shape) SetAlpha(a float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.A = a

		return c
	})
}

// ShiftHue returns s with every hue advanced by deg degrees.
func (s *Shape) ShiftHue(deg float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.H += deg

		return c
	})
}

// ShiftSaturation returns s with every saturation shifted by d.
func (s *Shape) ShiftSaturation(d float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.S += d

		return c
	})
}

// ShiftLightness returns s with every lightness shifted by d.
func (s *Shape) ShiftLightness(d float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.L += d

		return c
	})
}

// ShiftAlpha returns s with every alpha shifted by d.
func (s *Shape) ShiftAlpha(d float32) *Shape {
	return s.mapColor(func(c HSLA) HSLA {
		c.A += d

		return c
	})
}

// Equal reports whether two shape graphs are structurally identical.
func (s *Shape) Equal(o *Shape) bool {
	if s == o {
		return true
	}

	if s == nil || o == nil || s.Kind != o.Kind {
		return false
	}

	if s.Transform != o.Transform || s.Color != o.Color {
		return false
	}

	switch s.Kind {
	case KindSquare:
		return s.X == o.X && s.Y == o.Y &&
			s.Width == o.Width && s.Height == o.Height
	case KindCircle:
		return s.X == o.X && s.Y == o.Y && s.Radius == o.Radius
	case KindTriangle:
		return s.Points == o.Points
	case KindComposite:
		return s.A.Equal(o.A) && s.B.Equal(o.B)
	case KindCollection:
		if len(s.Shapes) != len(o.Shapes) {
			return false
		}

		for i := range s.Shapes {
			if !s.Shapes[i].Equal(o.Shapes[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}
