// Package render rasterizes a shape graph onto a pixmap. Coverage is a
// simple point-in-shape test per pixel.
package render

import (
	"math"
	"slices"

	"github.com/quiltlang/quilt/shape"
)

// Render rasterizes root onto a new width-by-height pixmap. World space is
// mapped so the origin lands at the canvas center and the shorter canvas
// axis spans [-1, 1].
func Render(root *shape.Shape, width, height int) *Pixmap {
	p := NewPixmap(width, height)

	scale := float32(min(width, height)) / 2
	canvas := shape.Scaling(scale, scale).
		PostTranslate(float32(width)/2, float32(height)/2)

	draw(p, root, canvas, nil)

	return p
}

// draw walks the graph depth first. parent maps this node's local space to
// screen space. A non-nil override recolors the entire subtree.
func draw(p *Pixmap, s *shape.Shape, parent shape.Transform, override *shape.HSLA) {
	if s == nil {
		return
	}

	full := s.Transform.PostConcat(parent)

	color := s.Color
	if override != nil {
		color = *override
	}

	switch s.Kind {
	case shape.KindEmpty:
	case shape.KindFill:
		fillCanvas(p, color)
	case shape.KindSquare:
		drawPolygon(p, full, color, []float32{
			s.X, s.Y,
			s.X + s.Width, s.Y,
			s.X + s.Width, s.Y + s.Height,
			s.X, s.Y + s.Height,
		})
	case shape.KindTriangle:
		drawPolygon(p, full, color, s.Points[:])
	case shape.KindCircle:
		drawCircle(p, full, color, s)
	case shape.KindComposite, shape.KindCollection:
		// An explicit color on a grouping node recolors everything below.
		next := override
		if next == nil && color.A > 0 {
			next = &color
		}

		if s.Kind == shape.KindComposite {
			draw(p, s.A, full, next)
			draw(p, s.B, full, next)

			return
		}

		for _, child := range s.Shapes {
			draw(p, child, full, next)
		}
	}
}

func fillCanvas(p *Pixmap, c shape.HSLA) {
	src := c.NRGBA()

	for y := range p.Height() {
		for x := range p.Width() {
			p.Blend(x, y, src)
		}
	}
}

// drawPolygon rasterizes a flat list of local-space vertex pairs with
// even-odd scanline coverage, sampling each pixel at its center.
func drawPolygon(p *Pixmap, t shape.Transform, c shape.HSLA, pts []float32) {
	n := len(pts) / 2
	xs := make([]float32, n)
	ys := make([]float32, n)

	for i := range n {
		xs[i], ys[i] = t.Apply(pts[2*i], pts[2*i+1])
	}

	minY := int(math.Floor(float64(slices.Min(ys))))
	maxY := int(math.Ceil(float64(slices.Max(ys))))
	src := c.NRGBA()

	for y := max(minY, 0); y <= min(maxY, p.Height()-1); y++ {
		sy := float32(y) + 0.5

		// Gather edge crossings for this scanline.
		var crossings []float32

		for i := range n {
			j := (i + 1) % n

			y0, y1 := ys[i], ys[j]
			if (y0 <= sy) == (y1 <= sy) {
				continue
			}

			x0, x1 := xs[i], xs[j]
			crossings = append(crossings, x0+(sy-y0)/(y1-y0)*(x1-x0))
		}

		slices.Sort(crossings)

		for k := 0; k+1 < len(crossings); k += 2 {
			from := int(math.Ceil(float64(crossings[k] - 0.5)))
			to := int(math.Floor(float64(crossings[k+1] - 0.5)))

			for x := max(from, 0); x <= min(to, p.Width()-1); x++ {
				p.Blend(x, y, src)
			}
		}
	}
}

// drawCircle inverts the cumulative transform and tests pixel centers
// against the circle in its local space, bounded by the transformed extent.
func drawCircle(p *Pixmap, t shape.Transform, c shape.HSLA, s *shape.Shape) {
	inv, ok := t.Invert()
	if !ok {
		return
	}

	// Transform the circle's local bounding box to bound the screen scan.
	corners := [4][2]float32{
		{s.X - s.Radius, s.Y - s.Radius},
		{s.X + s.Radius, s.Y - s.Radius},
		{s.X + s.Radius, s.Y + s.Radius},
		{s.X - s.Radius, s.Y + s.Radius},
	}

	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))

	for _, corner := range corners {
		x, y := t.Apply(corner[0], corner[1])
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	src := c.NRGBA()
	r2 := s.Radius * s.Radius

	for y := max(int(minY), 0); y <= min(int(maxY)+1, p.Height()-1); y++ {
		for x := max(int(minX), 0); x <= min(int(maxX)+1, p.Width()-1); x++ {
			lx, ly := inv.Apply(float32(x)+0.5, float32(y)+0.5)

			dx, dy := lx-s.X, ly-s.Y
			if dx*dx+dy*dy <= r2 {
				p.Blend(x, y, src)
			}
		}
	}
}
