package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Pixmap is the render target: a straight-alpha RGBA raster with source-over
// compositing.
type Pixmap struct {
	img    *image.NRGBA
	width  int
	height int
}

// NewPixmap returns a fully transparent pixmap of the given size.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Image returns the backing image.
func (p *Pixmap) Image() *image.NRGBA { return p.img }

// At returns the straight-alpha color at (x, y).
func (p *Pixmap) At(x, y int) color.NRGBA {
	return p.img.NRGBAAt(x, y)
}

// Blend composites src over the pixel at (x, y). Pixels outside the canvas
// are ignored.
func (p *Pixmap) Blend(x, y int, src color.NRGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height || src.A == 0 {
		return
	}

	if src.A == 0xff {
		p.img.SetNRGBA(x, y, src)

		return
	}

	dst := p.img.NRGBAAt(x, y)

	sa := uint32(src.A)
	da := uint32(dst.A) * (0xff - sa) / 0xff

	outA := sa + da
	if outA == 0 {
		p.img.SetNRGBA(x, y, color.NRGBA{})

		return
	}

	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*da) / outA)
	}

	p.img.SetNRGBA(x, y, color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(outA),
	})
}

// WritePNG encodes the pixmap as PNG.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}
