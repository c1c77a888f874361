package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/quiltlang/quilt/shape"
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent = color.NRGBA{}
)

func TestRender_SquareCoversCanvas(t *testing.T) {
	// The unit square spans [-1, 1], exactly the mapped canvas extent.
	p := Render(shape.Square(), 16, 16)

	for _, pt := range [][2]int{{0, 0}, {8, 8}, {15, 15}} {
		if got := p.At(pt[0], pt[1]); got != white {
			t.Errorf("pixel %v: expected white, got %+v", pt, got)
		}
	}
}

func TestRender_EmptyPaintsNothing(t *testing.T) {
	p := Render(shape.Empty(), 8, 8)

	for y := range 8 {
		for x := range 8 {
			if got := p.At(x, y); got != transparent {
				t.Errorf("pixel (%d,%d): expected transparent, got %+v",
					x, y, got)
			}
		}
	}
}

func TestRender_CircleMissesCorners(t *testing.T) {
	p := Render(shape.Circle(), 16, 16)

	if got := p.At(8, 8); got != white {
		t.Errorf("center: expected white, got %+v", got)
	}

	for _, pt := range [][2]int{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		if got := p.At(pt[0], pt[1]); got != transparent {
			t.Errorf("corner %v: expected transparent, got %+v", pt, got)
		}
	}
}

func TestRender_FillIgnoresTransform(t *testing.T) {
	p := Render(shape.Fill().Translate(100, 100), 8, 8)

	for _, pt := range [][2]int{{0, 0}, {7, 7}} {
		if got := p.At(pt[0], pt[1]); got != white {
			t.Errorf("pixel %v: expected white, got %+v", pt, got)
		}
	}
}

func TestRender_ScaledSquareLeavesMargin(t *testing.T) {
	// Half-size square covers the central [-0.5, 0.5] region only.
	p := Render(shape.Square().Scale(0.5, 0.5), 16, 16)

	if got := p.At(8, 8); got != white {
		t.Errorf("center: expected white, got %+v", got)
	}

	if got := p.At(1, 8); got != transparent {
		t.Errorf("margin: expected transparent, got %+v", got)
	}
}

func TestRender_TranslatedSquare(t *testing.T) {
	// Shift right by one unit: the left half of the canvas stays empty.
	p := Render(shape.Square().Translate(1, 0), 16, 16)

	if got := p.At(12, 8); got != white {
		t.Errorf("right half: expected white, got %+v", got)
	}

	if got := p.At(3, 8); got != transparent {
		t.Errorf("left half: expected transparent, got %+v", got)
	}
}

func TestRender_CompositeLayersInOrder(t *testing.T) {
	red := shape.HSLA{H: 0, S: 1, L: 0.5, A: 1}

	// Red square on top of a white fill: the square wins everywhere.
	p := Render(shape.Compose(shape.Fill(), shape.Square().SetColor(red)), 8, 8)

	expected := color.NRGBA{R: 255, A: 255}
	if got := p.At(4, 4); got != expected {
		t.Errorf("expected red on top, got %+v", got)
	}
}

func TestRender_GroupColorOverridesSubtree(t *testing.T) {
	c := shape.Compose(shape.Square(), shape.Circle())
	c.Color = shape.HSLA{H: 0, S: 1, L: 0.5, A: 1}

	p := Render(c, 8, 8)

	expected := color.NRGBA{R: 255, A: 255}
	if got := p.At(4, 4); got != expected {
		t.Errorf("expected override color, got %+v", got)
	}
}

func TestRender_AlphaBlending(t *testing.T) {
	// A half-transparent black fill over a white fill darkens it evenly.
	back := shape.Fill()
	front := shape.Fill().SetColor(shape.HSLA{A: 0.5})

	p := Render(shape.Compose(back, front), 4, 4)

	got := p.At(2, 2)
	if got.A != 255 {
		t.Fatalf("expected opaque result, got %+v", got)
	}

	if got.R > 135 || got.R < 120 {
		t.Errorf("expected roughly half-darkened channel, got %+v", got)
	}
}

func TestRender_NonSquareCanvas(t *testing.T) {
	// The shorter axis spans [-1, 1]; a unit square leaves the wide margins
	// untouched.
	p := Render(shape.Square(), 32, 16)

	if got := p.At(16, 8); got != white {
		t.Errorf("center: expected white, got %+v", got)
	}

	if got := p.At(2, 8); got != transparent {
		t.Errorf("wide margin: expected transparent, got %+v", got)
	}
}

func TestRender_RotatedSquare(t *testing.T) {
	// Rotating 45 degrees turns the square into a diamond: corners clear,
	// center still covered.
	p := Render(shape.Square().Rotate(45), 32, 32)

	if got := p.At(16, 16); got != white {
		t.Errorf("center: expected white, got %+v", got)
	}

	if got := p.At(1, 1); got != transparent {
		t.Errorf("corner: expected transparent, got %+v", got)
	}
}

func TestPixmap_Blend(t *testing.T) {
	p := NewPixmap(2, 2)

	p.Blend(0, 0, white)

	if got := p.At(0, 0); got != white {
		t.Errorf("expected opaque write, got %+v", got)
	}

	// Out-of-bounds writes are ignored.
	p.Blend(-1, 0, white)
	p.Blend(0, 5, white)

	// Zero alpha leaves the destination untouched.
	p.Blend(0, 0, color.NRGBA{R: 9, A: 0})

	if got := p.At(0, 0); got != white {
		t.Errorf("expected zero-alpha blend to be a no-op, got %+v", got)
	}
}

func TestPixmap_WritePNG(t *testing.T) {
	p := Render(shape.Square(), 8, 8)

	var buf bytes.Buffer
	if err := p.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("expected 8x8 image, got %v", bounds)
	}
}
