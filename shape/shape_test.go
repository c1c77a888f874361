package shape

import (
	"math"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		shape    *Shape
		expected Kind
	}{
		{"square", Square(), KindSquare},
		{"circle", Circle(), KindCircle},
		{"triangle", Triangle(), KindTriangle},
		{"fill", Fill(), KindFill},
		{"empty", Empty(), KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shape.Kind != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.shape.Kind)
			}

			if !tt.shape.Transform.IsIdentity() {
				t.Errorf("expected identity transform, got %+v",
					tt.shape.Transform)
			}
		})
	}
}

func TestModifiersDoNotMutate(t *testing.T) {
	s := Square()

	_ = s.Translate(3, 4).Rotate(90).SetHue(120)

	if !s.Equal(Square()) {
		t.Errorf("modifier mutated the original shape: %+v", s)
	}
}

func TestTranslate(t *testing.T) {
	s := Square().Translate(3, 4)

	if s.Transform.TX != 3 || s.Transform.TY != 4 {
		t.Errorf("expected translation (3, 4), got %+v", s.Transform)
	}
}

func TestFillAndEmptyIgnoreTransforms(t *testing.T) {
	for _, s := range []*Shape{Fill(), Empty()} {
		moved := s.Translate(5, 5).Scale(2, 2)
		if !moved.Transform.IsIdentity() {
			t.Errorf("%v: expected transforms ignored, got %+v",
				s.Kind, moved.Transform)
		}
	}
}

func TestCompose(t *testing.T) {
	c := Compose(Square(), Circle())

	if c.Kind != KindComposite {
		t.Fatalf("expected composite, got %v", c.Kind)
	}

	if c.A.Kind != KindSquare || c.B.Kind != KindCircle {
		t.Errorf("expected square under circle")
	}

	if c.Color != Transparent {
		t.Errorf("expected transparent grouping color, got %+v", c.Color)
	}
}

func TestSetColorRecursesIntoGroups(t *testing.T) {
	c := Compose(Square(), Collect([]*Shape{Circle(), Triangle()}))

	red := HSLA{H: 0, S: 1, L: 0.5, A: 1}
	colored := c.SetColor(red)

	if colored.A.Color != red {
		t.Errorf("expected recolored composite child, got %+v",
			colored.A.Color)
	}

	for i, child := range colored.B.Shapes {
		if child.Color != red {
			t.Errorf("collection child %d: expected %+v, got %+v",
				i, red, child.Color)
		}
	}

	// Originals untouched.
	if c.A.Color != White {
		t.Errorf("SetColor mutated original child: %+v", c.A.Color)
	}
}

func TestShiftHue(t *testing.T) {
	s := Square().SetHue(100).ShiftHue(30)

	if s.Color.H != 130 {
		t.Errorf("expected hue 130, got %v", s.Color.H)
	}
}

func TestFlipH(t *testing.T) {
	s := Square().FlipH()

	x, y := s.Transform.Apply(1, 1)
	if x != -1 || y != 1 {
		t.Errorf("expected (1,1) to map to (-1,1), got (%v,%v)", x, y)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Shape
		expected bool
	}{
		{"same square", Square(), Square(), true},
		{"different kinds", Square(), Circle(), false},
		{
			"different transforms",
			Square().Rotate(10), Square().Rotate(20),
			false,
		},
		{
			"equal graphs",
			Compose(Square(), Circle()), Compose(Square(), Circle()),
			true,
		},
		{
			"different children",
			Compose(Square(), Circle()), Compose(Circle(), Square()),
			false,
		},
		{"nil", Square(), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestTransform_Apply(t *testing.T) {
	tests := []struct {
		name         string
		tr           Transform
		x, y         float32
		wantX, wantY float32
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translation(1, 2), 3, 4, 4, 6},
		{"scale", Scaling(2, 3), 3, 4, 6, 12},
		{"rotate 90", Rotation(90), 1, 0, 0, 1},
		{"skew x", Skewing(1, 0), 1, 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.tr.Apply(tt.x, tt.y)
			if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
				t.Errorf("expected (%v,%v), got (%v,%v)",
					tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestTransform_Invert(t *testing.T) {
	tr := Scaling(2, 3).PostRotate(30).PostTranslate(5, -1)

	inv, ok := tr.Invert()
	if !ok {
		t.Fatalf("expected invertible transform")
	}

	x, y := tr.Apply(1.5, -2.5)
	bx, by := inv.Apply(x, y)

	if !approx(bx, 1.5) || !approx(by, -2.5) {
		t.Errorf("expected round trip to (1.5,-2.5), got (%v,%v)", bx, by)
	}
}

func TestTransform_Invert_Singular(t *testing.T) {
	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Errorf("expected singular transform to fail")
	}
}

func TestTransform_PostConcatOrder(t *testing.T) {
	// Scale then translate: the translation must not be scaled.
	tr := Scaling(2, 2).PostTranslate(10, 0)

	x, _ := tr.Apply(1, 0)
	if !approx(x, 12) {
		t.Errorf("expected 12, got %v", x)
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected HSLA
	}{
		{"red", 255, 0, 0, HSLA{H: 0, S: 1, L: 0.5, A: 1}},
		{"black", 0, 0, 0, HSLA{H: 0, S: 0, L: 0, A: 1}},
		{"white", 255, 255, 255, HSLA{H: 0, S: 0, L: 1, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromHex(tt.r, tt.g, tt.b)
			if !approx(c.H, tt.expected.H) || !approx(c.S, tt.expected.S) ||
				!approx(c.L, tt.expected.L) || c.A != 1 {
				t.Errorf("expected %+v, got %+v", tt.expected, c)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected [3]uint8
	}{
		{"full", "ff8000", [3]uint8{0xff, 0x80, 0x00}},
		{"shorthand expands nibbles", "f80", [3]uint8{0xff, 0x88, 0x00}},
		{"mixed case", "AbCdEf", [3]uint8{0xab, 0xcd, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}

			if rgb != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, rgb)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "ff", "ffff", "ggg"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}

func TestHSLA_NRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          HSLA
		r, g, b, a uint8
	}{
		{"white", White, 255, 255, 255, 255},
		{"red", HSLA{H: 0, S: 1, L: 0.5, A: 1}, 255, 0, 0, 255},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half alpha black", HSLA{A: 0.5}, 0, 0, 0, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.NRGBA()
			if got.R != tt.r || got.G != tt.g ||
				got.B != tt.b || got.A != tt.a {
				t.Errorf("expected (%d,%d,%d,%d), got %+v",
					tt.r, tt.g, tt.b, tt.a, got)
			}
		})
	}
}

func TestColors_Table(t *testing.T) {
	if len(Colors) != 148 {
		t.Errorf("expected 148 named colors, got %d", len(Colors))
	}

	if Colors["RED"] != [3]uint8{255, 0, 0} {
		t.Errorf("expected RED to be #ff0000, got %v", Colors["RED"])
	}
}
