package lang

import (
	"context"
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"literal",
			"root = SQUARE",
			"root=SQUARE",
		},
		{
			"binary",
			"root = 1 + 2 * 3",
			"root=(1+(2*3))",
		},
		{
			"unary",
			"root = -(1 + 2)",
			"root=(neg (1+2))",
		},
		{
			"float keeps decimal point",
			"root = 2.0",
			"root=2.0",
		},
		{
			"hex lowercase",
			"root = #FF8000",
			"root=#ff8000",
		},
		{
			"hex shorthand expands",
			"root = #f80",
			"root=#ff8800",
		},
		{
			"call with arguments",
			"root = ss 2.0 SQUARE",
			"root=(ss 2.0 SQUARE)",
		},
		{
			"zero-argument call stays bare",
			"root = width",
			"root=width",
		},
		{
			"list",
			"root = [1, 2, 3]",
			"root=[1,2,3]",
		},
		{
			"weight",
			"f@3 = SQUARE\nf = CIRCLE\nroot = f",
			"f@3=SQUARE\nf=CIRCLE\nroot=f",
		},
		{
			"fractional weight",
			"f@0.5 = SQUARE\nroot = f",
			"f@0.5=SQUARE\nroot=f",
		},
		{
			"let",
			"root = let a = 1; b = 2 -> a + b",
			"root=let a=1;b=2->(a+b)",
		},
		{
			"nested lets flatten",
			"root = let a = 1 -> let b = 2 -> a + b",
			"root=let a=1;b=2->(a+b)",
		},
		{
			"if",
			"root =\n  if width > 100\n    SQUARE\n  else\n    CIRCLE",
			"root=if (width>100)->SQUARE;else->CIRCLE",
		},
		{
			"match",
			"root =\n  match width\n    100, 200 -> SQUARE\n    _ -> EMPTY",
			"root=match width->100,200->SQUARE;_->EMPTY",
		},
		{
			"for",
			"root = collect (for i in 0..3 -> tx (float i) SQUARE)",
			"root=(collect (for i in (0..3)->(tx (float i) SQUARE)))",
		},
		{
			"loop",
			"root = collect (loop 4 -> SQUARE)",
			"root=(collect (loop 4->SQUARE))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)

			got := Minify(tree)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// Minified output must parse back to an identical tree, so a second minify
// pass is a fixed point.
func TestMinify_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"shape", "root = SQUARE"},
		{"arithmetic", "root = if 3 + 4.0 * 5.0 == 23.0 -> SQUARE; else -> EMPTY"},
		{"transforms", "root = r 45.0 (ss 0.5 (tx 1.0 SQUARE))"},
		{"colors", "root = hsla 120.0 0.5 0.5 0.8 (hex #abc CIRCLE)"},
		{
			"recursion",
			strings.Join([]string{
				"spiral n =",
				"  if n == 0",
				"    EMPTY",
				"  else",
				"    SQUARE : r 15.0 (ss 0.9 (spiral (n - 1)))",
				"root = spiral 8",
			}, "\n"),
		},
		{
			"weighted branches",
			"leaf@2 = SQUARE\nleaf = CIRCLE\nroot = leaf",
		},
		{
			"let and loops",
			strings.Join([]string{
				"row k =",
				"  collect (for i in 0..k -> tx (float i) SQUARE)",
				"root =",
				"  let n = 5 -> collect (loop n -> row n)",
			}, "\n"),
		},
		{
			"match",
			"pick n =\n  match n\n    0 -> SQUARE\n    1, 2 -> CIRCLE\n    _ -> EMPTY\nroot = pick 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Minify(parse(t, tt.src))

			reparsed, err := ParseString(context.Background(), first)
			if err != nil {
				t.Fatalf("reparse %q: %v", first, err)
			}

			second := Minify(reparsed)
			if second != first {
				t.Errorf("round trip diverged:\n first: %q\nsecond: %q",
					first, second)
			}
		})
	}
}
