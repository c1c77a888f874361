package lang

import (
	"context"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"literal",
			"root=SQUARE",
			"root = SQUARE\n",
		},
		{
			"operators spaced without parentheses",
			"root=1+2*3",
			"root = 1 + 2 * 3\n",
		},
		{
			"parentheses kept where binding demands",
			"root=(1+2)*3",
			"root = (1 + 2) * 3\n",
		},
		{
			"right operand of equal strength",
			"root=10-(2-3)",
			"root = 10 - (2 - 3)\n",
		},
		{
			"unary",
			"root=-(1+2)",
			"root = -(1 + 2)\n",
		},
		{
			"ranges stay tight",
			"root=[1..4]",
			"root = [1..4]\n",
		},
		{
			"call arguments",
			"root=r 45.0 (ss 0.5 SQUARE)",
			"root = r 45.0 (ss 0.5 SQUARE)\n",
		},
		{
			"list",
			"root=[1,2,3]",
			"root = [1, 2, 3]\n",
		},
		{
			"weight",
			"f@3=SQUARE\nf=CIRCLE\nroot=f",
			"f@3 = SQUARE\n\nf = CIRCLE\n\nroot = f\n",
		},
		{
			"let stays inline",
			"root=let a=1;b=2->a+b",
			"root =\n  let a = 1; b = 2 -> a + b\n",
		},
		{
			"if expands",
			"root=if width>100->SQUARE;else->CIRCLE",
			strings.Join([]string{
				"root =",
				"  if width > 100",
				"    SQUARE",
				"  else",
				"    CIRCLE",
				"",
			}, "\n"),
		},
		{
			"else-if chains on one line",
			"root=if a->1;else if b->2;else->3",
			strings.Join([]string{
				"root =",
				"  if a",
				"    1",
				"  else if b",
				"    2",
				"  else",
				"    3",
				"",
			}, "\n"),
		},
		{
			"match arms",
			"root=match width->100,200->SQUARE;_->EMPTY",
			strings.Join([]string{
				"root =",
				"  match width",
				"    100, 200 -> SQUARE",
				"    _ -> EMPTY",
				"",
			}, "\n"),
		},
		{
			"for loop",
			"root=for i in 0..3->i",
			"root =\n  for i in 0..3\n    i\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)

			got := Format(tree, 2)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// Formatted output must parse back to an identical tree, so formatting a
// second time is a fixed point.
func TestFormat_RoundTrip(t *testing.T) {
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
			"nested lets",
			"root = let a = 1 -> let b = 2 -> a + b",
		},
		{
			"match",
			"pick n =\n  match n\n    0 -> SQUARE\n    1, 2 -> CIRCLE\n    _ -> EMPTY\nroot = pick 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)

			first := Format(tree, 2)

			reparsed, err := ParseString(context.Background(), first)
			if err != nil {
				t.Fatalf("reparse %q: %v", first, err)
			}

			second := Format(reparsed, 2)
			if second != first {
				t.Errorf("round trip diverged:\n first: %q\nsecond: %q",
					first, second)
			}

			// The reparsed tree must match the original, not merely format
			// the same.
			if Minify(reparsed) != Minify(tree) {
				t.Errorf("reparsed tree diverged from source tree")
			}
		})
	}
}

func TestFormat_IndentWidth(t *testing.T) {
	tree := parse(t, "root=if a->1;else->2")

	got := Format(tree, 4)
	expected := "root =\n    if a\n        1\n    else\n        2\n"

	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
