package lang

import (
	"errors"
	"testing"

	"github.com/quiltlang/quilt/shape"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := NewCache(&[32]byte{})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	return cache
}

func TestCache_GetPut(t *testing.T) {
	cache := newTestCache(t)

	if _, ok := cache.Get(42); ok {
		t.Fatalf("expected miss on empty cache")
	}

	cache.Put(42, Integer(7))

	v, ok := cache.Get(42)
	if !ok || v != Integer(7) {
		t.Errorf("expected 7, got %v (hit=%v)", v, ok)
	}
}

func TestCache_SeededDraws(t *testing.T) {
	seed := [32]byte{9, 9, 9}

	a, err := NewCache(&seed)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	b, err := NewCache(&seed)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	for i := range 32 {
		if a.Float32() != b.Float32() {
			t.Fatalf("draw %d diverged between equal seeds", i)
		}
	}
}

func TestCache_FloatRange(t *testing.T) {
	cache := newTestCache(t)

	for range 64 {
		v := cache.FloatRange(-1, 1)
		if v < -1 || v >= 1 {
			t.Fatalf("expected value in [-1, 1), got %v", v)
		}
	}
}

func TestCache_IntRangeIncl(t *testing.T) {
	cache := newTestCache(t)
	seen := map[int32]bool{}

	for range 128 {
		v := cache.IntRangeIncl(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("expected value in [3, 5], got %v", v)
		}

		seen[v] = true
	}

	if len(seen) != 3 {
		t.Errorf("expected all of 3..5 drawn, got %v", seen)
	}
}

func TestCache_WeightedIndex(t *testing.T) {
	cache := newTestCache(t)
	counts := make([]int, 2)

	for range 256 {
		i, err := cache.WeightedIndex([]float32{1, 3})
		if err != nil {
			t.Fatalf("WeightedIndex: %v", err)
		}

		counts[i]++
	}

	if counts[0] == 0 || counts[1] == 0 {
		t.Errorf("expected both branches drawn, got %v", counts)
	}

	if counts[1] <= counts[0] {
		t.Errorf("expected weight 3 to dominate weight 1, got %v", counts)
	}
}

func TestCache_WeightedIndex_ZeroTotal(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.WeightedIndex([]float32{0, 0})
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestCache_MemoizedGlobalIsStable(t *testing.T) {
	// A zero-argument global drawing from the generator is reduced once per
	// reduction; the outer condition settles the cached value, so both
	// references in the inner comparison replay it and must agree.
	src := "m=randi_rangei 0 1000000\n" +
		"root=if m>=0->(if m==m->SQUARE;else->CIRCLE);else->EMPTY"

	for i := range 8 {
		s, err := reduceScript(t, src, WithSeed([32]byte{byte(i)}))
		if err != nil {
			t.Fatalf("seed %d: reduce: %v", i, err)
		}

		if s.Kind != shape.KindSquare {
			t.Fatalf("seed %d: repeated references to a memoized global diverged", i)
		}
	}
}

func TestHashCall_DistinguishesCalls(t *testing.T) {
	base := hashCall("f", 0, []Value{Integer(1)}, nil)

	tests := []struct {
		name string
		key  uint64
	}{
		{"other name", hashCall("g", 0, []Value{Integer(1)}, nil)},
		{"other branch", hashCall("f", 1, []Value{Integer(1)}, nil)},
		{"other argument", hashCall("f", 0, []Value{Integer(2)}, nil)},
		{
			"float is not integer",
			hashCall("f", 0, []Value{Float(1)}, nil),
		},
		{
			"scoped lookup",
			hashCall("f", 0, []Value{Integer(1)}, &scopeTag{name: "g"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key == base {
				t.Errorf("expected distinct key")
			}
		})
	}
}

func TestHashCall_StableAcrossAliases(t *testing.T) {
	// Structurally identical shape graphs built separately must produce the
	// same fingerprint.
	a := shape.Square().Rotate(30).Translate(1, 2)
	b := shape.Square().Rotate(30).Translate(1, 2)

	ka := hashCall("f", 0, []Value{ShapeValue{Shape: a}}, nil)
	kb := hashCall("f", 0, []Value{ShapeValue{Shape: b}}, nil)

	if ka != kb {
		t.Errorf("expected equal keys for identical graphs")
	}
}

func TestHashCall_ListArguments(t *testing.T) {
	a := hashCall("f", 0, []Value{List{Integer(1), Integer(2)}}, nil)
	b := hashCall("f", 0, []Value{List{Integer(2), Integer(1)}}, nil)

	if a == b {
		t.Errorf("expected order-sensitive list fingerprints")
	}
}
