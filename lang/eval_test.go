package lang

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/quiltlang/quilt/log"
	"github.com/quiltlang/quilt/shape"
)

// reduceValue evaluates a single root expression to its runtime value,
// bypassing the shape requirement Reduce imposes.
func reduceValue(t *testing.T, expr string) (Value, error) {
	t.Helper()

	tree := parse(t, "root="+expr)

	globals, err := buildFunctions(tree)
	if err != nil {
		return nil, err
	}

	cache, err := NewCache(&[32]byte{})
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	ev := &evaluator{
		cache:    cache,
		log:      log.Default(),
		width:    400,
		height:   400,
		maxDepth: DefaultMaxDepth,
	}

	st := &stack{funcs: globals}

	return ev.callFunction(context.Background(), st, globals["root"], nil)
}

// reduceScript reduces a full script with a fixed seed.
func reduceScript(
	t *testing.T, src string, opts ...ReduceOption,
) (*shape.Shape, error) {
	t.Helper()

	tree := parse(t, src)

	opts = append([]ReduceOption{WithSeed([32]byte{})}, opts...)

	return Reduce(context.Background(), tree, opts...)
}

func TestReduce_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{"integer add", "1+2", Integer(3)},
		{"precedence", "2+3*4", Integer(14)},
		{"mixed promotes", "3+4.0*5.0", Float(23)},
		{"integer division truncates", "7/2", Integer(3)},
		{"float division", "7.0/2", Float(3.5)},
		{"modulo", "7%3", Integer(1)},
		{"power is float", "2**3", Float(8)},
		{"negation", "-(1+2)", Integer(-3)},
		{"comparison", "3<4", Boolean(true)},
		{"equality crosses types", "2==2.0", Boolean(true)},
		{"boolean and", "true&&false", Boolean(false)},
		{"boolean or", "true||false", Boolean(true)},
		{"not", "!true", Boolean(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if v != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)",
					tt.expected, tt.expected, v, v)
			}
		})
	}
}

func TestReduce_DivisionByZero(t *testing.T) {
	for _, expr := range []string{"1/0", "1%0"} {
		_, err := reduceValue(t, expr)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s: expected ErrDivisionByZero, got %v", expr, err)
		}
	}
}

func TestReduce_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{"exclusive", "1..4", List{Integer(1), Integer(2), Integer(3)}},
		{"inclusive", "1..=3", List{Integer(1), Integer(2), Integer(3)}},
		{"empty", "3..3", List{}},
		{
			"float bounds carry the kind",
			"1.0..4.0",
			List{Float(1), Float(2), Float(3)},
		},
		{
			"float inclusive",
			"1.0..=3.0",
			List{Float(1), Float(2), Float(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if !reflect.DeepEqual(v, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestReduce_Ranges_MixedBoundsRejected(t *testing.T) {
	for _, expr := range []string{"1..2.0", "1.0..2"} {
		_, err := reduceValue(t, expr)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", expr, err)
		}
	}
}

func TestReduce_ListBuiltins(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{"first", "first [5,6,7]", Integer(5)},
		{"last", "last [5,6,7]", Integer(7)},
		{"nth", "nth 1 [5,6,7]", Integer(6)},
		{"length", "length [5,6,7]", Integer(3)},
		{"reverse", "reverse [1,2]", List{Integer(2), Integer(1)}},
		{"concat", "concat [1] [2]", List{Integer(1), Integer(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if !reflect.DeepEqual(v, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestReduce_ListBuiltins_Errors(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected error
	}{
		{"first of empty", "first []", ErrOutOfBounds},
		{"nth past end", "nth 3 [1,2]", ErrOutOfBounds},
		{"nth negative", "nth -1 [1,2]", ErrNegativeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reduceValue(t, tt.expr)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestReduce_MixedListRejected(t *testing.T) {
	_, err := reduceValue(t, "[1,2.0]")
	if !errors.Is(err, ErrInvalidList) {
		t.Errorf("expected ErrInvalidList, got %v", err)
	}
}

func TestReduce_If(t *testing.T) {
	v, err := reduceValue(t, "if 1<2->10;else->20")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if v != Integer(10) {
		t.Errorf("expected 10, got %v", v)
	}
}

func TestReduce_If_NonBooleanCondition(t *testing.T) {
	_, err := reduceValue(t, "if 1->10;else->20")
	if !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestReduce_Match(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{"literal arm", "match 2->1->10;2->20;_->30", Integer(20)},
		{"pattern list", "match 3->1,3->10;_->20", Integer(10)},
		{"wildcard", "match 9->1->10;_->30", Integer(30)},
		{"membership", "match 2->[1,2,3]->10;_->20", Integer(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if v != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestReduce_Match_NoArmMatches(t *testing.T) {
	_, err := reduceValue(t, "match 9->1->10;2->20")
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestReduce_For_PreservesOrder(t *testing.T) {
	v, err := reduceValue(t, "for i in 1..6->i*10")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	expected := List{
		Integer(10), Integer(20), Integer(30), Integer(40), Integer(50),
	}
	if !reflect.DeepEqual(v, expected) {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestReduce_For_NumericScrutinee(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{
			"integer counts up from zero",
			"for i in 3->i",
			List{Integer(0), Integer(1), Integer(2)},
		},
		{
			"float truncates to a count",
			"for i in 3.9->i",
			List{Integer(0), Integer(1), Integer(2)},
		},
		{"zero is empty", "for i in 0->i", List{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if !reflect.DeepEqual(v, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestReduce_For_NegativeCount(t *testing.T) {
	_, err := reduceValue(t, "for i in (0-2)->i")
	if !errors.Is(err, ErrNegativeNumber) {
		t.Errorf("expected ErrNegativeNumber, got %v", err)
	}
}

func TestReduce_For_NotIterable(t *testing.T) {
	_, err := reduceValue(t, "for i in true->i")
	if !errors.Is(err, ErrNotIterable) {
		t.Errorf("expected ErrNotIterable, got %v", err)
	}
}

func TestReduce_Loop(t *testing.T) {
	v, err := reduceValue(t, "loop 3->7")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	expected := List{Integer(7), Integer(7), Integer(7)}
	if !reflect.DeepEqual(v, expected) {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestReduce_Loop_FloatCount(t *testing.T) {
	v, err := reduceValue(t, "loop 2.9->7")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	expected := List{Integer(7), Integer(7)}
	if !reflect.DeepEqual(v, expected) {
		t.Errorf("expected %v, got %v", expected, v)
	}
}

func TestReduce_Loop_NegativeCount(t *testing.T) {
	_, err := reduceValue(t, "loop (0-2)->7")
	if !errors.Is(err, ErrNegativeNumber) {
		t.Errorf("expected ErrNegativeNumber, got %v", err)
	}
}

func TestReduce_Let(t *testing.T) {
	v, err := reduceValue(t, "let u=2;v=u*3->u+v")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if v != Integer(8) {
		t.Errorf("expected 8, got %v", v)
	}
}

func TestReduce_ColorConstants(t *testing.T) {
	v, err := reduceValue(t, "RED")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if v != (Hex{255, 0, 0}) {
		t.Errorf("expected #ff0000, got %v", v)
	}
}

func TestReduce_CanvasDimensions(t *testing.T) {
	v, err := reduceValue(t, "width*height")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if v != Integer(160000) {
		t.Errorf("expected 160000, got %v", v)
	}
}

func TestReduce_BuiltinArityMismatch(t *testing.T) {
	_, err := reduceValue(t, "sin 1.0 2.0")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReduce_UnknownFunctionSuggestion(t *testing.T) {
	_, err := reduceValue(t, "lenth [1]")
	if !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestReduce_RootNotFound(t *testing.T) {
	_, err := reduceScript(t, "shape=SQUARE")
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestReduce_RootMustBeShape(t *testing.T) {
	_, err := reduceScript(t, "root=5")
	if !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("expected ErrInvalidRoot, got %v", err)
	}
}

func TestReduce_RootShape(t *testing.T) {
	s, err := reduceScript(t, "root=SQUARE")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if s.Kind != shape.KindSquare {
		t.Errorf("expected square, got %v", s.Kind)
	}
}

func TestReduce_Compose(t *testing.T) {
	s, err := reduceScript(t, "root=SQUARE:CIRCLE")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if s.Kind != shape.KindComposite {
		t.Fatalf("expected composite, got %v", s.Kind)
	}

	if s.A.Kind != shape.KindSquare || s.B.Kind != shape.KindCircle {
		t.Errorf("expected square under circle, got %v and %v",
			s.A.Kind, s.B.Kind)
	}
}

func TestReduce_Collect(t *testing.T) {
	s, err := reduceScript(t, "root=collect [SQUARE,CIRCLE,TRIANGLE]")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if s.Kind != shape.KindCollection || len(s.Shapes) != 3 {
		t.Errorf("expected collection of 3, got %v with %d children",
			s.Kind, len(s.Shapes))
	}
}

func TestReduce_Collect_Empty(t *testing.T) {
	_, err := reduceScript(t, "root=collect []")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReduce_TransformApplied(t *testing.T) {
	s, err := reduceScript(t, "root=ss 2.0 SQUARE")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	expected := shape.Scaling(2, 2)
	if s.Transform != expected {
		t.Errorf("expected %+v, got %+v", expected, s.Transform)
	}
}

func TestReduce_ColorApplied(t *testing.T) {
	s, err := reduceScript(t, "root=hsl 120.0 0.5 0.25 SQUARE")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	expected := shape.HSLA{H: 120, S: 0.5, L: 0.25, A: 1}
	if s.Color != expected {
		t.Errorf("expected %+v, got %+v", expected, s.Color)
	}
}

func TestReduce_BuiltinsResolveFirst(t *testing.T) {
	// A local binding can never shadow a builtin name.
	v, err := reduceValue(t, "let width=5->width")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if v != Integer(400) {
		t.Errorf("expected canvas width 400, got %v", v)
	}

	// A parameter named after the scale builtin resolves to the builtin,
	// whose arity its zero-argument use cannot satisfy.
	_, err = reduceScript(t, "pick s=s\nroot=pick SQUARE")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReduce_ParamBinding(t *testing.T) {
	s, err := reduceScript(t, "pick x=x\nroot=pick SQUARE")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if s.Kind != shape.KindSquare {
		t.Errorf("expected square, got %v", s.Kind)
	}
}

func TestReduce_CallerLocalsInvisible(t *testing.T) {
	// A called global body must not see the caller's let bindings.
	_, err := reduceScript(t, "g=x\nroot=let x=SQUARE->g")
	if !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestReduce_UserFunctionArity(t *testing.T) {
	_, err := reduceScript(t, "g n=n\nroot=g SQUARE CIRCLE")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReduce_WeightedBranchParamsMustMatch(t *testing.T) {
	_, err := reduceScript(t, "pick n=n\npick=SQUARE\nroot=pick SQUARE")
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestReduce_MaxDepth(t *testing.T) {
	_, err := reduceScript(t, "g n=g (n+1)\nroot=g 0",
		WithMaxDepth(16))
	if !errors.Is(err, ErrMaxDepthReached) {
		t.Errorf("expected ErrMaxDepthReached, got %v", err)
	}
}

func TestReduce_SeededDeterminism(t *testing.T) {
	src := "root=if (rand)<0.5->hsl (rand_range 0.0 360.0) 0.5 0.5 SQUARE;else->CIRCLE"

	seed := [32]byte{1, 2, 3}

	tree := parse(t, src)

	first, err := Reduce(context.Background(), tree, WithSeed(seed))
	if err != nil {
		t.Fatalf("first reduce: %v", err)
	}

	second, err := Reduce(context.Background(), tree, WithSeed(seed))
	if err != nil {
		t.Fatalf("second reduce: %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("same seed produced different shapes")
	}
}

func TestReduce_DimensionsReported(t *testing.T) {
	s, err := reduceScript(t, "root=if (width==800)&&(height==600)->SQUARE;else->EMPTY",
		WithDimensions(800, 600))
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	if s.Kind != shape.KindSquare {
		t.Errorf("expected width and height builtins to report dimensions")
	}
}

func TestReduce_MathBuiltins(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected Value
	}{
		{"floor float", "floor 2.9", Integer(2)},
		{"floor integer passthrough", "floor 7", Integer(7)},
		{"ceil", "ceil 2.1", Integer(3)},
		{"abs", "abs -3", Integer(3)},
		{"int truncates", "int 2.9", Integer(2)},
		{"float", "float 2", Float(2)},
		{"min", "min 2 5", Integer(2)},
		{"max", "max 2.0 5.0", Float(5)},
		{"sqrt", "sqrt 4.0", Float(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reduceValue(t, tt.expr)
			if err != nil {
				t.Fatalf("reduce %q: %v", tt.expr, err)
			}

			if v != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)",
					tt.expected, tt.expected, v, v)
			}
		})
	}
}

func TestReduce_RandRange(t *testing.T) {
	v, err := reduceValue(t, "loop 32->rand_range 2.0 3.0")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	for _, item := range v.(List) {
		f, ok := item.(Float)
		if !ok || f < 2 || f >= 3 {
			t.Fatalf("expected float in [2, 3), got %v", item)
		}
	}
}

func TestReduce_RandiRangeIncl(t *testing.T) {
	v, err := reduceValue(t, "loop 64->randi_rangei 1 3")
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}

	seen := map[Integer]bool{}

	for _, item := range v.(List) {
		n, ok := item.(Integer)
		if !ok || n < 1 || n > 3 {
			t.Fatalf("expected integer in [1, 3], got %v", item)
		}

		seen[n] = true
	}

	if len(seen) < 2 {
		t.Errorf("expected draws to vary, saw only %v", seen)
	}
}
