package lang

import (
	"log/slog"

	"github.com/quiltlang/quilt/shape"
)

// builtinFunc implements one builtin. Arity is checked by the caller, so
// implementations index args directly.
type builtinFunc func(ev *evaluator, args []Value) (Value, error)

type builtin struct {
	fn     builtinFunc
	arity  int
	impure bool
}

// builtins is the full dispatch table. Operator spellings and their named
// aliases share one entry. Built as a package variable so initialization is
// dependency ordered and every per-file table is populated before the merge.
var builtins = makeBuiltins()

func makeBuiltins() map[string]builtin {
	merged := map[string]builtin{}

	for _, table := range []map[string]builtin{
		mathBuiltins,
		compareBuiltins,
		listBuiltins,
		randBuiltins,
		shapeBuiltins,
		transformBuiltins,
		colorBuiltins,
	} {
		for name, b := range table {
			merged[name] = b
		}
	}

	merged["width"] = builtin{arity: 0, fn: builtinWidth}
	merged["height"] = builtin{arity: 0, fn: builtinHeight}

	// Named colors are zero-argument builtins producing hex values.
	for name, rgb := range shape.Colors {
		merged[name] = builtin{arity: 0, fn: colorConstant(rgb)}
	}

	return merged
}

func builtinWidth(ev *evaluator, _ []Value) (Value, error) {
	return Integer(ev.width), nil
}

func builtinHeight(ev *evaluator, _ []Value) (Value, error) {
	return Integer(ev.height), nil
}

func colorConstant(rgb [3]uint8) builtinFunc {
	return func(*evaluator, []Value) (Value, error) {
		return Hex(rgb), nil
	}
}

// invalidType builds the error for an argument of the wrong kind.
func invalidType(name string, v Value) error {
	kind, err := v.Kind()
	if err != nil {
		return err
	}

	return ErrInvalidArgument.With(
		slog.String("function", name),
		slog.String("have", kind.String()),
	)
}

// argFloat coerces a numeric argument to a float.
func argFloat(name string, v Value) (float32, error) {
	switch v := v.(type) {
	case Integer:
		return float32(v), nil
	case Float:
		return float32(v), nil
	default:
		return 0, invalidType(name, v)
	}
}

// argInt coerces a numeric argument to an integer, truncating floats.
func argInt(name string, v Value) (int32, error) {
	switch v := v.(type) {
	case Integer:
		return int32(v), nil
	case Float:
		return int32(v), nil
	default:
		return 0, invalidType(name, v)
	}
}

func argBool(name string, v Value) (bool, error) {
	b, ok := v.(Boolean)
	if !ok {
		return false, invalidType(name, v)
	}

	return bool(b), nil
}

func argShape(name string, v Value) (*shape.Shape, error) {
	s, ok := v.(ShapeValue)
	if !ok {
		return nil, invalidType(name, v)
	}

	return s.Shape, nil
}

func argList(name string, v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, invalidType(name, v)
	}

	return l, nil
}
