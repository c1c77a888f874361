package lang

import (
	"log/slog"

	"github.com/quiltlang/quilt/shape"
)

var shapeBuiltins = makeShapeBuiltins()

func makeShapeBuiltins() map[string]builtin {
	entries := map[string]builtin{
		":":       {arity: 2, fn: builtinCompose},
		"collect": {arity: 1, fn: builtinCollect},
	}

	entries["compose"] = entries[":"]

	return entries
}

// builtinCompose layers the second shape over the first.
func builtinCompose(_ *evaluator, args []Value) (Value, error) {
	a, err := argShape("compose", args[0])
	if err != nil {
		return nil, err
	}

	b, err := argShape("compose", args[1])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: shape.Compose(a, b)}, nil
}

// builtinCollect turns a non-empty list of shapes into one collection,
// layered first to last.
func builtinCollect(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("collect", args[0])
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, ErrInvalidArgument.With(
			slog.String("function", "collect"),
			slog.String("reason", "cannot collect zero shapes"),
		)
	}

	shapes := make([]*shape.Shape, len(list))

	for i, v := range list {
		sv, ok := v.(ShapeValue)
		if !ok {
			return nil, invalidType("collect", v)
		}

		shapes[i] = sv.Shape
	}

	return ShapeValue{Shape: shape.Collect(shapes)}, nil
}
