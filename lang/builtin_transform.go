package lang

import "github.com/quiltlang/quilt/shape"

var transformBuiltins = makeTransformBuiltins()

func makeTransformBuiltins() map[string]builtin {
	entries := map[string]builtin{
		"translate": {arity: 3, fn: builtinTranslate},
		"translatex": {arity: 2, fn: shapeMod1("translatex",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Translate(n, 0)
			})},
		"translatey": {arity: 2, fn: shapeMod1("translatey",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Translate(0, n)
			})},
		"translateb": {arity: 2, fn: shapeMod1("translateb",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Translate(n, n)
			})},
		"rotate": {arity: 2, fn: shapeMod1("rotate",
			(*shape.Shape).Rotate)},
		"rotate_at": {arity: 4, fn: builtinRotateAt},
		"scale":     {arity: 3, fn: builtinScale},
		"scalex": {arity: 2, fn: shapeMod1("scalex",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Scale(n, 1)
			})},
		"scaley": {arity: 2, fn: shapeMod1("scaley",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Scale(1, n)
			})},
		"scaleb": {arity: 2, fn: shapeMod1("scaleb",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Scale(n, n)
			})},
		"skew": {arity: 3, fn: builtinSkew},
		"skewx": {arity: 2, fn: shapeMod1("skewx",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Skew(n, 0)
			})},
		"skewy": {arity: 2, fn: shapeMod1("skewy",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Skew(0, n)
			})},
		"skewb": {arity: 2, fn: shapeMod1("skewb",
			func(s *shape.Shape, n float32) *shape.Shape {
				return s.Skew(n, n)
			})},
		"flip": {arity: 2, fn: shapeMod1("flip",
			(*shape.Shape).Flip)},
		"fliph": {arity: 1, fn: shapeMod0("fliph", (*shape.Shape).FlipH)},
		"flipv": {arity: 1, fn: shapeMod0("flipv", (*shape.Shape).FlipV)},
		"flipd": {arity: 1, fn: shapeMod0("flipd", (*shape.Shape).FlipD)},
	}

	for alias, name := range map[string]string{
		"t":  "translate",
		"tx": "translatex",
		"ty": "translatey",
		"tt": "translateb",
		"r":  "rotate",
		"ra": "rotate_at",
		"s":  "scale",
		"sx": "scalex",
		"sy": "scaley",
		"ss": "scaleb",
		"k":  "skew",
		"kx": "skewx",
		"ky": "skewy",
		"kk": "skewb",
		"f":  "flip",
		"fh": "fliph",
		"fv": "flipv",
		"fd": "flipd",
	} {
		entries[alias] = entries[name]
	}

	return entries
}

// shapeMod0 lifts a no-argument shape modifier: the shape is the only
// argument.
func shapeMod0(name string, fn func(*shape.Shape) *shape.Shape) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		s, err := argShape(name, args[0])
		if err != nil {
			return nil, err
		}

		return ShapeValue{Shape: fn(s)}, nil
	}
}

// shapeMod1 lifts a one-number shape modifier: the number leads and the
// shape is last.
func shapeMod1(
	name string, fn func(*shape.Shape, float32) *shape.Shape,
) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		n, err := argFloat(name, args[0])
		if err != nil {
			return nil, err
		}

		s, err := argShape(name, args[1])
		if err != nil {
			return nil, err
		}

		return ShapeValue{Shape: fn(s, n)}, nil
	}
}

func builtinTranslate(_ *evaluator, args []Value) (Value, error) {
	tx, err := argFloat("translate", args[0])
	if err != nil {
		return nil, err
	}

	ty, err := argFloat("translate", args[1])
	if err != nil {
		return nil, err
	}

	s, err := argShape("translate", args[2])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: s.Translate(tx, ty)}, nil
}

func builtinRotateAt(_ *evaluator, args []Value) (Value, error) {
	deg, err := argFloat("rotate_at", args[0])
	if err != nil {
		return nil, err
	}

	tx, err := argFloat("rotate_at", args[1])
	if err != nil {
		return nil, err
	}

	ty, err := argFloat("rotate_at", args[2])
	if err != nil {
		return nil, err
	}

	s, err := argShape("rotate_at", args[3])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: s.RotateAt(deg, tx, ty)}, nil
}

func builtinScale(_ *evaluator, args []Value) (Value, error) {
	sx, err := argFloat("scale", args[0])
	if err != nil {
		return nil, err
	}

	sy, err := argFloat("scale", args[1])
	if err != nil {
		return nil, err
	}

	s, err := argShape("scale", args[2])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: s.Scale(sx, sy)}, nil
}

func builtinSkew(_ *evaluator, args []Value) (Value, error) {
	kx, err := argFloat("skew", args[0])
	if err != nil {
		return nil, err
	}

	ky, err := argFloat("skew", args[1])
	if err != nil {
		return nil, err
	}

	s, err := argShape("skew", args[2])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: s.Skew(kx, ky)}, nil
}
