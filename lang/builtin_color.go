package lang

import "github.com/quiltlang/quilt/shape"

var colorBuiltins = makeColorBuiltins()

func makeColorBuiltins() map[string]builtin {
	entries := map[string]builtin{
		"hsl":  {arity: 4, fn: builtinHSL},
		"hsla": {arity: 5, fn: builtinHSLA},
		"hue": {arity: 2, fn: shapeMod1("hue",
			(*shape.Shape).SetHue)},
		"saturation": {arity: 2, fn: shapeMod1("saturation",
			(*shape.Shape).SetSaturation)},
		"lightness": {arity: 2, fn: shapeMod1("lightness",
			(*shape.Shape).SetLightness)},
		"alpha": {arity: 2, fn: shapeMod1("alpha",
			(*shape.Shape).SetAlpha)},
		"hshift": {arity: 2, fn: shapeMod1("hshift",
			(*shape.Shape).ShiftHue)},
		"sshift": {arity: 2, fn: shapeMod1("sshift",
			(*shape.Shape).ShiftSaturation)},
		"lshift": {arity: 2, fn: shapeMod1("lshift",
			(*shape.Shape).ShiftLightness)},
		"ashift": {arity: 2, fn: shapeMod1("ashift",
			(*shape.Shape).ShiftAlpha)},
		"hex": {arity: 2, fn: builtinHex},
	}

	for alias, name := range map[string]string{
		"h":        "hue",
		"sat":      "saturation",
		"satshift": "sshift",
		"l":        "lightness",
		"a":        "alpha",
	} {
		entries[alias] = entries[name]
	}

	return entries
}

func builtinHSL(_ *evaluator, args []Value) (Value, error) {
	h, err := argFloat("hsl", args[0])
	if err != nil {
		return nil, err
	}

	sat, err := argFloat("hsl", args[1])
	if err != nil {
		return nil, err
	}

	l, err := argFloat("hsl", args[2])
	if err != nil {
		return nil, err
	}

	s, err := argShape("hsl", args[3])
	if err != nil {
		return nil, err
	}

	return ShapeValue{Shape: s.SetHSL(h, sat, l)}, nil
}

func builtinHSLA(_ *evaluator, args []Value) (Value, error) {
	h, err := argFloat("hsla", args[0])
	if err != nil {
		return nil, err
	}

	sat, err := argFloat("hsla", args[1])
	if err != nil {
		return nil, err
	}

	l, err := argFloat("hsla", args[2])
	if err != nil {
		return nil, err
	}

	a, err := argFloat("hsla", args[3])
	if err != nil {
		return nil, err
	}

	s, err := argShape("hsla", args[4])
	if err != nil {
		return nil, err
	}

	return ShapeValue{
		Shape: s.SetColor(shape.HSLA{H: h, S: sat, L: l, A: a}),
	}, nil
}

// builtinHex recolors a shape from an RGB hex value.
func builtinHex(_ *evaluator, args []Value) (Value, error) {
	hex, ok := args[0].(Hex)
	if !ok {
		return nil, invalidType("hex", args[0])
	}

	s, err := argShape("hex", args[1])
	if err != nil {
		return nil, err
	}

	return ShapeValue{
		Shape: s.SetColor(shape.FromHex(hex[0], hex[1], hex[2])),
	}, nil
}
