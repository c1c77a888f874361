package lang

import (
	"log/slog"
	"math"
)

var mathBuiltins = makeMathBuiltins()

func makeMathBuiltins() map[string]builtin {
	entries := map[string]builtin{
		"neg":      {arity: 1, fn: builtinNeg},
		"+":        {arity: 2, fn: builtinAdd},
		"-":        {arity: 2, fn: builtinSub},
		"*":        {arity: 2, fn: builtinMul},
		"/":        {arity: 2, fn: builtinDiv},
		"%":        {arity: 2, fn: builtinMod},
		"**":       {arity: 2, fn: builtinPow},
		"bitand":   {arity: 2, fn: bitwise("bitand", func(a, b int32) int32 { return a & b })},
		"bitor":    {arity: 2, fn: bitwise("bitor", func(a, b int32) int32 { return a | b })},
		"bitxor":   {arity: 2, fn: bitwise("bitxor", func(a, b int32) int32 { return a ^ b })},
		"bitleft":  {arity: 2, fn: bitwise("bitleft", func(a, b int32) int32 { return a << b })},
		"bitright": {arity: 2, fn: bitwise("bitright", func(a, b int32) int32 { return a >> b })},
		"pi":       {arity: 0, fn: constant(math.Pi)},
		"tau":      {arity: 0, fn: constant(2 * math.Pi)},
		"e":        {arity: 0, fn: constant(math.E)},
		"phi":      {arity: 0, fn: constant(math.Phi)},
		"int":      {arity: 1, fn: builtinInt},
		"float":    {arity: 1, fn: builtinFloat},
		"deg_to_rad": {arity: 1, fn: mapFloat("deg_to_rad", func(n float64) float64 {
			return n * math.Pi / 180
		})},
		"rad_to_deg": {arity: 1, fn: mapFloat("rad_to_deg", func(n float64) float64 {
			return n * 180 / math.Pi
		})},
		"sin":   {arity: 1, fn: mapFloat("sin", math.Sin)},
		"cos":   {arity: 1, fn: mapFloat("cos", math.Cos)},
		"tan":   {arity: 1, fn: mapFloat("tan", math.Tan)},
		"asin":  {arity: 1, fn: mapFloat("asin", math.Asin)},
		"acos":  {arity: 1, fn: mapFloat("acos", math.Acos)},
		"atan":  {arity: 1, fn: mapFloat("atan", math.Atan)},
		"atan2": {arity: 2, fn: builtinAtan2},
		"sinh":  {arity: 1, fn: mapFloat("sinh", math.Sinh)},
		"cosh":  {arity: 1, fn: mapFloat("cosh", math.Cosh)},
		"tanh":  {arity: 1, fn: mapFloat("tanh", math.Tanh)},
		"asinh": {arity: 1, fn: mapFloat("asinh", math.Asinh)},
		"acosh": {arity: 1, fn: mapFloat("acosh", math.Acosh)},
		"atanh": {arity: 1, fn: mapFloat("atanh", math.Atanh)},
		"ln":    {arity: 1, fn: mapFloat("ln", math.Log)},
		"log10": {arity: 1, fn: mapFloat("log10", math.Log10)},
		"log":   {arity: 2, fn: builtinLog},
		"sqrt":  {arity: 1, fn: mapFloat("sqrt", math.Sqrt)},
		"floor": {arity: 1, fn: builtinFloor},
		"ceil":  {arity: 1, fn: builtinCeil},
		"abs":   {arity: 1, fn: builtinAbs},
		"min":   {arity: 2, fn: builtinMin},
		"max":   {arity: 2, fn: builtinMax},
	}

	for alias, name := range map[string]string{
		"add": "+",
		"sub": "-",
		"mul": "*",
		"div": "/",
		"mod": "%",
		"pow": "**",
		"π":   "pi",
		"τ":   "tau",
		"φ":   "phi",
	} {
		entries[alias] = entries[name]
	}

	return entries
}

// constant returns a zero-argument builtin producing a fixed float.
func constant(v float64) builtinFunc {
	return func(*evaluator, []Value) (Value, error) {
		return Float(v), nil
	}
}

// mapFloat lifts a float function over either numeric kind, always
// producing a float.
func mapFloat(name string, fn func(float64) float64) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		n, err := argFloat(name, args[0])
		if err != nil {
			return nil, err
		}

		return Float(fn(float64(n))), nil
	}
}

// bitwise lifts an integer operator over numeric arguments, truncating
// floats to integers on both sides.
func bitwise(name string, fn func(a, b int32) int32) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		a, err := argInt(name, args[0])
		if err != nil {
			return nil, err
		}

		b, err := argInt(name, args[1])
		if err != nil {
			return nil, err
		}

		return Integer(fn(a, b)), nil
	}
}

func builtinNeg(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		return -v, nil
	case Float:
		return -v, nil
	default:
		return nil, invalidType("neg", v)
	}
}

// Arithmetic stays integral only when both operands are integers.
func builtinAdd(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		return a + b, nil
	}

	a, b, err := bothFloat("add", args)
	if err != nil {
		return nil, err
	}

	return a + b, nil
}

func builtinSub(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		return a - b, nil
	}

	a, b, err := bothFloat("sub", args)
	if err != nil {
		return nil, err
	}

	return a - b, nil
}

func builtinMul(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		return a * b, nil
	}

	a, b, err := bothFloat("mul", args)
	if err != nil {
		return nil, err
	}

	return a * b, nil
}

func builtinDiv(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		if b == 0 {
			return nil, ErrDivisionByZero.With(slog.Int("dividend", int(a)))
		}

		return a / b, nil
	}

	a, b, err := bothFloat("div", args)
	if err != nil {
		return nil, err
	}

	if b == 0 {
		return nil, ErrDivisionByZero
	}

	return a / b, nil
}

func builtinMod(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		if b == 0 {
			return nil, ErrDivisionByZero.With(slog.Int("dividend", int(a)))
		}

		return a % b, nil
	}

	a, b, err := bothFloat("mod", args)
	if err != nil {
		return nil, err
	}

	if b == 0 {
		return nil, ErrDivisionByZero
	}

	return Float(math.Mod(float64(a), float64(b))), nil
}

// Exponentiation is always floating point, even between integers.
func builtinPow(_ *evaluator, args []Value) (Value, error) {
	a, err := argFloat("pow", args[0])
	if err != nil {
		return nil, err
	}

	b, err := argFloat("pow", args[1])
	if err != nil {
		return nil, err
	}

	return Float(math.Pow(float64(a), float64(b))), nil
}

func builtinAtan2(_ *evaluator, args []Value) (Value, error) {
	y, err := argFloat("atan2", args[0])
	if err != nil {
		return nil, err
	}

	x, err := argFloat("atan2", args[1])
	if err != nil {
		return nil, err
	}

	return Float(math.Atan2(float64(y), float64(x))), nil
}

func builtinLog(_ *evaluator, args []Value) (Value, error) {
	n, err := argFloat("log", args[0])
	if err != nil {
		return nil, err
	}

	base, err := argFloat("log", args[1])
	if err != nil {
		return nil, err
	}

	return Float(math.Log(float64(n)) / math.Log(float64(base))), nil
}

func builtinInt(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		return v, nil
	case Float:
		return Integer(v), nil
	default:
		return nil, invalidType("int", v)
	}
}

func builtinFloat(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		return Float(v), nil
	case Float:
		return v, nil
	default:
		return nil, invalidType("float", v)
	}
}

func builtinFloor(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		return v, nil
	case Float:
		return Integer(math.Floor(float64(v))), nil
	default:
		return nil, invalidType("floor", v)
	}
}

func builtinCeil(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		return v, nil
	case Float:
		return Integer(math.Ceil(float64(v))), nil
	default:
		return nil, invalidType("ceil", v)
	}
}

func builtinAbs(_ *evaluator, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case Integer:
		if v < 0 {
			return -v, nil
		}

		return v, nil
	case Float:
		return Float(math.Abs(float64(v))), nil
	default:
		return nil, invalidType("abs", v)
	}
}

func builtinMin(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		return min(a, b), nil
	}

	a, b, err := bothFloat("min", args)
	if err != nil {
		return nil, err
	}

	return min(a, b), nil
}

func builtinMax(_ *evaluator, args []Value) (Value, error) {
	if a, b, ok := bothInt(args); ok {
		return max(a, b), nil
	}

	a, b, err := bothFloat("max", args)
	if err != nil {
		return nil, err
	}

	return max(a, b), nil
}

func bothInt(args []Value) (a, b Integer, ok bool) {
	a, aok := args[0].(Integer)
	b, bok := args[1].(Integer)

	return a, b, aok && bok
}

func bothFloat(name string, args []Value) (a, b Float, err error) {
	af, err := argFloat(name, args[0])
	if err != nil {
		return 0, 0, err
	}

	bf, err := argFloat(name, args[1])
	if err != nil {
		return 0, 0, err
	}

	return Float(af), Float(bf), nil
}
