package lang

import "log/slog"

// The rand family draws from the cache's seeded generator and is never
// memoized.
var randBuiltins = map[string]builtin{
	"rand":         {arity: 0, impure: true, fn: builtinRand},
	"randi":        {arity: 0, impure: true, fn: builtinRandi},
	"rand_range":   {arity: 2, impure: true, fn: builtinRandRange},
	"randi_range":  {arity: 2, impure: true, fn: builtinRandiRange},
	"rand_rangei":  {arity: 2, impure: true, fn: builtinRandRangeIncl},
	"randi_rangei": {arity: 2, impure: true, fn: builtinRandiRangeIncl},
	"shuffle":      {arity: 1, impure: true, fn: builtinShuffle},
	"choose":       {arity: 1, impure: true, fn: builtinChoose},
}

func builtinRand(ev *evaluator, _ []Value) (Value, error) {
	return Float(ev.cache.Float32()), nil
}

func builtinRandi(ev *evaluator, _ []Value) (Value, error) {
	if ev.cache.Bool() {
		return Integer(1), nil
	}

	return Integer(0), nil
}

func floatBounds(name string, args []Value) (a, b float32, err error) {
	a, err = argFloat(name, args[0])
	if err != nil {
		return 0, 0, err
	}

	b, err = argFloat(name, args[1])
	if err != nil {
		return 0, 0, err
	}

	if b < a {
		return 0, 0, ErrInvalidArgument.With(
			slog.String("function", name),
			slog.Float64("from", float64(a)),
			slog.Float64("to", float64(b)),
		)
	}

	return a, b, nil
}

func intBounds(name string, args []Value, incl bool) (a, b int32, err error) {
	a, err = argInt(name, args[0])
	if err != nil {
		return 0, 0, err
	}

	b, err = argInt(name, args[1])
	if err != nil {
		return 0, 0, err
	}

	if b < a || (!incl && b == a) {
		return 0, 0, ErrInvalidArgument.With(
			slog.String("function", name),
			slog.Int("from", int(a)),
			slog.Int("to", int(b)),
		)
	}

	return a, b, nil
}

func builtinRandRange(ev *evaluator, args []Value) (Value, error) {
	a, b, err := floatBounds("rand_range", args)
	if err != nil {
		return nil, err
	}

	return Float(ev.cache.FloatRange(a, b)), nil
}

func builtinRandRangeIncl(ev *evaluator, args []Value) (Value, error) {
	a, b, err := floatBounds("rand_rangei", args)
	if err != nil {
		return nil, err
	}

	return Float(ev.cache.FloatRange(a, b)), nil
}

func builtinRandiRange(ev *evaluator, args []Value) (Value, error) {
	a, b, err := intBounds("randi_range", args, false)
	if err != nil {
		return nil, err
	}

	return Integer(ev.cache.IntRange(a, b)), nil
}

func builtinRandiRangeIncl(ev *evaluator, args []Value) (Value, error) {
	a, b, err := intBounds("randi_rangei", args, true)
	if err != nil {
		return nil, err
	}

	return Integer(ev.cache.IntRangeIncl(a, b)), nil
}

func builtinShuffle(ev *evaluator, args []Value) (Value, error) {
	list, err := argList("shuffle", args[0])
	if err != nil {
		return nil, err
	}

	out := make(List, len(list))
	copy(out, list)
	ev.cache.Shuffle(out)

	return out, nil
}

func builtinChoose(ev *evaluator, args []Value) (Value, error) {
	list, err := argList("choose", args[0])
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, ErrOutOfBounds.With(slog.String("function", "choose"))
	}

	return ev.cache.Choose(list), nil
}
