package lang

import "log/slog"

var listBuiltins = makeListBuiltins()

func makeListBuiltins() map[string]builtin {
	entries := map[string]builtin{
		"..":      {arity: 2, fn: builtinRange},
		"..=":     {arity: 2, fn: builtinRangeIncl},
		"concat":  {arity: 2, fn: builtinConcat},
		"prepend": {arity: 2, fn: builtinPrepend},
		"append":  {arity: 2, fn: builtinAppend},
		"first":   {arity: 1, fn: builtinFirst},
		"last":    {arity: 1, fn: builtinLast},
		"nth":     {arity: 2, fn: builtinNth},
		"length":  {arity: 1, fn: builtinLength},
		"reverse": {arity: 1, fn: builtinReverse},
	}

	entries["range"] = entries[".."]
	entries["rangei"] = entries["..="]

	return entries
}

// builtinRange produces the half-open sequence [from, to). Float bounds
// produce a float list stepping by one.
func builtinRange(_ *evaluator, args []Value) (Value, error) {
	return makeRange("range", args, 0)
}

// builtinRangeIncl produces the closed sequence [from, to].
func builtinRangeIncl(_ *evaluator, args []Value) (Value, error) {
	return makeRange("rangei", args, 1)
}

// makeRange requires bounds of one numeric kind; the result list carries
// that kind. Mixing an integer bound with a float bound is an error.
func makeRange(name string, args []Value, incl int32) (Value, error) {
	var from, to int32

	var float bool

	switch a := args[0].(type) {
	case Integer:
		b, ok := args[1].(Integer)
		if !ok {
			return nil, invalidType(name, args[1])
		}

		from, to = int32(a), int32(b)
	case Float:
		b, ok := args[1].(Float)
		if !ok {
			return nil, invalidType(name, args[1])
		}

		from, to = int32(a), int32(b)
		float = true
	default:
		return nil, invalidType(name, args[0])
	}

	to += incl

	list := make(List, 0, max(0, int(to-from)))

	for i := from; i < to; i++ {
		if float {
			list = append(list, Float(i))
		} else {
			list = append(list, Integer(i))
		}
	}

	return list, nil
}

func builtinConcat(_ *evaluator, args []Value) (Value, error) {
	a, err := argList("concat", args[0])
	if err != nil {
		return nil, err
	}

	b, err := argList("concat", args[1])
	if err != nil {
		return nil, err
	}

	list := make(List, 0, len(a)+len(b))
	list = append(list, a...)
	list = append(list, b...)

	if _, err := list.Kind(); err != nil {
		return nil, err
	}

	return list, nil
}

func builtinPrepend(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("prepend", args[1])
	if err != nil {
		return nil, err
	}

	out := make(List, 0, len(list)+1)
	out = append(out, args[0])
	out = append(out, list...)

	if _, err := out.Kind(); err != nil {
		return nil, err
	}

	return out, nil
}

func builtinAppend(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("append", args[0])
	if err != nil {
		return nil, err
	}

	out := make(List, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, args[1])

	if _, err := out.Kind(); err != nil {
		return nil, err
	}

	return out, nil
}

func builtinFirst(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("first", args[0])
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, ErrOutOfBounds.With(slog.String("function", "first"))
	}

	return list[0], nil
}

func builtinLast(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("last", args[0])
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, ErrOutOfBounds.With(slog.String("function", "last"))
	}

	return list[len(list)-1], nil
}

func builtinNth(_ *evaluator, args []Value) (Value, error) {
	i, err := argInt("nth", args[0])
	if err != nil {
		return nil, err
	}

	list, err := argList("nth", args[1])
	if err != nil {
		return nil, err
	}

	if i < 0 {
		return nil, ErrNegativeNumber.With(slog.Int("index", int(i)))
	}

	if int(i) >= len(list) {
		return nil, ErrOutOfBounds.With(
			slog.Int("index", int(i)),
			slog.Int("length", len(list)),
		)
	}

	return list[i], nil
}

func builtinLength(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("length", args[0])
	if err != nil {
		return nil, err
	}

	return Integer(len(list)), nil
}

func builtinReverse(_ *evaluator, args []Value) (Value, error) {
	list, err := argList("reverse", args[0])
	if err != nil {
		return nil, err
	}

	out := make(List, len(list))
	for i, v := range list {
		out[len(list)-1-i] = v
	}

	return out, nil
}
