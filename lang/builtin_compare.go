package lang

var compareBuiltins = makeCompareBuiltins()

func makeCompareBuiltins() map[string]builtin {
	entries := map[string]builtin{
		"not": {arity: 1, fn: builtinNot},
		"==":  {arity: 2, fn: equality("eq", false)},
		"!=":  {arity: 2, fn: equality("neq", true)},
		"<": {arity: 2, fn: ordering("lt", func(a, b float32) bool {
			return a < b
		})},
		"<=": {arity: 2, fn: ordering("lte", func(a, b float32) bool {
			return a <= b
		})},
		">": {arity: 2, fn: ordering("gt", func(a, b float32) bool {
			return a > b
		})},
		">=": {arity: 2, fn: ordering("gte", func(a, b float32) bool {
			return a >= b
		})},
		"&&": {arity: 2, fn: builtinAnd},
		"||": {arity: 2, fn: builtinOr},
	}

	for alias, name := range map[string]string{
		"eq":  "==",
		"neq": "!=",
		"lt":  "<",
		"lte": "<=",
		"gt":  ">",
		"gte": ">=",
		"and": "&&",
		"or":  "||",
	} {
		entries[alias] = entries[name]
	}

	return entries
}

func builtinNot(_ *evaluator, args []Value) (Value, error) {
	b, err := argBool("not", args[0])
	if err != nil {
		return nil, err
	}

	return Boolean(!b), nil
}

// equality compares values of matching kinds, crossing integers and floats
// numerically. Shapes have no defined equality in scripts.
func equality(name string, negate bool) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		eq, err := valueEqual(name, args[0], args[1])
		if err != nil {
			return nil, err
		}

		return Boolean(eq != negate), nil
	}
}

func valueEqual(name string, a, b Value) (bool, error) {
	switch av := a.(type) {
	case Integer:
		switch bv := b.(type) {
		case Integer:
			return av == bv, nil
		case Float:
			return float32(av) == float32(bv), nil
		}
	case Float:
		switch bv := b.(type) {
		case Float:
			return av == bv, nil
		case Integer:
			return float32(av) == float32(bv), nil
		}
	case Boolean:
		if bv, ok := b.(Boolean); ok {
			return av == bv, nil
		}
	case Hex:
		if bv, ok := b.(Hex); ok {
			return av == bv, nil
		}
	}

	return false, invalidType(name, a)
}

func ordering(name string, cmp func(a, b float32) bool) builtinFunc {
	return func(_ *evaluator, args []Value) (Value, error) {
		a, err := argFloat(name, args[0])
		if err != nil {
			return nil, err
		}

		b, err := argFloat(name, args[1])
		if err != nil {
			return nil, err
		}

		return Boolean(cmp(a, b)), nil
	}
}

func builtinAnd(_ *evaluator, args []Value) (Value, error) {
	a, err := argBool("and", args[0])
	if err != nil {
		return nil, err
	}

	b, err := argBool("and", args[1])
	if err != nil {
		return nil, err
	}

	return Boolean(a && b), nil
}

func builtinOr(_ *evaluator, args []Value) (Value, error) {
	a, err := argBool("or", args[0])
	if err != nil {
		return nil, err
	}

	b, err := argBool("or", args[1])
	if err != nil {
		return nil, err
	}

	return Boolean(a || b), nil
}
