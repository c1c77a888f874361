package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/quiltlang/quilt/shape"
)

// Value is the runtime type produced by reducing an expression.
type Value interface {
	// Kind returns the value's type, validating list homogeneity.
	Kind() (ValueKind, error)

	String() string

	valueNode()
}

// BaseKind enumerates the scalar and aggregate value types.
type BaseKind uint8

const (
	KindInteger BaseKind = iota
	KindFloat
	KindBoolean
	KindHex
	KindShape
	KindList
)

func (k BaseKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindHex:
		return "hex"
	case KindShape:
		return "shape"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ValueKind is a possibly nested value type. Elem is set only for lists and
// is nil for an empty list, which is compatible with any element type.
type ValueKind struct {
	Elem *ValueKind
	Base BaseKind
}

// Equal reports whether two kinds describe the same type. An empty list's
// unknown element type matches any list.
func (k ValueKind) Equal(o ValueKind) bool {
	if k.Base != o.Base {
		return false
	}

	if k.Base != KindList || k.Elem == nil || o.Elem == nil {
		return true
	}

	return k.Elem.Equal(*o.Elem)
}

func (k ValueKind) String() string {
	if k.Base == KindList && k.Elem != nil {
		return "list of " + k.Elem.String()
	}

	return k.Base.String()
}

// Integer is a 32-bit signed integer value.
type Integer int32

// Float is a 32-bit floating point value.
type Float float32

// Boolean is a true/false value.
type Boolean bool

// Hex is an RGB color triple produced by hex literals and color names.
type Hex [3]uint8

// ShapeValue wraps a shape graph node.
type ShapeValue struct {
	Shape *shape.Shape
}

// List is an ordered homogeneous collection of values.
type List []Value

func (Integer) valueNode()    {}
func (Float) valueNode()      {}
func (Boolean) valueNode()    {}
func (Hex) valueNode()        {}
func (ShapeValue) valueNode() {}
func (List) valueNode()       {}

// Kind implements Value.
func (Integer) Kind() (ValueKind, error) {
	return ValueKind{Base: KindInteger}, nil
}

// Kind implements Value.
func (Float) Kind() (ValueKind, error) {
	return ValueKind{Base: KindFloat}, nil
}

// Kind implements Value.
func (Boolean) Kind() (ValueKind, error) {
	return ValueKind{Base: KindBoolean}, nil
}

// Kind implements Value.
func (Hex) Kind() (ValueKind, error) {
	return ValueKind{Base: KindHex}, nil
}

// Kind implements Value.
func (ShapeValue) Kind() (ValueKind, error) {
	return ValueKind{Base: KindShape}, nil
}

// Kind implements Value. All elements must agree on a single kind,
// recursively for nested lists.
func (l List) Kind() (ValueKind, error) {
	if len(l) == 0 {
		return ValueKind{Base: KindList}, nil
	}

	elem, err := l[0].Kind()
	if err != nil {
		return ValueKind{}, err
	}

	for _, v := range l[1:] {
		k, err := v.Kind()
		if err != nil {
			return ValueKind{}, err
		}

		if !k.Equal(elem) {
			return ValueKind{}, ErrInvalidList.With(
				slog.String("want", elem.String()),
				slog.String("have", k.String()),
			)
		}
	}

	return ValueKind{Base: KindList, Elem: &elem}, nil
}

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Float) String() string { return formatFloat(float32(v)) }

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (v Hex) String() string {
	return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2])
}

func (v ShapeValue) String() string { return v.Shape.Kind.String() }

func (l List) String() string {
	elems := make([]string, len(l))
	for i, v := range l {
		elems[i] = v.String()
	}

	return "[" + strings.Join(elems, ",") + "]"
}

// formatFloat renders a float so it re-parses as a float, never an integer.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// literalValue converts a source literal to its runtime value.
// Shape constants construct a fresh graph node.
func literalValue(lit Literal) (Value, error) {
	switch lit.Kind {
	case LitInteger:
		return Integer(lit.Int), nil
	case LitFloat:
		return Float(lit.Float), nil
	case LitBoolean:
		return Boolean(lit.Bool), nil
	case LitHex:
		return Hex(lit.Hex), nil
	case LitShape:
		switch lit.Shape {
		case shape.KindSquare:
			return ShapeValue{Shape: shape.Square()}, nil
		case shape.KindCircle:
			return ShapeValue{Shape: shape.Circle()}, nil
		case shape.KindTriangle:
			return ShapeValue{Shape: shape.Triangle()}, nil
		case shape.KindFill:
			return ShapeValue{Shape: shape.Fill()}, nil
		default:
			return ShapeValue{Shape: shape.Empty()}, nil
		}
	case LitList:
		list := make(List, len(lit.List))

		for i, el := range lit.List {
			v, err := literalValue(el)
			if err != nil {
				return nil, err
			}

			list[i] = v
		}

		if _, err := list.Kind(); err != nil {
			return nil, err
		}

		return list, nil
	default:
		return nil, ErrInvalidArgument.With(slog.Any("literal", lit.Kind))
	}
}

// patternMatch reports whether scrutinee a matches pattern value b.
// Numeric comparisons cross integer/float; matching a scalar against a list
// tests membership; shapes cannot be matched.
func patternMatch(a, b Value) (bool, error) {
	switch bv := b.(type) {
	case Integer:
		switch av := a.(type) {
		case Integer:
			return av == bv, nil
		case Float:
			return float32(av) == float32(bv), nil
		}
	case Float:
		switch av := a.(type) {
		case Float:
			return av == bv, nil
		case Integer:
			return float32(av) == float32(bv), nil
		}
	case Boolean:
		if av, ok := a.(Boolean); ok {
			return av == bv, nil
		}
	case Hex:
		if av, ok := a.(Hex); ok {
			return av == bv, nil
		}
	case List:
		return patternMatchList(a, bv)
	}

	return false, ErrInvalidMatch.With(
		slog.String("value", a.String()),
		slog.String("pattern", b.String()),
	)
}

// patternMatchList tests membership of a scalar in a list of the same
// concrete type. Mixed-type membership is an error.
func patternMatchList(a Value, list List) (bool, error) {
	matched := false

	for _, b := range list {
		ok := false

		switch av := a.(type) {
		case Integer:
			bv, same := b.(Integer)
			if !same {
				return false, ErrInvalidMatch.With(slog.String("pattern", b.String()))
			}

			ok = av == bv
		case Float:
			bv, same := b.(Float)
			if !same {
				return false, ErrInvalidMatch.With(slog.String("pattern", b.String()))
			}

			ok = av == bv
		case Boolean:
			bv, same := b.(Boolean)
			if !same {
				return false, ErrInvalidMatch.With(slog.String("pattern", b.String()))
			}

			ok = av == bv
		case Hex:
			bv, same := b.(Hex)
			if !same {
				return false, ErrInvalidMatch.With(slog.String("pattern", b.String()))
			}

			ok = av == bv
		default:
			return false, ErrInvalidMatch.With(slog.String("value", a.String()))
		}

		matched = matched || ok
	}

	return matched, nil
}
