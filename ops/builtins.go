package ops

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"sigchain/access"
)

// builtins returns the operators every Default registry starts with.
func builtins() map[string]Func {
	return map[string]Func{
		"lt": comparison("lt", func(c int) bool { return c < 0 }),
		"le": comparison("le", func(c int) bool { return c <= 0 }),
		"ge": comparison("ge", func(c int) bool { return c >= 0 }),
		"gt": comparison("gt", func(c int) bool { return c > 0 }),
		"eq": binary("eq", func(a, b any) (any, error) { return equal(a, b), nil }),
		"ne": binary("ne", func(a, b any) (any, error) { return !equal(a, b), nil }),

		"add":      binary("add", add),
		"sub":      arith("sub", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }),
		"mul":      arith("mul", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }),
		"div":      binary("div", div),
		"floordiv": binary("floordiv", floordiv),
		"mod":      binary("mod", mod),
		"neg":      unaryNum("neg", func(a int64) int64 { return -a }, func(a float64) float64 { return -a }),
		"pos":      unaryNum("pos", func(a int64) int64 { return a }, func(a float64) float64 { return a }),
		"abs": unaryNum("abs",
			func(a int64) int64 {
				if a < 0 {
					return -a
				}
				return a
			},
			math.Abs),

		"and":    bitwise("and", func(a, b int64) int64 { return a & b }),
		"or":     bitwise("or", func(a, b int64) int64 { return a | b }),
		"xor":    bitwise("xor", func(a, b int64) int64 { return a ^ b }),
		"lshift": bitwise("lshift", func(a, b int64) int64 { return a << uint(b) }),
		"rshift": bitwise("rshift", func(a, b int64) int64 { return a >> uint(b) }),
		"invert": unaryInt("invert", func(a int64) int64 { return ^a }),

		"not":      unary("not", func(a any) (any, error) { return !Truthy(a), nil }),
		"truth":    unary("truth", func(a any) (any, error) { return Truthy(a), nil }),
		"contains": binary("contains", contains),
		"concat":   binary("concat", concat),
		"getitem":  binary("getitem", access.GetItem),
		"getattr":  binary("getattr", getattr),
	}
}

// Truthy reports the truth value of v: nil, false, numeric zero and empty
// strings, slices and maps are false; everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	if i, ok := toInt64(v); ok {
		return i != 0
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func unary(name string, fn func(any) (any, error)) Func {
	return func(operands ...any) (any, error) {
		if len(operands) != 1 {
			return nil, fmt.Errorf("%w: %s takes 1 operand, got %d", ErrBadOperands, name, len(operands))
		}
		return fn(operands[0])
	}
}

func binary(name string, fn func(a, b any) (any, error)) Func {
	return func(operands ...any) (any, error) {
		if len(operands) != 2 {
			return nil, fmt.Errorf("%w: %s takes 2 operands, got %d", ErrBadOperands, name, len(operands))
		}
		return fn(operands[0], operands[1])
	}
}

func comparison(name string, accept func(int) bool) Func {
	return binary(name, func(a, b any) (any, error) {
		c, err := compare(name, a, b)
		if err != nil {
			return nil, err
		}
		return accept(c), nil
	})
}

func arith(name string, ints func(a, b int64) int64, floats func(a, b float64) float64) Func {
	return binary(name, func(a, b any) (any, error) {
		if x, y, ok := bothInt(a, b); ok {
			return ints(x, y), nil
		}
		if x, y, ok := bothFloat(a, b); ok {
			return floats(x, y), nil
		}
		return nil, fmt.Errorf("%w: %s needs numbers, got %T and %T", ErrBadOperands, name, a, b)
	})
}

func bitwise(name string, fn func(a, b int64) int64) Func {
	return binary(name, func(a, b any) (any, error) {
		x, okx := toInt64(a)
		y, oky := toInt64(b)
		if !okx || !oky {
			return nil, fmt.Errorf("%w: %s needs integers, got %T and %T", ErrBadOperands, name, a, b)
		}
		return fn(x, y), nil
	})
}

func unaryNum(name string, ints func(int64) int64, floats func(float64) float64) Func {
	return unary(name, func(a any) (any, error) {
		if x, ok := toInt64(a); ok {
			return ints(x), nil
		}
		if x, ok := toFloat(a); ok {
			return floats(x), nil
		}
		return nil, fmt.Errorf("%w: %s needs a number, got %T", ErrBadOperands, name, a)
	})
}

func unaryInt(name string, fn func(int64) int64) Func {
	return unary(name, func(a any) (any, error) {
		x, ok := toInt64(a)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs an integer, got %T", ErrBadOperands, name, a)
		}
		return fn(x), nil
	})
}

func add(a, b any) (any, error) {
	if x, y, ok := bothInt(a, b); ok {
		return x + y, nil
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x + y, nil
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return x + y, nil
		}
	}
	return concat(a, b)
}

func div(a, b any) (any, error) {
	x, okx := toFloat(a)
	y, oky := toFloat(b)
	if !okx || !oky {
		return nil, fmt.Errorf("%w: div needs numbers, got %T and %T", ErrBadOperands, a, b)
	}
	if y == 0 {
		return nil, fmt.Errorf("%w: division by zero", ErrBadOperands)
	}
	return x / y, nil
}

func floordiv(a, b any) (any, error) {
	if x, y, ok := bothInt(a, b); ok {
		if y == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrBadOperands)
		}
		q := x / y
		if (x%y != 0) && ((x < 0) != (y < 0)) {
			q--
		}
		return q, nil
	}
	if x, y, ok := bothFloat(a, b); ok {
		if y == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrBadOperands)
		}
		return math.Floor(x / y), nil
	}
	return nil, fmt.Errorf("%w: floordiv needs numbers, got %T and %T", ErrBadOperands, a, b)
}

func mod(a, b any) (any, error) {
	if x, y, ok := bothInt(a, b); ok {
		if y == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrBadOperands)
		}
		m := x % y
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return m, nil
	}
	if x, y, ok := bothFloat(a, b); ok {
		if y == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrBadOperands)
		}
		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: mod needs numbers, got %T and %T", ErrBadOperands, a, b)
}

func contains(a, b any) (any, error) {
	switch c := a.(type) {
	case string:
		s, ok := b.(string)
		if !ok {
			return nil, fmt.Errorf("%w: contains on string needs a string, got %T", ErrBadOperands, b)
		}
		return strings.Contains(c, s), nil
	case map[string]any:
		s, ok := b.(string)
		if !ok {
			return false, nil
		}
		_, found := c[s]
		return found, nil
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equal(rv.Index(i).Interface(), b) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if equal(k.Interface(), b) {
				return true, nil
			}
		}
		return false, nil
	}
	return nil, fmt.Errorf("%w: contains needs a container, got %T", ErrBadOperands, a)
}

func concat(a, b any) (any, error) {
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return x + y, nil
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Slice && rb.Kind() == reflect.Slice && ra.Type() == rb.Type() {
		out := reflect.MakeSlice(ra.Type(), 0, ra.Len()+rb.Len())
		out = reflect.AppendSlice(out, ra)
		out = reflect.AppendSlice(out, rb)
		return out.Interface(), nil
	}
	return nil, fmt.Errorf("%w: cannot concat %T and %T", ErrBadOperands, a, b)
}

func getattr(a, b any) (any, error) {
	name, ok := b.(string)
	if !ok {
		return nil, fmt.Errorf("%w: getattr needs a string name, got %T", ErrBadOperands, b)
	}
	return access.GetAttr(a, name)
}

// equal compares loosely: cross-width numbers compare by value, everything
// else by deep equality.
func equal(a, b any) bool {
	if x, y, ok := bothInt(a, b); ok {
		return x == y
	}
	if x, y, ok := bothFloat(a, b); ok {
		return x == y
	}
	return reflect.DeepEqual(a, b)
}

func compare(name string, a, b any) (int, error) {
	if x, y, ok := bothInt(a, b); ok {
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	if x, y, ok := bothFloat(a, b); ok {
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	}
	return 0, fmt.Errorf("%w: %s cannot order %T and %T", ErrBadOperands, name, a, b)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func bothInt(a, b any) (int64, int64, bool) {
	x, okx := toInt64(a)
	y, oky := toInt64(b)
	return x, y, okx && oky
}

func bothFloat(a, b any) (float64, float64, bool) {
	x, okx := toFloat(a)
	y, oky := toFloat(b)
	return x, y, okx && oky
}
