/*
File    : psl/builtin/math.go

Numeric built-ins, grounded on go-mix/std/math.go's coverage
(abs/min/max/floor/ceil/round/sqrt/pow/trig/log/exp), extended with the
names spec.md lists that go-mix does not have (GCD, FACTORIAL, DEGREES,
RADIANS, HYPOT, LOGTWO) and PSL's own int/float result rules: CEIL,
FLOOR and ROUND always return Integer (CEIL/FLOOR hand an Integer input
back unchanged); SQRT, HYPOT and the trig/log/DEGREES/RADIANS family
always return Float; ABS, POW, MIN and MAX return Float only when an
input was already Float (POW also when its result is not whole),
otherwise Integer.
*/
package builtin

import (
	"math"

	"github.com/pslstudio/psl/value"
)

func init() {
	register("ABS", 1, absFn)
	register("CEIL", 1, ceilFn)
	register("FLOOR", 1, floorFn)
	register("ROUND", 1, roundFn)
	register("POW", 2, powFn)
	register("SQRT", 1, sqrtFn)
	register("SIN", 1, unaryFloatFn("SIN", math.Sin))
	register("COS", 1, unaryFloatFn("COS", math.Cos))
	register("TAN", 1, unaryFloatFn("TAN", math.Tan))
	register("ASIN", 1, unaryFloatFn("ASIN", math.Asin))
	register("ACOS", 1, unaryFloatFn("ACOS", math.Acos))
	register("ATAN", 1, unaryFloatFn("ATAN", math.Atan))
	register("EXP", 1, unaryFloatFn("EXP", math.Exp))
	register("LOG", 1, unaryFloatFn("LOG", math.Log))
	register("LOGTEN", 1, unaryFloatFn("LOGTEN", math.Log10))
	register("LOGTWO", 1, unaryFloatFn("LOGTWO", math.Log2))
	register("DEGREES", 1, unaryFloatFn("DEGREES", func(r float64) float64 { return r * 180 / math.Pi }))
	register("RADIANS", 1, unaryFloatFn("RADIANS", func(d float64) float64 { return d * math.Pi / 180 }))
	register("GCD", 2, gcdFn)
	register("FACTORIAL", 1, factorialFn)
	register("HYPOT", 2, hypotFn)
	register("MIN", 2, minFn)
	register("MAX", 2, maxFn)
	register("RANGE", 2, rangeFn)
}

func absFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("ABS", 1, len(call.Args))
	}
	switch n := call.Args[0].(type) {
	case *value.Integer:
		if n.Value < 0 {
			return &value.Integer{Value: -n.Value}, nil
		}
		return n, nil
	case *value.Float:
		return &value.Float{Value: math.Abs(n.Value)}, nil
	}
	return nil, typeError("ABS", "a number", call.Args[0])
}

func ceilFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("CEIL", 1, len(call.Args))
	}
	if n, ok := call.Args[0].(*value.Integer); ok {
		return n, nil
	}
	f, ok := asFloat(call.Args[0])
	if !ok {
		return nil, typeError("CEIL", "a number", call.Args[0])
	}
	return &value.Integer{Value: int64(math.Ceil(f))}, nil
}

func floorFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("FLOOR", 1, len(call.Args))
	}
	if n, ok := call.Args[0].(*value.Integer); ok {
		return n, nil
	}
	f, ok := asFloat(call.Args[0])
	if !ok {
		return nil, typeError("FLOOR", "a number", call.Args[0])
	}
	return &value.Integer{Value: int64(math.Floor(f))}, nil
}

func roundFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("ROUND", 1, len(call.Args))
	}
	f, ok := asFloat(call.Args[0])
	if !ok {
		return nil, typeError("ROUND", "a number", call.Args[0])
	}
	return &value.Integer{Value: int64(math.Round(f))}, nil
}

func powFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("POW", 2, len(call.Args))
	}
	base, ok1 := asFloat(call.Args[0])
	exp, ok2 := asFloat(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("POW", "two numbers", call.Args[0])
	}
	result := math.Pow(base, exp)
	if isFloatShaped(call.Args[0]) || isFloatShaped(call.Args[1]) || result != math.Trunc(result) {
		return &value.Float{Value: result}, nil
	}
	return &value.Integer{Value: int64(result)}, nil
}

func sqrtFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("SQRT", 1, len(call.Args))
	}
	f, ok := asFloat(call.Args[0])
	if !ok {
		return nil, typeError("SQRT", "a number", call.Args[0])
	}
	return &value.Float{Value: math.Sqrt(f)}, nil
}

// unaryFloatFn wraps a math.* function as a built-in that always returns
// Float, whatever the input shape and even when the result is a whole
// number (SIN(0) gives Float 0).
func unaryFloatFn(name string, fn func(float64) float64) Func {
	return func(call *Call) (value.Value, error) {
		if len(call.Args) != 1 {
			return nil, argError(name, 1, len(call.Args))
		}
		f, ok := asFloat(call.Args[0])
		if !ok {
			return nil, typeError(name, "a number", call.Args[0])
		}
		return &value.Float{Value: fn(f)}, nil
	}
}

func gcdFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("GCD", 2, len(call.Args))
	}
	a, ok1 := asInt(call.Args[0])
	b, ok2 := asInt(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("GCD", "two integers", call.Args[0])
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return &value.Integer{Value: a}, nil
}

// factorialFn saturates to math.MaxInt64 for n > 20 and returns 0 for
// n < 0, per spec.md.
func factorialFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("FACTORIAL", 1, len(call.Args))
	}
	n, ok := asInt(call.Args[0])
	if !ok {
		return nil, typeError("FACTORIAL", "an integer", call.Args[0])
	}
	if n < 0 {
		return &value.Integer{Value: 0}, nil
	}
	if n > 20 {
		return &value.Integer{Value: math.MaxInt64}, nil
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return &value.Integer{Value: result}, nil
}

func hypotFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("HYPOT", 2, len(call.Args))
	}
	a, ok1 := asFloat(call.Args[0])
	b, ok2 := asFloat(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("HYPOT", "two numbers", call.Args[0])
	}
	return &value.Float{Value: math.Hypot(a, b)}, nil
}

func minFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("MIN", 2, len(call.Args))
	}
	a, ok1 := asFloat(call.Args[0])
	b, ok2 := asFloat(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("MIN", "two numbers", call.Args[0])
	}
	if a <= b {
		return call.Args[0], nil
	}
	return call.Args[1], nil
}

func maxFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("MAX", 2, len(call.Args))
	}
	a, ok1 := asFloat(call.Args[0])
	b, ok2 := asFloat(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("MAX", "two numbers", call.Args[0])
	}
	if a >= b {
		return call.Args[0], nil
	}
	return call.Args[1], nil
}

// rangeFn builds an inclusive list of integers from lo to hi, matching
// the RANGE entry in spec.md's numeric built-in list.
func rangeFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("RANGE", 2, len(call.Args))
	}
	lo, ok1 := asInt(call.Args[0])
	hi, ok2 := asInt(call.Args[1])
	if !ok1 || !ok2 {
		return nil, typeError("RANGE", "two integers", call.Args[0])
	}
	if lo > hi {
		return &value.List{}, nil
	}
	elems := make([]value.Value, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		elems = append(elems, &value.Integer{Value: i})
	}
	return &value.List{Elements: elems}, nil
}
