/*
File    : psl/builtin/strings.go

String built-ins, grounded on go-mix/std/strings.go's selection of
operations (upper/lower/trim/split/join/replace/contains/index/
starts_with/ends_with/substring) with PSL's own naming (UPPERCASE not
upper, FIND not index) and 1-based inclusive SUBSTRING semantics instead
of go-mix's 0-based slice semantics.
*/
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pslstudio/psl/value"
)

func init() {
	register("CONCAT", 2, concatFn)
	register("SUBSTRING", 3, substringFn)
	register("LENGTH", 1, lengthFn)
	register("TOSTRING", 1, toStringFn)
	register("TONUM", 1, toNumFn)
	register("TRIM", 1, trimFn)
	register("REPLACE", 3, replaceFn)
	register("UPPERCASE", 1, uppercaseFn)
	register("LOWERCASE", 1, lowercaseFn)
	register("CONTAINS", 2, containsFn)
	register("FIND", 2, findFn)
	register("SPLIT", 2, splitFn)
	register("STARTSWITH", 2, startsWithFn)
	register("ENDSWITH", 2, endsWithFn)
}

func concatFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("CONCAT", 2, len(call.Args))
	}
	a, ok1 := call.Args[0].(*value.String)
	b, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("CONCAT", "two strings", call.Args[0])
	}
	return &value.String{Value: a.Value + b.Value}, nil
}

// substringFn extracts s[a..b] using PSL's 1-based inclusive indexing,
// per spec.md's "SUBSTRING(s, a, b) (1-based inclusive)".
func substringFn(call *Call) (value.Value, error) {
	if len(call.Args) != 3 {
		return nil, argError("SUBSTRING", 3, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("SUBSTRING", "a string", call.Args[0])
	}
	a, aok := asInt(call.Args[1])
	b, bok := asInt(call.Args[2])
	if !aok || !bok {
		return nil, typeError("SUBSTRING", "integer bounds", call.Args[1])
	}
	runes := []rune(s.Value)
	n := int64(len(runes))
	if a < 1 || b > n || a > b {
		return nil, fmt.Errorf("String index out of bounds: [%d, %d] for length %d", a, b, n)
	}
	return &value.String{Value: string(runes[a-1 : b])}, nil
}

func lengthFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("LENGTH", 1, len(call.Args))
	}
	switch v := call.Args[0].(type) {
	case *value.String:
		return &value.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *value.List:
		return &value.Integer{Value: int64(len(v.Elements))}, nil
	default:
		return nil, typeError("LENGTH", "a list or string", call.Args[0])
	}
}

func toStringFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("TOSTRING", 1, len(call.Args))
	}
	return &value.String{Value: call.Args[0].String()}, nil
}

// toNumFn parses a string as an integer first, falling back to float,
// per spec.md: "TONUM(s) (parses integer then float; fails otherwise)".
func toNumFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("TONUM", 1, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("TONUM", "a string", call.Args[0])
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64); err == nil {
		return &value.Integer{Value: i}, nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64); err == nil {
		return &value.Float{Value: f}, nil
	}
	return nil, fmt.Errorf("Cannot convert string to number: %q", s.Value)
}

func trimFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("TRIM", 1, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("TRIM", "a string", call.Args[0])
	}
	return &value.String{Value: strings.TrimSpace(s.Value)}, nil
}

func replaceFn(call *Call) (value.Value, error) {
	if len(call.Args) != 3 {
		return nil, argError("REPLACE", 3, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	from, ok2 := call.Args[1].(*value.String)
	to, ok3 := call.Args[2].(*value.String)
	if !ok1 || !ok2 || !ok3 {
		return nil, typeError("REPLACE", "three strings", call.Args[0])
	}
	return &value.String{Value: strings.ReplaceAll(s.Value, from.Value, to.Value)}, nil
}

func uppercaseFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("UPPERCASE", 1, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("UPPERCASE", "a string", call.Args[0])
	}
	return &value.String{Value: strings.ToUpper(s.Value)}, nil
}

func lowercaseFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("LOWERCASE", 1, len(call.Args))
	}
	s, ok := call.Args[0].(*value.String)
	if !ok {
		return nil, typeError("LOWERCASE", "a string", call.Args[0])
	}
	return &value.String{Value: strings.ToLower(s.Value)}, nil
}

func containsFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("CONTAINS", 2, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	t, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("CONTAINS", "two strings", call.Args[0])
	}
	return &value.Boolean{Value: strings.Contains(s.Value, t.Value)}, nil
}

// findFn returns the 1-based position of the first occurrence of t in
// s, or -1 if absent.
func findFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("FIND", 2, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	t, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("FIND", "two strings", call.Args[0])
	}
	idx := strings.Index(s.Value, t.Value)
	if idx < 0 {
		return &value.Integer{Value: -1}, nil
	}
	return &value.Integer{Value: int64(len([]rune(s.Value[:idx]))) + 1}, nil
}

func splitFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("SPLIT", 2, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	d, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("SPLIT", "two strings", call.Args[0])
	}
	parts := strings.Split(s.Value, d.Value)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = &value.String{Value: p}
	}
	return &value.List{Elements: elems}, nil
}

func startsWithFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("STARTSWITH", 2, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	p, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("STARTSWITH", "two strings", call.Args[0])
	}
	return &value.Boolean{Value: strings.HasPrefix(s.Value, p.Value)}, nil
}

func endsWithFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("ENDSWITH", 2, len(call.Args))
	}
	s, ok1 := call.Args[0].(*value.String)
	p, ok2 := call.Args[1].(*value.String)
	if !ok1 || !ok2 {
		return nil, typeError("ENDSWITH", "two strings", call.Args[0])
	}
	return &value.Boolean{Value: strings.HasSuffix(s.Value, p.Value)}, nil
}
