/*
File    : psl/eval/eval_expressions.go

Literal construction, formatted-string rendering, indexing and the
arithmetic/comparison/logical operator table, grounded on
go-mix/eval/eval_expressions.go's BinaryExpr switch but restructured
around value.Value's tagged variants rather than go-mix's Object
interface, and implementing §4.4's overflow-promotes-to-Float and
NaN/NULL equality rules directly rather than deferring to Go's native
numeric comparisons.
*/
package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalListLiteral(n *parser.ListLiteral, scope *env.Environment) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.evalExprResult(el, scope)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &value.List{Elements: elems}, nil
}

// renderFormattedString fills a template's `{}` placeholders in order
// with the already-evaluated holes, per §4.1's f-string lexing and
// §4.2's re-parse-per-hole pipeline.
func (e *Evaluator) renderFormattedString(n *parser.FormattedString, scope *env.Environment) (value.Value, error) {
	var b strings.Builder
	rest := n.Template
	for _, hole := range n.Holes {
		idx := strings.Index(rest, "{}")
		if idx < 0 {
			b.WriteString(rest)
			rest = ""
			continue
		}
		b.WriteString(rest[:idx])
		v, err := e.evalExprResult(hole, scope)
		if err != nil {
			return nil, err
		}
		b.WriteString(v.String())
		rest = rest[idx+2:]
	}
	b.WriteString(rest)
	return &value.String{Value: b.String()}, nil
}

// evalIndexExpr resolves `target[index]` against a list or string,
// 1-based and bounds-checked, per §4.4's "internally converted to
// 0-based at every access site".
func (e *Evaluator) evalIndexExpr(n *parser.IndexExpr, scope *env.Environment) (value.Value, error) {
	target, err := e.evalExprResult(n.Target, scope)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.evalExprResult(n.Index, scope)
	if err != nil {
		return nil, err
	}
	i, ok := asInt(idxVal)
	if !ok {
		return nil, fmt.Errorf("Index must be an integer")
	}
	switch t := target.(type) {
	case *value.List:
		n := int64(len(t.Elements))
		if i < 1 || i > n {
			return nil, fmt.Errorf("List index out of bounds: %d (size: %d)", i, n)
		}
		return t.Elements[i-1], nil
	case *value.String:
		runes := []rune(t.Value)
		n := int64(len(runes))
		if i < 1 || i > n {
			return nil, fmt.Errorf("String index out of bounds: %d (size: %d)", i, n)
		}
		return &value.String{Value: string(runes[i-1])}, nil
	default:
		return nil, fmt.Errorf("cannot index a value of type %s", target.Type())
	}
}

func asInt(v value.Value) (int64, bool) {
	switch n := v.(type) {
	case *value.Integer:
		return n.Value, true
	case *value.Float:
		return int64(n.Value), true
	}
	return 0, false
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpr, scope *env.Environment) (value.Value, error) {
	v, err := e.evalExprResult(n.Operand, scope)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "NOT":
		b, ok := v.(*value.Boolean)
		if !ok {
			return nil, fmt.Errorf("Type error: NOT requires a boolean operand")
		}
		return &value.Boolean{Value: !b.Value}, nil
	case "-":
		switch t := v.(type) {
		case *value.Integer:
			return &value.Integer{Value: -t.Value}, nil
		case *value.Float:
			return &value.Float{Value: -t.Value}, nil
		case *value.NaN:
			return value.TheNaN, nil
		default:
			return nil, fmt.Errorf("Type error: unary - requires a number")
		}
	default:
		return nil, fmt.Errorf("unknown unary operator %s", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr, scope *env.Environment) (value.Value, error) {
	switch n.Op {
	case "AND":
		return e.evalAnd(n, scope)
	case "OR":
		return e.evalOr(n, scope)
	}

	left, err := e.evalExprResult(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExprResult(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "=":
		return &value.Boolean{Value: value.Equal(left, right)}, nil
	case "NOT=":
		if _, ok := left.(*value.NaN); ok {
			return &value.Boolean{Value: true}, nil
		}
		if _, ok := right.(*value.NaN); ok {
			return &value.Boolean{Value: true}, nil
		}
		return &value.Boolean{Value: !value.Equal(left, right)}, nil
	case "<", "<=", ">", ">=":
		return e.evalComparison(n.Op, left, right)
	case "+":
		return e.evalPlus(left, right)
	case "-", "*", "/":
		return e.evalArith(n.Op, left, right)
	case "MOD":
		return e.evalMod(left, right)
	default:
		return nil, fmt.Errorf("unknown binary operator %s", n.Op)
	}
}

func (e *Evaluator) evalAnd(n *parser.BinaryExpr, scope *env.Environment) (value.Value, error) {
	left, err := e.evalExprResult(n.Left, scope)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*value.Boolean)
	if !ok {
		return nil, fmt.Errorf("Type error: AND requires boolean operands")
	}
	if !lb.Value {
		return &value.Boolean{Value: false}, nil
	}
	right, err := e.evalExprResult(n.Right, scope)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*value.Boolean)
	if !ok {
		return nil, fmt.Errorf("Type error: AND requires boolean operands")
	}
	return &value.Boolean{Value: rb.Value}, nil
}

func (e *Evaluator) evalOr(n *parser.BinaryExpr, scope *env.Environment) (value.Value, error) {
	left, err := e.evalExprResult(n.Left, scope)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*value.Boolean)
	if !ok {
		return nil, fmt.Errorf("Type error: OR requires boolean operands")
	}
	if lb.Value {
		return &value.Boolean{Value: true}, nil
	}
	right, err := e.evalExprResult(n.Right, scope)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*value.Boolean)
	if !ok {
		return nil, fmt.Errorf("Type error: OR requires boolean operands")
	}
	return &value.Boolean{Value: rb.Value}, nil
}

func (e *Evaluator) evalComparison(op string, left, right value.Value) (value.Value, error) {
	if isNumeric(left) && isNumeric(right) {
		lf, rf := toFloat(left), toFloat(right)
		return &value.Boolean{Value: compareFloat(op, lf, rf)}, nil
	}
	ls, lok := left.(*value.String)
	rs, rok := right.(*value.String)
	if lok && rok {
		return &value.Boolean{Value: compareString(op, ls.Value, rs.Value)}, nil
	}
	return nil, fmt.Errorf("Type error: %s requires matching comparable operands", op)
}

func compareFloat(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	default:
		return l >= r
	}
}

func compareString(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	default:
		return l >= r
	}
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case *value.Integer, *value.Float:
		return true
	}
	return false
}

func toFloat(v value.Value) float64 {
	switch t := v.(type) {
	case *value.Integer:
		return float64(t.Value)
	case *value.Float:
		return t.Value
	}
	return 0
}

// evalPlus handles `+`'s three overloads: numeric addition (with
// overflow promotion), string concatenation and list concatenation; a
// NaN operand on either side yields NaN.
func (e *Evaluator) evalPlus(left, right value.Value) (value.Value, error) {
	if _, ok := left.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	if _, ok := right.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	if ls, ok := left.(*value.String); ok {
		rs, ok := right.(*value.String)
		if !ok {
			return nil, fmt.Errorf("Type error: + requires matching operand types")
		}
		return &value.String{Value: ls.Value + rs.Value}, nil
	}
	if ll, ok := left.(*value.List); ok {
		rl, ok := right.(*value.List)
		if !ok {
			return nil, fmt.Errorf("Type error: + requires matching operand types")
		}
		combined := make([]value.Value, 0, len(ll.Elements)+len(rl.Elements))
		combined = append(combined, ll.Elements...)
		combined = append(combined, rl.Elements...)
		return &value.List{Elements: combined}, nil
	}
	if !isNumeric(left) || !isNumeric(right) {
		return nil, fmt.Errorf("Type error: + requires matching operand types")
	}
	return e.evalArith("+", left, right)
}

// evalArith implements `+`, `-`, `*`, `/` over numbers: integer
// arithmetic that would overflow silently promotes both operands to
// Float and retries, per §4.4. `/` is truncating integer division when
// both operands are Integer, else Float division. A NaN operand on either
// side yields NaN.
func (e *Evaluator) evalArith(op string, left, right value.Value) (value.Value, error) {
	if _, ok := left.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	if _, ok := right.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	li, lInt := left.(*value.Integer)
	ri, rInt := right.(*value.Integer)
	if lInt && rInt {
		if op == "/" {
			if ri.Value == 0 {
				return nil, fmt.Errorf("Division by zero")
			}
			return &value.Integer{Value: li.Value / ri.Value}, nil
		}
		result, overflowed := intArith(op, li.Value, ri.Value)
		if !overflowed {
			return &value.Integer{Value: result}, nil
		}
		return &value.Float{Value: floatArith(op, float64(li.Value), float64(ri.Value))}, nil
	}
	if !isNumeric(left) || !isNumeric(right) {
		return nil, fmt.Errorf("Type error: %s requires numeric operands", op)
	}
	lf, rf := toFloat(left), toFloat(right)
	if op == "/" && rf == 0 {
		return nil, fmt.Errorf("Division by zero")
	}
	return &value.Float{Value: floatArith(op, lf, rf)}, nil
}

func floatArith(op string, l, r float64) float64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	default:
		return l / r
	}
}

// intArith reports the result of op over int64 operands and whether it
// overflowed int64 range: `+` and `-` compare the operands against the
// int64 bounds before computing, `*` checks that dividing the wrapped
// product by r gives l back (plus the MinInt64 * -1 case, where that
// division wraps as well).
func intArith(op string, l, r int64) (result int64, overflowed bool) {
	switch op {
	case "+":
		result = l + r
		overflowed = (r > 0 && l > math.MaxInt64-r) || (r < 0 && l < math.MinInt64-r)
	case "-":
		result = l - r
		overflowed = (r < 0 && l > math.MaxInt64+r) || (r > 0 && l < math.MinInt64+r)
	case "*":
		if l == 0 || r == 0 {
			return 0, false
		}
		result = l * r
		overflowed = result/r != l || (r == -1 && l == math.MinInt64)
	}
	return result, overflowed
}

func (e *Evaluator) evalMod(left, right value.Value) (value.Value, error) {
	if _, ok := left.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	if _, ok := right.(*value.NaN); ok {
		return value.TheNaN, nil
	}
	li, lInt := left.(*value.Integer)
	ri, rInt := right.(*value.Integer)
	if !lInt || !rInt {
		return nil, fmt.Errorf("Type error: MOD requires integer operands")
	}
	_ = li
	if ri.Value == 0 {
		return nil, fmt.Errorf("Modulo by zero")
	}
	return &value.Integer{Value: li.Value % ri.Value}, nil
}
