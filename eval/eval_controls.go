/*
File    : psl/eval/eval_controls.go

IF/REPEAT/FOR EACH evaluation, grounded on go-mix/eval/eval_conditionals.go
and eval_loops.go, adapted to this package's result{value,kind} RETURN
propagation (a RETURN inside any of these bodies must unwind through
them rather than being swallowed). Per §4.3, only a procedure call or a
TRY/CATCH block creates a new environment — IF/REPEAT/FOR EACH bodies
run directly in the enclosing scope, so loop and branch variables stay
visible after the construct exits.
*/
package eval

import (
	"fmt"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalIf(n *parser.IfStmt, scope *env.Environment) (result, error) {
	cond, err := e.evalExprResult(n.Condition, scope)
	if err != nil {
		return result{}, err
	}
	b, ok := cond.(*value.Boolean)
	if !ok {
		return result{}, fmt.Errorf("Condition must be a boolean, got %s", cond.Type())
	}
	if b.Value {
		return e.eval(n.Then, scope)
	}
	switch els := n.Else.(type) {
	case *parser.Block:
		return e.eval(els, scope)
	case *parser.IfStmt:
		return e.evalIf(els, scope)
	case nil:
		return normal(value.TheUnit), nil
	default:
		return result{}, fmt.Errorf("invalid else clause")
	}
}

func (e *Evaluator) evalRepeatTimes(n *parser.RepeatTimes, scope *env.Environment) (result, error) {
	countVal, err := e.evalExprResult(n.Count, scope)
	if err != nil {
		return result{}, err
	}
	count, ok := countVal.(*value.Integer)
	if !ok {
		return result{}, fmt.Errorf("REPEAT count must be an integer, got %s", countVal.Type())
	}
	for i := int64(0); i < count.Value; i++ {
		res, err := e.eval(n.Body, scope)
		if err != nil {
			return result{}, err
		}
		if res.kind == kindReturning {
			return res, nil
		}
	}
	return normal(value.TheUnit), nil
}

func (e *Evaluator) evalRepeatUntil(n *parser.RepeatUntil, scope *env.Environment) (result, error) {
	iterations := 0
	for {
		iterations++
		if iterations > e.MaxLoopIterations {
			return result{}, fmt.Errorf("Maximum loop iterations exceeded: %d", e.MaxLoopIterations)
		}
		res, err := e.eval(n.Body, scope)
		if err != nil {
			return result{}, err
		}
		if res.kind == kindReturning {
			return res, nil
		}
		condVal, err := e.evalExprResult(n.Condition, scope)
		if err != nil {
			return result{}, err
		}
		cond, ok := condVal.(*value.Boolean)
		if !ok {
			return result{}, fmt.Errorf("Condition must be a boolean, got %s", condVal.Type())
		}
		if cond.Value {
			return normal(value.TheUnit), nil
		}
	}
}

func (e *Evaluator) evalForEach(n *parser.ForEach, scope *env.Environment) (result, error) {
	seq, err := e.evalExprResult(n.Seq, scope)
	if err != nil {
		return result{}, err
	}
	switch s := seq.(type) {
	case *value.List:
		for _, elem := range s.Elements {
			scope.Bind(n.VarName, elem)
			res, err := e.eval(n.Body, scope)
			if err != nil {
				return result{}, err
			}
			if res.kind == kindReturning {
				return res, nil
			}
		}
		return normal(value.TheUnit), nil
	case *value.String:
		for _, r := range s.Value {
			scope.Bind(n.VarName, &value.String{Value: string(r)})
			res, err := e.eval(n.Body, scope)
			if err != nil {
				return result{}, err
			}
			if res.kind == kindReturning {
				return res, nil
			}
		}
		return normal(value.TheUnit), nil
	default:
		return result{}, fmt.Errorf("Type error: FOR EACH requires a list or string, got %s", seq.Type())
	}
}
