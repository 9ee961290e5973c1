/*
File    : psl/eval/eval_call.go

Call resolution: built-ins are checked first by exact name, then the
user procedure namespace, per §4.4. Grounded on go-mix/eval/eval_functions.go's
call-frame construction, adapted to PSL's lenient positional-argument
binding (count mismatch truncates to the shorter of params/args) and to
builtin.Call's ArgNodes field, which lets APPEND/INSERT/REMOVE rebind
the caller's identifier without builtin importing this package.
*/
package eval

import (
	"fmt"

	"github.com/pslstudio/psl/builtin"
	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalCall(n *parser.Call, scope *env.Environment) (result, error) {
	if b, ok := builtin.Lookup(n.Name); ok {
		if b.Arity >= 0 && len(n.Args) != b.Arity {
			return result{}, b.ArityError(len(n.Args))
		}
		args := make([]value.Value, len(n.Args))
		nodes := make([]any, len(n.Args))
		for i, a := range n.Args {
			v, err := e.evalExprResult(a, scope)
			if err != nil {
				return result{}, err
			}
			args[i] = v
			nodes[i] = a
		}
		v, err := b.Callback(&builtin.Call{Env: scope, Args: args, Runtime: e, ArgNodes: nodes})
		if err != nil {
			return result{}, err
		}
		return normal(v), nil
	}

	proc, ok := scope.LookupProcedure(n.Name)
	if !ok {
		return result{}, fmt.Errorf("Procedure not found: '%s'", n.Name)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExprResult(a, scope)
		if err != nil {
			return result{}, err
		}
		args[i] = v
	}

	return e.invokeProcedure(proc, args, scope)
}

// invokeProcedure runs proc's body against a fresh child of scope, with
// args bound positionally to proc.Params (truncated to the shorter of
// the two lengths, per §4.4's lenient-arity rule), and unwraps a RETURN
// into a plain value at the call boundary. Shared by plain procedure
// calls and method calls (see eval_class.go's evalMethodCall), since
// PSL's classes dispatch to ordinary procedures registered under a
// dotted name.
func (e *Evaluator) invokeProcedure(proc *env.Procedure, args []value.Value, scope *env.Environment) (result, error) {
	body, ok := proc.Body.(*parser.Block)
	if !ok {
		return result{}, fmt.Errorf("malformed procedure body for %s", proc.Name)
	}

	call := scope.Child()
	count := len(proc.Params)
	if len(args) < count {
		count = len(args)
	}
	for i := 0; i < count; i++ {
		call.Bind(proc.Params[i], args[i])
	}

	res, err := e.eval(body, call)
	appendOutput(scope, call)
	if err != nil {
		return result{}, err
	}
	if res.kind == kindReturning {
		return normal(res.value), nil
	}
	return normal(value.TheUnit), nil
}

// appendOutput copies a finished child scope's accumulated output onto
// its parent, per §4.3's "when a child scope terminates, its output
// buffer is appended to the parent's".
func appendOutput(parent, child *env.Environment) {
	if len(child.Output) == 0 {
		return
	}
	parent.Output = append(parent.Output, child.Output...)
	child.Output = nil
}
