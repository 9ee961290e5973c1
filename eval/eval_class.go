/*
File    : psl/eval/eval_class.go

NEW/member-access/method-call evaluation backing the CLASS supplemented
feature (see parser.ClassDecl's doc comment and SPEC_FULL.md's
SUPPLEMENTED FEATURES section). A class's procedures are registered in
the ordinary procedure table under "ClassName.Method" keys by
evaluator.go's evalClassDecl; the three node kinds here are what let PSL
source actually reach those entries, since a dotted identifier is not
otherwise expressible in PSL syntax.
*/
package eval

import (
	"fmt"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

// evalNew instantiates NewExpr.ClassName as a *value.Record. The class's
// "ctor" procedure supplies the field names (its declared parameters);
// NEW's arguments are zipped against them positionally, truncated to
// whichever list is shorter, the same lenient-arity rule plain procedure
// calls use. The ctor's body is never executed — it exists only to
// declare the field list, per SPEC_FULL.md's SUPPLEMENTED FEATURES
// section.
func (e *Evaluator) evalNew(n *parser.NewExpr, scope *env.Environment) (value.Value, error) {
	ctor, ok := scope.LookupProcedure(n.ClassName + ".ctor")
	if !ok {
		return nil, fmt.Errorf("class %s has no constructor", n.ClassName)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExprResult(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	count := len(ctor.Params)
	if len(args) < count {
		count = len(args)
	}
	return &value.Record{
		ClassName:  n.ClassName,
		FieldNames: append([]string(nil), ctor.Params[:count]...),
		Elements:   append([]value.Value(nil), args[:count]...),
	}, nil
}

// evalMember reads a field off the record n.Target evaluates to.
func (e *Evaluator) evalMember(n *parser.MemberExpr, scope *env.Environment) (value.Value, error) {
	target, err := e.evalExprResult(n.Target, scope)
	if err != nil {
		return nil, err
	}
	rec, ok := target.(*value.Record)
	if !ok {
		return nil, fmt.Errorf("cannot access field %q on a value of type %s", n.Name, target.Type())
	}
	v, ok := rec.Field(n.Name)
	if !ok {
		return nil, fmt.Errorf("%s has no field %q", rec.ClassName, n.Name)
	}
	return v, nil
}

// evalMethodCall dispatches n.Target.Name(args) to the "ClassName.Name"
// procedure, passing the record itself as that procedure's first
// argument followed by n.Args, the same implicit-self convention most of
// the corpus's object-ish languages use.
func (e *Evaluator) evalMethodCall(n *parser.MethodCall, scope *env.Environment) (result, error) {
	target, err := e.evalExprResult(n.Target, scope)
	if err != nil {
		return result{}, err
	}
	rec, ok := target.(*value.Record)
	if !ok {
		return result{}, fmt.Errorf("cannot call method %q on a value of type %s", n.Name, target.Type())
	}

	proc, ok := scope.LookupProcedure(rec.ClassName + "." + n.Name)
	if !ok {
		return result{}, fmt.Errorf("%s has no method %q", rec.ClassName, n.Name)
	}

	args := make([]value.Value, len(n.Args)+1)
	args[0] = rec
	for i, a := range n.Args {
		v, err := e.evalExprResult(a, scope)
		if err != nil {
			return result{}, err
		}
		args[i+1] = v
	}

	return e.invokeProcedure(proc, args, scope)
}
