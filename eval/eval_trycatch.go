/*
File    : psl/eval/eval_trycatch.go

TRY/CATCH evaluation, grounded on go-mix/eval/eval_controls.go's
error-recovery block handling, adapted to §4.4's rule that the try
scope's output already emitted before the error stays (the reference
keeps it) and that a RETURN inside TRY propagates upward normally
rather than being caught.
*/
package eval

import (
	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalTryCatch(n *parser.TryCatch, scope *env.Environment) (result, error) {
	tryScope := scope.Child()
	res, err := e.eval(n.Try, tryScope)
	appendOutput(scope, tryScope)
	if err == nil {
		return res, nil
	}

	catchScope := scope.Child()
	if n.ErrVar != "" {
		catchScope.Bind(n.ErrVar, &value.String{Value: err.Error()})
	}
	catchRes, catchErr := e.eval(n.Catch, catchScope)
	appendOutput(scope, catchScope)
	return catchRes, catchErr
}
