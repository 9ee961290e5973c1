/*
File    : psl/eval/session.go

EvalLine backs the interactive shell (package replshell): unlike Run,
which owns a fresh root environment for a single whole-program
execution, EvalLine evaluates one line's statements against a caller-
supplied environment that persists across calls, the same "one
Evaluator survives the whole session" shape go-mix/repl.go's REPL loop
uses with its own *eval.Evaluator.
*/
package eval

import (
	"github.com/pslstudio/psl/builtin"
	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/source"
	"github.com/pslstudio/psl/value"
)

// EvalLine parses src as a sequence of statements and evaluates them
// against scope. The recursion-depth counter resets each call so a
// deep call in one line does not erode the budget for the next.
func (e *Evaluator) EvalLine(src string, scope *env.Environment) (value.Value, error) {
	e.Tracker = source.NewTracker(src)
	e.depth = 0
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	v, err := e.evalProgram(prog, scope)
	if err != nil {
		if exit, ok := err.(*builtin.ExitSignal); ok {
			return nil, exit
		}
		if pslErr, ok := err.(*source.PSLError); ok {
			return nil, pslErr
		}
		return nil, e.Tracker.CreateSmartError(err.Error())
	}
	return v, nil
}
