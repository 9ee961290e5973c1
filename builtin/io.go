/*
File    : psl/builtin/io.go

Output and input built-ins. DISPLAY/DISPLAYINLINE write to the calling
environment's output buffer (see psl/env.Environment.Emit), the same
capture-into-a-buffer-then-let-the-host-flush-it approach go-mix's
repl.go takes with its io.Writer argument, adapted because PSL's
TRY/CATCH needs to inspect/discard a scope's accumulated output rather
than have it already gone to a writer. INPUT defers to Call.Runtime,
grounded on go-mix/std/builtins.go's Runtime.GetInputReader — its
prompt is the one piece of output that bypasses the buffer entirely
(Runtime.WritePrompt), since the whole point of a prompt is that the
person typing sees it before ReadLine blocks, and the buffer is not
flushed until the surrounding statement or program finishes.
*/
package builtin

import (
	"github.com/pslstudio/psl/value"
)

func init() {
	register("DISPLAY", 1, displayFn)
	register("DISPLAYINLINE", 1, displayInlineFn)
	register("INPUT", -1, inputFn)
}

func displayFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("DISPLAY", 1, len(call.Args))
	}
	call.Env.Emit(call.Args[0].String() + "\n")
	return value.TheUnit, nil
}

func displayInlineFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("DISPLAYINLINE", 1, len(call.Args))
	}
	call.Env.Emit(call.Args[0].String())
	return value.TheUnit, nil
}

// inputFn writes an optional prompt then reads one line with the
// trailing newline stripped, per spec.md §6. The prompt goes straight to
// the real writer via Runtime.WritePrompt rather than the environment's
// buffered Output, so it appears before ReadLine blocks instead of after
// the whole statement finishes.
func inputFn(call *Call) (value.Value, error) {
	if len(call.Args) > 1 {
		return nil, argError("INPUT", 1, len(call.Args))
	}
	if len(call.Args) == 1 {
		if prompt, ok := call.Args[0].(*value.String); ok {
			call.Runtime.WritePrompt(prompt.Value)
		}
	}
	line, err := call.Runtime.ReadLine()
	if err != nil {
		return nil, err
	}
	return &value.String{Value: line}, nil
}
