/*
File    : psl/builtin/builtin.go

Package builtin implements PSL's built-in function table, grounded on
go-mix/std's Builtin{Name, Callback} registry pattern (see
go-mix/std/builtins.go and its per-category files). Unlike go-mix's
callbacks, which write straight to an io.Writer and return a sentinel
error object on failure, PSL built-ins return (value.Value, error) —
matching the rest of this module's explicit-error-return convention —
and the handful that have side effects (APPEND/INSERT/REMOVE mutate by
re-binding the caller's identifier; DISPLAY/DISPLAYINLINE/INPUT touch
an environment's output buffer or a host's input reader) take an
explicit *Call context instead of reaching for ambient state.
*/
package builtin

import (
	"fmt"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/value"
)

// Call carries everything a built-in needs beyond its arguments: the
// environment it was invoked from (for built-ins like APPEND that must
// rebind an identifier in the caller's scope) and the host services
// (input reading, EVAL re-entering the evaluator) a handful of
// built-ins need. Runtime is left as an interface so builtin does not
// import eval (which imports builtin) — mirrors go-mix/std's own
// Runtime interface in std/builtins.go.
type Call struct {
	Env     *env.Environment
	Args    []value.Value
	Runtime Runtime
	// ArgNodes carries the parsed AST node behind each argument
	// expression, needed only by built-ins (APPEND/INSERT/REMOVE) that
	// must know which identifier to rebind rather than merely its
	// evaluated value. Left untyped (any) for the same reason
	// env.Procedure.Body is: builtin does not import parser.
	ArgNodes []any
}

// Runtime is the subset of the evaluator a built-in is allowed to call
// back into: re-evaluating an expression (EVAL), writing straight through to the real output stream and
// reading one line of input (INPUT), and rebinding a variable by name
// in a given environment (APPEND/INSERT/REMOVE's outer-name rebinding).
// Grounded on go-mix/std's Runtime interface (CallFunction/
// GetInputReader) in std/builtins.go, generalized to PSL's needs.
type Runtime interface {
	EvalSource(source string, scope *env.Environment) (value.Value, error)
	WritePrompt(s string)
	ReadLine() (string, error)
	RebindIdentifier(node any, scope *env.Environment, v value.Value) error
}

// Func is the signature every built-in implements.
type Func func(call *Call) (value.Value, error)

// Builtin pairs a name with its implementation, mirroring go-mix's
// std.Builtin{Name, Callback} struct, plus its declared arity so a
// caller can report a wrong-argument-count error without first invoking
// the callback. Arity is -1 for the handful of built-ins whose argument
// count genuinely varies (INPUT's optional prompt) — those still check
// their own bounds internally.
type Builtin struct {
	Name     string
	Arity    int
	Callback Func
}

// ArityError reports the same "wrong argument count" message a built-in
// would raise internally, usable by a dispatcher that wants to reject a
// call before ever invoking Callback.
func (b *Builtin) ArityError(got int) error {
	return argError(b.Name, b.Arity, got)
}

// Registry maps a built-in's name to its implementation. It is built up
// by each category file's init(), the same split-by-concern-with-init-
// registration approach go-mix/std uses (strings.go, arrays.go, math.go
// each appending to a shared table in their own init()).
var Registry = make(map[string]*Builtin)

func register(name string, arity int, fn Func) {
	Registry[name] = &Builtin{Name: name, Arity: arity, Callback: fn}
}

// Lookup resolves a built-in by name.
func Lookup(name string) (*Builtin, bool) {
	b, ok := Registry[name]
	return b, ok
}

// ExitSignal is EXIT's error-shaped control-flow signal rather than a
// genuine failure: it propagates up through eval like any other error so
// already-buffered DISPLAY output is flushed by eval.Evaluator.Run before
// the signal reaches a host, which is the only place that actually calls
// os.Exit. Built as an error (not a panic or a sentinel int) so it rides
// the same return path every other built-in failure already uses,
// without builtin depending on eval to define a bespoke result variant.
type ExitSignal struct {
	Code int
}

func (s *ExitSignal) Error() string {
	return fmt.Sprintf("EXIT(%d)", s.Code)
}

// argError formats the "wrong argument count" error PSL's reference
// implementation raises, worded identically across every built-in.
// source.CreateSmartError's enrichment table has no entry for it, so the
// message reaches the user unchanged.
func argError(name string, want int, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func typeError(name, expected string, got value.Value) error {
	return fmt.Errorf("%s expects %s, got %s", name, expected, got.Type())
}

// asInt coerces an Integer or a Float (truncated toward zero) to int64, the common
// case for index/count arguments throughout this package's built-ins.
func asInt(v value.Value) (int64, bool) {
	switch n := v.(type) {
	case *value.Integer:
		return n.Value, true
	case *value.Float:
		return int64(n.Value), true
	}
	return 0, false
}

// asFloat coerces an Integer or Float to float64.
func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case *value.Integer:
		return float64(n.Value), true
	case *value.Float:
		return n.Value, true
	}
	return 0, false
}

// isFloatShaped reports whether v is a Float, used by math built-ins
// that return Float only when an input was already float-shaped, per
// spec.md's numeric built-in rules.
func isFloatShaped(v value.Value) bool {
	_, ok := v.(*value.Float)
	return ok
}
