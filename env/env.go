/*
File    : psl/env/env.go

Package env implements PSL's environment chain: the runtime home for
variable bindings and procedure definitions. It is grounded on go-mix's
scope.Scope (parent-pointer chain, lazy map init, LookUp/Bind/Assign),
trimmed of go-mix's const/let bookkeeping (PSL has neither) and split
into two independently-scoped tables, per spec.md §4.3:

  - Variables are looked up by walking the parent chain, but `<-`
    always writes into the innermost (current) scope, never up the
    chain: spec.md §3/§4.3's set(name, value) is defined as an
    unconditional write to the innermost scope, not go-mix's
    closure-style "find the owning scope and mutate it there"
    (go-mix/scope/scope.go's Assign). A procedure body that writes a
    name already bound in an enclosing scope shadows it locally for
    the rest of that call; the outer binding is left untouched.
  - Procedures do NOT behave like closures over a live parent pointer.
    spec.md §4.3 states a child environment's procedure table is a
    snapshot taken at the moment the child is created: procedures
    declared in an outer scope after a nested scope already started are
    invisible to that nested scope, and two sibling procedures declared
    in the same scope can call each other (mutual recursion) because
    they're both already in the table by the time either runs. A plain
    parent-pointer walk would make late-declared outer procedures
    visible retroactively, which spec.md treats as the wrong behavior
    for this language's non-closure procedure model.
*/
package env

import "github.com/pslstudio/psl/value"

// Procedure is a user-defined PSL procedure. Body is left as `any`
// rather than a concrete AST type to keep this package independent of
// parser — the evaluator, which imports both, is the only place that
// type-asserts Body back to a *parser.Block.
type Procedure struct {
	Name   string
	Params []string
	Body   any
}

// Environment is one scope in PSL's environment chain.
type Environment struct {
	Variables  map[string]Value
	Procedures map[string]*Procedure
	Parent     *Environment

	// Output collects DISPLAY/DISPLAYINLINE text instead of writing
	// straight to stdout. The evaluator always writes to the environment
	// it is currently running in; eval.Evaluator.Run writes the root
	// buffer to its Writer when the program finishes, and the REPL reads
	// it back after each line.
	Output []string
}

// Value is an alias for psl/value.Value, kept local so the rest of this
// file reads as "Value" rather than a package-qualified name throughout.
type Value = value.Value

// New creates a root (global) environment with no parent.
func New() *Environment {
	return &Environment{
		Variables:  make(map[string]Value),
		Procedures: make(map[string]*Procedure),
	}
}

// Child creates a new environment nested inside env. Its Variables
// table starts empty (normal lexical scoping handles visibility of the
// parent's variables via LookUp); its Procedures table is a snapshot
// copy of env's current procedure table, per the package doc comment.
func (e *Environment) Child() *Environment {
	procs := make(map[string]*Procedure, len(e.Procedures))
	for name, proc := range e.Procedures {
		procs[name] = proc
	}
	return &Environment{
		Variables:  make(map[string]Value),
		Procedures: procs,
		Parent:     e,
	}
}

// LookUp searches for a variable by name in this environment and all
// parent environments.
func (e *Environment) LookUp(name string) (Value, bool) {
	if v, ok := e.Variables[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites a variable binding in this environment
// only, without touching any parent or child. This is the single write
// operation behind PSL's `<-` assignment (spec.md §3/§4.3: "write into
// innermost scope unconditionally"), FOR EACH's loop-variable binding,
// and procedure-call argument binding — there is no separate "find the
// owning scope and mutate it" path, since spec.md explicitly rejects
// that semantics.
func (e *Environment) Bind(name string, v Value) {
	e.Variables[name] = v
}

// DefineProcedure registers proc in this environment's procedure table.
// Because Child snapshots the table at creation time rather than
// chaining to the parent, a procedure defined after a nested scope has
// already started is visible only within the scope (and its later
// children) where it was declared.
func (e *Environment) DefineProcedure(proc *Procedure) {
	e.Procedures[proc.Name] = proc
}

// LookupProcedure resolves a procedure by name against this
// environment's (possibly snapshotted) procedure table only — it does
// not walk Parent, since the table already contains everything that was
// visible when this environment was created.
func (e *Environment) LookupProcedure(name string) (*Procedure, bool) {
	proc, ok := e.Procedures[name]
	return proc, ok
}

// Emit appends a piece of program output (a DISPLAY line or
// DISPLAYINLINE text) to this environment's Output buffer.
func (e *Environment) Emit(line string) {
	e.Output = append(e.Output, line)
}
