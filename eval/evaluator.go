/*
File    : psl/eval/evaluator.go

Package eval implements PSL's tree-walking evaluator: a single recursive
Evaluate(node, env) dispatcher over the AST, per §4.4. Grounded on
go-mix/eval/evaluator.go's Evaluator struct shape (holds the parser for
position-aware errors, an io.Writer/bufio.Reader pair for output/input,
the builtin table), adapted to PSL's explicit error-return convention
and its split Variable/Procedure environment (see psl/env) rather than
go-mix's single scope.Scope.
*/
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pslstudio/psl/builtin"
	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/source"
	"github.com/pslstudio/psl/value"
)

// Default safety bounds, per §4.4: "a recursion depth cap
// (implementation-defined; the reference uses 10^7) ... and a
// per-REPEAT-UNTIL iteration cap (10^6)". Both are fields on Evaluator
// rather than package globals, per §9's "A port should thread depth
// through the evaluator state... to support reentrant use and isolation
// between runs".
const (
	DefaultMaxRecursionDepth = 10_000_000
	DefaultMaxLoopIterations = 1_000_000
)

// Evaluator walks a PSL AST against an Environment chain.
type Evaluator struct {
	Tracker *source.Tracker
	Writer  io.Writer
	Reader  *bufio.Reader

	// Importer reads IMPORT targets; cmd/psl sets it before calling Run
	// to a host.FileImporter that resolves paths relative to the
	// directory of the file being run. A nil
	// Importer (the default) makes IMPORT fail with an I/O error.
	Importer Importer

	MaxRecursionDepth int
	MaxLoopIterations int
	depth             int
}

// Importer reads the contents of an IMPORT target. Left as an
// interface so eval does not depend on any particular filesystem
// layout, per §1: "IMPORT file resolution are specified only through
// the interfaces the evaluator requires of the host".
type Importer interface {
	ReadFile(path string) (string, error)
}

// New creates an Evaluator for a single source file's text, wiring its
// SourceTracker so runtime errors can be enriched with line/column
// information (§4.5).
func New(src string) *Evaluator {
	return &Evaluator{
		Tracker:           source.NewTracker(src),
		Writer:            os.Stdout,
		Reader:            bufio.NewReader(os.Stdin),
		MaxRecursionDepth: DefaultMaxRecursionDepth,
		MaxLoopIterations: DefaultMaxLoopIterations,
	}
}

// SetWriter redirects program output, the same SetWriter(io.Writer)
// shape go-mix's Evaluator exposes for test capture.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects INPUT's source.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Run parses and evaluates an entire program against a fresh root
// environment, flushing its accumulated output to e.Writer and
// returning any uncaught error enriched via CreateSmartError.
func (e *Evaluator) Run(src string) error {
	e.Tracker = source.NewTracker(src)
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	root := env.New()
	_, err = e.evalProgram(prog, root)
	e.flush(root)
	if err != nil {
		if exit, ok := err.(*builtin.ExitSignal); ok {
			return exit
		}
		if pslErr, ok := err.(*source.PSLError); ok {
			return pslErr
		}
		return e.Tracker.CreateSmartError(err.Error())
	}
	return nil
}

func (e *Evaluator) flush(scope *env.Environment) {
	for _, line := range scope.Output {
		fmt.Fprint(e.Writer, line)
	}
	scope.Output = nil
}

func (e *Evaluator) evalProgram(prog *parser.Program, scope *env.Environment) (value.Value, error) {
	var last value.Value = value.TheUnit
	for _, stmt := range prog.Statements {
		res, err := e.eval(stmt, scope)
		if err != nil {
			return nil, err
		}
		if res.kind == kindReturning {
			return nil, fmt.Errorf("RETURN used outside a procedure")
		}
		last = res.value
	}
	return last, nil
}

// resultKind distinguishes a normal evaluation from one unwinding via
// RETURN, per §9's "prefer a distinguished result variant (Normal(Value)
// | Returning(Value)) propagated up the evaluator so genuine errors
// remain separate from control flow" — replacing the reference
// implementation's sentinel-error RETURN.
type resultKind int

const (
	kindNormal resultKind = iota
	kindReturning
)

type result struct {
	value value.Value
	kind  resultKind
}

func normal(v value.Value) result    { return result{value: v, kind: kindNormal} }
func returning(v value.Value) result { return result{value: v, kind: kindReturning} }

// eval is the single recursive dispatcher §4.4 describes, implemented
// as a type switch over parser.Node instead of go-mix's NodeVisitor
// double dispatch (see psl/parser's package doc comment).
func (e *Evaluator) eval(node parser.Node, scope *env.Environment) (result, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.MaxRecursionDepth {
		return result{}, fmt.Errorf("Stack overflow: recursion depth exceeded %d", e.MaxRecursionDepth)
	}

	switch n := node.(type) {
	case *parser.Program:
		v, err := e.evalProgram(n, scope)
		return normal(v), err

	case *parser.Block:
		return e.evalBlock(n, scope)

	case *parser.IntegerLiteral:
		return normal(&value.Integer{Value: n.Value}), nil
	case *parser.FloatLiteral:
		return normal(&value.Float{Value: n.Value}), nil
	case *parser.StringLiteral:
		return normal(&value.String{Value: n.Value}), nil
	case *parser.BooleanLiteral:
		return normal(&value.Boolean{Value: n.Value}), nil
	case *parser.NullLiteral:
		return normal(value.TheNull), nil
	case *parser.NaNLiteral:
		return normal(value.TheNaN), nil

	case *parser.ListLiteral:
		v, err := e.evalListLiteral(n, scope)
		return normal(v), err
	case *parser.FormattedString:
		v, err := e.renderFormattedString(n, scope)
		return normal(v), err

	case *parser.Identifier:
		v, ok := scope.LookUp(n.Name)
		if !ok {
			return result{}, fmt.Errorf("Undefined variable: %s", n.Name)
		}
		return normal(v), nil

	case *parser.IndexExpr:
		v, err := e.evalIndexExpr(n, scope)
		return normal(v), err

	case *parser.UnaryExpr:
		v, err := e.evalUnary(n, scope)
		return normal(v), err
	case *parser.BinaryExpr:
		v, err := e.evalBinary(n, scope)
		return normal(v), err

	case *parser.Assignment:
		v, err := e.evalAssignment(n, scope)
		return normal(v), err

	case *parser.IfStmt:
		return e.evalIf(n, scope)
	case *parser.RepeatTimes:
		return e.evalRepeatTimes(n, scope)
	case *parser.RepeatUntil:
		return e.evalRepeatUntil(n, scope)
	case *parser.ForEach:
		return e.evalForEach(n, scope)

	case *parser.ProcDecl:
		scope.DefineProcedure(&env.Procedure{Name: n.Name, Params: n.Params, Body: n.Body})
		return normal(value.TheUnit), nil

	case *parser.ClassDecl:
		e.evalClassDecl(n, scope)
		return normal(value.TheUnit), nil

	case *parser.NewExpr:
		v, err := e.evalNew(n, scope)
		return normal(v), err

	case *parser.MemberExpr:
		v, err := e.evalMember(n, scope)
		return normal(v), err

	case *parser.MethodCall:
		return e.evalMethodCall(n, scope)

	case *parser.Call:
		return e.evalCall(n, scope)

	case *parser.ReturnStmt:
		if n.Value == nil {
			return returning(value.TheUnit), nil
		}
		v, err := e.evalExprResult(n.Value, scope)
		if err != nil {
			return result{}, err
		}
		return returning(v), nil

	case *parser.TryCatch:
		return e.evalTryCatch(n, scope)

	case *parser.Import:
		v, err := e.evalImport(n, scope)
		return normal(v), err

	default:
		return result{}, fmt.Errorf("cannot evaluate node %s", node.String())
	}
}

// evalExprResult evaluates a node expected to be a plain expression
// (never itself a RETURN), returning its value directly.
func (e *Evaluator) evalExprResult(node parser.Node, scope *env.Environment) (value.Value, error) {
	res, err := e.eval(node, scope)
	if err != nil {
		return nil, err
	}
	return res.value, nil
}

func (e *Evaluator) evalBlock(block *parser.Block, scope *env.Environment) (result, error) {
	last := normal(value.TheUnit)
	for _, stmt := range block.Statements {
		res, err := e.eval(stmt, scope)
		if err != nil {
			return result{}, err
		}
		if res.kind == kindReturning {
			return res, nil
		}
		last = res
	}
	return last, nil
}

func (e *Evaluator) evalClassDecl(n *parser.ClassDecl, scope *env.Environment) {
	for _, stmt := range n.Body.Statements {
		proc, ok := stmt.(*parser.ProcDecl)
		if !ok {
			continue
		}
		scope.DefineProcedure(&env.Procedure{
			Name:   n.Name + "." + proc.Name,
			Params: proc.Params,
			Body:   proc.Body,
		})
	}
}
