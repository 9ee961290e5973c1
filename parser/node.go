/*
File    : psl/parser/node.go

Package parser turns a token stream into an AST. Node is the minimal
interface every AST node implements: a source position for diagnostics
and a debug string. Unlike go-mix's parser, which dispatches evaluation
through a 30-method NodeVisitor interface, PSL's evaluator dispatches on
a type switch over Node (see psl/eval) — a tree-walking evaluator with
no external visitors doesn't need double dispatch, and a type switch
reads closer to §4.4's "dispatches on the AST variant" than a visitor
does.
*/
package parser

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
	String() string
}

// Position anchors a node to the token it started at, for diagnostics.
type Position struct {
	Line   int
	Column int
}

func (p Position) Pos() Position { return p }

// Program is the AST root: an ordered sequence of top-level statements.
type Program struct {
	Position
	Statements []Node
}

func (p *Program) String() string { return "Program" }

// Block is a brace-delimited statement sequence, used by every
// construct with a body (if/else, repeat, for each, procedure, try,
// catch).
type Block struct {
	Position
	Statements []Node
}

func (b *Block) String() string { return "Block" }

// --- Literals ---

type IntegerLiteral struct {
	Position
	Value int64
}

func (n *IntegerLiteral) String() string { return "IntegerLiteral" }

type FloatLiteral struct {
	Position
	Value float64
}

func (n *FloatLiteral) String() string { return "FloatLiteral" }

type StringLiteral struct {
	Position
	Value string
}

func (n *StringLiteral) String() string { return "StringLiteral" }

type BooleanLiteral struct {
	Position
	Value bool
}

func (n *BooleanLiteral) String() string { return "BooleanLiteral" }

type NullLiteral struct{ Position }

func (n *NullLiteral) String() string { return "NullLiteral" }

type NaNLiteral struct{ Position }

func (n *NaNLiteral) String() string { return "NaNLiteral" }

// ListLiteral is a `[e, e, ...]` expression.
type ListLiteral struct {
	Position
	Elements []Node
}

func (n *ListLiteral) String() string { return "ListLiteral" }

// FormattedString is an `f"...{hole}..."` expression: a template with
// `{}` placeholders plus the already-parsed expression behind each
// hole, per spec.md §3's `FormattedString(template, expression_list)`.
type FormattedString struct {
	Position
	Template string
	Holes    []Node
}

func (n *FormattedString) String() string { return "FormattedString" }

// --- Names and access ---

type Identifier struct {
	Position
	Name string
}

func (n *Identifier) String() string { return "Identifier(" + n.Name + ")" }

// IndexExpr is `target[index]`, chainable for `x[i][j]`.
type IndexExpr struct {
	Position
	Target Node
	Index  Node
}

func (n *IndexExpr) String() string { return "IndexExpr" }

// --- Operators ---

type BinaryExpr struct {
	Position
	Op    string
	Left  Node
	Right Node
}

func (n *BinaryExpr) String() string { return "BinaryExpr(" + n.Op + ")" }

type UnaryExpr struct {
	Position
	Op      string
	Operand Node
}

func (n *UnaryExpr) String() string { return "UnaryExpr(" + n.Op + ")" }

// --- Statements ---

// Assignment covers `x <- e` and `x[i]...[j] <- e`; Target is either an
// *Identifier or an *IndexExpr chain.
type Assignment struct {
	Position
	Target Node
	Value  Node
}

func (n *Assignment) String() string { return "Assignment" }

type IfStmt struct {
	Position
	Condition Node
	Then      *Block
	// Else holds either a *Block or a nested *IfStmt (ELSE IF chains),
	// or nil when there is no else clause.
	Else Node
}

func (n *IfStmt) String() string { return "IfStmt" }

// RepeatTimes is `REPEAT n TIMES { block }`.
type RepeatTimes struct {
	Position
	Count Node
	Body  *Block
}

func (n *RepeatTimes) String() string { return "RepeatTimes" }

// RepeatUntil is `REPEAT UNTIL cond { block }`, a do-while loop.
type RepeatUntil struct {
	Position
	Condition Node
	Body      *Block
}

func (n *RepeatUntil) String() string { return "RepeatUntil" }

// ForEach is `FOR EACH v IN seq { block }`.
type ForEach struct {
	Position
	VarName string
	Seq     Node
	Body    *Block
}

func (n *ForEach) String() string { return "ForEach" }

// ProcDecl is `PROCEDURE name(params) { block }`.
type ProcDecl struct {
	Position
	Name   string
	Params []string
	Body   *Block
}

func (n *ProcDecl) String() string { return "ProcDecl(" + n.Name + ")" }

// Call is a procedure or built-in invocation, `name(args)`.
type Call struct {
	Position
	Name string
	Args []Node
}

func (n *Call) String() string { return "Call(" + n.Name + ")" }

// ReturnStmt is `RETURN`, `RETURN(e)`, or `RETURN e`; Value is nil for
// the bare form.
type ReturnStmt struct {
	Position
	Value Node
}

func (n *ReturnStmt) String() string { return "ReturnStmt" }

// TryCatch is `TRY { ... } CATCH (e) { ... }`; ErrVar is empty when the
// catch clause omits the binding.
type TryCatch struct {
	Position
	Try    *Block
	ErrVar string
	Catch  *Block
}

func (n *TryCatch) String() string { return "TryCatch" }

// Import is `IMPORT "path"`.
type Import struct {
	Position
	Path string
}

func (n *Import) String() string { return "Import" }

// Comment is never produced by the parser: COMMENT/COMMENTBLOCK text is
// discarded at the lexer level, so no parse emits this node.
type Comment struct {
	Position
	Text string
}

func (n *Comment) String() string { return "Comment" }

// ClassDecl is `CLASS Name { block }`. PSL's classes are a thin
// grouping construct whose instances are plain records built by NEW
// (see NewExpr): the block's
// PROCEDURE declarations become procedures named "Name.Method", visible
// through the same snapshotted procedure table ordinary procedures use
// (see psl/env's doc comment on child-scope snapshotting and §4.3's
// "the child's procedure and class tables are initialized by
// snapshotting the parent's").
type ClassDecl struct {
	Position
	Name string
	Body *Block
}

func (n *ClassDecl) String() string { return "ClassDecl(" + n.Name + ")" }

// NewExpr is `NEW ClassName(args)`, instantiating the class declared by
// a matching ClassDecl as a record value. The class's "ctor" procedure
// supplies the field names (its declared parameters, zipped positionally
// against Args); NEW does not execute the ctor's body.
type NewExpr struct {
	Position
	ClassName string
	Args      []Node
}

func (n *NewExpr) String() string { return "New(" + n.ClassName + ")" }

// MemberExpr is `target.Name` used as a value (not a call), reading a
// field off a record produced by NewExpr.
type MemberExpr struct {
	Position
	Target Node
	Name   string
}

func (n *MemberExpr) String() string { return "Member(" + n.Name + ")" }

// MethodCall is `target.Name(args)`: Target is evaluated to a record and
// passed as the first argument to the "ClassName.Name" procedure, with
// Args following it positionally, the same truncating-to-shorter binding
// plain procedure calls use (see psl/eval/eval_call.go).
type MethodCall struct {
	Position
	Target Node
	Name   string
	Args   []Node
}

func (n *MethodCall) String() string { return "MethodCall(" + n.Name + ")" }
