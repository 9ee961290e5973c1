/*
File    : psl/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	prog, err := Parse("x <- 1 + 2")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	assign, ok := prog.Statements[0].(*Assignment)
	require.True(t, ok)
	ident, ok := assign.Target.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", ident.Name)
}

func TestParseIndexedAssignment(t *testing.T) {
	prog, err := Parse("x[1] <- 5")
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	idx, ok := assign.Target.(*IndexExpr)
	require.True(t, ok)
	_, ok = idx.Target.(*Identifier)
	assert.True(t, ok)
}

func TestParseIfElseIfChain(t *testing.T) {
	prog, err := Parse(`IF (x = 1) { y <- 1 } ELSE IF (x = 2) { y <- 2 } ELSE { y <- 3 }`)
	require.NoError(t, err)
	ifStmt := prog.Statements[0].(*IfStmt)
	elseIf, ok := ifStmt.Else.(*IfStmt)
	require.True(t, ok)
	_, ok = elseIf.Else.(*Block)
	assert.True(t, ok)
}

func TestParseIfWithoutParens(t *testing.T) {
	prog, err := Parse(`IF x = 1 { y <- 1 }`)
	require.NoError(t, err)
	_, ok := prog.Statements[0].(*IfStmt)
	assert.True(t, ok)
}

func TestParseRepeatTimes(t *testing.T) {
	prog, err := Parse(`REPEAT 3 TIMES { x <- x + 1 }`)
	require.NoError(t, err)
	r, ok := prog.Statements[0].(*RepeatTimes)
	require.True(t, ok)
	_, ok = r.Count.(*IntegerLiteral)
	assert.True(t, ok)
}

func TestParseRepeatUntil(t *testing.T) {
	prog, err := Parse(`REPEAT UNTIL (x = 3) { x <- x + 1 }`)
	require.NoError(t, err)
	_, ok := prog.Statements[0].(*RepeatUntil)
	assert.True(t, ok)
}

func TestParseForEach(t *testing.T) {
	prog, err := Parse(`FOR EACH v IN list { DISPLAY(v) }`)
	require.NoError(t, err)
	fe, ok := prog.Statements[0].(*ForEach)
	require.True(t, ok)
	assert.Equal(t, "v", fe.VarName)
}

func TestParseProcDeclAndCall(t *testing.T) {
	prog, err := Parse(`PROCEDURE add(a, b) { RETURN(a + b) }` + "\n" + `DISPLAY(add(1, 2))`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)
	proc, ok := prog.Statements[0].(*ProcDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, proc.Params)

	ret, ok := proc.Body.Statements[0].(*ReturnStmt)
	require.True(t, ok)
	_, ok = ret.Value.(*BinaryExpr)
	assert.True(t, ok)
}

func TestParseBareReturn(t *testing.T) {
	prog, err := Parse(`PROCEDURE f() { RETURN }`)
	require.NoError(t, err)
	proc := prog.Statements[0].(*ProcDecl)
	ret := proc.Body.Statements[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParseTryCatch(t *testing.T) {
	prog, err := Parse(`TRY { DISPLAY(1/0) } CATCH (e) { DISPLAY(e) }`)
	require.NoError(t, err)
	tc, ok := prog.Statements[0].(*TryCatch)
	require.True(t, ok)
	assert.Equal(t, "e", tc.ErrVar)
}

func TestParseTryCatchWithoutBinding(t *testing.T) {
	prog, err := Parse(`TRY { x <- 1 } CATCH { DISPLAY("err") }`)
	require.NoError(t, err)
	tc := prog.Statements[0].(*TryCatch)
	assert.Equal(t, "", tc.ErrVar)
}

func TestParseListLiteral(t *testing.T) {
	prog, err := Parse(`x <- [1, 2, 3]`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	list, ok := assign.Value.(*ListLiteral)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParseFormattedString(t *testing.T) {
	prog, err := Parse(`DISPLAY(f"Hello {name}!")`)
	require.NoError(t, err)
	call := prog.Statements[0].(*Call)
	fs, ok := call.Args[0].(*FormattedString)
	require.True(t, ok)
	require.Len(t, fs.Holes, 1)
	ident, ok := fs.Holes[0].(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "name", ident.Name)
}

func TestParsePrecedenceOfArithmetic(t *testing.T) {
	prog, err := Parse(`x <- 1 + 2 * 3`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	bin := assign.Value.(*BinaryExpr)
	assert.Equal(t, "+", bin.Op)
	rightMul, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", rightMul.Op)
}

func TestParseShortCircuitPrecedence(t *testing.T) {
	prog, err := Parse(`x <- a AND b OR c`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	top := assign.Value.(*BinaryExpr)
	assert.Equal(t, "OR", top.Op)
	left := top.Left.(*BinaryExpr)
	assert.Equal(t, "AND", left.Op)
}

func TestParseUnaryNotAndMinus(t *testing.T) {
	prog, err := Parse(`x <- NOT y`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	un, ok := assign.Value.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "NOT", un.Op)

	prog, err = Parse(`x <- -y`)
	require.NoError(t, err)
	assign = prog.Statements[0].(*Assignment)
	un, ok = assign.Value.(*UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", un.Op)
}

func TestParseImport(t *testing.T) {
	prog, err := Parse(`IMPORT "lib.psl"`)
	require.NoError(t, err)
	imp, ok := prog.Statements[0].(*Import)
	require.True(t, ok)
	assert.Equal(t, "lib.psl", imp.Path)
}

func TestParseBuiltinCalls(t *testing.T) {
	prog, err := Parse(`APPEND(list, 4)`)
	require.NoError(t, err)
	call, ok := prog.Statements[0].(*Call)
	require.True(t, ok)
	assert.Equal(t, "APPEND", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseMissingClosingParenIsError(t *testing.T) {
	_, err := Parse(`DISPLAY(1 + 2`)
	assert.Error(t, err)
}

func TestParseClassDecl(t *testing.T) {
	prog, err := Parse(`CLASS Shape { PROCEDURE area() { RETURN(0) } }`)
	require.NoError(t, err)
	cd, ok := prog.Statements[0].(*ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Shape", cd.Name)
	assert.Len(t, cd.Body.Statements, 1)
}

func TestParseNewExpr(t *testing.T) {
	prog, err := Parse(`r <- NEW Rectangle(3, 4)`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	n, ok := assign.Value.(*NewExpr)
	require.True(t, ok)
	assert.Equal(t, "Rectangle", n.ClassName)
	assert.Len(t, n.Args, 2)
}

func TestParseMemberExpr(t *testing.T) {
	prog, err := Parse(`w <- r.width`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	m, ok := assign.Value.(*MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "width", m.Name)
	ident, ok := m.Target.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "r", ident.Name)
}

func TestParseMethodCall(t *testing.T) {
	prog, err := Parse(`a <- r.area()`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	m, ok := assign.Value.(*MethodCall)
	require.True(t, ok)
	assert.Equal(t, "area", m.Name)
	assert.Empty(t, m.Args)
}

func TestParseChainedIndexAndMemberAccess(t *testing.T) {
	prog, err := Parse(`a <- shapes[0].area()`)
	require.NoError(t, err)
	assign := prog.Statements[0].(*Assignment)
	m, ok := assign.Value.(*MethodCall)
	require.True(t, ok)
	assert.Equal(t, "area", m.Name)
	idx, ok := m.Target.(*IndexExpr)
	require.True(t, ok)
	ident, ok := idx.Target.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "shapes", ident.Name)
}
