/*
File    : psl/eval/eval_test.go
*/
package eval

import (
	"strings"
	"testing"

	"github.com/pslstudio/psl/builtin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	ev := New(src)
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(src)
	require.NoError(t, err)
	return out.String()
}

func TestDisplayTruncatingDivision(t *testing.T) {
	assert.Equal(t, "2\n", run(t, `DISPLAY(5 / 2)`))
}

func TestRepeatUntilCountsToThree(t *testing.T) {
	out := run(t, `
x <- 0
REPEAT UNTIL (x = 3) {
	x <- x + 1
	DISPLAY(x)
}
`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestAppendRebindsWithoutAliasingOriginal(t *testing.T) {
	out := run(t, `
x <- [1, 2, 3]
APPEND(x, 4)
DISPLAY(x)
`)
	assert.Equal(t, "[1, 2, 3, 4]\n", out)
}

func TestFactorialProcedure(t *testing.T) {
	out := run(t, `
PROCEDURE f(n) {
	IF (n <= 1) { RETURN(1) }
	RETURN(n * f(n - 1))
}
DISPLAY(f(5))
`)
	assert.Equal(t, "120\n", out)
}

func TestTryCatchDivisionByZero(t *testing.T) {
	out := run(t, `
TRY {
	DISPLAY(1 / 0)
} CATCH (e) {
	DISPLAY(f"caught: {e}")
}
`)
	assert.True(t, strings.HasPrefix(out, "caught: Division by zero"))
}

func TestFormattedStringRendersHoles(t *testing.T) {
	out := run(t, `
name <- "World"
DISPLAY(f"Hello {name}!")
`)
	assert.Equal(t, "Hello World!\n", out)
}

func TestFormattedStringAssignmentDoubleEmit(t *testing.T) {
	out := run(t, `
name <- "World"
greeting <- f"Hello {name}!"
`)
	assert.Equal(t, "Hello World!\n", out)
}

func TestIntegerOverflowPromotesToFloat(t *testing.T) {
	out := run(t, `
x <- 9223372036854775807
y <- x + 1
DISPLAY(y)
`)
	assert.Equal(t, "9223372036854776000\n", out)
}

func TestNaNNeverEqualsItself(t *testing.T) {
	out := run(t, `
x <- NAN
IF (x NOT= x) { DISPLAY("distinct") } ELSE { DISPLAY("same") }
`)
	assert.Equal(t, "distinct\n", out)
}

func TestOneBasedIndexing(t *testing.T) {
	out := run(t, `
x <- [10, 20, 30]
DISPLAY(x[1])
`)
	assert.Equal(t, "10\n", out)
}

func TestForEachOverStringBindsCharacters(t *testing.T) {
	out := run(t, `
FOR EACH c IN "ab" {
	DISPLAYINLINE(c)
}
`)
	assert.Equal(t, "ab", out)
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	out := run(t, `
PROCEDURE boom() {
	DISPLAY("should not run")
	RETURN(TRUE)
}
IF (TRUE OR boom()) { DISPLAY("ok") }
`)
	assert.Equal(t, "ok\n", out)
}

func TestAssignmentInsideProcedureDoesNotLeakToOuterScope(t *testing.T) {
	out := run(t, `
x <- 1
PROCEDURE f() {
	x <- 2
}
f()
DISPLAY(x)
`)
	assert.Equal(t, "1\n", out)
}

func TestAppendInsideProcedureDoesNotMutateCallersList(t *testing.T) {
	out := run(t, `
x <- [1, 2, 3]
PROCEDURE f(x) {
	APPEND(x, 4)
	DISPLAY(x)
}
f(x)
DISPLAY(x)
`)
	assert.Equal(t, "[1, 2, 3, 4]\n[1, 2, 3]\n", out)
}

func TestMutualRecursionBetweenSiblingProcedures(t *testing.T) {
	out := run(t, `
PROCEDURE isEven(n) {
	IF (n = 0) { RETURN(TRUE) }
	RETURN(isOdd(n - 1))
}
PROCEDURE isOdd(n) {
	IF (n = 0) { RETURN(FALSE) }
	RETURN(isEven(n - 1))
}
DISPLAY(isEven(10))
`)
	assert.Equal(t, "true\n", out)
}

func TestProcedureArityMismatchTruncatesToShorter(t *testing.T) {
	out := run(t, `
PROCEDURE f(a, b) {
	DISPLAY(a)
}
f(1, 2, 3)
`)
	assert.Equal(t, "1\n", out)
}

func TestUndefinedVariableIsEnrichedAndLocated(t *testing.T) {
	ev := New("")
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run("DISPLAY(missing)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not defined in the current scope")
	assert.Contains(t, err.Error(), "Line 1, Column 9")
}

func TestStackOverflowOnUnboundedRecursion(t *testing.T) {
	ev := New("")
	ev.MaxRecursionDepth = 50
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(`
PROCEDURE loop() {
	RETURN(loop())
}
loop()
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion depth")
}

func TestExitFlushesBufferedOutputBeforeSignaling(t *testing.T) {
	ev := New("")
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(`
DISPLAY("before")
EXIT()
DISPLAY("after")
`)
	var exit *builtin.ExitSignal
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 0, exit.Code)
	assert.Equal(t, "before\n", out.String())
}

func TestClassNewFieldAccessAndMethodCall(t *testing.T) {
	out := run(t, `
CLASS Rectangle {
	PROCEDURE ctor(width, height) { RETURN(0) }
	PROCEDURE area(self) { RETURN(self.width * self.height) }
}
r <- NEW Rectangle(3, 4)
DISPLAY(r.width)
DISPLAY(r.area())
`)
	assert.Equal(t, "3\n12\n", out)
}

func TestNewOnUnknownClassIsError(t *testing.T) {
	ev := New("")
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(`r <- NEW Ghost(1)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestMemberAccessOnNonRecordIsError(t *testing.T) {
	ev := New("")
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(`
x <- 5
DISPLAY(x.foo)
`)
	require.Error(t, err)
}

func TestRepeatUntilIterationCapIsEnforced(t *testing.T) {
	ev := New("")
	ev.MaxLoopIterations = 10
	var out strings.Builder
	ev.SetWriter(&out)
	err := ev.Run(`
x <- 0
REPEAT UNTIL (x = 1000) { x <- x + 1 }
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop iterations")
}
