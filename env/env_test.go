/*
File    : psl/env/env_test.go
*/
package env

import (
	"testing"

	"github.com/pslstudio/psl/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookUpWalksParentChain(t *testing.T) {
	root := New()
	root.Bind("x", &value.Integer{Value: 1})
	child := root.Child()

	v, ok := child.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Integer).Value)
}

func TestBindIsLocalOnly(t *testing.T) {
	root := New()
	child := root.Child()
	child.Bind("y", &value.Integer{Value: 2})

	_, ok := root.LookUp("y")
	assert.False(t, ok)
}

func TestBindOnChildDoesNotMutateParentBinding(t *testing.T) {
	root := New()
	root.Bind("x", &value.Integer{Value: 1})
	child := root.Child()

	child.Bind("x", &value.Integer{Value: 99})

	v, _ := root.LookUp("x")
	assert.Equal(t, int64(1), v.(*value.Integer).Value, "writing x in a child scope must shadow locally, not mutate the parent's binding")

	v, _ = child.LookUp("x")
	assert.Equal(t, int64(99), v.(*value.Integer).Value)
}

func TestChildSnapshotsProcedureTable(t *testing.T) {
	root := New()
	root.DefineProcedure(&Procedure{Name: "early"})
	child := root.Child()

	root.DefineProcedure(&Procedure{Name: "late"})

	_, ok := child.LookupProcedure("early")
	assert.True(t, ok, "procedure defined before child creation should be visible")

	_, ok = child.LookupProcedure("late")
	assert.False(t, ok, "procedure defined after child creation should not retroactively appear")
}

func TestMutualRecursionSiblingsVisibleInSameScope(t *testing.T) {
	root := New()
	root.DefineProcedure(&Procedure{Name: "isEven"})
	root.DefineProcedure(&Procedure{Name: "isOdd"})
	child := root.Child()

	_, evenOK := child.LookupProcedure("isEven")
	_, oddOK := child.LookupProcedure("isOdd")
	assert.True(t, evenOK)
	assert.True(t, oddOK)
}

func TestEmitAppendsOutputLines(t *testing.T) {
	root := New()
	root.Emit("hello")
	root.Emit("world")
	assert.Equal(t, []string{"hello", "world"}, root.Output)
}
