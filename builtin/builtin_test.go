/*
File    : psl/builtin/builtin_test.go
*/
package builtin

import (
	"testing"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRuntime struct {
	rebound   map[any]value.Value
	inputLine string
	prompts   []string
}

func (s *stubRuntime) EvalSource(source string, scope *env.Environment) (value.Value, error) {
	return value.TheUnit, nil
}

func (s *stubRuntime) WritePrompt(p string) {
	s.prompts = append(s.prompts, p)
}

func (s *stubRuntime) ReadLine() (string, error) {
	return s.inputLine, nil
}

func (s *stubRuntime) RebindIdentifier(node any, scope *env.Environment, v value.Value) error {
	if s.rebound == nil {
		s.rebound = make(map[any]value.Value)
	}
	s.rebound[node] = v
	return nil
}

func TestConcat(t *testing.T) {
	b, ok := Lookup("CONCAT")
	require.True(t, ok)
	result, err := b.Callback(&Call{Args: []value.Value{&value.String{Value: "a"}, &value.String{Value: "b"}}})
	require.NoError(t, err)
	assert.Equal(t, "ab", result.(*value.String).Value)
}

func TestSubstringInclusiveOneBased(t *testing.T) {
	b, _ := Lookup("SUBSTRING")
	result, err := b.Callback(&Call{Args: []value.Value{
		&value.String{Value: "hello"},
		&value.Integer{Value: 2},
		&value.Integer{Value: 4},
	}})
	require.NoError(t, err)
	assert.Equal(t, "ell", result.(*value.String).Value)
}

func TestSubstringOutOfBounds(t *testing.T) {
	b, _ := Lookup("SUBSTRING")
	_, err := b.Callback(&Call{Args: []value.Value{
		&value.String{Value: "hi"},
		&value.Integer{Value: 1},
		&value.Integer{Value: 9},
	}})
	assert.Error(t, err)
}

func TestLengthListAndString(t *testing.T) {
	b, _ := Lookup("LENGTH")
	r1, _ := b.Callback(&Call{Args: []value.Value{&value.String{Value: "abc"}}})
	assert.Equal(t, int64(3), r1.(*value.Integer).Value)

	r2, _ := b.Callback(&Call{Args: []value.Value{&value.List{Elements: []value.Value{&value.Integer{Value: 1}}}}})
	assert.Equal(t, int64(1), r2.(*value.Integer).Value)
}

func TestAppendRebindsIdentifier(t *testing.T) {
	rt := &stubRuntime{}
	node := "list-node"
	original := &value.List{Elements: []value.Value{&value.Integer{Value: 1}}}
	b, _ := Lookup("APPEND")
	result, err := b.Callback(&Call{
		Args:     []value.Value{original, &value.Integer{Value: 2}},
		ArgNodes: []any{node},
		Runtime:  rt,
		Env:      env.New(),
	})
	require.NoError(t, err)
	newList := result.(*value.List)
	assert.Len(t, newList.Elements, 2)
	assert.Len(t, original.Elements, 1, "original list must not be mutated in place")
	assert.Same(t, newList, rt.rebound[node])
}

func TestInsertValidRange(t *testing.T) {
	b, _ := Lookup("INSERT")
	rt := &stubRuntime{}
	list := &value.List{Elements: []value.Value{&value.Integer{Value: 1}, &value.Integer{Value: 3}}}
	result, err := b.Callback(&Call{
		Args:     []value.Value{list, &value.Integer{Value: 2}, &value.Integer{Value: 2}},
		ArgNodes: []any{"n"},
		Runtime:  rt,
		Env:      env.New(),
	})
	require.NoError(t, err)
	newList := result.(*value.List)
	assert.Equal(t, []int64{1, 2, 3}, intsOf(newList))
}

func TestRemoveReturnsRemovedElement(t *testing.T) {
	b, _ := Lookup("REMOVE")
	rt := &stubRuntime{}
	list := &value.List{Elements: []value.Value{&value.Integer{Value: 10}, &value.Integer{Value: 20}}}
	result, err := b.Callback(&Call{
		Args:     []value.Value{list, &value.Integer{Value: 1}},
		ArgNodes: []any{"n"},
		Runtime:  rt,
		Env:      env.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.(*value.Integer).Value)
}

func TestSortMixedIntFloat(t *testing.T) {
	b, _ := Lookup("SORT")
	list := &value.List{Elements: []value.Value{
		&value.Integer{Value: 3},
		&value.Float{Value: 1.5},
		&value.Integer{Value: 2},
	}}
	result, err := b.Callback(&Call{Args: []value.Value{list}})
	require.NoError(t, err)
	sorted := result.(*value.List)
	assert.Equal(t, "1.5", sorted.Elements[0].String())
	assert.Equal(t, "2", sorted.Elements[1].String())
	assert.Equal(t, "3", sorted.Elements[2].String())
}

func TestFactorialSaturatesAndNegative(t *testing.T) {
	b, _ := Lookup("FACTORIAL")
	big, err := b.Callback(&Call{Args: []value.Value{&value.Integer{Value: 21}}})
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), big.(*value.Integer).Value)

	neg, err := b.Callback(&Call{Args: []value.Value{&value.Integer{Value: -1}}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), neg.(*value.Integer).Value)
}

func TestFactorialRecurrence(t *testing.T) {
	b, _ := Lookup("FACTORIAL")
	for n := int64(0); n < 19; n++ {
		fn, _ := b.Callback(&Call{Args: []value.Value{&value.Integer{Value: n}}})
		fn1, _ := b.Callback(&Call{Args: []value.Value{&value.Integer{Value: n + 1}}})
		assert.Equal(t, (n+1)*fn.(*value.Integer).Value, fn1.(*value.Integer).Value)
	}
}

func TestRandomRejectsInvertedRange(t *testing.T) {
	b, _ := Lookup("RANDOM")
	_, err := b.Callback(&Call{Args: []value.Value{&value.Integer{Value: 5}, &value.Integer{Value: 1}}})
	assert.Error(t, err)
}

func TestCeilFloorReturnInteger(t *testing.T) {
	ceil, _ := Lookup("CEIL")
	r, _ := ceil.Callback(&Call{Args: []value.Value{&value.Float{Value: 1.2}}})
	_, isInt := r.(*value.Integer)
	assert.True(t, isInt)

	floor, _ := Lookup("FLOOR")
	r, _ = floor.Callback(&Call{Args: []value.Value{&value.Float{Value: 1.8}}})
	_, isInt = r.(*value.Integer)
	assert.True(t, isInt)
}

func TestDisplayAppendsNewline(t *testing.T) {
	e := env.New()
	b, _ := Lookup("DISPLAY")
	_, err := b.Callback(&Call{Env: e, Args: []value.Value{&value.Integer{Value: 5}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"5\n"}, e.Output)
}

func TestDisplayInlineNoNewline(t *testing.T) {
	e := env.New()
	b, _ := Lookup("DISPLAYINLINE")
	_, err := b.Callback(&Call{Env: e, Args: []value.Value{&value.String{Value: "hi"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, e.Output)
}

func TestInputWritesPromptImmediatelyRatherThanBuffering(t *testing.T) {
	rt := &stubRuntime{inputLine: "answer"}
	e := env.New()
	b, _ := Lookup("INPUT")
	result, err := b.Callback(&Call{
		Env:     e,
		Args:    []value.Value{&value.String{Value: "name? "}},
		Runtime: rt,
	})
	require.NoError(t, err)
	assert.Equal(t, "answer", result.(*value.String).Value)
	assert.Equal(t, []string{"name? "}, rt.prompts)
	assert.Empty(t, e.Output, "the prompt must not go through the environment's buffered Output")
}

func TestExitReturnsSignalInsteadOfExitingProcess(t *testing.T) {
	b, _ := Lookup("EXIT")
	_, err := b.Callback(&Call{})
	var exit *ExitSignal
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 0, exit.Code)
}

func intsOf(l *value.List) []int64 {
	out := make([]int64, len(l.Elements))
	for i, e := range l.Elements {
		out[i] = e.(*value.Integer).Value
	}
	return out
}
