/*
File    : psl/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerString(t *testing.T) {
	i := &Integer{Value: 42}
	assert.Equal(t, "42", i.String())
	assert.Equal(t, IntegerType, i.Type())
}

func TestFloatString(t *testing.T) {
	f := &Float{Value: 3.5}
	assert.Equal(t, "3.5", f.String())
}

func TestBooleanString(t *testing.T) {
	assert.Equal(t, "true", (&Boolean{Value: true}).String())
	assert.Equal(t, "false", (&Boolean{Value: false}).String())
}

func TestListStringAndClone(t *testing.T) {
	l := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "a"}}}
	assert.Equal(t, "[1, a]", l.String())

	clone := l.Clone()
	clone.Elements[0] = &Integer{Value: 99}
	assert.Equal(t, int64(1), l.Elements[0].(*Integer).Value)
	assert.Equal(t, int64(99), clone.Elements[0].(*Integer).Value)
}

func TestEqualNaNNeverEqual(t *testing.T) {
	assert.False(t, Equal(TheNaN, TheNaN))
	assert.False(t, Equal(TheNaN, &Integer{Value: 1}))
}

func TestEqualNullOnlyEqualsNull(t *testing.T) {
	assert.True(t, Equal(TheNull, TheNull))
	assert.False(t, Equal(TheNull, &Integer{Value: 0}))
}

func TestEqualAcrossNumericTypes(t *testing.T) {
	assert.True(t, Equal(&Integer{Value: 3}, &Float{Value: 3.0}))
	assert.False(t, Equal(&Integer{Value: 3}, &Float{Value: 3.1}))
}

func TestEqualLists(t *testing.T) {
	a := &List{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	b := &List{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	c := &List{Elements: []Value{&Integer{Value: 1}}}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, IsTruthy(&Boolean{Value: true}))
	assert.False(t, IsTruthy(&Boolean{Value: false}))
	assert.False(t, IsTruthy(&Integer{Value: 1}))
}
