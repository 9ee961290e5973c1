package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerLocate(t *testing.T) {
	src := "x <- 1\ny <- 2\nDISPLAY(z)"
	tr := NewTracker(src)

	line, col := tr.Locate(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	offsetOfZ := len("x <- 1\ny <- 2\nDISPLAY(")
	line, col = tr.Locate(offsetOfZ)
	assert.Equal(t, 3, line)
	assert.Equal(t, 9, col)
}

func TestTrackerLine(t *testing.T) {
	tr := NewTracker("first\nsecond\nthird")
	assert.Equal(t, "second", tr.Line(2))
	assert.Equal(t, "", tr.Line(0))
	assert.Equal(t, "", tr.Line(99))
}

func TestPSLErrorRenderWithoutLocation(t *testing.T) {
	err := NewError("Division by zero")
	assert.Equal(t, "Division by zero", err.Render())
}

func TestPSLErrorRenderWithLocation(t *testing.T) {
	tr := NewTracker("x <- 1 / 0")
	err := tr.CreateError("Division by zero", 9)
	rendered := err.Render()
	require.Contains(t, rendered, "Line 1, Column 10: Division by zero")
	require.Contains(t, rendered, "x <- 1 / 0")
}

func TestCreateSmartErrorUndefinedVariable(t *testing.T) {
	src := "DISPLAY(total)"
	tr := NewTracker(src)
	err := tr.CreateSmartError("Undefined variable: total")
	assert.Equal(t, 1, err.Location.Line)
	assert.Contains(t, err.Message, "'total' is not defined in the current scope")
}

func TestCreateSmartErrorListBounds(t *testing.T) {
	src := "list <- [1, 2, 3]\nDISPLAY(list[9])"
	tr := NewTracker(src)
	err := tr.CreateSmartError("List index out of bounds: 9 (size: 3)")
	assert.Equal(t, 2, err.Location.Line)
	assert.Contains(t, err.Message, "index 9 exceeds list length 3")
}
