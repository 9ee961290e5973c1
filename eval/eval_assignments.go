/*
File    : psl/eval/eval_assignments.go

Assignment evaluation, grounded on go-mix/eval/eval_assignments.go's
identifier-vs-index-target split, adapted to §4.4's rule that a
FormattedString right-hand side is ALSO emitted to output before the
binding happens — a quirk of the system being ported that this port
preserves rather than "fixes" — and to §4.4's nested-index rule:
`x[i][j] <- e` clones the outer list, recurses into the inner list,
mutates, and re-installs the outer list.
*/
package eval

import (
	"fmt"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalAssignment(n *parser.Assignment, scope *env.Environment) (value.Value, error) {
	v, err := e.evalExprResult(n.Value, scope)
	if err != nil {
		return nil, err
	}

	if _, ok := n.Value.(*parser.FormattedString); ok {
		scope.Emit(v.String() + "\n")
	}

	switch target := n.Target.(type) {
	case *parser.Identifier:
		scope.Bind(target.Name, v)
		return v, nil
	case *parser.IndexExpr:
		return v, e.assignIndexed(target, v, scope)
	default:
		return nil, fmt.Errorf("invalid assignment target")
	}
}

// assignIndexed flattens `x[i][j]...` into its root identifier plus an
// ordered list of index expressions, evaluates each index, then
// rebuilds the nested lists from the innermost mutation outward.
func (e *Evaluator) assignIndexed(target *parser.IndexExpr, v value.Value, scope *env.Environment) error {
	ident, indexNodes, ok := flattenIndexChain(target)
	if !ok {
		return fmt.Errorf("invalid assignment target")
	}
	root, ok := scope.LookUp(ident.Name)
	if !ok {
		return fmt.Errorf("Undefined variable: %s", ident.Name)
	}

	indices := make([]int64, len(indexNodes))
	for i, node := range indexNodes {
		idxVal, err := e.evalExprResult(node, scope)
		if err != nil {
			return err
		}
		iv, ok := asInt(idxVal)
		if !ok {
			return fmt.Errorf("Index must be an integer")
		}
		indices[i] = iv
	}

	updated, err := setAtPath(root, indices, v)
	if err != nil {
		return err
	}
	scope.Bind(ident.Name, updated)
	return nil
}

// flattenIndexChain walks an IndexExpr chain back to its root
// identifier, returning the indices in outer-to-inner application
// order (indices[0] is the first index applied to the identifier).
func flattenIndexChain(n parser.Node) (*parser.Identifier, []parser.Node, bool) {
	switch t := n.(type) {
	case *parser.Identifier:
		return t, nil, true
	case *parser.IndexExpr:
		ident, indices, ok := flattenIndexChain(t.Target)
		if !ok {
			return nil, nil, false
		}
		return ident, append(indices, t.Index), true
	default:
		return nil, nil, false
	}
}

// setAtPath returns a new value equal to current with v installed at
// the 1-based path described by indices, cloning every list on the
// path so the original is left untouched (see value.List's doc comment
// on non-aliasing mutation).
func setAtPath(current value.Value, indices []int64, v value.Value) (value.Value, error) {
	list, ok := current.(*value.List)
	if !ok {
		return nil, fmt.Errorf("cannot index a value of type %s", current.Type())
	}
	i := indices[0]
	n := int64(len(list.Elements))
	if i < 1 || i > n {
		return nil, fmt.Errorf("List index out of bounds: %d (size: %d)", i, n)
	}
	updated := list.Clone()
	if len(indices) == 1 {
		updated.Elements[i-1] = v
		return updated, nil
	}
	newInner, err := setAtPath(updated.Elements[i-1], indices[1:], v)
	if err != nil {
		return nil, err
	}
	updated.Elements[i-1] = newInner
	return updated, nil
}
