/*
File    : psl/builtin/lists.go

List built-ins, grounded on go-mix/std/arrays.go's append/insert/remove
selection, adapted to PSL's value-semantic lists: mutation never touches
an existing *value.List in place. Instead the built-in builds a new
*value.List and rebinds the caller's identifier to it via
Call.Runtime.RebindIdentifier, per spec.md §5's "the mutation re-binds
the source identifier with a new list; programs should not rely on
aliasing".
*/
package builtin

import (
	"fmt"
	"sort"

	"github.com/pslstudio/psl/value"
)

func init() {
	register("APPEND", 2, appendFn)
	register("INSERT", 3, insertFn)
	register("REMOVE", 2, removeFn)
	register("SORT", 1, sortFn)
}

func appendFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("APPEND", 2, len(call.Args))
	}
	list, ok := call.Args[0].(*value.List)
	if !ok {
		return nil, typeError("APPEND", "a list", call.Args[0])
	}
	updated := list.Clone()
	updated.Elements = append(updated.Elements, call.Args[1])
	if err := call.rebindFirstArg(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// insertFn inserts at 1-based position i, valid over 1..=len+1.
func insertFn(call *Call) (value.Value, error) {
	if len(call.Args) != 3 {
		return nil, argError("INSERT", 3, len(call.Args))
	}
	list, ok := call.Args[0].(*value.List)
	if !ok {
		return nil, typeError("INSERT", "a list", call.Args[0])
	}
	i, iok := asInt(call.Args[1])
	if !iok {
		return nil, typeError("INSERT", "an integer position", call.Args[1])
	}
	n := int64(len(list.Elements))
	if i < 1 || i > n+1 {
		return nil, fmt.Errorf("List index out of bounds: %d for length %d", i, n)
	}
	updated := list.Clone()
	idx := int(i - 1)
	updated.Elements = append(updated.Elements[:idx:idx],
		append([]value.Value{call.Args[2]}, updated.Elements[idx:]...)...)
	if err := call.rebindFirstArg(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// removeFn deletes the element at 1-based position i and returns it.
func removeFn(call *Call) (value.Value, error) {
	if len(call.Args) != 2 {
		return nil, argError("REMOVE", 2, len(call.Args))
	}
	list, ok := call.Args[0].(*value.List)
	if !ok {
		return nil, typeError("REMOVE", "a list", call.Args[0])
	}
	i, iok := asInt(call.Args[1])
	n := int64(len(list.Elements))
	if !iok || i < 1 || i > n {
		return nil, fmt.Errorf("List index out of bounds: %d for length %d", i, n)
	}
	idx := int(i - 1)
	removed := list.Elements[idx]
	updated := list.Clone()
	updated.Elements = append(updated.Elements[:idx], updated.Elements[idx+1:]...)
	if err := call.rebindFirstArg(updated); err != nil {
		return nil, err
	}
	return removed, nil
}

// sortFn returns a new sorted list using a total order: numbers compare
// numerically (mixed int/float allowed), strings lexicographically,
// other mixed types compare equal (stable), per spec.md.
func sortFn(call *Call) (value.Value, error) {
	if len(call.Args) != 1 {
		return nil, argError("SORT", 1, len(call.Args))
	}
	list, ok := call.Args[0].(*value.List)
	if !ok {
		return nil, typeError("SORT", "a list", call.Args[0])
	}
	sorted := list.Clone()
	sort.SliceStable(sorted.Elements, func(i, j int) bool {
		return less(sorted.Elements[i], sorted.Elements[j])
	})
	return sorted, nil
}

func less(a, b value.Value) bool {
	af, aNum := asFloat(a)
	bf, bNum := asFloat(b)
	if aNum && bNum {
		return af < bf
	}
	as, aStr := a.(*value.String)
	bs, bStr := b.(*value.String)
	if aStr && bStr {
		return as.Value < bs.Value
	}
	return false
}

// rebindFirstArg rebinds the caller's identifier behind Args[0] to
// newList, implementing the outer-name rebinding spec.md requires for
// APPEND/INSERT/REMOVE. Only the first argument can ever be the target
// (all three built-ins take the list as their first parameter).
func (call *Call) rebindFirstArg(newList *value.List) error {
	if len(call.ArgNodes) == 0 {
		return nil
	}
	return call.Runtime.RebindIdentifier(call.ArgNodes[0], call.Env, newList)
}
