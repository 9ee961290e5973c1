/*
File    : psl/value/value.go

Package value defines PSL's runtime value model: the tagged variants
produced by evaluating an expression. Every PSL value implements Value,
mirroring go-mix/objects's GoMixObject interface (Type/String/Inspect in
place of GetType/ToString/ToObject).
*/
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the runtime shape of a Value.
type Type string

const (
	IntegerType Type = "integer"
	FloatType   Type = "float"
	StringType  Type = "string"
	BooleanType Type = "boolean"
	ListType    Type = "list"
	UnitType    Type = "unit"
	NullType    Type = "null"
	NaNType     Type = "nan"
	RecordType  Type = "record"
)

// Value is the interface every PSL runtime value implements.
type Value interface {
	// Type reports the value's runtime type tag.
	Type() Type
	// String renders the value the way DISPLAY/DISPLAYINLINE/TOSTRING do.
	String() string
	// Inspect renders a type-tagged debug form, e.g. Integer(3).
	Inspect() string
}

// Integer is a 64-bit signed integer.
type Integer struct{ Value int64 }

func (i *Integer) Type() Type      { return IntegerType }
func (i *Integer) String() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Inspect() string { return fmt.Sprintf("Integer(%d)", i.Value) }

// Float is a 64-bit IEEE-754 float (never the PSL NaN sentinel — see NaN
// below, which is a distinct Value so equality rules in spec.md §4.4
// ("NaN is not equal to anything, including itself") don't ride on Go's
// float NaN comparison semantics leaking into unrelated code paths).
type Float struct{ Value float64 }

func (f *Float) Type() Type      { return FloatType }
func (f *Float) String() string  { return strconv.FormatFloat(f.Value, 'f', -1, 64) }
func (f *Float) Inspect() string { return fmt.Sprintf("Float(%v)", f.Value) }

// String is a PSL string value.
type String struct{ Value string }

func (s *String) Type() Type      { return StringType }
func (s *String) String() string  { return s.Value }
func (s *String) Inspect() string { return fmt.Sprintf("String(%q)", s.Value) }

// Boolean is a PSL boolean.
type Boolean struct{ Value bool }

func (b *Boolean) Type() Type { return BooleanType }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) Inspect() string { return fmt.Sprintf("Boolean(%t)", b.Value) }

// List is PSL's one composite type: an ordered, growable, heterogeneous
// sequence. Mutating built-ins (APPEND/INSERT/REMOVE) never mutate an
// existing *List in place — see spec.md §5: "two identifiers bound to
// the same literal do NOT alias after either is mutated" — they build a
// new *List and the evaluator rebinds the source identifier to it.
type List struct{ Elements []Value }

func (l *List) Type() Type { return ListType }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "List[" + strings.Join(parts, ", ") + "]"
}

// Clone returns a new *List with a copy of the element slice (not a deep
// copy of each element — PSL values other than List are themselves
// immutable, so a shallow copy is sufficient to break aliasing).
func (l *List) Clone() *List {
	elems := make([]Value, len(l.Elements))
	copy(elems, l.Elements)
	return &List{Elements: elems}
}

// Record is the value NEW produces: a class-tagged, List-backed bag of
// named fields, the minimal stand-in for object instances described in
// the supplemented CLASS/NEW feature. FieldNames and Elements are kept
// parallel (same index means same field) rather than a map so String()
// can render fields in declaration order, matching how a List renders
// its elements in order.
type Record struct {
	ClassName  string
	FieldNames []string
	Elements   []Value
}

func (r *Record) Type() Type { return RecordType }
func (r *Record) String() string {
	parts := make([]string, len(r.FieldNames))
	for i, name := range r.FieldNames {
		parts[i] = name + "=" + r.Elements[i].String()
	}
	return "<" + r.ClassName + " " + strings.Join(parts, ", ") + ">"
}
func (r *Record) Inspect() string {
	parts := make([]string, len(r.FieldNames))
	for i, name := range r.FieldNames {
		parts[i] = name + "=" + r.Elements[i].Inspect()
	}
	return "Record[" + r.ClassName + "](" + strings.Join(parts, ", ") + ")"
}

// Field looks up a field by name, reporting false if the record has no
// such field.
func (r *Record) Field(name string) (Value, bool) {
	for i, n := range r.FieldNames {
		if n == name {
			return r.Elements[i], true
		}
	}
	return nil, false
}

// Unit is the value of statements that perform an effect but produce
// nothing meaningful (DISPLAY, assignment-as-statement, a loop).
type Unit struct{}

func (u *Unit) Type() Type      { return UnitType }
func (u *Unit) String() string  { return "" }
func (u *Unit) Inspect() string { return "Unit" }

// Null is PSL's NULL literal. It is equal only to itself.
type Null struct{}

func (n *Null) Type() Type      { return NullType }
func (n *Null) String() string  { return "NULL" }
func (n *Null) Inspect() string { return "Null" }

// NaN is PSL's not-a-number sentinel. Per spec.md §4.4 it is never equal
// to anything, including another NaN, and any arithmetic touching it
// yields NaN again.
type NaN struct{}

func (n *NaN) Type() Type      { return NaNType }
func (n *NaN) String() string  { return "NaN" }
func (n *NaN) Inspect() string { return "NaN" }

// Singletons for the three value-less types, so callers don't need to
// allocate a fresh struct for every Unit/Null/NaN produced.
var (
	TheUnit = &Unit{}
	TheNull = &Null{}
	TheNaN  = &NaN{}
)

// IsTruthy reports whether v is the boolean true. Callers that need a
// strict "must be boolean" check (IF conditions, AND/OR operands) should
// type-assert to *Boolean directly instead — IsTruthy is used only by
// built-ins that accept any value and want a lenient bool coercion (none
// currently do, but the helper documents the one-true-way this
// interpreter would coerce if asked; it is intentionally unexported-by-
// convention discipline, not removed, since go-mix's own ExtractValue
// keeps comparable coercion helpers around for builtins to share).
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Value
}

// Equal implements PSL's `=` equality, per spec.md §4.4: NULL equals
// only NULL; NaN equals nothing, not even itself; numbers compare across
// Integer/Float; strings and booleans compare by value; lists compare
// element-wise.
func Equal(a, b Value) bool {
	if _, ok := a.(*NaN); ok {
		return false
	}
	if _, ok := b.(*NaN); ok {
		return false
	}
	switch av := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Record:
		bv, ok := b.(*Record)
		if !ok || av.ClassName != bv.ClassName || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}
