// Package value implements the typed values exchanged between analyzers
// and their host, together with the type descriptors used to validate them.
package value

import "sort"

// Value is a closed tagged union. The only implementations are String,
// Int, Float, Product and List.
type Value interface {
	// Tag returns the variant of the value.
	Tag() Tag
	// Accept dispatches to the Visitor method for the variant.
	Accept(v Visitor) error

	sealed()
}

// Visitor has one method per Value variant. Code that must handle every
// variant implements Visitor, so a new variant breaks the build until it
// is handled everywhere.
type Visitor interface {
	VisitString(String) error
	VisitInt(Int) error
	VisitFloat(Float) error
	VisitProduct(Product) error
	VisitList(List) error
}

// String is a text value.
type String string

// Int is a 64-bit integer value.
type Int int64

// Float is a 64-bit floating point value.
type Float float64

func (String) Tag() Tag { return TagString }
func (Int) Tag() Tag    { return TagInt }
func (Float) Tag() Tag  { return TagFloat }

func (s String) Accept(v Visitor) error { return v.VisitString(s) }
func (i Int) Accept(v Visitor) error    { return v.VisitInt(i) }
func (f Float) Accept(v Visitor) error  { return v.VisitFloat(f) }

func (String) sealed() {}
func (Int) sealed()    {}
func (Float) sealed()  {}

// Product maps field names to values.
type Product struct {
	fields map[string]Value
}

// List is an ordered sequence of values sharing one declared element type.
type List struct {
	elem  Type
	items []Value
}

func (Product) Tag() Tag { return TagProduct }
func (List) Tag() Tag    { return TagList }

func (p Product) Accept(v Visitor) error { return v.VisitProduct(p) }
func (l List) Accept(v Visitor) error    { return v.VisitList(l) }

func (Product) sealed() {}
func (List) sealed()    {}

// NewString returns a String value.
func NewString(s string) String { return String(s) }

// NewInt returns an Int value.
func NewInt(i int64) Int { return Int(i) }

// NewFloat returns a Float value.
func NewFloat(f float64) Float { return Float(f) }

// NewProduct returns a Product holding a copy of fields.
func NewProduct(fields map[string]Value) Product {
	cp := make(map[string]Value, len(fields))
	for name, v := range fields {
		cp[name] = v
	}
	return Product{fields: cp}
}

// NewList returns a List of the given element type. Items are copied.
func NewList(elem Type, items ...Value) List {
	cp := make([]Value, len(items))
	copy(cp, items)
	return List{elem: elem, items: cp}
}

// Strings returns a List<String> holding ss in order.
func Strings(ss ...string) List {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return List{elem: StringType(), items: items}
}

// Keys returns the product's field names in sorted order.
func (p Product) Keys() []string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fields.
func (p Product) Len() int { return len(p.fields) }

// Get returns the named field without any shape checking.
func (p Product) Get(name string) (Value, bool) {
	v, ok := p.fields[name]
	return v, ok
}

// Elem returns the list's declared element type.
func (l List) Elem() Type { return l.elem }

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// At returns the i-th item.
func (l List) At(i int) Value { return l.items[i] }

// Items returns a copy of the list's items.
func (l List) Items() []Value {
	cp := make([]Value, len(l.items))
	copy(cp, l.items)
	return cp
}

// TypeOf returns the descriptor that v conforms to.
func TypeOf(v Value) Type {
	switch x := v.(type) {
	case String:
		return StringType()
	case Int:
		return IntType()
	case Float:
		return FloatType()
	case Product:
		fields := make(map[string]Type, len(x.fields))
		for name, fv := range x.fields {
			fields[name] = TypeOf(fv)
		}
		return ProductType(fields)
	case List:
		return ListType(x.elem)
	default:
		return Type{}
	}
}
