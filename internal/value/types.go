package value

import (
	"fmt"
	"sort"
	"strings"
)

// Tag identifies a Value variant and the matching Type variant.
type Tag int

const (
	TagString Tag = iota + 1
	TagInt
	TagFloat
	TagProduct
	TagList
)

var tagNames = map[Tag]string{
	TagString:  "String",
	TagInt:     "Int",
	TagFloat:   "Float",
	TagProduct: "Product",
	TagList:    "List",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// ParseTag returns the Tag for a wire name such as "String" or "List".
func ParseTag(name string) (Tag, error) {
	for tag, n := range tagNames {
		if n == name {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("value: unknown tag %q", name)
}

// Type is an immutable type descriptor. It mirrors the shape of a Value
// without carrying data. The zero Type is invalid.
type Type struct {
	tag    Tag
	fields map[string]Type
	elem   *Type
}

// Field is a named member of a product type.
type Field struct {
	Name string
	Type Type
}

func StringType() Type { return Type{tag: TagString} }
func IntType() Type    { return Type{tag: TagInt} }
func FloatType() Type  { return Type{tag: TagFloat} }

// ProductType returns a product descriptor. The map is copied.
func ProductType(fields map[string]Type) Type {
	cp := make(map[string]Type, len(fields))
	for name, t := range fields {
		cp[name] = t
	}
	return Type{tag: TagProduct, fields: cp}
}

// ListType returns a list descriptor whose items all have type elem.
func ListType(elem Type) Type {
	e := elem
	return Type{tag: TagList, elem: &e}
}

// Tag returns the descriptor's variant.
func (t Type) Tag() Tag { return t.tag }

// IsValid reports whether t was built by one of the constructors.
func (t Type) IsValid() bool {
	_, ok := tagNames[t.tag]
	return ok
}

// Fields returns the members of a product type sorted by name.
// It returns nil for every other variant.
func (t Type) Fields() []Field {
	if t.tag != TagProduct {
		return nil
	}
	out := make([]Field, 0, len(t.fields))
	for name, ft := range t.fields {
		out = append(out, Field{Name: name, Type: ft})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Field looks up a product member by name.
func (t Type) Field(name string) (Type, bool) {
	ft, ok := t.fields[name]
	return ft, ok
}

// Elem returns the element type of a list type, or the zero Type.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// Equal reports whether two descriptors are structurally identical.
func (t Type) Equal(o Type) bool {
	if t.tag != o.tag {
		return false
	}
	switch t.tag {
	case TagProduct:
		if len(t.fields) != len(o.fields) {
			return false
		}
		for name, ft := range t.fields {
			of, ok := o.fields[name]
			if !ok || !ft.Equal(of) {
				return false
			}
		}
		return true
	case TagList:
		return t.Elem().Equal(o.Elem())
	default:
		return true
	}
}

// String renders the descriptor, e.g. "{score: Float, label: String}".
func (t Type) String() string {
	switch t.tag {
	case TagProduct:
		parts := make([]string, 0, len(t.fields))
		for _, f := range t.Fields() {
			parts = append(parts, f.Name+": "+f.Type.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case TagList:
		return "List<" + t.Elem().String() + ">"
	default:
		return t.tag.String()
	}
}
