package value

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// FromNative converts plain Go data, as produced by encoding/json or
// yaml.v3 decoding into `any`, into a Value of type t.
//
// Plain numbers carry no tag, so t decides: Int accepts Go integers and
// integer json.Number literals, Float accepts any number. A float64 is
// never an Int, even when it holds a whole number. Everything else must
// match exactly or a *ShapeError is returned.
func FromNative(native any, t Type) (Value, error) {
	return fromNative(native, t, rootPath)
}

func fromNative(x any, t Type, path string) (Value, error) {
	if x == nil {
		return nil, &ShapeError{Path: path, Expected: t.Tag().String(), Actual: "none", Reason: "missing value"}
	}
	mismatch := &ShapeError{Path: path, Expected: t.Tag().String(), Actual: nativeKind(x)}

	switch t.Tag() {
	case TagString:
		s, ok := x.(string)
		if !ok {
			return nil, mismatch
		}
		return String(s), nil

	case TagInt:
		i, ok := nativeInt(x)
		if !ok {
			return nil, mismatch
		}
		return Int(i), nil

	case TagFloat:
		f, ok := nativeFloat(x)
		if !ok {
			return nil, mismatch
		}
		return Float(f), nil

	case TagProduct:
		m, ok := x.(map[string]any)
		if !ok {
			return nil, mismatch
		}
		fields := make(map[string]Value, len(m))
		for _, f := range t.Fields() {
			fp := fieldPath(path, f.Name)
			raw, ok := m[f.Name]
			if !ok {
				return nil, &ShapeError{Path: fp, Expected: f.Type.Tag().String(), Actual: "none", Reason: "missing field"}
			}
			fv, err := fromNative(raw, f.Type, fp)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = fv
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := t.Field(k); !ok {
				return nil, &ShapeError{Path: fieldPath(path, k), Expected: "none", Actual: nativeKind(m[k]), Reason: "unexpected field"}
			}
		}
		return Product{fields: fields}, nil

	case TagList:
		s, ok := x.([]any)
		if !ok {
			return nil, mismatch
		}
		elem := t.Elem()
		items := make([]Value, len(s))
		for i, raw := range s {
			iv, err := fromNative(raw, elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			items[i] = iv
		}
		return List{elem: elem, items: items}, nil
	}
	return nil, fmt.Errorf("value: invalid type descriptor %s", t.Tag())
}

func nativeKind(x any) string {
	switch x.(type) {
	case string:
		return TagString.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TagInt.String()
	case float32, float64, json.Number:
		return "number"
	case map[string]any:
		return TagProduct.String()
	case []any:
		return TagList.String()
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", x)
	}
}

func nativeInt(x any) (int64, bool) {
	switch n := x.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func nativeFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := nativeInt(x); ok {
		return float64(i), true
	}
	return 0, false
}

// ToNative converts v into plain Go data: string, int64, float64,
// map[string]any and []any.
func ToNative(v Value) any {
	if v == nil {
		return nil
	}
	enc := &nativeEncoder{}
	_ = v.Accept(enc)
	return enc.out
}

type nativeEncoder struct {
	out any
}

func (e *nativeEncoder) VisitString(s String) error { e.out = string(s); return nil }
func (e *nativeEncoder) VisitInt(i Int) error       { e.out = int64(i); return nil }
func (e *nativeEncoder) VisitFloat(f Float) error   { e.out = float64(f); return nil }

func (e *nativeEncoder) VisitProduct(p Product) error {
	m := make(map[string]any, len(p.fields))
	for name, fv := range p.fields {
		m[name] = ToNative(fv)
	}
	e.out = m
	return nil
}

func (e *nativeEncoder) VisitList(l List) error {
	s := make([]any, len(l.items))
	for i, item := range l.items {
		s[i] = ToNative(item)
	}
	e.out = s
	return nil
}
