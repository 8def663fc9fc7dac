package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Wire form of a value:
//
//	{"tag":"String","value":"x"}
//	{"tag":"Int","value":3}
//	{"tag":"Float","value":0.5}
//	{"tag":"Product","value":{"text":{"tag":"String","value":"x"}}}
//	{"tag":"List","elem":{"tag":"String"},"value":[...]}
type wireValue struct {
	Tag   string          `json:"tag"`
	Elem  *Type           `json:"elem,omitempty"`
	Value json.RawMessage `json:"value"`
}

type wireType struct {
	Tag    string          `json:"tag"`
	Fields map[string]Type `json:"fields,omitempty"`
	Elem   *Type           `json:"elem,omitempty"`
}

// Marshal encodes v in its tagged wire form.
func Marshal(v Value) ([]byte, error) {
	if v == nil {
		return nil, errors.New("value: cannot marshal nil value")
	}
	enc := &wireEncoder{}
	if err := v.Accept(enc); err != nil {
		return nil, err
	}
	return enc.out, nil
}

type wireEncoder struct {
	out []byte
}

func (e *wireEncoder) emit(tag Tag, elem *Type, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("value: encode %s: %w", tag, err)
	}
	e.out, err = json.Marshal(wireValue{Tag: tag.String(), Elem: elem, Value: raw})
	return err
}

func (e *wireEncoder) VisitString(s String) error { return e.emit(TagString, nil, string(s)) }
func (e *wireEncoder) VisitInt(i Int) error       { return e.emit(TagInt, nil, int64(i)) }
func (e *wireEncoder) VisitFloat(f Float) error   { return e.emit(TagFloat, nil, float64(f)) }

func (e *wireEncoder) VisitProduct(p Product) error {
	fields := make(map[string]json.RawMessage, len(p.fields))
	for name, fv := range p.fields {
		raw, err := Marshal(fv)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = raw
	}
	return e.emit(TagProduct, nil, fields)
}

func (e *wireEncoder) VisitList(l List) error {
	items := make([]json.RawMessage, len(l.items))
	for i, item := range l.items {
		raw, err := Marshal(item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = raw
	}
	elem := l.elem
	return e.emit(TagList, &elem, items)
}

// Unmarshal decodes a tagged wire value. It checks wire syntax only; use
// Decode to check the result against a descriptor.
func Unmarshal(data []byte) (Value, error) {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	tag, err := ParseTag(w.Tag)
	if err != nil {
		return nil, err
	}
	if len(w.Value) == 0 || bytes.Equal(w.Value, []byte("null")) {
		return nil, fmt.Errorf("value: %s without payload", tag)
	}

	switch tag {
	case TagString:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return nil, fmt.Errorf("value: String payload: %w", err)
		}
		return String(s), nil

	case TagInt:
		if w.Value[0] == '"' {
			return nil, fmt.Errorf("value: Int payload must be a number, got %s", w.Value)
		}
		var n json.Number
		if err := json.Unmarshal(w.Value, &n); err != nil {
			return nil, fmt.Errorf("value: Int payload: %w", err)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("value: Int payload %s is not an integer", n)
		}
		return Int(i), nil

	case TagFloat:
		var f float64
		if err := json.Unmarshal(w.Value, &f); err != nil {
			return nil, fmt.Errorf("value: Float payload: %w", err)
		}
		return Float(f), nil

	case TagProduct:
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(w.Value, &raw); err != nil {
			return nil, fmt.Errorf("value: Product payload: %w", err)
		}
		fields := make(map[string]Value, len(raw))
		for name, fr := range raw {
			fv, err := Unmarshal(fr)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			fields[name] = fv
		}
		return Product{fields: fields}, nil

	case TagList:
		if w.Elem == nil {
			return nil, errors.New("value: List without elem type")
		}
		var raw []json.RawMessage
		if err := json.Unmarshal(w.Value, &raw); err != nil {
			return nil, fmt.Errorf("value: List payload: %w", err)
		}
		items := make([]Value, len(raw))
		for i, ir := range raw {
			iv, err := Unmarshal(ir)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items[i] = iv
		}
		return List{elem: *w.Elem, items: items}, nil
	}
	return nil, fmt.Errorf("value: unsupported tag %s", tag)
}

// Wire adapts a Value to encoding/json so it can sit inside request and
// response structs. A JSON null leaves Value nil.
type Wire struct {
	Value Value
}

func (w Wire) MarshalJSON() ([]byte, error) {
	if w.Value == nil {
		return []byte("null"), nil
	}
	return Marshal(w.Value)
}

func (w *Wire) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		w.Value = nil
		return nil
	}
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	w.Value = v
	return nil
}

// MarshalJSON encodes the descriptor as {"tag":...} with "fields" for
// products and "elem" for lists.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return nil, errors.New("value: cannot marshal invalid type")
	}
	w := wireType{Tag: t.tag.String()}
	switch t.tag {
	case TagProduct:
		w.Fields = t.fields
	case TagList:
		w.Elem = t.elem
	}
	return json.Marshal(w)
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var w wireType
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("value: type: %w", err)
	}
	tag, err := ParseTag(w.Tag)
	if err != nil {
		return err
	}
	switch tag {
	case TagProduct:
		*t = ProductType(w.Fields)
	case TagList:
		if w.Elem == nil {
			return errors.New("value: List type without elem")
		}
		*t = ListType(*w.Elem)
	default:
		*t = Type{tag: tag}
	}
	return nil
}
