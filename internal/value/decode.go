package value

// Decode checks v against t and returns v unchanged when every level
// matches. No coercion is performed: an Int never satisfies FloatType and
// a Float never satisfies IntType. Mismatches fail with *ShapeError.
func Decode(v Value, t Type) (Value, error) {
	if err := check(v, t, rootPath); err != nil {
		return nil, err
	}
	return v, nil
}

// Conforms reports whether v matches t.
func Conforms(v Value, t Type) bool {
	return check(v, t, rootPath) == nil
}

func check(v Value, t Type, path string) error {
	if v == nil {
		return &ShapeError{Path: path, Expected: t.Tag().String(), Actual: "none", Reason: "missing value"}
	}
	return v.Accept(&checker{want: t, path: path})
}

// checker walks a value against an expected descriptor.
type checker struct {
	want Type
	path string
}

func (c *checker) expect(got Tag) error {
	if c.want.Tag() != got {
		return &ShapeError{Path: c.path, Expected: c.want.Tag().String(), Actual: got.String()}
	}
	return nil
}

func (c *checker) VisitString(String) error { return c.expect(TagString) }
func (c *checker) VisitInt(Int) error       { return c.expect(TagInt) }
func (c *checker) VisitFloat(Float) error   { return c.expect(TagFloat) }

func (c *checker) VisitProduct(p Product) error {
	if err := c.expect(TagProduct); err != nil {
		return err
	}
	// Declared fields are walked in sorted order so the first reported
	// error is stable.
	for _, f := range c.want.Fields() {
		path := fieldPath(c.path, f.Name)
		fv, ok := p.fields[f.Name]
		if !ok || fv == nil {
			return &ShapeError{Path: path, Expected: f.Type.Tag().String(), Actual: "none", Reason: "missing field"}
		}
		if err := check(fv, f.Type, path); err != nil {
			return err
		}
	}
	for _, name := range p.Keys() {
		if _, ok := c.want.Field(name); !ok {
			return &ShapeError{
				Path:     fieldPath(c.path, name),
				Expected: "none",
				Actual:   tagName(p.fields[name]),
				Reason:   "unexpected field",
			}
		}
	}
	return nil
}

func (c *checker) VisitList(l List) error {
	if err := c.expect(TagList); err != nil {
		return err
	}
	if !l.elem.Equal(c.want.Elem()) {
		return &ShapeError{
			Path:     c.path,
			Expected: c.want.String(),
			Actual:   ListType(l.elem).String(),
			Reason:   "element type mismatch",
		}
	}
	for i, item := range l.items {
		if err := check(item, l.elem, indexPath(c.path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Field returns the named field or a ShapeError if it is absent.
func (p Product) Field(name string) (Value, error) {
	v, ok := p.fields[name]
	if !ok || v == nil {
		return nil, &ShapeError{Path: fieldPath(rootPath, name), Expected: "value", Actual: "none", Reason: "missing field"}
	}
	return v, nil
}

// StringField returns the named String field.
func (p Product) StringField(name string) (string, error) {
	v, err := p.Field(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(String)
	if !ok {
		return "", &ShapeError{Path: fieldPath(rootPath, name), Expected: TagString.String(), Actual: tagName(v)}
	}
	return string(s), nil
}

// IntField returns the named Int field.
func (p Product) IntField(name string) (int64, error) {
	v, err := p.Field(name)
	if err != nil {
		return 0, err
	}
	i, ok := v.(Int)
	if !ok {
		return 0, &ShapeError{Path: fieldPath(rootPath, name), Expected: TagInt.String(), Actual: tagName(v)}
	}
	return int64(i), nil
}

// FloatField returns the named Float field.
func (p Product) FloatField(name string) (float64, error) {
	v, err := p.Field(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.(Float)
	if !ok {
		return 0, &ShapeError{Path: fieldPath(rootPath, name), Expected: TagFloat.String(), Actual: tagName(v)}
	}
	return float64(f), nil
}

// ListField returns the named List field.
func (p Product) ListField(name string) (List, error) {
	v, err := p.Field(name)
	if err != nil {
		return List{}, err
	}
	l, ok := v.(List)
	if !ok {
		return List{}, &ShapeError{Path: fieldPath(rootPath, name), Expected: TagList.String(), Actual: tagName(v)}
	}
	return l, nil
}

// AsProduct returns v as a Product or a ShapeError at the root.
func AsProduct(v Value) (Product, error) {
	p, ok := v.(Product)
	if !ok {
		return Product{}, &ShapeError{Path: rootPath, Expected: TagProduct.String(), Actual: tagName(v)}
	}
	return p, nil
}
