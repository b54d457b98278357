package types

// Column names a column of the table bound to entity E. The type parameter
// keeps a column of one entity from being used against another.
type Column[E any] string

// String returns the column name.
func (c Column[E]) String() string { return string(c) }

// Is pairs the column with a value. A nil value means SQL NULL: it is
// written as NULL and matched with IS NULL.
func (c Column[E]) Is(v any) Field[E] {
	return Field[E]{Column: c, Value: v}
}

// Field is a single column/value pair.
type Field[E any] struct {
	Column Column[E]
	Value  any
	omit   bool
}

// Maybe pairs the column with *v, or omits the column entirely when v is
// nil. Omission means "don't care": an omitted column is never written and
// never matched.
func Maybe[E, V any](c Column[E], v *V) Field[E] {
	if v == nil {
		return Field[E]{Column: c, omit: true}
	}
	return Field[E]{Column: c, Value: *v}
}

// Fields is an ordered, partial column/value map for entity E. It serves as
// both a write payload and an equality predicate. The zero value is empty.
// Fields values are immutable; Set, Without and Merge return copies.
type Fields[E any] struct {
	cols []Column[E]
	vals map[Column[E]]any
}

// FieldsOf builds a Fields from the given pairs, dropping omitted ones. A
// column given twice keeps its first position and its last value.
func FieldsOf[E any](fs ...Field[E]) Fields[E] {
	out := Fields[E]{vals: make(map[Column[E]]any, len(fs))}
	for _, f := range fs {
		if f.omit {
			continue
		}
		out.put(f.Column, f.Value)
	}
	return out
}

func (f *Fields[E]) put(c Column[E], v any) {
	if f.vals == nil {
		f.vals = make(map[Column[E]]any)
	}
	if _, ok := f.vals[c]; !ok {
		f.cols = append(f.cols, c)
	}
	f.vals[c] = v
}

func (f Fields[E]) clone() Fields[E] {
	out := Fields[E]{
		cols: make([]Column[E], len(f.cols)),
		vals: make(map[Column[E]]any, len(f.vals)),
	}
	copy(out.cols, f.cols)
	for k, v := range f.vals {
		out.vals[k] = v
	}
	return out
}

// Set returns a copy of f with c set to v.
func (f Fields[E]) Set(c Column[E], v any) Fields[E] {
	out := f.clone()
	out.put(c, v)
	return out
}

// Without returns a copy of f with the given columns removed.
func (f Fields[E]) Without(cs ...Column[E]) Fields[E] {
	drop := make(map[Column[E]]bool, len(cs))
	for _, c := range cs {
		drop[c] = true
	}
	out := Fields[E]{vals: make(map[Column[E]]any, len(f.vals))}
	for _, c := range f.cols {
		if drop[c] {
			continue
		}
		out.cols = append(out.cols, c)
		out.vals[c] = f.vals[c]
	}
	return out
}

// Merge returns a copy of f overlaid with every column of o.
func (f Fields[E]) Merge(o Fields[E]) Fields[E] {
	out := f.clone()
	for _, c := range o.cols {
		out.put(c, o.vals[c])
	}
	return out
}

// Get returns the value for c and whether c is present.
func (f Fields[E]) Get(c Column[E]) (any, bool) {
	v, ok := f.vals[c]
	return v, ok
}

// Has reports whether c is present.
func (f Fields[E]) Has(c Column[E]) bool {
	_, ok := f.vals[c]
	return ok
}

// Len returns the number of columns present.
func (f Fields[E]) Len() int { return len(f.cols) }

// Empty reports whether no column is present.
func (f Fields[E]) Empty() bool { return len(f.cols) == 0 }

// Columns returns the present columns in insertion order.
func (f Fields[E]) Columns() []Column[E] {
	out := make([]Column[E], len(f.cols))
	copy(out, f.cols)
	return out
}
