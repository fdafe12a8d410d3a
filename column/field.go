package column

import (
	"reflect"
	"strings"
)

// Field returns an accessor reading the exported struct field called name
// from rows of type T, which must be a struct or a pointer to one.
// The name may be a Go field name or the value of the struct tag tag.
// Rows without such a field, and nil pointers, read as missing.
func Field[T any](name, tag string) Accessor[T] {
	var (
		typ   reflect.Type
		index []int
	)
	return func(row T) (any, bool) {
		v := reflect.ValueOf(row)
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, false
		}
		if v.Type() != typ {
			typ = v.Type()
			index = fieldIndex(typ, name, tag)
		}
		if index == nil {
			return nil, false
		}
		f, err := v.FieldByIndexErr(index)
		if err != nil {
			return nil, false
		}
		return f.Interface(), true
	}
}

// MapField returns an accessor reading key from map rows.
func MapField(key string) Accessor[map[string]any] {
	return func(row map[string]any) (any, bool) {
		v, ok := row[key]
		return v, ok
	}
}

// Fields derives one column per exported field of the struct type T.
// A field whose tag value is "-" is skipped. The column key and data field
// are the tag value when present, otherwise the field name; the title is
// the field name split at case changes.
func Fields[T any](tag string) []Column[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var cols []Column[T]
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := fieldTitle(sf, tag)
		if name == "-" {
			continue
		}
		cols = append(cols, Column[T]{
			Key:       Key(name),
			Title:     spacePascalCase(sf.Name),
			DataField: name,
			Value:     Field[T](name, tag),
		})
	}
	return cols
}

// fieldTitle returns the tag value of sf for tag, or the field name when
// it carries no such tag.
func fieldTitle(sf reflect.StructField, tag string) string {
	if tag != "" {
		if v, ok := sf.Tag.Lookup(tag); ok {
			if i := strings.IndexByte(v, ','); i != -1 {
				v = v[:i]
			}
			if v != "" {
				return v
			}
		}
	}
	return sf.Name
}

func fieldIndex(t reflect.Type, name, tag string) []int {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name || fieldTitle(sf, tag) == name {
			return sf.Index
		}
	}
	return nil
}

// spacePascalCase inserts a space before every upper case letter that
// follows a lower case one and turns underscores into spaces.
func spacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastUpper, lastSpace := true, true
	for _, r := range name {
		if r == '_' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastUpper, lastSpace = false, true
			continue
		}
		upper := r >= 'A' && r <= 'Z'
		if upper && !lastUpper && !lastSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastUpper, lastSpace = upper, r == ' '
	}
	return strings.TrimSpace(b.String())
}
