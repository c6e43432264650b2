package access

import (
	"fmt"
	"reflect"
)

// GetAttr resolves a single attribute on obj. Resolution order: Namespace
// attribute, string-keyed map entry, exported struct field, method value.
// Pointers and interfaces are dereferenced before field lookup.
func GetAttr(obj any, name string) (any, error) {
	if ns, ok := obj.(*Namespace); ok {
		return ns.Get(name)
	}
	if m, ok := obj.(map[string]any); ok {
		if v, found := m[name]; found {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %q on %T", ErrAttribute, name, obj)
	}

	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil", ErrAttribute, name)
	}

	// Methods bind to the original (possibly pointer) value.
	if mv := rv.MethodByName(name); mv.IsValid() {
		return mv.Interface(), nil
	}

	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return nil, fmt.Errorf("%w: %q on nil %s", ErrAttribute, name, rv.Type())
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			v := elem.MapIndex(reflect.ValueOf(name).Convert(elem.Type().Key()))
			if v.IsValid() {
				return v.Interface(), nil
			}
		}
	case reflect.Struct:
		if f := elem.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
		if mv := elem.MethodByName(name); mv.IsValid() {
			return mv.Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrAttribute, name, obj)
}

// SetAttr assigns a single attribute on obj. Struct fields are only
// assignable through a pointer; everything else that cannot take the
// assignment reports an attribute failure.
func SetAttr(obj any, name string, value any) error {
	if ns, ok := obj.(*Namespace); ok {
		ns.Set(name, value)
		return nil
	}
	if m, ok := obj.(map[string]any); ok {
		m[name] = value
		return nil
	}

	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return fmt.Errorf("%w: cannot set %q on nil", ErrAttribute, name)
	}
	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return fmt.Errorf("%w: cannot set %q on nil %s", ErrAttribute, name, rv.Type())
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			return setMapEntry(elem, reflect.ValueOf(name), value)
		}
	case reflect.Struct:
		f := elem.FieldByName(name)
		if f.IsValid() && f.CanSet() {
			return assignValue(f, value)
		}
		if f.IsValid() {
			return fmt.Errorf("%w: field %q of %s is not addressable (pass a pointer)",
				ErrAttribute, name, elem.Type())
		}
	}
	return fmt.Errorf("%w: cannot set %q on %T", ErrAttribute, name, obj)
}

// DelAttr removes a single attribute. Only Namespace attributes and map
// entries can be removed; struct fields cannot be deleted in Go.
func DelAttr(obj any, name string) error {
	if ns, ok := obj.(*Namespace); ok {
		return ns.Delete(name)
	}
	if m, ok := obj.(map[string]any); ok {
		if _, found := m[name]; !found {
			return fmt.Errorf("%w: %q on %T", ErrAttribute, name, obj)
		}
		delete(m, name)
		return nil
	}

	rv := reflect.ValueOf(obj)
	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if !elem.IsValid() || elem.IsNil() {
			return fmt.Errorf("%w: cannot delete %q on nil", ErrAttribute, name)
		}
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String {
		key := reflect.ValueOf(name).Convert(elem.Type().Key())
		if !elem.MapIndex(key).IsValid() {
			return fmt.Errorf("%w: %q on %T", ErrAttribute, name, obj)
		}
		elem.SetMapIndex(key, reflect.Value{})
		return nil
	}
	return fmt.Errorf("%w: cannot delete %q on %T", ErrAttribute, name, obj)
}

func setMapEntry(m reflect.Value, key reflect.Value, value any) error {
	kt, vt := m.Type().Key(), m.Type().Elem()
	if !key.Type().ConvertibleTo(kt) {
		return fmt.Errorf("%w: key %v is not a %s", ErrKey, key, kt)
	}
	vv, err := conform(value, vt)
	if err != nil {
		return err
	}
	m.SetMapIndex(key.Convert(kt), vv)
	return nil
}

func assignValue(dst reflect.Value, value any) error {
	vv, err := conform(value, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(vv)
	return nil
}

// conform adapts value to type t, allowing assignment and plain conversions.
func conform(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot assign nil to %s", ErrLookup, t)
	}
	vv := reflect.ValueOf(value)
	switch {
	case vv.Type().AssignableTo(t):
		return vv, nil
	case vv.Type().ConvertibleTo(t):
		return vv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot assign %T to %s", ErrLookup, value, t)
}
