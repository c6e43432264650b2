package access

import (
	"fmt"
	"reflect"
)

// GetItem resolves a single subscript on obj: a map entry, or an indexed
// element of a slice, array or string. Negative indices count from the end.
func GetItem(obj any, key any) (any, error) {
	elem, err := deref(obj, key)
	if err != nil {
		return nil, err
	}

	switch elem.Kind() {
	case reflect.Map:
		kv, err := mapKey(elem, key)
		if err != nil {
			return nil, err
		}
		v := elem.MapIndex(kv)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %v in %T", ErrKey, key, obj)
		}
		return v.Interface(), nil

	case reflect.Slice, reflect.Array, reflect.String:
		i, err := seqIndex(elem.Len(), key, obj)
		if err != nil {
			return nil, err
		}
		if elem.Kind() == reflect.String {
			return string(elem.String()[i]), nil
		}
		return elem.Index(i).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrLookup, obj)
}

// SetItem assigns a single subscript: a map entry, or a slice/array element.
func SetItem(obj any, key any, value any) error {
	elem, err := deref(obj, key)
	if err != nil {
		return err
	}

	switch elem.Kind() {
	case reflect.Map:
		kv, err := mapKey(elem, key)
		if err != nil {
			return err
		}
		return setMapEntry(elem, kv, value)

	case reflect.Slice:
		i, err := seqIndex(elem.Len(), key, obj)
		if err != nil {
			return err
		}
		return assignValue(elem.Index(i), value)

	case reflect.Array:
		if !elem.CanSet() {
			return fmt.Errorf("%w: array %T is not addressable (pass a pointer)", ErrIndex, obj)
		}
		i, err := seqIndex(elem.Len(), key, obj)
		if err != nil {
			return err
		}
		return assignValue(elem.Index(i), value)
	}
	return fmt.Errorf("%w: cannot assign into %T", ErrLookup, obj)
}

// DelItem removes a single subscript. Map entries are removed in place;
// removing a slice element changes the length, so it requires a pointer to
// the slice.
func DelItem(obj any, key any) error {
	elem, err := deref(obj, key)
	if err != nil {
		return err
	}

	switch elem.Kind() {
	case reflect.Map:
		kv, err := mapKey(elem, key)
		if err != nil {
			return err
		}
		if !elem.MapIndex(kv).IsValid() {
			return fmt.Errorf("%w: %v in %T", ErrKey, key, obj)
		}
		elem.SetMapIndex(kv, reflect.Value{})
		return nil

	case reflect.Slice:
		if !elem.CanSet() {
			return fmt.Errorf("%w: cannot resize %T (pass a pointer to the slice)", ErrIndex, obj)
		}
		i, err := seqIndex(elem.Len(), key, obj)
		if err != nil {
			return err
		}
		out := reflect.AppendSlice(elem.Slice(0, i), elem.Slice(i+1, elem.Len()))
		elem.Set(out)
		return nil
	}
	return fmt.Errorf("%w: cannot delete from %T", ErrLookup, obj)
}

// deref unwraps pointers and interfaces down to the subscriptable value.
// Pointers to slices and arrays stay addressable so elements can be set.
func deref(obj any, key any) (reflect.Value, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %v on nil", ErrLookup, key)
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %v on nil %s", ErrLookup, key, rv.Type())
		}
		rv = rv.Elem()
	}
	return rv, nil
}

func mapKey(m reflect.Value, key any) (reflect.Value, error) {
	kt := m.Type().Key()
	if key == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil key in %s", ErrKey, m.Type())
	}
	kv := reflect.ValueOf(key)
	switch {
	case kv.Type().AssignableTo(kt):
		return kv, nil
	case kv.Type().ConvertibleTo(kt) && compatibleKinds(kv.Kind(), kt.Kind()):
		return kv.Convert(kt), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %v (%T) in %s", ErrKey, key, key, m.Type())
}

// compatibleKinds limits key conversion to same-family kinds so that e.g.
// an int key does not silently convert to a string map key.
func compatibleKinds(a, b reflect.Kind) bool {
	family := func(k reflect.Kind) int {
		switch {
		case k == reflect.String:
			return 1
		case k >= reflect.Int && k <= reflect.Uint64:
			return 2
		case k == reflect.Float32 || k == reflect.Float64:
			return 3
		}
		return 0
	}
	fa, fb := family(a), family(b)
	return fa != 0 && fa == fb
}

// seqIndex normalizes key into a valid index for a sequence of length n.
func seqIndex(n int, key any, obj any) (int, error) {
	i, ok := asInt(key)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T) is not an index", ErrIndex, key, key)
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %v in %T of length %d", ErrIndex, key, obj, n)
	}
	return i, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}
