package access

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SliceSpec describes a sub-sequence selection. Nil bounds mean "from the
// start" / "to the end" relative to the step direction; a nil Step means 1.
// Negative bounds count from the end, negative steps walk backwards.
type SliceSpec struct {
	Start, Stop, Step *int
}

// IntPtr is a convenience for building SliceSpec literals.
func IntPtr(i int) *int { return &i }

// Span selects [start, stop) with step 1.
func Span(start, stop int) SliceSpec {
	return SliceSpec{Start: IntPtr(start), Stop: IntPtr(stop)}
}

// SpanAll selects the whole sequence.
func SpanAll() SliceSpec { return SliceSpec{} }

// At selects the single-element span covering index i: [i, i+1), where a
// trailing -1 start leaves the stop open so the last element is covered.
func At(i int) SliceSpec {
	spec := SliceSpec{Start: IntPtr(i)}
	if stop := i + 1; stop != 0 {
		spec.Stop = IntPtr(stop)
	}
	return spec
}

func (s SliceSpec) String() string {
	part := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	out := part(s.Start) + ":" + part(s.Stop)
	if s.Step != nil {
		out += ":" + strconv.Itoa(*s.Step)
	}
	return "[" + out + "]"
}

// Equal reports bound-by-bound equality.
func (s SliceSpec) Equal(o SliceSpec) bool {
	eq := func(a, b *int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	}
	return eq(s.Start, o.Start) && eq(s.Stop, o.Stop) && eq(s.Step, o.Step)
}

// Indices resolves the spec against a sequence of length n, returning the
// concrete start, stop and step. Negative bounds count from the end and
// out-of-range bounds are clamped, never an error. A zero step is a lookup
// failure.
func (s SliceSpec) Indices(n int) (start, stop, step int, err error) {
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrLookup)
	}

	clamp := func(i int, low, high int) int {
		if i < low {
			return low
		}
		if i > high {
			return high
		}
		return i
	}

	if step > 0 {
		start, stop = 0, n
	} else {
		start, stop = n-1, -1
	}
	if s.Start != nil {
		start = *s.Start
		if start < 0 {
			start += n
		}
		if step > 0 {
			start = clamp(start, 0, n)
		} else {
			start = clamp(start, -1, n-1)
		}
	}
	if s.Stop != nil {
		stop = *s.Stop
		if stop < 0 {
			stop += n
		}
		if step > 0 {
			stop = clamp(stop, 0, n)
		} else {
			stop = clamp(stop, -1, n-1)
		}
	}
	return start, stop, step, nil
}

// spanLen returns how many elements the resolved spec covers.
func spanLen(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start - stop - step - 1) / -step
}

// GetSlice extracts the selected sub-sequence as a new value of the same
// sequence type. Strings yield strings.
func GetSlice(obj any, spec SliceSpec) (any, error) {
	elem, err := deref(obj, spec)
	if err != nil {
		return nil, err
	}

	switch elem.Kind() {
	case reflect.Slice, reflect.Array:
		start, stop, step, err := spec.Indices(elem.Len())
		if err != nil {
			return nil, err
		}
		elemType := elem.Type().Elem()
		out := reflect.MakeSlice(reflect.SliceOf(elemType), 0, spanLen(start, stop, step))
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			out = reflect.Append(out, elem.Index(i))
		}
		return out.Interface(), nil

	case reflect.String:
		str := elem.String()
		start, stop, step, err := spec.Indices(len(str))
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			b.WriteByte(str[i])
		}
		return b.String(), nil
	}
	return nil, fmt.Errorf("%w: cannot slice %T", ErrLookup, obj)
}

// SetSlice replaces the selected span with the elements of value. A step-1
// span may be replaced by a span of any length, which resizes the sequence
// and therefore requires a pointer to the slice; an equal-length replacement
// is applied in place otherwise. Extended (step != 1) spans only accept an
// equal-length replacement.
func SetSlice(obj any, spec SliceSpec, value any) error {
	elem, err := deref(obj, spec)
	if err != nil {
		return err
	}
	if elem.Kind() != reflect.Slice {
		return fmt.Errorf("%w: cannot slice-assign into %T", ErrLookup, obj)
	}

	repl := reflect.ValueOf(value)
	if !repl.IsValid() || (repl.Kind() != reflect.Slice && repl.Kind() != reflect.Array) {
		return fmt.Errorf("%w: slice assignment needs a sequence, got %T", ErrLookup, value)
	}

	start, stop, step, err := spec.Indices(elem.Len())
	if err != nil {
		return err
	}
	covered := spanLen(start, stop, step)

	if step == 1 && repl.Len() != covered {
		if !elem.CanSet() {
			return fmt.Errorf("%w: cannot resize %T (pass a pointer to the slice)", ErrIndex, obj)
		}
		out := reflect.MakeSlice(elem.Type(), 0, elem.Len()-covered+repl.Len())
		out = reflect.AppendSlice(out, elem.Slice(0, start))
		for i := 0; i < repl.Len(); i++ {
			v, err := conform(repl.Index(i).Interface(), elem.Type().Elem())
			if err != nil {
				return err
			}
			out = reflect.Append(out, v)
		}
		out = reflect.AppendSlice(out, elem.Slice(stop, elem.Len()))
		elem.Set(out)
		return nil
	}

	if repl.Len() != covered {
		return fmt.Errorf("%w: cannot fit %d values into extended slice of length %d",
			ErrIndex, repl.Len(), covered)
	}
	j := 0
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		if err := assignValue(elem.Index(i), repl.Index(j).Interface()); err != nil {
			return err
		}
		j++
	}
	return nil
}

// DelSlice removes the selected span, resizing the sequence. It always
// requires a pointer to the slice.
func DelSlice(obj any, spec SliceSpec) error {
	elem, err := deref(obj, spec)
	if err != nil {
		return err
	}
	if elem.Kind() != reflect.Slice {
		return fmt.Errorf("%w: cannot slice-delete from %T", ErrLookup, obj)
	}
	if !elem.CanSet() {
		return fmt.Errorf("%w: cannot resize %T (pass a pointer to the slice)", ErrIndex, obj)
	}

	start, stop, step, err := spec.Indices(elem.Len())
	if err != nil {
		return err
	}
	drop := make(map[int]struct{})
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		drop[i] = struct{}{}
	}

	out := reflect.MakeSlice(elem.Type(), 0, elem.Len()-len(drop))
	for i := 0; i < elem.Len(); i++ {
		if _, dropped := drop[i]; !dropped {
			out = reflect.Append(out, elem.Index(i))
		}
	}
	elem.Set(out)
	return nil
}
