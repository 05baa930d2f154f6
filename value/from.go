package value

import (
	"fmt"
	"slices"
)

// From converts a native Go value to a *Value.
//
// Supported inputs: nil, bool, string, all integer and unsigned integer
// types, float32/float64, [Number], *Value (taken as-is, transferring
// ownership), []any, []*Value, and map[string]any. Map keys are inserted
// in sorted order so the conversion is deterministic. Nested values
// convert recursively.
//
// Unsupported types fail with [*TypeMismatchError].
func From(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case Number:
		return FromNumber(x), nil
	case []*Value:
		return NewArray(x...), nil
	case []any:
		arr := NewArray()
		a, _ := arr.AsArray()
		for _, e := range x {
			ev, err := From(e)
			if err != nil {
				return nil, err
			}
			a.PushBack(ev)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		o, _ := obj.AsObject()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			ev, err := From(x[k])
			if err != nil {
				return nil, err
			}
			o.Insert(k, ev)
		}
		return obj, nil
	default:
		return nil, &TypeMismatchError{
			Want: "JSON-representable value",
			Got:  fmt.Sprintf("%T", v),
		}
	}
}
