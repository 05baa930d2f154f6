package value

import (
	"testing"
)

func TestValue_Classify(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		kind Kind
	}{
		{"null", Null(), NullKind},
		{"bool", Bool(true), BoolKind},
		{"number", Int(1), NumberKind},
		{"string", String("x"), StringKind},
		{"array", NewArray(), ArrayKind},
		{"object", NewObject(), ObjectKind},
		{"zero value is null", &Value{}, NullKind},
		{"nil receiver is null", nil, NullKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	b, err := Bool(true).AsBool()
	if err != nil || !b {
		t.Errorf("AsBool() = %v, %v", b, err)
	}
	s, err := String("hi").AsString()
	if err != nil || s != "hi" {
		t.Errorf("AsString() = %q, %v", s, err)
	}
	n, err := Int(9).AsNumber()
	if err != nil || !n.Equal(IntNumber(9)) {
		t.Errorf("AsNumber() = %v, %v", n, err)
	}

	if _, err := String("hi").AsBool(); err == nil {
		t.Error("AsBool on string should fail")
	} else if tm, ok := err.(*TypeMismatchError); !ok {
		t.Errorf("error type = %T, want *TypeMismatchError", err)
	} else if tm.Want != "bool" || tm.Got != "string" {
		t.Errorf("mismatch fields = %q/%q", tm.Want, tm.Got)
	}

	if _, err := Null().AsArray(); err == nil {
		t.Error("AsArray on null should fail")
	}
	if _, err := NewArray().AsObject(); err == nil {
		t.Error("AsObject on array should fail")
	}
}

func TestValue_Setters(t *testing.T) {
	v := Null()
	v.SetBool(true)
	if !v.IsBool() {
		t.Fatalf("kind after SetBool = %v", v.Kind())
	}
	v.SetString("s")
	if got, _ := v.AsString(); got != "s" {
		t.Errorf("AsString after SetString = %q", got)
	}
	v.SetInt(-4)
	if n, _ := v.AsNumber(); !n.Equal(IntNumber(-4)) {
		t.Errorf("number after SetInt = %v", n)
	}
	v.SetFloat(0.5)
	if n, _ := v.AsNumber(); n.Form() != FloatForm {
		t.Errorf("form after SetFloat = %v", n.Form())
	}
	v.Set(NewArray(Int(1)))
	if !v.IsArray() {
		t.Errorf("kind after Set = %v", v.Kind())
	}
	v.Set(nil)
	if !v.IsNull() {
		t.Errorf("kind after Set(nil) = %v", v.Kind())
	}
}

func TestValue_Clone(t *testing.T) {
	orig := NewObject()
	obj, _ := orig.AsObject()
	obj.Insert("a", NewArray(Int(1), String("x")))
	obj.Insert("a", Bool(false)) // duplicate key survives cloning

	clone := orig.Clone()
	if !orig.Equal(clone) {
		t.Fatal("clone not equal to original")
	}

	// Mutating the clone leaves the original untouched.
	cobj, _ := clone.AsObject()
	cv, _ := cobj.Get("a")
	cv.SetNull()
	ov, _ := obj.Get("a")
	if !ov.IsArray() {
		t.Error("mutating clone affected original")
	}
	if cobj.Len() != 2 {
		t.Errorf("clone lost duplicate entries: len = %d", cobj.Len())
	}
}

func TestValue_String(t *testing.T) {
	v := NewObject()
	obj, _ := v.AsObject()
	obj.Insert("a", Int(1))
	obj.Insert("b", NewArray(Bool(true), Null()))
	want := `{"a":1,"b":[true,null]}`
	if got := v.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestFrom(t *testing.T) {
	v, err := From(map[string]any{
		"b": []any{int64(1), "x", nil},
		"a": 2.5,
	})
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	obj, err := v.AsObject()
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	if obj.Len() != 2 {
		t.Fatalf("Len = %d, want 2", obj.Len())
	}
	// Map keys are inserted in sorted order.
	var keys []string
	for k := range obj.All() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}

	arrVal := v.Resolve(Root().Key("b"))
	arr, err := arrVal.AsArray()
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if arr.Len() != 3 {
		t.Errorf("array len = %d, want 3", arr.Len())
	}

	if _, err := From(make(chan int)); err == nil {
		t.Error("From(chan) should fail")
	}
}
