package rpcvalue

// Object is the keyed mapping payload of a Value. Keys are unique; iteration
// order carries no meaning.
type Object map[string]Value

// Array is the sequence payload of a Value.
type Array []Value

// Value is a dynamically typed RPC value. The zero Value is Undefined.
//
// String, Object and Array payloads are owned exclusively by the Value
// holding them: a container handed to NewObject, NewArray or FromRange is
// given up by the caller, and duplicating a Value goes through Clone, never
// through a plain struct copy.
type Value struct {
	kind   Kind
	frozen bool

	b   bool
	i32 int32
	f64 float64
	str string
	obj Object
	arr Array
}

// Undefined returns the undefined Value.
func Undefined() Value { return Value{} }

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBoolean, b: v} }

// Int32 returns a 32-bit integer Value.
func Int32(v int32) Value { return Value{kind: KindInt32, i32: v} }

// Int64 returns a Double Value holding v. There is no 64-bit integer kind;
// wide integers are carried as doubles, like the protocol does.
func Int64(v int64) Value { return Double(float64(v)) }

// Double returns a 64-bit float Value.
func Double(v float64) Value { return Value{kind: KindDouble, f64: v} }

// Str returns a string Value.
func Str(v string) Value { return Value{kind: KindString, str: v} }

// NewObject returns an object Value taking ownership of m.
// A nil map is replaced with an empty one.
func NewObject(m Object) Value {
	if m == nil {
		m = Object{}
	}
	return Value{kind: KindObject, obj: m}
}

// NewArray returns an array Value taking ownership of a.
func NewArray(a Array) Value {
	return Value{kind: KindArray, arr: a}
}

// Kind returns the kind of the Value.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v *Value) IsNull() bool      { return v.kind == KindNull }
func (v *Value) IsBool() bool      { return v.kind == KindBoolean }
func (v *Value) IsDouble() bool    { return v.kind == KindDouble }
func (v *Value) IsInt32() bool     { return v.kind == KindInt32 }
func (v *Value) IsString() bool    { return v.kind == KindString }
func (v *Value) IsObject() bool    { return v.kind == KindObject }
func (v *Value) IsArray() bool     { return v.kind == KindArray }

// IsNumber reports whether the Value is Double or Int32.
func (v *Value) IsNumber() bool { return v.kind.IsNumber() }

// IsComposite reports whether the Value is Object or Array.
func (v *Value) IsComposite() bool { return v.kind.IsComposite() }

// IsTrue reports whether the Value is the boolean true.
func (v *Value) IsTrue() bool { return v.kind == KindBoolean && v.b }

// IsFalse reports whether the Value is the boolean false.
func (v *Value) IsFalse() bool { return v.kind == KindBoolean && !v.b }

// Frozen reports whether the kind of the Value is locked.
func (v *Value) Frozen() bool { return v.frozen }

// Freeze locks the kind of the Value for the rest of its lifetime. Freezing
// does not validate or change the kind.
func (v *Value) Freeze() { v.frozen = true }

// Unfreeze unlocks the kind of the Value.
func (v *Value) Unfreeze() { v.frozen = false }

// CanChangeKind reports whether the Value may change to an arbitrary kind.
func (v *Value) CanChangeKind() bool { return !v.frozen }

// CanChangeKindTo reports whether the Value may change to kind k. Changing
// into the same kind is always legal, frozen or not.
func (v *Value) CanChangeKindTo(k Kind) bool { return !v.frozen || v.kind == k }

// setKind is the single choke point for kind changes. It returns the
// previous kind, preserving the frozen bit.
func (v *Value) setKind(k Kind) (Kind, error) {
	if !v.CanChangeKindTo(k) {
		return KindUndefined, &FrozenError{Kind: v.kind, Attempted: k}
	}
	old := v.kind
	v.kind = k
	return old, nil
}

// release drops the payload owned by a Value of kind old.
func (v *Value) release(old Kind) {
	switch old {
	case KindString:
		v.str = ""
	case KindObject:
		v.obj = nil
	case KindArray:
		v.arr = nil
	default:
		v.b, v.i32, v.f64 = false, 0, 0
	}
}

// Reset returns the Value to Undefined, releasing any owned storage.
// Fails with FrozenError if the Value is frozen at another kind.
func (v *Value) Reset() error {
	old, err := v.setKind(KindUndefined)
	if err != nil {
		return err
	}
	v.release(old)
	return nil
}

// AsBool asserts the Value is a boolean and returns its payload.
func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, &TypeMismatchError{Want: KindBoolean, Got: v.kind}
	}
	return v.b, nil
}

// AsDouble asserts the Value is a double and returns its payload.
func (v *Value) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, &TypeMismatchError{Want: KindDouble, Got: v.kind}
	}
	return v.f64, nil
}

// AsInt32 asserts the Value is a 32-bit integer and returns its payload.
func (v *Value) AsInt32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, &TypeMismatchError{Want: KindInt32, Got: v.kind}
	}
	return v.i32, nil
}

// AsString asserts the Value is a string and returns its payload.
func (v *Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

// AsObject asserts the Value is an object and returns its payload.
// The returned map is the payload itself, not a copy.
func (v *Value) AsObject() (Object, error) {
	if v.kind != KindObject {
		return nil, &TypeMismatchError{Want: KindObject, Got: v.kind}
	}
	return v.obj, nil
}

// AsArray asserts the Value is an array and returns its payload.
// The returned slice is the payload itself, not a copy.
func (v *Value) AsArray() (Array, error) {
	if v.kind != KindArray {
		return nil, &TypeMismatchError{Want: KindArray, Got: v.kind}
	}
	return v.arr, nil
}
