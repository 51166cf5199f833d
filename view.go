package rpcvalue

// Payload enumerates the payload types a typed view can expose.
type Payload interface {
	bool | int32 | float64 | string | Object | Array
}

func payloadKind[T Payload]() Kind {
	switch any(*new(T)).(type) {
	case bool:
		return KindBoolean
	case int32:
		return KindInt32
	case float64:
		return KindDouble
	case string:
		return KindString
	case Object:
		return KindObject
	default:
		return KindArray
	}
}

// View is a kind-stable typed handle into a Value's payload. A View only
// exists for a frozen Value of the matching kind, so Get and Set never need
// a runtime kind check: a kind change through a View is a compile-time
// impossibility.
type View[T Payload] struct {
	v *Value
}

// As asserts v is of the kind matching T and returns a typed view into its
// payload, failing with TypeMismatchError otherwise. The Value is frozen so
// the view's kind guarantee holds for as long as the Value lives.
func As[T Payload](v *Value) (View[T], error) {
	if k := payloadKind[T](); v.kind != k {
		return View[T]{}, &TypeMismatchError{Want: k, Got: v.kind}
	}
	v.Freeze()
	return View[T]{v: v}, nil
}

// Get returns the payload.
func (r View[T]) Get() T {
	switch any(*new(T)).(type) {
	case bool:
		return any(r.v.b).(T)
	case int32:
		return any(r.v.i32).(T)
	case float64:
		return any(r.v.f64).(T)
	case string:
		return any(r.v.str).(T)
	case Object:
		return any(r.v.obj).(T)
	default:
		return any(r.v.arr).(T)
	}
}

// Set replaces the payload with val, a same-kind mutation that is always
// legal on a frozen Value.
func (r View[T]) Set(val T) {
	switch p := any(val).(type) {
	case bool:
		r.v.b = p
	case int32:
		r.v.i32 = p
	case float64:
		r.v.f64 = p
	case string:
		r.v.str = p
	case Object:
		r.v.obj = p
	case Array:
		r.v.arr = p
	}
}

// Value returns the viewed Value.
func (r View[T]) Value() *Value {
	return r.v
}
