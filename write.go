package rpcvalue

import "github.com/go-faster/errors"

// Writer is an abstract serialization sink driven by Value.Write. The wire
// format (JSON, XML-RPC, ...) is entirely the sink's policy.
type Writer interface {
	WriteNull() error
	WriteBool(v bool) error
	WriteDouble(v float64) error
	WriteInt32(v int32) error
	WriteString(v string) error
	StartStruct() error
	EndStruct() error
	StartStructElement(key string) error
	EndStructElement() error
	StartArray() error
	EndArray() error
}

// Write recursively emits the Value into w. Undefined and null both emit
// null. Object members holding an undefined Value are omitted entirely;
// undefined array elements emit null so positions are preserved.
func (v *Value) Write(w Writer) error {
	switch v.kind {
	case KindUndefined, KindNull:
		return w.WriteNull()
	case KindBoolean:
		return w.WriteBool(v.b)
	case KindDouble:
		return w.WriteDouble(v.f64)
	case KindInt32:
		return w.WriteInt32(v.i32)
	case KindString:
		return w.WriteString(v.str)
	case KindObject:
		if err := w.StartStruct(); err != nil {
			return err
		}
		for k := range v.obj {
			e := v.obj[k]
			if e.IsUndefined() {
				continue
			}
			if err := w.StartStructElement(k); err != nil {
				return err
			}
			if err := e.Write(w); err != nil {
				return errors.Wrapf(err, "member %q", k)
			}
			if err := w.EndStructElement(); err != nil {
				return err
			}
		}
		return w.EndStruct()
	case KindArray:
		if err := w.StartArray(); err != nil {
			return err
		}
		for i := range v.arr {
			e := &v.arr[i]
			if e.IsUndefined() {
				if err := w.WriteNull(); err != nil {
					return err
				}
				continue
			}
			if err := e.Write(w); err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
		}
		return w.EndArray()
	default:
		return nil
	}
}
