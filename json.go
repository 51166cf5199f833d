package rpcvalue

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeJSON parses data into a dynamic Value tree. Integers that fit in 32
// bits decode as Int32, all other numbers as Double. The result is not
// frozen: decoded wire data has unknown shape and stays fully dynamic.
func DecodeJSON(data []byte) (Value, error) {
	d := jx.DecodeBytes(data)
	v, err := decodeValue(d)
	if err != nil {
		return Undefined(), errors.Wrap(err, "decode")
	}
	return v, nil
}

// Decode reads one JSON value from d into a Value.
func Decode(d *jx.Decoder) (Value, error) {
	return decodeValue(d)
}

func decodeValue(d *jx.Decoder) (Value, error) {
	switch tt := d.Next(); tt {
	case jx.Null:
		if err := d.Null(); err != nil {
			return Undefined(), err
		}
		return Null(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return Undefined(), err
		}
		return Bool(b), nil
	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return Undefined(), err
		}
		if num.IsInt() {
			n, err := num.Int64()
			if err != nil {
				return Undefined(), err
			}
			if n >= math.MinInt32 && n <= math.MaxInt32 {
				return Int32(int32(n)), nil
			}
			return Int64(n), nil
		}
		f, err := num.Float64()
		if err != nil {
			return Undefined(), err
		}
		return Double(f), nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return Undefined(), err
		}
		return Str(s), nil
	case jx.Array:
		arr := Array{}
		if err := d.Arr(func(d *jx.Decoder) error {
			e, err := decodeValue(d)
			if err != nil {
				return err
			}
			arr = append(arr, e)
			return nil
		}); err != nil {
			return Undefined(), err
		}
		return NewArray(arr), nil
	case jx.Object:
		obj := Object{}
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			e, err := decodeValue(d)
			if err != nil {
				return errors.Wrapf(err, "member %q", key)
			}
			obj[key] = e
			return nil
		}); err != nil {
			return Undefined(), err
		}
		return NewObject(obj), nil
	default:
		return Undefined(), errors.Errorf("unexpected type %s", tt.String())
	}
}
