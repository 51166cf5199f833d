package rpcvalue

// transferPlan is the strategy Move uses to transfer a payload.
type transferPlan uint8

const (
	planSteal transferPlan = iota
	planSwap
	planCopy
)

// String implements fmt.Stringer.
func (p transferPlan) String() string {
	switch p {
	case planSteal:
		return "steal"
	case planSwap:
		return "swap"
	case planCopy:
		return "copy"
	default:
		return "invalid"
	}
}

// planTransfer decides how Move transfers the payload of src into dst.
//
// Steal when the donor is free to give up its kind (unfrozen, or frozen at
// Undefined so resetting it changes nothing). Swap when the donor must keep
// its kind but both sides hold owning storage of the same kind, leaving the
// donor with a valid empty container. Otherwise degrade to a deep copy with
// the donor untouched. A frozen destination of a different kind fails.
func planTransfer(dstFrozen, srcFrozen bool, dst, src Kind) (transferPlan, error) {
	if dstFrozen && dst != src {
		return planCopy, &FrozenError{Kind: dst, Attempted: src}
	}
	if !srcFrozen || src == KindUndefined {
		return planSteal, nil
	}
	if dst == src && src.owning() {
		return planSwap, nil
	}
	return planCopy, nil
}

func cloneObject(m Object) Object {
	out := make(Object, len(m))
	for k, e := range m {
		out[k] = e.Clone()
	}
	return out
}

func cloneArray(a Array) Array {
	out := make(Array, 0, len(a))
	for _, e := range a {
		out = append(out, e.Clone())
	}
	return out
}

// Clone returns a deep, unfrozen copy of the Value.
func (v *Value) Clone() Value {
	w := Value{kind: v.kind, b: v.b, i32: v.i32, f64: v.f64, str: v.str}
	switch v.kind {
	case KindObject:
		w.obj = cloneObject(v.obj)
	case KindArray:
		w.arr = cloneArray(v.arr)
	}
	return w
}

// Assign copy-assigns o into v. Self-assignment is a no-op. When kinds
// match, contents are deep-copied in place, keeping existing storage (and
// with it any outstanding typed view). When kinds differ the change goes
// through the mutation gate and fails with FrozenError on a frozen v; only
// then is the old payload released and a deep copy of o installed, so a
// failed Assign leaves v untouched.
func (v *Value) Assign(o *Value) error {
	if v == o {
		return nil
	}
	if v.kind == o.kind {
		switch v.kind {
		case KindString:
			v.str = o.str
		case KindObject:
			clear(v.obj)
			for k, e := range o.obj {
				v.obj[k] = e.Clone()
			}
		case KindArray:
			v.arr = v.arr[:0]
			for _, e := range o.arr {
				v.arr = append(v.arr, e.Clone())
			}
		default:
			v.b, v.i32, v.f64 = o.b, o.i32, o.f64
		}
		return nil
	}
	old, err := v.setKind(o.kind)
	if err != nil {
		return err
	}
	v.release(old)
	switch o.kind {
	case KindString:
		v.str = o.str
	case KindObject:
		v.obj = cloneObject(o.obj)
	case KindArray:
		v.arr = cloneArray(o.arr)
	default:
		v.b, v.i32, v.f64 = o.b, o.i32, o.f64
	}
	return nil
}

// Move move-assigns o into v following planTransfer. Self-assignment is a
// no-op. On the steal path o ends up Undefined; on the swap path o keeps its
// kind and is left holding a valid empty container; on the copy path o is
// read but not modified.
func (v *Value) Move(o *Value) error {
	if v == o {
		return nil
	}
	plan, err := planTransfer(v.frozen, o.frozen, v.kind, o.kind)
	if err != nil {
		return err
	}
	switch plan {
	case planSteal:
		old, err := v.setKind(o.kind)
		if err != nil {
			return err
		}
		v.release(old)
		v.b, v.i32, v.f64 = o.b, o.i32, o.f64
		v.str, v.obj, v.arr = o.str, o.obj, o.arr
		// Ownership transferred, nothing to release on the donor.
		if _, err := o.setKind(KindUndefined); err != nil {
			return err
		}
		o.b, o.i32, o.f64 = false, 0, 0
		o.str, o.obj, o.arr = "", nil, nil
	case planSwap:
		switch v.kind {
		case KindString:
			v.str, o.str = o.str, ""
		case KindObject:
			clear(v.obj)
			v.obj, o.obj = o.obj, v.obj
		case KindArray:
			v.arr = v.arr[:0]
			v.arr, o.arr = o.arr, v.arr
		}
	case planCopy:
		return v.Assign(o)
	}
	return nil
}
