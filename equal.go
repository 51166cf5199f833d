package rpcvalue

// Equal reports strict structural equality of a and b. Kinds must match
// exactly: there is no cross-kind coercion, so Int32(1) is not equal to
// Double(1). Objects compare by key set and per-key recursion, arrays by
// length and per-index recursion. The frozen bit does not take part.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBoolean:
		return a.b == b.b
	case KindDouble:
		return a.f64 == b.f64
	case KindInt32:
		return a.i32 == b.i32
	case KindString:
		return a.str == b.str
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k := range a.obj {
			av, bv := a.obj[k], b.obj[k]
			if _, ok := b.obj[k]; !ok {
				return false
			}
			if !Equal(&av, &bv) {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(&a.arr[i], &b.arr[i]) {
				return false
			}
		}
		return true
	default:
		// Undefined and null carry no payload.
		return true
	}
}

// Equal reports strict structural equality with o.
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}
