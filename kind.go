package rpcvalue

// Kind is the discriminant of a Value.
//
// Double and Int32 share the number category bit, Object and Array share the
// composite category bit. Category bits never leak into Kind comparisons:
// two kinds are the same iff they are equal, and category membership is
// queried through IsNumber/IsComposite.
type Kind uint8

const (
	KindUndefined Kind = 0x00
	KindNull      Kind = 0x01
	KindBoolean   Kind = 0x02

	kindNumber Kind = 0x04
	KindDouble Kind = kindNumber
	KindInt32  Kind = kindNumber | 0x01

	KindString Kind = 0x08

	kindComposite Kind = 0x10
	KindObject    Kind = kindComposite
	KindArray     Kind = kindComposite | 0x01
)

// IsNumber reports whether k is Double or Int32.
func (k Kind) IsNumber() bool {
	return k&kindNumber != 0
}

// IsComposite reports whether k is Object or Array.
func (k Kind) IsComposite() bool {
	return k&kindComposite != 0
}

// owning reports whether a Value of this kind holds heap storage.
func (k Kind) owning() bool {
	return k == KindString || k.IsComposite()
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindDouble:
		return "double"
	case KindInt32:
		return "int32"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}
