// Package rpcvalue implements the dynamic value model of a JSON-RPC/XML-RPC
// protocol library: request parameters, response results and fault payloads
// are all represented, converted, compared and serialized through the single
// polymorphic Value type.
//
// A Value behaves like a JSON/JavaScript value inside a statically typed
// host. Its kind may change freely over its lifetime unless the Value is
// frozen, after which the kind is locked and typed views into the payload
// stay valid (see Freeze and As).
//
// Values are not safe for concurrent mutation. Read-only sharing across
// goroutines is fine; any mutable reference must be confined to one
// goroutine at a time.
package rpcvalue
