// Package value provides Var, the small typed value stored in a chainmap table.
//
// # Kinds
//
// A Var is exactly one of:
//
//   - Integer: value.Integer(24)
//   - Float:   value.Float(1.5)
//   - String:  value.FromString("Ryan") or value.NewString(buf)
//
// The set is closed. Var carries an unexported method, so only this package
// can define variants and a value can never be inspected through the wrong kind.
//
// # Ownership
//
// String copies its input on construction; the caller's buffer may be reused
// immediately. A Var is owned by exactly one holder at a time (the caller, or a
// table after a successful insert) and must be destroyed exactly once with
// Destroy. Destroying a value twice is a caller error and is not detected.
//
// Example:
//
//	v := value.FromString("lvdadfad")
//	fmt.Println(v.Kind(), value.Render(v)) // string lvdadfad
//	value.Destroy(v)
package value
