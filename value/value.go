package value

import (
	"bytes"
	"strconv"
)

// Kind identifies the concrete type stored in a Var.
type Kind uint8

const (
	// KindInteger represents a 64-bit signed integer.
	KindInteger Kind = iota
	// KindFloat represents a 32-bit float.
	KindFloat
	// KindString represents an owned byte string.
	KindString
)

var kindTokens = [...]string{
	KindInteger: "integer",
	KindFloat:   "float",
	KindString:  "string",
}

// String returns the stable token for k, or "invalid" for unknown kinds.
func (k Kind) String() string {
	if int(k) < len(kindTokens) {
		return kindTokens[k]
	}
	return "invalid"
}

// Var is a closed variant over Integer, Float and *String.
type Var interface {
	// Kind reports the discriminant.
	Kind() Kind
	// String renders the payload: integers in decimal, floats in fixed
	// point with six decimals, strings as raw bytes.
	String() string
	// Size returns the payload size in bytes used for memory accounting.
	Size() int

	isNil() bool
	release()
}

// Integer is a 64-bit signed integer Var.
type Integer int64

// Kind implements Var.
func (Integer) Kind() Kind { return KindInteger }

// String implements Var.
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// Size implements Var.
func (Integer) Size() int { return 8 }

func (Integer) isNil() bool { return false }

func (Integer) release() {}

// Float is a 32-bit float Var.
type Float float32

// Kind implements Var.
func (Float) Kind() Kind { return KindFloat }

// String implements Var.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', 6, 32) }

// Size implements Var.
func (Float) Size() int { return 4 }

func (Float) isNil() bool { return false }

func (Float) release() {}

// String is a byte-string Var that owns its buffer.
type String struct {
	b []byte
}

// NewString returns a String holding a copy of b.
func NewString(b []byte) *String {
	return &String{b: bytes.Clone(b)}
}

// FromString returns a String holding the bytes of s.
func FromString(s string) *String {
	return &String{b: []byte(s)}
}

// Kind implements Var.
func (*String) Kind() Kind { return KindString }

// String implements Var.
func (s *String) String() string { return string(s.b) }

// Size implements Var.
func (s *String) Size() int { return len(s.b) }

// Bytes returns the owned buffer. The slice must not be modified and is
// invalid once the value is destroyed.
func (s *String) Bytes() []byte { return s.b }

// Len returns the length of the payload in bytes.
func (s *String) Len() int { return len(s.b) }

func (s *String) isNil() bool { return s == nil }

func (s *String) release() {
	if s == nil {
		return
	}
	clear(s.b)
	s.b = nil
}

// KindOf returns the kind of v.
func KindOf(v Var) Kind { return v.Kind() }

// Render returns the display text of v.
func Render(v Var) string { return v.String() }

// IsNil reports whether v is nil or a nil *String.
func IsNil(v Var) bool { return v == nil || v.isNil() }

// Destroy releases the payload owned by v. It must be called exactly once
// per value; afterwards v must not be used.
func Destroy(v Var) {
	if !IsNil(v) {
		v.release()
	}
}

// Equal reports whether a and b have the same kind and payload.
func Equal(a, b Var) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case *String:
		y, ok := b.(*String)
		return ok && bytes.Equal(x.b, y.b)
	}
	return false
}
