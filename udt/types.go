package udt

import "strconv"

// Type is a uniform data type identifier. The set of implementations is
// closed: Kind and Custom.
type Type interface {
	String() string
	isType()
}

// Kind is a well-known uniform data type.
type Kind uint16

func (Kind) isType() {}

// String returns the wire identifier. Kinds outside the table render as
// "udt.Kind(N)"; they never come out of Parse.
func (k Kind) String() string {
	if k > 0 && int(k) < len(wireIDs) {
		return wireIDs[k]
	}
	return "udt.Kind(" + strconv.Itoa(int(k)) + ")"
}

// Custom is an application-defined type identifier. It is carried
// verbatim, including identifiers that collide with no catalog entry.
type Custom string

func (Custom) isType() {}

func (c Custom) String() string { return string(c) }

var byWire = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(1); k <= kindCount; k++ {
		m[wireIDs[k]] = k
	}
	return m
}()

// Parse maps a wire identifier to its Kind, or to Custom when it names no
// well-known type. It never fails.
func Parse(s string) Type {
	if k, ok := byWire[s]; ok {
		return k
	}
	return Custom(s)
}

// Equal reports whether a and b have the same wire identifier, so
// Custom("general.plain-text") equals PlainText.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// IsKnown reports whether t names a well-known type.
func IsKnown(t Type) bool {
	switch v := t.(type) {
	case Kind:
		return v > 0 && v <= kindCount
	case Custom:
		_, ok := byWire[string(v)]
		return ok
	}
	return false
}

// Kinds returns every well-known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(1); k <= kindCount; k++ {
		out = append(out, k)
	}
	return out
}
