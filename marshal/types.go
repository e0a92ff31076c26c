package marshal

import (
	"strings"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/udt"
)

// TypeEntry decodes an entry as a type identifier. Well-known types are
// resolved straight from library memory; only custom identifiers are
// copied out.
func TypeEntry(mem abi.Memory, entry uint32) (udt.Type, error) {
	s, err := BorrowString(mem, abi.Ptr(entry))
	if err != nil {
		return nil, err
	}
	t := udt.Parse(s)
	if c, ok := t.(udt.Custom); ok {
		return udt.Custom(strings.Clone(string(c))), nil
	}
	return t, nil
}

// Type stages the wire identifier of t. A nil t is an InvalidParam error.
func (a *Arena) Type(op string, t udt.Type) (abi.Ptr, error) {
	if t == nil {
		return 0, errors.NilType(op)
	}
	return a.String(op, t.String())
}
