package udmf

import (
	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/handle"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
)

// UnifiedData is a container of records, the unit exchanged between
// applications.
type UnifiedData struct {
	lib abi.Library
	ref *handle.Ref
}

// NewUnifiedData creates an empty data store owned by the caller.
func NewUnifiedData(lib abi.Library) (*UnifiedData, error) {
	ref, err := handle.New(lib, abi.KindData)
	if err != nil {
		return nil, err
	}
	return &UnifiedData{lib: lib, ref: ref}, nil
}

// Close destroys the store and every record it holds.
func (d *UnifiedData) Close() error {
	return d.ref.Close()
}

// AddRecord copies r into the store. The caller still owns r and must
// close it; later changes to r do not reach the stored copy.
func (d *UnifiedData) AddRecord(r *UnifiedRecord) error {
	const op = "UnifiedData.AddRecord"
	if r == nil {
		return errors.New(op, errors.KindInvalidParam).Detail("nil record").Build()
	}
	return errors.Check(op, d.lib.DataAddRecord(d.ref.Raw(), r.ref.Raw()))
}

// HasType reports whether any record holds an entry of type t. A t the
// library cannot be handed reports false.
func (d *UnifiedData) HasType(t udt.Type) bool {
	a := marshal.NewArena(d.lib)
	defer a.Release()

	p, err := a.Type("UnifiedData.HasType", t)
	if err != nil {
		return false
	}
	return d.lib.DataHasType(d.ref.Raw(), p)
}

// Types lists the distinct entry types across all records.
func (d *UnifiedData) Types() ([]udt.Type, error) {
	p, n := d.lib.DataGetTypes(d.ref.Raw())
	types, err := marshal.NewList(d.lib.Memory(), p, n, marshal.TypeEntry, nil).Collect()
	if err != nil {
		return nil, errors.Memory("UnifiedData.Types", err)
	}
	return types, nil
}

// Records returns the stored records in insertion order. They are
// borrowed from d: closing them does nothing, and they must not be used
// after d is closed.
func (d *UnifiedData) Records() ([]*UnifiedRecord, error) {
	p, n := d.lib.DataGetRecords(d.ref.Raw())
	handles, err := marshal.NewList(d.lib.Memory(), p, n, marshal.HandleEntry, nil).Collect()
	if err != nil {
		return nil, errors.Memory("UnifiedData.Records", err)
	}
	records := make([]*UnifiedRecord, len(handles))
	for i, h := range handles {
		records[i] = &UnifiedRecord{lib: d.lib, ref: handle.Borrow(abi.KindRecord, h)}
	}
	return records, nil
}
