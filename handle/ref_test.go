package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/handle"
)

type destroyed struct {
	kind abi.Kind
	h    abi.Handle
}

// countingLifecycle hands out sequential handles and records destroys
type countingLifecycle struct {
	next      abi.Handle
	fail      bool
	destroyed []destroyed
}

func (c *countingLifecycle) Create(abi.Kind) abi.Handle {
	if c.fail {
		return 0
	}
	c.next++
	return c.next
}

func (c *countingLifecycle) Destroy(kind abi.Kind, h abi.Handle) {
	c.destroyed = append(c.destroyed, destroyed{kind, h})
}

func TestNew_OwnerDestroysOnce(t *testing.T) {
	lib := &countingLifecycle{}
	ref, err := handle.New(lib, abi.KindRecord)
	require.NoError(t, err)
	assert.True(t, ref.Owned())
	assert.Equal(t, abi.KindRecord, ref.Kind())
	assert.Equal(t, abi.Handle(1), ref.Raw())

	require.NoError(t, ref.Close())
	require.NoError(t, ref.Close())

	assert.Equal(t, []destroyed{{abi.KindRecord, 1}}, lib.destroyed)
	assert.Zero(t, ref.Raw())
}

func TestNew_NullHandle(t *testing.T) {
	lib := &countingLifecycle{fail: true}
	ref, err := handle.New(lib, abi.KindData)
	assert.Nil(t, ref)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInternal)
	assert.Empty(t, lib.destroyed)
}

func TestOwn(t *testing.T) {
	lib := &countingLifecycle{}
	ref, err := handle.Own(lib, abi.KindDescriptor, 42)
	require.NoError(t, err)
	require.NoError(t, ref.Close())
	assert.Equal(t, []destroyed{{abi.KindDescriptor, 42}}, lib.destroyed)

	_, err = handle.Own(lib, abi.KindDescriptor, 0)
	assert.ErrorIs(t, err, errors.ErrInternal)
}

func TestBorrow_NeverDestroys(t *testing.T) {
	lib := &countingLifecycle{}
	owner, err := handle.New(lib, abi.KindRecord)
	require.NoError(t, err)

	ref := handle.Borrow(abi.KindRecord, owner.Raw())
	assert.False(t, ref.Owned())
	assert.Equal(t, owner.Raw(), ref.Raw())

	require.NoError(t, ref.Close())
	require.NoError(t, ref.Close())
	assert.Zero(t, ref.Raw())
	assert.Empty(t, lib.destroyed)
	assert.Equal(t, abi.Handle(1), owner.Raw(), "owner unaffected")

	require.NoError(t, owner.Close())
	assert.Equal(t, []destroyed{{abi.KindRecord, 1}}, lib.destroyed)
}

func TestClose_NilRef(t *testing.T) {
	var ref *handle.Ref
	assert.NoError(t, ref.Close())
}

func TestString(t *testing.T) {
	lib := &countingLifecycle{}
	ref, err := handle.New(lib, abi.KindHyperlink)
	require.NoError(t, err)
	defer ref.Close()

	assert.Equal(t, "hyperlink#1(owned)", ref.String())
	assert.Equal(t, "record#3(borrowed)", handle.Borrow(abi.KindRecord, 3).String())
}

func TestLifecycleLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := handle.Logger()
	handle.SetLogger(zap.New(core))
	defer handle.SetLogger(prev)

	lib := &countingLifecycle{}
	ref, err := handle.New(lib, abi.KindPlainText)
	require.NoError(t, err)
	require.NoError(t, ref.Close())

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "handle created", entries[0].Message)
	assert.Equal(t, "handle destroyed", entries[1].Message)
	assert.Equal(t, "plain-text", entries[1].ContextMap()["kind"])
}
