package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeTableCloneIsIndependent(t *testing.T) {
	base := NewOpcodeTable()
	base.Set(1, "one", func(h Header, r *Reader) (Message, error) { return nil, nil })

	clone := base.Clone()
	clone.Set(1, "one-overridden", func(h Header, r *Reader) (Message, error) { return nil, nil })

	assert.Equal(t, "one", base.Name(1))
	assert.Equal(t, "one-overridden", clone.Name(1))
}

func TestOpcodeTableUnmappedSlot(t *testing.T) {
	table := NewOpcodeTable()
	_, ok := table.Lookup(42)
	assert.False(t, ok)
	assert.Equal(t, "unsupported opcode", table.Name(42))
}

func TestDispatchTooBig(t *testing.T) {
	h := Header{Size: 100, Type: Tversion, Tag: NoTag}
	_, err := Dispatch(baseRequestTable, 50, h, NewReader(nil))
	require.Error(t, err)
	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeIllFormedHeaderTooBig, code)
}

func TestDispatchNotEnoughData(t *testing.T) {
	h := Header{Size: HeaderSize + 10, Type: Tversion, Tag: NoTag}
	_, err := Dispatch(baseRequestTable, DefaultMaxMessageSize, h, NewReader(make([]byte, 3)))
	require.Error(t, err)
	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeNotEnoughData, code)
}

func TestDispatchMoreThanExpectedData(t *testing.T) {
	// the reader holds more bytes than the header's declared frame size
	// accounts for.
	body := make([]byte, 20)
	h := Header{Size: HeaderSize + 4, Type: Tversion, Tag: NoTag}
	_, err := Dispatch(baseRequestTable, DefaultMaxMessageSize, h, NewReader(body))
	require.Error(t, err)
	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeMoreThanExpectedData, code)
}

func TestDispatchUnsupportedOpcode(t *testing.T) {
	h := Header{Size: HeaderSize, Type: 200, Tag: NoTag}
	_, err := Dispatch(baseRequestTable, DefaultMaxMessageSize, h, NewReader(nil))
	require.Error(t, err)
	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeUnsupportedMessageType, code)
}

func TestDispatchSuccess(t *testing.T) {
	body := make([]byte, 64)
	w := NewWriter(body)
	require.NoError(t, w.PutUint32(8192))
	require.NoError(t, w.PutString(VersionBase))
	n := w.Pos()

	h := Header{Size: uint32(HeaderSize + n), Type: Tversion, Tag: NoTag}
	m, err := Dispatch(baseRequestTable, DefaultMaxMessageSize, h, NewReader(body[:n]))
	require.NoError(t, err)
	tv, ok := m.(*TversionMsg)
	require.True(t, ok)
	assert.Equal(t, uint32(8192), tv.Msize)
	assert.Equal(t, VersionBase, tv.Version.String())
}
