package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x00, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a}
	r := NewReader(buf)

	v8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0002), v16)

	v32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x06050403), v32)

	assert.Equal(t, 4, r.Remaining())
}

func TestReaderNotEnoughData(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.Uint32()
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotEnoughData, code)
}

func TestReaderAdvanceDoesNotMoveOnFailure(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	before := r.Pos()
	err := r.Advance(10)
	require.Error(t, err)
	assert.Equal(t, before, r.Pos())
}

func TestReaderStringBorrowsUnderlyingBuffer(t *testing.T) {
	buf := []byte{3, 0, 'f', 'o', 'o'}
	r := NewReader(buf)
	s, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "foo", s.String())

	// mutating the source buffer should be visible through the view: proof
	// the decode did not copy.
	buf[2] = 'b'
	assert.Equal(t, "boo", s.String())
}

func TestReaderBlob(t *testing.T) {
	buf := []byte{2, 0, 0, 0, 0xAA, 0xBB}
	r := NewReader(buf)
	b, err := r.Blob()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, b)
}

func TestWriterRoundTripsPrimitives(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf)

	require.NoError(t, w.PutUint8(0xAB))
	require.NoError(t, w.PutUint16(0x1234))
	require.NoError(t, w.PutUint32(0xDEADBEEF))
	require.NoError(t, w.PutUint64(0x0102030405060708))

	r := NewReader(w.Bytes())
	v8, _ := r.Uint8()
	v16, _ := r.Uint16()
	v32, _ := r.Uint32()
	v64, _ := r.Uint64()
	assert.Equal(t, uint8(0xAB), v8)
	assert.Equal(t, uint16(0x1234), v16)
	assert.Equal(t, uint32(0xDEADBEEF), v32)
	assert.Equal(t, uint64(0x0102030405060708), v64)
}

func TestWriterInsufficientSpace(t *testing.T) {
	w := NewWriter(make([]byte, 1))
	err := w.PutUint32(1)
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInsufficientSpace, code)
}

func TestWriterSeekBackfill(t *testing.T) {
	w := NewWriter(make([]byte, 8))
	require.NoError(t, w.PutUint32(0)) // placeholder
	require.NoError(t, w.PutUint32(0xAABBCCDD))

	end := w.Pos()
	require.NoError(t, w.Seek(0))
	require.NoError(t, w.PutUint32(42))
	require.NoError(t, w.Seek(end))

	r := NewReader(w.Bytes())
	first, _ := r.Uint32()
	second, _ := r.Uint32()
	assert.Equal(t, uint32(42), first)
	assert.Equal(t, uint32(0xAABBCCDD), second)
}

func TestPutStringRejectsOversizedString(t *testing.T) {
	w := NewWriter(make([]byte, 70000))
	oversized := make([]byte, 0x10000)
	err := w.PutString(string(oversized))
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInsufficientSpace, code)
}
