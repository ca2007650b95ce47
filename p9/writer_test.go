package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWriterBeginFinalizeBackfillsSize(t *testing.T) {
	buf := make([]byte, 64)
	rw := NewRequestWriter(buf)
	require.NoError(t, rw.Begin(Tversion, NoTag))
	require.NoError(t, rw.Writer().PutUint32(8192))
	require.NoError(t, rw.Writer().PutString(VersionBase))

	frame, err := rw.Finalize()
	require.NoError(t, err)

	r := NewReader(frame)
	h, err := ParseHeader(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(frame)), h.Size)
	assert.Equal(t, Tversion, h.Type)
	assert.Equal(t, NoTag, h.Tag)
}

func TestResponseWriterBeginFinalize(t *testing.T) {
	buf := make([]byte, 64)
	rw := NewResponseWriter(buf)
	require.NoError(t, rw.Begin(Rversion, 7))
	require.NoError(t, rw.Writer().PutUint32(8192))
	require.NoError(t, rw.Writer().PutString(VersionBase))

	frame, err := rw.Finalize()
	require.NoError(t, err)

	r := NewReader(frame)
	h, err := ParseHeader(r)
	require.NoError(t, err)
	assert.Equal(t, Rversion, h.Type)
	assert.Equal(t, uint16(7), h.Tag)
}

func TestBeginWalkPathWriterBackfillsCount(t *testing.T) {
	buf := make([]byte, 256)
	rw := NewRequestWriter(buf)
	require.NoError(t, rw.Begin(Twalk, 1))

	pw, err := rw.BeginWalk(1, 2)
	require.NoError(t, err)
	require.NoError(t, pw.Add("usr"))
	require.NoError(t, pw.Add("glenda"))
	require.NoError(t, pw.Finish())

	frame, err := rw.Finalize()
	require.NoError(t, err)

	r := NewReader(frame)
	_, err = ParseHeader(r)
	require.NoError(t, err)
	m, err := parseTwalk(Header{}, r)
	require.NoError(t, err)
	tw := m.(*TwalkMsg)
	assert.Equal(t, []string{"usr", "glenda"}, tw.Wname.Strings())
}

func TestPathWriterRejectsTooManyElements(t *testing.T) {
	buf := make([]byte, 8192)
	w := NewWriter(buf)
	pw, err := beginPathSegments(w)
	require.NoError(t, err)
	for i := 0; i < MaxWalkElements; i++ {
		require.NoError(t, pw.Add("x"))
	}
	err = pw.Add("overflow")
	require.Error(t, err)
	code, _ := CodeOf(err)
	assert.Equal(t, ErrCodeWalkTooLong, code)
}

func TestDataWriterBackfillsLength(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	dw, err := beginDataBlob(w)
	require.NoError(t, err)
	require.NoError(t, dw.Append([]byte("hello")))
	require.NoError(t, dw.Append([]byte(", world")))
	require.NoError(t, dw.Finish())

	r := NewReader(w.Bytes())
	n, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(len("hello, world")), n)
	data, err := r.Bytes(int(n))
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(data))
}

func TestResponseWriterBeginDataResponseSharedByReadAndShortread(t *testing.T) {
	for _, typ := range []uint8{Rread, Rshortread} {
		buf := make([]byte, 64)
		rw := NewResponseWriter(buf)
		require.NoError(t, rw.Begin(typ, NoTag))
		dw, err := rw.BeginDataResponse()
		require.NoError(t, err)
		require.NoError(t, dw.Append([]byte("abc")))
		require.NoError(t, dw.Finish())
		frame, err := rw.Finalize()
		require.NoError(t, err)
		assert.True(t, len(frame) > HeaderSize)
	}
}

func TestWriteRequestAndWriteResponseHelpers(t *testing.T) {
	buf := make([]byte, 128)
	frame, err := WriteRequest(buf, 1, &TattachMsg{Fid: 1, Afid: NoFid, Uname: RawString("glenda"), Aname: RawString("")})
	require.NoError(t, err)
	r := NewReader(frame)
	h, err := ParseHeader(r)
	require.NoError(t, err)
	assert.Equal(t, Tattach, h.Type)
	assert.True(t, h.IsRequest())

	buf2 := make([]byte, 128)
	frame2, err := WriteResponse(buf2, 1, &RattachMsg{Qid: Qid{Type: QTDir, Path: 1}})
	require.NoError(t, err)
	r2 := NewReader(frame2)
	h2, err := ParseHeader(r2)
	require.NoError(t, err)
	assert.Equal(t, Rattach, h2.Type)
	assert.True(t, h2.IsResponse())
}

func TestBeginShortReadAndShortWritePathWriters(t *testing.T) {
	buf := make([]byte, 256)
	rw := NewRequestWriter(buf)
	require.NoError(t, rw.Begin(Tshortread, 1))
	pw, err := rw.BeginShortReadPath(9)
	require.NoError(t, err)
	require.NoError(t, pw.Add("etc"))
	require.NoError(t, pw.Finish())
	frame, err := rw.Finalize()
	require.NoError(t, err)
	assert.True(t, len(frame) > HeaderSize)

	buf2 := make([]byte, 256)
	rw2 := NewRequestWriter(buf2)
	require.NoError(t, rw2.Begin(Tshortwrite, 1))
	pw2, err := rw2.BeginShortWritePath(9)
	require.NoError(t, err)
	require.NoError(t, pw2.Add("tmp"))
	require.NoError(t, pw2.Finish())
	require.NoError(t, rw2.Writer().PutBlob([]byte("data")))
	frame2, err := rw2.Finalize()
	require.NoError(t, err)
	assert.True(t, len(frame2) > HeaderSize)
}
