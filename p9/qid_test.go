package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQidRoundTrip(t *testing.T) {
	q := Qid{Type: QTDir, Version: 7, Path: 0xFEEDFACE}
	buf := make([]byte, QidSize)
	w := NewWriter(buf)
	require.NoError(t, q.Encode(w))
	assert.Equal(t, QidSize, w.Pos())

	got, err := DecodeQid(NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, q, got)
	assert.True(t, got.IsDir())
}

func TestQidIsDirRequiresBit(t *testing.T) {
	assert.False(t, Qid{Type: QTFile}.IsDir())
	assert.True(t, Qid{Type: QTDir}.IsDir())
	assert.True(t, Qid{Type: QTDir | QTAppend}.IsDir())
}

func TestQidSliceRoundTrip(t *testing.T) {
	qids := []Qid{
		{Type: QTDir, Version: 1, Path: 1},
		{Type: QTFile, Version: 2, Path: 2},
	}
	buf := make([]byte, 2+2*QidSize)
	w := NewWriter(buf)
	require.NoError(t, EncodeQidSlice(w, qids))

	got, err := DecodeQidSlice(NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, qids, got)
}

func TestQidSliceEmpty(t *testing.T) {
	buf := make([]byte, 2)
	w := NewWriter(buf)
	require.NoError(t, EncodeQidSlice(w, nil))
	got, err := DecodeQidSlice(NewReader(buf))
	require.NoError(t, err)
	assert.Empty(t, got)
}
