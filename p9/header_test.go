package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	buf := []byte{0x0b, 0, 0, 0, Tversion, 0xff, 0xff}
	h, err := ParseHeader(NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, uint32(11), h.Size)
	assert.Equal(t, Tversion, h.Type)
	assert.Equal(t, uint16(0xffff), h.Tag)
}

func TestParseHeaderShort(t *testing.T) {
	buf := []byte{0, 0, 0}
	_, err := ParseHeader(NewReader(buf))
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeIllFormedHeader, code)
}

func TestParseHeaderFrameTooShort(t *testing.T) {
	buf := []byte{0x02, 0, 0, 0, Tversion, 0, 0}
	_, err := ParseHeader(NewReader(buf))
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeIllFormedHeaderFrameTooShort, code)
}

func TestHeaderParityConvenience(t *testing.T) {
	assert.True(t, Header{Type: Tversion}.IsRequest())
	assert.False(t, Header{Type: Tversion}.IsResponse())
	assert.True(t, Header{Type: Rversion}.IsResponse())
}

func TestHeaderRlerrorHasNoMatchingRequestOpcode(t *testing.T) {
	// Rlerror can answer any Linux-dialect request; parity happens to mark
	// it a response, but there is no corresponding Tlerror to contrast it
	// with, so table membership is what callers should actually rely on.
	h := Header{Type: Rlerror}
	assert.True(t, h.IsResponse())
	_, inRequests := linuxRequestTable.Lookup(h.Type)
	assert.False(t, inRequests)
	_, inResponses := linuxResponseTable.Lookup(h.Type)
	assert.True(t, inResponses)
}
