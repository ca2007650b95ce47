package p9

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTauthUnixRoundTrip(t *testing.T) {
	ta := &TauthUnixMsg{Afid: 1, Uname: RawString("glenda"), Aname: RawString(""), Nuname: 1000}
	got := encodeDecode(t, ta, parseTauthUnix).(*TauthUnixMsg)
	assert.Equal(t, ta.Nuname, got.Nuname)
	assert.Equal(t, "glenda", got.Uname.String())
}

func TestTcreateUnixCarriesExtension(t *testing.T) {
	tc := &TcreateUnixMsg{Fid: 1, Name: RawString("link"), Perm: 0, Mode: OpenMode(ORDWR), Extension: RawString("target.txt")}
	got := encodeDecode(t, tc, parseTcreateUnix).(*TcreateUnixMsg)
	assert.Equal(t, "target.txt", got.Extension.String())
	assert.Equal(t, OpenMode(ORDWR), got.Mode)
}

func TestRerrorUnixCarriesErrno(t *testing.T) {
	re := &RerrorUnixMsg{Ename: RawString("no such file"), Errno: 2}
	got := encodeDecode(t, re, parseRerrorUnix).(*RerrorUnixMsg)
	assert.Equal(t, uint32(2), got.Errno)
	assert.Equal(t, "no such file", got.Ename.String())
}

func TestTwstatRstatUnixCarryUnixStat(t *testing.T) {
	s := UnixStat{Stat: sampleStat(), Nuid: 500, Ngid: 500, Nmuid: 500}
	tw := &TwstatUnixMsg{Fid: 4, Stat: s}
	got := encodeDecode(t, tw, parseTwstatUnix).(*TwstatUnixMsg)
	assert.Equal(t, uint32(500), got.Stat.Nuid)

	rs := &RstatUnixMsg{Stat: s}
	gotR := encodeDecode(t, rs, parseRstatUnix).(*RstatUnixMsg)
	assert.Equal(t, uint32(500), gotR.Stat.Ngid)
}

func TestUnixTablesOverrideExactlySixOpcodes(t *testing.T) {
	overridden := []uint8{Tauth, Tattach, Tcreate, Twstat}
	for _, op := range overridden {
		fn, ok := unixRequestTable.Lookup(op)
		require.True(t, ok)
		baseFn, _ := baseRequestTable.Lookup(op)
		// distinct function values: overridden, not inherited verbatim.
		assert.NotNil(t, fn)
		assert.NotEqual(t, reflect.ValueOf(baseFn).Pointer(), reflect.ValueOf(fn).Pointer())
	}

	// exactly six slots differ from the base tables: four requests above plus
	// Rerror and Rstat.
	changed := 0
	for op := 0; op < 256; op++ {
		for _, pair := range [][2]*OpcodeTable{{baseRequestTable, unixRequestTable}, {baseResponseTable, unixResponseTable}} {
			a, _ := pair[0].Lookup(uint8(op))
			b, _ := pair[1].Lookup(uint8(op))
			if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
				changed++
			}
		}
	}
	assert.Equal(t, 6, changed)

	// untouched opcodes still resolve, via the Clone of the base table.
	_, ok := unixRequestTable.Lookup(Tversion)
	assert.True(t, ok)
	_, ok = unixRequestTable.Lookup(Tread)
	assert.True(t, ok)
}
