package p9

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func direntStat(name string, path uint64) Stat {
	return Stat{
		Qid:  Qid{Type: QTFile, Path: path},
		Name: RawString(name),
		Uid:  RawString("glenda"),
		Gid:  RawString("glenda"),
		Muid: RawString("glenda"),
	}
}

func TestDirListWriterSkipsAlreadySentEntries(t *testing.T) {
	a := direntStat("a", 1)
	b := direntStat("b", 2)

	buf := make([]byte, 4096)
	w := NewWriter(buf)
	d := NewDirListWriter(w, uint64(a.ProtocolSize()), 4096)

	more, err := d.Offer(a)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, uint32(0), d.Encoded(), "a was already sent, should not be re-encoded")

	more, err = d.Offer(b)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, uint32(b.ProtocolSize()), d.Encoded())
}

func TestDirListWriterEncodesEntriesThatFit(t *testing.T) {
	entries := []Stat{direntStat("a", 1), direntStat("b", 2), direntStat("c", 3)}
	total := 0
	for _, e := range entries {
		total += e.ProtocolSize()
	}

	buf := make([]byte, 4096)
	w := NewWriter(buf)
	d := NewDirListWriter(w, 0, uint32(total))

	for _, e := range entries {
		more, err := d.Offer(e)
		require.NoError(t, err)
		assert.True(t, more)
	}
	assert.Equal(t, uint32(total), d.Encoded())
	assert.False(t, d.Full())
}

func TestDirListWriterStopsAtFirstEntryThatDoesNotFit(t *testing.T) {
	a := direntStat("a", 1)
	b := direntStat("b", 2)
	c := direntStat("c", 3)

	budget := uint32(a.ProtocolSize() + b.ProtocolSize()) // not enough room for c

	buf := make([]byte, 4096)
	w := NewWriter(buf)
	d := NewDirListWriter(w, 0, budget)

	more, err := d.Offer(a)
	require.NoError(t, err)
	assert.True(t, more)

	more, err = d.Offer(b)
	require.NoError(t, err)
	assert.True(t, more)

	more, err = d.Offer(c)
	require.NoError(t, err)
	assert.False(t, more, "c does not fit the remaining budget")
	assert.True(t, d.Full())

	// traversed stops exactly at c, not past it: resuming a Tread at this
	// offset must resend c whole, never skip it.
	assert.Equal(t, uint64(a.ProtocolSize()+b.ProtocolSize()), d.Traversed())

	more, err = d.Offer(direntStat("d", 4))
	require.NoError(t, err)
	assert.False(t, more, "writer stays full once budget is exhausted")
}

func TestDirListWriterResumeReplaysOmittedEntryInFull(t *testing.T) {
	entries := []Stat{direntStat("a", 1), direntStat("b", 2), direntStat("c", 3)}
	firstBudget := uint32(entries[0].ProtocolSize() + entries[1].ProtocolSize())

	buf1 := make([]byte, 4096)
	w1 := NewWriter(buf1)
	d1 := NewDirListWriter(w1, 0, firstBudget)
	for _, e := range entries {
		if _, err := d1.Offer(e); err != nil {
			require.NoError(t, err)
		}
	}
	resumeOffset := d1.Traversed()

	// second Tread resumes exactly where the first left off.
	buf2 := make([]byte, 4096)
	w2 := NewWriter(buf2)
	d2 := NewDirListWriter(w2, resumeOffset, 4096)
	for _, e := range entries {
		if _, err := d2.Offer(e); err != nil {
			require.NoError(t, err)
		}
	}
	assert.Equal(t, uint32(entries[2].ProtocolSize()), d2.Encoded(), "c is resent whole, not skipped")

	got, err := DecodeStat(NewReader(w2.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "c", got.Name.String())
}

func TestDirListWriterUnixStatAlsoSatisfiesStatLike(t *testing.T) {
	s := UnixStat{Stat: direntStat("x", 9), Nuid: 1, Ngid: 1, Nmuid: 1}
	buf := make([]byte, 4096)
	w := NewWriter(buf)
	d := NewDirListWriter(w, 0, uint32(s.ProtocolSize()))
	more, err := d.Offer(s)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, uint32(s.ProtocolSize()), d.Encoded())
}
