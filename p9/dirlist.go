package p9

// DirListWriter builds the body of a directory Rread response: a back-to-
// back sequence of encoded Stat (or UnixStat) records representing the
// directory's entries, read incrementally across repeated Tread calls the
// way a regular file is read (spec §4.6).
//
// The policy is skip, don't split: an entry that was already sent in an
// earlier response is skipped whole, and an entry that would not fit in
// the remaining budget of this response is omitted whole and left for the
// next one. No entry is ever partially encoded across two responses.
type DirListWriter struct {
	w         *Writer
	skip      uint64 // Tread.Offset: bytes already consumed by earlier reads
	budget    uint32 // Tread.Count: remaining room in this response
	traversed uint64 // cumulative size of every entry considered so far, skipped or written
	encoded   uint32 // bytes actually written into w this response
	full      bool   // true once an entry has failed to fit; later entries are neither encoded nor traversed
}

// StatLike is satisfied by Stat and UnixStat: anything with a self-reported
// protocol size and a way to encode itself.
type StatLike interface {
	ProtocolSize() int
	Encode(w *Writer) error
}

// NewDirListWriter starts a directory listing response over w, resuming
// after offset bytes of the virtual whole-directory stream and writing at
// most maxBytes into the response.
func NewDirListWriter(w *Writer, offset uint64, maxBytes uint32) *DirListWriter {
	return &DirListWriter{w: w, skip: offset, budget: maxBytes}
}

// Offer presents the next directory entry in stream order. It reports
// whether the caller should keep offering more entries: false means the
// response's budget has been reached and nothing further will be encoded
// this response. Traversed stops exactly at the first entry that did not
// fit, so a caller that copies Traversed into the next Tread's Offset will
// have that entry resent whole rather than skipped.
func (d *DirListWriter) Offer(s StatLike) (bool, error) {
	if d.full {
		return false, nil
	}
	size := uint64(s.ProtocolSize())
	if d.traversed < d.skip {
		d.traversed += size
		return true, nil
	}
	if uint64(d.encoded)+size > uint64(d.budget) {
		d.full = true
		return false, nil
	}
	if err := s.Encode(d.w); err != nil {
		return false, err
	}
	d.encoded += uint32(size)
	d.traversed += size
	return true, nil
}

// Encoded returns the number of bytes written into the response so far.
func (d *DirListWriter) Encoded() uint32 { return d.encoded }

// Traversed returns the cumulative size of every entry considered so far.
// A client that wants the entries this call omitted should re-issue Tread
// with Offset set to this value.
func (d *DirListWriter) Traversed() uint64 { return d.traversed }

// Full reports whether the response's budget has been reached.
func (d *DirListWriter) Full() bool { return d.full }
