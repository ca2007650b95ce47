package p9

// WalkPath is a borrowed view over an encoded sequence of path segments:
// a 16-bit count plus the raw bytes of that many length-prefixed strings
// (spec §3, §9). Decoding a WalkPath allocates nothing; segments are
// produced lazily by Iter.
type WalkPath struct {
	count int
	data  []byte // the count*(len-prefixed string) span, borrowed
}

// Count returns the number of path segments.
func (p WalkPath) Count() int { return p.count }

// DecodeWalkPath reads a 16-bit count followed by that many length-prefixed
// strings, recording their byte span without copying or decoding them
// eagerly. Fails with ErrCodeWalkTooLong if the count exceeds
// MaxWalkElements (spec invariant 4: "0 ≤ c ≤ 16 ... c > 16 on decode is an
// error").
func DecodeWalkPath(r *Reader) (WalkPath, error) {
	n, err := r.Uint16()
	if err != nil {
		return WalkPath{}, newErr(ErrCodeNotEnoughData, "WalkPath.count", "")
	}
	if n > MaxWalkElements {
		return WalkPath{}, newErr(ErrCodeWalkTooLong, "WalkPath.count", "")
	}
	start := r.Pos()
	for i := uint16(0); i < n; i++ {
		if _, err := r.String(); err != nil {
			return WalkPath{}, newErr(ErrCodeNotEnoughData, "WalkPath.segment", "")
		}
	}
	span := r.buf[start:r.Pos()]
	return WalkPath{count: int(n), data: span}, nil
}

// Iter returns a fresh iterator over the path segments, each yielded as a
// borrowed RawString view into the original buffer.
func (p WalkPath) Iter() *WalkPathIter {
	return &WalkPathIter{r: NewReader(p.data), remaining: p.count}
}

// Strings materializes the path as a []string, allocating one string per
// segment plus the slice itself. Prefer Iter on hot paths; this exists for
// callers that want an ordinary Go slice (e.g. to hand to a filesystem
// lookup routine).
func (p WalkPath) Strings() []string {
	out := make([]string, 0, p.count)
	it := p.Iter()
	for it.Next() {
		out = append(out, it.Segment().String())
	}
	return out
}

// WalkPathIter yields WalkPath segments one at a time.
type WalkPathIter struct {
	r         *Reader
	remaining int
	cur       RawString
}

// Next advances to the next segment, returning false once exhausted.
func (it *WalkPathIter) Next() bool {
	if it.remaining == 0 {
		return false
	}
	s, err := it.r.String()
	if err != nil {
		// The span was validated at decode time; this would indicate a
		// caller holding a corrupted or truncated WalkPath value.
		return false
	}
	it.cur = s
	it.remaining--
	return true
}

// Segment returns the segment most recently produced by Next.
func (it *WalkPathIter) Segment() RawString { return it.cur }

// EncodeWalkPathStrings writes a 16-bit count followed by each of names as
// a length-prefixed string. Fails with ErrCodeWalkTooLong if len(names)
// exceeds MaxWalkElements.
func EncodeWalkPathStrings(w *Writer, names []string) error {
	if len(names) > MaxWalkElements {
		return newErr(ErrCodeWalkTooLong, "WalkPath.encode", "")
	}
	if err := w.PutUint16(uint16(len(names))); err != nil {
		return err
	}
	for _, n := range names {
		if err := w.PutString(n); err != nil {
			return err
		}
	}
	return nil
}
