package p9

// Qid is the server-assigned file identity triple carried by most
// responses (spec §3). It is a small value type: copied freely, compared
// componentwise, 13 bytes on the wire.
type Qid struct {
	Type    uint8  // bitset: QTDir, QTAppend, QTExcl, QTMount, QTAuth, QTTmp, or QTFile
	Version uint32
	Path    uint64
}

// Encode writes the Qid's 13-byte wire form.
func (q Qid) Encode(w *Writer) error {
	if err := w.PutUint8(q.Type); err != nil {
		return err
	}
	if err := w.PutUint32(q.Version); err != nil {
		return err
	}
	return w.PutUint64(q.Path)
}

// DecodeQid reads a 13-byte Qid.
func DecodeQid(r *Reader) (Qid, error) {
	typ, err := r.Uint8()
	if err != nil {
		return Qid{}, newErr(ErrCodeNotEnoughData, "Qid.type", "")
	}
	ver, err := r.Uint32()
	if err != nil {
		return Qid{}, newErr(ErrCodeNotEnoughData, "Qid.version", "")
	}
	path, err := r.Uint64()
	if err != nil {
		return Qid{}, newErr(ErrCodeNotEnoughData, "Qid.path", "")
	}
	return Qid{Type: typ, Version: ver, Path: path}, nil
}

// IsDir reports whether the QTDir bit is set.
func (q Qid) IsDir() bool { return q.Type&QTDir != 0 }

// QidSize is the fixed wire size of a Qid.
const QidSize = 13

// DecodeQidSlice reads a 16-bit count followed by that many Qids, used by
// Rwalk (spec §4.1 "Qid sequence").
func DecodeQidSlice(r *Reader) ([]Qid, error) {
	n, err := r.Uint16()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "QidSlice.count", "")
	}
	qids := make([]Qid, n)
	for i := range qids {
		q, err := DecodeQid(r)
		if err != nil {
			return nil, err
		}
		qids[i] = q
	}
	return qids, nil
}

// EncodeQidSlice writes a 16-bit count followed by each Qid.
func EncodeQidSlice(w *Writer, qids []Qid) error {
	if err := w.PutUint16(uint16(len(qids))); err != nil {
		return err
	}
	for _, q := range qids {
		if err := q.Encode(w); err != nil {
			return err
		}
	}
	return nil
}
