package p9

// Base-dialect (9P2000) message records, their parse functions, and the
// request/response opcode tables built from them (spec §4.4, opcodes
// 100-127). Every dialect extension in this package starts from a Clone of
// these tables.

// --- Tversion / Rversion ---

// TversionMsg negotiates the protocol version and maximum message size.
type TversionMsg struct {
	Msize   uint32
	Version RawString
}

func (m *TversionMsg) Kind() uint8 { return Tversion }

func parseTversion(h Header, r *Reader) (Message, error) {
	msize, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tversion.msize", "")
	}
	ver, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tversion.version", "")
	}
	return &TversionMsg{Msize: msize, Version: ver}, nil
}

// Encode writes the Tversion body: msize then version string.
func (m *TversionMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Msize); err != nil {
		return err
	}
	return w.PutString(m.Version.String())
}

// RversionMsg is the server's reply to Tversion.
type RversionMsg struct {
	Msize   uint32
	Version RawString
}

func (m *RversionMsg) Kind() uint8 { return Rversion }

func parseRversion(h Header, r *Reader) (Message, error) {
	msize, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rversion.msize", "")
	}
	ver, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rversion.version", "")
	}
	return &RversionMsg{Msize: msize, Version: ver}, nil
}

func (m *RversionMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Msize); err != nil {
		return err
	}
	return w.PutString(m.Version.String())
}

// --- Tauth / Rauth ---

// TauthMsg requests an auth fid to carry out an authentication protocol.
type TauthMsg struct {
	Afid  uint32
	Uname RawString
	Aname RawString
}

func (m *TauthMsg) Kind() uint8 { return Tauth }

func parseTauth(h Header, r *Reader) (Message, error) {
	afid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tauth.afid", "")
	}
	uname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tauth.uname", "")
	}
	aname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tauth.aname", "")
	}
	return &TauthMsg{Afid: afid, Uname: uname, Aname: aname}, nil
}

func (m *TauthMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Afid); err != nil {
		return err
	}
	if err := w.PutString(m.Uname.String()); err != nil {
		return err
	}
	return w.PutString(m.Aname.String())
}

// RauthMsg carries the qid of the afid to be used in the auth protocol.
type RauthMsg struct {
	Aqid Qid
}

func (m *RauthMsg) Kind() uint8 { return Rauth }

func parseRauth(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	return &RauthMsg{Aqid: q}, nil
}

func (m *RauthMsg) Encode(w *Writer) error { return m.Aqid.Encode(w) }

// --- Tattach / Rattach ---

// TattachMsg attaches fid to the file tree named aname, as uname.
type TattachMsg struct {
	Fid   uint32
	Afid  uint32
	Uname RawString
	Aname RawString
}

func (m *TattachMsg) Kind() uint8 { return Tattach }

func parseTattach(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tattach.fid", "")
	}
	afid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tattach.afid", "")
	}
	uname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tattach.uname", "")
	}
	aname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tattach.aname", "")
	}
	return &TattachMsg{Fid: fid, Afid: afid, Uname: uname, Aname: aname}, nil
}

func (m *TattachMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Afid); err != nil {
		return err
	}
	if err := w.PutString(m.Uname.String()); err != nil {
		return err
	}
	return w.PutString(m.Aname.String())
}

// RattachMsg confirms the attach and hands back the root qid.
type RattachMsg struct {
	Qid Qid
}

func (m *RattachMsg) Kind() uint8 { return Rattach }

func parseRattach(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	return &RattachMsg{Qid: q}, nil
}

func (m *RattachMsg) Encode(w *Writer) error { return m.Qid.Encode(w) }

// --- Rerror ---

// RerrorMsg reports that the request named by its tag failed.
type RerrorMsg struct {
	Ename RawString
}

func (m *RerrorMsg) Kind() uint8 { return Rerror }

func parseRerror(h Header, r *Reader) (Message, error) {
	ename, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rerror.ename", "")
	}
	return &RerrorMsg{Ename: ename}, nil
}

func (m *RerrorMsg) Encode(w *Writer) error { return w.PutString(m.Ename.String()) }

// --- Tflush / Rflush ---

// TflushMsg asks the server to abandon the request tagged Oldtag.
type TflushMsg struct {
	Oldtag uint16
}

func (m *TflushMsg) Kind() uint8 { return Tflush }

func parseTflush(h Header, r *Reader) (Message, error) {
	old, err := r.Uint16()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tflush.oldtag", "")
	}
	return &TflushMsg{Oldtag: old}, nil
}

func (m *TflushMsg) Encode(w *Writer) error { return w.PutUint16(m.Oldtag) }

// RflushMsg has an empty body; it merely confirms the flush.
type RflushMsg struct{}

func (m *RflushMsg) Kind() uint8 { return Rflush }

func parseRflush(h Header, r *Reader) (Message, error) { return &RflushMsg{}, nil }

func (m *RflushMsg) Encode(w *Writer) error { return nil }

// --- Twalk / Rwalk ---

// TwalkMsg walks Wname, one element at a time, from Fid, binding the result
// to Newfid.
type TwalkMsg struct {
	Fid    uint32
	Newfid uint32
	Wname  WalkPath
}

func (m *TwalkMsg) Kind() uint8 { return Twalk }

func parseTwalk(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twalk.fid", "")
	}
	newfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twalk.newfid", "")
	}
	path, err := DecodeWalkPath(r)
	if err != nil {
		return nil, err
	}
	return &TwalkMsg{Fid: fid, Newfid: newfid, Wname: path}, nil
}

func (m *TwalkMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Newfid); err != nil {
		return err
	}
	return EncodeWalkPathStrings(w, m.Wname.Strings())
}

// RwalkMsg returns one qid per successfully walked element, which may be
// fewer than TwalkMsg.Wname.Count() if the walk stopped early.
type RwalkMsg struct {
	Wqid []Qid
}

func (m *RwalkMsg) Kind() uint8 { return Rwalk }

func parseRwalk(h Header, r *Reader) (Message, error) {
	qids, err := DecodeQidSlice(r)
	if err != nil {
		return nil, err
	}
	return &RwalkMsg{Wqid: qids}, nil
}

func (m *RwalkMsg) Encode(w *Writer) error { return EncodeQidSlice(w, m.Wqid) }

// --- Topen / Ropen ---

// TopenMsg prepares Fid for I/O in the given mode.
type TopenMsg struct {
	Fid  uint32
	Mode OpenMode
}

func (m *TopenMsg) Kind() uint8 { return Topen }

func parseTopen(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Topen.fid", "")
	}
	mode, err := r.Uint8()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Topen.mode", "")
	}
	return &TopenMsg{Fid: fid, Mode: OpenMode(mode)}, nil
}

func (m *TopenMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	return w.PutUint8(uint8(m.Mode))
}

// RopenMsg confirms the open and advises a preferred I/O chunk size.
type RopenMsg struct {
	Qid    Qid
	Iounit uint32
}

func (m *RopenMsg) Kind() uint8 { return Ropen }

func parseRopen(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	iounit, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Ropen.iounit", "")
	}
	return &RopenMsg{Qid: q, Iounit: iounit}, nil
}

func (m *RopenMsg) Encode(w *Writer) error {
	if err := m.Qid.Encode(w); err != nil {
		return err
	}
	return w.PutUint32(m.Iounit)
}

// --- Tcreate / Rcreate ---

// TcreateMsg creates Name in the directory named by Fid and opens it.
type TcreateMsg struct {
	Fid  uint32
	Name RawString
	Perm uint32
	Mode OpenMode
}

func (m *TcreateMsg) Kind() uint8 { return Tcreate }

func parseTcreate(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tcreate.fid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tcreate.name", "")
	}
	perm, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tcreate.perm", "")
	}
	mode, err := r.Uint8()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tcreate.mode", "")
	}
	return &TcreateMsg{Fid: fid, Name: name, Perm: perm, Mode: OpenMode(mode)}, nil
}

func (m *TcreateMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Perm); err != nil {
		return err
	}
	return w.PutUint8(uint8(m.Mode))
}

// RcreateMsg confirms the create+open.
type RcreateMsg struct {
	Qid    Qid
	Iounit uint32
}

func (m *RcreateMsg) Kind() uint8 { return Rcreate }

func parseRcreate(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	iounit, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rcreate.iounit", "")
	}
	return &RcreateMsg{Qid: q, Iounit: iounit}, nil
}

func (m *RcreateMsg) Encode(w *Writer) error {
	if err := m.Qid.Encode(w); err != nil {
		return err
	}
	return w.PutUint32(m.Iounit)
}

// --- Tread / Rread ---

// TreadMsg requests up to Count bytes from Fid starting at Offset.
type TreadMsg struct {
	Fid    uint32
	Offset uint64
	Count  uint32
}

func (m *TreadMsg) Kind() uint8 { return Tread }

func parseTread(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tread.fid", "")
	}
	off, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tread.offset", "")
	}
	count, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tread.count", "")
	}
	return &TreadMsg{Fid: fid, Offset: off, Count: count}, nil
}

func (m *TreadMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint64(m.Offset); err != nil {
		return err
	}
	return w.PutUint32(m.Count)
}

// RreadMsg carries the bytes read, borrowed from the receive buffer.
type RreadMsg struct {
	Data []byte
}

func (m *RreadMsg) Kind() uint8 { return Rread }

func parseRread(h Header, r *Reader) (Message, error) {
	data, err := r.Blob()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rread.data", "")
	}
	return &RreadMsg{Data: data}, nil
}

// Encode writes Rread's body directly (count prefix then data). Use
// ResponseWriter.BeginDataResponse for the streaming form that backfills
// the count after writing data incrementally (spec §4.5).
func (m *RreadMsg) Encode(w *Writer) error { return w.PutBlob(m.Data) }

// --- Twrite / Rwrite ---

// TwriteMsg writes Data to Fid starting at Offset.
type TwriteMsg struct {
	Fid    uint32
	Offset uint64
	Data   []byte
}

func (m *TwriteMsg) Kind() uint8 { return Twrite }

func parseTwrite(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twrite.fid", "")
	}
	off, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twrite.offset", "")
	}
	data, err := r.Blob()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twrite.data", "")
	}
	return &TwriteMsg{Fid: fid, Offset: off, Data: data}, nil
}

func (m *TwriteMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint64(m.Offset); err != nil {
		return err
	}
	return w.PutBlob(m.Data)
}

// RwriteMsg reports how many bytes were actually written.
type RwriteMsg struct {
	Count uint32
}

func (m *RwriteMsg) Kind() uint8 { return Rwrite }

func parseRwrite(h Header, r *Reader) (Message, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rwrite.count", "")
	}
	return &RwriteMsg{Count: count}, nil
}

func (m *RwriteMsg) Encode(w *Writer) error { return w.PutUint32(m.Count) }

// --- Tclunk / Rclunk ---

// TclunkMsg releases Fid.
type TclunkMsg struct {
	Fid uint32
}

func (m *TclunkMsg) Kind() uint8 { return Tclunk }

func parseTclunk(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tclunk.fid", "")
	}
	return &TclunkMsg{Fid: fid}, nil
}

func (m *TclunkMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// RclunkMsg has an empty body.
type RclunkMsg struct{}

func (m *RclunkMsg) Kind() uint8 { return Rclunk }

func parseRclunk(h Header, r *Reader) (Message, error) { return &RclunkMsg{}, nil }

func (m *RclunkMsg) Encode(w *Writer) error { return nil }

// --- Tremove / Rremove ---

// TremoveMsg removes the file identified by Fid and clunks it.
type TremoveMsg struct {
	Fid uint32
}

func (m *TremoveMsg) Kind() uint8 { return Tremove }

func parseTremove(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tremove.fid", "")
	}
	return &TremoveMsg{Fid: fid}, nil
}

func (m *TremoveMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// RremoveMsg has an empty body.
type RremoveMsg struct{}

func (m *RremoveMsg) Kind() uint8 { return Rremove }

func parseRremove(h Header, r *Reader) (Message, error) { return &RremoveMsg{}, nil }

func (m *RremoveMsg) Encode(w *Writer) error { return nil }

// --- Tstat / Rstat ---

// TstatMsg requests the metadata for Fid.
type TstatMsg struct {
	Fid uint32
}

func (m *TstatMsg) Kind() uint8 { return Tstat }

func parseTstat(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tstat.fid", "")
	}
	return &TstatMsg{Fid: fid}, nil
}

func (m *TstatMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// decodeWrappedStat reads the historical redundant 2-byte count that
// precedes a Stat in Rstat/Twstat bodies, then the Stat itself. The count
// is not re-validated against the Stat's own size field: the frame-level
// byte-accounting invariant (spec invariant 3) already guarantees the
// bytes consumed line up with the header's declared size.
func decodeWrappedStat(r *Reader) (Stat, error) {
	if _, err := r.Uint16(); err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "stat.wrapper", "")
	}
	return DecodeStat(r)
}

// encodeWrappedStat writes the redundant outer count (equal to the Stat's
// own ProtocolSize) followed by the Stat.
func encodeWrappedStat(w *Writer, s Stat) error {
	if err := w.PutUint16(uint16(s.ProtocolSize())); err != nil {
		return err
	}
	return s.Encode(w)
}

// RstatMsg carries the requested metadata.
type RstatMsg struct {
	Stat Stat
}

func (m *RstatMsg) Kind() uint8 { return Rstat }

func parseRstat(h Header, r *Reader) (Message, error) {
	s, err := decodeWrappedStat(r)
	if err != nil {
		return nil, err
	}
	return &RstatMsg{Stat: s}, nil
}

func (m *RstatMsg) Encode(w *Writer) error { return encodeWrappedStat(w, m.Stat) }

// --- Twstat / Rwstat ---

// TwstatMsg requests that Fid's metadata be changed to Stat. Fields left at
// their "don't touch" wire value (spec does not mandate a sentinel here;
// servers interpret zero/~0 fields as "unchanged" by convention) are the
// caller's responsibility to set.
type TwstatMsg struct {
	Fid  uint32
	Stat Stat
}

func (m *TwstatMsg) Kind() uint8 { return Twstat }

func parseTwstat(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twstat.fid", "")
	}
	s, err := decodeWrappedStat(r)
	if err != nil {
		return nil, err
	}
	return &TwstatMsg{Fid: fid, Stat: s}, nil
}

func (m *TwstatMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	return encodeWrappedStat(w, m.Stat)
}

// RwstatMsg has an empty body.
type RwstatMsg struct{}

func (m *RwstatMsg) Kind() uint8 { return Rwstat }

func parseRwstat(h Header, r *Reader) (Message, error) { return &RwstatMsg{}, nil }

func (m *RwstatMsg) Encode(w *Writer) error { return nil }

// baseRequestTable and baseResponseTable are built once at package
// initialization and never mutated afterward; every dialect extension
// Clones one of these as its starting point (spec §4.4, §5 "immutable
// process-wide constants").
var baseRequestTable = newBaseRequestTable()
var baseResponseTable = newBaseResponseTable()

func newBaseRequestTable() *OpcodeTable {
	t := NewOpcodeTable()
	t.Set(Tversion, "Tversion", parseTversion)
	t.Set(Tauth, "Tauth", parseTauth)
	t.Set(Tattach, "Tattach", parseTattach)
	t.Set(Tflush, "Tflush", parseTflush)
	t.Set(Twalk, "Twalk", parseTwalk)
	t.Set(Topen, "Topen", parseTopen)
	t.Set(Tcreate, "Tcreate", parseTcreate)
	t.Set(Tread, "Tread", parseTread)
	t.Set(Twrite, "Twrite", parseTwrite)
	t.Set(Tclunk, "Tclunk", parseTclunk)
	t.Set(Tremove, "Tremove", parseTremove)
	t.Set(Tstat, "Tstat", parseTstat)
	t.Set(Twstat, "Twstat", parseTwstat)
	return t
}

func newBaseResponseTable() *OpcodeTable {
	t := NewOpcodeTable()
	t.Set(Rversion, "Rversion", parseRversion)
	t.Set(Rauth, "Rauth", parseRauth)
	t.Set(Rattach, "Rattach", parseRattach)
	t.Set(Rerror, "Rerror", parseRerror)
	t.Set(Rflush, "Rflush", parseRflush)
	t.Set(Rwalk, "Rwalk", parseRwalk)
	t.Set(Ropen, "Ropen", parseRopen)
	t.Set(Rcreate, "Rcreate", parseRcreate)
	t.Set(Rread, "Rread", parseRread)
	t.Set(Rwrite, "Rwrite", parseRwrite)
	t.Set(Rclunk, "Rclunk", parseRclunk)
	t.Set(Rremove, "Rremove", parseRremove)
	t.Set(Rstat, "Rstat", parseRstat)
	t.Set(Rwstat, "Rwstat", parseRwstat)
	return t
}
