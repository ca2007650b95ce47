package p9

// statFixedLen is the byte length of a Stat's fixed-width fields (type, dev,
// qid, mode, atime, mtime, length), i.e. everything between the size prefix
// and the first variable-length string.
const statFixedLen = 2 + 4 + QidSize + 4 + 4 + 4 + 8

// Stat is the base-dialect file-metadata record (spec §3, §6). Size is the
// byte count of everything in the encoding that follows the size field
// itself; callers building a Stat by hand do not need to set it — Encode
// computes and fills it in.
type Stat struct {
	Size   uint16
	Type   uint16
	Dev    uint32
	Qid    Qid
	Mode   uint32
	Atime  uint32
	Mtime  uint32
	Length uint64
	Name   RawString
	Uid    RawString
	Gid    RawString
	Muid   RawString
}

// bodyLen returns the number of bytes Stat.Size must report: everything
// after the size field.
func (s Stat) bodyLen() int {
	return statFixedLen +
		2 + len(s.Name) +
		2 + len(s.Uid) +
		2 + len(s.Gid) +
		2 + len(s.Muid)
}

// ProtocolSize returns the total encoded size of s, including its own
// 2-byte size prefix — what the directory-listing writer calls p (spec
// §4.6).
func (s Stat) ProtocolSize() int { return 2 + s.bodyLen() }

// Encode writes s's wire form, backfilling the size prefix. It fails with
// ErrCodeStatTooLarge rather than silently truncating if the body would
// exceed MaxStatBodyLen (spec §9 flags that the source narrows silently;
// this implementation does not).
func (s Stat) Encode(w *Writer) error {
	body := s.bodyLen()
	if body > MaxStatBodyLen {
		return newErr(ErrCodeStatTooLarge, "Stat.Encode", "")
	}
	if err := w.PutUint16(uint16(body)); err != nil {
		return err
	}
	if err := w.PutUint16(s.Type); err != nil {
		return err
	}
	if err := w.PutUint32(s.Dev); err != nil {
		return err
	}
	if err := s.Qid.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint32(s.Mode); err != nil {
		return err
	}
	if err := w.PutUint32(s.Atime); err != nil {
		return err
	}
	if err := w.PutUint32(s.Mtime); err != nil {
		return err
	}
	if err := w.PutUint64(s.Length); err != nil {
		return err
	}
	if err := w.PutString(s.Name.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Uid.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Gid.String()); err != nil {
		return err
	}
	return w.PutString(s.Muid.String())
}

// DecodeStat reads a base-dialect Stat.
func DecodeStat(r *Reader) (Stat, error) {
	sz, err := r.Uint16()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.size", "")
	}
	var s Stat
	s.Size = sz
	s.Type, err = r.Uint16()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.type", "")
	}
	s.Dev, err = r.Uint32()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.dev", "")
	}
	s.Qid, err = DecodeQid(r)
	if err != nil {
		return Stat{}, err
	}
	s.Mode, err = r.Uint32()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.mode", "")
	}
	s.Atime, err = r.Uint32()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.atime", "")
	}
	s.Mtime, err = r.Uint32()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.mtime", "")
	}
	s.Length, err = r.Uint64()
	if err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.length", "")
	}
	if s.Name, err = r.String(); err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.name", "")
	}
	if s.Uid, err = r.String(); err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.uid", "")
	}
	if s.Gid, err = r.String(); err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.gid", "")
	}
	if s.Muid, err = r.String(); err != nil {
		return Stat{}, newErr(ErrCodeNotEnoughData, "Stat.muid", "")
	}
	return s, nil
}

// UnixStat is the 9P2000.u extended Stat: a base Stat plus an extension
// string and three numeric identifiers (spec §3, §6).
type UnixStat struct {
	Stat
	Extension RawString
	Nuid      uint32
	Ngid      uint32
	Nmuid     uint32
}

func (s UnixStat) bodyLen() int {
	return s.Stat.bodyLen() + 2 + len(s.Extension) + 4 + 4 + 4
}

// ProtocolSize returns the total encoded size including the size prefix.
func (s UnixStat) ProtocolSize() int { return 2 + s.bodyLen() }

// Encode writes s's wire form with the adjusted size field.
func (s UnixStat) Encode(w *Writer) error {
	body := s.bodyLen()
	if body > MaxStatBodyLen {
		return newErr(ErrCodeStatTooLarge, "UnixStat.Encode", "")
	}
	start := w.Pos()
	if err := w.PutUint16(0); err != nil { // placeholder, backfilled below
		return err
	}
	if err := w.PutUint16(s.Type); err != nil {
		return err
	}
	if err := w.PutUint32(s.Dev); err != nil {
		return err
	}
	if err := s.Qid.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint32(s.Mode); err != nil {
		return err
	}
	if err := w.PutUint32(s.Atime); err != nil {
		return err
	}
	if err := w.PutUint32(s.Mtime); err != nil {
		return err
	}
	if err := w.PutUint64(s.Length); err != nil {
		return err
	}
	if err := w.PutString(s.Name.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Uid.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Gid.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Muid.String()); err != nil {
		return err
	}
	if err := w.PutString(s.Extension.String()); err != nil {
		return err
	}
	if err := w.PutUint32(s.Nuid); err != nil {
		return err
	}
	if err := w.PutUint32(s.Ngid); err != nil {
		return err
	}
	if err := w.PutUint32(s.Nmuid); err != nil {
		return err
	}
	end := w.Pos()
	if err := w.Seek(start); err != nil {
		return err
	}
	if err := w.PutUint16(uint16(body)); err != nil {
		return err
	}
	return w.Seek(end)
}

// DecodeUnixStat reads a 9P2000.u extended Stat.
func DecodeUnixStat(r *Reader) (UnixStat, error) {
	base, err := DecodeStat(r)
	if err != nil {
		return UnixStat{}, err
	}
	var s UnixStat
	s.Stat = base
	if s.Extension, err = r.String(); err != nil {
		return UnixStat{}, newErr(ErrCodeNotEnoughData, "UnixStat.extension", "")
	}
	if s.Nuid, err = r.Uint32(); err != nil {
		return UnixStat{}, newErr(ErrCodeNotEnoughData, "UnixStat.n_uid", "")
	}
	if s.Ngid, err = r.Uint32(); err != nil {
		return UnixStat{}, newErr(ErrCodeNotEnoughData, "UnixStat.n_gid", "")
	}
	if s.Nmuid, err = r.Uint32(); err != nil {
		return UnixStat{}, newErr(ErrCodeNotEnoughData, "UnixStat.n_muid", "")
	}
	return s, nil
}
