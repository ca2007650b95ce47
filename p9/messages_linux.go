package p9

// 9P2000.L ("Linux dialect") message set: a POSIX-oriented set of requests
// that mostly replaces, rather than extends, the base dialect's opcodes
// (spec §4.4, §6, opcodes 6-76/77). It is layered on top of the Unix
// extension's tables, since both share uid/gid-centric semantics, but the
// Linux-specific opcodes do not reuse any base opcode numbers — they occupy
// their own numeric range, and Rlerror has no Tlerror to pair with (spec
// §3, §9).

// --- Rlerror (no matching Tlerror; every Linux-dialect request can fail
// with this instead of the base dialect's Rerror) ---

// RlerrorMsg reports a POSIX errno instead of a human-readable string.
type RlerrorMsg struct {
	Ecode uint32
}

func (m *RlerrorMsg) Kind() uint8 { return Rlerror }

func parseRlerror(h Header, r *Reader) (Message, error) {
	ecode, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rlerror.ecode", "")
	}
	return &RlerrorMsg{Ecode: ecode}, nil
}

func (m *RlerrorMsg) Encode(w *Writer) error { return w.PutUint32(m.Ecode) }

// --- Tstatfs / Rstatfs ---

// TstatfsMsg requests filesystem-level statistics for the tree containing
// Fid.
type TstatfsMsg struct {
	Fid uint32
}

func (m *TstatfsMsg) Kind() uint8 { return Tstatfs }

func parseTstatfs(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tstatfs.fid", "")
	}
	return &TstatfsMsg{Fid: fid}, nil
}

func (m *TstatfsMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// RstatfsMsg mirrors struct statfs from statfs(2).
type RstatfsMsg struct {
	Type    uint32
	Bsize   uint32
	Blocks  uint64
	Bfree   uint64
	Bavail  uint64
	Files   uint64
	Ffree   uint64
	Fsid    uint64
	Namelen uint32
}

func (m *RstatfsMsg) Kind() uint8 { return Rstatfs }

func parseRstatfs(h Header, r *Reader) (Message, error) {
	var m2 RstatfsMsg
	var err error
	if m2.Type, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.type", "")
	}
	if m2.Bsize, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.bsize", "")
	}
	if m2.Blocks, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.blocks", "")
	}
	if m2.Bfree, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.bfree", "")
	}
	if m2.Bavail, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.bavail", "")
	}
	if m2.Files, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.files", "")
	}
	if m2.Ffree, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.ffree", "")
	}
	if m2.Fsid, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.fsid", "")
	}
	if m2.Namelen, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstatfs.namelen", "")
	}
	return &m2, nil
}

func (m *RstatfsMsg) Encode(w *Writer) error {
	for _, step := range []func() error{
		func() error { return w.PutUint32(m.Type) },
		func() error { return w.PutUint32(m.Bsize) },
		func() error { return w.PutUint64(m.Blocks) },
		func() error { return w.PutUint64(m.Bfree) },
		func() error { return w.PutUint64(m.Bavail) },
		func() error { return w.PutUint64(m.Files) },
		func() error { return w.PutUint64(m.Ffree) },
		func() error { return w.PutUint64(m.Fsid) },
		func() error { return w.PutUint32(m.Namelen) },
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// --- Tlopen / Rlopen ---

// TlopenMsg opens Fid using Linux open(2) flags rather than a 9P OpenMode.
type TlopenMsg struct {
	Fid   uint32
	Flags uint32
}

func (m *TlopenMsg) Kind() uint8 { return Tlopen }

func parseTlopen(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlopen.fid", "")
	}
	flags, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlopen.flags", "")
	}
	return &TlopenMsg{Fid: fid, Flags: flags}, nil
}

func (m *TlopenMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	return w.PutUint32(m.Flags)
}

// RlopenMsg confirms the open.
type RlopenMsg struct {
	Qid    Qid
	Iounit uint32
}

func (m *RlopenMsg) Kind() uint8 { return Rlopen }

func parseRlopen(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	iounit, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rlopen.iounit", "")
	}
	return &RlopenMsg{Qid: q, Iounit: iounit}, nil
}

func (m *RlopenMsg) Encode(w *Writer) error {
	if err := m.Qid.Encode(w); err != nil {
		return err
	}
	return w.PutUint32(m.Iounit)
}

// --- Tlcreate / Rlcreate ---

// TlcreateMsg creates and opens Name in the directory named by Fid using
// Linux open(2) flags and mode bits.
type TlcreateMsg struct {
	Fid   uint32
	Name  RawString
	Flags uint32
	Mode  uint32
	Gid   uint32
}

func (m *TlcreateMsg) Kind() uint8 { return Tlcreate }

func parseTlcreate(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlcreate.fid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlcreate.name", "")
	}
	flags, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlcreate.flags", "")
	}
	mode, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlcreate.mode", "")
	}
	gid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlcreate.gid", "")
	}
	return &TlcreateMsg{Fid: fid, Name: name, Flags: flags, Mode: mode, Gid: gid}, nil
}

func (m *TlcreateMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Flags); err != nil {
		return err
	}
	if err := w.PutUint32(m.Mode); err != nil {
		return err
	}
	return w.PutUint32(m.Gid)
}

// RlcreateMsg confirms the create+open.
type RlcreateMsg struct {
	Qid    Qid
	Iounit uint32
}

func (m *RlcreateMsg) Kind() uint8 { return Rlcreate }

func parseRlcreate(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	iounit, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rlcreate.iounit", "")
	}
	return &RlcreateMsg{Qid: q, Iounit: iounit}, nil
}

func (m *RlcreateMsg) Encode(w *Writer) error {
	if err := m.Qid.Encode(w); err != nil {
		return err
	}
	return w.PutUint32(m.Iounit)
}

// --- Tsymlink / Rsymlink ---

// TsymlinkMsg creates a symbolic link named Name, pointing at Symtgt, in
// the directory named by Fid.
type TsymlinkMsg struct {
	Fid    uint32
	Name   RawString
	Symtgt RawString
	Gid    uint32
}

func (m *TsymlinkMsg) Kind() uint8 { return Tsymlink }

func parseTsymlink(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsymlink.fid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsymlink.name", "")
	}
	tgt, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsymlink.symtgt", "")
	}
	gid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsymlink.gid", "")
	}
	return &TsymlinkMsg{Fid: fid, Name: name, Symtgt: tgt, Gid: gid}, nil
}

func (m *TsymlinkMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutString(m.Symtgt.String()); err != nil {
		return err
	}
	return w.PutUint32(m.Gid)
}

// RsymlinkMsg returns the qid of the newly created symlink.
type RsymlinkMsg struct {
	Qid Qid
}

func (m *RsymlinkMsg) Kind() uint8 { return Rsymlink }

func parseRsymlink(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	return &RsymlinkMsg{Qid: q}, nil
}

func (m *RsymlinkMsg) Encode(w *Writer) error { return m.Qid.Encode(w) }

// --- Tmknod / Rmknod ---

// TmknodMsg creates a device special file Name in the directory named by
// Dfid.
type TmknodMsg struct {
	Dfid  uint32
	Name  RawString
	Mode  uint32
	Major uint32
	Minor uint32
	Gid   uint32
}

func (m *TmknodMsg) Kind() uint8 { return Tmknod }

func parseTmknod(h Header, r *Reader) (Message, error) {
	dfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.dfid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.name", "")
	}
	mode, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.mode", "")
	}
	major, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.major", "")
	}
	minor, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.minor", "")
	}
	gid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmknod.gid", "")
	}
	return &TmknodMsg{Dfid: dfid, Name: name, Mode: mode, Major: major, Minor: minor, Gid: gid}, nil
}

func (m *TmknodMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Dfid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Mode); err != nil {
		return err
	}
	if err := w.PutUint32(m.Major); err != nil {
		return err
	}
	if err := w.PutUint32(m.Minor); err != nil {
		return err
	}
	return w.PutUint32(m.Gid)
}

// RmknodMsg returns the qid of the newly created node.
type RmknodMsg struct {
	Qid Qid
}

func (m *RmknodMsg) Kind() uint8 { return Rmknod }

func parseRmknod(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	return &RmknodMsg{Qid: q}, nil
}

func (m *RmknodMsg) Encode(w *Writer) error { return m.Qid.Encode(w) }

// --- Trename / Rrename ---

// TrenameMsg renames Fid to Name within the directory named by Dfid.
type TrenameMsg struct {
	Fid  uint32
	Dfid uint32
	Name RawString
}

func (m *TrenameMsg) Kind() uint8 { return Trename }

func parseTrename(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trename.fid", "")
	}
	dfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trename.dfid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trename.name", "")
	}
	return &TrenameMsg{Fid: fid, Dfid: dfid, Name: name}, nil
}

func (m *TrenameMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Dfid); err != nil {
		return err
	}
	return w.PutString(m.Name.String())
}

// RrenameMsg has an empty body.
type RrenameMsg struct{}

func (m *RrenameMsg) Kind() uint8 { return Rrename }

func parseRrename(h Header, r *Reader) (Message, error) { return &RrenameMsg{}, nil }

func (m *RrenameMsg) Encode(w *Writer) error { return nil }

// --- Treadlink / Rreadlink ---

// TreadlinkMsg requests the target of the symlink at Fid.
type TreadlinkMsg struct {
	Fid uint32
}

func (m *TreadlinkMsg) Kind() uint8 { return Treadlink }

func parseTreadlink(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Treadlink.fid", "")
	}
	return &TreadlinkMsg{Fid: fid}, nil
}

func (m *TreadlinkMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// RreadlinkMsg carries the link target.
type RreadlinkMsg struct {
	Target RawString
}

func (m *RreadlinkMsg) Kind() uint8 { return Rreadlink }

func parseRreadlink(h Header, r *Reader) (Message, error) {
	target, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rreadlink.target", "")
	}
	return &RreadlinkMsg{Target: target}, nil
}

func (m *RreadlinkMsg) Encode(w *Writer) error { return w.PutString(m.Target.String()) }

// --- Tgetattr / Rgetattr ---

// Getattr request-mask bits select which Rgetattr fields the caller cares
// about; servers may return more than requested.
const (
	GetattrMode        uint64 = 0x00000001
	GetattrNlink       uint64 = 0x00000002
	GetattrUid         uint64 = 0x00000004
	GetattrGid         uint64 = 0x00000008
	GetattrRdev        uint64 = 0x00000010
	GetattrAtime       uint64 = 0x00000020
	GetattrMtime       uint64 = 0x00000040
	GetattrCtime       uint64 = 0x00000080
	GetattrIno         uint64 = 0x00000100
	GetattrSize        uint64 = 0x00000200
	GetattrBlocks      uint64 = 0x00000400
	GetattrBtime       uint64 = 0x00000800
	GetattrGen         uint64 = 0x00001000
	GetattrDataVersion uint64 = 0x00002000
	GetattrBasic       uint64 = 0x000007ff // everything up through Blocks
	GetattrAll         uint64 = 0x00003fff
)

// TgetattrMsg requests the POSIX-style metadata fields named by
// RequestMask.
type TgetattrMsg struct {
	Fid         uint32
	RequestMask uint64
}

func (m *TgetattrMsg) Kind() uint8 { return Tgetattr }

func parseTgetattr(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetattr.fid", "")
	}
	mask, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetattr.request_mask", "")
	}
	return &TgetattrMsg{Fid: fid, RequestMask: mask}, nil
}

func (m *TgetattrMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	return w.PutUint64(m.RequestMask)
}

// RgetattrMsg mirrors struct stat plus a few 9P2000.L-specific fields
// (Btime, Gen, DataVersion). Valid reports which fields the server
// actually filled in, using the Getattr* bit constants.
type RgetattrMsg struct {
	Valid       uint64
	Qid         Qid
	Mode        uint32
	Uid         uint32
	Gid         uint32
	Nlink       uint64
	Rdev        uint64
	Size        uint64
	Blksize     uint64
	Blocks      uint64
	AtimeSec    uint64
	AtimeNsec   uint64
	MtimeSec    uint64
	MtimeNsec   uint64
	CtimeSec    uint64
	CtimeNsec   uint64
	BtimeSec    uint64
	BtimeNsec   uint64
	Gen         uint64
	DataVersion uint64
}

func (m *RgetattrMsg) Kind() uint8 { return Rgetattr }

func parseRgetattr(h Header, r *Reader) (Message, error) {
	var m2 RgetattrMsg
	var err error
	if m2.Valid, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetattr.valid", "")
	}
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	m2.Qid = q
	if m2.Mode, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetattr.mode", "")
	}
	if m2.Uid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetattr.uid", "")
	}
	if m2.Gid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetattr.gid", "")
	}
	fields := []*uint64{
		&m2.Nlink, &m2.Rdev, &m2.Size, &m2.Blksize, &m2.Blocks,
		&m2.AtimeSec, &m2.AtimeNsec, &m2.MtimeSec, &m2.MtimeNsec,
		&m2.CtimeSec, &m2.CtimeNsec, &m2.BtimeSec, &m2.BtimeNsec,
		&m2.Gen, &m2.DataVersion,
	}
	for _, f := range fields {
		v, e := r.Uint64()
		if e != nil {
			return nil, newErr(ErrCodeNotEnoughData, "Rgetattr.field", "")
		}
		*f = v
	}
	return &m2, nil
}

func (m *RgetattrMsg) Encode(w *Writer) error {
	vals64 := []uint64{
		m.Valid,
	}
	for _, v := range vals64 {
		if err := w.PutUint64(v); err != nil {
			return err
		}
	}
	if err := m.Qid.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint32(m.Mode); err != nil {
		return err
	}
	if err := w.PutUint32(m.Uid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Gid); err != nil {
		return err
	}
	rest := []uint64{
		m.Nlink, m.Rdev, m.Size, m.Blksize, m.Blocks,
		m.AtimeSec, m.AtimeNsec, m.MtimeSec, m.MtimeNsec,
		m.CtimeSec, m.CtimeNsec, m.BtimeSec, m.BtimeNsec,
		m.Gen, m.DataVersion,
	}
	for _, v := range rest {
		if err := w.PutUint64(v); err != nil {
			return err
		}
	}
	return nil
}

// --- Tsetattr / Rsetattr ---

// Setattr valid-mask bits select which Tsetattr fields the server should
// apply (mirrors Linux's ATTR_* flags).
const (
	SetattrMode  uint32 = 0x00000001
	SetattrUid   uint32 = 0x00000002
	SetattrGid   uint32 = 0x00000004
	SetattrSize  uint32 = 0x00000008
	SetattrAtime uint32 = 0x00000010
	SetattrMtime uint32 = 0x00000020
	SetattrCtime uint32 = 0x00000040
	// SetattrAtimeSet/MtimeSet distinguish "set to the given time" from
	// "set to now".
	SetattrAtimeSet uint32 = 0x00000080
	SetattrMtimeSet uint32 = 0x00000100
)

// TsetattrMsg applies the fields named by Valid to Fid.
type TsetattrMsg struct {
	Fid       uint32
	Valid     uint32
	Mode      uint32
	Uid       uint32
	Gid       uint32
	Size      uint64
	AtimeSec  uint64
	AtimeNsec uint64
	MtimeSec  uint64
	MtimeNsec uint64
}

func (m *TsetattrMsg) Kind() uint8 { return Tsetattr }

func parseTsetattr(h Header, r *Reader) (Message, error) {
	var m2 TsetattrMsg
	var err error
	if m2.Fid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.fid", "")
	}
	if m2.Valid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.valid", "")
	}
	if m2.Mode, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.mode", "")
	}
	if m2.Uid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.uid", "")
	}
	if m2.Gid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.gid", "")
	}
	if m2.Size, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.size", "")
	}
	if m2.AtimeSec, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.atime_sec", "")
	}
	if m2.AtimeNsec, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.atime_nsec", "")
	}
	if m2.MtimeSec, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.mtime_sec", "")
	}
	if m2.MtimeNsec, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tsetattr.mtime_nsec", "")
	}
	return &m2, nil
}

func (m *TsetattrMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Valid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Mode); err != nil {
		return err
	}
	if err := w.PutUint32(m.Uid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Gid); err != nil {
		return err
	}
	if err := w.PutUint64(m.Size); err != nil {
		return err
	}
	if err := w.PutUint64(m.AtimeSec); err != nil {
		return err
	}
	if err := w.PutUint64(m.AtimeNsec); err != nil {
		return err
	}
	if err := w.PutUint64(m.MtimeSec); err != nil {
		return err
	}
	return w.PutUint64(m.MtimeNsec)
}

// RsetattrMsg has an empty body.
type RsetattrMsg struct{}

func (m *RsetattrMsg) Kind() uint8 { return Rsetattr }

func parseRsetattr(h Header, r *Reader) (Message, error) { return &RsetattrMsg{}, nil }

func (m *RsetattrMsg) Encode(w *Writer) error { return nil }

// --- Txattrwalk / Rxattrwalk ---

// TxattrwalkMsg binds Newfid to the extended attribute Name on Fid (or, if
// Name is empty, to the list of all attribute names).
type TxattrwalkMsg struct {
	Fid    uint32
	Newfid uint32
	Name   RawString
}

func (m *TxattrwalkMsg) Kind() uint8 { return Txattrwalk }

func parseTxattrwalk(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrwalk.fid", "")
	}
	newfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrwalk.newfid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrwalk.name", "")
	}
	return &TxattrwalkMsg{Fid: fid, Newfid: newfid, Name: name}, nil
}

func (m *TxattrwalkMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Newfid); err != nil {
		return err
	}
	return w.PutString(m.Name.String())
}

// RxattrwalkMsg reports the size, in bytes, of the attribute bound to
// Newfid.
type RxattrwalkMsg struct {
	Size uint64
}

func (m *RxattrwalkMsg) Kind() uint8 { return Rxattrwalk }

func parseRxattrwalk(h Header, r *Reader) (Message, error) {
	size, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rxattrwalk.size", "")
	}
	return &RxattrwalkMsg{Size: size}, nil
}

func (m *RxattrwalkMsg) Encode(w *Writer) error { return w.PutUint64(m.Size) }

// --- Txattrcreate / Rxattrcreate ---

// TxattrcreateMsg prepares Fid to be written to (via a subsequent Twrite)
// as the value of a new extended attribute Name.
type TxattrcreateMsg struct {
	Fid      uint32
	Name     RawString
	AttrSize uint64
	Flags    uint32
}

func (m *TxattrcreateMsg) Kind() uint8 { return Txattrcreate }

func parseTxattrcreate(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrcreate.fid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrcreate.name", "")
	}
	size, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrcreate.attr_size", "")
	}
	flags, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Txattrcreate.flags", "")
	}
	return &TxattrcreateMsg{Fid: fid, Name: name, AttrSize: size, Flags: flags}, nil
}

func (m *TxattrcreateMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint64(m.AttrSize); err != nil {
		return err
	}
	return w.PutUint32(m.Flags)
}

// RxattrcreateMsg has an empty body.
type RxattrcreateMsg struct{}

func (m *RxattrcreateMsg) Kind() uint8 { return Rxattrcreate }

func parseRxattrcreate(h Header, r *Reader) (Message, error) { return &RxattrcreateMsg{}, nil }

func (m *RxattrcreateMsg) Encode(w *Writer) error { return nil }

// --- Treaddir / Rreaddir ---

// TreaddirMsg requests up to Count bytes of packed directory entries from
// Fid starting at Offset (an opaque directory cookie, not a byte offset
// into a Stat stream the way base-dialect Rread's dir-as-file convention
// works).
type TreaddirMsg struct {
	Fid    uint32
	Offset uint64
	Count  uint32
}

func (m *TreaddirMsg) Kind() uint8 { return Treaddir }

func parseTreaddir(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Treaddir.fid", "")
	}
	off, err := r.Uint64()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Treaddir.offset", "")
	}
	count, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Treaddir.count", "")
	}
	return &TreaddirMsg{Fid: fid, Offset: off, Count: count}, nil
}

func (m *TreaddirMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint64(m.Offset); err != nil {
		return err
	}
	return w.PutUint32(m.Count)
}

// RreaddirMsg carries a packed sequence of directory entries, each
// qid[13] offset[8] type[1] name[s]. This module treats the sequence as an
// opaque blob, like Rread's Data: encoding/decoding individual dirents is
// a directory-tree concern layered above the codec (spec §1 places
// file-identifier/tree traversal logic out of scope), not a wire-shape
// concern the codec needs to unpack.
type RreaddirMsg struct {
	Data []byte
}

func (m *RreaddirMsg) Kind() uint8 { return Rreaddir }

func parseRreaddir(h Header, r *Reader) (Message, error) {
	data, err := r.Blob()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rreaddir.data", "")
	}
	return &RreaddirMsg{Data: data}, nil
}

func (m *RreaddirMsg) Encode(w *Writer) error { return w.PutBlob(m.Data) }

// --- Tfsync / Rfsync ---

// TfsyncMsg requests that buffered data for Fid be flushed to stable
// storage.
type TfsyncMsg struct {
	Fid uint32
}

func (m *TfsyncMsg) Kind() uint8 { return Tfsync }

func parseTfsync(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tfsync.fid", "")
	}
	return &TfsyncMsg{Fid: fid}, nil
}

func (m *TfsyncMsg) Encode(w *Writer) error { return w.PutUint32(m.Fid) }

// RfsyncMsg has an empty body.
type RfsyncMsg struct{}

func (m *RfsyncMsg) Kind() uint8 { return Rfsync }

func parseRfsync(h Header, r *Reader) (Message, error) { return &RfsyncMsg{}, nil }

func (m *RfsyncMsg) Encode(w *Writer) error { return nil }

// --- Tlock / Rlock ---

// Lock types and statuses mirror POSIX fcntl locking.
const (
	LockTypeRdlck uint8 = 0
	LockTypeWrlck uint8 = 1
	LockTypeUnlck uint8 = 2

	LockFlagsBlock   uint32 = 0x1
	LockFlagsReclaim uint32 = 0x2

	LockStatusSuccess uint8 = 0
	LockStatusBlocked uint8 = 1
	LockStatusError   uint8 = 2
	LockStatusGrace   uint8 = 3
)

// TlockMsg requests an advisory byte-range lock.
type TlockMsg struct {
	Fid      uint32
	Type     uint8
	Flags    uint32
	Start    uint64
	Length   uint64
	ProcID   uint32
	ClientID RawString
}

func (m *TlockMsg) Kind() uint8 { return Tlock }

func parseTlock(h Header, r *Reader) (Message, error) {
	var m2 TlockMsg
	var err error
	if m2.Fid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.fid", "")
	}
	if m2.Type, err = r.Uint8(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.type", "")
	}
	if m2.Flags, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.flags", "")
	}
	if m2.Start, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.start", "")
	}
	if m2.Length, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.length", "")
	}
	if m2.ProcID, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.proc_id", "")
	}
	if m2.ClientID, err = r.String(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlock.client_id", "")
	}
	return &m2, nil
}

func (m *TlockMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint8(m.Type); err != nil {
		return err
	}
	if err := w.PutUint32(m.Flags); err != nil {
		return err
	}
	if err := w.PutUint64(m.Start); err != nil {
		return err
	}
	if err := w.PutUint64(m.Length); err != nil {
		return err
	}
	if err := w.PutUint32(m.ProcID); err != nil {
		return err
	}
	return w.PutString(m.ClientID.String())
}

// RlockMsg reports the outcome using one of the LockStatus* constants.
type RlockMsg struct {
	Status uint8
}

func (m *RlockMsg) Kind() uint8 { return Rlock }

func parseRlock(h Header, r *Reader) (Message, error) {
	status, err := r.Uint8()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rlock.status", "")
	}
	return &RlockMsg{Status: status}, nil
}

func (m *RlockMsg) Encode(w *Writer) error { return w.PutUint8(m.Status) }

// --- Tgetlock / Rgetlock ---

// TgetlockMsg asks whether a lock matching the given range would conflict
// with an existing one, without acquiring it.
type TgetlockMsg struct {
	Fid      uint32
	Type     uint8
	Start    uint64
	Length   uint64
	ProcID   uint32
	ClientID RawString
}

func (m *TgetlockMsg) Kind() uint8 { return Tgetlock }

func parseTgetlock(h Header, r *Reader) (Message, error) {
	var m2 TgetlockMsg
	var err error
	if m2.Fid, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.fid", "")
	}
	if m2.Type, err = r.Uint8(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.type", "")
	}
	if m2.Start, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.start", "")
	}
	if m2.Length, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.length", "")
	}
	if m2.ProcID, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.proc_id", "")
	}
	if m2.ClientID, err = r.String(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tgetlock.client_id", "")
	}
	return &m2, nil
}

func (m *TgetlockMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint8(m.Type); err != nil {
		return err
	}
	if err := w.PutUint64(m.Start); err != nil {
		return err
	}
	if err := w.PutUint64(m.Length); err != nil {
		return err
	}
	if err := w.PutUint32(m.ProcID); err != nil {
		return err
	}
	return w.PutString(m.ClientID.String())
}

// RgetlockMsg echoes back the (possibly conflicting) lock description.
type RgetlockMsg struct {
	Type     uint8
	Start    uint64
	Length   uint64
	ProcID   uint32
	ClientID RawString
}

func (m *RgetlockMsg) Kind() uint8 { return Rgetlock }

func parseRgetlock(h Header, r *Reader) (Message, error) {
	var m2 RgetlockMsg
	var err error
	if m2.Type, err = r.Uint8(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetlock.type", "")
	}
	if m2.Start, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetlock.start", "")
	}
	if m2.Length, err = r.Uint64(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetlock.length", "")
	}
	if m2.ProcID, err = r.Uint32(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetlock.proc_id", "")
	}
	if m2.ClientID, err = r.String(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rgetlock.client_id", "")
	}
	return &m2, nil
}

func (m *RgetlockMsg) Encode(w *Writer) error {
	if err := w.PutUint8(m.Type); err != nil {
		return err
	}
	if err := w.PutUint64(m.Start); err != nil {
		return err
	}
	if err := w.PutUint64(m.Length); err != nil {
		return err
	}
	if err := w.PutUint32(m.ProcID); err != nil {
		return err
	}
	return w.PutString(m.ClientID.String())
}

// --- Tlink / Rlink ---

// TlinkMsg creates a hard link Name in the directory named by Dfid,
// pointing at Fid.
type TlinkMsg struct {
	Dfid uint32
	Fid  uint32
	Name RawString
}

func (m *TlinkMsg) Kind() uint8 { return Tlink }

func parseTlink(h Header, r *Reader) (Message, error) {
	dfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlink.dfid", "")
	}
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlink.fid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tlink.name", "")
	}
	return &TlinkMsg{Dfid: dfid, Fid: fid, Name: name}, nil
}

func (m *TlinkMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Dfid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	return w.PutString(m.Name.String())
}

// RlinkMsg has an empty body.
type RlinkMsg struct{}

func (m *RlinkMsg) Kind() uint8 { return Rlink }

func parseRlink(h Header, r *Reader) (Message, error) { return &RlinkMsg{}, nil }

func (m *RlinkMsg) Encode(w *Writer) error { return nil }

// --- Tmkdir / Rmkdir ---

// TmkdirMsg creates a directory Name in the directory named by Dfid.
type TmkdirMsg struct {
	Dfid uint32
	Name RawString
	Mode uint32
	Gid  uint32
}

func (m *TmkdirMsg) Kind() uint8 { return Tmkdir }

func parseTmkdir(h Header, r *Reader) (Message, error) {
	dfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmkdir.dfid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmkdir.name", "")
	}
	mode, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmkdir.mode", "")
	}
	gid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tmkdir.gid", "")
	}
	return &TmkdirMsg{Dfid: dfid, Name: name, Mode: mode, Gid: gid}, nil
}

func (m *TmkdirMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Dfid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Mode); err != nil {
		return err
	}
	return w.PutUint32(m.Gid)
}

// RmkdirMsg returns the qid of the newly created directory.
type RmkdirMsg struct {
	Qid Qid
}

func (m *RmkdirMsg) Kind() uint8 { return Rmkdir }

func parseRmkdir(h Header, r *Reader) (Message, error) {
	q, err := DecodeQid(r)
	if err != nil {
		return nil, err
	}
	return &RmkdirMsg{Qid: q}, nil
}

func (m *RmkdirMsg) Encode(w *Writer) error { return m.Qid.Encode(w) }

// --- Trenameat / Rrenameat ---

// TrenameatMsg renames Oldname in Olddirfid to Newname in Newdirfid,
// without requiring a walked fid for the file being renamed (unlike
// Trename).
type TrenameatMsg struct {
	Olddirfid uint32
	Oldname   RawString
	Newdirfid uint32
	Newname   RawString
}

func (m *TrenameatMsg) Kind() uint8 { return Trenameat }

func parseTrenameat(h Header, r *Reader) (Message, error) {
	olddirfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trenameat.olddirfid", "")
	}
	oldname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trenameat.oldname", "")
	}
	newdirfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trenameat.newdirfid", "")
	}
	newname, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Trenameat.newname", "")
	}
	return &TrenameatMsg{Olddirfid: olddirfid, Oldname: oldname, Newdirfid: newdirfid, Newname: newname}, nil
}

func (m *TrenameatMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Olddirfid); err != nil {
		return err
	}
	if err := w.PutString(m.Oldname.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Newdirfid); err != nil {
		return err
	}
	return w.PutString(m.Newname.String())
}

// RrenameatMsg has an empty body.
type RrenameatMsg struct{}

func (m *RrenameatMsg) Kind() uint8 { return Rrenameat }

func parseRrenameat(h Header, r *Reader) (Message, error) { return &RrenameatMsg{}, nil }

func (m *RrenameatMsg) Encode(w *Writer) error { return nil }

// --- Tunlinkat / Runlinkat ---

// TunlinkatMsg removes Name from the directory named by Dirfid. Flags
// mirrors Linux's unlinkat(2) AT_* flags (e.g. AT_REMOVEDIR).
type TunlinkatMsg struct {
	Dirfid uint32
	Name   RawString
	Flags  uint32
}

func (m *TunlinkatMsg) Kind() uint8 { return Tunlinkat }

func parseTunlinkat(h Header, r *Reader) (Message, error) {
	dirfid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tunlinkat.dirfid", "")
	}
	name, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tunlinkat.name", "")
	}
	flags, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tunlinkat.flags", "")
	}
	return &TunlinkatMsg{Dirfid: dirfid, Name: name, Flags: flags}, nil
}

func (m *TunlinkatMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Dirfid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	return w.PutUint32(m.Flags)
}

// RunlinkatMsg has an empty body.
type RunlinkatMsg struct{}

func (m *RunlinkatMsg) Kind() uint8 { return Runlinkat }

func parseRunlinkat(h Header, r *Reader) (Message, error) { return &RunlinkatMsg{}, nil }

func (m *RunlinkatMsg) Encode(w *Writer) error { return nil }

// linuxRequestTable and linuxResponseTable start from the Unix extension's
// tables, so every base and Unix opcode (Tversion, the Unix Tattach, Twalk,
// and so on) stays reachable, and add the POSIX-oriented opcodes 7-77.
var linuxRequestTable = newLinuxRequestTable()
var linuxResponseTable = newLinuxResponseTable()

func newLinuxRequestTable() *OpcodeTable {
	t := unixRequestTable.Clone()
	t.Set(Tstatfs, "Tstatfs", parseTstatfs)
	t.Set(Tlopen, "Tlopen", parseTlopen)
	t.Set(Tlcreate, "Tlcreate", parseTlcreate)
	t.Set(Tsymlink, "Tsymlink", parseTsymlink)
	t.Set(Tmknod, "Tmknod", parseTmknod)
	t.Set(Trename, "Trename", parseTrename)
	t.Set(Treadlink, "Treadlink", parseTreadlink)
	t.Set(Tgetattr, "Tgetattr", parseTgetattr)
	t.Set(Tsetattr, "Tsetattr", parseTsetattr)
	t.Set(Txattrwalk, "Txattrwalk", parseTxattrwalk)
	t.Set(Txattrcreate, "Txattrcreate", parseTxattrcreate)
	t.Set(Treaddir, "Treaddir", parseTreaddir)
	t.Set(Tfsync, "Tfsync", parseTfsync)
	t.Set(Tlock, "Tlock", parseTlock)
	t.Set(Tgetlock, "Tgetlock", parseTgetlock)
	t.Set(Tlink, "Tlink", parseTlink)
	t.Set(Tmkdir, "Tmkdir", parseTmkdir)
	t.Set(Trenameat, "Trenameat", parseTrenameat)
	t.Set(Tunlinkat, "Tunlinkat", parseTunlinkat)
	return t
}

func newLinuxResponseTable() *OpcodeTable {
	t := unixResponseTable.Clone()
	t.Set(Rlerror, "Rlerror", parseRlerror)
	t.Set(Rstatfs, "Rstatfs", parseRstatfs)
	t.Set(Rlopen, "Rlopen", parseRlopen)
	t.Set(Rlcreate, "Rlcreate", parseRlcreate)
	t.Set(Rsymlink, "Rsymlink", parseRsymlink)
	t.Set(Rmknod, "Rmknod", parseRmknod)
	t.Set(Rrename, "Rrename", parseRrename)
	t.Set(Rreadlink, "Rreadlink", parseRreadlink)
	t.Set(Rgetattr, "Rgetattr", parseRgetattr)
	t.Set(Rsetattr, "Rsetattr", parseRsetattr)
	t.Set(Rxattrwalk, "Rxattrwalk", parseRxattrwalk)
	t.Set(Rxattrcreate, "Rxattrcreate", parseRxattrcreate)
	t.Set(Rreaddir, "Rreaddir", parseRreaddir)
	t.Set(Rfsync, "Rfsync", parseRfsync)
	t.Set(Rlock, "Rlock", parseRlock)
	t.Set(Rgetlock, "Rgetlock", parseRgetlock)
	t.Set(Rlink, "Rlink", parseRlink)
	t.Set(Rmkdir, "Rmkdir", parseRmkdir)
	t.Set(Rrenameat, "Rrenameat", parseRrenameat)
	t.Set(Runlinkat, "Runlinkat", parseRunlinkat)
	return t
}
