package p9

// 9P2000.u message records: the Unix extension layers numeric uid/gid/muid
// fields and a dedicated error code onto six of the base dialect's opcodes
// (Auth, Attach, Create, WStat, Error, Stat), leaving the rest of the base
// table untouched (spec §4.4).

// TauthUnixMsg adds the numeric uid of the user performing the auth
// handshake.
type TauthUnixMsg struct {
	Afid   uint32
	Uname  RawString
	Aname  RawString
	Nuname uint32
}

func (m *TauthUnixMsg) Kind() uint8 { return Tauth }

func parseTauthUnix(h Header, r *Reader) (Message, error) {
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
	nuname, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tauth.n_uname", "")
	}
	return &TauthUnixMsg{Afid: afid, Uname: uname, Aname: aname, Nuname: nuname}, nil
}

func (m *TauthUnixMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Afid); err != nil {
		return err
	}
	if err := w.PutString(m.Uname.String()); err != nil {
		return err
	}
	if err := w.PutString(m.Aname.String()); err != nil {
		return err
	}
	return w.PutUint32(m.Nuname)
}

// TattachUnixMsg adds the numeric uid of the attaching user.
type TattachUnixMsg struct {
	Fid    uint32
	Afid   uint32
	Uname  RawString
	Aname  RawString
	Nuname uint32
}

func (m *TattachUnixMsg) Kind() uint8 { return Tattach }

func parseTattachUnix(h Header, r *Reader) (Message, error) {
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
	nuname, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tattach.n_uname", "")
	}
	return &TattachUnixMsg{Fid: fid, Afid: afid, Uname: uname, Aname: aname, Nuname: nuname}, nil
}

func (m *TattachUnixMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint32(m.Afid); err != nil {
		return err
	}
	if err := w.PutString(m.Uname.String()); err != nil {
		return err
	}
	if err := w.PutString(m.Aname.String()); err != nil {
		return err
	}
	return w.PutUint32(m.Nuname)
}

// TcreateUnixMsg adds an extension string used to carry symlink targets and
// device major/minor numbers when Perm's DMSYMLINK/DMDEVICE-style bits are
// set.
type TcreateUnixMsg struct {
	Fid       uint32
	Name      RawString
	Perm      uint32
	Mode      OpenMode
	Extension RawString
}

func (m *TcreateUnixMsg) Kind() uint8 { return Tcreate }

func parseTcreateUnix(h Header, r *Reader) (Message, error) {
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
	ext, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Tcreate.extension", "")
	}
	return &TcreateUnixMsg{Fid: fid, Name: name, Perm: perm, Mode: OpenMode(mode), Extension: ext}, nil
}

func (m *TcreateUnixMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutString(m.Name.String()); err != nil {
		return err
	}
	if err := w.PutUint32(m.Perm); err != nil {
		return err
	}
	if err := w.PutUint8(uint8(m.Mode)); err != nil {
		return err
	}
	return w.PutString(m.Extension.String())
}

// RerrorUnixMsg adds a numeric errno alongside the human-readable message.
type RerrorUnixMsg struct {
	Ename RawString
	Errno uint32
}

func (m *RerrorUnixMsg) Kind() uint8 { return Rerror }

func parseRerrorUnix(h Header, r *Reader) (Message, error) {
	ename, err := r.String()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rerror.ename", "")
	}
	errno, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rerror.errno", "")
	}
	return &RerrorUnixMsg{Ename: ename, Errno: errno}, nil
}

func (m *RerrorUnixMsg) Encode(w *Writer) error {
	if err := w.PutString(m.Ename.String()); err != nil {
		return err
	}
	return w.PutUint32(m.Errno)
}

// TwstatUnixMsg carries a UnixStat instead of a base Stat.
type TwstatUnixMsg struct {
	Fid  uint32
	Stat UnixStat
}

func (m *TwstatUnixMsg) Kind() uint8 { return Twstat }

func parseTwstatUnix(h Header, r *Reader) (Message, error) {
	fid, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Twstat.fid", "")
	}
	if _, err := r.Uint16(); err != nil { // redundant outer wrapper, see decodeWrappedStat
		return nil, newErr(ErrCodeNotEnoughData, "Twstat.wrapper", "")
	}
	s, err := DecodeUnixStat(r)
	if err != nil {
		return nil, err
	}
	return &TwstatUnixMsg{Fid: fid, Stat: s}, nil
}

func (m *TwstatUnixMsg) Encode(w *Writer) error {
	if err := w.PutUint32(m.Fid); err != nil {
		return err
	}
	if err := w.PutUint16(uint16(m.Stat.ProtocolSize())); err != nil {
		return err
	}
	return m.Stat.Encode(w)
}

// RstatUnixMsg carries a UnixStat instead of a base Stat.
type RstatUnixMsg struct {
	Stat UnixStat
}

func (m *RstatUnixMsg) Kind() uint8 { return Rstat }

func parseRstatUnix(h Header, r *Reader) (Message, error) {
	if _, err := r.Uint16(); err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Rstat.wrapper", "")
	}
	s, err := DecodeUnixStat(r)
	if err != nil {
		return nil, err
	}
	return &RstatUnixMsg{Stat: s}, nil
}

func (m *RstatUnixMsg) Encode(w *Writer) error {
	if err := w.PutUint16(uint16(m.Stat.ProtocolSize())); err != nil {
		return err
	}
	return m.Stat.Encode(w)
}

// unixRequestTable and unixResponseTable layer the Unix extension's six
// overridden opcodes on top of Clones of the base tables (spec §4.4,
// "layered by inheritance of the base table").
var unixRequestTable = newUnixRequestTable()
var unixResponseTable = newUnixResponseTable()

func newUnixRequestTable() *OpcodeTable {
	t := baseRequestTable.Clone()
	t.Set(Tauth, "Tauth", parseTauthUnix)
	t.Set(Tattach, "Tattach", parseTattachUnix)
	t.Set(Tcreate, "Tcreate", parseTcreateUnix)
	t.Set(Twstat, "Twstat", parseTwstatUnix)
	return t
}

func newUnixResponseTable() *OpcodeTable {
	t := baseResponseTable.Clone()
	t.Set(Rerror, "Rerror", parseRerrorUnix)
	t.Set(Rstat, "Rstat", parseRstatUnix)
	return t
}
