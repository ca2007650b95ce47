package p9

// Dialect negotiation: turning a version string and a maximum message size
// into the pair of opcode tables a connection will use for the rest of its
// life (spec §4.7).

// Dialect names one of the four message sets this package understands.
type Dialect int

const (
	DialectBase Dialect = iota
	DialectUnix
	DialectErlang
	DialectLinux
)

// String returns the wire version string for d.
func (d Dialect) String() string {
	switch d {
	case DialectBase:
		return VersionBase
	case DialectUnix:
		return VersionUnix
	case DialectErlang:
		return VersionErlang
	case DialectLinux:
		return VersionLinux
	default:
		return VersionUnknown
	}
}

// DialectOf maps a version string to a Dialect. It fails with
// ErrCodeUnsupportedVersion for any string this package does not
// implement, including VersionUnknown itself.
func DialectOf(version string) (Dialect, error) {
	switch version {
	case VersionBase:
		return DialectBase, nil
	case VersionUnix:
		return DialectUnix, nil
	case VersionErlang:
		return DialectErlang, nil
	case VersionLinux:
		return DialectLinux, nil
	default:
		return 0, newErr(ErrCodeUnsupportedVersion, "DialectOf", version)
	}
}

// Parser is a negotiated, ready-to-use pair of opcode tables plus the
// maximum message size both ends agreed on. Every Dispatch call after
// negotiation goes through one of these.
type Parser struct {
	Dialect   Dialect
	MaxSize   uint32
	Requests  *OpcodeTable
	Responses *OpcodeTable
}

// tablesFor returns the immutable request/response table pair for d.
func tablesFor(d Dialect) (*OpcodeTable, *OpcodeTable, error) {
	switch d {
	case DialectBase:
		return baseRequestTable, baseResponseTable, nil
	case DialectUnix:
		return unixRequestTable, unixResponseTable, nil
	case DialectErlang:
		return erlangRequestTable, erlangResponseTable, nil
	case DialectLinux:
		return linuxRequestTable, linuxResponseTable, nil
	default:
		return nil, nil, newErr(ErrCodeUnsupportedVersion, "tablesFor", "")
	}
}

// NewParser builds a Parser for the named version and negotiated maxSize.
// maxSize is whatever the two ends settled on during the Tversion/Rversion
// exchange — this package does not perform that exchange itself (spec §1:
// transport and session orchestration are out of scope), only turns its
// outcome into a ready-to-use parser.
func NewParser(version string, maxSize uint32) (*Parser, error) {
	d, err := DialectOf(version)
	if err != nil {
		return nil, err
	}
	reqs, resps, err := tablesFor(d)
	if err != nil {
		return nil, err
	}
	return &Parser{Dialect: d, MaxSize: maxSize, Requests: reqs, Responses: resps}, nil
}

// ParseRequest parses a complete request frame (header included) from buf
// using p's negotiated dialect and maximum size.
func (p *Parser) ParseRequest(buf []byte) (Header, Message, error) {
	return parseFrame(p.Requests, p.MaxSize, buf)
}

// ParseResponse parses a complete response frame (header included) from
// buf using p's negotiated dialect and maximum size.
func (p *Parser) ParseResponse(buf []byte) (Header, Message, error) {
	return parseFrame(p.Responses, p.MaxSize, buf)
}

func parseFrame(table *OpcodeTable, maxSize uint32, buf []byte) (Header, Message, error) {
	r := NewReader(buf)
	h, err := ParseHeader(r)
	if err != nil {
		return Header{}, nil, err
	}
	m, err := Dispatch(table, maxSize, h, r)
	if err != nil {
		return h, nil, err
	}
	return h, m, nil
}

// ParseVersionRequest parses a Tversion frame without requiring a
// negotiated Parser first: a connection always starts in the base dialect,
// before msize and version are known, so this is the one frame every
// dialect's client and server must be able to read unconditionally (spec
// §4.7). DefaultMaxMessageSize bounds how large that first frame may be.
func ParseVersionRequest(buf []byte) (Header, *TversionMsg, error) {
	h, m, err := parseFrame(baseRequestTable, DefaultMaxMessageSize, buf)
	if err != nil {
		return h, nil, err
	}
	tv, ok := m.(*TversionMsg)
	if !ok {
		return h, nil, newErr(ErrCodeUnsupportedMessageType, "ParseVersionRequest", "expected Tversion")
	}
	return h, tv, nil
}
