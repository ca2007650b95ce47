package p9

// Protocol version strings recognized during dialect negotiation (spec §4.7,
// §6). Any other version string fails negotiation with
// ErrCodeUnsupportedVersion.
const (
	VersionBase   = "9P2000"
	VersionUnix   = "9P2000.u"
	VersionErlang = "9P2000.e"
	VersionLinux  = "9P2000.L"

	// VersionUnknown is what a server replies with when it cannot speak any
	// version the client proposed.
	VersionUnknown = "unknown"
)

// NoTag is used on Tversion/Rversion, which are not correlated by tag.
const NoTag uint16 = 0xFFFF

// NoFid represents an invalid or absent fid, e.g. an Tattach with no auth.
const NoFid uint32 = 0xFFFFFFFF

// DefaultMaxMessageSize is the negotiated msize used when a caller has not
// yet completed version negotiation.
const DefaultMaxMessageSize uint32 = 8192

// HeaderSize is the fixed size, in bytes, of every message header:
// size[4] type[1] tag[2].
const HeaderSize = 7

// MaxWalkElements is the maximum number of path segments a Twalk, ShortRead,
// or ShortWrite message may carry.
const MaxWalkElements = 16

// MaxStatBodyLen is the largest value the Stat "size" field can hold: a
// Stat's own 16-bit size prefix limits a single encoded Stat, including its
// variable-length strings, to this many following bytes.
const MaxStatBodyLen = 0xFFFF

// Base dialect opcodes (9P2000), spec §4.4 / §6. Even values are requests,
// odd values are responses, except that Terror (106) is illegal: errors are
// only ever sent as responses.
const (
	Tversion uint8 = 100
	Rversion uint8 = 101
	Tauth    uint8 = 102
	Rauth    uint8 = 103
	Tattach  uint8 = 104
	Rattach  uint8 = 105
	Terror   uint8 = 106 // illegal on the wire; errors are response-only
	Rerror   uint8 = 107
	Tflush   uint8 = 108
	Rflush   uint8 = 109
	Twalk    uint8 = 110
	Rwalk    uint8 = 111
	Topen    uint8 = 112
	Ropen    uint8 = 113
	Tcreate  uint8 = 114
	Rcreate  uint8 = 115
	Tread    uint8 = 116
	Rread    uint8 = 117
	Twrite   uint8 = 118
	Rwrite   uint8 = 119
	Tclunk   uint8 = 120
	Rclunk   uint8 = 121
	Tremove  uint8 = 122
	Rremove  uint8 = 123
	Tstat    uint8 = 124
	Rstat    uint8 = 125
	Twstat   uint8 = 126
	Rwstat   uint8 = 127
)

// Erlang extension opcodes (9P2000.e), layered on top of the base dialect.
const (
	Tsession    uint8 = 150
	Rsession    uint8 = 151
	Tshortread  uint8 = 152
	Rshortread  uint8 = 153
	Tshortwrite uint8 = 154
	Rshortwrite uint8 = 155
)

// Linux dialect opcodes (9P2000.L), spec §4.4/§9. These occupy a disjoint
// numeric range from the base dialect. Rlerror has no matching Tlerror —
// every Linux-dialect request can fail with it instead of a dialect-
// specific error response — so parity alone cannot tell a reader which
// table an opcode belongs to; callers should test table membership.
// Opcode identity, never parity, is authoritative (spec §3, §9).
const (
	Rlerror       uint8 = 7
	Tstatfs       uint8 = 8
	Rstatfs       uint8 = 9
	Tlopen        uint8 = 12
	Rlopen        uint8 = 13
	Tlcreate      uint8 = 14
	Rlcreate      uint8 = 15
	Tsymlink      uint8 = 16
	Rsymlink      uint8 = 17
	Tmknod        uint8 = 18
	Rmknod        uint8 = 19
	Trename       uint8 = 20
	Rrename       uint8 = 21
	Treadlink     uint8 = 22
	Rreadlink     uint8 = 23
	Tgetattr      uint8 = 24
	Rgetattr      uint8 = 25
	Tsetattr      uint8 = 26
	Rsetattr      uint8 = 27
	Txattrwalk    uint8 = 30
	Rxattrwalk    uint8 = 31
	Txattrcreate  uint8 = 32
	Rxattrcreate  uint8 = 33
	Treaddir      uint8 = 40
	Rreaddir      uint8 = 41
	Tfsync        uint8 = 50
	Rfsync        uint8 = 51
	Tlock         uint8 = 52
	Rlock         uint8 = 53
	Tgetlock      uint8 = 54
	Rgetlock      uint8 = 55
	Tlink         uint8 = 70
	Rlink         uint8 = 71
	Tmkdir        uint8 = 72
	Rmkdir        uint8 = 73
	Trenameat     uint8 = 74
	Rrenameat     uint8 = 75
	Tunlinkat     uint8 = 76
	Runlinkat     uint8 = 77
)

// Qid type bits (spec §3).
const (
	QTDir    uint8 = 0x80
	QTAppend uint8 = 0x40
	QTExcl   uint8 = 0x20
	QTMount  uint8 = 0x10
	QTAuth   uint8 = 0x08
	QTTmp    uint8 = 0x04
	QTFile   uint8 = 0x00
)

// Stat.Mode high bits (spec §3, §6).
const (
	DMDir    uint32 = 0x80000000
	DMAppend uint32 = 0x40000000
	DMExcl   uint32 = 0x20000000
	DMMount  uint32 = 0x10000000
	DMAuth   uint32 = 0x08000000
	DMTmp    uint32 = 0x04000000
)

// Open-mode low bits (spec §3).
const (
	OREAD  uint8 = 0
	OWRITE uint8 = 1
	ORDWR  uint8 = 2
	OEXEC  uint8 = 3

	modeAccessMask uint8 = 0x03
)

// Open-mode high bits, OR-able with the access mode above.
const (
	OTRUNC  uint8 = 0x10
	ORCLOSE uint8 = 0x40
	OCEXEC  uint8 = 0x20
)
