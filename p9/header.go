package p9

// Header is the fixed 7-byte prefix of every 9P-family message: the total
// frame size (including the header itself), the opcode, and the tag (spec
// §3, §6).
type Header struct {
	Size uint32
	Type uint8
	Tag  uint16
}

// IsRequest reports whether Type is even, the base/Unix/Erlang dialects'
// convention for a request opcode. This is a convenience only — Rlerror in
// the Linux dialect has no matching Tlerror, so parity alone does not
// determine which table a Linux-dialect opcode belongs to (spec §3, §9);
// callers in that dialect should check table membership instead.
func (h Header) IsRequest() bool { return h.Type%2 == 0 }

// IsResponse reports whether Type is odd, mirroring IsRequest's caveat.
func (h Header) IsResponse() bool { return h.Type%2 == 1 }

// ParseHeader reads and validates only the header: it does not know about
// a negotiated maximum size (that check belongs to the versioned parser, so
// a header can be read before dialect negotiation completes) and does not
// interpret the opcode (spec §4.2).
//
// It requires HeaderSize bytes to be available and fails
// ErrCodeIllFormedHeader if not, or ErrCodeIllFormedHeaderFrameTooShort if
// the size field names a frame smaller than the header itself.
func ParseHeader(r *Reader) (Header, error) {
	if r.Remaining() < HeaderSize {
		return Header{}, newErr(ErrCodeIllFormedHeader, "header", "short")
	}
	size, err := r.Uint32()
	if err != nil {
		return Header{}, newErr(ErrCodeIllFormedHeader, "header", "short")
	}
	typ, err := r.Uint8()
	if err != nil {
		return Header{}, newErr(ErrCodeIllFormedHeader, "header", "short")
	}
	tag, err := r.Uint16()
	if err != nil {
		return Header{}, newErr(ErrCodeIllFormedHeader, "header", "short")
	}
	if size < HeaderSize {
		return Header{}, newErr(ErrCodeIllFormedHeaderFrameTooShort, "header", "frame too short")
	}
	return Header{Size: size, Type: typ, Tag: tag}, nil
}
