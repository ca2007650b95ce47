package p9

import (
	"errors"
	"fmt"
)

// ErrorCode is a closed enumeration of every way a parse or encode
// operation can fail. Callers branch on the code, never on the message
// text (spec §6, §7).
type ErrorCode int

const (
	// ErrCodeUnsupportedVersion: the version string offered to a negotiation
	// entry point names no dialect this package implements.
	ErrCodeUnsupportedVersion ErrorCode = iota + 1

	// ErrCodeUnsupportedMessageType: the opcode byte has no slot in the
	// dialect's opcode table.
	ErrCodeUnsupportedMessageType

	// ErrCodeIllFormedHeader: fewer than HeaderSize bytes were available to
	// read a header.
	ErrCodeIllFormedHeader

	// ErrCodeIllFormedHeaderFrameTooShort: the header's size field is less
	// than HeaderSize.
	ErrCodeIllFormedHeaderFrameTooShort

	// ErrCodeIllFormedHeaderTooBig: the header's size field exceeds the
	// parser's negotiated maximum.
	ErrCodeIllFormedHeaderTooBig

	// ErrCodeNotEnoughData: the reader has fewer bytes remaining than the
	// header promised, or fewer than a field requires.
	ErrCodeNotEnoughData

	// ErrCodeMoreThanExpectedData: the reader has more bytes remaining than
	// the header promised, or the message body left bytes unread after it
	// was decoded.
	ErrCodeMoreThanExpectedData

	// ErrCodeWalkTooLong: a walk-path (or path-carrying message) count
	// exceeds MaxWalkElements.
	ErrCodeWalkTooLong

	// ErrCodeStatTooLarge: a Stat's encoded body (excluding its own size
	// prefix) would exceed MaxStatBodyLen.
	ErrCodeStatTooLarge

	// ErrCodeInsufficientSpace: a writer has no room left in its buffer for
	// the next field.
	ErrCodeInsufficientSpace
)

// String returns a short, stable name for the code, independent of any
// particular Error's Op/Detail text.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnsupportedVersion:
		return "UnsupportedProtocolVersion"
	case ErrCodeUnsupportedMessageType:
		return "UnsupportedMessageType"
	case ErrCodeIllFormedHeader:
		return "IllFormedHeader"
	case ErrCodeIllFormedHeaderFrameTooShort:
		return "IllFormedHeader_FrameTooShort"
	case ErrCodeIllFormedHeaderTooBig:
		return "IllFormedHeader_TooBig"
	case ErrCodeNotEnoughData:
		return "NotEnoughData"
	case ErrCodeMoreThanExpectedData:
		return "MoreThanExpectedData"
	case ErrCodeWalkTooLong:
		return "WalkTooLong"
	case ErrCodeStatTooLarge:
		return "StatTooLarge"
	case ErrCodeInsufficientSpace:
		return "InsufficientSpace"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error is the concrete error value every fallible operation in this
// package returns. Op names the operation or field that failed (e.g.
// "Twalk.nwname", "header"); Detail is a short human-readable elaboration.
// Neither field is meant to be pattern-matched on — switch on Code.
type Error struct {
	Code   ErrorCode
	Op     string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("p9: %s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("p9: %s: %s: %s", e.Op, e.Code, e.Detail)
}

// newErr builds an *Error. Kept as a tiny constructor so call sites read as
// a single expression, matching the flat style of error construction used
// throughout the codec.
func newErr(code ErrorCode, op, detail string) *Error {
	return &Error{Code: code, Op: op, Detail: detail}
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) a *p9.Error,
// and reports whether it found one.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
