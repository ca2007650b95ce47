package p9

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeStringIsStableAndNamed(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeUnsupportedVersion:           "UnsupportedProtocolVersion",
		ErrCodeUnsupportedMessageType:       "UnsupportedMessageType",
		ErrCodeIllFormedHeader:              "IllFormedHeader",
		ErrCodeIllFormedHeaderFrameTooShort: "IllFormedHeader_FrameTooShort",
		ErrCodeIllFormedHeaderTooBig:        "IllFormedHeader_TooBig",
		ErrCodeNotEnoughData:                "NotEnoughData",
		ErrCodeMoreThanExpectedData:         "MoreThanExpectedData",
		ErrCodeWalkTooLong:                  "WalkTooLong",
		ErrCodeStatTooLarge:                 "StatTooLarge",
		ErrCodeInsufficientSpace:            "InsufficientSpace",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.String())
	}
}

func TestErrorCodeStringUnknownValue(t *testing.T) {
	assert.Equal(t, "ErrorCode(999)", ErrorCode(999).String())
}

func TestErrorErrorWithoutDetail(t *testing.T) {
	e := newErr(ErrCodeNotEnoughData, "Reader.Uint32", "")
	assert.Equal(t, "p9: Reader.Uint32: NotEnoughData", e.Error())
}

func TestErrorErrorWithDetail(t *testing.T) {
	e := newErr(ErrCodeUnsupportedVersion, "DialectOf", "9P2000.bogus")
	assert.Equal(t, "p9: DialectOf: UnsupportedProtocolVersion: 9P2000.bogus", e.Error())
}

func TestCodeOfFindsWrappedErrorCode(t *testing.T) {
	var err error = fmt.Errorf("building walk: %w", newErr(ErrCodeWalkTooLong, "PathWriter.Add", ""))
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeWalkTooLong, code)
}

func TestCodeOfFailsForUnrelatedError(t *testing.T) {
	_, ok := CodeOf(errors.New("some other failure"))
	assert.False(t, ok)
}
