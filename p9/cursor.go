package p9

import "encoding/binary"

// Reader is a cursor over a borrowed byte slice. Every decode in this
// package goes through a Reader so that strings and blobs come back as
// slices of the original buffer rather than copies (spec §4.1, §5, §9).
//
// A Reader is cheap to construct and holds no state beyond a position; it
// does not own the bytes it reads and must not outlive the buffer it was
// built from.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Pos returns the current cursor offset into the underlying buffer.
func (r *Reader) Pos() int {
	return r.pos
}

// Advance moves the cursor forward by n bytes. It fails without moving the
// cursor if fewer than n bytes remain.
func (r *Reader) Advance(n int) error {
	if n < 0 || n > r.Remaining() {
		return newErr(ErrCodeNotEnoughData, "Reader.Advance", "")
	}
	r.pos += n
	return nil
}

// Bytes returns a borrowed view of the next n bytes and advances the
// cursor past them. The returned slice aliases the Reader's buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, newErr(ErrCodeNotEnoughData, "Reader.Bytes", "")
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Peek returns a borrowed view of the next n bytes without advancing the
// cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, newErr(ErrCodeNotEnoughData, "Reader.Peek", "")
	}
	return r.buf[r.pos : r.pos+n], nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 reads a little-endian 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RawString holds the bytes of a 9P string (the part after its 16-bit length
// prefix) as a borrowed slice (spec §4.1, §6). The codec does not validate
// UTF-8; callers that need a Go string call String() on it, which copies.
type RawString []byte

// String converts the borrowed view to an owned Go string, copying the
// bytes. Decoded strings and blobs stay borrowed until this is called; the
// decoded message records themselves, and the []Qid built by
// DecodeQidSlice, are allocated.
func (s RawString) String() string { return string(s) }

// String reads a length-prefixed string field.
func (r *Reader) String() (RawString, error) {
	n, err := r.Uint16()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Reader.String", "length")
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Reader.String", "body")
	}
	return RawString(b), nil
}

// Blob reads a 9P byte blob: a 32-bit length prefix followed by that many
// raw bytes (spec §4.1, §6).
func (r *Reader) Blob() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, newErr(ErrCodeNotEnoughData, "Reader.Blob", "length")
	}
	return r.Bytes(int(n))
}

// Writer is a cursor over a caller-supplied byte buffer with a fixed
// capacity. It never reallocates: if the buffer is too small, writes fail
// with ErrCodeInsufficientSpace and leave the cursor at the failing
// position (spec §4.1, §7).
type Writer struct {
	buf []byte
	pos int
}

// NewWriter wraps buf for writing, starting at offset 0. len(buf) is the
// writer's capacity; cap(buf) is ignored so the writer never writes past
// what the caller sized.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:len(buf):len(buf)]}
}

// Pos returns the current write cursor offset.
func (w *Writer) Pos() int { return w.pos }

// Len returns the current cursor offset, the same value as Pos. After a
// Seek it reports the new position, not the furthest byte written.
func (w *Writer) Len() int { return w.pos }

// Bytes returns the portion of the underlying buffer written so far.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// Seek repositions the write cursor to an absolute offset for backfill. It
// does not truncate or extend what has already been written; writes after a
// Seek overwrite existing bytes in place.
func (w *Writer) Seek(pos int) error {
	if pos < 0 || pos > len(w.buf) {
		return newErr(ErrCodeInsufficientSpace, "Writer.Seek", "")
	}
	w.pos = pos
	return nil
}

// reserve returns a slice of exactly n bytes at the cursor and advances
// past it, or fails if the buffer doesn't have room.
func (w *Writer) reserve(n int) ([]byte, error) {
	if n < 0 || w.pos+n > len(w.buf) {
		return nil, newErr(ErrCodeInsufficientSpace, "Writer.reserve", "")
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// PutUint8 writes one byte.
func (w *Writer) PutUint8(v uint8) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutUint16 writes a little-endian 16-bit integer.
func (w *Writer) PutUint16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

// PutUint32 writes a little-endian 32-bit integer.
func (w *Writer) PutUint32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

// PutUint64 writes a little-endian 64-bit integer.
func (w *Writer) PutUint64(v uint64) error {
	b, err := w.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

// PutBytes copies p into the buffer verbatim, with no length prefix.
func (w *Writer) PutBytes(p []byte) error {
	b, err := w.reserve(len(p))
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// PutString writes a 9P string: a 16-bit length prefix followed by s.
func (w *Writer) PutString(s string) error {
	if len(s) > 0xFFFF {
		return newErr(ErrCodeInsufficientSpace, "Writer.PutString", "string exceeds 65535 bytes")
	}
	if err := w.PutUint16(uint16(len(s))); err != nil {
		return err
	}
	return w.PutBytes([]byte(s))
}

// PutBlob writes a 9P byte blob: a 32-bit length prefix followed by p.
func (w *Writer) PutBlob(p []byte) error {
	if err := w.PutUint32(uint32(len(p))); err != nil {
		return err
	}
	return w.PutBytes(p)
}
