package p9

// Writers that build a complete message frame around a body, backfilling
// the parts of the frame that aren't known until the body has been
// written: the header's total size, a read-family response's inner data
// length, and a walk-shaped request's path-segment count (spec §4.5).
//
// Encodable is satisfied by every message record in this package; it lets
// the one-shot WriteRequest/WriteResponse helpers accept any of them.
type Encodable interface {
	Message
	Encode(w *Writer) error
}

func finalizeFrame(w *Writer, headerPos int) ([]byte, error) {
	end := w.Pos()
	size := end - headerPos
	if err := w.Seek(headerPos); err != nil {
		return nil, err
	}
	if err := w.PutUint32(uint32(size)); err != nil {
		return nil, err
	}
	if err := w.Seek(end); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func beginFrame(w *Writer, typ uint8, tag uint16) (int, error) {
	headerPos := w.Pos()
	if err := w.PutUint32(0); err != nil { // placeholder, backfilled by finalizeFrame
		return 0, err
	}
	if err := w.PutUint8(typ); err != nil {
		return 0, err
	}
	if err := w.PutUint16(tag); err != nil {
		return 0, err
	}
	return headerPos, nil
}

// RequestWriter streams a single client-to-server frame into a
// caller-supplied buffer: Begin writes the header with a placeholder size,
// the body is encoded through Writer(), and Finalize backfills the true
// size.
type RequestWriter struct {
	w         *Writer
	headerPos int
}

// NewRequestWriter wraps buf for writing one request frame.
func NewRequestWriter(buf []byte) *RequestWriter {
	return &RequestWriter{w: NewWriter(buf)}
}

// Begin writes the frame header (placeholder size, typ, tag).
func (rw *RequestWriter) Begin(typ uint8, tag uint16) error {
	pos, err := beginFrame(rw.w, typ, tag)
	if err != nil {
		return err
	}
	rw.headerPos = pos
	return nil
}

// Writer exposes the underlying cursor for encoding the body.
func (rw *RequestWriter) Writer() *Writer { return rw.w }

// Finalize backfills the header's size field and returns the completed
// frame.
func (rw *RequestWriter) Finalize() ([]byte, error) {
	return finalizeFrame(rw.w, rw.headerPos)
}

// BeginWalk writes a Twalk-shaped prefix (fid, newfid) and returns a
// PathWriter for appending the walked elements one at a time, backfilling
// the segment count once the caller calls Finish.
func (rw *RequestWriter) BeginWalk(fid, newfid uint32) (*PathWriter, error) {
	if err := rw.w.PutUint32(fid); err != nil {
		return nil, err
	}
	if err := rw.w.PutUint32(newfid); err != nil {
		return nil, err
	}
	return beginPathSegments(rw.w)
}

// BeginShortReadPath writes a Tshortread-shaped prefix (fid) and returns a
// PathWriter for the walked elements. Tshortread has no body after the path.
func (rw *RequestWriter) BeginShortReadPath(fid uint32) (*PathWriter, error) {
	if err := rw.w.PutUint32(fid); err != nil {
		return nil, err
	}
	return beginPathSegments(rw.w)
}

// BeginShortWritePath writes a Tshortwrite-shaped prefix (fid) and returns
// a PathWriter. The caller writes the trailing data blob itself via
// Writer().PutBlob after Finish.
func (rw *RequestWriter) BeginShortWritePath(fid uint32) (*PathWriter, error) {
	return rw.BeginShortReadPath(fid)
}

// ResponseWriter streams a single server-to-client frame.
type ResponseWriter struct {
	w         *Writer
	headerPos int
}

// NewResponseWriter wraps buf for writing one response frame.
func NewResponseWriter(buf []byte) *ResponseWriter {
	return &ResponseWriter{w: NewWriter(buf)}
}

// Begin writes the frame header (placeholder size, typ, tag).
func (rw *ResponseWriter) Begin(typ uint8, tag uint16) error {
	pos, err := beginFrame(rw.w, typ, tag)
	if err != nil {
		return err
	}
	rw.headerPos = pos
	return nil
}

// Writer exposes the underlying cursor for encoding the body.
func (rw *ResponseWriter) Writer() *Writer { return rw.w }

// Finalize backfills the header's size field and returns the completed
// frame.
func (rw *ResponseWriter) Finalize() ([]byte, error) {
	return finalizeFrame(rw.w, rw.headerPos)
}

// BeginDataResponse starts an Rread/Rshortread-shaped body: a 32-bit data
// length prefix that DataWriter.Finish backfills once all of the data has
// been appended. Both opcodes share this helper even though their parse
// functions stay distinct (spec §9 Open Question 1).
func (rw *ResponseWriter) BeginDataResponse() (*DataWriter, error) {
	return beginDataBlob(rw.w)
}

// PathWriter incrementally encodes a walk-style path-segment sequence,
// backfilling the leading count once the caller knows how many segments
// were actually written. This is the streaming counterpart to
// EncodeWalkPathStrings, for callers that produce segments one at a time
// (e.g. resolving a walk element against a file tree) rather than holding
// them all in a []string up front.
type PathWriter struct {
	w        *Writer
	countPos int
	count    int
}

func beginPathSegments(w *Writer) (*PathWriter, error) {
	pos := w.Pos()
	if err := w.PutUint16(0); err != nil {
		return nil, err
	}
	return &PathWriter{w: w, countPos: pos}, nil
}

// Add appends one path segment. Fails with ErrCodeWalkTooLong once
// MaxWalkElements segments have been written.
func (pw *PathWriter) Add(name string) error {
	if pw.count >= MaxWalkElements {
		return newErr(ErrCodeWalkTooLong, "PathWriter.Add", "")
	}
	if err := pw.w.PutString(name); err != nil {
		return err
	}
	pw.count++
	return nil
}

// Finish backfills the segment count written by BeginWalk et al.
func (pw *PathWriter) Finish() error {
	end := pw.w.Pos()
	if err := pw.w.Seek(pw.countPos); err != nil {
		return err
	}
	if err := pw.w.PutUint16(uint16(pw.count)); err != nil {
		return err
	}
	return pw.w.Seek(end)
}

// DataWriter incrementally encodes a length-prefixed data blob, backfilling
// the 32-bit length once the caller has finished appending bytes. Used by
// Rread and Rshortread, whose data may be assembled from more than one
// source read.
type DataWriter struct {
	w      *Writer
	lenPos int
}

func beginDataBlob(w *Writer) (*DataWriter, error) {
	pos := w.Pos()
	if err := w.PutUint32(0); err != nil {
		return nil, err
	}
	return &DataWriter{w: w, lenPos: pos}, nil
}

// Append writes p to the blob.
func (dw *DataWriter) Append(p []byte) error { return dw.w.PutBytes(p) }

// Finish backfills the blob's length prefix.
func (dw *DataWriter) Finish() error {
	end := dw.w.Pos()
	n := end - dw.lenPos - 4
	if err := dw.w.Seek(dw.lenPos); err != nil {
		return err
	}
	if err := dw.w.PutUint32(uint32(n)); err != nil {
		return err
	}
	return dw.w.Seek(end)
}

// WriteRequest is the one-shot form for a request whose body is already a
// fully-built Encodable: it begins the frame, encodes the body, and
// finalizes in one call.
func WriteRequest(buf []byte, tag uint16, m Encodable) ([]byte, error) {
	rw := NewRequestWriter(buf)
	if err := rw.Begin(m.Kind(), tag); err != nil {
		return nil, err
	}
	if err := m.Encode(rw.Writer()); err != nil {
		return nil, err
	}
	return rw.Finalize()
}

// WriteResponse is the one-shot form for a response whose body is already
// a fully-built Encodable.
func WriteResponse(buf []byte, tag uint16, m Encodable) ([]byte, error) {
	rw := NewResponseWriter(buf)
	if err := rw.Begin(m.Kind(), tag); err != nil {
		return nil, err
	}
	if err := m.Encode(rw.Writer()); err != nil {
		return nil, err
	}
	return rw.Finalize()
}
