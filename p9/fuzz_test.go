package p9

import "testing"

// These fuzz targets drive the codec's entry points with arbitrary bytes.
// The codec never panics on malformed input — every failure path returns an
// *Error — so the only property under test is "no panic, no infinite loop".
// This is distinct from the out-of-scope corpus/fuzz CLI tool: it is ordinary
// native Go fuzzing over the decode functions themselves.

func FuzzParseHeader(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{7, 0, 0, 0, byte(Tversion), 0xFF, 0xFF})
	buf := make([]byte, 64)
	frame, _ := WriteRequest(buf, NoTag, &TversionMsg{Msize: 8192, Version: RawString(VersionBase)})
	f.Add(frame)

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		_, _ = ParseHeader(r)
	})
}

func FuzzDispatchBaseRequests(f *testing.F) {
	seedFrame := func(m Encodable) []byte {
		buf := make([]byte, 256)
		frame, err := WriteRequest(buf, 1, m)
		if err != nil {
			return nil
		}
		return frame
	}
	f.Add(seedFrame(&TversionMsg{Msize: 8192, Version: RawString(VersionBase)}))
	f.Add(seedFrame(&TattachMsg{Fid: 1, Afid: NoFid, Uname: RawString("glenda"), Aname: RawString("")}))
	f.Add(seedFrame(&TreadMsg{Fid: 1, Offset: 0, Count: 64}))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		h, err := ParseHeader(r)
		if err != nil {
			return
		}
		_, _ = Dispatch(baseRequestTable, DefaultMaxMessageSize, h, r)
	})
}

func FuzzDispatchUnixRequests(f *testing.F) {
	buf := make([]byte, 256)
	frame, _ := WriteRequest(buf, 1, &TauthUnixMsg{Afid: 1, Uname: RawString("glenda"), Aname: RawString(""), Nuname: 0})
	f.Add(frame)

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		h, err := ParseHeader(r)
		if err != nil {
			return
		}
		_, _ = Dispatch(unixRequestTable, DefaultMaxMessageSize, h, r)
	})
}

func FuzzDispatchErlangRequests(f *testing.F) {
	buf := make([]byte, 256)
	frame, _ := WriteRequest(buf, 1, &TsessionMsg{Key: [SessionKeySize]byte{1, 2, 3, 4, 5, 6, 7, 8}})
	f.Add(frame)

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		h, err := ParseHeader(r)
		if err != nil {
			return
		}
		_, _ = Dispatch(erlangRequestTable, DefaultMaxMessageSize, h, r)
	})
}

func FuzzDispatchLinuxRequests(f *testing.F) {
	buf := make([]byte, 256)
	frame, _ := WriteRequest(buf, 1, &TgetattrMsg{Fid: 1, RequestMask: GetattrBasic})
	f.Add(frame)

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		h, err := ParseHeader(r)
		if err != nil {
			return
		}
		_, _ = Dispatch(linuxRequestTable, DefaultMaxMessageSize, h, r)
	})
}

func FuzzDecodeStat(f *testing.F) {
	buf := make([]byte, 512)
	w := NewWriter(buf)
	_ = sampleStat().Encode(w)
	f.Add(w.Bytes())
	f.Add([]byte{})
	f.Add([]byte{0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeStat(NewReader(data))
	})
}

func FuzzDecodeWalkPath(f *testing.F) {
	buf := make([]byte, 256)
	w := NewWriter(buf)
	_ = EncodeWalkPathStrings(w, []string{"usr", "glenda", "mail"})
	f.Add(w.Bytes())
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeWalkPath(NewReader(data))
	})
}
