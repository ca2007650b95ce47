package p9

// OpenMode is the single-byte mode argument to Topen/Tcreate/Tlopen: the
// low two bits select an access mode, and OR-able high bits request
// truncate-on-open, close-on-exec, or remove-on-close (spec §3).
type OpenMode uint8

// Access returns the low two bits: one of OREAD, OWRITE, ORDWR, OEXEC.
func (m OpenMode) Access() uint8 { return uint8(m) & modeAccessMask }

// Truncate reports whether OTRUNC is set.
func (m OpenMode) Truncate() bool { return uint8(m)&OTRUNC != 0 }

// RemoveOnClose reports whether ORCLOSE is set.
func (m OpenMode) RemoveOnClose() bool { return uint8(m)&ORCLOSE != 0 }

// CloseOnExec reports whether OCEXEC is set.
func (m OpenMode) CloseOnExec() bool { return uint8(m)&OCEXEC != 0 }
