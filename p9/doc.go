// Package p9 implements the wire codec for the 9P family of network
// file-system protocols: the base dialect (9P2000), the Unix extension
// (9P2000.u), the Erlang extension (9P2000.e), and the Linux dialect
// (9P2000.L).
//
// The package translates between a stream of bytes on a transport and a
// typed, discriminated representation of each protocol message. It does no
// I/O, holds no session state, and tracks no file-identifier lifecycle —
// those are the job of a client or server built on top of it. Decoded
// messages borrow strings and byte blobs directly from the caller's receive
// buffer; the caller must keep that buffer alive for as long as it uses the
// decoded message.
package p9
