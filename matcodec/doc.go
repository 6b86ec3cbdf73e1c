// SPDX-License-Identifier: MIT

// Package matcodec serializes dense matrices of both kinds.
//
// Every payload is one record with three fields: r (rows), c (cols) and
// d (the row-major elements). Fixed and dynamic matrices share that record,
// so a payload written by EncodeFixed decodes with DecodeDynamic and vice
// versa. The encoding itself (MessagePack, CBOR or JSON) comes from
// github.com/ugorji/go/codec and is chosen with WithFormat.
//
// Decoding never trusts the header: dimensions are checked against the
// element limit before the matrix is built, and the element count must equal
// r*c. DecodeFixed further requires the header to equal the type's shape.
// The decoder preallocates at most a few thousand elements from a length
// prefix, so a forged prefix costs no more memory than the bytes sent.
package matcodec
