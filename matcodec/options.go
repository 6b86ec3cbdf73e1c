// SPDX-License-Identifier: MIT

// Package matcodec: functional configuration for Codec.
// This file defines:
//   - Format, the wire encodings a Codec can speak,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are resolved once in New; a Codec is immutable afterwards and
//     may be shared between goroutines.
package matcodec

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Format selects the wire encoding.
type Format uint8

const (
	// FormatMsgpack is MessagePack; float64 bits survive exactly.
	FormatMsgpack Format = iota
	// FormatCBOR is RFC 8949 CBOR; float64 bits survive exactly.
	FormatCBOR
	// FormatJSON is plain JSON. It has no literal for NaN or ±Inf, so
	// encoding such a matrix fails with ErrNonFinite.
	FormatJSON

	formatCount // sentinel for validation
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatMsgpack:
		return "msgpack"
	case FormatCBOR:
		return "cbor"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the encoding used when WithFormat is not given.
	DefaultFormat = FormatMsgpack

	// DefaultMaxElements bounds rows*cols on decode so a hostile header
	// cannot force a huge allocation.
	DefaultMaxElements = 1 << 24

	// DefaultCanonical makes encoders emit map keys in sorted order, so equal
	// matrices encode to identical bytes.
	DefaultCanonical = true
)

// ---------- Internal panic messages ----------

const (
	panicFormatInvalid      = "matcodec: WithFormat: unknown format"
	panicMaxElementsInvalid = "matcodec: WithMaxElements: limit must be >= 1"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	format      Format // DefaultFormat
	maxElements int    // DefaultMaxElements
	canonical   bool   // DefaultCanonical
	logger      *log.Logger
}

// WithFormat selects the wire encoding.
//
// Errors:
//   - Panics when f is not one of FormatMsgpack, FormatCBOR, FormatJSON.
func WithFormat(f Format) Option {
	if f >= formatCount {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithMaxElements caps rows*cols accepted by the decoders.
//
// Errors:
//   - Panics when n < 1.
func WithMaxElements(n int) Option {
	if n < 1 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// WithCanonical toggles sorted map keys on encode.
func WithCanonical(on bool) Option {
	return func(o *Options) { o.canonical = on }
}

// WithLogger routes decode rejections to l at Debug level. A nil l restores
// the logrus standard logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = log.StandardLogger()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults, in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{
		format:      DefaultFormat,
		maxElements: DefaultMaxElements,
		canonical:   DefaultCanonical,
		logger:      log.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
