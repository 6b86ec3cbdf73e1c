// SPDX-License-Identifier: MIT

package matcodec

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/densemat/dense"
	"github.com/katalvlaran/densemat/dmat"
	"github.com/katalvlaran/densemat/fmat"
	log "github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// record is the wire form shared by both matrix kinds: a header followed by
// the row-major elements.
type record struct {
	_struct struct{}  `codec:",omitempty,omitemptyarray"`
	Rows    int       `codec:"r"`
	Cols    int       `codec:"c"`
	Data    []float64 `codec:"d"`
}

// Codec encodes and decodes matrices in one configured Format.
// It is immutable after New and safe for concurrent use.
type Codec struct {
	opts   Options
	handle codec.Handle
}

// New builds a Codec from the defaults overridden by opts.
//
//	c := matcodec.New(matcodec.WithFormat(matcodec.FormatCBOR))
//	b, err := c.EncodeDynamic(m)
func New(opts ...Option) *Codec {
	o := gatherOptions(opts...)

	return &Codec{opts: o, handle: newHandle(o)}
}

// maxInitElements caps how many elements the decoder preallocates for d
// from a length prefix. Longer arrays still decode, growing only as real
// elements arrive, so a forged prefix cannot reserve memory up front.
const maxInitElements = 1 << 12

// newHandle configures the ugorji handle for the chosen format. Unknown
// fields are rejected on decode so a typo in a hand-written payload surfaces
// as ErrMalformed instead of a silently empty matrix.
func newHandle(o Options) codec.Handle {
	initLen := min(o.maxElements, maxInitElements)
	switch o.format {
	case FormatCBOR:
		h := new(codec.CborHandle)
		h.Canonical = o.canonical
		h.ErrorIfNoField = true
		h.MaxInitLen = initLen

		return h
	case FormatJSON:
		h := new(codec.JsonHandle)
		h.Canonical = o.canonical
		h.ErrorIfNoField = true
		h.MaxInitLen = initLen

		return h
	default:
		h := new(codec.MsgpackHandle)
		h.WriteExt = true
		h.Canonical = o.canonical
		h.ErrorIfNoField = true
		h.MaxInitLen = initLen

		return h
	}
}

// Format reports the configured encoding.
func (c *Codec) Format() Format { return c.opts.format }

// EncodeDynamic serializes m.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrNonFinite for NaN/±Inf under FormatJSON.
func (c *Codec) EncodeDynamic(m *dmat.DMat) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Shape()

	return c.encode(record{Rows: rows, Cols: cols, Data: m.Data()})
}

// DecodeDynamic parses a payload into a new *DMat.
//
// Errors:
//   - ErrMalformed when the bytes are not a valid record.
//   - ErrInvalidDimensions when the header is below 1×1 or above the element limit.
//   - ErrShapeMismatch when len(d) != r*c.
func (c *Codec) DecodeDynamic(b []byte) (*dmat.DMat, error) {
	rec, err := c.decode(b)
	if err != nil {
		return nil, err
	}

	return c.toDynamic(rec)
}

// WriteDynamic streams the encoding of m to w.
func (c *Codec) WriteDynamic(w io.Writer, m *dmat.DMat) error {
	b, err := c.EncodeDynamic(m)
	if err != nil {
		return err
	}
	_, err = w.Write(b)

	return err
}

// ReadDynamic decodes one record from r. Errors as for DecodeDynamic.
func (c *Codec) ReadDynamic(r io.Reader) (*dmat.DMat, error) {
	rec, err := c.decodeFrom(codec.NewDecoder(r, c.handle), log.Fields{"source": "stream"})
	if err != nil {
		return nil, err
	}

	return c.toDynamic(rec)
}

// EncodeFixed serializes a fixed-shape matrix with the same record layout as
// EncodeDynamic, so either kind can read what the other wrote.
func EncodeFixed[R, C fmat.Dim](c *Codec, m fmat.Mat[R, C]) ([]byte, error) {
	return c.encode(record{Rows: m.Rows(), Cols: m.Cols(), Data: m.Data()})
}

// DecodeFixed parses a payload whose header must be exactly R×C.
//
// Errors:
//   - ErrMalformed when the bytes are not a valid record.
//   - *dense.ShapeError wrapping ErrShapeMismatch for any other header.
//   - ErrShapeMismatch when len(d) != R*C.
func DecodeFixed[R, C fmat.Dim](c *Codec, b []byte) (fmat.Mat[R, C], error) {
	var zero fmat.Mat[R, C]
	rec, err := c.decode(b)
	if err != nil {
		return zero, err
	}
	if rec.Rows != zero.Rows() || rec.Cols != zero.Cols() {
		c.reject(rec, "header does not match the fixed shape")
		return zero, &dense.ShapeError{
			Op: "DecodeFixed", LeftRows: zero.Rows(), LeftCols: zero.Cols(),
			RightRows: rec.Rows, RightCols: rec.Cols, Err: ErrShapeMismatch,
		}
	}
	m, err := fmat.FromData[R, C](rec.Data)
	if err != nil {
		c.reject(rec, "payload length does not match the header")
		return zero, fmt.Errorf("DecodeFixed: %w", err)
	}

	return m, nil
}

func (c *Codec) encode(rec record) ([]byte, error) {
	if c.opts.format == FormatJSON {
		for i, v := range rec.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("element %d (%d,%d): %w", i, i/rec.Cols, i%rec.Cols, ErrNonFinite)
			}
		}
	}
	var out []byte
	if err := codec.NewEncoderBytes(&out, c.handle).Encode(&rec); err != nil {
		return nil, fmt.Errorf("matcodec: encode %s: %w", c.opts.format, err)
	}

	return out, nil
}

func (c *Codec) decode(b []byte) (record, error) {
	return c.decodeFrom(codec.NewDecoderBytes(b, c.handle), log.Fields{"bytes": len(b)})
}

// decodeFrom reads one record from dec; failures are logged at Debug with
// fields plus the format, then wrapped in ErrMalformed.
func (c *Codec) decodeFrom(dec *codec.Decoder, fields log.Fields) (record, error) {
	var rec record
	if err := dec.Decode(&rec); err != nil {
		c.opts.logger.WithFields(fields).
			WithField("format", c.opts.format.String()).
			Debugf("matcodec: undecodable payload: %v", err)

		return record{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return rec, nil
}

// toDynamic checks the decoded header against the element limit and the
// payload length before building the matrix. The raw d slice already exists
// at this point; its preallocation was bounded by maxInitElements.
func (c *Codec) toDynamic(rec record) (*dmat.DMat, error) {
	if rec.Rows < 1 || rec.Cols < 1 {
		c.reject(rec, "empty or negative header")
		return nil, fmt.Errorf("DecodeDynamic: %dx%d: %w", rec.Rows, rec.Cols, ErrInvalidDimensions)
	}
	if rec.Rows > c.opts.maxElements/rec.Cols {
		c.reject(rec, "header exceeds the element limit")
		return nil, fmt.Errorf("DecodeDynamic: %dx%d exceeds %d elements: %w",
			rec.Rows, rec.Cols, c.opts.maxElements, ErrInvalidDimensions)
	}
	m, err := dmat.FromData(rec.Rows, rec.Cols, rec.Data)
	if err != nil {
		c.reject(rec, "payload length does not match the header")
		return nil, fmt.Errorf("DecodeDynamic: %w", err)
	}

	return m, nil
}

// reject logs a structurally valid but semantically unusable record.
func (c *Codec) reject(rec record, reason string) {
	c.opts.logger.WithFields(log.Fields{
		"format": c.opts.format.String(),
		"rows":   rec.Rows,
		"cols":   rec.Cols,
		"len":    len(rec.Data),
	}).Debug("matcodec: " + reason)
}
