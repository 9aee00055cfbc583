package nbt

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"
)

// maxChunk bounds how much memory a single declared length can make the
// reader allocate before any of the promised bytes have actually arrived.
const maxChunk = 1 << 20

// reader is the byte cursor: a buffered, forward-only read position over the
// decompressed stream. All multi-byte reads are big-endian.
type reader struct {
	br *bufio.Reader
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReader(r)}
}

// truncated maps an end-of-stream from the underlying source to ErrTruncated.
// Any other read failure passes through untouched.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// exact reads exactly n bytes. Fewer remaining bytes than n is ErrTruncated.
func (r *reader) exact(n int) ([]byte, error) {
	if n <= maxChunk {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r.br, buf); err != nil {
			return nil, truncated(err)
		}
		return buf, nil
	}
	// Grow in bounded steps so a lying length prefix cannot force a huge
	// up-front allocation for bytes the stream will never deliver.
	buf := make([]byte, 0, maxChunk)
	for len(buf) < n {
		step := n - len(buf)
		if step > maxChunk {
			step = maxChunk
		}
		start := len(buf)
		buf = append(buf, make([]byte, step)...)
		if _, err := io.ReadFull(r.br, buf[start:]); err != nil {
			return nil, truncated(err)
		}
	}
	return buf, nil
}

func (r *reader) byte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, truncated(err)
	}
	return b, nil
}

func (r *reader) i8() (int8, error) {
	b, err := r.byte()
	return int8(b), err
}

func (r *reader) i16() (int16, error) {
	buf, err := r.exact(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf)), nil
}

func (r *reader) i32() (int32, error) {
	buf, err := r.exact(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf)), nil
}

func (r *reader) i64() (int64, error) {
	buf, err := r.exact(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf)), nil
}

func (r *reader) f32() (float32, error) {
	buf, err := r.exact(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf)), nil
}

func (r *reader) f64() (float64, error) {
	buf, err := r.exact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf)), nil
}

// str reads a length-prefixed string: u16 big-endian length, then that many
// bytes of UTF-8. Invalid UTF-8 aborts the whole decode.
func (r *reader) str() (string, error) {
	prefix, err := r.exact(2)
	if err != nil {
		return "", err
	}
	data, err := r.exact(int(binary.BigEndian.Uint16(prefix)))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
