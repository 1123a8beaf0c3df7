// Package docstore encodes attachment bytes for storage inside the
// relational store. Every stored blob starts with a 1-byte format header:
// 0 means the remaining bytes are raw, 1 means they are gzip-compressed.
// Decode always returns the exact original bytes.
package docstore

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

const (
	formatRaw  = 0x00
	formatGzip = 0x01
)

var ErrBadFormat = errors.New("docstore: unknown format header")

// Encode compresses data and prepends the format header. Empty input is
// stored as the bare raw header instead of running the compressor.
func Encode(data []byte) []byte {
	if len(data) == 0 {
		return []byte{formatRaw}
	}

	var buf bytes.Buffer
	buf.WriteByte(formatGzip)
	zw, _ := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}

// Decode reads the format header and decompresses only if flagged.
func Decode(stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return []byte{}, nil
	}

	switch stored[0] {
	case formatRaw:
		out := make([]byte, len(stored)-1)
		copy(out, stored[1:])
		return out, nil
	case formatGzip:
		zr, err := gzip.NewReader(bytes.NewReader(stored[1:]))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return nil, ErrBadFormat
}
