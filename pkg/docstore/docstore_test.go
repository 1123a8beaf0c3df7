package docstore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("work permit attachment "), 100)

	stored := Encode(payload)
	assert.Equal(t, byte(formatGzip), stored[0])
	assert.Less(t, len(stored), len(payload))

	out, err := Decode(stored)
	assert.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestEncode_Empty(t *testing.T) {
	stored := Encode(nil)
	assert.Equal(t, []byte{formatRaw}, stored)

	out, err := Decode(stored)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecode_RawHeader(t *testing.T) {
	stored := append([]byte{formatRaw}, []byte("plain")...)
	out, err := Decode(stored)
	assert.NoError(t, err)
	assert.Equal(t, []byte("plain"), out)
}

func TestDecode_EmptyInput(t *testing.T) {
	out, err := Decode(nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecode_UnknownHeader(t *testing.T) {
	_, err := Decode([]byte{0x7f, 0x01})
	assert.ErrorIs(t, err, ErrBadFormat)
}
