package payload

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SplitsFields(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	nonce := bytes.Repeat([]byte{0x02}, NonceSize)
	ct := []byte("ciphertext-and-tag")

	blob := append(append(append([]byte{}, salt...), nonce...), ct...)
	encoded := base64.StdEncoding.EncodeToString(blob)

	parts, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, salt, parts.Salt)
	assert.Equal(t, nonce, parts.Nonce)
	assert.Equal(t, ct, parts.Ciphertext)
}

func TestDecode_ExactlyHeaderSizeGivesEmptyCiphertext(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(make([]byte, HeaderSize))

	parts, err := Decode(encoded)
	require.NoError(t, err)
	assert.Len(t, parts.Salt, SaltSize)
	assert.Len(t, parts.Nonce, NonceSize)
	assert.Empty(t, parts.Ciphertext)
}

func TestDecode_TrimsWhitespace(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(make([]byte, HeaderSize+4))

	_, err := Decode("  " + encoded + "\n")
	assert.NoError(t, err)
}

func TestDecode_LenientLikeAtob(t *testing.T) {
	blob := make([]byte, HeaderSize+4)
	for i := range blob {
		blob[i] = byte(i)
	}
	padded := base64.StdEncoding.EncodeToString(blob)
	require.True(t, strings.HasSuffix(padded, "="))

	tests := []struct {
		name  string
		input string
	}{
		{name: "padded", input: padded},
		{name: "unpadded", input: base64.RawStdEncoding.EncodeToString(blob)},
		{name: "wrapped lines", input: padded[:20] + "\r\n" + padded[20:40] + "\n" + padded[40:]},
		{name: "inner spaces and tabs", input: padded[:8] + " \t " + padded[8:]},
		{name: "form feed", input: "\f" + padded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, blob[:SaltSize], parts.Salt)
			assert.Equal(t, blob[HeaderSize:], parts.Ciphertext)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not base64", input: "!!!not-base64!!!"},
		{name: "url alphabet", input: "-_-_" + base64.StdEncoding.EncodeToString(make([]byte, 40))},
		{name: "one byte short", input: base64.StdEncoding.EncodeToString(make([]byte, HeaderSize-1))},
		{name: "only salt", input: base64.StdEncoding.EncodeToString(make([]byte, SaltSize))},
		{name: "padding in the middle", input: "AAAA=AAA" + base64.StdEncoding.EncodeToString(make([]byte, 40))},
		{name: "padding on partial quantum", input: base64.RawStdEncoding.EncodeToString(make([]byte, 40)) + "="},
		{name: "three pad characters", input: base64.RawStdEncoding.EncodeToString(make([]byte, 40)) + "==="},
		{name: "dangling sixth bit group", input: base64.StdEncoding.EncodeToString(make([]byte, 42)) + "A"},
		{name: "non-ascii space", input: "\u00a0" + base64.StdEncoding.EncodeToString(make([]byte, 40))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAA}, SaltSize)
	nonce := bytes.Repeat([]byte{0xBB}, NonceSize)
	ct := []byte{0xCC, 0xDD, 0xEE}

	encoded, err := Encode(salt, nonce, ct)
	require.NoError(t, err)

	parts, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, Parts{Salt: salt, Nonce: nonce, Ciphertext: ct}, parts)

	again, err := parts.Encode()
	require.NoError(t, err)
	assert.Equal(t, encoded, again, "encoding must be deterministic")
}

func TestEncode_RejectsWrongSizes(t *testing.T) {
	_, err := Encode(make([]byte, SaltSize-1), make([]byte, NonceSize), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = Encode(make([]byte, SaltSize), make([]byte, NonceSize+1), nil)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecode_DoesNotAliasAppend(t *testing.T) {
	encoded, err := Encode(make([]byte, SaltSize), make([]byte, NonceSize), []byte{1, 2, 3})
	require.NoError(t, err)

	parts, err := Decode(encoded)
	require.NoError(t, err)

	_ = append(parts.Salt, 0xFF)
	assert.Equal(t, byte(0), parts.Nonce[0])
}
