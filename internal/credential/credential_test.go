package credential

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase",
			input: "abcdef01-2345-6789-abcd-ef0123456789",
			want:  "abcdef01-2345-6789-abcd-ef0123456789",
		},
		{
			name:  "mixed case is canonicalized",
			input: "ABCDEF01-2345-6789-abcd-EF0123456789",
			want:  "abcdef01-2345-6789-abcd-ef0123456789",
		},
		{
			name:  "all zeros",
			input: "00000000-0000-0000-0000-000000000000",
			want:  "00000000-0000-0000-0000-000000000000",
		},
		{
			name:  "surrounding whitespace",
			input: "  00000000-0000-0000-0000-00000000000a\n",
			want:  "00000000-0000-0000-0000-00000000000a",
		},
		{
			name:  "non-hex letters in third group",
			input: "abcdef01-2345-ZZZZ-abcd-ef0123456789",
			want:  "abcdef01-2345-zzzz-abcd-ef0123456789",
		},
		{
			name:  "non-hex letters everywhere",
			input: "ghijklmn-opqr-stuv-wxyz-GHIJKLMNOPQR",
			want:  "ghijklmn-opqr-stuv-wxyz-ghijklmnopqr",
		},
		{
			name:  "punctuation between Z and a",
			input: "abcdef01-2345-[_]`-abcd-ef012345678^",
			want:  "abcdef01-2345-[_]`-abcd-ef012345678^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Reveal())
			assert.Equal(t, []byte(tt.want), c.Bytes())
			assert.False(t, c.IsZero())
			assert.True(t, Valid(tt.input))
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"not-a-credential",
		"abcdef01234567890abcdef0123456789",
		"abcdef01-2345-6789-abcd-ef012345678",
		"abcdef01-2345-6789-abcd-ef01234567890",
		"abcdef0!-2345-6789-abcd-ef0123456789",
		"abcdef01-2345-67.9-abcd-ef0123456789",
		"abcdef01-2345-6789-abcd-ef01234567é",
		"abcdef01-2345-6789-ab d-ef0123456789",
		"{abcdef01-2345-6789-abcd-ef0123456789}",
		"urn:uuid:abcdef01-2345-6789-abcd-ef0123456789",
		"abcdef01-2345-6789-abcd-ef0123456789-00",
		"abcdef01_2345_6789_abcd_ef0123456789",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCredentialShape)
			assert.True(t, c.IsZero())
			assert.False(t, Valid(in))
		})
	}
}

func TestGenerate_ProducesParseableUniqueCredentials(t *testing.T) {
	c1, err := Generate()
	require.NoError(t, err)
	c2, err := Generate()
	require.NoError(t, err)

	assert.NotEqual(t, c1.Reveal(), c2.Reveal())

	parsed, err := Parse(c1.Reveal())
	require.NoError(t, err)
	assert.Equal(t, c1, parsed)
}

func TestCredential_StringIsRedacted(t *testing.T) {
	c, err := Parse("abcdef01-2345-6789-abcd-ef0123456789")
	require.NoError(t, err)

	assert.NotContains(t, c.String(), "2345")
	assert.NotContains(t, fmt.Sprintf("%v", c), "ef0123456789")

	data, err := json.Marshal(struct {
		C Credential `json:"c"`
	}{C: c})
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "ef0123456789"))

	assert.Empty(t, Credential{}.String())
}
