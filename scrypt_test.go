package scryptpw

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known-answer vectors from RFC 7914 section 12.
func TestDerive_KnownAnswerVectors(t *testing.T) {
	tests := []struct {
		name           string
		password, salt string
		n, r, p        int
		wantHex        string
	}{
		{
			name: "empty password and salt",
			n:    16, r: 1, p: 1,
			wantHex: "77d6576238657b203b19ca42c18a0497" +
				"f16b4844e3074ae8dfdffa3fede21442" +
				"fcd0069ded0948f8326a753a0fc81f17" +
				"e8d3e0fb2e0d3628cf35e20c38d18906",
		},
		{
			name: "password/NaCl", password: "password", salt: "NaCl",
			n: 1024, r: 8, p: 16,
			wantHex: "fdbabe1c9d3472007856e7190d01e9fe" +
				"7c6ad7cbc8237830e77376634b373162" +
				"2eaf30d92e22a3886ff109279d9830da" +
				"c727afb94a83ee6d8360cbdfa2cc0640",
		},
		{
			name: "pleaseletmein/SodiumChloride N=16384", password: "pleaseletmein", salt: "SodiumChloride",
			n: 16384, r: 8, p: 1,
			wantHex: "7023bdcb3afd7348461c06cd81fd38eb" +
				"fda8fbba904f8e3ea9b543f6545da1f2" +
				"d5432955613f0fcf62d49705242a9af9" +
				"e61e85dc0d651e40dfcf017b45575887",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dk, err := Derive([]byte(tt.password), []byte(tt.salt), tt.n, tt.r, tt.p, 64)
			require.NoError(t, err)
			require.Len(t, dk, 64)
			require.Equal(t, tt.wantHex, hex.EncodeToString(dk))
		})
	}
}

// TestDerive_KnownAnswerVector_N1048576 exercises the fourth RFC 7914
// vector, which allocates roughly 1 GiB of scratch space; it is gated
// behind -short since it is slow and memory-heavy, not because its
// correctness is in doubt.
func TestDerive_KnownAnswerVector_N1048576(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-N scrypt vector in short mode")
	}

	dk, err := Derive([]byte("pleaseletmein"), []byte("SodiumChloride"), 1048576, 8, 1, 64)
	require.NoError(t, err)

	want := "2101cb9b6a511aaeaddbbe09cf70f881" +
		"ec568d574a2ffd4dabe5ee9820adaa47" +
		"8e56fd8f4ba5d09ffa1c6d927c40f4c3" +
		"37304049e8a952fbcbf45c6fa77a41a4"
	require.Equal(t, want, hex.EncodeToString(dk))
}

func TestDerive_SerialAndFanOutPathsAreEachDeterministic(t *testing.T) {
	t.Parallel()

	password, salt := []byte("correct horse battery staple"), []byte("0123456789abcdef")

	serial1, err := Derive(password, salt, 1024, 4, 2, 64)
	require.NoError(t, err)
	serial2, err := Derive(password, salt, 1024, 4, 2, 64)
	require.NoError(t, err)
	require.Equal(t, serial1, serial2)

	fanOut1, err := Derive(password, salt, 1024, 4, 6, 64)
	require.NoError(t, err)
	fanOut2, err := Derive(password, salt, 1024, 4, 6, 64)
	require.NoError(t, err)
	require.Equal(t, fanOut1, fanOut2)
}

func TestDerive_RejectsInvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		n, r, p, dkLen int
	}{
		{name: "N=1", n: 1, r: 8, p: 1, dkLen: 32},
		{name: "N=3 not power of two", n: 3, r: 8, p: 1, dkLen: 32},
		{name: "r=0", n: 16, r: 0, p: 1, dkLen: 32},
		{name: "p=0", n: 16, r: 8, p: 0, dkLen: 32},
		{name: "dkLen=0", n: 16, r: 8, p: 1, dkLen: 0},
		{name: "r*p overflow", n: 16, r: 1 << 16, p: 1 << 16, dkLen: 32},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Derive([]byte("pw"), []byte("salt"), tt.n, tt.r, tt.p, tt.dkLen)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidParameter))
		})
	}
}
