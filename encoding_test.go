package pgcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupServerEncoding(t *testing.T) {
	names := []string{
		"UTF8", "UNICODE", "SQL_ASCII",
		"LATIN1", "LATIN5", "LATIN9",
		"ISO_8859_5", "KOI8R", "WIN866", "WIN1252",
		"EUC_JP", // resolved through the IANA registry
	}
	for _, name := range names {
		enc, err := lookupServerEncoding(name)
		require.NoErrorf(t, err, "encoding %s", name)
		require.NotNil(t, enc)
	}

	enc, err := lookupServerEncoding(" utf8 ")
	require.NoError(t, err)
	assert.Equal(t, "UTF8", enc.name)

	_, err = lookupServerEncoding("EBCDIC")
	assert.Error(t, err)
}

func TestDecodeUTF8(t *testing.T) {
	s, ok := utf8ServerEncoding.decode([]byte("héllo"))
	require.True(t, ok)
	assert.Equal(t, "héllo", s)

	_, ok = utf8ServerEncoding.decode([]byte{0xff, 0xfe})
	assert.False(t, ok)
}

func TestDecodeLatin1(t *testing.T) {
	enc, err := lookupServerEncoding("LATIN1")
	require.NoError(t, err)

	s, ok := enc.decode([]byte{'c', 'a', 'f', 0xe9})
	require.True(t, ok)
	assert.Equal(t, "café", s)
}

func TestDecodeWin1252(t *testing.T) {
	enc, err := lookupServerEncoding("WIN1252")
	require.NoError(t, err)

	// 0x80 is the euro sign in Windows-1252.
	s, ok := enc.decode([]byte{0x80, '1'})
	require.True(t, ok)
	assert.Equal(t, "€1", s)

	// 0x81 is unmapped in Windows-1252.
	_, ok = enc.decode([]byte{0x81})
	assert.False(t, ok)
}

func TestDecodeSQLASCII(t *testing.T) {
	enc, err := lookupServerEncoding("SQL_ASCII")
	require.NoError(t, err)

	s, ok := enc.decode([]byte("plain"))
	require.True(t, ok)
	assert.Equal(t, "plain", s)

	_, ok = enc.decode([]byte{'a', 0xe9})
	assert.False(t, ok)
}

// LATIN5 is ISO 8859-9 in PostgreSQL's naming, not 8859-5.
func TestLatin5IsTurkish(t *testing.T) {
	enc, err := lookupServerEncoding("LATIN5")
	require.NoError(t, err)

	// 0xFD is dotless i in ISO 8859-9.
	s, ok := enc.decode([]byte{0xfd})
	require.True(t, ok)
	assert.Equal(t, "ı", s)
}
