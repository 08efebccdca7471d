package yamlinc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextUTF8Passthrough(t *testing.T) {
	data := []byte("héllo")

	for _, name := range []string{"", "utf-8", "UTF-8", "utf8"} {
		decoded, err := decodeText(data, name)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestDecodeTextLatin1(t *testing.T) {
	decoded, err := decodeText([]byte("caf\xe9"), "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", string(decoded))
}

func TestDecodeTextUnknownEncoding(t *testing.T) {
	_, err := decodeText([]byte("data"), "no-such-encoding")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}
