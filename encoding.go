package yamlinc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// decodeText converts data from the named character encoding to UTF-8.
// UTF-8 content passes through untouched. Encoding names are resolved
// case-insensitively through the IANA index.
func decodeText(data []byte, name string) ([]byte, error) {
	if isUTF8Name(name) {
		return data, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", name, err)
	}
	return decoded, nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
