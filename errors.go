package yamlinc

import "errors"

var (
	// ErrUnsupportedNode reports an include tag on a node shape the resolver
	// cannot interpret (anything other than scalar, sequence or mapping).
	ErrUnsupportedNode = errors.New("unsupported node kind for include tag")

	// ErrInvalidTag reports a registration attempt with a tag name that does
	// not start with the '!' sigil.
	ErrInvalidTag = errors.New("tag must start with '!'")

	// ErrUnknownEncoding reports an encoding name the IANA index cannot
	// resolve to a character decoder.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
