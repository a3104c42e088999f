package loaders

import "errors"

// Error kinds returned by the loaders. Every returned error wraps exactly one
// of them, so callers can branch with errors.Is.
var (
	ErrIO     = errors.New("i/o error")
	ErrDecode = errors.New("decode error")
	ErrEncode = errors.New("encode error")
)
