package credential

import "errors"

// ErrMalformedCredentialShape is returned by [Parse] when the input does not
// look like five dash-separated groups of 8-4-4-4-12 hexadecimal characters.
var ErrMalformedCredentialShape = errors.New("malformed credential shape")
