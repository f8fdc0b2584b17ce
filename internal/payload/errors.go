package payload

import "errors"

// ErrMalformedPayload is returned when an encoded payload is not valid Base64,
// is shorter than [HeaderSize] bytes after decoding, or when Encode receives a
// salt or nonce of the wrong size.
var ErrMalformedPayload = errors.New("malformed payload")
