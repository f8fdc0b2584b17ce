package unlock

import "errors"

// errPlaintextNotObject is recorded when an opened payload does not hold a JSON
// object. It never leaves the package.
var errPlaintextNotObject = errors.New("plaintext is not a JSON object")
