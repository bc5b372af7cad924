package accum

import "errors"

// ErrUnsupportedOperation is returned by ApplyChange when a scheme is
// given an Operation shape it does not support (e.g. a Batch given to a
// Merkle tree, or a Replace given to the RSA family).
var ErrUnsupportedOperation = errors.New("accum: operation shape not supported by this scheme")
