package guardiantransport

import "errors"

// ErrMalformedEnvelope is returned when a decrypted payload cannot be
// parsed back into a guardian key share.
var ErrMalformedEnvelope = errors.New("malformed guardian transport envelope")
