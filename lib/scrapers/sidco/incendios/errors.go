package incendios

import "errors"

// Structural failures abort a parse call loudly: they mean the portal
// changed shape and stale or wrong data would be worse than none.
var ErrNotFound = errors.New("required markup not found")
var ErrMalformedDocument = errors.New("document structure is malformed")
