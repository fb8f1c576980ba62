package content

import "errors"

// ErrNotFound indicates a slug or id with no matching record.
var ErrNotFound = errors.New("content not found")
