package insights

import "errors"

// ErrNotFound indicates the requested entity does not exist for this user.
var ErrNotFound = errors.New("not found")

// ErrQuotaExceeded indicates the narrative provider returned a quota/limit
// error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("narrative quota exceeded")
