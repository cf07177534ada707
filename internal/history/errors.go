package history

import "errors"

// ErrNotFound is returned by Get when no item has the requested id.
var ErrNotFound = errors.New("history item not found")
