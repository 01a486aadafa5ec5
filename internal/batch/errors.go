package batch

import "errors"

// ErrToolFailed marks a chdman invocation that exited non-zero. It is
// recorded per file and gates source deletion, but never aborts a
// batch; the remaining siblings still run.
var ErrToolFailed = errors.New("chdman exited with non-zero status")
