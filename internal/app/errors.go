package app

import "errors"

// ErrNotUTF8 marks input that is not valid UTF-8 text. The CLI maps it to
// its own exit code so callers can tell an encoding problem from a missing
// file.
var ErrNotUTF8 = errors.New("input is not valid UTF-8")
