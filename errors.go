package huffman

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error that reports a malformed or truncated
// compressed stream.  Use errors.Is to test for it.
var ErrCorrupt = errors.New("corrupt compressed data")

// ErrTooLarge is returned when the input holds more bytes than the header's
// 32-bit total field can express.
var ErrTooLarge = errors.New("input too large")

func corruptf(format string, args ...interface{}) error {
	return &corruptError{msg: fmt.Sprintf(format, args...)}
}

type corruptError struct {
	msg string
}

func (err *corruptError) Error() string {
	return ErrCorrupt.Error() + ": " + err.msg
}

func (err *corruptError) Is(target error) bool {
	return target == ErrCorrupt
}

var _ error = (*corruptError)(nil)
