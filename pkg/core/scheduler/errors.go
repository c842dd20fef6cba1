package scheduler

import "errors"

// ErrInvalidInput is returned before any scheduling attempt when the input
// itself is unusable: empty person list, empty room list, or a malformed
// absence interval (start after end). Nothing partial is produced.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidDateRange is returned for a malformed target year or month.
var ErrInvalidDateRange = errors.New("invalid date range")
