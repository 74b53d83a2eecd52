package channel

import "errors"

var (
	ErrValidation  = errors.New("channel name is required")
	ErrEmptyUpdate = errors.New("empty channel update")

	ErrChannelNotFound = errors.New("channel not found")
	ErrDuplicateName   = errors.New("channel with this name already exists")
	ErrConflict        = errors.New("channel was changed concurrently")
)
