package user

import "errors"

var ErrUnknownRole = errors.New("unknown user role")
