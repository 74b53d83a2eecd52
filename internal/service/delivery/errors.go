package delivery

import "errors"

var (
	ErrValidation     = errors.New("invalid delivery fields")
	ErrEmptyUpdate    = errors.New("empty delivery update")
	ErrCourierMissing = errors.New("courier name is required")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
)
