package budget

import "errors"

var (
	ErrInvalidFillSetting = errors.New("the fill setting must be one of 'amount', 'fill' or 'percentage'")
	ErrInvariant          = errors.New("the envelopes are in an inconsistent state")
	ErrRejected           = errors.New("the operation was rejected")
)
