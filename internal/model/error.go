package model

import "errors"

var (
	ErrValidation               = errors.New("validation error")                   // 400
	ErrPaymentMethodUnavailable = errors.New("express payment method unavailable") // 503
	ErrBadGateway               = errors.New("bad gateway")                        // 502
	ErrUnexpectedStatus         = errors.New("unexpected status")                  // 502
	ErrSDKNotReady              = errors.New("paypal sdk not ready")               // 504
	ErrSDKLoadFailed            = errors.New("paypal sdk load failed")             // 504
	ErrIllegalTransition        = errors.New("illegal flow transition")
	ErrDuplicateShortName       = errors.New("duplicate payment method short name")
)
