package bridge

import "errors"

var (
	ErrMalformedCall    = errors.New("malformed call")
	ErrIllegalCall      = errors.New("illegal call")
	ErrIllegalPlay      = errors.New("illegal play")
	ErrTrickNotResolved = errors.New("trick not resolved")
	ErrWrongPhase       = errors.New("wrong phase")
)
