package hxclient

import "errors"

// Sentinel errors for dispatch operations.
//
// None of these cross Engine.Dispatch; they reach the OnError hook and the
// log. Render and NewJob return them directly.
var (
	ErrConfigIncomplete = errors.New("hxclient: configuration incomplete")
	ErrTransport        = errors.New("hxclient: transport failed")
	ErrHTTPStatus       = errors.New("hxclient: unsuccessful status")
	ErrTargetNotFound   = errors.New("hxclient: target not found")
	ErrTargetDetached   = errors.New("hxclient: target detached")
	ErrSelectNoMatch    = errors.New("hxclient: select matched nothing")
	ErrRenderPanic      = errors.New("hxclient: render panicked")
	ErrDispatchPanic    = errors.New("hxclient: dispatch panicked")
)

// IsConfigIncomplete checks if err means no job could be built.
func IsConfigIncomplete(err error) bool {
	return errors.Is(err, ErrConfigIncomplete)
}

// IsTransportFailure checks if err is a network failure or a rejected status.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrHTTPStatus)
}

// IsRenderFailure checks if err happened while merging a response.
func IsRenderFailure(err error) bool {
	return errors.Is(err, ErrTargetNotFound) ||
		errors.Is(err, ErrTargetDetached) ||
		errors.Is(err, ErrSelectNoMatch) ||
		errors.Is(err, ErrRenderPanic)
}
