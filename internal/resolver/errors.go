package resolver

import "errors"

var (
	// ErrUnknownUnboundPolicy indicates an unbound placeholder policy value
	// outside the supported set ("keep", "empty").
	ErrUnknownUnboundPolicy = errors.New("unknown unbound placeholder policy")
	// ErrUnknownEscapeMode indicates an escape mode value outside the
	// supported set ("none", "js").
	ErrUnknownEscapeMode = errors.New("unknown escape mode")
)
