package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStaticConfigs indicates invalid static asset settings
	// (for example, an empty root directory or index file name).
	ErrInvalidStaticConfigs = errors.New("invalid static configuration")
	// ErrInvalidResolverConfigs indicates invalid resolver settings
	// (for example, an empty template or output path).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")
)
