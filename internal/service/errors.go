package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrArtifactNotAvailable = errors.New("generated artifact is not available")
)
