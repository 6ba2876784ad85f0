package service

import (
	"context"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ArtifactService reports on the generated environment artifact produced by
// the startup resolution step.
type ArtifactService interface {
	// Check returns nil when the generated artifact is present and regular,
	// or a descriptive error otherwise.
	Check(ctx context.Context) error

	// Path returns the filesystem path of the generated artifact.
	Path() string
}
