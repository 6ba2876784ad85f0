// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
)

type artifactService struct {
	outputPath string

	logger *logger.Logger
}

// NewArtifactService returns an [ArtifactService] watching the generated
// artifact at the resolver's configured output path.
func NewArtifactService(cfg config.Resolver, logger *logger.Logger) ArtifactService {
	return &artifactService{
		outputPath: cfg.OutputPath,
		logger:     logger,
	}
}

// Check stats the generated artifact. The artifact is written once before
// the server starts and never mutated afterwards, so a failed check means
// the serving directory was tampered with or the volume is gone.
func (s *artifactService) Check(ctx context.Context) error {
	info, err := os.Stat(s.outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactNotAvailable, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrArtifactNotAvailable, s.outputPath)
	}

	return nil
}

func (s *artifactService) Path() string {
	return s.outputPath
}
