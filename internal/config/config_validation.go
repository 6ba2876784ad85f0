// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Policy enum values (unbound placeholder policy, escape mode) are checked
// by the resolver constructor, not here, so the resolver package stays the
// single owner of its vocabulary.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Static.RootDir == "" || cfg.Static.IndexFile == "" {
		return ErrInvalidStaticConfigs
	}

	if cfg.Resolver.TemplatePath == "" || cfg.Resolver.OutputPath == "" {
		return ErrInvalidResolverConfigs
	}

	return nil
}
