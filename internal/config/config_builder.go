package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.normalize()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults last, so they only fill fields
// no other source has set.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "0.0.0-dev",
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8080",
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Static: Static{
			RootDir:   "./dist",
			IndexFile: "index.html",
		},
	}
}

// normalize derives the resolver paths from the static root when they were
// not configured explicitly, keeping template and artifact next to the
// assets they configure.
func (cfg *StructuredConfig) normalize() {
	if cfg.Resolver.TemplatePath == "" {
		cfg.Resolver.TemplatePath = filepath.Join(cfg.Static.RootDir, "env.template.js")
	}

	if cfg.Resolver.OutputPath == "" {
		cfg.Resolver.OutputPath = filepath.Join(cfg.Static.RootDir, "env.js")
	}
}
