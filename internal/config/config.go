// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the spa-host
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Static holds settings for the static asset root served over HTTP.
	Static Static `envPrefix:"STATIC_"`

	// Resolver holds settings for the startup template resolution step that
	// generates the runtime environment artifact.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout is how long a graceful shutdown may take before
	// in-flight connections are dropped (e.g. "10s").
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Static holds settings for the directory of pre-built front-end assets.
type Static struct {
	// RootDir is the directory containing the built SPA output. The
	// generated environment artifact is written into and served from here.
	// Env: STATIC_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// IndexFile is the file served for "/" and used as the SPA fallback for
	// extension-less paths (client-side routes).
	// Env: STATIC_INDEX_FILE
	IndexFile string `env:"INDEX_FILE"`
}

// Resolver holds settings for the one-shot template resolution step.
type Resolver struct {
	// TemplatePath is the path to the environment template baked into the
	// image. Defaults to env.template.js inside the static root.
	// Env: RESOLVER_TEMPLATE_PATH
	TemplatePath string `env:"TEMPLATE_PATH"`

	// OutputPath is where the generated artifact is written. Defaults to
	// env.js inside the static root.
	// Env: RESOLVER_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`

	// UnboundPolicy selects what happens to placeholders with no matching
	// environment binding: "keep" (default, the token stays visible in the
	// artifact) or "empty".
	// Env: RESOLVER_UNBOUND_POLICY
	UnboundPolicy string `env:"UNBOUND_POLICY"`

	// EscapeMode selects how bound values are rendered: "none" (default,
	// raw substitution) or "js" (escaped for JavaScript string literals).
	// Env: RESOLVER_ESCAPE_MODE
	EscapeMode string `env:"ESCAPE_MODE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
