// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
)

// UnboundPolicy selects what happens to a placeholder whose name has no
// entry in the binding set.
type UnboundPolicy string

const (
	// UnboundKeep leaves the placeholder token in the output unchanged, so a
	// missing operator-supplied value stays visible in the artifact.
	UnboundKeep UnboundPolicy = "keep"
	// UnboundEmpty replaces the placeholder with an empty string.
	UnboundEmpty UnboundPolicy = "empty"
)

// EscapeMode selects how bound values are rendered into the artifact.
type EscapeMode string

const (
	// EscapeNone substitutes values verbatim. A value containing a quote
	// character can syntactically corrupt a script-shaped artifact; this
	// matches the behaviour of the classic envsubst-based entrypoint.
	EscapeNone EscapeMode = "none"
	// EscapeJS escapes backslashes, quotes and line terminators so a value
	// cannot break out of a JavaScript string literal.
	EscapeJS EscapeMode = "js"
)

// placeholderPattern matches $NAME tokens. The name part is greedy, so a
// binding named API can never clobber part of an $API_URL token.
var placeholderPattern = regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`)

// Resolver substitutes placeholder tokens in template text according to a
// fixed unbound-placeholder policy and escape mode.
type Resolver struct {
	unbound UnboundPolicy
	escape  EscapeMode

	logger *logger.Logger
}

// NewResolver validates the policy values in cfg and returns a ready
// *Resolver. Empty policy fields fall back to [UnboundKeep] and [EscapeNone].
func NewResolver(cfg config.Resolver, logger *logger.Logger) (*Resolver, error) {
	unbound := UnboundPolicy(cfg.UnboundPolicy)
	if unbound == "" {
		unbound = UnboundKeep
	}
	if unbound != UnboundKeep && unbound != UnboundEmpty {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnboundPolicy, cfg.UnboundPolicy)
	}

	escape := EscapeMode(cfg.EscapeMode)
	if escape == "" {
		escape = EscapeNone
	}
	if escape != EscapeNone && escape != EscapeJS {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEscapeMode, cfg.EscapeMode)
	}

	return &Resolver{
		unbound: unbound,
		escape:  escape,
		logger:  logger,
	}, nil
}

// Resolve substitutes every recognized placeholder token in template and
// returns the resulting text. It is a pure function of its inputs: all text
// outside placeholder tokens is preserved verbatim, bound placeholders are
// replaced by their values (rendered per the escape mode, never re-scanned
// for further placeholders), and unbound placeholders are handled uniformly
// per the unbound policy.
func (r *Resolver) Resolve(template string, bindings Bindings) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1:] // strip the $ sigil

		value, bound := bindings[name]
		if !bound {
			if r.unbound == UnboundEmpty {
				return ""
			}
			return token
		}

		if r.escape == EscapeJS {
			return escapeJS(value)
		}
		return value
	})
}

// ResolveFile reads the template at templatePath, resolves it against
// bindings and writes the generated artifact to outputPath, overwriting any
// prior instance.
//
// An unreadable template or unwritable destination is returned as an error;
// callers are expected to treat either as fatal and never start serving.
func (r *Resolver) ResolveFile(templatePath, outputPath string, bindings Bindings) error {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("error reading template file: %w", err)
	}

	template := string(raw)
	r.logPlaceholderCoverage(template, bindings)

	resolved := r.Resolve(template, bindings)
	if err := os.WriteFile(outputPath, []byte(resolved), 0o644); err != nil {
		return fmt.Errorf("error writing generated artifact: %w", err)
	}

	return nil
}

// Placeholders returns the distinct placeholder names referenced by template,
// sorted alphabetically.
func Placeholders(template string) []string {
	seen := make(map[string]struct{})
	for _, token := range placeholderPattern.FindAllString(template, -1) {
		seen[token[1:]] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// logPlaceholderCoverage reports which template placeholders are bound and
// which are not. Only names are logged: the environment may hold secrets
// that are not referenced by the template.
func (r *Resolver) logPlaceholderCoverage(template string, bindings Bindings) {
	var bound, unbound []string
	for _, name := range Placeholders(template) {
		if _, ok := bindings[name]; ok {
			bound = append(bound, name)
		} else {
			unbound = append(unbound, name)
		}
	}

	r.logger.Info().
		Strs("bound", bound).
		Strs("unbound", unbound).
		Str("unbound_policy", string(r.unbound)).
		Str("escape_mode", string(r.escape)).
		Msg("resolved template placeholders")
}
