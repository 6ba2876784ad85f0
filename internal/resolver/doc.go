// Package resolver implements the runtime configuration injection step that
// runs once at process start, before the static host begins serving.
//
// A template file (conventionally env.template.js) contains placeholder
// tokens of the form $NAME. The resolver substitutes each placeholder with
// the value bound to NAME in a [Bindings] set, typically built from the
// process environment, and writes the generated artifact into the static
// root where the host serves it.
//
// Resolution is a pure function of the template text and the binding set:
// resolving the same inputs twice yields identical output, and all text
// outside placeholder tokens is preserved byte for byte.
package resolver
