package resolver

import "strings"

// Bindings maps placeholder names to their substitution values.
// Names are case-sensitive and follow process environment variable naming
// rules. The set is fixed for the lifetime of the process.
type Bindings map[string]string

// BindingsFromEnviron builds a [Bindings] set from a list of "KEY=value"
// entries as returned by os.Environ.
//
// Entries without a "=" separator or with an empty key are skipped. No
// prefix filtering is applied: the template is the sole point of control
// over which variables end up in the generated artifact.
func BindingsFromEnviron(environ []string) Bindings {
	bindings := make(Bindings, len(environ))

	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		bindings[key] = value
	}

	return bindings
}
