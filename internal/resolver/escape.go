package resolver

import "strings"

// escapeJS renders value so it stays inside a JavaScript string literal,
// whether quoted with ', " or `. Line and paragraph separators (U+2028,
// U+2029) terminate string literals in pre-ES2019 parsers and are escaped
// as well.
func escapeJS(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\'`)
		case '`':
			b.WriteString("\\`")
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
