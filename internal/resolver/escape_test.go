package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeJS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "https://api.x.com", "https://api.x.com"},
		{"double quote", `say "hi"`, `say \"hi\"`},
		{"single quote", "it's", `it\'s`},
		{"backtick", "a`b", "a\\`b"},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"carriage return", "a\rb", `a\rb`},
		{"line separator", "a\u2028b", `a\u2028b`},
		{"paragraph separator", "a\u2029b", `a\u2029b`},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeJS(tt.input))
		})
	}
}
