package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"rosario", "rosario"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`a\b`, `a\\b`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), "in=%q", tt.in)
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%ros%", ContainsPattern("ros"))
	assert.Equal(t, `%50\%%`, ContainsPattern("50%"))
}
