package gormstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "plain text untouched",
			input:  "san francisco",
			expect: "san francisco",
		},
		{
			name:   "percent escaped",
			input:  "100% main",
			expect: `100\% main`,
		},
		{
			name:   "underscore escaped",
			input:  "main_st",
			expect: `main\_st`,
		},
		{
			name:   "backslash escaped",
			input:  `c:\homes`,
			expect: `c:\\homes`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, escapeLike(tt.input))
		})
	}
}
