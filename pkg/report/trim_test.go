package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "drops nil and blank strings",
			input: map[string]any{"a": nil, "b": "", "c": "   ", "d": "keep"},
			want:  map[string]any{"d": "keep"},
		},
		{
			name:  "strips surrounding whitespace",
			input: map[string]any{"license": "  MIT  "},
			want:  map[string]any{"license": "MIT"},
		},
		{
			name:  "drops empty collections",
			input: map[string]any{"s": []string{}, "m": map[string]any{}, "keep": []string{"x"}},
			want:  map[string]any{"keep": []string{"x"}},
		},
		{
			name:  "drops false and numeric zero",
			input: map[string]any{"b": false, "i": 0, "f": 0.0, "t": true, "n": 7},
			want:  map[string]any{"t": true, "n": 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trim(tt.input))
		})
	}
}

func TestTrimDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"keep": "  value  ", "drop": ""}
	_ = Trim(input)
	assert.Equal(t, "  value  ", input["keep"])
	assert.Contains(t, input, "drop")
}
