package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeverity(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "well-known low", input: "baixa"},
		{name: "well-known medium", input: "media"},
		{name: "well-known high", input: "alta"},
		{name: "free-form label accepted", input: "critical"},
		{name: "empty rejected", input: "", expectError: true},
		{name: "blank rejected", input: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, err := NewSeverity(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, sev.String())
		})
	}
}
