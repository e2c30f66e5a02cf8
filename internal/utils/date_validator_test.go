package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAndConvert(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectValid    bool
		expectedFormat DateFormat
		expectedOutput string
	}{
		{
			name:           "ISO date",
			input:          "2022-09-23",
			expectValid:    true,
			expectedFormat: FormatISODate,
			expectedOutput: "2022-09-23",
		},
		{
			name:           "US date",
			input:          "09/23/2022",
			expectValid:    true,
			expectedFormat: FormatUSDate,
			expectedOutput: "2022-09-23",
		},
		{
			name:           "European date",
			input:          "23/09/2022",
			expectValid:    true,
			expectedFormat: FormatEuropeanDate,
			expectedOutput: "2022-09-23",
		},
		{
			name:           "dash date",
			input:          "23-09-2022",
			expectValid:    true,
			expectedFormat: FormatDashDate,
			expectedOutput: "2022-09-23",
		},
		{
			name:           "dot date",
			input:          "23.09.2022",
			expectValid:    true,
			expectedFormat: FormatDotDate,
			expectedOutput: "2022-09-23",
		},
		{
			name:        "empty input",
			input:       "",
			expectValid: false,
		},
		{
			name:        "whitespace only",
			input:       "   ",
			expectValid: false,
		},
		{
			name:        "garbage",
			input:       "not-a-date",
			expectValid: false,
		},
		{
			name:        "month out of range",
			input:       "13/45/2022",
			expectValid: false,
		},
	}

	dv := NewDateValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dv.ValidateAndConvert(tt.input)

			assert.Equal(t, tt.expectValid, result.IsValid)
			assert.Equal(t, tt.input, result.OriginalValue)

			if tt.expectValid {
				assert.Equal(t, tt.expectedFormat, result.DetectedFormat)
				assert.Equal(t, tt.expectedOutput, result.StandardFormat)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2022-09-23", NormalizeDate("23/09/2022"))
	assert.Equal(t, "2022-09-23", NormalizeDate("2022-09-23"))

	// Unrecognized input passes through; dates carry no hard validation.
	assert.Equal(t, "sometime soon", NormalizeDate("sometime soon"))
	assert.Equal(t, "", NormalizeDate(""))
}
