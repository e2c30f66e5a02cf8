package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type DateFormat string

const (
	FormatISODate      DateFormat = "2006-01-02"
	FormatUSDate       DateFormat = "01/02/2006"
	FormatEuropeanDate DateFormat = "02/01/2006"
	FormatDashDate     DateFormat = "02-01-2006"
	FormatDotDate      DateFormat = "02.01.2006"
)

type DateValidator struct {
	supportedFormats []DateFormat
	standardFormat   DateFormat
}

type ValidationResult struct {
	IsValid        bool
	DetectedFormat DateFormat
	ParsedTime     time.Time
	StandardFormat string
	OriginalValue  string
}

func NewDateValidator() *DateValidator {
	return &DateValidator{
		supportedFormats: []DateFormat{
			FormatISODate,
			FormatUSDate,
			FormatEuropeanDate,
			FormatDashDate,
			FormatDotDate,
		},
		standardFormat: FormatISODate,
	}
}

func (dv *DateValidator) ValidateAndConvert(input string) ValidationResult {
	result := ValidationResult{
		IsValid:       false,
		OriginalValue: input,
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return result
	}

	for _, format := range dv.supportedFormats {
		parsedTime, err := time.Parse(string(format), input)
		if err != nil {
			continue
		}
		if !dv.isValidForFormat(input, format) {
			continue
		}
		result.IsValid = true
		result.DetectedFormat = format
		result.ParsedTime = parsedTime
		result.StandardFormat = parsedTime.Format(string(dv.standardFormat))
		return result
	}

	return result
}

func (dv *DateValidator) isValidForFormat(input string, format DateFormat) bool {
	switch format {
	case FormatUSDate:
		return dv.validateSlashDateFormat(input, true)
	case FormatEuropeanDate:
		return dv.validateSlashDateFormat(input, false)
	default:
		return true
	}
}

func (dv *DateValidator) validateSlashDateFormat(input string, monthFirst bool) bool {
	pattern := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := pattern.FindStringSubmatch(input)
	if len(matches) < 4 {
		return false
	}

	first, _ := strconv.Atoi(matches[1])
	second, _ := strconv.Atoi(matches[2])

	month, day := first, second
	if !monthFirst {
		month, day = second, first
	}

	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func (dv *DateValidator) GetSupportedFormats() []DateFormat {
	return dv.supportedFormats
}

// NormalizeDate converts any recognized date input to ISO form. Unrecognized
// input passes through unchanged: employment and birth dates are optional
// free-form fields with no range validation.
func NormalizeDate(input string) string {
	result := NewDateValidator().ValidateAndConvert(input)
	if result.IsValid {
		return result.StandardFormat
	}
	return input
}
