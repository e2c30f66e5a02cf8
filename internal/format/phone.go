package format

import "strings"

// Phone numbers are stored canonically as "+" followed by digits only
// ("+905321234567") and displayed with the fixed mask "+(90) 532 123 45 67".

const (
	countryCode    = "90"
	maxLocalDigits = 10
)

// ExtractDigits strips everything but 0-9.
func ExtractDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DigitCount is what phone validation checks against: the full mask carries
// the 2-digit country code plus 10 local digits.
func DigitCount(value string) int {
	return len(ExtractDigits(value))
}

// FormatPhoneInput renders a digit string as a partially filled mask while
// the user types. A duplicated leading country code is dropped, extra digits
// beyond the 10 local ones are ignored. Idempotent when fed the digits
// re-extracted from its own output.
func FormatPhoneInput(digits string) string {
	digits = ExtractDigits(digits)
	digits = strings.TrimPrefix(digits, countryCode)
	if len(digits) > maxLocalDigits {
		digits = digits[:maxLocalDigits]
	}
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("+(")
	b.WriteString(countryCode)
	b.WriteString(") ")

	for i, width := range []int{3, 3, 2, 2} {
		if digits == "" {
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		if len(digits) < width {
			width = len(digits)
		}
		b.WriteString(digits[:width])
		digits = digits[width:]
	}

	return b.String()
}

// FormatPhone converts a canonical "+digits" phone to the display mask.
func FormatPhone(canonical string) string {
	return FormatPhoneInput(ExtractDigits(canonical))
}

// CanonicalPhone converts any masked or partial phone back to storage form.
func CanonicalPhone(masked string) string {
	return "+" + ExtractDigits(masked)
}
