package cardgen

import (
	"fmt"
	"strings"
)

// FormatCardNumber renders a complete 16-digit number as four
// space-separated groups of four for display. The input must be exactly
// the raw digits; pre-formatted or partial numbers are rejected.
func FormatCardNumber(number string) (string, error) {
	if number == "" || !IsDigits(number) {
		return "", fmt.Errorf("%w: card number must contain digits only", ErrInvalidArgument)
	}
	if len(number) != NumberLen {
		return "", fmt.Errorf("%w: card number must be %d digits, got %d", ErrInvalidArgument, NumberLen, len(number))
	}
	return number[:4] + " " + number[4:8] + " " + number[8:12] + " " + number[12:], nil
}

// NormalizePAN strips spaces, tabs and dashes, returning the bare digit
// string a user-pasted number reduces to.
func NormalizePAN(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}

// MaskPAN hides the middle of a card number for logs, keeping at most
// the first six and last four digits visible.
func MaskPAN(pan string) string {
	cleaned := NormalizePAN(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}

// LastN returns at most the last n characters of s.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
