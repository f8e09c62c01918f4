// Package expiry owns the two-digit year convention for card
// expiration dates: arithmetic wraps modulo 100 and parsed years pivot
// into 2000..2099. Generator and validator both lean on it so the
// century edge is handled in exactly one place.
package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WrapYear folds a year offset into the two-digit range, so 99 plus a
// 3 year validity becomes 02.
func WrapYear(y int) int {
	y %= 100
	if y < 0 {
		y += 100
	}
	return y
}

// Face renders zero-padded month and year strings as the MM/YY imprint
// shown on a card face.
func Face(month, year string) string {
	return month + "/" + year
}

// ParseFace parses a card-face date given as MM/YY or MMYY and returns
// the zero-padded month and year components.
func ParseFace(in string) (month, year string, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(in), "/", "")
	if len(s) != 4 {
		return "", "", fmt.Errorf("expiration must be MM/YY or MMYY, got %q", in)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", "", fmt.Errorf("expiration must contain digits only, got %q", in)
		}
	}
	mm, _ := strconv.Atoi(s[:2])
	if mm < 1 || mm > 12 {
		return "", "", fmt.Errorf("expiration month must be 01..12, got %q", s[:2])
	}
	return s[:2], s[2:], nil
}

// EndOfMonth returns the last instant of the expiration month in loc
// (UTC when nil), pivoting the two-digit year into 2000..2099.
func EndOfMonth(month, year string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	mm, err := strconv.Atoi(month)
	if err != nil || len(month) != 2 || mm < 1 || mm > 12 {
		return time.Time{}, fmt.Errorf("month must be 01..12, got %q", month)
	}
	yy, err := strconv.Atoi(year)
	if err != nil || len(year) != 2 || yy < 0 {
		return time.Time{}, fmt.Errorf("year must be 00..99, got %q", year)
	}
	// First day of the following month, then one nanosecond back.
	firstNext := time.Date(2000+yy, time.Month(mm), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond), nil
}

// IsExpired reports whether at falls after the end of the expiration
// month. A card stays good through the last instant of its month.
func IsExpired(month, year string, at time.Time) (bool, error) {
	end, err := EndOfMonth(month, year, time.UTC)
	if err != nil {
		return false, err
	}
	return at.After(end), nil
}
