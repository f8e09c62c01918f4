package cardgen

import "fmt"

// Card number geometry. The generator emits a single fixed shape: a
// 6-digit issuer prefix, 9 random body digits and 1 Luhn check digit.
const (
	PrefixLen  = 6
	bodyLen    = 9
	partialLen = PrefixLen + bodyLen
	NumberLen  = partialLen + 1
)

// CheckDigit computes the Luhn check digit for a 15-digit partial
// number. Counting from the left, digits at even 0-based positions are
// doubled and reduced by 9 when the double exceeds 9; on a 15-digit
// string those are exactly the digits an issuer doubles when verifying
// the finished number, so appending the result always yields a number
// that Valid accepts.
func CheckDigit(partial string) (int, error) {
	if len(partial) != partialLen {
		return 0, fmt.Errorf("%w: partial number must be %d digits, got %d", ErrInvalidArgument, partialLen, len(partial))
	}
	if !IsDigits(partial) {
		return 0, fmt.Errorf("%w: partial number must contain digits only", ErrInvalidArgument)
	}
	sum := luhnSum(partial, true)
	return (10 - sum%10) % 10, nil
}

// Valid reports whether number is a well-formed 16-digit card number
// with a correct Luhn checksum. Anything else, including shorter or
// longer all-digit strings, is invalid rather than an error.
func Valid(number string) bool {
	if len(number) != NumberLen || !IsDigits(number) {
		return false
	}
	return luhnSum(number, false)%10 == 0
}

// luhnSum walks s right to left doubling every second digit. doubleFirst
// selects whether the rightmost digit itself is doubled: true for a
// partial number still missing its check digit, false for a complete
// number whose rightmost digit is the check digit.
func luhnSum(s string, doubleFirst bool) int {
	sum := 0
	dbl := doubleFirst
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum
}

// IsDigits reports whether s consists of ASCII digits only. The empty
// string passes; callers gate on length first.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
