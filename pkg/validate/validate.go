// Package validate checks the surface syntax and checksums of every guest
// supplied field. Pattern mismatches wrap entity.ErrFormat; failed checksums
// (Luhn, national ID check letter) wrap entity.ErrChecksum so callers can
// tell the two conditions apart.
package validate

import (
	"fmt"
	"regexp"
	"strconv"

	"hotelier-service/internal/domain/entity"
)

// Check letters for a national ID, indexed by the numeric part mod 23.
const idCardLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

var (
	idCardPattern     = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	phonePattern      = regexp.MustCompile(`^\+[0-9]{9}$`)
	namePattern       = regexp.MustCompile(`^[a-zA-Z]+(\s[a-zA-Z]+)+$`)
	arrivalPattern    = regexp.MustCompile(`^(([0-2]\d|-3[0-1])/(0\d|1[0-2])/\d\d\d\d)$`)
	roomTypePattern   = regexp.MustCompile(`^(SINGLE|DOUBLE|SUITE)$`)
	localizerPattern  = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
	roomKeyPattern    = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
)

// IDCard validates the national ID: 8 digits plus an uppercase check letter.
// The letter must equal idCardLetters[digits mod 23].
func IDCard(s string) error {
	if !idCardPattern.MatchString(s) {
		return fmt.Errorf("invalid id card format: %w", entity.ErrFormat)
	}
	digits, err := strconv.Atoi(s[:8])
	if err != nil {
		return fmt.Errorf("invalid id card format: %w", entity.ErrFormat)
	}
	if s[8] != idCardLetters[digits%23] {
		return fmt.Errorf("invalid id card check letter: %w", entity.ErrChecksum)
	}
	return nil
}

// CardNumber validates a credit card number: 16 digits and a passing Luhn
// checksum.
func CardNumber(s string) error {
	if !cardNumberPattern.MatchString(s) {
		return fmt.Errorf("invalid credit card format: %w", entity.ErrFormat)
	}
	if !luhn(s) {
		return fmt.Errorf("invalid credit card number: %w", entity.ErrChecksum)
	}
	return nil
}

// luhn reports whether the digit string passes the Luhn checksum: doubling
// every second digit from the right (digits of doubled values above 9 are
// summed, i.e. 9 is subtracted), the digit sum must be divisible by 10.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// NameSurname validates the guest name: 10 to 50 characters, two or more
// alphabetic words.
func NameSurname(s string) error {
	if len(s) < 10 || len(s) > 50 || !namePattern.MatchString(s) {
		return fmt.Errorf("invalid name format: %w", entity.ErrFormat)
	}
	return nil
}

// Phone validates the phone number: a plus sign followed by 9 digits.
func Phone(s string) error {
	if !phonePattern.MatchString(s) {
		return fmt.Errorf("invalid phone number format: %w", entity.ErrFormat)
	}
	return nil
}

// ArrivalDate validates the DD/MM/YYYY arrival date against the store's
// historical pattern. The day alternative accepts 00-29 and the literal
// forms -30/-31; the month alternative accepts 00-12.
func ArrivalDate(s string) error {
	if !arrivalPattern.MatchString(s) {
		return fmt.Errorf("invalid date format: %w", entity.ErrFormat)
	}
	return nil
}

// RoomType validates the room type against the SINGLE/DOUBLE/SUITE enum.
func RoomType(s string) error {
	if !roomTypePattern.MatchString(s) {
		return fmt.Errorf("invalid room type value: %w", entity.ErrFormat)
	}
	return nil
}

// NumDays parses and validates the length of the stay: an integer from 1 to
// 10.
func NumDays(s string) (int, error) {
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid num days datatype: %w", entity.ErrFormat)
	}
	if days < 1 || days > 10 {
		return 0, fmt.Errorf("num days must be in the range 1-10: %w", entity.ErrFormat)
	}
	return days, nil
}

// Localizer validates the 32 hex digit reservation localizer format.
func Localizer(s string) error {
	if !localizerPattern.MatchString(s) {
		return fmt.Errorf("invalid localizer: %w", entity.ErrFormat)
	}
	return nil
}

// RoomKey validates the 64 hex digit room key format.
func RoomKey(s string) error {
	if !roomKeyPattern.MatchString(s) {
		return fmt.Errorf("invalid room key format: %w", entity.ErrFormat)
	}
	return nil
}
