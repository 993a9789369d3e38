package factory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout renders date-only fields.
	DateLayout = time.DateOnly
	// TimestampLayout renders date-time fields as ISO-8601 UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

	upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	upperLetters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	vinAlphabet       = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
	vinLength         = 17
)

// ErrMalformedAmount is returned by ParseAmount when a price string does not carry the expected symbol or number.
var ErrMalformedAmount = errors.New("malformed currency amount")

// FormatAmount renders amount as <symbol><number> with a fixed number of decimals.
func FormatAmount(symbol string, amount float64, decimals int) string {
	return symbol + strconv.FormatFloat(amount, 'f', decimals, 64)
}

// ParseAmount reverses FormatAmount for the given symbol.
func ParseAmount(price, symbol string) (float64, error) {
	raw, ok := strings.CutPrefix(price, symbol)
	if !ok || raw == "" {
		return 0, fmt.Errorf("%w: %q lacks prefix %q", ErrMalformedAmount, price, symbol)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedAmount, price, err)
	}
	return value, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ibanCheckDigits computes the ISO 13616 mod-97 check digits for a country and BBAN.
func ibanCheckDigits(country, bban string) string {
	rearranged := bban + country + "00"
	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			remainder = (remainder*100 + int(r-'A'+10)) % 97
		}
	}
	return fmt.Sprintf("%02d", 98-remainder)
}
