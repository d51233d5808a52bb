// Package money handles all currency arithmetic for the ledger.
// Amounts are integer kopecks internally; only the Formatter ever sees
// major units or locale decoration, so balance math never touches floats.
package money

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "kassa/internal/errors"
)

// KopecksPerRuble is the minor-to-major unit ratio.
const KopecksPerRuble = 100

// ToKopecks converts a major-unit amount to kopecks.
func ToKopecks(major int64) int64 {
	return major * KopecksPerRuble
}

// ToRubles converts kopecks to whole major units, truncating the remainder.
func ToRubles(minor int64) int64 {
	return minor / KopecksPerRuble
}

// Formatter converts between user-facing amount strings and kopecks.
// The ceiling and locale come from configuration, not process globals,
// so tests can vary them independently.
type Formatter struct {
	ceiling int64 // major units
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a Formatter with the given major-unit ceiling,
// currency symbol, and BCP 47 locale tag for digit grouping.
func NewFormatter(ceiling int64, symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Russian
	}
	return &Formatter{
		ceiling: ceiling,
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Ceiling returns the configured major-unit ceiling.
func (f *Formatter) Ceiling() int64 {
	return f.ceiling
}

// ParseAmount converts a user-facing major-unit string into kopecks.
// Currency decoration (symbol, grouping separators, surrounding space)
// is stripped first. Fails with NOT_INTEGER when the remainder is not a
// base-10 integer, NOT_POSITIVE_VALUE when it is zero or negative, and
// VALUE_TOO_LARGE when it exceeds the configured ceiling.
func (f *Formatter) ParseAmount(input string) (int64, error) {
	stripped := f.strip(input)
	if stripped == "" {
		return 0, apperrors.NewNotInteger(input)
	}

	major, err := strconv.ParseInt(stripped, 10, 64)
	if err != nil {
		return 0, apperrors.NewNotInteger(input)
	}
	if major <= 0 {
		return 0, apperrors.NewNotPositiveValue(major)
	}
	if major > f.ceiling {
		return 0, apperrors.NewValueTooLarge(major, f.ceiling)
	}
	return ToKopecks(major), nil
}

// FormatAmount renders kopecks as a major-unit display string with locale
// grouping and the currency symbol appended.
func (f *Formatter) FormatAmount(minor int64) string {
	return f.printer.Sprintf("%d", ToRubles(minor)) + f.symbol
}

// strip removes the currency symbol and every space-like rune, including
// the no-break and narrow no-break spaces x/text uses as grouping separators.
func (f *Formatter) strip(input string) string {
	s := strings.ReplaceAll(input, f.symbol, "")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
