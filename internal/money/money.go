// Package money formats prices for display according to a locale: the
// currency symbol, digit grouping and the number of fraction digits the
// currency uses.
package money

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Formatter renders amounts in a fixed locale and currency.
// It is safe for concurrent use.
type Formatter struct {
	tag    language.Tag
	unit   currency.Unit
	scale  int
	symbol string
}

// NewFormatter builds a Formatter for the BCP 47 locale. When code is empty
// the currency is derived from the locale region, otherwise code must be an
// ISO 4217 currency code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, locale, err)
	}

	var unit currency.Unit
	if code == "" {
		var conf language.Confidence
		unit, conf = currency.FromTag(tag)
		if conf == language.No {
			return nil, fmt.Errorf("%w for locale %q", ErrUnknownCurrency, locale)
		}
	} else {
		unit, err = currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrUnknownCurrency, code, err)
		}
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	return &Formatter{
		tag:    tag,
		unit:   unit,
		scale:  scale,
		symbol: p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// MustFormatter is like NewFormatter but panics on error.
func MustFormatter(locale, code string) *Formatter {
	f, err := NewFormatter(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders amount, e.g. "$1,234.50" for en-US.
// The symbol always leads the number. Locales that place it after the
// amount still get a prefix: de-DE renders "€1.234,50", not "1.234,50 €".
func (f *Formatter) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	p := message.NewPrinter(f.tag)
	return sign + f.symbol + p.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}

// Currency returns the ISO 4217 code of the formatter currency.
func (f *Formatter) Currency() string { return f.unit.String() }

// Locale returns the canonical locale tag.
func (f *Formatter) Locale() string { return f.tag.String() }
