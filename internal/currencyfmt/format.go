// Package currencyfmt renders a recognized Money token as a locale-aware
// string: symbol placement, thousands separators, and decimal digits per
// the currency's home locale, instead of a bare "%v" dump of the token.
//
// Grounded on GiGurra-subscription-detector's internal/currency.go
// (GetCurrency/Format/FormatRange): a currencyToLocale map picks a
// language.Tag per ISO code, a message.Printer formats the number, and
// currency.NarrowSymbol supplies the symbol, with a small prefix/suffix
// table for where the symbol goes. That file formats known bank-statement
// currencies; this one only needs to cover what the en grammar actually
// produces (USD), with the same fallback-to-English behavior for any
// other ISO code a future grammar rule might emit.
package currencyfmt

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var homeLocale = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"GBP": language.BritishEnglish,
	"EUR": language.German,
	"JPY": language.Japanese,
}

// prefixed lists currencies whose symbol is conventionally written before
// the amount ("$10") rather than after ("10 kr").
var prefixed = map[string]bool{
	"USD": true, "GBP": true, "JPY": true,
}

// Format renders a single amount in the given ISO 4217 currency code.
// An unrecognized code falls back to plain English number formatting
// with the code itself standing in for a symbol, matching
// GiGurra-subscription-detector's "unknown currency" fallback.
func Format(code string, amount float64) string {
	_, tag, symbol := resolve(code)
	amountStr := message.NewPrinter(tag).Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	if prefixed[code] {
		return symbol + amountStr
	}
	return amountStr + " " + symbol
}

// FormatRange renders a (min, max) interval the same way Format renders a
// single amount.
func FormatRange(code string, min, max float64) string {
	_, tag, symbol := resolve(code)
	p := message.NewPrinter(tag)
	minStr := p.Sprint(number.Decimal(min, number.MaxFractionDigits(2)))
	maxStr := p.Sprint(number.Decimal(max, number.MaxFractionDigits(2)))
	if prefixed[code] {
		return fmt.Sprintf("%s%s-%s%s", symbol, minStr, symbol, maxStr)
	}
	return fmt.Sprintf("%s-%s %s", minStr, maxStr, symbol)
}

func resolve(code string) (currency.Unit, language.Tag, string) {
	unit, err := currency.ParseISO(code)
	tag, ok := homeLocale[code]
	if !ok {
		tag = language.English
	}
	if err != nil {
		return currency.Unit{}, tag, code
	}
	symbol := message.NewPrinter(tag).Sprint(currency.NarrowSymbol(unit))
	return unit, tag, symbol
}
