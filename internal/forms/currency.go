package forms

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

const msgRefunded = "Refunded %s"

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

var messages = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	_ = b.SetString(language.English, msgRefunded, "Refunded %s")
	_ = b.SetString(language.German, msgRefunded, "%s erstattet")
	_ = b.SetString(language.French, msgRefunded, "%s remboursé")
	_ = b.SetString(language.Russian, msgRefunded, "Возвращено %s")
	return b
}()

// symbols covers the currencies the store sells in; others fall back to the
// ISO code.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"RUB": "₽",
	"CAD": "CA$",
	"AUD": "A$",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
	"DKK": "kr.",
	"SEK": "kr",
	"NOK": "kr",
	"CHF": "CHF",
	"PLN": "zł",
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value. English is the fallback.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// ParseCurrency validates an ISO 4217 code in any case.
func ParseCurrency(code string) (currency.Unit, error) {
	u, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("unknown currency %q: %w", code, err)
	}
	return u, nil
}

// CurrencyDigits returns the number of minor-unit digits for code.
func CurrencyDigits(code string) int {
	u, err := ParseCurrency(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

// FormatCurrency renders amount in the currency's conventions for the given
// language, e.g. "$50.00" or "50,00 €".
func FormatCurrency(tag language.Tag, amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	digits := CurrencyDigits(code)

	n := formatFixed(tag, amount.StringFixed(int32(digits)))

	sym, ok := symbols[code]
	if !ok {
		sym = code
	}
	if symbolFirst(tag) {
		if !ok {
			return sym + " " + n
		}
		return sym + n
	}
	return n + " " + sym
}

// formatFixed groups a plain decimal string with the language's separators.
// The digits come from the decimal itself, so large amounts stay exact.
func formatFixed(tag language.Tag, fixed string) string {
	group, point := separators(tag)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(point)
		b.WriteString(frac)
	}
	return b.String()
}

// separators reads the grouping and decimal marks off a sample number
// printed for tag.
func separators(tag language.Tag) (group, point string) {
	s := message.NewPrinter(tag).Sprint(number.Decimal(12345.6, number.Scale(1)))
	i2, i3 := strings.Index(s, "2"), strings.Index(s, "3")
	i5, i6 := strings.Index(s, "5"), strings.Index(s, "6")
	if i2 < 0 || i3 < i2 || i5 < 0 || i6 < i5 {
		return ",", "."
	}
	return s[i2+1 : i3], s[i5+1 : i6]
}

func symbolFirst(tag language.Tag) bool {
	base, _ := tag.Base()
	en, _ := language.English.Base()
	return base == en
}

// RefundedNotice is the localized success message for a refund.
func RefundedNotice(tag language.Tag, amount decimal.Decimal, code string) string {
	p := message.NewPrinter(tag, message.Catalog(messages))
	return p.Sprintf(msgRefunded, FormatCurrency(tag, amount, code))
}
