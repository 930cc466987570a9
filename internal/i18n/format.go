package i18n

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
)

// FormatAmount renders a whole-unit amount in the given currency, e.g.
// "CFA 50,000" for XOF. XOF carries no minor unit so amounts pass through
// unshifted.
func FormatAmount(amount int64, currency string) string {
	return money.New(amount, currency).Display()
}

// FormatDate renders a point in time as a long date in the display
// language, e.g. "12 janvier 2026" or "12 January 2026".
func FormatDate(t time.Time, lang Language) string {
	if !lang.Valid() {
		lang = Default
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[lang][t.Month()-1], t.Year())
}

// MonthLabel is the short chart label for a month, e.g. "fév" / "Feb".
func MonthLabel(m time.Month, lang Language) string {
	if !lang.Valid() {
		lang = Default
	}
	return shortMonths[lang][m-1]
}
