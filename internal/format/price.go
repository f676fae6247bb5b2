package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySuffix = "원"

var printer = message.NewPrinter(language.Korean)

// Price renders a listing price with Korean digit grouping, e.g. 12,000원.
func Price(price int64) string {
	return printer.Sprintf("%d", price) + currencySuffix
}
