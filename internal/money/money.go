package money

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// USDToINRRate es fijo; no hay actualización en línea de la cotización.
const USDToINRRate = 83.15

type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
)

// ParseCurrency acepta "inr"/"usd" en cualquier capitalización; cualquier otra cosa es INR.
func ParseCurrency(s string) Currency {
	if strings.EqualFold(strings.TrimSpace(s), string(USD)) {
		return USD
	}
	return INR
}

func ConvertToINR(usd float64) float64 {
	return math.Round(usd*USDToINRRate*100) / 100
}

var indian = language.MustParse("en-IN")

// FormatINR usa la agrupación india (12,34,567) y no muestra decimales.
func FormatINR(amount float64) string {
	n := int64(math.Round(math.Abs(amount)))
	s := message.NewPrinter(indian).Sprintf("%d", n)
	if amount < 0 && n != 0 {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatUSD usa agrupación de a tres y dos decimales.
func FormatUSD(amount float64) string {
	abs := math.Abs(amount)
	s := humanize.FormatFloat("#,###.##", abs)
	if amount < 0 && math.Round(abs*100) != 0 {
		return "-$" + s
	}
	return "$" + s
}

// Formatter formatea precios expresados en USD en la moneda elegida.
type Formatter struct {
	Currency Currency
}

func (f Formatter) Price(usd float64) string {
	if f.Currency == USD {
		return FormatUSD(usd)
	}
	return FormatINR(ConvertToINR(usd))
}
