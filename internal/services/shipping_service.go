package services

import (
	"strings"
)

// ShippingQuote is a carrier rate for one destination.
type ShippingQuote struct {
	Carrier   string `json:"carrier"`
	CostCents int64  `json:"cost_cents"`
	Days      int    `json:"days"`
}

// ShippingService quotes delivery rates. Rates come from a fixed table
// keyed on the first digit of the destination postal code (the CEP region);
// integration with a real carrier API is a separate deployment concern.
type ShippingService struct{}

func NewShippingService() *ShippingService {
	return &ShippingService{}
}

var regionRates = map[byte]ShippingQuote{
	'0': {Carrier: "Correios PAC", CostCents: 1890, Days: 4}, // Grande São Paulo
	'1': {Carrier: "Correios PAC", CostCents: 1890, Days: 5}, // interior SP
	'2': {Carrier: "Correios PAC", CostCents: 2290, Days: 6}, // RJ/ES
	'3': {Carrier: "Correios PAC", CostCents: 2290, Days: 6}, // MG
	'4': {Carrier: "Correios PAC", CostCents: 2590, Days: 7}, // BA/SE
	'5': {Carrier: "Correios PAC", CostCents: 2590, Days: 8}, // NE
	'6': {Carrier: "Correios PAC", CostCents: 2990, Days: 9}, // NE/N
	'7': {Carrier: "Correios PAC", CostCents: 2690, Days: 7}, // DF/GO/TO
	'8': {Carrier: "Correios PAC", CostCents: 2190, Days: 5}, // PR/SC
	'9': {Carrier: "Correios PAC", CostCents: 2390, Days: 6}, // RS
}

var defaultRate = ShippingQuote{Carrier: "Correios PAC", CostCents: 2990, Days: 10}

// Quote returns the rate for a destination postal code. Unknown or
// malformed codes fall back to the most expensive rate.
func (s *ShippingService) Quote(postalCode string) ShippingQuote {
	code := strings.TrimSpace(strings.ReplaceAll(postalCode, "-", ""))
	if len(code) == 0 {
		return defaultRate
	}
	if rate, ok := regionRates[code[0]]; ok {
		return rate
	}
	return defaultRate
}
