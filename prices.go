package geckoterminal

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TokenPrices decodes a NetworkAddressesTokenPrice response into a map of
// token address to USD price. Price text is parsed with decimal precision;
// the underlying envelope stays untouched.
func TokenPrices(envelope *Envelope) (map[string]decimal.Decimal, error) {
	resource, err := envelope.Resource()
	if err != nil {
		return nil, fmt.Errorf("decode token price resource: %w", err)
	}

	var attrs struct {
		TokenPrices map[string]string `json:"token_prices"`
	}
	if err := json.Unmarshal(resource.Attributes, &attrs); err != nil {
		return nil, fmt.Errorf("decode token price attributes: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(attrs.TokenPrices))
	for address, price := range attrs.TokenPrices {
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for token %s: %w", price, address, err)
		}
		prices[address] = d
	}
	return prices, nil
}
