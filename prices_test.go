package geckoterminal

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenPriceBody = `{
	"data": {
		"id": "c8af6f07-8d91-4b45-b7a8-3bdc1a10d7c4",
		"type": "simple_token_price",
		"attributes": {
			"token_prices": {
				"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": "3025.1244335568",
				"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48": "0.999401"
			}
		}
	}
}`

func TestTokenPrices(t *testing.T) {
	t.Run("decodes prices with decimal precision", func(t *testing.T) {
		var envelope Envelope
		require.NoError(t, json.Unmarshal([]byte(tokenPriceBody), &envelope))

		prices, err := TokenPrices(&envelope)
		require.NoError(t, err)
		require.Len(t, prices, 2)

		weth := prices["0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"]
		assert.True(t, weth.Equal(decimal.RequireFromString("3025.1244335568")))

		usdc := prices["0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"]
		assert.True(t, usdc.Equal(decimal.RequireFromString("0.999401")))
	})

	t.Run("fails on malformed price text", func(t *testing.T) {
		var envelope Envelope
		require.NoError(t, json.Unmarshal([]byte(`{
			"data": {"id": "x", "type": "simple_token_price", "attributes": {"token_prices": {"0xAA": "not-a-number"}}}
		}`), &envelope))

		_, err := TokenPrices(&envelope)
		assert.Error(t, err)
	})

	t.Run("fails on a collection body", func(t *testing.T) {
		var envelope Envelope
		require.NoError(t, json.Unmarshal([]byte(networksBody), &envelope))

		_, err := TokenPrices(&envelope)
		assert.Error(t, err)
	})
}
