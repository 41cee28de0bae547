package geckoterminal

import "strings"

// API endpoint path templates. Placeholders are substituted with
// fmt.Sprintf in the endpoint methods.
const (
	networksEndpoint             = "/networks"
	networkDexesEndpoint         = "/networks/%s/dexes"
	trendingPoolsEndpoint        = "/networks/trending_pools"
	networkTrendingPoolsEndpoint = "/networks/%s/trending_pools"
	networkPoolEndpoint          = "/networks/%s/pools/%s"
	networkPoolsMultiEndpoint    = "/networks/%s/pools/multi/%s"
	networkPoolsEndpoint         = "/networks/%s/pools"
	networkDexPoolsEndpoint      = "/networks/%s/dexes/%s/pools"
	networkNewPoolsEndpoint      = "/networks/%s/new_pools"
	newPoolsEndpoint             = "/networks/new_pools"
	searchPoolsEndpoint          = "/search/pools"
	tokenPriceEndpoint           = "/simple/networks/%s/token_price/%s"
	networkTokenPoolsEndpoint    = "/networks/%s/tokens/%s/pools"
	networkTokenEndpoint         = "/networks/%s/tokens/%s"
	networkTokensMultiEndpoint   = "/networks/%s/tokens/multi/%s"
	networkTokenInfoEndpoint     = "/networks/%s/tokens/%s/info"
	recentTokenInfoEndpoint      = "/tokens/info_recently_updated"
	poolOHLCVEndpoint            = "/networks/%s/pools/%s/ohlcv/%s"
	poolTradesEndpoint           = "/networks/%s/pools/%s/trades"
)

// addressSeparator joins multiple addresses into one path segment. The
// literal "%" is a contract with the remote API, not URL encoding.
const addressSeparator = "%"

// defaultIncludes is the single source of truth for the related-resource
// set requested when a caller omits WithInclude. Endpoints absent from the
// table take no include parameter by default.
var defaultIncludes = map[string][]string{
	trendingPoolsEndpoint:        {"base_token", "quote_token", "dex", "network"},
	networkTrendingPoolsEndpoint: {"base_token", "quote_token", "dex"},
	networkPoolEndpoint:          {"base_token", "quote_token", "dex"},
	networkPoolsMultiEndpoint:    {"base_token", "quote_token", "dex"},
	networkPoolsEndpoint:         {"base_token", "quote_token", "dex"},
	networkDexPoolsEndpoint:      {"base_token", "quote_token", "dex"},
	networkNewPoolsEndpoint:      {"base_token", "quote_token", "dex"},
	newPoolsEndpoint:             {"base_token", "quote_token", "dex", "network"},
	searchPoolsEndpoint:          {"base_token", "quote_token", "dex"},
	networkTokenPoolsEndpoint:    {"base_token", "quote_token", "dex"},
	networkTokenEndpoint:         {"top_pools"},
	networkTokensMultiEndpoint:   {"top_pools"},
	recentTokenInfoEndpoint:      {"network"},
}

// joinAddresses builds the multi-address path segment, preserving the
// caller-supplied order without deduplication.
func joinAddresses(addresses []string) string {
	return strings.Join(addresses, addressSeparator)
}
