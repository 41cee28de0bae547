package geckoterminal

import "fmt"

// Documented API limits. Exceeding them is likely to fail server-side,
// but the guards below are advisory only.
const (
	maxPage      = 10
	maxAddresses = 30
)

// checkPage warns when the requested page exceeds the documented maximum.
// The request proceeds unmodified: the out-of-range value is still sent
// for the remote service to judge.
func (c *Client) checkPage(page int) {
	if page > maxPage {
		c.logger.Warn(fmt.Sprintf("maximum %d pages allowed, %d provided", maxPage, page))
	}
}

// checkAddresses warns when an address list exceeds the documented
// maximum. The full list is still joined into the request path in the
// caller-supplied order.
func (c *Client) checkAddresses(addresses []string) {
	if len(addresses) > maxAddresses {
		c.logger.Warn(fmt.Sprintf("maximum %d addresses allowed, %d provided", maxAddresses, len(addresses)))
	}
}
