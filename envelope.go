package geckoterminal

import (
	"encoding/json"
	"fmt"
)

// Envelope is the JSON:API response body returned by every endpoint.
// Sub-documents are kept as raw JSON so the body survives a decode/encode
// round trip unmodified; the client does not interpret resource schemas.
//
// Collection endpoints carry an array under Data, single-resource
// endpoints a single object. Included holds related resources requested
// through the include parameter.
type Envelope struct {
	Data     json.RawMessage `json:"data"`
	Included json.RawMessage `json:"included,omitempty"`
	Meta     json.RawMessage `json:"meta,omitempty"`
	Links    json.RawMessage `json:"links,omitempty"`
}

// Resource is a single JSON:API resource object. Attributes and
// Relationships stay raw for the caller to decode into its own types.
type Resource struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Attributes    json.RawMessage `json:"attributes"`
	Relationships json.RawMessage `json:"relationships,omitempty"`
}

// Resource decodes Data as a single resource object. Use with
// single-resource endpoints such as NetworkPoolAddress or NetworkToken.
func (e *Envelope) Resource() (Resource, error) {
	var r Resource
	if err := json.Unmarshal(e.Data, &r); err != nil {
		return Resource{}, fmt.Errorf("decode resource: %w", err)
	}
	return r, nil
}

// Resources decodes Data as a resource collection. Use with collection
// endpoints such as Networks or NetworkPools.
func (e *Envelope) Resources() ([]Resource, error) {
	var rs []Resource
	if err := json.Unmarshal(e.Data, &rs); err != nil {
		return nil, fmt.Errorf("decode resource collection: %w", err)
	}
	return rs, nil
}

// IncludedResources decodes the Included document. Returns nil when the
// response carried no included resources.
func (e *Envelope) IncludedResources() ([]Resource, error) {
	if len(e.Included) == 0 {
		return nil, nil
	}
	var rs []Resource
	if err := json.Unmarshal(e.Included, &rs); err != nil {
		return nil, fmt.Errorf("decode included resources: %w", err)
	}
	return rs, nil
}
