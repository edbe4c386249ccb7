package news

import "encoding/json"

// Headlines is the provider search result relayed to API clients:
// status, total hit count, and the article list untouched.
type Headlines struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []json.RawMessage `json:"articles"`
}

type NewsSource interface {
	Headlines(query string, count int) (*Headlines, error)
	Name() string
}

var _ NewsSource = (*NewsAPIClient)(nil)
