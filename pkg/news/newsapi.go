package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const lookbackDays = 7

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

// Headlines searches articles published in the last seven days, newest
// first. The article objects are passed through undecoded.
func (c *NewsAPIClient) Headlines(query string, count int) (*Headlines, error) {
	from := time.Now().AddDate(0, 0, -lookbackDays).Format("2006-01-02")

	reqURL := fmt.Sprintf(
		"https://newsapi.org/v2/everything?q=%s&from=%s&sortBy=publishedAt&pageSize=%d&apiKey=%s",
		url.QueryEscape(query), from, count, c.apiKey,
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", raw.Code, raw.Message)
	}

	if raw.Articles == nil {
		raw.Articles = []json.RawMessage{}
	}

	return &Headlines{
		Status:       raw.Status,
		TotalResults: raw.TotalResults,
		Articles:     raw.Articles,
	}, nil
}

type newsAPIResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []json.RawMessage `json:"articles"`
	Code         string            `json:"code"`
	Message      string            `json:"message"`
}
