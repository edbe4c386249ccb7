package speech

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

const outputFormat = "audio-16khz-128kbitrate-mono-mp3"

type AzureClient struct {
	key        string
	region     string
	httpClient *http.Client
}

func NewAzureClient(key, region string) *AzureClient {
	return &AzureClient{
		key:        key,
		region:     region,
		httpClient: &http.Client{},
	}
}

// Synthesize posts SSML to the regional Azure TTS endpoint and returns
// the raw MP3 bytes.
func (c *AzureClient) Synthesize(ssml string) ([]byte, error) {
	endpoint := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("azure tts request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	req.Header.Set("User-Agent", "hindi-news-listener")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure tts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("azure tts read: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure tts status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
