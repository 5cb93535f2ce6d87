package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

const pageSize = "100"

type Client interface {
	GetAdsByAccountID(accountID string) ([]metadomain.Ad, error)
	GetAdInsightsByID(adID string, dateRange domain.DateRange) ([]metadomain.AdInsight, error)
	GetAudienceInsightsByAccountID(accountID string, dateRange domain.DateRange) ([]metadomain.AudienceInsight, error)
}

type GraphClient struct {
	Cfg         *config.Config
	AccessToken string
	httpClient  *http.Client
}

// NewClient builds a Graph API client bound to one access token. The token
// is resolved once per sync run and treated as immutable for its duration.
func NewClient(cfg *config.Config, accessToken string) Client {
	return &GraphClient{
		Cfg:         cfg,
		AccessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GraphClient) get(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", redactToken(url), err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse reads the body and converts non-200 responses into typed
// Graph API errors
func (c *GraphClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		if errorResp.IsTokenExpired() {
			return nil, fmt.Errorf("access token expired or invalidated (code %d, subcode %d): %s",
				errorResp.Error.Code, errorResp.Error.ErrorSubcode, errorResp.Error.Message)
		}
		return nil, fmt.Errorf("graph API error (code %d): %s", errorResp.Error.Code, errorResp.Error.Message)
	}

	return nil, fmt.Errorf("graph API error, status %d: %s", resp.StatusCode, string(body))
}

// redactToken strips the access token from a request URL before it lands in
// an error message or log line
func redactToken(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}

	query := parsed.Query()
	if query.Get("access_token") != "" {
		query.Set("access_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}
