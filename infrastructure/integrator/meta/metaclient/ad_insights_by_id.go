package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

const adInsightFields = "spend,impressions,clicks,actions,date_start"

type responseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsightsByID fetches the ad's insights for the date range. A
// single-day range normally yields exactly one row; an empty result is not
// an error.
func (c *GraphClient) GetAdInsightsByID(adID string, dateRange domain.DateRange) ([]metadomain.AdInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, adID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", dateRange.SinceString(), dateRange.UntilString())

	params := url.Values{}
	params.Add("fields", adInsightFields)
	params.Add("time_range", timeRange)
	params.Add("access_token", c.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	body, err := c.get(requestURL)
	if err != nil {
		return nil, err
	}

	var response responseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding ad insights: %w", err)
	}

	return response.Data, nil
}
