package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

const audienceInsightFields = "campaign_name,spend,actions,date_start"

type responseAudienceInsights struct {
	Data   []metadomain.AudienceInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetAudienceInsightsByAccountID fetches campaign-level insights broken down
// by age and gender for the date range, following paging cursors
func (c *GraphClient) GetAudienceInsightsByAccountID(accountID string, dateRange domain.DateRange) ([]metadomain.AudienceInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", dateRange.SinceString(), dateRange.UntilString())

	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("breakdowns", "age,gender")
	params.Add("fields", audienceInsightFields)
	params.Add("time_range", timeRange)
	params.Add("limit", pageSize)
	params.Add("access_token", c.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	var insights []metadomain.AudienceInsight
	for requestURL != "" {
		body, err := c.get(requestURL)
		if err != nil {
			return nil, err
		}

		var response responseAudienceInsights
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("decoding audience insights: %w", err)
		}

		insights = append(insights, response.Data...)
		requestURL = response.Paging.Next
	}

	return insights, nil
}
