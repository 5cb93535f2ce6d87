package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
)

const adFields = "id,name,status,campaign{name}," +
	"creative{image_url,thumbnail_url,object_story_spec{video_data{image_url},link_data{picture,child_attachments{picture}}}}"

type responseAdList struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAdsByAccountID lists all ads of the account with their campaign and
// creative fields, following paging cursors until exhausted
func (c *GraphClient) GetAdsByAccountID(accountID string) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", pageSize)
	params.Add("access_token", c.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	var ads []metadomain.Ad
	for requestURL != "" {
		body, err := c.get(requestURL)
		if err != nil {
			return nil, err
		}

		var response responseAdList
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("decoding ad list: %w", err)
		}

		ads = append(ads, response.Data...)

		// paging.next already carries the access token and cursor
		requestURL = response.Paging.Next
	}

	return ads, nil
}
