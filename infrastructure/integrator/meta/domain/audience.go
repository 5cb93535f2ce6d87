package metadomain

// AudienceInsight is one campaign-level insight row broken down by age and
// gender
type AudienceInsight struct {
	CampaignName string   `json:"campaign_name"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions"`
	DateStart    string   `json:"date_start"`
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
}

func (i *AudienceInsight) Leads() int {
	return LeadCount(i.Actions)
}

func (i *AudienceInsight) SpendValue() float64 {
	return ParseSpend(i.Spend)
}
