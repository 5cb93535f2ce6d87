package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

const leadActionType = "lead"

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// LeadCount extracts the value of the "lead" action, or zero when the
// insight carries no such action
func LeadCount(actions []Action) int {
	for i := range actions {
		if actions[i].ActionType != leadActionType {
			continue
		}

		value, err := strconv.Atoi(actions[i].Value)
		if err != nil {
			logrus.WithError(err).WithField("value", actions[i].Value).
				Error("Failed to parse lead action value")
			return 0
		}

		return value
	}

	return 0
}

// ParseSpend converts the Graph API's string spend to a float, logging and
// returning zero on malformed input
func ParseSpend(spend string) float64 {
	if spend == "" {
		return 0
	}

	value, err := strconv.ParseFloat(spend, 64)
	if err != nil {
		logrus.WithError(err).WithField("spend", spend).
			Error("Failed to parse spend value")
		return 0
	}

	return value
}

type AdInsight struct {
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

func (i *AdInsight) Leads() int {
	return LeadCount(i.Actions)
}

func (i *AdInsight) SpendValue() float64 {
	return ParseSpend(i.Spend)
}
