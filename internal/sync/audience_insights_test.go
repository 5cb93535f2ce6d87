package sync

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository/mocks"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

func TestAudienceInsightsFetcher_MergesIdenticalBuckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAudienceBreakdownRepository(ctrl)

	day := singleDay("2024-06-01")

	// two campaigns classified to the same product and landing in the same
	// demographic bucket must collapse into one summed row
	mockClient.EXPECT().GetAudienceInsightsByAccountID("123", day).Return([]metadomain.AudienceInsight{
		{
			CampaignName: "LEADGEN_TL+HEALTH-SABAI-JAI_v1",
			Spend:        "100.50",
			DateStart:    "2024-06-01",
			Age:          "35-44",
			Gender:       "female",
			Actions:      []metadomain.Action{{ActionType: "lead", Value: "2"}},
		},
		{
			CampaignName: "LEADGEN_TL+HEALTH-SABAI-JAI_v2",
			Spend:        "49.50",
			DateStart:    "2024-06-01",
			Age:          "35-44",
			Gender:       "female",
			Actions:      []metadomain.Action{{ActionType: "lead", Value: "1"}},
		},
		{
			CampaignName: "LEADGEN_TL+HEALTH-SABAI-JAI_v1",
			Spend:        "20",
			DateStart:    "2024-06-01",
			Age:          "45-54",
			Gender:       "male",
		},
	}, nil)

	mockRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(rows []*domain.AudienceBreakdown) error {
		require.Len(t, rows, 2)

		merged := rows[0]
		assert.Equal(t, "2024-06-01", merged.Date)
		assert.Equal(t, "HEALTH-SABAI-JAI", merged.ProductCode)
		assert.Equal(t, "35-44", merged.AgeRange)
		assert.Equal(t, "female", merged.Gender)
		assert.InDelta(t, 150.0, merged.Spend, 1e-9)
		assert.Equal(t, 3, merged.MetaLeads)

		assert.Equal(t, "45-54", rows[1].AgeRange)
		assert.Equal(t, "male", rows[1].Gender)
		return nil
	})

	fetcher := NewAudienceInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		return mockClient
	}, mockRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Equal(t, 2, report.AudienceRows)
	assert.False(t, report.Partial())
}

func TestAudienceInsightsFetcher_NoDataSkipsUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	// no UpsertBatch expectation: an empty day must not touch the store
	mockRepo := mocks.NewMockAudienceBreakdownRepository(ctrl)

	day := singleDay("2024-06-02")
	mockClient.EXPECT().GetAudienceInsightsByAccountID("123", day).Return(nil, nil)

	fetcher := NewAudienceInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		return mockClient
	}, mockRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Equal(t, 0, report.AudienceRows)
}

func TestAudienceInsightsFetcher_AccountFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockRepo := mocks.NewMockAudienceBreakdownRepository(ctrl)

	day := singleDay("2024-06-03")

	mockClient.EXPECT().GetAudienceInsightsByAccountID("111", day).
		Return(nil, fmt.Errorf("graph API error, status 500"))
	mockClient.EXPECT().GetAudienceInsightsByAccountID("222", day).Return([]metadomain.AudienceInsight{
		{CampaignName: "LEADGEN+HAPPY", Spend: "5", DateStart: "2024-06-03", Age: "25-34", Gender: "female"},
	}, nil)

	mockRepo.EXPECT().UpsertBatch(gomock.Any()).Return(nil)

	fetcher := NewAudienceInsightsFetcher(testConfig("111,222"), func(string) metaclient.Client {
		return mockClient
	}, mockRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Equal(t, []string{"111"}, report.SkippedAccounts)
	assert.Equal(t, 1, report.AudienceRows)
}

func TestAudienceInsightsFetcher_MissingTokenShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAudienceBreakdownRepository(ctrl)

	fetcher := NewAudienceInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		t.Fatal("client must not be constructed without a token")
		return nil
	}, mockRepo)

	report, err := fetcher.Fetch("", singleDay("2024-06-04"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.AudienceRows)
}
