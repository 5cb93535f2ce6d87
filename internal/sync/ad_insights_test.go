package sync

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository/mocks"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

func testConfig(accountIDs string) *config.Config {
	return &config.Config{
		Meta: config.Meta{AdAccountIDs: accountIDs},
		Sync: config.Sync{LookbackDays: 14, RequestDelaySeconds: 0},
	}
}

func singleDay(date string) domain.DateRange {
	parsed, _ := time.Parse(time.DateOnly, date)
	return domain.SingleDay(parsed)
}

func TestAdInsightsFetcher_SingleAdSingleLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockAdRepo := mocks.NewMockAdPerformanceRepository(ctrl)
	mockProductRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	day := singleDay("2024-06-01")

	mockClient.EXPECT().GetAdsByAccountID("123").Return([]metadomain.Ad{
		{
			ID:       "ad-1",
			Name:     "Sabai Jai Lead Form",
			Status:   "ACTIVE",
			Campaign: metadomain.Campaign{ID: "c-1", Name: "LEADGENERATION_TL+HEALTH-SABAI-JAI_v1"},
		},
	}, nil)

	mockClient.EXPECT().GetAdInsightsByID("ad-1", day).Return([]metadomain.AdInsight{
		{
			Spend:     "1000",
			DateStart: "2024-06-01",
			Actions:   []metadomain.Action{{ActionType: "lead", Value: "1"}},
		},
	}, nil)

	mockProductRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(rows []*domain.ProductPerformance) error {
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-06-01", rows[0].Date)
		assert.Equal(t, "HEALTH-SABAI-JAI", rows[0].ProductCode)
		assert.Equal(t, 1000.0, rows[0].Spend)
		assert.Equal(t, 1, rows[0].MetaLeads)
		return nil
	})

	mockAdRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(rows []*domain.AdPerformance) error {
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-06-01", rows[0].Date)
		assert.Equal(t, "ad-1", rows[0].AdID)
		assert.Equal(t, "HEALTH-SABAI-JAI", rows[0].ProductCode)
		assert.Equal(t, 1000.0, rows[0].Spend)
		assert.Equal(t, 1, rows[0].MetaLeads)
		return nil
	})

	fetcher := NewAdInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		return mockClient
	}, mockAdRepo, mockProductRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Equal(t, 1, report.AdRows)
	assert.Equal(t, 1, report.ProductRows)
	assert.False(t, report.Partial())
}

func TestAdInsightsFetcher_ProductTotalsEqualAdSums(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockAdRepo := mocks.NewMockAdPerformanceRepository(ctrl)
	mockProductRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	day := singleDay("2024-06-02")

	mockClient.EXPECT().GetAdsByAccountID("123").Return([]metadomain.Ad{
		{ID: "ad-1", Campaign: metadomain.Campaign{Name: "LEADGEN+HEALTH-SABAI-JAI_a"}},
		{ID: "ad-2", Campaign: metadomain.Campaign{Name: "LEADGEN+HEALTH-SABAI-JAI_b"}},
		{ID: "ad-3", Campaign: metadomain.Campaign{Name: "LEADGEN+LIFE-SENIOR-BONECARE_a"}},
	}, nil)

	mockClient.EXPECT().GetAdInsightsByID("ad-1", day).Return([]metadomain.AdInsight{
		{Spend: "250.50", DateStart: "2024-06-02", Actions: []metadomain.Action{{ActionType: "lead", Value: "2"}}},
	}, nil)
	mockClient.EXPECT().GetAdInsightsByID("ad-2", day).Return([]metadomain.AdInsight{
		{Spend: "149.50", DateStart: "2024-06-02", Actions: []metadomain.Action{{ActionType: "lead", Value: "3"}}},
	}, nil)
	mockClient.EXPECT().GetAdInsightsByID("ad-3", day).Return([]metadomain.AdInsight{
		{Spend: "99.99", DateStart: "2024-06-02"},
	}, nil)

	var adRows []*domain.AdPerformance
	var productRows []*domain.ProductPerformance

	mockAdRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(rows []*domain.AdPerformance) error {
		adRows = rows
		return nil
	})
	mockProductRepo.EXPECT().UpsertBatch(gomock.Any()).DoAndReturn(func(rows []*domain.ProductPerformance) error {
		productRows = rows
		return nil
	})

	fetcher := NewAdInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		return mockClient
	}, mockAdRepo, mockProductRepo)

	_, err := fetcher.Fetch("token", day)
	require.NoError(t, err)

	require.Len(t, adRows, 3)
	require.Len(t, productRows, 2)

	// product totals must equal the sum of their constituent ad rows
	for _, productRow := range productRows {
		var spend float64
		var leads int
		for _, adRow := range adRows {
			if adRow.ProductCode == productRow.ProductCode && adRow.Date == productRow.Date {
				spend += adRow.Spend
				leads += adRow.MetaLeads
			}
		}
		assert.InDelta(t, spend, productRow.Spend, 1e-9, "spend mismatch for %s", productRow.ProductCode)
		assert.Equal(t, leads, productRow.MetaLeads, "lead mismatch for %s", productRow.ProductCode)
	}
}

func TestAdInsightsFetcher_AccountFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockAdRepo := mocks.NewMockAdPerformanceRepository(ctrl)
	mockProductRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	day := singleDay("2024-06-03")

	mockClient.EXPECT().GetAdsByAccountID("111").Return(nil, fmt.Errorf("graph API error, status 500"))
	mockClient.EXPECT().GetAdsByAccountID("222").Return([]metadomain.Ad{
		{ID: "ad-9", Campaign: metadomain.Campaign{Name: "LEADGEN+HEALTH-SABAI-JAI"}},
	}, nil)
	mockClient.EXPECT().GetAdInsightsByID("ad-9", day).Return([]metadomain.AdInsight{
		{Spend: "10", DateStart: "2024-06-03", Actions: []metadomain.Action{{ActionType: "lead", Value: "1"}}},
	}, nil)

	mockAdRepo.EXPECT().UpsertBatch(gomock.Any()).Return(nil)
	mockProductRepo.EXPECT().UpsertBatch(gomock.Any()).Return(nil)

	fetcher := NewAdInsightsFetcher(testConfig("111, 222"), func(string) metaclient.Client {
		return mockClient
	}, mockAdRepo, mockProductRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Equal(t, []string{"111"}, report.SkippedAccounts)
	assert.Equal(t, 1, report.AdRows)
	assert.True(t, report.Partial())
}

func TestAdInsightsFetcher_StoreErrorIsObservableButNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockAdRepo := mocks.NewMockAdPerformanceRepository(ctrl)
	mockProductRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	day := singleDay("2024-06-04")

	mockClient.EXPECT().GetAdsByAccountID("123").Return([]metadomain.Ad{
		{ID: "ad-1", Campaign: metadomain.Campaign{Name: "LEADGEN+HEALTH-SABAI-JAI"}},
	}, nil)
	mockClient.EXPECT().GetAdInsightsByID("ad-1", day).Return([]metadomain.AdInsight{
		{Spend: "5", DateStart: "2024-06-04"},
	}, nil)

	mockProductRepo.EXPECT().UpsertBatch(gomock.Any()).Return(fmt.Errorf("database error"))
	mockAdRepo.EXPECT().UpsertBatch(gomock.Any()).Return(nil)

	fetcher := NewAdInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		return mockClient
	}, mockAdRepo, mockProductRepo)

	report, err := fetcher.Fetch("token", day)
	require.NoError(t, err)
	assert.Len(t, report.StoreErrors, 1)
	assert.Equal(t, 1, report.AdRows)
	assert.Equal(t, 0, report.ProductRows)
	assert.True(t, report.Partial())
}

func TestAdInsightsFetcher_MissingTokenShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT calls: any client or repository use would fail the test
	mockAdRepo := mocks.NewMockAdPerformanceRepository(ctrl)
	mockProductRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	fetcher := NewAdInsightsFetcher(testConfig("123"), func(string) metaclient.Client {
		t.Fatal("client must not be constructed without a token")
		return nil
	}, mockAdRepo, mockProductRepo)

	report, err := fetcher.Fetch("", singleDay("2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.AdRows)
	assert.Equal(t, 0, report.ProductRows)
}
