package sync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prakanlife/meta-ads-sync/infrastructure/repository/mocks"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

type stubExchanger struct {
	err   error
	calls int
}

func (s *stubExchanger) Exchange() error {
	s.calls++
	return s.err
}

type stubFetcher struct {
	fetch func(token string, dateRange domain.DateRange) (*FetchReport, error)
	dates []string
}

func (s *stubFetcher) Fetch(token string, dateRange domain.DateRange) (*FetchReport, error) {
	s.dates = append(s.dates, dateRange.SinceString())
	if s.fetch != nil {
		return s.fetch(token, dateRange)
	}
	return &FetchReport{}, nil
}

func longLivedCredential() *domain.Credential {
	return &domain.Credential{
		ID:          1,
		Provider:    domain.ProviderFacebook,
		TokenType:   domain.TokenTypeLongLived,
		AccessToken: "long-lived-token",
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 14, 2, 0, 0, 0, time.UTC)
}

func newTestOrchestrator(
	credentialRepo *mocks.MockCredentialRepository,
	exchanger Exchanger,
	adFetcher Fetcher,
	audienceFetcher Fetcher,
) *Orchestrator {
	return &Orchestrator{
		cfg:             testConfig("123"),
		credentialRepo:  credentialRepo,
		exchanger:       exchanger,
		adFetcher:       adFetcher,
		audienceFetcher: audienceFetcher,
		now:             fixedNow,
		sleep:           func(time.Duration) {},
	}
}

func TestOrchestrator_CoversLookbackWindowIncludingToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	exchanger := &stubExchanger{}
	adFetcher := &stubFetcher{}
	audienceFetcher := &stubFetcher{}

	orchestrator := newTestOrchestrator(mockCredRepo, exchanger, adFetcher, audienceFetcher)

	report, err := orchestrator.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, exchanger.calls)
	assert.Equal(t, 14, report.Days)
	assert.Empty(t, report.FailedDays)
	assert.Empty(t, report.PartialDays)

	// today first, then one day back per iteration
	require.Len(t, adFetcher.dates, 14)
	assert.Equal(t, "2024-06-14", adFetcher.dates[0])
	assert.Equal(t, "2024-06-01", adFetcher.dates[13])
	assert.Equal(t, adFetcher.dates, audienceFetcher.dates)
}

func TestOrchestrator_MissingLongLivedTokenIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(nil, nil)

	adFetcher := &stubFetcher{}
	audienceFetcher := &stubFetcher{}

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, adFetcher, audienceFetcher)

	report, err := orchestrator.Run(context.Background())
	require.ErrorIs(t, err, ErrMissingLongLivedToken)
	assert.Nil(t, report)
	assert.Empty(t, adFetcher.dates)
	assert.Empty(t, audienceFetcher.dates)
}

func TestOrchestrator_CredentialLookupErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(nil, fmt.Errorf("connection refused"))

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, &stubFetcher{}, &stubFetcher{})

	report, err := orchestrator.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "looking up long-lived credential")
	assert.Nil(t, report)
}

func TestOrchestrator_ExchangeFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	exchanger := &stubExchanger{err: fmt.Errorf("graph API error, status 400")}
	adFetcher := &stubFetcher{}

	orchestrator := newTestOrchestrator(mockCredRepo, exchanger, adFetcher, &stubFetcher{})

	report, err := orchestrator.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, report.Days)
	assert.Len(t, adFetcher.dates, 14)
}

func TestOrchestrator_DayFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	adFetcher := &stubFetcher{
		fetch: func(token string, dateRange domain.DateRange) (*FetchReport, error) {
			if dateRange.SinceString() == "2024-06-10" {
				return nil, fmt.Errorf("graph API error, status 500")
			}
			return &FetchReport{AdRows: 1}, nil
		},
	}
	audienceFetcher := &stubFetcher{}

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, adFetcher, audienceFetcher)

	report, err := orchestrator.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-10"}, report.FailedDays)
	// the failed day never reaches the audience fetcher, the other 13 do
	assert.Len(t, adFetcher.dates, 14)
	assert.Len(t, audienceFetcher.dates, 13)
	assert.NotContains(t, audienceFetcher.dates, "2024-06-10")
}

func TestOrchestrator_AudienceFailureMarksDayFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	audienceFetcher := &stubFetcher{
		fetch: func(token string, dateRange domain.DateRange) (*FetchReport, error) {
			if dateRange.SinceString() == "2024-06-12" {
				return nil, fmt.Errorf("graph API error, status 500")
			}
			return &FetchReport{}, nil
		},
	}

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, &stubFetcher{}, audienceFetcher)

	report, err := orchestrator.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-12"}, report.FailedDays)
}

func TestOrchestrator_PartialFetchMarksDayPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	adFetcher := &stubFetcher{
		fetch: func(token string, dateRange domain.DateRange) (*FetchReport, error) {
			if dateRange.SinceString() == "2024-06-13" {
				return &FetchReport{AdRows: 1, SkippedAccounts: []string{"999"}}, nil
			}
			return &FetchReport{AdRows: 1}, nil
		},
	}

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, adFetcher, &stubFetcher{})

	report, err := orchestrator.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.FailedDays)
	assert.Equal(t, []string{"2024-06-13"}, report.PartialDays)
}

func TestOrchestrator_CancelledContextStopsTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCredRepo := mocks.NewMockCredentialRepository(ctrl)
	mockCredRepo.EXPECT().
		GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived).
		Return(longLivedCredential(), nil)

	ctx, cancel := context.WithCancel(context.Background())

	adFetcher := &stubFetcher{
		fetch: func(token string, dateRange domain.DateRange) (*FetchReport, error) {
			if dateRange.SinceString() == "2024-06-12" {
				cancel()
			}
			return &FetchReport{}, nil
		},
	}

	orchestrator := newTestOrchestrator(mockCredRepo, &stubExchanger{}, adFetcher, &stubFetcher{})

	report, err := orchestrator.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Len(t, adFetcher.dates, 3)
}
