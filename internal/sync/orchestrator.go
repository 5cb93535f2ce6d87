package sync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
	"github.com/prakanlife/meta-ads-sync/pkg/utils"
)

// ErrMissingLongLivedToken aborts the whole run: without the authoritative
// stored credential there is no fallback token source
var ErrMissingLongLivedToken = errors.New("no long-lived facebook credential in store")

// Orchestrator drives one batch run: best-effort token exchange, token
// lookup, then a day-by-day loop over the lookback window invoking both
// fetchers with per-day failure isolation and a fixed pause between days.
type Orchestrator struct {
	cfg             *config.Config
	credentialRepo  repository.CredentialRepository
	exchanger       Exchanger
	adFetcher       Fetcher
	audienceFetcher Fetcher

	now   func() time.Time
	sleep func(time.Duration)
}

func NewOrchestrator(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
	exchanger Exchanger,
	adFetcher Fetcher,
	audienceFetcher Fetcher,
) *Orchestrator {
	return &Orchestrator{
		cfg:             cfg,
		credentialRepo:  credentialRepo,
		exchanger:       exchanger,
		adFetcher:       adFetcher,
		audienceFetcher: audienceFetcher,
		now:             time.Now,
		sleep:           time.Sleep,
	}
}

// Run executes the full lookback window. A failed day is logged and the
// loop proceeds; only a missing or unreadable long-lived credential is
// fatal. The window includes today on purpose: same-day numbers are still
// settling upstream and are corrected by the next overlapping run.
func (o *Orchestrator) Run(ctx context.Context) (*RunReport, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	if err := o.exchanger.Exchange(); err != nil {
		logger.WithError(err).Warn("Token exchange failed, continuing with stored credential")
	}

	credential, err := o.credentialRepo.GetByProviderAndType(domain.ProviderFacebook, domain.TokenTypeLongLived)
	if err != nil {
		return nil, errors.Wrap(err, "looking up long-lived credential")
	}
	if credential == nil {
		return nil, ErrMissingLongLivedToken
	}
	token := credential.AccessToken

	report := &RunReport{
		RunID:     runID,
		StartedAt: o.now(),
		Days:      o.cfg.Sync.LookbackDays,
	}

	delay := time.Duration(o.cfg.Sync.RequestDelaySeconds) * time.Second

	logger.WithFields(log.Fields{
		"lookback_days": o.cfg.Sync.LookbackDays,
		"delay":         delay.String(),
	}).Info("Starting sync run")

	for i := 0; i < o.cfg.Sync.LookbackDays; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		targetDate := o.now().AddDate(0, 0, -i)
		o.runDay(logger, token, domain.SingleDay(targetDate), report)

		o.sleep(delay)
	}

	report.CompletedAt = o.now()

	logger.WithFields(log.Fields{
		"days":         report.Days,
		"failed_days":  len(report.FailedDays),
		"partial_days": len(report.PartialDays),
		"duration":     report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("Sync run completed")

	return report, nil
}

// runDay invokes the ad fetcher and then the audience fetcher for one day.
// An ad-fetch failure skips the audience fetch for that day, matching the
// per-day failure scope; either way the next day still runs.
func (o *Orchestrator) runDay(logger log.Logger, token string, day domain.DateRange, report *RunReport) {
	date := day.SinceString()

	adReport, err := o.adFetcher.Fetch(token, day)
	if err != nil {
		logger.WithError(err).WithField("date", date).Error("Ad insights sync failed for day")
		report.FailedDays = append(report.FailedDays, date)
		return
	}

	audienceReport, err := o.audienceFetcher.Fetch(token, day)
	if err != nil {
		logger.WithError(err).WithField("date", date).Error("Audience insights sync failed for day")
		report.FailedDays = append(report.FailedDays, date)
		return
	}

	if adReport.Partial() || audienceReport.Partial() {
		report.PartialDays = append(report.PartialDays, date)
	}

	logger.WithFields(log.Fields{
		"date":          date,
		"ad_rows":       adReport.AdRows,
		"product_rows":  adReport.ProductRows,
		"audience_rows": audienceReport.AudienceRows,
	}).Info("Day synced")
}
