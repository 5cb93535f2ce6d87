package sync

import (
	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
	"github.com/prakanlife/meta-ads-sync/internal/product"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
	"github.com/prakanlife/meta-ads-sync/pkg/utils"
)

// AudienceInsightsFetcher pulls campaign-level insights broken down by age
// and gender, merges buckets that collapse to the same (date, product, age,
// gender) key and persists the aggregates
type AudienceInsightsFetcher struct {
	cfg          *config.Config
	newClient    ClientFactory
	audienceRepo repository.AudienceBreakdownRepository
}

func NewAudienceInsightsFetcher(
	cfg *config.Config,
	newClient ClientFactory,
	audienceRepo repository.AudienceBreakdownRepository,
) *AudienceInsightsFetcher {
	return &AudienceInsightsFetcher{
		cfg:          cfg,
		newClient:    newClient,
		audienceRepo: audienceRepo,
	}
}

func (f *AudienceInsightsFetcher) Fetch(token string, dateRange domain.DateRange) (*FetchReport, error) {
	report := &FetchReport{}

	token = resolveToken(token, f.cfg)
	if token == "" {
		log.L.Error("No access token available for audience insights fetch, skipping")
		return report, nil
	}

	client := f.newClient(token)
	agg := newAudienceAggregation(dateRange)

	for _, accountID := range f.cfg.Meta.AccountIDs() {
		insights, err := client.GetAudienceInsightsByAccountID(accountID, dateRange)
		if err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"account_id": accountID,
				"date":       dateRange.SinceString(),
			}).Error("Audience insights fetch failed for account, skipping")
			report.SkippedAccounts = append(report.SkippedAccounts, accountID)
			continue
		}

		for i := range insights {
			agg.add(insights[i])
		}
	}

	rows := agg.rows()
	if len(rows) == 0 {
		log.L.WithField("date", dateRange.SinceString()).
			Info("No audience insight data for date")
		return report, nil
	}

	if err := f.audienceRepo.UpsertBatch(rows); err != nil {
		log.L.WithError(err).WithField("date", dateRange.SinceString()).
			Error("Failed to upsert audience breakdown rows")
		report.StoreErrors = append(report.StoreErrors, err)
	} else {
		report.AudienceRows = len(rows)
	}

	log.L.WithFields(log.Fields{
		"date":             dateRange.SinceString(),
		"audience_rows":    report.AudienceRows,
		"skipped_accounts": len(report.SkippedAccounts),
	}).Info("Audience insights fetch finished")

	return report, nil
}

// audienceAggregation merges insight rows landing on the same demographic
// bucket; the Graph API can return several campaigns per bucket and they
// must collapse into one row by addition
type audienceAggregation struct {
	dateRange domain.DateRange
	buckets   map[domain.AudienceKey]*domain.AudienceBreakdown
	order     []domain.AudienceKey
}

func newAudienceAggregation(dateRange domain.DateRange) *audienceAggregation {
	return &audienceAggregation{
		dateRange: dateRange,
		buckets:   make(map[domain.AudienceKey]*domain.AudienceBreakdown),
	}
}

func (a *audienceAggregation) add(insight metadomain.AudienceInsight) {
	date := insight.DateStart
	if _, err := utils.ParseDate(date); err != nil || date == "" {
		date = a.dateRange.SinceString()
	}

	key := domain.AudienceKey{
		Date:        date,
		ProductCode: product.Classify(insight.CampaignName),
		AgeRange:    insight.Age,
		Gender:      insight.Gender,
	}

	bucket, ok := a.buckets[key]
	if !ok {
		bucket = &domain.AudienceBreakdown{
			Date:        key.Date,
			ProductCode: key.ProductCode,
			AgeRange:    key.AgeRange,
			Gender:      key.Gender,
		}
		a.buckets[key] = bucket
		a.order = append(a.order, key)
	}

	bucket.Spend += insight.SpendValue()
	bucket.MetaLeads += insight.Leads()
}

func (a *audienceAggregation) rows() []*domain.AudienceBreakdown {
	rows := make([]*domain.AudienceBreakdown, 0, len(a.order))
	for _, key := range a.order {
		row := a.buckets[key]
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)
		rows = append(rows, row)
	}
	return rows
}
