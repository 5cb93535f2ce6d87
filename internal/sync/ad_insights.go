package sync

import (
	metadomain "github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/domain"
	"github.com/prakanlife/meta-ads-sync/infrastructure/integrator/meta/metaclient"
	"github.com/prakanlife/meta-ads-sync/infrastructure/repository"
	"github.com/prakanlife/meta-ads-sync/internal/config"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
	"github.com/prakanlife/meta-ads-sync/internal/product"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
	"github.com/prakanlife/meta-ads-sync/pkg/utils"
)

// Fetcher pulls one date range from the Graph API and persists it
type Fetcher interface {
	Fetch(token string, dateRange domain.DateRange) (*FetchReport, error)
}

// ClientFactory builds a Graph client for a resolved access token
type ClientFactory func(token string) metaclient.Client

// AdInsightsFetcher fans out across the configured ad accounts, pulls
// ad-level insights, classifies them by product and persists both the ad
// rows and the per-product-per-day aggregates
type AdInsightsFetcher struct {
	cfg             *config.Config
	newClient       ClientFactory
	adPerfRepo      repository.AdPerformanceRepository
	productPerfRepo repository.ProductPerformanceRepository
}

func NewAdInsightsFetcher(
	cfg *config.Config,
	newClient ClientFactory,
	adPerfRepo repository.AdPerformanceRepository,
	productPerfRepo repository.ProductPerformanceRepository,
) *AdInsightsFetcher {
	return &AdInsightsFetcher{
		cfg:             cfg,
		newClient:       newClient,
		adPerfRepo:      adPerfRepo,
		productPerfRepo: productPerfRepo,
	}
}

func (f *AdInsightsFetcher) Fetch(token string, dateRange domain.DateRange) (*FetchReport, error) {
	report := &FetchReport{}

	token = resolveToken(token, f.cfg)
	if token == "" {
		log.L.Error("No access token available for ad insights fetch, skipping")
		return report, nil
	}

	client := f.newClient(token)
	agg := newAdAggregation(dateRange)

	// Accounts are processed strictly in the configured order, one at a
	// time, to stay under the Graph API rate limits
	for _, accountID := range f.cfg.Meta.AccountIDs() {
		if err := f.fetchAccount(client, accountID, dateRange, agg); err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"account_id": accountID,
				"date":       dateRange.SinceString(),
			}).Error("Ad insights fetch failed for account, skipping")
			report.SkippedAccounts = append(report.SkippedAccounts, accountID)
		}
	}

	productRows := agg.productRows()
	if len(productRows) > 0 {
		if err := f.productPerfRepo.UpsertBatch(productRows); err != nil {
			log.L.WithError(err).WithField("date", dateRange.SinceString()).
				Error("Failed to upsert product performance rows")
			report.StoreErrors = append(report.StoreErrors, err)
		} else {
			report.ProductRows = len(productRows)
		}
	}

	adRows := agg.adRows()
	if len(adRows) > 0 {
		if err := f.adPerfRepo.UpsertBatch(adRows); err != nil {
			log.L.WithError(err).WithField("date", dateRange.SinceString()).
				Error("Failed to upsert ad performance rows")
			report.StoreErrors = append(report.StoreErrors, err)
		} else {
			report.AdRows = len(adRows)
		}
	}

	log.L.WithFields(log.Fields{
		"date":             dateRange.SinceString(),
		"ad_rows":          report.AdRows,
		"product_rows":     report.ProductRows,
		"skipped_accounts": len(report.SkippedAccounts),
	}).Info("Ad insights fetch finished")

	return report, nil
}

func (f *AdInsightsFetcher) fetchAccount(
	client metaclient.Client,
	accountID string,
	dateRange domain.DateRange,
	agg *adAggregation,
) error {
	ads, err := client.GetAdsByAccountID(accountID)
	if err != nil {
		return err
	}

	for i := range ads {
		ad := ads[i]

		insights, err := client.GetAdInsightsByID(ad.ID, dateRange)
		if err != nil {
			return err
		}

		code := product.Classify(ad.Campaign.Name)
		for j := range insights {
			agg.add(ad, insights[j], code)
		}
	}

	return nil
}

// resolveToken falls back to the configured token when none was passed in
func resolveToken(token string, cfg *config.Config) string {
	if token != "" {
		return token
	}
	return cfg.Meta.AccessToken
}

// adAggregation merges raw insight entries into ad-level rows and reduces
// them into the per-product-per-day totals, keeping insertion order stable
type adAggregation struct {
	dateRange    domain.DateRange
	ads          map[domain.AdKey]*domain.AdPerformance
	adOrder      []domain.AdKey
	products     map[domain.ProductDayKey]*domain.ProductPerformance
	productOrder []domain.ProductDayKey
}

func newAdAggregation(dateRange domain.DateRange) *adAggregation {
	return &adAggregation{
		dateRange: dateRange,
		ads:       make(map[domain.AdKey]*domain.AdPerformance),
		products:  make(map[domain.ProductDayKey]*domain.ProductPerformance),
	}
}

func (a *adAggregation) add(ad metadomain.Ad, insight metadomain.AdInsight, productCode string) {
	date := insight.DateStart
	if _, err := utils.ParseDate(date); err != nil || date == "" {
		date = a.dateRange.SinceString()
	}

	spend := insight.SpendValue()
	leads := insight.Leads()

	adKey := domain.AdKey{Date: date, AdID: ad.ID, ProductCode: productCode}
	adRow, ok := a.ads[adKey]
	if !ok {
		adRow = &domain.AdPerformance{
			Date:        date,
			AdID:        ad.ID,
			ProductCode: productCode,
			AdName:      ad.Name,
			Status:      ad.Status,
			ImageURL:    ad.Creative.PreferredImageURL(),
		}
		a.ads[adKey] = adRow
		a.adOrder = append(a.adOrder, adKey)
	}
	adRow.Spend += spend
	adRow.MetaLeads += leads

	productKey := domain.ProductDayKey{Date: date, ProductCode: productCode}
	productRow, ok := a.products[productKey]
	if !ok {
		productRow = &domain.ProductPerformance{
			Date:        date,
			ProductCode: productCode,
		}
		a.products[productKey] = productRow
		a.productOrder = append(a.productOrder, productKey)
	}
	productRow.Spend += spend
	productRow.MetaLeads += leads
}

func (a *adAggregation) adRows() []*domain.AdPerformance {
	rows := make([]*domain.AdPerformance, 0, len(a.adOrder))
	for _, key := range a.adOrder {
		row := a.ads[key]
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)
		rows = append(rows, row)
	}
	return rows
}

func (a *adAggregation) productRows() []*domain.ProductPerformance {
	rows := make([]*domain.ProductPerformance, 0, len(a.productOrder))
	for _, key := range a.productOrder {
		row := a.products[key]
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)
		rows = append(rows, row)
	}
	return rows
}
