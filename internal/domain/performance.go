package domain

// AdKey identifies one ad-level performance row
type AdKey struct {
	Date        string
	AdID        string
	ProductCode string
}

// AdPerformance is one row per (date, ad_id, product_code), aggregated from
// the raw insight entries returned for that ad on that date
type AdPerformance struct {
	Date        string
	AdID        string
	ProductCode string
	AdName      string
	Status      string
	ImageURL    string
	Spend       float64
	MetaLeads   int
}

func (p *AdPerformance) Key() AdKey {
	return AdKey{Date: p.Date, AdID: p.AdID, ProductCode: p.ProductCode}
}

// ProductDayKey identifies one product-level performance row
type ProductDayKey struct {
	Date        string
	ProductCode string
}

// ProductPerformance sums the constituent ad rows for one product and day.
// For any single run the product totals equal the sum of the ad rows with
// the same date and product code.
type ProductPerformance struct {
	Date        string
	ProductCode string
	Spend       float64
	MetaLeads   int
}

func (p *ProductPerformance) Key() ProductDayKey {
	return ProductDayKey{Date: p.Date, ProductCode: p.ProductCode}
}
