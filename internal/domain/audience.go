package domain

// AudienceKey identifies one demographic bucket. Kept as a struct map key so
// a product code or date containing a separator can never collide buckets.
type AudienceKey struct {
	Date        string
	ProductCode string
	AgeRange    string
	Gender      string
}

// AudienceBreakdown sums spend and leads across all campaigns sharing a
// product classification and demographic bucket for one date
type AudienceBreakdown struct {
	Date        string
	ProductCode string
	AgeRange    string
	Gender      string
	Spend       float64
	MetaLeads   int
}

func (b *AudienceBreakdown) Key() AudienceKey {
	return AudienceKey{
		Date:        b.Date,
		ProductCode: b.ProductCode,
		AgeRange:    b.AgeRange,
		Gender:      b.Gender,
	}
}
