package sync

import "time"

// FetchReport describes what one fetcher call actually accomplished. Store
// and per-account failures are carried here instead of only being logged, so
// callers can observe partial success without the run being aborted.
type FetchReport struct {
	AdRows          int
	ProductRows     int
	AudienceRows    int
	SkippedAccounts []string
	StoreErrors     []error
}

// Partial reports whether anything inside the fetch was skipped or failed
func (r *FetchReport) Partial() bool {
	return len(r.SkippedAccounts) > 0 || len(r.StoreErrors) > 0
}

// RunReport summarizes one full orchestrator run
type RunReport struct {
	RunID       string
	StartedAt   time.Time
	CompletedAt time.Time
	Days        int
	FailedDays  []string
	PartialDays []string
}
