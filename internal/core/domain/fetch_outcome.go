package domain

// Fetch cycle statuses. "ok" means the cycle completed, not that every insert
// succeeded; per-item failures are reported through Errors.
const (
	FetchStatusOK    = "ok"
	FetchStatusError = "error"
)

// FetchOutcome summarizes one fetch cycle. Rates holds every upstream item in
// response order regardless of whether its insert succeeded. Errors collects
// per-item insert failures and stays nil when there were none. Message is set
// only for cycle-fatal failures (transport, decode, store unreachable).
type FetchOutcome struct {
	Status   string
	Inserted int
	Total    int
	Rates    []UpstreamRate
	Errors   []string
	Message  string
}
