package engine

// Reject reasons produced by auto-moderation.
const (
	RejectReasonSpam       = "spam_detected"
	RejectReasonLowQuality = "low_quality"
)

// Score thresholds. Accumulated penalties above RejectScoreThreshold reject
// the content outright; the queue priority of review items derives from the
// other two.
const (
	RejectScoreThreshold         = 70
	HighPriorityScoreThreshold   = 50
	MediumPriorityScoreThreshold = 25
)

type CounterRef struct {
	Name   string
	Val    string
	Period *string
}

// Mutable container for all the possible side-effects from rule execution.
//
// Rules only accumulate effects here; nothing is persisted or decided until
// all rules have run and the engine finalizes the result.
type Effects struct {
	// flags attached to the content, in the order rules added them (deduped
	// at finalization)
	Flags []string
	// accumulated penalty score
	Score int
	// set when a rule rejects the content outright
	Rejected     bool
	RejectReason string
	// set when a rule wants a human decision
	ReviewRequired bool
	// counters to increment in bulk at the end of processing
	CounterIncrements []CounterRef
	// notification services to ping at the end of processing
	NotifyServices []string
}

// Adds a flag to the content. Duplicate flags are collapsed at finalization.
func (e *Effects) AddFlag(val string) {
	e.Flags = append(e.Flags, val)
}

// Adds penalty points to the accumulated score.
func (e *Effects) AddScore(points int) {
	e.Score += points
}

// Rejects the content outright. The first reason wins; later rejections
// keep accumulating score but don't overwrite it.
func (e *Effects) Reject(reason string) {
	if !e.Rejected {
		e.Rejected = true
		e.RejectReason = reason
	}
}

// Marks the content for manual review.
func (e *Effects) RequireReview() {
	e.ReviewRequired = true
}

// Enqueues the named counter to be incremented at the end of all rule processing. Will automatically increment for all time periods.
func (e *Effects) Increment(name, val string) {
	e.CounterIncrements = append(e.CounterIncrements, CounterRef{Name: name, Val: val})
}

// Enqueues the named counter to be incremented at the end of all rule processing. Will only increment the indicated time period bucket.
func (e *Effects) IncrementPeriod(name, val string, period string) {
	e.CounterIncrements = append(e.CounterIncrements, CounterRef{Name: name, Val: val, Period: &period})
}

func (e *Effects) Notify(srv string) {
	e.NotifyServices = append(e.NotifyServices, srv)
}
