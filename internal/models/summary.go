package models

// SummaryStatus marks how the AI interpretation stage ended. The stage
// never fails the run, so the outcome is a value rather than an error.
type SummaryStatus string

const (
	// SummaryDone means the provider returned a recommendation.
	SummaryDone SummaryStatus = "done"
	// SummarySkipped means no provider credential was configured.
	SummarySkipped SummaryStatus = "skipped"
	// SummaryFailed means the provider call failed; Err carries the cause.
	SummaryFailed SummaryStatus = "failed"
)

// Summary is the outcome of the AI interpretation stage.
type Summary struct {
	Status SummaryStatus
	// Recommendation is the trimmed provider response, set when Status
	// is SummaryDone.
	Recommendation string
	// Err is the provider error, set when Status is SummaryFailed.
	Err error
}
