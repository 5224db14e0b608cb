package pipeline

import "fmt"

// FailureKind classifies a non-fatal stage failure.
type FailureKind string

const (
	// FailureRetrieval covers provider errors and empty results.
	FailureRetrieval FailureKind = "RETRIEVAL"
	// FailureDataQuality covers a missing or degenerate closing-price column.
	FailureDataQuality FailureKind = "DATA_QUALITY"
	// FailureComputation covers unexpected errors in indicator or metrics math.
	FailureComputation FailureKind = "COMPUTATION"
)

// Failure is a user-visible, non-fatal stage failure. Every stage catches its
// own failures and appends them to the result as warnings; the pipeline always
// renders whatever partial result it has.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func newFailure(kind FailureKind, format string, args ...any) Failure {
	return Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
