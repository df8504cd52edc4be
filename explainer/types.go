package explainer

// FailureKind classifies a failed model call for logging. The rendered report
// only ever shows Reason; the kind is a closed set so callers can tell an auth
// problem from a quota problem without parsing strings.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureAuth
	FailureRateLimited
	FailureUpstream
	FailureBadResponse
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureRateLimited:
		return "rate_limited"
	case FailureUpstream:
		return "upstream"
	case FailureBadResponse:
		return "bad_response"
	default:
		return "other"
	}
}

// Result is the outcome of one explanation attempt. A transport failure is
// data, not an error: OK is false and Reason carries the stringified cause.
type Result struct {
	OK     bool
	Text   string
	Reason string
	Kind   FailureKind
}

// TextOrReason is what a report or console shows for this result.
func (r Result) TextOrReason() string {
	if r.OK {
		return r.Text
	}
	return r.Reason
}

// Case binds one input file to its explanation outcome. Files that could not
// be read never become a Case.
type Case struct {
	Filename string
	Code     string
	Result   Result
}
