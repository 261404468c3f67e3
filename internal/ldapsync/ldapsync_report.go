package ldapsync

type Status string

const (
	StatusCreated  Status = "created"
	StatusExisting Status = "existing"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Outcome is the result for one directory entry that had an account name.
type Outcome struct {
	Username string
	Status   Status
	Err      error
}

// Report aggregates one pass. Entries without an account name appear in
// neither the counters nor Outcomes.
type Report struct {
	NewAccounts      int
	NewEmployees     int
	ExistingAccounts int
	SkippedAccounts  int
	Outcomes         []Outcome
}

func (r *Report) add(username string, status Status, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Username: username, Status: status, Err: err})
}

// Failed lists the outcomes that ended in a per-record error.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
