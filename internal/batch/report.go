package batch

// Status classifies the outcome of one file in a batch.
type Status int

const (
	// StatusDone means the operation completed (or was rendered in
	// dry-run) for this file.
	StatusDone Status = iota
	// StatusFailed means validation or format inference rejected the
	// file before any invocation.
	StatusFailed
	// StatusToolFailed means chdman ran but exited non-zero.
	StatusToolFailed
)

// FileResult is the outcome of a single file.
type FileResult struct {
	Input  string
	Output string
	Status Status
	Err    error
}

// Report collects per-file results across a run, in processing order.
type Report struct {
	Results []FileResult
}

func (r *Report) add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Done counts files that completed.
func (r *Report) Done() int { return r.count(StatusDone) }

// Failed counts files rejected before invocation.
func (r *Report) Failed() int { return r.count(StatusFailed) }

// ToolFailed counts files where chdman exited non-zero.
func (r *Report) ToolFailed() int { return r.count(StatusToolFailed) }

func (r *Report) count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}
