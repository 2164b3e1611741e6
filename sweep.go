package moire

// SweepResult is the outcome of one analysis inside a sweep: the exact
// parameters used and either a result or the error that aborted it.
type SweepResult struct {
	Params Params
	Result *Result
	Err    error
}

// Sweep runs Analyze once per rotation angle, spreading the runs over a
// bounded worker pool. Each analysis call is self-contained, which makes the
// sweep embarrassingly parallel; results come back indexed like the input
// angles, so the output is deterministic regardless of worker count.
//
// A failing angle does not abort the sweep; its slot carries the error.
func Sweep(base Params, angleDegrees []float64, workers int) []SweepResult {
	workers = max(DEFAULT_WORKERS, workers)

	results := make([]SweepResult, len(angleDegrees))
	jobs := make([]*SweepResult, len(angleDegrees))
	for i, angle := range angleDegrees {
		results[i].Params = base
		results[i].Params.RotationAngleDegrees = angle
		jobs[i] = &results[i]
	}

	task(workers, jobs, func(job *SweepResult) {
		job.Result, job.Err = Analyze(job.Params)
	})

	return results
}
