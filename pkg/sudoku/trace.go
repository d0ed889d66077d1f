package sudoku

// LogicalStep is an immutable record of one logical deduction: the
// candidates that justified it and the candidates it eliminated. Candidate
// indices are the opaque integers produced by CandidateIndex; a caller can
// decode them with DecodeCandidate (spec §3 "Logical step", §6 "Step trace
// format").
type LogicalStep struct {
	Description string
	Source      []int
	Eliminated  []int
}

// StepTrace is an append-only sink for LogicalStep records, owned by the
// caller and passed by reference. A nil *StepTrace is a valid no-op sink,
// and brute-force search passes nil, so it records no steps. Constraints
// should check for nil before allocating description strings (spec §9
// "Step trace").
type StepTrace struct {
	steps []LogicalStep
}

// NewStepTrace returns an empty trace ready to receive steps.
func NewStepTrace() *StepTrace {
	return &StepTrace{}
}

// Append records a step. Safe to call on a nil receiver (no-op), so
// callers can write `trace.Append(...)` without a nil check at every call
// site; constraints should still gate the (possibly expensive) argument
// construction on `trace != nil`.
func (t *StepTrace) Append(description string, source, eliminated []int) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, LogicalStep{
		Description: description,
		Source:      append([]int(nil), source...),
		Eliminated:  append([]int(nil), eliminated...),
	})
}

// Len returns the number of recorded steps. Safe on a nil receiver.
func (t *StepTrace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// Steps returns the recorded steps in commit order.
func (t *StepTrace) Steps() []LogicalStep {
	if t == nil {
		return nil
	}
	return t.steps
}

// Truncate rolls the trace back to length n, discarding steps recorded on
// an aborted path (spec §7: "the trace is rolled back to its pre-mutation
// length" when propagation hits Invalid and the caller didn't ask to keep
// the learned elimination).
func (t *StepTrace) Truncate(n int) {
	if t == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	if n < len(t.steps) {
		t.steps = t.steps[:n]
	}
}
