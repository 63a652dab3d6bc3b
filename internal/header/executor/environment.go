package executor

// environment is the in-memory execution environment handed to the
// commitment program. Inputs are copied in so the program cannot alias the
// caller's buffers.
type environment struct {
	claimed []byte
	header  []byte
	loads   int
	commits []bool
}

func newEnvironment(in Inputs) *environment {
	return &environment{
		claimed: append([]byte(nil), in.ClaimedPrevHash...),
		header:  append([]byte(nil), in.Header...),
	}
}

func (e *environment) LoadInputs() ([]byte, []byte) {
	e.loads++
	return e.claimed, e.header
}

func (e *environment) CommitOutput(isValid bool) {
	e.commits = append(e.commits, isValid)
}
