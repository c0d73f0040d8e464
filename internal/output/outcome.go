package output

//go:generate go tool stringer -type=Outcome -linecomment -output=outcome_string.go

// Outcome is the result of a Write.
type Outcome int

const (
	OutcomeUnknown Outcome = iota // unknown
	// OutcomeWritten means the output was (re)generated.
	OutcomeWritten // written
	// OutcomeSkipped means the output was already up to date.
	OutcomeSkipped // skipped
)
