package adventure

// OutcomeKind classifies the result of a choice.
type OutcomeKind int

const (
	// OutcomeOngoing - the adventure continues at a new node
	OutcomeOngoing OutcomeKind = iota
	// OutcomeSuccess - the adventure ended well
	OutcomeSuccess
	// OutcomeFailure - the adventure ended badly
	OutcomeFailure
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of MakeChoice. Text is the narrated ending and is
// empty for OutcomeOngoing.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

// Ongoing is the outcome of a choice that leads to a non-terminal node.
var Ongoing = Outcome{Kind: OutcomeOngoing}

// Success returns a successful ending narrated by text.
func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

// Failure returns a failed ending narrated by text.
func Failure(text string) Outcome {
	return Outcome{Kind: OutcomeFailure, Text: text}
}

// IsEnding returns true if the outcome completed the adventure.
func (o Outcome) IsEnding() bool {
	return o.Kind == OutcomeSuccess || o.Kind == OutcomeFailure
}

// String returns the outcome kind.
func (o Outcome) String() string {
	return o.Kind.String()
}

// ending picks Success or Failure by the choice's success flag.
func ending(successful bool, text string) Outcome {
	if successful {
		return Success(text)
	}
	return Failure(text)
}
