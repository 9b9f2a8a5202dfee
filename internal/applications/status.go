package applications

// Application statuses. Every application starts pending; accepted and
// rejected are terminal.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// transitions is the full status machine. A change is legal only if the
// target appears in the source's row; terminal states have empty rows.
var transitions = map[string][]string{
	StatusPending:  {StatusReviewed, StatusAccepted, StatusRejected},
	StatusReviewed: {StatusAccepted, StatusRejected},
	StatusAccepted: {},
	StatusRejected: {},
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s accepts no further transitions.
func IsTerminal(s string) bool {
	return len(transitions[s]) == 0 && ValidStatus(s)
}

// allowedTransition reports whether from -> to is a legal status change.
// Re-asserting the current status is allowed while it is non-terminal, so a
// center can refresh the message without moving the workflow.
func allowedTransition(from, to string) bool {
	if from == to {
		return !IsTerminal(from)
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
