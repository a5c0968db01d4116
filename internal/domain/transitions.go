package domain

// TransitionTable defines which status changes are allowed. A missing key
// means no transitions out of that status.
type TransitionTable map[BookingStatus][]BookingStatus

// PermissiveTransitions allows any status change between recognized
// statuses. This mirrors the historical behavior where owners could move a
// booking between any two states.
var PermissiveTransitions = TransitionTable{
	StatusPending:   {StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusCancelled: {StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusCompleted: {StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted},
}

// StrictTransitions only allows forward lifecycle moves: a pending booking
// is confirmed or cancelled, a confirmed booking is completed or cancelled.
// Cancelled and completed are terminal.
var StrictTransitions = TransitionTable{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Allows reports whether the table permits moving from one status to another
func (t TransitionTable) Allows(from, to BookingStatus) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch status := BookingStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return status, true
	default:
		return "", false
	}
}
