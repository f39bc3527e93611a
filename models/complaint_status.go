package models

// ComplaintStatus represents where a complaint is in the repair process
type ComplaintStatus string

const (
	StatusPending        ComplaintStatus = "Pending"
	StatusUnderRepair    ComplaintStatus = "Under Repair"
	StatusReadyForPickup ComplaintStatus = "Ready for Pickup"
	StatusCompleted      ComplaintStatus = "Completed"
)

// ComplaintStatuses lists every status in workflow order
var ComplaintStatuses = []ComplaintStatus{
	StatusPending,
	StatusUnderRepair,
	StatusReadyForPickup,
	StatusCompleted,
}

// IsValid checks if the status is one of the fixed values
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderRepair, StatusReadyForPickup, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseComplaintStatus matches the input exactly against the fixed set
func ParseComplaintStatus(value string) (ComplaintStatus, bool) {
	status := ComplaintStatus(value)
	return status, status.IsValid()
}

// TransitionTable maps a current status to the statuses it may move to.
// A status missing from the table has no outgoing transitions.
type TransitionTable map[ComplaintStatus][]ComplaintStatus

// DefaultTransitions allows every status to move to every status, itself included.
// Completed is not terminal.
func DefaultTransitions() TransitionTable {
	table := make(TransitionTable, len(ComplaintStatuses))
	for _, from := range ComplaintStatuses {
		next := make([]ComplaintStatus, len(ComplaintStatuses))
		copy(next, ComplaintStatuses)
		table[from] = next
	}
	return table
}

// Allows reports whether moving from one status to another is permitted
func (t TransitionTable) Allows(from, to ComplaintStatus) bool {
	for _, candidate := range t[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
