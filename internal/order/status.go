package order

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ForwardChain is the only legal non-cancel progression, in order.
var ForwardChain = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
}

// IsTerminal reports whether no further transition is permitted from s.
func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the immediate successor of s in the forward chain. ok is
// false when s is the last chain element or not in the chain at all, in
// which case no forward action should be offered.
func Next(s Status) (Status, bool) {
	for i, cur := range ForwardChain {
		if cur == s {
			if i == len(ForwardChain)-1 {
				return "", false
			}
			return ForwardChain[i+1], true
		}
	}
	return "", false
}

// CanTransition reports whether an order currently in from may move to to:
// either the single next chain state, or cancelled from any non-terminal
// state.
func CanTransition(from, to Status) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	next, ok := Next(from)
	return ok && to == next
}
