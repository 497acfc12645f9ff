// Package agent holds the conversation heuristics: the booking state
// classifier and the intent/tool plumbing used by the chat side.
package agent

import (
	"strings"
)

// State labels what information is still needed to complete a booking.
type State string

const (
	StateNeedsService State = "needs_service"
	StateNeedsTime    State = "needs_time"
	StateNeedsDetails State = "needs_details"
	StateNeedsPayment State = "needs_payment"
	StateBooked       State = "booked"
)

// NextState classifies a message into the next booking state. It is a
// stateless keyword scan in fixed priority order, not a transition-checked
// state machine: any state is reachable from any other in one step. When no
// keyword matches, the previous state carries over, defaulting to
// needs_service.
func NextState(prev State, content string) State {
	text := strings.ToLower(content)

	switch {
	case strings.Contains(text, "book") || strings.Contains(text, "scheduled"):
		return StateBooked
	case strings.Contains(text, "payment") || strings.Contains(text, "card"):
		return StateNeedsPayment
	case strings.Contains(text, "friday") || strings.Contains(text, "time") || strings.Contains(text, "week"):
		return StateNeedsTime
	case strings.Contains(text, "details") || strings.Contains(text, "info"):
		return StateNeedsDetails
	case strings.Contains(text, "botox") || strings.Contains(text, "service"):
		return StateNeedsService
	}

	if prev != "" {
		return prev
	}
	return StateNeedsService
}
