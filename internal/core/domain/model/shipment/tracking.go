package shipment

import (
	"fmt"
	"math/rand"
	"time"
)

// TrackingEvent is one entry of a finalized shipment's tracking history.
// Events are append-only; content fields of the shipment stay frozen.
type TrackingEvent struct {
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}

// Transit milestones appended over a finalized shipment's life, in order.
// The first event is written by Finalize itself.
const (
	EventOrderPlaced    = "Order Placed"
	EventPickedUp       = "Picked Up"
	EventInTransit      = "In Transit"
	EventOutForDelivery = "Out for Delivery"
	EventDelivered      = "Delivered"
)

// TransitSequence returns the transit milestones in progression order.
func TransitSequence() []string {
	return []string{EventOrderPlaced, EventPickedUp, EventInTransit, EventOutForDelivery, EventDelivered}
}

// NextTransitStatus returns the milestone that follows current, and false
// when current is the final milestone or unknown.
func NextTransitStatus(current string) (string, bool) {
	seq := TransitSequence()
	for i, s := range seq {
		if s == current && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return "", false
}

// NewTrackingNumber generates a tracking number in the form "TR" followed by
// nine random digits.
func NewTrackingNumber() string {
	return fmt.Sprintf("TR%09d", rand.Intn(1_000_000_000))
}
