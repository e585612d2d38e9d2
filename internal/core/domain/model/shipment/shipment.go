package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrAlreadyFinalized is returned when finalize is attempted on a shipment
	// that is no longer a draft.
	ErrAlreadyFinalized = errors.New("shipment is already finalized")

	// ErrShipmentNotEditable is returned when content edits are attempted on a
	// finalized shipment.
	ErrShipmentNotEditable = errors.New("finalized shipment cannot be edited")

	// ErrTrackingNumberIsRequired is returned when a shipment is constructed
	// without a tracking number.
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// Shipment is the aggregate root for one shipment order. It owns the content
// fields entered through the multi-stage form, the priced rate breakdown and
// the draft/finalized lifecycle.
//
// Shipment follows these invariants:
//   - Must have valid identifiers for itself and its owning account
//   - Content fields are mutable only while the status is Draft
//   - The stored RateBreakdown of a finalized shipment is always the
//     server-computed one; callers cannot inject prices
//   - Tracking events may only be appended once finalized
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id             kernel.UUID
	ownerID        kernel.UUID
	trackingNumber string
	status         Status
	details        Details
	rate           RateBreakdown

	// estimatedDelivery is stamped at finalize from the chosen service's
	// delivery days (nil while draft)
	estimatedDelivery *time.Time

	trackingEvents []TrackingEvent

	isConstructed bool
}

// NewShipment creates a new draft shipment owned by the given account.
// The details may be arbitrarily incomplete; only draft-level sanity is
// expected of them at this point. The rate carries the current non-binding
// estimate and is replaced by a fresh server computation at finalize.
func NewShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	trackingNumber string,
	details Details,
	rate RateBreakdown,
) (*Shipment, error) {
	s := &Shipment{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	s.details = details
	s.rate = rate
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// Unlike NewShipment it accepts any valid status and an existing tracking
// history.
func RestoreShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	trackingNumber string,
	status Status,
	details Details,
	rate RateBreakdown,
	estimatedDelivery *time.Time,
	trackingEvents []TrackingEvent,
) (*Shipment, error) {
	s, err := NewShipment(id, ownerID, trackingNumber, details, rate)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.estimatedDelivery = estimatedDelivery
	s.trackingEvents = append([]TrackingEvent(nil), trackingEvents...)
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the owning account.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// TrackingNumber returns the shipment's tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Details returns the shipment's content fields.
func (s *Shipment) Details() Details {
	return s.details
}

// Rate returns the stored rate breakdown. For drafts this is the latest
// non-binding estimate; for finalized shipments it is the authoritative
// server-computed price.
func (s *Shipment) Rate() RateBreakdown {
	return s.rate
}

// EstimatedDelivery returns the estimated delivery date, or nil while the
// shipment is a draft.
func (s *Shipment) EstimatedDelivery() *time.Time {
	return s.estimatedDelivery
}

// TrackingEvents returns the tracking history in append order.
func (s *Shipment) TrackingEvents() []TrackingEvent {
	return append([]TrackingEvent(nil), s.trackingEvents...)
}

// IsOwnedBy reports whether the shipment belongs to the given account.
func (s *Shipment) IsOwnedBy(accountID kernel.UUID) bool {
	return s.ownerID.IsEqual(accountID)
}

// UpdateDetails replaces the content fields and the price estimate of a
// draft shipment.
//
// Returns ErrShipmentNotEditable when the shipment is no longer a draft;
// finalized shipments are immutable in their content fields.
func (s *Shipment) UpdateDetails(details Details, rate RateBreakdown) error {
	if !s.status.IsDraft() {
		return ErrShipmentNotEditable
	}

	s.details = details
	s.rate = rate
	return nil
}

// Finalize performs the one-way draft -> finalized transition.
//
// The supplied rate must be the freshly server-computed breakdown for the
// shipment's current stored fields; whatever estimate the draft carried is
// discarded here. The estimated delivery date is stamped and the initial
// "Order Placed" tracking event is appended.
//
// Returns ErrAlreadyFinalized when the shipment is not in Draft status.
func (s *Shipment) Finalize(rate RateBreakdown, estimatedDelivery time.Time, now time.Time) error {
	newStatus, err := s.status.Finalize()
	if err != nil {
		return ErrAlreadyFinalized
	}

	s.status = newStatus
	s.rate = rate
	s.estimatedDelivery = &estimatedDelivery
	s.trackingEvents = append(s.trackingEvents, TrackingEvent{
		Status:      EventOrderPlaced,
		Location:    "Online",
		Description: "Shipment order has been finalized and is ready for pickup",
		Timestamp:   now,
	})
	return nil
}

// AppendTrackingEvent appends a transit event to a finalized shipment.
// Drafts have no tracking history.
func (s *Shipment) AppendTrackingEvent(event TrackingEvent) error {
	if s.status != Finalized {
		return errs.NewValueIsInvalidError("tracking events require a finalized shipment")
	}

	s.trackingEvents = append(s.trackingEvents, event)
	return nil
}

// LatestTrackingStatus returns the status of the most recent tracking event,
// or the empty string when there is none.
func (s *Shipment) LatestTrackingStatus() string {
	if len(s.trackingEvents) == 0 {
		return ""
	}
	return s.trackingEvents[len(s.trackingEvents)-1].Status
}

// SeedCopy returns the content fields for seeding a new draft from this
// shipment ("repeat"). The copy carries no identity, status or price.
func (s *Shipment) SeedCopy() Details {
	return s.details
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	s.trackingNumber = trackingNumber
	return nil
}
