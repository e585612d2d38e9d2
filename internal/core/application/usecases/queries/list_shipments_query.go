package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// Sort fields accepted by ListShipmentsQuery.
const (
	SortByCreatedAt  = "createdAt"
	SortByTotalPrice = "totalPrice"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListShipmentsQuery retrieves an account's shipments, optionally filtered
// by status and shipment type, sorted and paged.
type ListShipmentsQuery struct {
	ownerID      kernel.UUID
	status       *shipment.Status
	shipmentType *geography.ShipmentType
	sortBy       string
	descending   bool
	page         int
	pageSize     int

	guard guard.ConstructorGuard
}

// ListShipmentsFilter carries the optional parameters of a listing.
// Zero values mean "no filter" / defaults (sort by creation time, newest
// first, first page).
type ListShipmentsFilter struct {
	Status       string
	ShipmentType string
	SortBy       string
	Ascending    bool
	Page         int
	PageSize     int
}

// NewListShipmentsQuery creates a listing query for one account.
// Filter values are validated strictly: an unknown status, shipment type or
// sort field is an error rather than a silently empty result.
func NewListShipmentsQuery(ownerID kernel.UUID, filter ListShipmentsFilter) (ListShipmentsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	q := ListShipmentsQuery{
		ownerID:    ownerID,
		sortBy:     SortByCreatedAt,
		descending: !filter.Ascending,
		page:       1,
		pageSize:   defaultPageSize,
		guard:      guard.NewConstructorGuard(),
	}

	if filter.Status != "" {
		status, err := shipment.StatusFromString(filter.Status)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		q.status = &status
	}

	if filter.ShipmentType != "" {
		shipmentType, err := geography.ShipmentTypeFromString(filter.ShipmentType)
		if err != nil {
			return ListShipmentsQuery{}, err
		}
		q.shipmentType = &shipmentType
	}

	switch filter.SortBy {
	case "":
	case SortByCreatedAt, SortByTotalPrice:
		q.sortBy = filter.SortBy
	default:
		return ListShipmentsQuery{}, errs.NewValueIsInvalidError("sortBy")
	}

	if filter.Page > 0 {
		q.page = filter.Page
	}
	if filter.PageSize > 0 {
		q.pageSize = min(filter.PageSize, maxPageSize)
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting account.
func (q ListShipmentsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Status returns the optional status filter.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// ShipmentType returns the optional shipment type filter.
func (q ListShipmentsQuery) ShipmentType() *geography.ShipmentType {
	return q.shipmentType
}

// SortBy returns the requested sort field.
func (q ListShipmentsQuery) SortBy() string {
	return q.sortBy
}

// Descending reports whether results are sorted newest/highest first.
func (q ListShipmentsQuery) Descending() bool {
	return q.descending
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListShipmentsQuery) PageSize() int {
	return q.pageSize
}

// ListShipmentsQueryResponse is the summary read model for listings.
type ListShipmentsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string

	SenderCountry   string
	ReceiverCountry string
	ReceiverName    string

	Weight       float64
	ServiceID    string
	ShipmentType string

	TotalPrice        float64
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}
