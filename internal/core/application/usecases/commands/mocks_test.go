package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/core/domain/services/validation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockShipmentRepository) GetAllFinalized(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoW struct{ MockShipmentUoW }

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Shared fixtures over the embedded reference data.

func testCountries(t *testing.T) *geography.Directory {
	t.Helper()
	countries, err := geography.LoadDirectory()
	require.NoError(t, err)
	return countries
}

func testCalculator(t *testing.T) *rates.Calculator {
	t.Helper()
	schedule, err := tariff.LoadSchedule()
	require.NoError(t, err)
	return rates.NewCalculator(schedule)
}

func testValidator(t *testing.T) *validation.Validator {
	t.Helper()
	schedule, err := tariff.LoadSchedule()
	require.NoError(t, err)
	return validation.NewValidator(testCountries(t), schedule)
}

func floatPtr(v float64) *float64 { return &v }

// completeForm passes complete validation (Gulf to Gulf route).
func completeForm() stagerules.FormData {
	return stagerules.FormData{
		SenderName:         "Ali Hassan",
		SenderPhone:        "0501234567",
		SenderCountry:      "Saudi Arabia",
		SenderCity:         "Riyadh",
		SenderStreet:       "King Fahd Road 12",
		SenderPostalCode:   "11564",
		ReceiverName:       "Fatima Said",
		ReceiverPhone:      "0509876543",
		ReceiverCountry:    "Kuwait",
		ReceiverCity:       "Kuwait City",
		ReceiverStreet:     "Gulf Road 3",
		ReceiverPostalCode: "13001",
		Weight:             floatPtr(4),
		Length:             floatPtr(30),
		Width:              floatPtr(20),
		Height:             floatPtr(10),
		ServiceID:          "gulf_standard",
		PickupMethod:       string(tariff.PickupHome),
	}
}

func testRateInput(form stagerules.FormData) rates.Input {
	return rates.Input{
		ServiceID:     form.ServiceID,
		Weight:        form.WeightOrZero(),
		SenderCountry: form.SenderCountry,
		PickupMethod:  tariff.PickupMethod(form.PickupMethod),
		Signature:     form.SignatureRequired,
		Liquid:        form.ContainsLiquid,
		Insurance:     form.Insurance,
		Packaging:     form.Packaging,
	}
}

func nowForTest() time.Time { return time.Now().UTC() }

func errsNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("shipment", id)
}

func draftShipment(t *testing.T, ownerID kernel.UUID, form stagerules.FormData) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		ownerID,
		shipment.NewTrackingNumber(),
		form.Details(testCountries(t)),
		shipment.RateBreakdown{},
	)
	require.NoError(t, err)
	return s
}
