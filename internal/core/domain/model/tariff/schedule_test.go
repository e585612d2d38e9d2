package tariff_test

import (
	"testing"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchedule(t *testing.T) *tariff.Schedule {
	t.Helper()
	schedule, err := tariff.LoadSchedule()
	require.NoError(t, err)
	return schedule
}

func TestNewSchedule(t *testing.T) {
	services := map[geography.ShipmentType][]tariff.Service{
		geography.Domestic:      {{ID: "d"}},
		geography.IntraGulf:     {{ID: "g"}},
		geography.International: {{ID: "i"}},
	}
	limits := map[geography.ShipmentType]tariff.PackageLimits{
		geography.Domestic:      {MaxWeight: 50, MaxDimension: 200},
		geography.IntraGulf:     {MaxWeight: 40, MaxDimension: 200},
		geography.International: {MaxWeight: 30, MaxDimension: 200},
	}

	t.Run("should build a schedule when every bucket is populated", func(t *testing.T) {
		_, err := tariff.NewSchedule(services, limits, nil, tariff.PickupFees{}, tariff.AdditionalFees{})

		assert.NoError(t, err)
	})

	t.Run("should reject a shipment type without services", func(t *testing.T) {
		incomplete := map[geography.ShipmentType][]tariff.Service{
			geography.Domestic:  {{ID: "d"}},
			geography.IntraGulf: {{ID: "g"}},
		}

		_, err := tariff.NewSchedule(incomplete, limits, nil, tariff.PickupFees{}, tariff.AdditionalFees{})

		assert.Error(t, err)
	})

	t.Run("should reject a shipment type without package limits", func(t *testing.T) {
		incomplete := map[geography.ShipmentType]tariff.PackageLimits{
			geography.Domestic: {MaxWeight: 50, MaxDimension: 200},
		}

		_, err := tariff.NewSchedule(services, incomplete, nil, tariff.PickupFees{}, tariff.AdditionalFees{})

		assert.Error(t, err)
	})
}

func TestSchedule_FindService(t *testing.T) {
	schedule := loadSchedule(t)

	t.Run("should locate a service in each bucket", func(t *testing.T) {
		testCases := []struct {
			id           string
			shipmentType geography.ShipmentType
			basePrice    float64
		}{
			{"domestic_standard", geography.Domestic, 15},
			{"gulf_standard", geography.IntraGulf, 30},
			{"intl_express", geography.International, 95},
		}

		for _, tc := range testCases {
			service, shipmentType, err := schedule.FindService(tc.id)

			require.NoError(t, err, tc.id)
			assert.Equal(t, tc.shipmentType, shipmentType)
			assert.Equal(t, tc.basePrice, service.BasePrice)
		}
	})

	t.Run("should return not-found for an unknown id", func(t *testing.T) {
		_, shipmentType, err := schedule.FindService("teleport")

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, geography.UnknownShipmentType, shipmentType)
	})
}

func TestSchedule_ServicesFor(t *testing.T) {
	schedule := loadSchedule(t)

	t.Run("should list services per shipment type", func(t *testing.T) {
		assert.Len(t, schedule.ServicesFor(geography.Domestic), 2)
		assert.Len(t, schedule.ServicesFor(geography.IntraGulf), 2)
		assert.Len(t, schedule.ServicesFor(geography.International), 3)
	})

	t.Run("should return a copy callers cannot mutate", func(t *testing.T) {
		services := schedule.ServicesFor(geography.Domestic)
		services[0].BasePrice = 999

		assert.Equal(t, 15.0, schedule.ServicesFor(geography.Domestic)[0].BasePrice)
	})
}

func TestSchedule_PackageLimits(t *testing.T) {
	schedule := loadSchedule(t)

	testCases := []struct {
		shipmentType geography.ShipmentType
		maxWeight    float64
	}{
		{geography.Domestic, 50},
		{geography.IntraGulf, 40},
		{geography.International, 30},
	}

	for _, tc := range testCases {
		limits := schedule.PackageLimits(tc.shipmentType)

		assert.Equal(t, tc.maxWeight, limits.MaxWeight, tc.shipmentType)
		assert.Equal(t, 200.0, limits.MaxDimension)
	}
}

func TestSchedule_PickupFee(t *testing.T) {
	schedule := loadSchedule(t)

	t.Run("should use the per-country fee pair when present", func(t *testing.T) {
		assert.Equal(t, 8.0, schedule.PickupFee("Saudi Arabia", tariff.PickupHome))
		assert.Equal(t, 3.0, schedule.PickupFee("Saudi Arabia", tariff.PickupPostalOffice))
	})

	t.Run("should fall back to the default fees for other countries", func(t *testing.T) {
		for _, country := range []string{"Germany", "United States", "Atlantis", ""} {
			assert.Equal(t, 5.0, schedule.PickupFee(country, tariff.PickupHome), country)
			assert.Equal(t, 2.0, schedule.PickupFee(country, tariff.PickupPostalOffice), country)
		}
	})
}

func TestSchedule_AdditionalFees(t *testing.T) {
	fees := loadSchedule(t).AdditionalFees()

	assert.Equal(t, 2.5, fees.Signature)
	assert.Equal(t, 5.0, fees.Liquid)
	assert.Equal(t, 7.5, fees.Insurance)
	assert.Equal(t, 4.0, fees.Packaging)
}

func TestPickupMethod_Validate(t *testing.T) {
	assert.NoError(t, tariff.PickupHome.Validate())
	assert.NoError(t, tariff.PickupPostalOffice.Validate())

	for _, invalid := range []tariff.PickupMethod{"", "drone", "Home"} {
		assert.Error(t, invalid.Validate(), string(invalid))
	}
}
