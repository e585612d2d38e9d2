package validation_test

import (
	"testing"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/core/domain/services/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()

	countries, err := geography.LoadDirectory()
	require.NoError(t, err)
	schedule, err := tariff.LoadSchedule()
	require.NoError(t, err)

	return validation.NewValidator(countries, schedule)
}

func floatPtr(v float64) *float64 { return &v }

// completeForm is a form that passes complete validation: Gulf to Gulf, all
// addresses filled, service matching the route and weight.
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

func TestValidateDraft(t *testing.T) {
	validator := newValidator(t)

	t.Run("should accept an empty form", func(t *testing.T) {
		result := validator.ValidateDraft(stagerules.FormData{})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("should accept a partially filled form", func(t *testing.T) {
		result := validator.ValidateDraft(stagerules.FormData{
			SenderName:    "Ali Hassan",
			SenderCountry: "Saudi Arabia",
		})

		assert.True(t, result.IsValid)
	})

	t.Run("should reject a negative weight", func(t *testing.T) {
		result := validator.ValidateDraft(stagerules.FormData{Weight: floatPtr(-1)})

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "weight")
	})

	t.Run("should accept a zero weight while drafting", func(t *testing.T) {
		result := validator.ValidateDraft(stagerules.FormData{Weight: floatPtr(0)})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("should accept a country the directory does not know yet", func(t *testing.T) {
		result := validator.ValidateDraft(stagerules.FormData{SenderCountry: "Atlantis"})

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("complete validation still rejects unknown countries", func(t *testing.T) {
		form := completeForm()
		form.SenderCountry = "Atlantis"

		result := validator.ValidateComplete(form)

		assert.Equal(t, "Country is not supported", result.Errors["senderCountry"])
	})
}

func TestValidateComplete(t *testing.T) {
	validator := newValidator(t)

	t.Run("should accept a fully valid form", func(t *testing.T) {
		result := validator.ValidateComplete(completeForm())

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("should reject the empty form with every violation collected", func(t *testing.T) {
		result := validator.ValidateComplete(stagerules.FormData{})

		assert.False(t, result.IsValid)
		for _, field := range []string{
			"senderName", "senderPhone", "senderCountry", "senderCity", "senderPostalCode",
			"receiverName", "receiverPhone", "receiverCountry", "receiverCity", "receiverPostalCode",
			"weight", "length", "width", "height", "serviceId", "pickupMethod",
		} {
			assert.Contains(t, result.Errors, field)
		}
	})

	t.Run("should reject a short name", func(t *testing.T) {
		form := completeForm()
		form.SenderName = "A"

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "senderName")
	})

	t.Run("should reject a phone with fewer than 10 digits", func(t *testing.T) {
		form := completeForm()
		form.ReceiverPhone = "050-123"

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "receiverPhone")
	})

	t.Run("should require street only for Gulf countries", func(t *testing.T) {
		form := completeForm()
		form.SenderStreet = ""

		result := validator.ValidateComplete(form)
		assert.Contains(t, result.Errors, "senderStreet")

		form = completeForm()
		form.SenderCountry = "Kuwait"
		form.ReceiverCountry = "Kuwait"
		form.SenderStreet = "Coastal Road 9"
		result = validator.ValidateComplete(form)
		assert.NotContains(t, result.Errors, "senderStreet")
	})

	t.Run("should block the Gulf to Iraq route", func(t *testing.T) {
		form := completeForm()
		form.ReceiverCountry = "Iraq"
		form.ReceiverStreet = ""
		form.ServiceID = "intl_economy"

		result := validator.ValidateComplete(form)

		assert.False(t, result.IsValid)
		assert.Equal(t, stagerules.RestrictedRouteMessage, result.Errors["receiverCountry"])
	})

	t.Run("should reject weight above the shipment type limit", func(t *testing.T) {
		form := completeForm()
		form.Weight = floatPtr(41)

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "weight")
	})

	t.Run("should reject a dimension above the limit", func(t *testing.T) {
		form := completeForm()
		form.Length = floatPtr(201)

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "length")
	})

	t.Run("should require item description from non-Gulf into Gulf", func(t *testing.T) {
		form := completeForm()
		form.SenderCountry = "Germany"
		form.SenderStreet = ""
		form.ServiceID = "intl_standard"

		result := validator.ValidateComplete(form)
		assert.Contains(t, result.Errors, "itemDescription")

		form.ItemDescription = "Glass vase, fragile"
		result = validator.ValidateComplete(form)
		assert.NotContains(t, result.Errors, "itemDescription")
	})

	t.Run("should reject a service from the wrong bucket", func(t *testing.T) {
		form := completeForm()
		form.ServiceID = "domestic_standard"

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "serviceId")
	})

	t.Run("should reject a service that cannot carry the weight", func(t *testing.T) {
		form := completeForm()
		form.ServiceID = "gulf_express"
		form.Weight = floatPtr(26)

		result := validator.ValidateComplete(form)

		assert.Contains(t, result.Errors, "serviceId")
	})

	t.Run("should force signature for Jordan receivers", func(t *testing.T) {
		form := completeForm()
		form.ReceiverCountry = "Jordan"
		form.ReceiverStreet = ""
		form.ServiceID = "intl_economy"

		result := validator.ValidateComplete(form)
		assert.Contains(t, result.Errors, "signatureRequired")

		form.SignatureRequired = true
		result = validator.ValidateComplete(form)
		assert.NotContains(t, result.Errors, "signatureRequired")
	})

	t.Run("should restrict heavy packages to postal office pickup", func(t *testing.T) {
		form := completeForm()
		form.Weight = floatPtr(17.01)

		result := validator.ValidateComplete(form)
		assert.Contains(t, result.Errors, "pickupMethod")

		form.PickupMethod = string(tariff.PickupPostalOffice)
		result = validator.ValidateComplete(form)
		assert.True(t, result.IsValid, result.Errors)
	})

	t.Run("should allow home pickup at exactly the threshold weight", func(t *testing.T) {
		form := completeForm()
		form.Weight = floatPtr(17)

		result := validator.ValidateComplete(form)

		assert.NotContains(t, result.Errors, "pickupMethod")
	})

	t.Run("should exempt the designated sender country from the heavy pickup rule", func(t *testing.T) {
		form := completeForm()
		form.SenderCountry = "Iraq"
		form.SenderStreet = ""
		form.ReceiverCountry = "Iraq"
		form.ReceiverStreet = ""
		form.Weight = floatPtr(20)
		form.ServiceID = "domestic_standard"

		result := validator.ValidateComplete(form)

		assert.NotContains(t, result.Errors, "pickupMethod")
	})
}
