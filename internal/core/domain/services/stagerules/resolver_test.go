package stagerules_test

import (
	"testing"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/stagerules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) *stagerules.Resolver {
	t.Helper()

	countries, err := geography.LoadDirectory()
	require.NoError(t, err)
	schedule, err := tariff.LoadSchedule()
	require.NoError(t, err)

	return stagerules.NewResolver(countries, schedule)
}

func floatPtr(v float64) *float64 { return &v }

func TestResolveSender(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should require street for Gulf sender country", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageSender, stagerules.FormData{SenderCountry: "Saudi Arabia"})

		require.NoError(t, err)
		assert.True(t, set.Fields["senderStreet"].Required)
	})

	t.Run("should not require street for non-Gulf sender country", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageSender, stagerules.FormData{SenderCountry: "Germany"})

		require.NoError(t, err)
		assert.False(t, set.Fields["senderStreet"].Required)
	})

	t.Run("should not require street before a country is chosen", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageSender, stagerules.FormData{})

		require.NoError(t, err)
		assert.False(t, set.Fields["senderStreet"].Required)
	})

	t.Run("should offer every country as an option", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageSender, stagerules.FormData{})

		require.NoError(t, err)
		countries, loadErr := geography.LoadDirectory()
		require.NoError(t, loadErr)
		assert.Len(t, set.Fields["senderCountry"].Options, len(countries.Countries()))
	})
}

func TestResolveReceiver(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should block Gulf sender to Iraq receiver", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageReceiver, stagerules.FormData{
			SenderCountry:   "Qatar",
			ReceiverCountry: "Iraq",
		})

		require.NoError(t, err)
		assert.True(t, set.HasErrors())
		assert.Equal(t, stagerules.RestrictedRouteMessage, set.CrossFieldErrors["receiverCountry"])
	})

	t.Run("should allow non-Gulf sender to Iraq receiver", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageReceiver, stagerules.FormData{
			SenderCountry:   "Germany",
			ReceiverCountry: "Iraq",
		})

		require.NoError(t, err)
		assert.False(t, set.HasErrors())
	})

	t.Run("should require street for Gulf receiver country", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageReceiver, stagerules.FormData{ReceiverCountry: "Oman"})

		require.NoError(t, err)
		assert.True(t, set.Fields["receiverStreet"].Required)
	})
}

func TestResolvePackage(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should bound weight by the shipment type limit", func(t *testing.T) {
		tests := map[string]struct {
			sender    string
			receiver  string
			maxWeight float64
		}{
			"domestic":   {sender: "Germany", receiver: "Germany", maxWeight: 50},
			"intra gulf": {sender: "Kuwait", receiver: "Qatar", maxWeight: 40},
			"other":      {sender: "Germany", receiver: "France", maxWeight: 30},
		}

		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				set, err := resolver.Resolve(stagerules.StagePackage, stagerules.FormData{
					SenderCountry:   tc.sender,
					ReceiverCountry: tc.receiver,
				})

				require.NoError(t, err)
				require.NotNil(t, set.Fields["weight"].Validation)
				require.NotNil(t, set.Fields["weight"].Validation.Max)
				assert.Equal(t, tc.maxWeight, *set.Fields["weight"].Validation.Max)
			})
		}
	})

	t.Run("should require item description from non-Gulf into Gulf", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StagePackage, stagerules.FormData{
			SenderCountry:   "Germany",
			ReceiverCountry: "Saudi Arabia",
		})

		require.NoError(t, err)
		rule := set.Fields["itemDescription"]
		assert.True(t, rule.Required)
		assert.True(t, rule.Visible)
		require.NotNil(t, rule.Validation)
		require.NotNil(t, rule.Validation.MinLength)
		assert.Equal(t, 5, *rule.Validation.MinLength)
	})

	t.Run("should hide item description between Gulf countries", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StagePackage, stagerules.FormData{
			SenderCountry:   "Bahrain",
			ReceiverCountry: "Kuwait",
		})

		require.NoError(t, err)
		rule := set.Fields["itemDescription"]
		assert.False(t, rule.Required)
		assert.False(t, rule.Visible)
	})
}

func TestResolveService(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should list only services that carry the weight", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageService, stagerules.FormData{
			SenderCountry:   "Germany",
			ReceiverCountry: "Germany",
			Weight:          floatPtr(45),
		})

		require.NoError(t, err)
		require.Len(t, set.Services, 1)
		assert.Equal(t, "domestic_standard", set.Services[0].ID)
		require.Len(t, set.Fields["serviceId"].Options, 1)
		assert.Equal(t, "domestic_standard", set.Fields["serviceId"].Options[0].Value)
	})

	t.Run("should list the full bucket without a weight", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageService, stagerules.FormData{
			SenderCountry:   "Germany",
			ReceiverCountry: "Germany",
		})

		require.NoError(t, err)
		assert.Len(t, set.Services, 2)
	})

	t.Run("should list no services when the weight exceeds every limit", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageService, stagerules.FormData{
			SenderCountry:   "Germany",
			ReceiverCountry: "France",
			Weight:          floatPtr(35),
		})

		require.NoError(t, err)
		assert.Empty(t, set.Services)
	})
}

func TestResolveOptions(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should force signature for Jordan and Egypt receivers", func(t *testing.T) {
		for _, receiver := range []string{"Jordan", "Egypt"} {
			set, err := resolver.Resolve(stagerules.StageOptions, stagerules.FormData{ReceiverCountry: receiver})

			require.NoError(t, err)
			rule := set.Fields["signatureRequired"]
			assert.True(t, rule.Checked, receiver)
			assert.True(t, rule.Disabled, receiver)
		}
	})

	t.Run("should leave signature free for other receivers", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageOptions, stagerules.FormData{ReceiverCountry: "Germany"})

		require.NoError(t, err)
		rule := set.Fields["signatureRequired"]
		assert.False(t, rule.Checked)
		assert.False(t, rule.Disabled)
	})

	t.Run("should restrict heavy packages to postal office pickup", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageOptions, stagerules.FormData{
			SenderCountry: "Germany",
			Weight:        floatPtr(18),
		})

		require.NoError(t, err)
		rule := set.Fields["pickupMethod"]
		assert.Equal(t, []string{string(tariff.PickupPostalOffice)}, rule.AllowedValues)
		assert.Equal(t, string(tariff.PickupPostalOffice), rule.DefaultValue)
	})

	t.Run("should keep home pickup at the threshold weight", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageOptions, stagerules.FormData{
			SenderCountry: "Germany",
			Weight:        floatPtr(17),
		})

		require.NoError(t, err)
		assert.Len(t, set.Fields["pickupMethod"].AllowedValues, 2)
	})

	t.Run("should keep home pickup for exempt heavy senders", func(t *testing.T) {
		set, err := resolver.Resolve(stagerules.StageOptions, stagerules.FormData{
			SenderCountry: "Iraq",
			Weight:        floatPtr(20),
		})

		require.NoError(t, err)
		rule := set.Fields["pickupMethod"]
		assert.Len(t, rule.AllowedValues, 2)
		assert.Equal(t, string(tariff.PickupHome), rule.DefaultValue)
	})
}

func TestResolveUnknownStage(t *testing.T) {
	resolver := newResolver(t)

	_, err := resolver.Resolve(stagerules.Stage("payment"), stagerules.FormData{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage")
}

func TestResolveFrom(t *testing.T) {
	resolver := newResolver(t)

	t.Run("should resolve all five stages from the start", func(t *testing.T) {
		sets := resolver.ResolveAll(stagerules.FormData{})

		require.Len(t, sets, 5)
		assert.Equal(t, stagerules.StageSender, sets[0].Stage)
		assert.Equal(t, stagerules.StageOptions, sets[4].Stage)
	})

	t.Run("should resolve only the suffix from a later stage", func(t *testing.T) {
		sets := resolver.ResolveFrom(stagerules.StagePackage, stagerules.FormData{})

		require.Len(t, sets, 3)
		assert.Equal(t, stagerules.StagePackage, sets[0].Stage)
	})
}

func TestStageComplete(t *testing.T) {
	resolver := newResolver(t)

	completeSender := stagerules.FormData{
		SenderName:       "Ali Hassan",
		SenderPhone:      "0501234567",
		SenderCountry:    "Saudi Arabia",
		SenderCity:       "Riyadh",
		SenderStreet:     "King Fahd Road 12",
		SenderPostalCode: "11564",
	}

	t.Run("should report a fully entered stage as complete", func(t *testing.T) {
		assert.True(t, resolver.StageComplete(stagerules.StageSender, completeSender))
	})

	t.Run("should report an empty stage as incomplete", func(t *testing.T) {
		assert.False(t, resolver.StageComplete(stagerules.StageSender, stagerules.FormData{}))
	})

	t.Run("should report incomplete when a conditionally required field is empty", func(t *testing.T) {
		form := completeSender
		form.SenderStreet = ""

		assert.False(t, resolver.StageComplete(stagerules.StageSender, form))
	})

	t.Run("should treat the same missing street as complete for non-Gulf senders", func(t *testing.T) {
		form := completeSender
		form.SenderCountry = "Germany"
		form.SenderStreet = ""

		assert.True(t, resolver.StageComplete(stagerules.StageSender, form))
	})

	t.Run("should report incomplete on a cross-field error", func(t *testing.T) {
		form := stagerules.FormData{
			SenderCountry:      "Qatar",
			ReceiverName:       "Omar Karim",
			ReceiverPhone:      "0771234567",
			ReceiverCountry:    "Iraq",
			ReceiverCity:       "Baghdad",
			ReceiverPostalCode: "10001",
		}

		assert.False(t, resolver.StageComplete(stagerules.StageReceiver, form))
	})
}
